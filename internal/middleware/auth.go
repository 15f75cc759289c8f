package middleware

import (
	"github.com/gin-gonic/gin"

	"todo-web/internal/model"
	"todo-web/internal/view"
)

const (
	LoginPath = "/auth/login"
	HomePath  = "/todo"
)

// Auth lets the request through only when the session holds a credential.
// Otherwise it redirects to the login page and nothing of the wrapped page
// is rendered.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.authenticated(c) {
			view.Redirect(c, LoginPath)
			return
		}
		c.Set(view.KeyAuthenticated, true)
		c.Next()
	}
}

// GuestOnly sends sessions that are already signed in to the task list.
func (m Middleware) GuestOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.authenticated(c) {
			view.Redirect(c, HomePath)
			return
		}
		c.Next()
	}
}

func (m Middleware) authenticated(c *gin.Context) bool {
	ctx := c.Request.Context()
	sc, ok := model.GetScopeFromContext(ctx)
	if !ok {
		return false
	}
	return m.authn.IsAuthenticated(ctx, sc)
}
