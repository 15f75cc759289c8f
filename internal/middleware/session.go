package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"todo-web/internal/model"
)

const (
	DefaultCookieName = "todo_session"

	// KeyScope holds the request's model.Scope in the gin context.
	KeyScope = "middleware.scope"
)

// Session binds the request to a browser session. A missing or malformed
// cookie gets a fresh session id.
func (m Middleware) Session() gin.HandlerFunc {
	name := m.cookieConfig.CookieName
	if name == "" {
		name = DefaultCookieName
	}

	return func(c *gin.Context) {
		sid, err := c.Cookie(name)
		if err != nil {
			sid = ""
		}
		if _, err := uuid.Parse(sid); err != nil {
			sid = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(name, sid, m.cookieConfig.MaxAge, "/", m.cookieConfig.Domain, m.cookieConfig.Secure, true)
		}

		sc := model.Scope{SessionID: sid}
		c.Set(KeyScope, sc)
		c.Request = c.Request.WithContext(model.SetScopeToContext(c.Request.Context(), sc))
		c.Next()
	}
}
