package http

import (
	"github.com/gin-gonic/gin"

	"todo-web/internal/middleware"
)

// RegisterRoutes maps the auth pages. Credential submissions are throttled.
func RegisterRoutes(r gin.IRouter, api *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	pages := r.Group("/auth")
	{
		pages.GET("/login", mw.GuestOnly(), h.LoginPage)
		pages.POST("/login", mw.GuestOnly(), mw.LoginThrottle(), h.Login)
		pages.GET("/signup", mw.GuestOnly(), h.SignupPage)
		pages.POST("/signup", mw.GuestOnly(), mw.LoginThrottle(), h.Signup)
		pages.POST("/logout", h.Logout)
	}

	api.GET("/session", h.Session)
}
