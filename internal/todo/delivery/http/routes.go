package http

import (
	"github.com/gin-gonic/gin"

	"todo-web/internal/middleware"
)

// RegisterRoutes maps the task pages. Every route is behind the auth guard.
func RegisterRoutes(r gin.IRouter, h *handler, mw middleware.Middleware) {
	todos := r.Group("/todo", mw.Auth())
	{
		todos.GET("", h.List)
		todos.GET("/create", h.CreatePage)
		todos.POST("/create", h.Create)
		todos.GET("/:id", h.Detail)
		todos.POST("/:id", h.Update)
		todos.POST("/:id/delete", h.RequestDelete)
		todos.POST("/:id/toggle", h.RequestToggle)
		todos.POST("/confirmations/:kind/:cid/confirm", h.Confirm)
		todos.POST("/confirmations/:kind/:cid/cancel", h.Cancel)
	}
}
