package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "todo-web/docs"
	"todo-web/internal/middleware"
	"todo-web/internal/model"
	"todo-web/internal/view"
)

func (srv HTTPServer) mapHandlers() error {
	if err := view.Install(srv.gin); err != nil {
		return err
	}

	cp := srv.newComponents()

	srv.registerMiddlewares(cp.mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(cp); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestLog())
	srv.gin.Use(mw.Session())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Session cookies: production")
	} else {
		srv.l.Infof(ctx, "Session cookies: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes(cp components) error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	srv.setupAuthDomain(ctx, api, cp)
	srv.setupTodoDomain(ctx, cp)
	srv.setupValidationRoutes(ctx, api)

	srv.gin.GET("/", func(c *gin.Context) {
		view.Redirect(c, middleware.HomePath)
	})
	srv.gin.NoRoute(func(c *gin.Context) {
		cp.render.HTML(c, http.StatusNotFound, view.PageNotFound, "Not found",
			view.NotFoundData{Message: "Page not found"})
	})

	return nil
}
