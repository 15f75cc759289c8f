package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"todo-web/internal/auth"
	authHTTP "todo-web/internal/auth/delivery/http"
	authRepo "todo-web/internal/auth/repository/rest"
	authUC "todo-web/internal/auth/usecase"
	"todo-web/internal/confirm"
	"todo-web/internal/credential"
	"todo-web/internal/middleware"
	"todo-web/internal/session"
	todoHTTP "todo-web/internal/todo/delivery/http"
	todoRepo "todo-web/internal/todo/repository/rest"
	"todo-web/internal/todo/tasklist"
	todoUC "todo-web/internal/todo/usecase"
	validationHTTP "todo-web/internal/validation/delivery/http"
	"todo-web/internal/view"
	"todo-web/pkg/todoapi"
)

// components are shared by every domain.
type components struct {
	client   *todoapi.Client
	notifier session.Notifier
	render   *view.Renderer
	lists    *tasklist.Registry
	authUC   auth.UseCase
	mw       middleware.Middleware
}

func (srv HTTPServer) newComponents() components {
	credentials := credential.New(srv.storage, srv.l)
	notifier := session.NewNotifier(srv.storage, srv.l)
	client := todoapi.NewClient(srv.backend.BaseURL, credential.NewTokenSource(credentials, srv.l), srv.backend.Timeout)
	lists := tasklist.NewRegistry(srv.taskList.Size, srv.taskList.IdleTTL)

	auc := authUC.New(srv.l, authRepo.New(client, srv.l), credentials, notifier, lists)

	return components{
		client:   client,
		notifier: notifier,
		render:   view.NewRenderer(notifier, srv.l),
		lists:    lists,
		authUC:   auc,
		mw:       middleware.New(srv.l, auc, notifier, srv.session, srv.auth),
	}
}

// setupAuthDomain registers the login, signup and logout pages and GET /api/v1/session.
func (srv HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, cp components) {
	h := authHTTP.New(srv.l, cp.authUC, cp.notifier, cp.render)
	authHTTP.RegisterRoutes(srv.gin, api, h, cp.mw)

	srv.l.Infof(ctx, "Auth domain registered")
}

// setupTodoDomain registers the /todo pages.
//
//  1. Repository: REST backend
//  2. UseCase:    list registry plus one confirmation gate per action kind
//  3. Handler and routes
func (srv HTTPServer) setupTodoDomain(ctx context.Context, cp components) {
	repo := todoRepo.New(cp.client, srv.l)

	uc := todoUC.New(srv.l, repo, cp.lists, cp.notifier,
		confirm.NewGate(confirm.KindDelete, srv.confirmation.Size, srv.confirmation.TTL),
		confirm.NewGate(confirm.KindToggle, srv.confirmation.Size, srv.confirmation.TTL),
	)

	h := todoHTTP.New(srv.l, uc, cp.notifier, cp.render)
	todoHTTP.RegisterRoutes(srv.gin, h, cp.mw)

	srv.l.Infof(ctx, "Todo domain registered")
}

// setupValidationRoutes registers POST /api/v1/forms/:form/validate.
func (srv HTTPServer) setupValidationRoutes(ctx context.Context, api *gin.RouterGroup) {
	h := validationHTTP.New(srv.l)
	validationHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Form validation routes registered")
}
