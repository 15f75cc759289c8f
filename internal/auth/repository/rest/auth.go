package rest

import (
	"context"

	"todo-web/internal/auth/repository"
	pkgLog "todo-web/pkg/log"
	"todo-web/pkg/todoapi"
)

type implRepository struct {
	client *todoapi.Client
	l      pkgLog.Logger
}

// New creates a Repository backed by the backend's auth endpoints.
func New(client *todoapi.Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) Login(ctx context.Context, opt repository.LoginOptions) (string, error) {
	res, err := r.client.Login(ctx, todoapi.LoginRequest{
		Email:    opt.Email,
		Password: opt.Password,
	})
	if err != nil {
		r.l.Warnf(ctx, "rest repository: login: %v", err)
		return "", err
	}
	return res.Token, nil
}

func (r *implRepository) Signup(ctx context.Context, opt repository.SignupOptions) (string, error) {
	res, err := r.client.Signup(ctx, todoapi.SignupRequest{
		Email:           opt.Email,
		UserName:        opt.UserName,
		Mobile:          opt.Mobile,
		Password:        opt.Password,
		ConfirmPassword: opt.ConfirmPassword,
	})
	if err != nil {
		r.l.Warnf(ctx, "rest repository: signup: %v", err)
		return "", err
	}
	return res.Token, nil
}
