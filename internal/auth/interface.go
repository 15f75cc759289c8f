package auth

import (
	"context"

	"todo-web/internal/model"
)

// UseCase signs a browser session in and out.
type UseCase interface {
	Login(ctx context.Context, sc model.Scope, input LoginInput) error
	Signup(ctx context.Context, sc model.Scope, input SignupInput) error
	Logout(ctx context.Context, sc model.Scope) error
	// IsAuthenticated reports whether the session holds a credential.
	IsAuthenticated(ctx context.Context, sc model.Scope) bool
}
