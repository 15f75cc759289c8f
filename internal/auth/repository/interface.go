package repository

import "context"

// Repository exchanges credentials for a bearer token.
type Repository interface {
	Login(ctx context.Context, opt LoginOptions) (string, error)
	Signup(ctx context.Context, opt SignupOptions) (string, error)
}

type LoginOptions struct {
	Email    string
	Password string
}

type SignupOptions struct {
	Email           string
	UserName        string
	Mobile          string
	Password        string
	ConfirmPassword string
}
