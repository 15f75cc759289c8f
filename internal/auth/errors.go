package auth

import "errors"

var (
	// ErrAuthFailed covers a rejected login and a response without a token.
	ErrAuthFailed   = errors.New("authentication failed")
	ErrSignupFailed = errors.New("signup failed")
)
