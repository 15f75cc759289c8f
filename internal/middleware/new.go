package middleware

import (
	"context"

	"todo-web/config"
	"todo-web/internal/model"
	"todo-web/internal/session"
	"todo-web/pkg/log"
)

// Authenticator answers whether a session holds a credential.
type Authenticator interface {
	IsAuthenticated(ctx context.Context, sc model.Scope) bool
}

type Middleware struct {
	l            log.Logger
	authn        Authenticator
	notifier     session.Notifier
	cookieConfig config.SessionConfig
	throttle     *rateLimiter
}

func New(l log.Logger, authn Authenticator, notifier session.Notifier, cookieConfig config.SessionConfig, authConfig config.AuthConfig) Middleware {
	return Middleware{
		l:            l,
		authn:        authn,
		notifier:     notifier,
		cookieConfig: cookieConfig,
		throttle:     newRateLimiter(authConfig.RateLimitPerMin),
	}
}
