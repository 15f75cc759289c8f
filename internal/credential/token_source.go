package credential

import (
	"context"

	"todo-web/internal/model"
	pkgLog "todo-web/pkg/log"
)

// TokenSource reads the token of the session found in the request context.
type TokenSource struct {
	store Store
	l     pkgLog.Logger
}

// NewTokenSource adapts store for the backend client.
func NewTokenSource(store Store, l pkgLog.Logger) *TokenSource {
	return &TokenSource{store: store, l: l}
}

// AccessToken reports the current token. Storage failures count as "no token";
// the backend then decides whether the call is authorized.
func (ts *TokenSource) AccessToken(ctx context.Context) (string, bool) {
	sc, ok := model.GetScopeFromContext(ctx)
	if !ok {
		return "", false
	}
	token, ok, err := ts.store.Get(ctx, sc)
	if err != nil {
		ts.l.Errorf(ctx, "credential: read token for session %s: %v", sc.SessionID, err)
		return "", false
	}
	return token, ok
}
