package usecase

import (
	"context"

	"todo-web/internal/auth"
	"todo-web/internal/model"
)

// Logout clears the session's credential and drops its cached state.
func (uc *implUseCase) Logout(ctx context.Context, sc model.Scope) error {
	if err := uc.credentials.Clear(ctx, sc); err != nil {
		uc.l.Errorf(ctx, "auth.usecase.Logout: credentials.Clear: %v", err)
		return err
	}
	for _, s := range uc.state {
		s.Forget(sc)
	}

	uc.notifier.Success(ctx, sc, auth.MsgLoggedOut)
	return nil
}

// IsAuthenticated is re-evaluated on every request. A storage failure
// counts as signed out.
func (uc *implUseCase) IsAuthenticated(ctx context.Context, sc model.Scope) bool {
	_, ok, err := uc.credentials.Get(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.IsAuthenticated: credentials.Get: %v", err)
		return false
	}
	return ok
}
