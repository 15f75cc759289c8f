package model_test

import (
	"context"
	"testing"

	"todo-web/internal/model"
)

func TestScopeContext(t *testing.T) {
	if _, ok := model.GetScopeFromContext(context.Background()); ok {
		t.Errorf("expected no scope in empty context")
	}

	ctx := model.SetScopeToContext(context.Background(), model.Scope{SessionID: "s1"})
	sc, ok := model.GetScopeFromContext(ctx)
	if !ok || sc.SessionID != "s1" {
		t.Errorf("unexpected scope: %+v ok=%v", sc, ok)
	}

	ctx = model.SetScopeToContext(context.Background(), model.Scope{})
	if _, ok := model.GetScopeFromContext(ctx); ok {
		t.Errorf("expected empty session id to be rejected")
	}
}
