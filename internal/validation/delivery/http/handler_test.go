package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	pkgLog "todo-web/pkg/log"
	"todo-web/pkg/response"
)

func TestValidate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(pkgLog.NewNop()))

	tests := []struct {
		name       string
		form       string
		body       string
		wantStatus int
		wantField  string
	}{
		{"valid login", "login", `{"email":"a@b.co","password":"secret1"}`, http.StatusOK, ""},
		{"bad email", "login", `{"email":"nope","password":"secret1"}`, http.StatusUnprocessableEntity, "email"},
		{"password mismatch", "signup", `{"email":"a@b.co","userName":"alice","mobile":"0123456789","password":"secret1","confirmPassword":"secret2"}`, http.StatusUnprocessableEntity, "confirmPassword"},
		{"short description", "task", `{"title":"t","description":"short"}`, http.StatusUnprocessableEntity, "description"},
		{"unknown form", "profile", `{}`, http.StatusNotFound, ""},
		{"malformed body", "login", `{`, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/forms/"+tt.form+"/validate", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, w.Code)
			}
			if tt.wantField == "" {
				return
			}
			var resp response.Resp
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if resp.Errors[tt.wantField] == "" {
				t.Errorf("expected error for %s, got %v", tt.wantField, resp.Errors)
			}
		})
	}
}
