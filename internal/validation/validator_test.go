package validation_test

import (
	"strings"
	"testing"

	"todo-web/internal/validation"
)

var longDescription = strings.Repeat("a", 50)

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name       string
		form       validation.LoginForm
		wantFields map[string]string
	}{
		{"valid", validation.LoginForm{Email: " Alice@Example.com ", Password: "secret1"}, nil},
		{"empty", validation.LoginForm{}, map[string]string{
			"email":    "Email is required",
			"password": "Password is required",
		}},
		{"bad email", validation.LoginForm{Email: "not-an-email", Password: "secret1"}, map[string]string{
			"email": "Invalid email address",
		}},
		{"short password", validation.LoginForm{Email: "a@b.co", Password: "123"}, map[string]string{
			"password": "Password must be at least 6 characters",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.form
			err := validation.Validate(&f)
			assertFields(t, err, tt.wantFields)
		})
	}
}

func TestValidateTrimsEmailKeepsCase(t *testing.T) {
	login := validation.LoginForm{Email: " Alice@Example.com ", Password: "secret1"}
	if err := validation.Validate(&login); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if login.Email != "Alice@Example.com" {
		t.Errorf("expected trimmed email as typed, got %q", login.Email)
	}

	signup := validation.SignupForm{
		Email: "\tBob@Example.COM", UserName: "bob", Mobile: "0123456789",
		Password: "secret1", ConfirmPassword: "secret1",
	}
	if err := validation.Validate(&signup); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if signup.Email != "Bob@Example.COM" {
		t.Errorf("expected trimmed email as typed, got %q", signup.Email)
	}
}

func TestValidateSignup(t *testing.T) {
	valid := validation.SignupForm{
		Email: "a@b.co", UserName: "alice", Mobile: "0123456789",
		Password: "secret1", ConfirmPassword: "secret1",
	}

	tests := []struct {
		name       string
		mutate     func(f *validation.SignupForm)
		wantFields map[string]string
	}{
		{"valid", func(f *validation.SignupForm) {}, nil},
		{"password mismatch", func(f *validation.SignupForm) { f.ConfirmPassword = "secret2" }, map[string]string{
			"confirmPassword": "Passwords do not match",
		}},
		{"short user name", func(f *validation.SignupForm) { f.UserName = "al" }, map[string]string{
			"userName": "User Name must be at least 3 characters",
		}},
		{"mobile letters", func(f *validation.SignupForm) { f.Mobile = "01234abcde" }, map[string]string{
			"mobile": "Mobile no. must contain digits only",
		}},
		{"mobile too short", func(f *validation.SignupForm) { f.Mobile = "12345" }, map[string]string{
			"mobile": "Mobile no. must be 10 to 15 digits",
		}},
		{"mobile too long", func(f *validation.SignupForm) { f.Mobile = "1234567890123456" }, map[string]string{
			"mobile": "Mobile no. must be 10 to 15 digits",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.mutate(&f)
			assertFields(t, validation.Validate(&f), tt.wantFields)
		})
	}
}

func TestValidateTask(t *testing.T) {
	tests := []struct {
		name       string
		form       validation.TaskForm
		wantFields map[string]string
	}{
		{"valid", validation.TaskForm{Title: "Buy milk", Description: longDescription}, nil},
		{"blank title", validation.TaskForm{Title: "   ", Description: longDescription}, map[string]string{
			"title": "Title is required",
		}},
		{"short description", validation.TaskForm{Title: "Buy milk", Description: "too short"}, map[string]string{
			"description": "Description must be at least 50 characters",
		}},
		{"padded description", validation.TaskForm{Title: "Buy milk", Description: "  " + longDescription[:49] + "  "}, map[string]string{
			"description": "Description must be at least 50 characters",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.form
			assertFields(t, validation.Validate(&f), tt.wantFields)
		})
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{validation.FormLogin, validation.FormSignup, validation.FormTask} {
		if _, ok := validation.ByName(name); !ok {
			t.Errorf("expected form %q", name)
		}
	}
	if _, ok := validation.ByName("unknown"); ok {
		t.Errorf("expected unknown form to be rejected")
	}
}

func TestErrorsMessage(t *testing.T) {
	err := validation.Errors{"title": "Title is required", "description": "Description is required"}
	want := "validation failed: description: Description is required; title: Title is required"
	if err.Error() != want {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func assertFields(t *testing.T, err error, want map[string]string) {
	t.Helper()
	if want == nil {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return
	}
	got, ok := validation.AsErrors(err)
	if !ok {
		t.Fatalf("expected validation.Errors, got %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected fields %v, got %v", want, got)
	}
	for field, msg := range want {
		if got[field] != msg {
			t.Errorf("field %s: expected %q, got %q", field, msg, got[field])
		}
	}
}
