package validation

import "strings"

const (
	FormLogin  = "login"
	FormSignup = "signup"
	FormTask   = "task"
)

type LoginForm struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
}

func (f *LoginForm) normalize() {
	f.Email = strings.TrimSpace(f.Email)
}

func (f *LoginForm) messages() map[string]string {
	return map[string]string{
		"email.required":    "Email is required",
		"email.email":       "Invalid email address",
		"password.required": "Password is required",
		"password.min":      "Password must be at least 6 characters",
	}
}

type SignupForm struct {
	Email           string `json:"email" form:"email" validate:"required,email"`
	UserName        string `json:"userName" form:"userName" validate:"required,min=3"`
	Mobile          string `json:"mobile" form:"mobile" validate:"required,numeric,min=10,max=15"`
	Password        string `json:"password" form:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" validate:"required,min=6,eqfield=Password"`
}

func (f *SignupForm) normalize() {
	f.Email = strings.TrimSpace(f.Email)
	f.UserName = strings.TrimSpace(f.UserName)
	f.Mobile = strings.TrimSpace(f.Mobile)
}

func (f *SignupForm) messages() map[string]string {
	return map[string]string{
		"email.required":           "Email is required",
		"email.email":              "Invalid email address",
		"userName.required":        "User Name is required",
		"userName.min":             "User Name must be at least 3 characters",
		"mobile.required":          "Mobile no. is required",
		"mobile.numeric":           "Mobile no. must contain digits only",
		"mobile.min":               "Mobile no. must be 10 to 15 digits",
		"mobile.max":               "Mobile no. must be 10 to 15 digits",
		"password.required":        "Password is required",
		"password.min":             "Password must be at least 6 characters",
		"confirmPassword.required": "Please confirm your password",
		"confirmPassword.min":      "Password must be at least 6 characters",
		"confirmPassword.eqfield":  "Passwords do not match",
	}
}

type TaskForm struct {
	Title       string `json:"title" form:"title" validate:"required"`
	Description string `json:"description" form:"description" validate:"required,min=50"`
}

func (f *TaskForm) normalize() {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
}

func (f *TaskForm) messages() map[string]string {
	return map[string]string{
		"title.required":       "Title is required",
		"description.required": "Description is required",
		"description.min":      "Description must be at least 50 characters",
	}
}
