package http

import (
	"todo-web/internal/auth"
	"todo-web/internal/validation"
	"todo-web/internal/view"
)

type loginReq struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{Email: r.Email, Password: r.Password}
}

// toView echoes the submission back. Passwords are never re-rendered.
func (r loginReq) toView(errs validation.Errors) view.LoginData {
	return view.LoginData{
		Form:   validation.LoginForm{Email: r.Email},
		Errors: errs,
	}
}

type signupReq struct {
	Email           string `form:"email"`
	UserName        string `form:"userName"`
	Mobile          string `form:"mobile"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirmPassword"`
}

func (r signupReq) toInput() auth.SignupInput {
	return auth.SignupInput{
		Email:           r.Email,
		UserName:        r.UserName,
		Mobile:          r.Mobile,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
	}
}

func (r signupReq) toView(errs validation.Errors) view.SignupData {
	return view.SignupData{
		Form: validation.SignupForm{
			Email:    r.Email,
			UserName: r.UserName,
			Mobile:   r.Mobile,
		},
		Errors: errs,
	}
}

type sessionResp struct {
	Authenticated bool `json:"authenticated"`
}
