package usecase

import (
	"context"
	"fmt"

	"todo-web/internal/auth"
	"todo-web/internal/auth/repository"
	"todo-web/internal/model"
	"todo-web/internal/validation"
)

// Login validates the form, makes one backend call and keeps the returned
// token for the session. Nothing is stored unless a token comes back.
func (uc *implUseCase) Login(ctx context.Context, sc model.Scope, input auth.LoginInput) error {
	form := validation.LoginForm{Email: input.Email, Password: input.Password}
	if err := validation.Validate(&form); err != nil {
		return err
	}

	token, err := uc.repo.Login(ctx, repository.LoginOptions{
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", auth.ErrAuthFailed, err)
	}
	if token == "" {
		uc.l.Warnf(ctx, "auth.usecase.Login: response carried no token")
		return auth.ErrAuthFailed
	}

	if err := uc.credentials.Set(ctx, sc, token); err != nil {
		uc.l.Errorf(ctx, "auth.usecase.Login: credentials.Set: %v", err)
		return err
	}

	uc.notifier.Success(ctx, sc, auth.MsgLoginSucceeded)
	return nil
}

func (uc *implUseCase) Signup(ctx context.Context, sc model.Scope, input auth.SignupInput) error {
	form := validation.SignupForm{
		Email:           input.Email,
		UserName:        input.UserName,
		Mobile:          input.Mobile,
		Password:        input.Password,
		ConfirmPassword: input.ConfirmPassword,
	}
	if err := validation.Validate(&form); err != nil {
		return err
	}

	token, err := uc.repo.Signup(ctx, repository.SignupOptions{
		Email:           form.Email,
		UserName:        form.UserName,
		Mobile:          form.Mobile,
		Password:        form.Password,
		ConfirmPassword: form.ConfirmPassword,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", auth.ErrSignupFailed, err)
	}
	if token == "" {
		uc.l.Warnf(ctx, "auth.usecase.Signup: response carried no token")
		return auth.ErrSignupFailed
	}

	if err := uc.credentials.Set(ctx, sc, token); err != nil {
		uc.l.Errorf(ctx, "auth.usecase.Signup: credentials.Set: %v", err)
		return err
	}

	uc.notifier.Success(ctx, sc, auth.MsgSignupSucceeded)
	return nil
}
