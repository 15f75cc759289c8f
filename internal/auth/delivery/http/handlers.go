package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todo-web/internal/validation"
	"todo-web/internal/view"
	"todo-web/pkg/response"
)

const (
	titleLogin  = "Login"
	titleSignup = "Sign Up"
	pathHome    = "/todo"
	pathLogin   = "/auth/login"
)

// LoginPage godoc
// @Summary     Login page
// @Tags        Auth
// @Produce     html
// @Success     200
// @Success     303 "Already signed in, redirected to /todo"
// @Router      /auth/login [GET]
func (h *handler) LoginPage(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, view.PageLogin, titleLogin, view.LoginData{})
}

// Login godoc
// @Summary     Submit credentials
// @Description Validates the form, exchanges the credentials for a token and keeps it for the session.
// @Tags        Auth
// @Accept      x-www-form-urlencoded
// @Produce     html
// @Param       email    formData string true "Email"
// @Param       password formData string true "Password"
// @Success     303 "Redirected to /todo"
// @Failure     401 "Form re-rendered with a notification"
// @Failure     422 "Form re-rendered with field errors"
// @Router      /auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processLoginReq(c)
	if err != nil {
		h.l.Warnf(ctx, "auth.http.Login: processLoginReq: %v", err)
		h.render.HTML(c, http.StatusBadRequest, view.PageLogin, titleLogin, req.toView(nil))
		return
	}

	if err := h.uc.Login(ctx, sc, req.toInput()); err != nil {
		if errs, ok := validation.AsErrors(err); ok {
			h.render.HTML(c, http.StatusUnprocessableEntity, view.PageLogin, titleLogin, req.toView(errs))
			return
		}
		h.l.Warnf(ctx, "auth.http.Login: uc.Login: %v", err)
		status, msg := h.mapError(err, "Login failed")
		h.notifier.Failure(ctx, sc, msg)
		h.render.HTML(c, status, view.PageLogin, titleLogin, req.toView(nil))
		return
	}

	view.Redirect(c, pathHome)
}

// SignupPage godoc
// @Summary     Signup page
// @Tags        Auth
// @Produce     html
// @Success     200
// @Router      /auth/signup [GET]
func (h *handler) SignupPage(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, view.PageSignup, titleSignup, view.SignupData{})
}

// Signup godoc
// @Summary     Create an account
// @Tags        Auth
// @Accept      x-www-form-urlencoded
// @Produce     html
// @Param       email           formData string true "Email"
// @Param       userName        formData string true "User name"
// @Param       mobile          formData string true "Mobile number"
// @Param       password        formData string true "Password"
// @Param       confirmPassword formData string true "Password again"
// @Success     303 "Redirected to /todo"
// @Failure     400 "Form re-rendered with a notification"
// @Failure     422 "Form re-rendered with field errors"
// @Router      /auth/signup [POST]
func (h *handler) Signup(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processSignupReq(c)
	if err != nil {
		h.l.Warnf(ctx, "auth.http.Signup: processSignupReq: %v", err)
		h.render.HTML(c, http.StatusBadRequest, view.PageSignup, titleSignup, req.toView(nil))
		return
	}

	if err := h.uc.Signup(ctx, sc, req.toInput()); err != nil {
		if errs, ok := validation.AsErrors(err); ok {
			h.render.HTML(c, http.StatusUnprocessableEntity, view.PageSignup, titleSignup, req.toView(errs))
			return
		}
		h.l.Warnf(ctx, "auth.http.Signup: uc.Signup: %v", err)
		status, msg := h.mapError(err, "Signup failed")
		h.notifier.Failure(ctx, sc, msg)
		h.render.HTML(c, status, view.PageSignup, titleSignup, req.toView(nil))
		return
	}

	view.Redirect(c, pathHome)
}

// Logout godoc
// @Summary     Sign out
// @Description Clears the session's credential.
// @Tags        Auth
// @Success     303 "Redirected to /auth/login"
// @Router      /auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := scope(c)
	if err != nil {
		view.Redirect(c, pathLogin)
		return
	}
	if err := h.uc.Logout(ctx, sc); err != nil {
		h.l.Errorf(ctx, "auth.http.Logout: uc.Logout: %v", err)
	}
	view.Redirect(c, pathLogin)
}

// Session godoc
// @Summary     Session state
// @Description Reports whether the calling browser session is signed in.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp{data=sessionResp}
// @Router      /api/v1/session [GET]
func (h *handler) Session(c *gin.Context) {
	sc, err := scope(c)
	if err != nil {
		response.OK(c, sessionResp{})
		return
	}
	response.OK(c, sessionResp{Authenticated: h.uc.IsAuthenticated(c.Request.Context(), sc)})
}
