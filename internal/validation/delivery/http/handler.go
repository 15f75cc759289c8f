package http

import (
	"github.com/gin-gonic/gin"

	"todo-web/internal/validation"
	pkgErrors "todo-web/pkg/errors"
	"todo-web/pkg/log"
	"todo-web/pkg/response"
)

type handler struct {
	l log.Logger
}

// New creates the handler that exposes the form rules as JSON.
func New(l log.Logger) *handler {
	return &handler{l: l}
}

// Validate godoc
// @Summary     Validate a form
// @Description Runs the same rules the server applies on submit, so pages can check input as it is typed.
// @Tags        Forms
// @Accept      json
// @Produce     json
// @Param       form path string true "login, signup or task"
// @Param       body body object true "Raw form values"
// @Success     200 {object} response.Resp "Form may be submitted"
// @Failure     404 {object} response.Resp "Unknown form"
// @Failure     422 {object} response.Resp "Field errors"
// @Router      /api/v1/forms/{form}/validate [POST]
func (h *handler) Validate(c *gin.Context) {
	form, ok := validation.ByName(c.Param("form"))
	if !ok {
		response.Error(c, pkgErrors.ErrNotFound, nil)
		return
	}
	if err := c.ShouldBindJSON(form); err != nil {
		response.Error(c, pkgErrors.ErrBadRequest, nil)
		return
	}

	err := validation.Validate(form)
	if err == nil {
		response.OK(c, nil)
		return
	}
	if errs, ok := validation.AsErrors(err); ok {
		response.ValidationError(c, errs)
		return
	}
	h.l.Errorf(c.Request.Context(), "validation.http.Validate: %v", err)
	response.InternalError(c, err)
}

// RegisterRoutes maps the validation endpoint under the JSON API group.
func RegisterRoutes(api *gin.RouterGroup, h *handler) {
	api.POST("/forms/:form/validate", h.Validate)
}
