package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"todo-web/internal/confirm"
	"todo-web/internal/todo"
	"todo-web/internal/validation"
	"todo-web/internal/view"
)

const (
	titleList   = "To Do List"
	titleCreate = "Create Todo"
	titleEdit   = "Edit Todo"
	pathList    = "/todo"
)

// List godoc
// @Summary     Task list
// @Description Refreshes the session's list from the backend and renders it with any open confirmation.
// @Tags        Todo
// @Produce     html
// @Success     200
// @Failure     303 "Not signed in, redirected to /auth/login"
// @Router      /todo [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := scope(c)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	out, err := h.uc.Mount(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "todo.http.List: uc.Mount: %v", err)
		_, msg := h.mapError(err)
		h.notifier.Failure(ctx, sc, msg)
	}

	h.render.HTML(c, http.StatusOK, view.PageTodoList, titleList, newListData(out))
}

// CreatePage godoc
// @Summary     Create form
// @Tags        Todo
// @Produce     html
// @Success     200
// @Router      /todo/create [GET]
func (h *handler) CreatePage(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, view.PageTodoForm, titleCreate, view.TaskFormData{})
}

// Create godoc
// @Summary     Create a task
// @Tags        Todo
// @Accept      x-www-form-urlencoded
// @Produce     html
// @Param       title       formData string true "Title"
// @Param       description formData string true "Description, at least 50 characters"
// @Success     303 "Redirected to /todo"
// @Failure     422 "Form re-rendered with field errors"
// @Failure     502 "Form re-rendered with a notification"
// @Router      /todo/create [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processTaskReq(c)
	if err != nil {
		h.l.Warnf(ctx, "todo.http.Create: processTaskReq: %v", err)
		h.render.HTML(c, http.StatusBadRequest, view.PageTodoForm, titleCreate, req.toView(0, nil))
		return
	}

	if _, err := h.uc.Create(ctx, sc, req.toInput()); err != nil {
		if errs, ok := validation.AsErrors(err); ok {
			h.render.HTML(c, http.StatusUnprocessableEntity, view.PageTodoForm, titleCreate, req.toView(0, errs))
			return
		}
		h.l.Errorf(ctx, "todo.http.Create: uc.Create: %v", err)
		status, msg := h.mapError(err)
		h.notifier.Failure(ctx, sc, msg)
		h.render.HTML(c, status, view.PageTodoForm, titleCreate, req.toView(0, nil))
		return
	}

	view.Redirect(c, pathList)
}

// Detail godoc
// @Summary     Edit form
// @Description Loads one task into the edit form, or shows "Todo not found".
// @Tags        Todo
// @Produce     html
// @Param       id path int true "Task ID"
// @Success     200
// @Failure     404 "Not found page"
// @Router      /todo/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		h.notFound(c, err)
		return
	}

	t, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		if !errors.Is(err, todo.ErrNotFound) {
			h.l.Errorf(ctx, "todo.http.Detail: uc.Detail: %v", err)
		}
		h.notFound(c, err)
		return
	}

	h.render.HTML(c, http.StatusOK, view.PageTodoForm, titleEdit, newTaskFormData(t))
}

// Update godoc
// @Summary     Update a task
// @Tags        Todo
// @Accept      x-www-form-urlencoded
// @Produce     html
// @Param       id          path     int    true "Task ID"
// @Param       title       formData string true "Title"
// @Param       description formData string true "Description, at least 50 characters"
// @Success     303 "Redirected to /todo"
// @Failure     404 "Not found page"
// @Failure     422 "Form re-rendered with field errors"
// @Router      /todo/{id} [POST]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		h.notFound(c, err)
		return
	}
	_, req, err := h.processTaskReq(c)
	if err != nil {
		h.l.Warnf(ctx, "todo.http.Update: processTaskReq: %v", err)
		h.render.HTML(c, http.StatusBadRequest, view.PageTodoForm, titleEdit, req.toView(id, nil))
		return
	}

	if _, err := h.uc.Update(ctx, sc, id, req.toInput()); err != nil {
		if errs, ok := validation.AsErrors(err); ok {
			h.render.HTML(c, http.StatusUnprocessableEntity, view.PageTodoForm, titleEdit, req.toView(id, errs))
			return
		}
		if errors.Is(err, todo.ErrNotFound) {
			h.notFound(c, err)
			return
		}
		h.l.Errorf(ctx, "todo.http.Update: uc.Update: %v", err)
		status, msg := h.mapError(err)
		h.notifier.Failure(ctx, sc, msg)
		h.render.HTML(c, status, view.PageTodoForm, titleEdit, req.toView(id, nil))
		return
	}

	view.Redirect(c, pathList)
}

// RequestDelete godoc
// @Summary     Ask to delete a task
// @Description Opens the delete confirmation. Nothing is sent to the backend yet.
// @Tags        Todo
// @Param       id path int true "Task ID"
// @Success     303 "Redirected to /todo"
// @Router      /todo/{id}/delete [POST]
func (h *handler) RequestDelete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.uc.RequestDelete(ctx, sc, id)
	view.Redirect(c, pathList)
}

// RequestToggle godoc
// @Summary     Ask to flip a task's completion
// @Description Opens the status confirmation with a prompt matching the task's current state.
// @Tags        Todo
// @Param       id path int true "Task ID"
// @Success     303 "Redirected to /todo"
// @Router      /todo/{id}/toggle [POST]
func (h *handler) RequestToggle(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	if _, err := h.uc.RequestToggle(ctx, sc, id); err != nil {
		h.fail(c, err)
		return
	}
	view.Redirect(c, pathList)
}

// Confirm godoc
// @Summary     Confirm a pending action
// @Description Runs the guarded delete or status change once, then closes the confirmation.
// @Tags        Todo
// @Param       kind path string true "delete or toggle"
// @Param       cid  path string true "Confirmation ID"
// @Success     303 "Redirected to /todo"
// @Router      /todo/confirmations/{kind}/{cid}/confirm [POST]
func (h *handler) Confirm(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processConfirmationReq(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	err = h.uc.Confirm(ctx, sc, req.Kind, req.ID)
	switch {
	case err == nil:
	case errors.Is(err, todo.ErrUnknownKind), errors.Is(err, confirm.ErrNotOpen):
		h.fail(c, err)
		return
	default:
		// The outcome notification is already queued.
		h.l.Warnf(ctx, "todo.http.Confirm: %s: %v", req.Kind, err)
	}
	view.Redirect(c, pathList)
}

// Cancel godoc
// @Summary     Dismiss a pending action
// @Tags        Todo
// @Param       kind path string true "delete or toggle"
// @Param       cid  path string true "Confirmation ID"
// @Success     303 "Redirected to /todo"
// @Router      /todo/confirmations/{kind}/{cid}/cancel [POST]
func (h *handler) Cancel(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processConfirmationReq(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := h.uc.Cancel(ctx, sc, req.Kind, req.ID); err != nil {
		h.fail(c, err)
		return
	}
	view.Redirect(c, pathList)
}

// fail queues the mapped notification and returns to the list.
func (h *handler) fail(c *gin.Context, err error) {
	ctx := c.Request.Context()
	if sc, scErr := scope(c); scErr == nil {
		_, msg := h.mapError(err)
		h.notifier.Failure(ctx, sc, msg)
	}
	view.Redirect(c, pathList)
}

// notFound renders the inline message in place of the edit form.
func (h *handler) notFound(c *gin.Context, err error) {
	status, msg := h.mapError(err)
	h.render.HTML(c, status, view.PageNotFound, titleEdit, view.NotFoundData{Message: msg})
}
