package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"todo-web/internal/confirm"
	"todo-web/internal/model"
	"todo-web/internal/todo"
)

type confirmationReq struct {
	Kind confirm.Kind
	ID   string
}

func scope(c *gin.Context) (model.Scope, error) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, errMissingSession
	}
	return sc, nil
}

// processIDReq reads the task id path parameter. Ids the backend could
// never assign are reported as not found.
func (h *handler) processIDReq(c *gin.Context) (model.Scope, int64, error) {
	sc, err := scope(c)
	if err != nil {
		return sc, 0, err
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return sc, 0, todo.ErrNotFound
	}
	return sc, id, nil
}

func (h *handler) processTaskReq(c *gin.Context) (model.Scope, taskReq, error) {
	var req taskReq
	sc, err := scope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBind(&req); err != nil {
		return sc, req, err
	}
	return sc, req, nil
}

func (h *handler) processConfirmationReq(c *gin.Context) (model.Scope, confirmationReq, error) {
	sc, err := scope(c)
	if err != nil {
		return sc, confirmationReq{}, err
	}
	return sc, confirmationReq{
		Kind: confirm.Kind(c.Param("kind")),
		ID:   c.Param("cid"),
	}, nil
}
