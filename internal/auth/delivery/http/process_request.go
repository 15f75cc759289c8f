package http

import (
	"github.com/gin-gonic/gin"

	"todo-web/internal/model"
)

func (h *handler) processLoginReq(c *gin.Context) (model.Scope, loginReq, error) {
	var req loginReq
	sc, err := scope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBind(&req); err != nil {
		return sc, req, err
	}
	return sc, req, nil
}

func (h *handler) processSignupReq(c *gin.Context) (model.Scope, signupReq, error) {
	var req signupReq
	sc, err := scope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBind(&req); err != nil {
		return sc, req, err
	}
	return sc, req, nil
}

func scope(c *gin.Context) (model.Scope, error) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, errMissingSession
	}
	return sc, nil
}
