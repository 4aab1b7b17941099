package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/docchat-ai/docchat/app/logic/v1"
	"github.com/docchat-ai/docchat/app/response"
	"github.com/docchat-ai/docchat/pkg/utils"
)

func (s *HttpSrv) Query(c *gin.Context) {
	var (
		err  error
		args v1.QueryArgs
	)
	if err = utils.BindArgsWithGin(c, &args); err != nil {
		response.APIError(c, err)
		return
	}

	result, err := v1.NewQueryLogic(c, s.Core).Query(args)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, result)
}

type QueryHistoryRequest struct {
	WorkspaceID string `json:"workspace_id" form:"workspace_id"`
	Page        uint64 `json:"page" form:"page" binding:"required"`
	Pagesize    uint64 `json:"pagesize" form:"pagesize" binding:"required,max=50"`
}

func (s *HttpSrv) QueryHistory(c *gin.Context) {
	var (
		err error
		req QueryHistoryRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	result, err := v1.NewQueryLogic(c, s.Core).History(req.WorkspaceID, req.Page, req.Pagesize)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, result)
}
