package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/docchat-ai/docchat/app/logic/v1"
	"github.com/docchat-ai/docchat/app/response"
	"github.com/docchat-ai/docchat/pkg/types"
	"github.com/docchat-ai/docchat/pkg/utils"
)

type ListUsersRequest struct {
	Status   string `json:"status" form:"status" binding:"omitempty,oneof=pending active rejected"`
	Page     uint64 `json:"page" form:"page" binding:"required"`
	Pagesize uint64 `json:"pagesize" form:"pagesize" binding:"required,max=50"`
}

func (s *HttpSrv) ListUsers(c *gin.Context) {
	var (
		err error
		req ListUsersRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	result, err := v1.NewAdminUserLogic(c, s.Core).ListUsers(types.UserStatus(req.Status), req.Page, req.Pagesize)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, result)
}

type ReviewUserRequest struct {
	UserID string `json:"user_id" form:"user_id" binding:"required"`
}

type SetGlobalRoleRequest struct {
	UserID string `json:"user_id" form:"user_id" binding:"required"`
	Role   string `json:"role" form:"role" binding:"required,oneof=role-admin role-member"`
}

func (s *HttpSrv) SetGlobalRole(c *gin.Context) {
	var (
		err error
		req SetGlobalRoleRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if err = v1.NewAdminUserLogic(c, s.Core).SetGlobalRole(req.UserID, req.Role); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}

func (s *HttpSrv) DeleteUser(c *gin.Context) {
	var (
		err error
		req ReviewUserRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if err = v1.NewAdminUserLogic(c, s.Core).DeleteUser(req.UserID); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}

func (s *HttpSrv) ApproveUser(c *gin.Context) {
	var (
		err error
		req ReviewUserRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if err = v1.NewAdminUserLogic(c, s.Core).ApproveUser(req.UserID); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}

func (s *HttpSrv) RejectUser(c *gin.Context) {
	var (
		err error
		req ReviewUserRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if err = v1.NewAdminUserLogic(c, s.Core).RejectUser(req.UserID); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}
