package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/docchat-ai/docchat/app/logic/v1"
	"github.com/docchat-ai/docchat/app/response"
	"github.com/docchat-ai/docchat/pkg/utils"
)

type CreateWorkspaceRequest struct {
	Title       string `json:"title" form:"title" binding:"required,max=64"`
	Description string `json:"description" form:"description" binding:"max=512"`
}

type CreateWorkspaceResponse struct {
	WorkspaceID string `json:"workspace_id"`
}

func (s *HttpSrv) CreateWorkspace(c *gin.Context) {
	var (
		err error
		req CreateWorkspaceRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	workspaceID, err := v1.NewWorkspaceLogic(c, s.Core).CreateWorkspace(req.Title, req.Description)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, CreateWorkspaceResponse{
		WorkspaceID: workspaceID,
	})
}

func (s *HttpSrv) GetWorkspace(c *gin.Context) {
	workspaceID, _ := c.Params.Get("workspaceid")
	workspace, err := v1.NewWorkspaceLogic(c, s.Core).GetWorkspace(workspaceID)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, workspace)
}

func (s *HttpSrv) ListUserWorkspaces(c *gin.Context) {
	list, err := v1.NewWorkspaceLogic(c, s.Core).ListUserWorkspaces()
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, list)
}

type UpdateWorkspaceRequest struct {
	Title       string `json:"title" form:"title" binding:"required,max=64"`
	Description string `json:"description" form:"description" binding:"max=512"`
}

func (s *HttpSrv) UpdateWorkspace(c *gin.Context) {
	var (
		err error
		req UpdateWorkspaceRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	workspaceID, _ := c.Params.Get("workspaceid")
	if err = v1.NewWorkspaceLogic(c, s.Core).UpdateWorkspace(workspaceID, req.Title, req.Description); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}

func (s *HttpSrv) LeaveWorkspace(c *gin.Context) {
	workspaceID, _ := c.Params.Get("workspaceid")
	if err := v1.NewWorkspaceLogic(c, s.Core).LeaveWorkspace(workspaceID); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}

type AddWorkspaceMemberRequest struct {
	UserID string `json:"user_id" form:"user_id" binding:"required"`
	Role   string `json:"role" form:"role" binding:"required,oneof=role-chief role-editor role-viewer"`
}

func (s *HttpSrv) AddWorkspaceMember(c *gin.Context) {
	var (
		err error
		req AddWorkspaceMemberRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	workspaceID, _ := c.Params.Get("workspaceid")
	if err = v1.NewWorkspaceLogic(c, s.Core).AddMember(workspaceID, req.UserID, req.Role); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}

type SetWorkspaceMemberRoleRequest struct {
	UserID string `json:"user_id" form:"user_id" binding:"required"`
	Role   string `json:"role" form:"role" binding:"required,oneof=role-chief role-editor role-viewer"`
}

func (s *HttpSrv) SetWorkspaceMemberRole(c *gin.Context) {
	var (
		err error
		req SetWorkspaceMemberRoleRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	workspaceID, _ := c.Params.Get("workspaceid")
	if err = v1.NewWorkspaceLogic(c, s.Core).SetMemberRole(workspaceID, req.UserID, req.Role); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}

func (s *HttpSrv) DeleteWorkspace(c *gin.Context) {
	workspaceID, _ := c.Params.Get("workspaceid")
	if err := v1.NewWorkspaceLogic(c, s.Core).DeleteWorkspace(workspaceID); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}
