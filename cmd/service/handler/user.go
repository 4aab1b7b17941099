package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/docchat-ai/docchat/app/logic/v1"
	"github.com/docchat-ai/docchat/app/response"
	"github.com/docchat-ai/docchat/cmd/service/middleware"
	"github.com/docchat-ai/docchat/pkg/utils"
)

type RegisterRequest struct {
	UserName string `json:"user_name" form:"user_name" binding:"required,max=32"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=8,max=64"`
}

type RegisterResponse struct {
	UserID string `json:"user_id"`
}

func (s *HttpSrv) Register(c *gin.Context) {
	var (
		err error
		req RegisterRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	appid, _ := v1.InjectAppid(c)
	userID, err := v1.NewUserLogic(c, s.Core).Register(appid, req.UserName, req.Email, req.Password)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, RegisterResponse{
		UserID: userID,
	})
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

func (s *HttpSrv) Login(c *gin.Context) {
	var (
		err error
		req LoginRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	appid, _ := v1.InjectAppid(c)
	token, err := v1.NewUserLogic(c, s.Core).Login(appid, req.Email, req.Password)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, LoginResponse{
		AccessToken: token,
	})
}

type GetUserResponse struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
	Status   string `json:"status"`
	Appid    string `json:"appid"`
}

func (s *HttpSrv) GetUser(c *gin.Context) {
	user, err := v1.NewAuthedUserLogic(c, s.Core).GetUser()
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, GetUserResponse{
		UserID:   user.ID,
		UserName: user.Name,
		Email:    user.Email,
		Avatar:   user.Avatar,
		Status:   user.Status.String(),
		Appid:    user.Appid,
	})
}

type UpdateUserProfileRequest struct {
	UserName string `json:"user_name" form:"user_name" binding:"required,max=32"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Avatar   string `json:"avatar" form:"avatar"`
}

func (s *HttpSrv) UpdateUserProfile(c *gin.Context) {
	var (
		err error
		req UpdateUserProfileRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if err = v1.NewAuthedUserLogic(c, s.Core).UpdateUserProfile(req.UserName, req.Email, req.Avatar); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}

type UpdateUserPasswordRequest struct {
	OldPassword string `json:"old_password" form:"old_password" binding:"required"`
	NewPassword string `json:"new_password" form:"new_password" binding:"required,min=8,max=64"`
}

func (s *HttpSrv) UpdateUserPassword(c *gin.Context) {
	var (
		err error
		req UpdateUserPasswordRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if err = v1.NewAuthedUserLogic(c, s.Core).UpdateUserPassword(req.OldPassword, req.NewPassword); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}

func (s *HttpSrv) Logout(c *gin.Context) {
	token := c.GetHeader(middleware.ACCESS_TOKEN_HEADER_KEY)
	if err := v1.NewAuthedUserLogic(c, s.Core).Logout(token); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}
