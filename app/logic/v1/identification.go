package v1

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/docchat-ai/docchat/app/core"
	"github.com/docchat-ai/docchat/pkg/errors"
	"github.com/docchat-ai/docchat/pkg/i18n"
	"github.com/docchat-ai/docchat/pkg/security"
	"github.com/docchat-ai/docchat/pkg/types"
)

type _userInfo struct {
	ctx  context.Context
	core *core.Core
	u    *security.TokenClaims
}

func (u *_userInfo) GetUserInfo() security.TokenClaims {
	return *u.u
}

// IsGlobalAdmin reports whether the requester carries the platform
// admin role.
func (u *_userInfo) IsGlobalAdmin() (bool, error) {
	claims := u.GetUserInfo()
	role, err := u.core.Store().UserGlobalRoleStore().GetUserRole(u.ctx, claims.Appid, claims.User)
	if err != nil && err != sql.ErrNoRows {
		return false, errors.New("_userInfo.IsGlobalAdmin.UserGlobalRoleStore.GetUserRole", i18n.ERROR_INTERNAL, err)
	}
	return role != nil && role.Role == types.GlobalRoleAdmin, nil
}

// VerifyWorkspacePermission checks the requester's workspace role
// against the needed permission.
func (u *_userInfo) VerifyWorkspacePermission(workspaceID, permission string) error {
	claims := u.GetUserInfo()
	member, err := u.core.Store().UserWorkspaceStore().GetUserWorkspaceRole(u.ctx, claims.User, workspaceID)
	if err != nil && err != sql.ErrNoRows {
		return errors.New("_userInfo.VerifyWorkspacePermission.UserWorkspaceStore.GetUserWorkspaceRole", i18n.ERROR_INTERNAL, err)
	}
	if member == nil {
		return errors.New("_userInfo.VerifyWorkspacePermission.member", i18n.ERROR_PERMISSION_DENIED, nil).Code(http.StatusForbidden)
	}
	if !u.core.Srv().RBAC().CheckPermission(member.Role, permission) {
		return errors.New("_userInfo.VerifyWorkspacePermission.CheckPermission", i18n.ERROR_PERMISSION_DENIED, nil).Code(http.StatusForbidden)
	}
	return nil
}

func SetupUserInfo(ctx context.Context, core *core.Core) UserInfo {
	userInfo, ok := InjectTokenClaim(ctx)
	if !ok {
		slog.Error("Not found user in context", slog.String("component", "logic.v1.setupUserInfo"))
		userInfo = security.TokenClaims{}
	}
	return &_userInfo{
		ctx:  ctx,
		u:    &userInfo,
		core: core,
	}
}

type UserInfo interface {
	GetUserInfo() security.TokenClaims
	IsGlobalAdmin() (bool, error)
	VerifyWorkspacePermission(workspaceID, permission string) error
}
