package v1

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/docchat-ai/docchat/app/core"
	"github.com/docchat-ai/docchat/pkg/errors"
	"github.com/docchat-ai/docchat/pkg/i18n"
	"github.com/docchat-ai/docchat/pkg/types"
)

// AdminUserLogic covers the account review surface. Every operation
// requires the platform admin role.
type AdminUserLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewAdminUserLogic(ctx context.Context, core *core.Core) *AdminUserLogic {
	return &AdminUserLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

func (l *AdminUserLogic) requireAdmin() error {
	isAdmin, err := l.IsGlobalAdmin()
	if err != nil {
		return err
	}
	if !isAdmin {
		return errors.New("AdminUserLogic.requireAdmin", i18n.ERROR_PERMISSION_DENIED, nil).Code(http.StatusForbidden)
	}
	return nil
}

type UserListResult struct {
	List  []types.User `json:"list"`
	Total int64        `json:"total"`
}

func (l *AdminUserLogic) ListUsers(status types.UserStatus, page, pageSize uint64) (*UserListResult, error) {
	if err := l.requireAdmin(); err != nil {
		return nil, err
	}

	opts := types.ListUserOptions{
		Status: status,
	}

	list, err := l.core.Store().UserStore().ListUsers(l.ctx, opts, page, pageSize)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("AdminUserLogic.ListUsers.UserStore.ListUsers", i18n.ERROR_INTERNAL, err)
	}

	total, err := l.core.Store().UserStore().Total(l.ctx, opts)
	if err != nil {
		return nil, errors.New("AdminUserLogic.ListUsers.UserStore.Total", i18n.ERROR_INTERNAL, err)
	}

	return &UserListResult{
		List:  list,
		Total: total,
	}, nil
}

// ApproveUser moves a pending account to active.
func (l *AdminUserLogic) ApproveUser(userID string) error {
	return l.reviewUser(userID, types.USER_STATUS_ACTIVE)
}

// RejectUser refuses a pending account and clears any tokens it might
// have somehow acquired.
func (l *AdminUserLogic) RejectUser(userID string) error {
	if err := l.reviewUser(userID, types.USER_STATUS_REJECTED); err != nil {
		return err
	}

	claims := l.GetUserInfo()
	if err := l.core.Store().AccessTokenStore().ClearUserTokens(l.ctx, claims.Appid, userID); err != nil {
		return errors.New("AdminUserLogic.RejectUser.AccessTokenStore.ClearUserTokens", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

// SetGlobalRole promotes or demotes a user's platform role. Admins
// cannot change their own role.
func (l *AdminUserLogic) SetGlobalRole(userID, role string) error {
	if err := l.requireAdmin(); err != nil {
		return err
	}

	if role != types.GlobalRoleAdmin && role != types.GlobalRoleMember {
		return errors.New("AdminUserLogic.SetGlobalRole.role", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	claims := l.GetUserInfo()
	if userID == claims.User {
		return errors.New("AdminUserLogic.SetGlobalRole.self", i18n.ERROR_FORBIDDEN, nil).Code(http.StatusForbidden)
	}

	if _, err := l.core.Store().UserStore().GetUser(l.ctx, claims.Appid, userID); err != nil {
		if err == sql.ErrNoRows {
			return errors.New("AdminUserLogic.SetGlobalRole.UserStore.GetUser", i18n.ERROR_NOT_FOUND, err).Code(http.StatusNotFound)
		}
		return errors.New("AdminUserLogic.SetGlobalRole.UserStore.GetUser", i18n.ERROR_INTERNAL, err)
	}

	if err := l.core.Store().UserGlobalRoleStore().Update(l.ctx, claims.Appid, userID, role); err != nil {
		return errors.New("AdminUserLogic.SetGlobalRole.UserGlobalRoleStore.Update", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

// DeleteUser removes a rejected account together with its role record
// and any tokens. Active accounts must be rejected first.
func (l *AdminUserLogic) DeleteUser(userID string) error {
	if err := l.requireAdmin(); err != nil {
		return err
	}

	claims := l.GetUserInfo()
	user, err := l.core.Store().UserStore().GetUser(l.ctx, claims.Appid, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return errors.New("AdminUserLogic.DeleteUser.UserStore.GetUser", i18n.ERROR_NOT_FOUND, err).Code(http.StatusNotFound)
		}
		return errors.New("AdminUserLogic.DeleteUser.UserStore.GetUser", i18n.ERROR_INTERNAL, err)
	}

	if user.Status != types.USER_STATUS_REJECTED {
		return errors.New("AdminUserLogic.DeleteUser.status", i18n.ERROR_FORBIDDEN, nil).Code(http.StatusForbidden)
	}

	return l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		if err := l.core.Store().AccessTokenStore().ClearUserTokens(ctx, claims.Appid, userID); err != nil {
			return errors.New("AdminUserLogic.DeleteUser.AccessTokenStore.ClearUserTokens", i18n.ERROR_INTERNAL, err)
		}
		if err := l.core.Store().UserGlobalRoleStore().Delete(ctx, claims.Appid, userID); err != nil {
			return errors.New("AdminUserLogic.DeleteUser.UserGlobalRoleStore.Delete", i18n.ERROR_INTERNAL, err)
		}
		if err := l.core.Store().UserStore().Delete(ctx, claims.Appid, userID); err != nil {
			return errors.New("AdminUserLogic.DeleteUser.UserStore.Delete", i18n.ERROR_INTERNAL, err)
		}
		return nil
	})
}

func (l *AdminUserLogic) reviewUser(userID string, to types.UserStatus) error {
	if err := l.requireAdmin(); err != nil {
		return err
	}

	claims := l.GetUserInfo()
	user, err := l.core.Store().UserStore().GetUser(l.ctx, claims.Appid, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return errors.New("AdminUserLogic.reviewUser.UserStore.GetUser", i18n.ERROR_NOT_FOUND, err).Code(http.StatusNotFound)
		}
		return errors.New("AdminUserLogic.reviewUser.UserStore.GetUser", i18n.ERROR_INTERNAL, err)
	}

	if user.Status != types.USER_STATUS_PENDING {
		return errors.New("AdminUserLogic.reviewUser.status", i18n.ERROR_USER_NOT_PENDING, nil).Code(http.StatusBadRequest)
	}

	if err = l.core.Store().UserStore().UpdateUserStatus(l.ctx, claims.Appid, userID, to); err != nil {
		return errors.New("AdminUserLogic.reviewUser.UserStore.UpdateUserStatus", i18n.ERROR_INTERNAL, err)
	}
	return nil
}
