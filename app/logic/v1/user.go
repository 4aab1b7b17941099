package v1

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/docchat-ai/docchat/app/core"
	"github.com/docchat-ai/docchat/pkg/errors"
	"github.com/docchat-ai/docchat/pkg/i18n"
	"github.com/docchat-ai/docchat/pkg/types"
	"github.com/docchat-ai/docchat/pkg/utils"
)

const (
	ACCESS_TOKEN_TTL = time.Hour * 24 * 30
)

// logic for unlogin
type UserLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewUserLogic(ctx context.Context, core *core.Core) *UserLogic {
	l := &UserLogic{
		ctx:  ctx,
		core: core,
	}

	return l
}

// Register creates a pending account. Pending users cannot log in until
// an admin approves them.
func (l *UserLogic) Register(appid, name, email, password string) (string, error) {
	exist, err := l.core.Store().UserStore().GetByEmail(l.ctx, appid, email)
	if err != nil && err != sql.ErrNoRows {
		return "", errors.New("UserLogic.Register.UserStore.GetByEmail", i18n.ERROR_INTERNAL, err)
	}
	if exist != nil {
		return "", errors.New("UserLogic.Register.UserStore.exist", i18n.ERROR_EMAIL_ALREADY_REGISTED, nil).Code(http.StatusBadRequest)
	}

	salt := utils.RandomStr(10)
	userID := utils.GenUniqIDStr()

	err = l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		err := l.core.Store().UserStore().Create(ctx, types.User{
			ID:        userID,
			Appid:     appid,
			Name:      name,
			Email:     email,
			Avatar:    l.core.Cfg().Site.DefaultAvatar,
			Salt:      salt,
			Source:    "platform",
			Status:    types.USER_STATUS_PENDING,
			Password:  utils.GenUserPassword(salt, password),
			UpdatedAt: time.Now().Unix(),
			CreatedAt: time.Now().Unix(),
		})
		if err != nil {
			return errors.New("UserLogic.Register.UserStore.Create", i18n.ERROR_INTERNAL, err)
		}

		err = l.core.Store().UserGlobalRoleStore().Create(ctx, types.UserGlobalRole{
			UserID: userID,
			Appid:  appid,
			Role:   types.DefaultGlobalRole,
		})
		if err != nil {
			return errors.New("UserLogic.Register.UserGlobalRoleStore.Create", i18n.ERROR_INTERNAL, err)
		}
		return nil
	})

	if err != nil {
		return "", err
	}

	return userID, nil
}

// Login verifies credentials and issues a database access token. Only
// approved accounts may log in.
func (l *UserLogic) Login(appid, email, password string) (string, error) {
	user, err := l.core.Store().UserStore().GetByEmail(l.ctx, appid, email)
	if err != nil && err != sql.ErrNoRows {
		return "", errors.New("UserLogic.Login.UserStore.GetByEmail", i18n.ERROR_INTERNAL, err)
	}

	if user == nil || user.Password != utils.GenUserPassword(user.Salt, password) {
		return "", errors.New("UserLogic.Login.Password.check", i18n.ERROR_INVALID_ACCOUNT, err).Code(http.StatusBadRequest)
	}

	switch user.Status {
	case types.USER_STATUS_ACTIVE:
	case types.USER_STATUS_PENDING:
		return "", errors.New("UserLogic.Login.Status.pending", i18n.ERROR_ACCOUNT_PENDING_REVIEW, nil).Code(http.StatusForbidden)
	default:
		return "", errors.New("UserLogic.Login.Status.rejected", i18n.ERROR_ACCOUNT_REJECTED, nil).Code(http.StatusForbidden)
	}

	accessToken := utils.MD5(user.ID + utils.GenRandomID())
	err = l.core.Store().AccessTokenStore().Create(l.ctx, types.AccessToken{
		Appid:     appid,
		UserID:    user.ID,
		Token:     accessToken,
		Version:   types.DEFAULT_ACCESS_TOKEN_VERSION,
		Info:      "login",
		CreatedAt: time.Now().Unix(),
		ExpiresAt: time.Now().Add(ACCESS_TOKEN_TTL).Unix(),
	})
	if err != nil {
		return "", errors.New("UserLogic.Login.AccessTokenStore.Create", i18n.ERROR_INTERNAL, err)
	}

	return accessToken, nil
}

type AuthedUserLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewAuthedUserLogic(ctx context.Context, core *core.Core) *AuthedUserLogic {
	return &AuthedUserLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

func (l *AuthedUserLogic) GetUser() (*types.User, error) {
	claims := l.GetUserInfo()
	user, err := l.core.Store().UserStore().GetUser(l.ctx, claims.Appid, claims.User)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New("AuthedUserLogic.GetUser.UserStore.GetUser", i18n.ERROR_NOT_FOUND, err).Code(http.StatusNotFound)
		}
		return nil, errors.New("AuthedUserLogic.GetUser.UserStore.GetUser", i18n.ERROR_INTERNAL, err)
	}
	return user, nil
}

func (l *AuthedUserLogic) UpdateUserProfile(userName, email, avatar string) error {
	claims := l.GetUserInfo()

	exist, err := l.core.Store().UserStore().GetByEmail(l.ctx, claims.Appid, email)
	if err != nil && err != sql.ErrNoRows {
		return errors.New("AuthedUserLogic.UpdateUserProfile.UserStore.GetByEmail", i18n.ERROR_INTERNAL, err)
	}
	if exist != nil && exist.ID != claims.User {
		return errors.New("AuthedUserLogic.UpdateUserProfile.email.exist", i18n.ERROR_EMAIL_ALREADY_REGISTED, nil).Code(http.StatusBadRequest)
	}

	if err = l.core.Store().UserStore().UpdateUserProfile(l.ctx, claims.Appid, claims.User, userName, email, avatar); err != nil {
		return errors.New("AuthedUserLogic.UpdateUserProfile.UserStore.UpdateUserProfile", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

// UpdateUserPassword re-salts the password and revokes every live
// access token, forcing a fresh login.
func (l *AuthedUserLogic) UpdateUserPassword(oldPassword, newPassword string) error {
	claims := l.GetUserInfo()

	user, err := l.core.Store().UserStore().GetUser(l.ctx, claims.Appid, claims.User)
	if err != nil {
		return errors.New("AuthedUserLogic.UpdateUserPassword.UserStore.GetUser", i18n.ERROR_INTERNAL, err)
	}

	if user.Password != utils.GenUserPassword(user.Salt, oldPassword) {
		return errors.New("AuthedUserLogic.UpdateUserPassword.check", i18n.ERROR_INVALID_ACCOUNT, nil).Code(http.StatusBadRequest)
	}

	salt := utils.RandomStr(10)
	return l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		if err := l.core.Store().UserStore().UpdateUserPassword(ctx, claims.Appid, claims.User, salt, utils.GenUserPassword(salt, newPassword)); err != nil {
			return errors.New("AuthedUserLogic.UpdateUserPassword.UserStore.UpdateUserPassword", i18n.ERROR_INTERNAL, err)
		}
		if err := l.core.Store().AccessTokenStore().ClearUserTokens(ctx, claims.Appid, claims.User); err != nil {
			return errors.New("AuthedUserLogic.UpdateUserPassword.AccessTokenStore.ClearUserTokens", i18n.ERROR_INTERNAL, err)
		}
		return nil
	})
}

func (l *AuthedUserLogic) Logout(token string) error {
	claims := l.GetUserInfo()
	if err := l.core.Store().AccessTokenStore().Delete(l.ctx, claims.Appid, claims.User, token); err != nil {
		return errors.New("AuthedUserLogic.Logout.AccessTokenStore.Delete", i18n.ERROR_INTERNAL, err)
	}
	return nil
}
