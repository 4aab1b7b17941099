package v1

import (
	"context"
	"database/sql"
	"time"

	"github.com/docchat-ai/docchat/app/core"
	"github.com/docchat-ai/docchat/pkg/errors"
	"github.com/docchat-ai/docchat/pkg/i18n"
	"github.com/docchat-ai/docchat/pkg/types"
	"github.com/docchat-ai/docchat/pkg/utils"
)

type AuthLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewAuthLogic(ctx context.Context, core *core.Core) *AuthLogic {
	l := &AuthLogic{
		ctx:  ctx,
		core: core,
	}

	return l
}

func (l *AuthLogic) GetAccessTokenDetail(appid, token string) (*types.AccessToken, error) {
	data, err := l.core.Store().AccessTokenStore().GetAccessToken(l.ctx, appid, token)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("AuthLogic.GetAccessTokenDetail.AccessTokenStore.GetAccessToken", i18n.ERROR_INTERNAL, err)
	}

	return data, nil
}

// InitAdminUser bootstraps the first platform admin and returns its
// access token. Meant for install time, not for request handling.
func (l *AuthLogic) InitAdminUser(appid string) (string, error) {
	userID := utils.GenUniqIDStr()
	var accessToken string
	err := l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		err := l.core.Store().UserStore().Create(ctx, types.User{
			ID:        userID,
			Appid:     appid,
			Name:      "Admin",
			Email:     "admin@localhost",
			Avatar:    l.core.Cfg().Site.DefaultAvatar,
			Status:    types.USER_STATUS_ACTIVE,
			Source:    "install",
			UpdatedAt: time.Now().Unix(),
			CreatedAt: time.Now().Unix(),
		})
		if err != nil {
			return errors.New("AuthLogic.InitAdminUser.UserStore.Create", i18n.ERROR_INTERNAL, err)
		}

		err = l.core.Store().UserGlobalRoleStore().Create(ctx, types.UserGlobalRole{
			UserID: userID,
			Appid:  appid,
			Role:   types.GlobalRoleAdmin,
		})
		if err != nil {
			return errors.New("AuthLogic.InitAdminUser.UserGlobalRoleStore.Create", i18n.ERROR_INTERNAL, err)
		}

		tokenStore := l.core.Store().AccessTokenStore()
	REGEN:
		accessToken = utils.RandomStr(100)
		exist, err := tokenStore.GetAccessToken(ctx, appid, accessToken)
		if err != nil && err != sql.ErrNoRows {
			return errors.New("AuthLogic.InitAdminUser.GetAccessToken", i18n.ERROR_INTERNAL, err)
		}

		if exist != nil {
			goto REGEN
		}

		err = tokenStore.Create(ctx, types.AccessToken{
			Appid:     appid,
			UserID:    userID,
			Version:   types.DEFAULT_ACCESS_TOKEN_VERSION,
			Token:     accessToken,
			ExpiresAt: time.Now().AddDate(999, 0, 0).Unix(),
			CreatedAt: time.Now().Unix(),
			Info:      "Admin user token",
		})

		if err != nil {
			return errors.New("AuthLogic.InitAdminUser.AccessTokenStore.Create", i18n.ERROR_INTERNAL, err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return accessToken, nil
}
