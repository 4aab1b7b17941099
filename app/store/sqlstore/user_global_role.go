package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/docchat-ai/docchat/pkg/register"
	"github.com/docchat-ai/docchat/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.UserGlobalRoleStore = NewUserGlobalRoleStore(provider)
	})
}

type UserGlobalRoleStore struct {
	CommonFields
}

func NewUserGlobalRoleStore(provider SqlProviderAchieve) *UserGlobalRoleStore {
	repo := &UserGlobalRoleStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_USER_GLOBAL_ROLE)
	repo.SetAllColumns("id", "user_id", "appid", "role", "created_at", "updated_at")
	return repo
}

func (s *UserGlobalRoleStore) Create(ctx context.Context, data types.UserGlobalRole) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	if data.UpdatedAt == 0 {
		data.UpdatedAt = data.CreatedAt
	}

	query := sq.Insert(s.GetTable()).
		Columns("user_id", "appid", "role", "created_at", "updated_at").
		Values(data.UserID, data.Appid, data.Role, data.CreatedAt, data.UpdatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *UserGlobalRoleStore) GetUserRole(ctx context.Context, appid, userID string) (*types.UserGlobalRole, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"appid": appid, "user_id": userID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.UserGlobalRole
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *UserGlobalRoleStore) Update(ctx context.Context, appid, userID, role string) error {
	query := sq.Update(s.GetTable()).
		Set("role", role).
		Set("updated_at", time.Now().Unix()).
		Where(sq.Eq{"appid": appid, "user_id": userID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *UserGlobalRoleStore) Delete(ctx context.Context, appid, userID string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"appid": appid, "user_id": userID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
