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
		provider.stores.UserWorkspaceStore = NewUserWorkspaceStore(provider)
	})
}

type UserWorkspaceStore struct {
	CommonFields
}

func NewUserWorkspaceStore(provider SqlProviderAchieve) *UserWorkspaceStore {
	repo := &UserWorkspaceStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_USER_WORKSPACE)
	repo.SetAllColumns("id", "user_id", "workspace_id", "role", "created_at")
	return repo
}

func (s *UserWorkspaceStore) Create(ctx context.Context, data types.UserWorkspace) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}

	query := sq.Insert(s.GetTable()).
		Columns("user_id", "workspace_id", "role", "created_at").
		Values(data.UserID, data.WorkspaceID, data.Role, data.CreatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *UserWorkspaceStore) GetUserWorkspaceRole(ctx context.Context, userID, workspaceID string) (*types.UserWorkspace, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"user_id": userID, "workspace_id": workspaceID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.UserWorkspace
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *UserWorkspaceStore) List(ctx context.Context, opts types.ListUserWorkspaceOptions, page, pageSize uint64) ([]types.UserWorkspace, error) {
	query := sq.Select(s.GetAllColumnsWithPrefix(s.GetTable())...).From(s.GetTable()).OrderBy(s.GetTable() + ".created_at DESC")
	opts.Apply(&query)

	if page != types.NO_PAGINATION || pageSize != types.NO_PAGINATION {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.UserWorkspace
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *UserWorkspaceStore) Total(ctx context.Context, opts types.ListUserWorkspaceOptions) (int64, error) {
	query := sq.Select("COUNT(*)").From(s.GetTable())
	opts.Apply(&query)

	queryString, args, err := query.ToSql()
	if err != nil {
		return 0, ErrorSqlBuild(err)
	}

	var total int64
	if err = s.GetReplica(ctx).Get(&total, queryString, args...); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *UserWorkspaceStore) Update(ctx context.Context, userID, workspaceID, role string) error {
	query := sq.Update(s.GetTable()).
		Set("role", role).
		Where(sq.Eq{"user_id": userID, "workspace_id": workspaceID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *UserWorkspaceStore) Delete(ctx context.Context, userID, workspaceID string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"user_id": userID, "workspace_id": workspaceID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *UserWorkspaceStore) DeleteAll(ctx context.Context, workspaceID string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"workspace_id": workspaceID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
