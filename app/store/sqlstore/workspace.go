package sqlstore

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/docchat-ai/docchat/pkg/register"
	"github.com/docchat-ai/docchat/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.WorkspaceStore = NewWorkspaceStore(provider)
	})
}

type WorkspaceStore struct {
	CommonFields
}

func NewWorkspaceStore(provider SqlProviderAchieve) *WorkspaceStore {
	repo := &WorkspaceStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_WORKSPACE)
	repo.SetAllColumns("workspace_id", "title", "description", "created_at")
	return repo
}

func (s *WorkspaceStore) Create(ctx context.Context, data types.Workspace) error {
	query := sq.Insert(s.GetTable()).
		Columns("workspace_id", "title", "description", "created_at").
		Values(data.WorkspaceID, data.Title, data.Description, data.CreatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *WorkspaceStore) GetWorkspace(ctx context.Context, workspaceID string) (*types.Workspace, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"workspace_id": workspaceID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.Workspace
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *WorkspaceStore) Update(ctx context.Context, workspaceID, title, description string) error {
	query := sq.Update(s.GetTable()).
		Set("title", title).
		Set("description", description).
		Where(sq.Eq{"workspace_id": workspaceID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *WorkspaceStore) Delete(ctx context.Context, workspaceID string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"workspace_id": workspaceID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
