package sqlstore

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/docchat-ai/docchat/pkg/register"
	"github.com/docchat-ai/docchat/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.DocumentStore = NewDocumentStore(provider)
	})
}

type DocumentStore struct {
	CommonFields
}

func NewDocumentStore(provider SqlProviderAchieve) *DocumentStore {
	repo := &DocumentStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_DOCUMENT)
	repo.SetAllColumns("id", "appid", "user_id", "workspace_id", "file_name", "kind", "content", "file_size", "created_at")
	return repo
}

func (s *DocumentStore) Create(ctx context.Context, data types.Document) error {
	query := sq.Insert(s.GetTable()).
		Columns("id", "appid", "user_id", "workspace_id", "file_name", "kind", "content", "file_size", "created_at").
		Values(data.ID, data.Appid, data.UserID, data.WorkspaceID, data.FileName, data.Kind, data.Content, data.FileSize, data.CreatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *DocumentStore) GetDocument(ctx context.Context, appid, id string) (*types.Document, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"appid": appid, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.Document
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

// ListDocuments skips the content column, listings never need it.
func (s *DocumentStore) ListDocuments(ctx context.Context, opts types.ListDocumentOptions, page, pageSize uint64) ([]types.DocumentLite, error) {
	query := sq.Select("id", "appid", "user_id", "workspace_id", "file_name", "kind", "file_size", "created_at").
		From(s.GetTable()).OrderBy("created_at DESC")
	opts.Apply(&query)

	if page != types.NO_PAGINATION || pageSize != types.NO_PAGINATION {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.DocumentLite
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

// ListDocumentContents loads full text for retrieval. Callers scope the
// options to the requesting user or workspace first.
func (s *DocumentStore) ListDocumentContents(ctx context.Context, opts types.ListDocumentOptions) ([]types.Document, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).OrderBy("created_at ASC")
	opts.Apply(&query)

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.Document
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *DocumentStore) Total(ctx context.Context, opts types.ListDocumentOptions) (int64, error) {
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

func (s *DocumentStore) Delete(ctx context.Context, appid, id string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"appid": appid, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
