package sqlstore

import (
	"context"
	"encoding/json"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/docchat-ai/docchat/pkg/register"
	"github.com/docchat-ai/docchat/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.QueryRecordStore = NewQueryRecordStore(provider)
	})
}

type QueryRecordStore struct {
	CommonFields
}

func NewQueryRecordStore(provider SqlProviderAchieve) *QueryRecordStore {
	repo := &QueryRecordStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_QUERY_RECORD)
	repo.SetAllColumns("id", "appid", "user_id", "workspace_id", "question", "answer", "model", "citations", "created_at")
	return repo
}

// citationsParam renders the citation payload for the jsonb column.
// lib/pq encodes []byte arguments as bytea, which postgres rejects for
// jsonb, so the parameter has to travel as text.
func citationsParam(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "[]"
	}
	return string(raw)
}

func (s *QueryRecordStore) Create(ctx context.Context, data types.QueryRecord) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}

	query := sq.Insert(s.GetTable()).
		Columns("appid", "user_id", "workspace_id", "question", "answer", "model", "citations", "created_at").
		Values(data.Appid, data.UserID, data.WorkspaceID, data.Question, data.Answer, data.Model, citationsParam(data.Citations), data.CreatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *QueryRecordStore) List(ctx context.Context, opts types.ListQueryRecordOptions, page, pageSize uint64) ([]types.QueryRecord, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).OrderBy("created_at DESC")
	opts.Apply(&query)

	if page != types.NO_PAGINATION || pageSize != types.NO_PAGINATION {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.QueryRecord
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *QueryRecordStore) Total(ctx context.Context, opts types.ListQueryRecordOptions) (int64, error) {
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
