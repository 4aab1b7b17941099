package types

import (
	"encoding/json"

	sq "github.com/Masterminds/squirrel"
)

// QueryRecord keeps the question/answer history of a user, together with
// the citation payload that was returned.
type QueryRecord struct {
	ID          int64           `json:"id" db:"id"`
	Appid       string          `json:"appid" db:"appid"`
	UserID      string          `json:"user_id" db:"user_id"`
	WorkspaceID string          `json:"workspace_id" db:"workspace_id"`
	Question    string          `json:"question" db:"question"`
	Answer      string          `json:"answer" db:"answer"`
	Model       string          `json:"model" db:"model"`
	Citations   json.RawMessage `json:"citations" db:"citations"`
	CreatedAt   int64           `json:"created_at" db:"created_at"`
}

type ListQueryRecordOptions struct {
	UserID      string
	WorkspaceID string
}

func (opts ListQueryRecordOptions) Apply(query *sq.SelectBuilder) {
	if opts.UserID != "" {
		*query = query.Where(sq.Eq{"user_id": opts.UserID})
	}
	if opts.WorkspaceID != "" {
		*query = query.Where(sq.Eq{"workspace_id": opts.WorkspaceID})
	}
}
