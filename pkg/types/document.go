package types

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
)

type DocumentKind string

const (
	DOCUMENT_KIND_PDF DocumentKind = "pdf"
	DOCUMENT_KIND_TXT DocumentKind = "txt"
)

func (k DocumentKind) String() string {
	return string(k)
}

// Document is immutable after creation except for deletion.
type Document struct {
	ID          string         `json:"id" db:"id"`
	Appid       string         `json:"appid" db:"appid"`
	UserID      string         `json:"user_id" db:"user_id"`
	WorkspaceID sql.NullString `json:"workspace_id" db:"workspace_id"` // at most one workspace
	FileName    string         `json:"file_name" db:"file_name"`
	Kind        DocumentKind   `json:"kind" db:"kind"`
	Content     string         `json:"content" db:"content"`
	FileSize    int64          `json:"file_size" db:"file_size"` // raw upload size in bytes
	CreatedAt   int64          `json:"created_at" db:"created_at"`
}

// DocumentLite skips content for listing endpoints.
type DocumentLite struct {
	ID          string         `json:"id" db:"id"`
	Appid       string         `json:"appid" db:"appid"`
	UserID      string         `json:"user_id" db:"user_id"`
	WorkspaceID sql.NullString `json:"workspace_id" db:"workspace_id"`
	FileName    string         `json:"file_name" db:"file_name"`
	Kind        DocumentKind   `json:"kind" db:"kind"`
	FileSize    int64          `json:"file_size" db:"file_size"`
	CreatedAt   int64          `json:"created_at" db:"created_at"`
}

type ListDocumentOptions struct {
	IDs         []string
	UserID      string
	WorkspaceID string
	Kind        DocumentKind
}

func (opts ListDocumentOptions) Apply(query *sq.SelectBuilder) {
	if len(opts.IDs) > 0 {
		*query = query.Where(sq.Eq{"id": opts.IDs})
	}
	if opts.UserID != "" {
		*query = query.Where(sq.Eq{"user_id": opts.UserID})
	}
	if opts.WorkspaceID != "" {
		*query = query.Where(sq.Eq{"workspace_id": opts.WorkspaceID})
	}
	if opts.Kind != "" {
		*query = query.Where(sq.Eq{"kind": opts.Kind})
	}
}
