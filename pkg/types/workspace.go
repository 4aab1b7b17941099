package types

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

type Workspace struct {
	WorkspaceID string `json:"workspace_id" db:"workspace_id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	CreatedAt   int64  `json:"created_at" db:"created_at"`
}

// UserWorkspace binds a user to a workspace with a role.
type UserWorkspace struct {
	ID          int64  `json:"id" db:"id"`
	UserID      string `json:"user_id" db:"user_id"`
	WorkspaceID string `json:"workspace_id" db:"workspace_id"`
	Role        string `json:"role" db:"role"`
	CreatedAt   int64  `json:"created_at" db:"created_at"`
}

type ListUserWorkspaceOptions struct {
	UserID      string
	WorkspaceID string
	Keywords    string
}

func (opts ListUserWorkspaceOptions) Apply(query *sq.SelectBuilder) {
	if opts.UserID != "" {
		*query = query.Where(sq.Eq{"user_id": opts.UserID})
	}
	if opts.WorkspaceID != "" {
		*query = query.Where(sq.Eq{"workspace_id": opts.WorkspaceID})
	}
	if opts.Keywords != "" {
		*query = query.InnerJoin(fmt.Sprintf("%s as u ON u.id = %s.user_id", TABLE_USER.Name(), TABLE_USER_WORKSPACE.Name())).
			Where(sq.Or{sq.Eq{"u.id": opts.Keywords}, sq.Like{"u.name": "%" + opts.Keywords + "%"}, sq.Eq{"email": opts.Keywords}})
	}
}

type UserWorkspaceDetail struct {
	UserID      string `json:"user_id"`
	WorkspaceID string `json:"workspace_id"`
	Role        string `json:"role"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   int64  `json:"created_at"`
}
