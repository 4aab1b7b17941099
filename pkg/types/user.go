package types

import (
	sq "github.com/Masterminds/squirrel"
)

type UserStatus string

const (
	USER_STATUS_PENDING  UserStatus = "pending"  // registered, waiting for admin review
	USER_STATUS_ACTIVE   UserStatus = "active"   // approved, may log in
	USER_STATUS_REJECTED UserStatus = "rejected" // refused by admin
)

func (s UserStatus) String() string {
	return string(s)
}

type User struct {
	ID        string     `json:"id" db:"id"`
	Appid     string     `json:"appid" db:"appid"`
	Name      string     `json:"name" db:"name"`
	Email     string     `json:"email" db:"email"` // unique within appid
	Avatar    string     `json:"avatar" db:"avatar"`
	Password  string     `json:"-" db:"password"`
	Salt      string     `json:"-" db:"salt"`
	Status    UserStatus `json:"status" db:"status"`
	Source    string     `json:"-" db:"source"`
	UpdatedAt int64      `json:"updated_at" db:"updated_at"`
	CreatedAt int64      `json:"created_at" db:"created_at"`
}

type ListUserOptions struct {
	IDs    []string
	Email  string
	Status UserStatus
}

func (opts ListUserOptions) Apply(query *sq.SelectBuilder) {
	if len(opts.IDs) > 0 {
		*query = query.Where(sq.Eq{"id": opts.IDs})
	}
	if opts.Email != "" {
		*query = query.Where(sq.Eq{"email": opts.Email})
	}
	if opts.Status != "" {
		*query = query.Where(sq.Eq{"status": opts.Status})
	}
}

// UserGlobalRole marks platform level roles, independent from any
// workspace membership.
type UserGlobalRole struct {
	ID        int64  `json:"id" db:"id"`
	UserID    string `json:"user_id" db:"user_id"`
	Appid     string `json:"appid" db:"appid"`
	Role      string `json:"role" db:"role"`
	CreatedAt int64  `json:"created_at" db:"created_at"`
	UpdatedAt int64  `json:"updated_at" db:"updated_at"`
}

const (
	GlobalRoleAdmin  = "role-admin"
	GlobalRoleMember = "role-member"
)

const DefaultGlobalRole = GlobalRoleMember
