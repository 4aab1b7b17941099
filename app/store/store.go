package store

import (
	"context"

	"github.com/docchat-ai/docchat/pkg/sqlstore"
	"github.com/docchat-ai/docchat/pkg/types"
)

type UserStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.User) error
	GetUser(ctx context.Context, appid, id string) (*types.User, error)
	GetByEmail(ctx context.Context, appid, email string) (*types.User, error)
	UpdateUserProfile(ctx context.Context, appid, id, userName, email, avatar string) error
	UpdateUserPassword(ctx context.Context, appid, id, salt, password string) error
	UpdateUserStatus(ctx context.Context, appid, id string, status types.UserStatus) error
	ListUsers(ctx context.Context, opts types.ListUserOptions, page, pageSize uint64) ([]types.User, error)
	Total(ctx context.Context, opts types.ListUserOptions) (int64, error)
	Delete(ctx context.Context, appid, id string) error
}

type UserGlobalRoleStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.UserGlobalRole) error
	GetUserRole(ctx context.Context, appid, userID string) (*types.UserGlobalRole, error)
	Update(ctx context.Context, appid, userID, role string) error
	Delete(ctx context.Context, appid, userID string) error
}

type AccessTokenStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.AccessToken) error
	GetAccessToken(ctx context.Context, appid, token string) (*types.AccessToken, error)
	Delete(ctx context.Context, appid, userID, token string) error
	ClearUserTokens(ctx context.Context, appid, userID string) error
	DeleteExpired(ctx context.Context, before int64) (int64, error)
}

type WorkspaceStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.Workspace) error
	GetWorkspace(ctx context.Context, workspaceID string) (*types.Workspace, error)
	Update(ctx context.Context, workspaceID, title, description string) error
	Delete(ctx context.Context, workspaceID string) error
}

type UserWorkspaceStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.UserWorkspace) error
	GetUserWorkspaceRole(ctx context.Context, userID, workspaceID string) (*types.UserWorkspace, error)
	List(ctx context.Context, opts types.ListUserWorkspaceOptions, page, pageSize uint64) ([]types.UserWorkspace, error)
	Total(ctx context.Context, opts types.ListUserWorkspaceOptions) (int64, error)
	Update(ctx context.Context, userID, workspaceID, role string) error
	Delete(ctx context.Context, userID, workspaceID string) error
	DeleteAll(ctx context.Context, workspaceID string) error
}

type DocumentStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.Document) error
	GetDocument(ctx context.Context, appid, id string) (*types.Document, error)
	ListDocuments(ctx context.Context, opts types.ListDocumentOptions, page, pageSize uint64) ([]types.DocumentLite, error)
	ListDocumentContents(ctx context.Context, opts types.ListDocumentOptions) ([]types.Document, error)
	Total(ctx context.Context, opts types.ListDocumentOptions) (int64, error)
	Delete(ctx context.Context, appid, id string) error
}

type QueryRecordStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.QueryRecord) error
	List(ctx context.Context, opts types.ListQueryRecordOptions, page, pageSize uint64) ([]types.QueryRecord, error)
	Total(ctx context.Context, opts types.ListQueryRecordOptions) (int64, error)
}
