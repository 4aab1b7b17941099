package v1

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/samber/lo"

	"github.com/docchat-ai/docchat/app/core"
	"github.com/docchat-ai/docchat/app/core/srv"
	"github.com/docchat-ai/docchat/pkg/errors"
	"github.com/docchat-ai/docchat/pkg/i18n"
	"github.com/docchat-ai/docchat/pkg/types"
	"github.com/docchat-ai/docchat/pkg/utils"
)

type WorkspaceLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewWorkspaceLogic(ctx context.Context, core *core.Core) *WorkspaceLogic {
	return &WorkspaceLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

// CreateWorkspace makes the creator its chief.
func (l *WorkspaceLogic) CreateWorkspace(title, description string) (string, error) {
	claims := l.GetUserInfo()
	workspaceID := utils.GenRandomID()

	err := l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		err := l.core.Store().WorkspaceStore().Create(ctx, types.Workspace{
			WorkspaceID: workspaceID,
			Title:       title,
			Description: description,
			CreatedAt:   time.Now().Unix(),
		})
		if err != nil {
			return errors.New("WorkspaceLogic.CreateWorkspace.WorkspaceStore.Create", i18n.ERROR_INTERNAL, err)
		}

		err = l.core.Store().UserWorkspaceStore().Create(ctx, types.UserWorkspace{
			UserID:      claims.User,
			WorkspaceID: workspaceID,
			Role:        srv.RoleChief,
			CreatedAt:   time.Now().Unix(),
		})
		if err != nil {
			return errors.New("WorkspaceLogic.CreateWorkspace.UserWorkspaceStore.Create", i18n.ERROR_INTERNAL, err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return workspaceID, nil
}

func (l *WorkspaceLogic) GetWorkspace(workspaceID string) (*types.Workspace, error) {
	if err := l.VerifyWorkspacePermission(workspaceID, srv.PermissionView); err != nil {
		return nil, err
	}

	workspace, err := l.core.Store().WorkspaceStore().GetWorkspace(l.ctx, workspaceID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New("WorkspaceLogic.GetWorkspace.WorkspaceStore.GetWorkspace", i18n.ERROR_WORKSPACE_NOT_FOUND, err).Code(http.StatusNotFound)
		}
		return nil, errors.New("WorkspaceLogic.GetWorkspace.WorkspaceStore.GetWorkspace", i18n.ERROR_INTERNAL, err)
	}
	return workspace, nil
}

func (l *WorkspaceLogic) ListUserWorkspaces() ([]types.UserWorkspaceDetail, error) {
	claims := l.GetUserInfo()

	members, err := l.core.Store().UserWorkspaceStore().List(l.ctx, types.ListUserWorkspaceOptions{
		UserID: claims.User,
	}, types.NO_PAGINATION, types.NO_PAGINATION)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("WorkspaceLogic.ListUserWorkspaces.UserWorkspaceStore.List", i18n.ERROR_INTERNAL, err)
	}

	var result []types.UserWorkspaceDetail
	for _, member := range members {
		workspace, err := l.core.Store().WorkspaceStore().GetWorkspace(l.ctx, member.WorkspaceID)
		if err != nil {
			if err == sql.ErrNoRows {
				continue
			}
			return nil, errors.New("WorkspaceLogic.ListUserWorkspaces.WorkspaceStore.GetWorkspace", i18n.ERROR_INTERNAL, err)
		}
		result = append(result, types.UserWorkspaceDetail{
			UserID:      member.UserID,
			WorkspaceID: member.WorkspaceID,
			Role:        member.Role,
			Title:       workspace.Title,
			Description: workspace.Description,
			CreatedAt:   member.CreatedAt,
		})
	}
	return result, nil
}

// UpdateWorkspace changes title and description. Editors and above.
func (l *WorkspaceLogic) UpdateWorkspace(workspaceID, title, description string) error {
	if err := l.VerifyWorkspacePermission(workspaceID, srv.PermissionEdit); err != nil {
		return err
	}

	if err := l.core.Store().WorkspaceStore().Update(l.ctx, workspaceID, title, description); err != nil {
		return errors.New("WorkspaceLogic.UpdateWorkspace.WorkspaceStore.Update", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

// LeaveWorkspace removes the requester's own membership.
func (l *WorkspaceLogic) LeaveWorkspace(workspaceID string) error {
	claims := l.GetUserInfo()

	member, err := l.core.Store().UserWorkspaceStore().GetUserWorkspaceRole(l.ctx, claims.User, workspaceID)
	if err != nil && err != sql.ErrNoRows {
		return errors.New("WorkspaceLogic.LeaveWorkspace.UserWorkspaceStore.GetUserWorkspaceRole", i18n.ERROR_INTERNAL, err)
	}
	if member == nil {
		return errors.New("WorkspaceLogic.LeaveWorkspace.member.nil", i18n.ERROR_NOT_FOUND, nil).Code(http.StatusNotFound)
	}

	if err = l.core.Store().UserWorkspaceStore().Delete(l.ctx, claims.User, workspaceID); err != nil {
		return errors.New("WorkspaceLogic.LeaveWorkspace.UserWorkspaceStore.Delete", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

// AddMember grants a user a role in the workspace. Chief only.
func (l *WorkspaceLogic) AddMember(workspaceID, userID, role string) error {
	if err := l.VerifyWorkspacePermission(workspaceID, srv.PermissionChief); err != nil {
		return err
	}

	if !lo.Contains([]string{srv.RoleChief, srv.RoleEditor, srv.RoleViewer}, role) {
		return errors.New("WorkspaceLogic.AddMember.role", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	claims := l.GetUserInfo()
	user, err := l.core.Store().UserStore().GetUser(l.ctx, claims.Appid, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return errors.New("WorkspaceLogic.AddMember.UserStore.GetUser", i18n.ERROR_NOT_FOUND, err).Code(http.StatusNotFound)
		}
		return errors.New("WorkspaceLogic.AddMember.UserStore.GetUser", i18n.ERROR_INTERNAL, err)
	}
	if user.Status != types.USER_STATUS_ACTIVE {
		return errors.New("WorkspaceLogic.AddMember.status", i18n.ERROR_INVALID_ACCOUNT, nil).Code(http.StatusBadRequest)
	}

	exist, err := l.core.Store().UserWorkspaceStore().GetUserWorkspaceRole(l.ctx, userID, workspaceID)
	if err != nil && err != sql.ErrNoRows {
		return errors.New("WorkspaceLogic.AddMember.UserWorkspaceStore.GetUserWorkspaceRole", i18n.ERROR_INTERNAL, err)
	}
	if exist != nil {
		return errors.New("WorkspaceLogic.AddMember.exist", i18n.ERROR_EXIST, nil).Code(http.StatusBadRequest)
	}

	if err = l.core.Store().UserWorkspaceStore().Create(l.ctx, types.UserWorkspace{
		UserID:      userID,
		WorkspaceID: workspaceID,
		Role:        role,
		CreatedAt:   time.Now().Unix(),
	}); err != nil {
		return errors.New("WorkspaceLogic.AddMember.UserWorkspaceStore.Create", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

// SetMemberRole changes an existing member's role. Chief only.
func (l *WorkspaceLogic) SetMemberRole(workspaceID, userID, role string) error {
	if err := l.VerifyWorkspacePermission(workspaceID, srv.PermissionChief); err != nil {
		return err
	}

	if !lo.Contains([]string{srv.RoleChief, srv.RoleEditor, srv.RoleViewer}, role) {
		return errors.New("WorkspaceLogic.SetMemberRole.role", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	member, err := l.core.Store().UserWorkspaceStore().GetUserWorkspaceRole(l.ctx, userID, workspaceID)
	if err != nil && err != sql.ErrNoRows {
		return errors.New("WorkspaceLogic.SetMemberRole.UserWorkspaceStore.GetUserWorkspaceRole", i18n.ERROR_INTERNAL, err)
	}
	if member == nil {
		return errors.New("WorkspaceLogic.SetMemberRole.member.nil", i18n.ERROR_NOT_FOUND, nil).Code(http.StatusNotFound)
	}

	if err = l.core.Store().UserWorkspaceStore().Update(l.ctx, userID, workspaceID, role); err != nil {
		return errors.New("WorkspaceLogic.SetMemberRole.UserWorkspaceStore.Update", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

// DeleteWorkspace removes the workspace, its memberships, and unlinks
// documents from it. Chief only.
func (l *WorkspaceLogic) DeleteWorkspace(workspaceID string) error {
	if err := l.VerifyWorkspacePermission(workspaceID, srv.PermissionChief); err != nil {
		return err
	}

	return l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		if err := l.core.Store().UserWorkspaceStore().DeleteAll(ctx, workspaceID); err != nil {
			return errors.New("WorkspaceLogic.DeleteWorkspace.UserWorkspaceStore.DeleteAll", i18n.ERROR_INTERNAL, err)
		}
		if err := l.core.Store().WorkspaceStore().Delete(ctx, workspaceID); err != nil {
			return errors.New("WorkspaceLogic.DeleteWorkspace.WorkspaceStore.Delete", i18n.ERROR_INTERNAL, err)
		}
		return nil
	})
}
