package srv

import (
	"github.com/mikespook/gorbac/v2"
)

const (
	// workspace role IDs
	RoleChief  = "role-chief"
	RoleEditor = "role-editor"
	RoleViewer = "role-viewer"

	// permission IDs
	PermissionChief = "chief"
	PermissionEdit  = "edit"
	PermissionView  = "view"
)

func SetupRBACSrv() *RBACSrv {
	rbac := gorbac.New()

	pChief := gorbac.NewStdPermission(PermissionChief)
	pEdit := gorbac.NewStdPermission(PermissionEdit)
	pView := gorbac.NewStdPermission(PermissionView)

	roleChief := gorbac.NewStdRole(RoleChief)
	roleChief.Assign(pChief)

	roleEditor := gorbac.NewStdRole(RoleEditor)
	roleEditor.Assign(pEdit)

	roleViewer := gorbac.NewStdRole(RoleViewer)
	roleViewer.Assign(pView)

	rbac.Add(roleChief)
	rbac.Add(roleEditor)
	rbac.Add(roleViewer)

	// chief inherits edit, editor inherits view
	rbac.SetParent(RoleEditor, RoleViewer)
	rbac.SetParent(RoleChief, RoleEditor)

	return &RBACSrv{
		rbac: rbac,
	}
}

type RBACSrv struct {
	rbac *gorbac.RBAC
}

func (a *RBACSrv) CheckPermission(roleID, permissionID string) bool {
	return a.rbac.IsGranted(roleID, gorbac.NewStdPermission(permissionID), nil)
}
