package projects_enums

type ProjectPermission string

const (
	ProjectPermissionEdit ProjectPermission = "edit"
	ProjectPermissionView ProjectPermission = "view"
)

func (p ProjectPermission) IsValid() bool {
	switch p {
	case ProjectPermissionEdit, ProjectPermissionView:
		return true
	default:
		return false
	}
}
