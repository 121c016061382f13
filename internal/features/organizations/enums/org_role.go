package organizations_enums

type OrgRole string

const (
	OrgRoleOwner  OrgRole = "owner"
	OrgRoleAdmin  OrgRole = "admin"
	OrgRoleMember OrgRole = "member"
)

func (r OrgRole) IsValid() bool {
	switch r {
	case OrgRoleOwner, OrgRoleAdmin, OrgRoleMember:
		return true
	default:
		return false
	}
}

// CanManage reports whether the role carries admin-level organization
// permission (inviting members, creating projects, managing grants).
func (r OrgRole) CanManage() bool {
	return r == OrgRoleOwner || r == OrgRoleAdmin
}
