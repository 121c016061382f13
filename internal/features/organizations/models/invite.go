package organizations_models

import (
	"time"

	organizations_enums "teamhub/internal/features/organizations/enums"
	projects_enums "teamhub/internal/features/projects/enums"

	"github.com/google/uuid"
)

// Invite is a single-use, time-limited credential granting organization
// membership. ProjectID and ProjectPermission are stored for the inviter's
// intent but acceptance only grants the organization membership.
type Invite struct {
	ID                uuid.UUID                         `json:"id"                gorm:"column:id;primaryKey"`
	Token             string                            `json:"-"                 gorm:"column:token;uniqueIndex"`
	Email             string                            `json:"email"             gorm:"column:email;index:idx_invite_email_org"`
	OrganizationID    uuid.UUID                         `json:"organizationId"    gorm:"column:organization_id;index:idx_invite_email_org"`
	ProjectID         *uuid.UUID                        `json:"projectId"         gorm:"column:project_id"`
	Role              organizations_enums.OrgRole       `json:"role"              gorm:"column:role"`
	ProjectPermission *projects_enums.ProjectPermission `json:"projectPermission" gorm:"column:project_permission"`
	InvitedByID       uuid.UUID                         `json:"invitedById"       gorm:"column:invited_by_id"`
	ExpiresAt         time.Time                         `json:"expiresAt"         gorm:"column:expires_at"`
	UsedAt            *time.Time                        `json:"usedAt"            gorm:"column:used_at"`
	CreatedAt         time.Time                         `json:"createdAt"         gorm:"column:created_at"`
}

func (Invite) TableName() string {
	return "invites"
}

// IsRedeemable reports whether the invite is still valid: never used and
// not yet expired.
func (i *Invite) IsRedeemable(now time.Time) bool {
	return i.UsedAt == nil && i.ExpiresAt.After(now)
}
