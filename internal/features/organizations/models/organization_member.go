package organizations_models

import (
	"time"

	organizations_enums "teamhub/internal/features/organizations/enums"

	"github.com/google/uuid"
)

// OrganizationMember is the (user, organization) join row. One row per
// pair; the unique index is the membership invariant.
type OrganizationMember struct {
	ID             uuid.UUID                   `json:"id"             gorm:"column:id;primaryKey"`
	UserID         uuid.UUID                   `json:"userId"         gorm:"column:user_id;uniqueIndex:idx_org_member"`
	OrganizationID uuid.UUID                   `json:"organizationId" gorm:"column:organization_id;uniqueIndex:idx_org_member"`
	Role           organizations_enums.OrgRole `json:"role"           gorm:"column:role"`
	CreatedAt      time.Time                   `json:"createdAt"      gorm:"column:created_at"`
}

func (OrganizationMember) TableName() string {
	return "organization_members"
}
