package projects_models

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID             uuid.UUID `json:"id"             gorm:"column:id;primaryKey"`
	OrganizationID uuid.UUID `json:"organizationId" gorm:"column:organization_id;index"`
	Name           string    `json:"name"           gorm:"column:name"`
	IsPrivate      bool      `json:"isPrivate"      gorm:"column:is_private"`
	CreatedAt      time.Time `json:"createdAt"      gorm:"column:created_at"`
	UpdatedAt      time.Time `json:"updatedAt"      gorm:"column:updated_at"`
}

func (Project) TableName() string {
	return "projects"
}
