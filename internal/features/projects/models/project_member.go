package projects_models

import (
	"time"

	projects_enums "teamhub/internal/features/projects/enums"

	"github.com/google/uuid"
)

type ProjectMember struct {
	ID         uuid.UUID                        `json:"id"         gorm:"column:id;primaryKey"`
	UserID     uuid.UUID                        `json:"userId"     gorm:"column:user_id;uniqueIndex:idx_project_member"`
	ProjectID  uuid.UUID                        `json:"projectId"  gorm:"column:project_id;uniqueIndex:idx_project_member"`
	Permission projects_enums.ProjectPermission `json:"permission" gorm:"column:permission"`
	CreatedAt  time.Time                        `json:"createdAt"  gorm:"column:created_at"`
}

func (ProjectMember) TableName() string {
	return "project_members"
}
