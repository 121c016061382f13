package users_models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID  `json:"id"            gorm:"column:id;primaryKey"`
	Email          string     `json:"email"         gorm:"column:email;uniqueIndex"`
	HashedPassword string     `json:"-"             gorm:"column:hashed_password"`
	DisplayName    string     `json:"displayName"   gorm:"column:display_name"`
	LastOrgID      *uuid.UUID `json:"lastOrgId"     gorm:"column:last_org_id"`
	LastProjectID  *uuid.UUID `json:"lastProjectId" gorm:"column:last_project_id"`
	CreatedAt      time.Time  `json:"createdAt"     gorm:"column:created_at"`
	UpdatedAt      time.Time  `json:"updatedAt"     gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}
