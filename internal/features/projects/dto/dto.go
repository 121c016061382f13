package projects_dto

import (
	"fmt"
	"strings"
	"time"

	"teamhub/internal/apperrors"
	projects_enums "teamhub/internal/features/projects/enums"

	"github.com/google/uuid"
)

const maxNameSize = 100

type CreateProjectRequestDTO struct {
	Name      string `json:"name"`
	IsPrivate bool   `json:"is_private"`
}

func (r *CreateProjectRequestDTO) Validate() error {
	r.Name = strings.TrimSpace(r.Name)

	if r.Name == "" {
		return apperrors.Validation("name is required")
	}

	if len(r.Name) > maxNameSize {
		return apperrors.Validation(fmt.Sprintf("name must be at most %d characters", maxNameSize))
	}

	return nil
}

type AddProjectMemberRequestDTO struct {
	UserID     uuid.UUID                        `json:"user_id"`
	Permission projects_enums.ProjectPermission `json:"permission"`
}

func (r *AddProjectMemberRequestDTO) Validate() error {
	if r.UserID == uuid.Nil {
		return apperrors.Validation("user_id is required")
	}

	if !r.Permission.IsValid() {
		return apperrors.Validation("permission must be edit or view")
	}

	return nil
}

type ProjectResponseDTO struct {
	ID             uuid.UUID                        `json:"id"`
	OrganizationID uuid.UUID                        `json:"organization_id"`
	Name           string                           `json:"name"`
	IsPrivate      bool                             `json:"is_private"`
	Permission     projects_enums.ProjectPermission `json:"permission"`
	CreatedAt      time.Time                        `json:"created_at"`
}

type ProjectMemberResponseDTO struct {
	ID         uuid.UUID                        `json:"id"`
	UserID     uuid.UUID                        `json:"user_id"`
	ProjectID  uuid.UUID                        `json:"project_id"`
	Permission projects_enums.ProjectPermission `json:"permission"`
	CreatedAt  time.Time                        `json:"created_at"`
}
