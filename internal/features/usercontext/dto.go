package usercontext

import (
	"teamhub/internal/apperrors"
	organizations_dto "teamhub/internal/features/organizations/dto"
	projects_dto "teamhub/internal/features/projects/dto"

	"github.com/google/uuid"
)

type ContextResponse struct {
	HasContext   bool                                       `json:"has_context"`
	Organization *organizations_dto.OrganizationResponseDTO `json:"organization,omitempty"`
	Project      *projects_dto.ProjectResponseDTO           `json:"project,omitempty"`
	RedirectURL  string                                     `json:"redirect_url"`
}

type UpdateContextRequest struct {
	OrgID     *uuid.UUID `json:"org_id,omitempty"`
	ProjectID *uuid.UUID `json:"project_id,omitempty"`
}

func (r *UpdateContextRequest) Validate() error {
	if r.OrgID == nil && r.ProjectID == nil {
		return apperrors.Validation("org_id or project_id is required")
	}

	return nil
}
