package organizations_dto

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"teamhub/internal/apperrors"
	organizations_enums "teamhub/internal/features/organizations/enums"
	projects_enums "teamhub/internal/features/projects/enums"

	"github.com/google/uuid"
)

const (
	maxNameSize = 100
	maxSlugSize = 63
)

var (
	slugRegex  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

type CreateOrganizationRequestDTO struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (r *CreateOrganizationRequestDTO) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Slug = strings.TrimSpace(r.Slug)

	if r.Name == "" {
		return apperrors.Validation("name is required")
	}

	if len(r.Name) > maxNameSize {
		return apperrors.Validation(fmt.Sprintf("name must be at most %d characters", maxNameSize))
	}

	if r.Slug == "" {
		return apperrors.Validation("slug is required")
	}

	if len(r.Slug) > maxSlugSize {
		return apperrors.Validation(fmt.Sprintf("slug must be at most %d characters", maxSlugSize))
	}

	if !slugRegex.MatchString(r.Slug) {
		return apperrors.Validation("slug must contain only lowercase letters, digits and hyphens")
	}

	return nil
}

type CreateInviteRequestDTO struct {
	Email             string                            `json:"email"`
	Role              organizations_enums.OrgRole       `json:"role"`
	ProjectID         *uuid.UUID                        `json:"project_id,omitempty"`
	ProjectPermission *projects_enums.ProjectPermission `json:"project_permission,omitempty"`
}

func (r *CreateInviteRequestDTO) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))

	if r.Email == "" {
		return apperrors.Validation("email is required")
	}

	if !emailRegex.MatchString(r.Email) {
		return apperrors.Validation("email is invalid")
	}

	if r.Role != organizations_enums.OrgRoleAdmin && r.Role != organizations_enums.OrgRoleMember {
		return apperrors.Validation("role must be admin or member")
	}

	if r.ProjectPermission != nil && !r.ProjectPermission.IsValid() {
		return apperrors.Validation("project_permission must be edit or view")
	}

	if r.ProjectPermission != nil && r.ProjectID == nil {
		return apperrors.Validation("project_permission requires project_id")
	}

	return nil
}

type OrganizationResponseDTO struct {
	ID        uuid.UUID                   `json:"id"`
	Name      string                      `json:"name"`
	Slug      string                      `json:"slug"`
	Role      organizations_enums.OrgRole `json:"role"`
	CreatedAt time.Time                   `json:"created_at"`
}

type InviteResponseDTO struct {
	ID        uuid.UUID                   `json:"id"`
	Email     string                      `json:"email"`
	Role      organizations_enums.OrgRole `json:"role"`
	Token     string                      `json:"token"`
	ExpiresAt time.Time                   `json:"expires_at"`
	CreatedAt time.Time                   `json:"created_at"`
}

// InviteInfoResponseDTO is the public preview shown before a user accepts an invite.
type InviteInfoResponseDTO struct {
	OrganizationName string    `json:"organization_name"`
	OrganizationSlug string    `json:"organization_slug"`
	Email            string    `json:"email"`
	ExpiresAt        time.Time `json:"expires_at"`
}

type AcceptInviteResponseDTO struct {
	Organization OrganizationResponseDTO `json:"organization"`
}
