package usercontext

import (
	"fmt"

	"teamhub/internal/apperrors"
	organizations_dto "teamhub/internal/features/organizations/dto"
	organizations_enums "teamhub/internal/features/organizations/enums"
	organizations_models "teamhub/internal/features/organizations/models"
	organizations_repositories "teamhub/internal/features/organizations/repositories"
	projects_dto "teamhub/internal/features/projects/dto"
	projects_repositories "teamhub/internal/features/projects/repositories"
	projects_services "teamhub/internal/features/projects/services"
	users_repositories "teamhub/internal/features/users/repositories"

	"github.com/google/uuid"
)

const newOrgRedirect = "/org/new"

type ContextService struct {
	userRepository         *users_repositories.UserRepository
	organizationRepository *organizations_repositories.OrganizationRepository
	memberRepository       *organizations_repositories.MemberRepository
	projectRepository      *projects_repositories.ProjectRepository
	permissionService      *projects_services.PermissionService
}

// GetCurrentContext restores where the user left off. Stale pointers are not an
// error: a pointer to a deleted organization, a revoked membership or an
// inaccessible project is cleared in the database and the response falls back to
// the next sensible place.
func (s *ContextService) GetCurrentContext(userID uuid.UUID) (*ContextResponse, error) {
	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return nil, apperrors.Internal("failed to get user", err)
	}

	if user == nil {
		return nil, apperrors.Unauthorized("user not found")
	}

	if user.LastOrgID == nil {
		return s.fallbackContext(userID)
	}

	organization, role, err := s.checkOrganizationAccess(userID, *user.LastOrgID)
	if err != nil {
		return nil, err
	}

	if organization == nil {
		// Organization deleted or membership revoked since the last visit.
		if err := s.userRepository.ClearLastContext(userID); err != nil {
			return nil, apperrors.Internal("failed to clear context", err)
		}

		return s.fallbackContext(userID)
	}

	response := &ContextResponse{
		HasContext:   true,
		Organization: buildOrganizationResponse(organization, role),
		RedirectURL:  fmt.Sprintf("/org/%s", organization.Slug),
	}

	if user.LastProjectID == nil {
		return response, nil
	}

	project := s.resolveProject(userID, *user.LastProjectID, organization.ID)
	if project == nil {
		if err := s.userRepository.ClearLastProject(userID); err != nil {
			return nil, apperrors.Internal("failed to clear project pointer", err)
		}

		return response, nil
	}

	response.Project = project
	response.RedirectURL = fmt.Sprintf("/org/%s/projects/%s", organization.Slug, project.ID)

	return response, nil
}

// UpdateContext moves the user's pointers after validating access. A project
// implies its parent organization, and when both are given they must agree.
// Nothing is persisted when validation fails.
func (s *ContextService) UpdateContext(
	userID uuid.UUID,
	request *UpdateContextRequest,
) (*ContextResponse, error) {
	var orgID uuid.UUID

	var projectResponse *projects_dto.ProjectResponseDTO

	if request.ProjectID != nil {
		project, err := s.projectRepository.GetProjectByID(*request.ProjectID)
		if err != nil {
			return nil, apperrors.Internal("failed to get project", err)
		}

		if project == nil {
			return nil, apperrors.NotFound("project not found")
		}

		if request.OrgID != nil && *request.OrgID != project.OrganizationID {
			return nil, apperrors.Validation("project does not belong to the given organization")
		}

		permission, err := s.permissionService.ResolvePermission(userID, project)
		if err != nil {
			return nil, err
		}

		orgID = project.OrganizationID
		projectResponse = &projects_dto.ProjectResponseDTO{
			ID:             project.ID,
			OrganizationID: project.OrganizationID,
			Name:           project.Name,
			IsPrivate:      project.IsPrivate,
			Permission:     permission,
			CreatedAt:      project.CreatedAt,
		}
	} else {
		orgID = *request.OrgID
	}

	organization, role, err := s.checkOrganizationAccess(userID, orgID)
	if err != nil {
		return nil, err
	}

	if organization == nil {
		return nil, apperrors.NotFound("organization not found")
	}

	if err := s.userRepository.UpdateLastOrg(userID, &orgID); err != nil {
		return nil, apperrors.Internal("failed to update last organization", err)
	}

	if projectResponse != nil {
		projectID := projectResponse.ID
		if err := s.userRepository.UpdateLastProject(userID, &projectID); err != nil {
			return nil, apperrors.Internal("failed to update last project", err)
		}
	} else {
		if err := s.userRepository.ClearLastProject(userID); err != nil {
			return nil, apperrors.Internal("failed to clear project pointer", err)
		}
	}

	response := &ContextResponse{
		HasContext:   true,
		Organization: buildOrganizationResponse(organization, role),
		RedirectURL:  fmt.Sprintf("/org/%s", organization.Slug),
	}

	if projectResponse != nil {
		response.Project = projectResponse
		response.RedirectURL = fmt.Sprintf("/org/%s/projects/%s", organization.Slug, projectResponse.ID)
	}

	return response, nil
}

// fallbackContext picks the user's first organization when no pointer is usable,
// or sends them to create one.
func (s *ContextService) fallbackContext(userID uuid.UUID) (*ContextResponse, error) {
	organizations, err := s.memberRepository.GetOrganizationsForUser(userID)
	if err != nil {
		return nil, apperrors.Internal("failed to list organizations", err)
	}

	if len(organizations) == 0 {
		return &ContextResponse{HasContext: false, RedirectURL: newOrgRedirect}, nil
	}

	first := organizations[0]

	role, err := s.memberRepository.GetMemberRole(userID, first.ID)
	if err != nil {
		return nil, apperrors.Internal("failed to get membership", err)
	}

	if role == nil {
		return &ContextResponse{HasContext: false, RedirectURL: newOrgRedirect}, nil
	}

	return &ContextResponse{
		HasContext:   true,
		Organization: buildOrganizationResponse(first, *role),
		RedirectURL:  fmt.Sprintf("/org/%s", first.Slug),
	}, nil
}

// checkOrganizationAccess returns (nil, "", nil) when the organization is gone
// or the user is not a member.
func (s *ContextService) checkOrganizationAccess(
	userID uuid.UUID,
	orgID uuid.UUID,
) (*organizations_models.Organization, organizations_enums.OrgRole, error) {
	organization, err := s.organizationRepository.GetOrganizationByID(orgID)
	if err != nil {
		return nil, "", apperrors.Internal("failed to get organization", err)
	}

	if organization == nil {
		return nil, "", nil
	}

	role, err := s.memberRepository.GetMemberRole(userID, organization.ID)
	if err != nil {
		return nil, "", apperrors.Internal("failed to get membership", err)
	}

	if role == nil {
		return nil, "", nil
	}

	return organization, *role, nil
}

// resolveProject returns nil when the project pointer is stale: project gone,
// moved to another organization, or access revoked.
func (s *ContextService) resolveProject(
	userID uuid.UUID,
	projectID uuid.UUID,
	orgID uuid.UUID,
) *projects_dto.ProjectResponseDTO {
	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil || project == nil || project.OrganizationID != orgID {
		return nil
	}

	permission, err := s.permissionService.ResolvePermission(userID, project)
	if err != nil {
		return nil
	}

	return &projects_dto.ProjectResponseDTO{
		ID:             project.ID,
		OrganizationID: project.OrganizationID,
		Name:           project.Name,
		IsPrivate:      project.IsPrivate,
		Permission:     permission,
		CreatedAt:      project.CreatedAt,
	}
}

func buildOrganizationResponse(
	organization *organizations_models.Organization,
	role organizations_enums.OrgRole,
) *organizations_dto.OrganizationResponseDTO {
	return &organizations_dto.OrganizationResponseDTO{
		ID:        organization.ID,
		Name:      organization.Name,
		Slug:      organization.Slug,
		Role:      role,
		CreatedAt: organization.CreatedAt,
	}
}
