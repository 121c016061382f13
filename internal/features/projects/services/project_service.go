package projects_services

import (
	"time"

	"teamhub/internal/apperrors"
	organizations_enums "teamhub/internal/features/organizations/enums"
	organizations_models "teamhub/internal/features/organizations/models"
	organizations_repositories "teamhub/internal/features/organizations/repositories"
	projects_dto "teamhub/internal/features/projects/dto"
	projects_enums "teamhub/internal/features/projects/enums"
	projects_models "teamhub/internal/features/projects/models"
	projects_repositories "teamhub/internal/features/projects/repositories"
	users_models "teamhub/internal/features/users/models"
	users_repositories "teamhub/internal/features/users/repositories"
	"teamhub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectService struct {
	organizationRepository  *organizations_repositories.OrganizationRepository
	memberRepository        *organizations_repositories.MemberRepository
	projectRepository       *projects_repositories.ProjectRepository
	projectMemberRepository *projects_repositories.ProjectMemberRepository
	userRepository          *users_repositories.UserRepository
	permissionService       *PermissionService
}

// CreateProject creates a project in the organization. Owners and admins only.
// For a private project the creator gets an explicit edit membership in the same
// transaction, otherwise even the creator would be locked out. The creator's
// last visited project pointer is moved to the new project.
func (s *ProjectService) CreateProject(
	userID uuid.UUID,
	slug string,
	request *projects_dto.CreateProjectRequestDTO,
) (*projects_dto.ProjectResponseDTO, error) {
	organization, role, err := s.resolveOrganization(userID, slug)
	if err != nil {
		return nil, err
	}

	if !role.CanManage() {
		return nil, apperrors.Forbidden("insufficient role")
	}

	now := time.Now().UTC()
	project := &projects_models.Project{
		ID:             uuid.New(),
		OrganizationID: organization.ID,
		Name:           request.Name,
		IsPrivate:      request.IsPrivate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}

		if project.IsPrivate {
			member := &projects_models.ProjectMember{
				ID:         uuid.New(),
				UserID:     userID,
				ProjectID:  project.ID,
				Permission: projects_enums.ProjectPermissionEdit,
				CreatedAt:  now,
			}
			if err := tx.Create(member).Error; err != nil {
				return err
			}
		}

		return tx.Model(&users_models.User{}).
			Where("id = ?", userID).
			Updates(map[string]any{
				"last_org_id":     organization.ID,
				"last_project_id": project.ID,
			}).Error
	})
	if err != nil {
		return nil, apperrors.Internal("failed to create project", err)
	}

	permission := projects_enums.ProjectPermissionView
	if project.IsPrivate {
		permission = projects_enums.ProjectPermissionEdit
	}

	return buildProjectResponse(project, permission), nil
}

// ListProjects returns the organization's projects visible to the user: all
// public ones plus private ones with an explicit membership row.
func (s *ProjectService) ListProjects(
	userID uuid.UUID,
	slug string,
) ([]*projects_dto.ProjectResponseDTO, error) {
	organization, _, err := s.resolveOrganization(userID, slug)
	if err != nil {
		return nil, err
	}

	projects, err := s.projectRepository.GetVisibleProjects(organization.ID, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to list projects", err)
	}

	projectIDs := make([]uuid.UUID, 0, len(projects))
	for _, project := range projects {
		projectIDs = append(projectIDs, project.ID)
	}

	explicitPermissions, err := s.projectMemberRepository.GetPermissionsForUser(userID, projectIDs)
	if err != nil {
		return nil, apperrors.Internal("failed to get project permissions", err)
	}

	responses := make([]*projects_dto.ProjectResponseDTO, 0, len(projects))
	for _, project := range projects {
		permission, hasExplicit := explicitPermissions[project.ID]
		if !hasExplicit {
			permission = projects_enums.ProjectPermissionView
		}

		responses = append(responses, buildProjectResponse(project, permission))
	}

	return responses, nil
}

// GetProject resolves a single project and records it, together with its
// organization, as the user's last visited context.
func (s *ProjectService) GetProject(
	userID uuid.UUID,
	slug string,
	projectID uuid.UUID,
) (*projects_dto.ProjectResponseDTO, error) {
	organization, _, err := s.resolveOrganization(userID, slug)
	if err != nil {
		return nil, err
	}

	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return nil, apperrors.Internal("failed to get project", err)
	}

	if project == nil || project.OrganizationID != organization.ID {
		return nil, apperrors.NotFound("project not found")
	}

	permission, err := s.permissionService.ResolvePermission(userID, project)
	if err != nil {
		return nil, err
	}

	orgID := organization.ID
	if err := s.userRepository.UpdateLastOrg(userID, &orgID); err != nil {
		return nil, apperrors.Internal("failed to update last organization", err)
	}

	pID := project.ID
	if err := s.userRepository.UpdateLastProject(userID, &pID); err != nil {
		return nil, apperrors.Internal("failed to update last project", err)
	}

	return buildProjectResponse(project, permission), nil
}

// AddProjectMember grants a user an explicit permission row on a project.
// Owners and admins only; the target must already be an organization member.
func (s *ProjectService) AddProjectMember(
	userID uuid.UUID,
	slug string,
	projectID uuid.UUID,
	request *projects_dto.AddProjectMemberRequestDTO,
) (*projects_dto.ProjectMemberResponseDTO, error) {
	organization, role, err := s.resolveOrganization(userID, slug)
	if err != nil {
		return nil, err
	}

	if !role.CanManage() {
		return nil, apperrors.Forbidden("insufficient role")
	}

	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return nil, apperrors.Internal("failed to get project", err)
	}

	if project == nil || project.OrganizationID != organization.ID {
		return nil, apperrors.NotFound("project not found")
	}

	targetIsMember, err := s.memberRepository.IsMember(request.UserID, organization.ID)
	if err != nil {
		return nil, apperrors.Internal("failed to get membership", err)
	}

	if !targetIsMember {
		return nil, apperrors.Validation("user is not a member of this organization")
	}

	existing, err := s.projectMemberRepository.GetPermission(request.UserID, project.ID)
	if err != nil {
		return nil, apperrors.Internal("failed to get project permission", err)
	}

	if existing != nil {
		return nil, apperrors.Conflict("user is already a member of this project")
	}

	member := &projects_models.ProjectMember{
		ID:         uuid.New(),
		UserID:     request.UserID,
		ProjectID:  project.ID,
		Permission: request.Permission,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.projectMemberRepository.CreateProjectMember(member); err != nil {
		return nil, apperrors.Internal("failed to add project member", err)
	}

	return &projects_dto.ProjectMemberResponseDTO{
		ID:         member.ID,
		UserID:     member.UserID,
		ProjectID:  member.ProjectID,
		Permission: member.Permission,
		CreatedAt:  member.CreatedAt,
	}, nil
}

// resolveOrganization loads an organization by slug for a member. Both an
// unknown slug and a foreign organization come back as not found.
func (s *ProjectService) resolveOrganization(
	userID uuid.UUID,
	slug string,
) (*organizations_models.Organization, organizations_enums.OrgRole, error) {
	organization, err := s.organizationRepository.GetOrganizationBySlug(slug)
	if err != nil {
		return nil, "", apperrors.Internal("failed to get organization", err)
	}

	if organization == nil {
		return nil, "", apperrors.NotFound("organization not found")
	}

	role, err := s.memberRepository.GetMemberRole(userID, organization.ID)
	if err != nil {
		return nil, "", apperrors.Internal("failed to get membership", err)
	}

	if role == nil {
		return nil, "", apperrors.NotFound("organization not found")
	}

	return organization, *role, nil
}

func buildProjectResponse(
	project *projects_models.Project,
	permission projects_enums.ProjectPermission,
) *projects_dto.ProjectResponseDTO {
	return &projects_dto.ProjectResponseDTO{
		ID:             project.ID,
		OrganizationID: project.OrganizationID,
		Name:           project.Name,
		IsPrivate:      project.IsPrivate,
		Permission:     permission,
		CreatedAt:      project.CreatedAt,
	}
}
