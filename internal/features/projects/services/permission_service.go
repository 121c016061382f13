package projects_services

import (
	"teamhub/internal/apperrors"
	organizations_repositories "teamhub/internal/features/organizations/repositories"
	projects_enums "teamhub/internal/features/projects/enums"
	projects_models "teamhub/internal/features/projects/models"
	projects_repositories "teamhub/internal/features/projects/repositories"

	"github.com/google/uuid"
)

type PermissionService struct {
	memberRepository        *organizations_repositories.MemberRepository
	projectMemberRepository *projects_repositories.ProjectMemberRepository
}

// ResolvePermission computes the user's effective permission on a project.
// Organization role never overrides project access: a private project requires
// an explicit membership row even for owners and admins. On public projects an
// explicit row wins, otherwise every organization member gets view access.
func (s *PermissionService) ResolvePermission(
	userID uuid.UUID,
	project *projects_models.Project,
) (projects_enums.ProjectPermission, error) {
	isMember, err := s.memberRepository.IsMember(userID, project.OrganizationID)
	if err != nil {
		return "", apperrors.Internal("failed to get membership", err)
	}

	if !isMember {
		return "", apperrors.NotFound("project not found")
	}

	explicit, err := s.projectMemberRepository.GetPermission(userID, project.ID)
	if err != nil {
		return "", apperrors.Internal("failed to get project permission", err)
	}

	if project.IsPrivate {
		if explicit == nil {
			return "", apperrors.Forbidden("you do not have access to this project")
		}

		return *explicit, nil
	}

	if explicit != nil {
		return *explicit, nil
	}

	return projects_enums.ProjectPermissionView, nil
}
