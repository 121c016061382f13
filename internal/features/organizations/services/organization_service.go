package organizations_services

import (
	"time"

	"teamhub/internal/apperrors"
	organizations_dto "teamhub/internal/features/organizations/dto"
	organizations_enums "teamhub/internal/features/organizations/enums"
	organizations_models "teamhub/internal/features/organizations/models"
	organizations_repositories "teamhub/internal/features/organizations/repositories"
	projects_models "teamhub/internal/features/projects/models"
	users_models "teamhub/internal/features/users/models"
	users_repositories "teamhub/internal/features/users/repositories"
	"teamhub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultProjectName = "General"

type OrganizationService struct {
	organizationRepository *organizations_repositories.OrganizationRepository
	memberRepository       *organizations_repositories.MemberRepository
	userRepository         *users_repositories.UserRepository
}

// CreateOrganization creates the organization together with the creator's owner
// membership and a default public project, in a single transaction. The creator's
// last visited organization pointer is moved to the new organization.
func (s *OrganizationService) CreateOrganization(
	userID uuid.UUID,
	request *organizations_dto.CreateOrganizationRequestDTO,
) (*organizations_dto.OrganizationResponseDTO, error) {
	taken, err := s.organizationRepository.IsSlugTaken(request.Slug)
	if err != nil {
		return nil, apperrors.Internal("failed to check slug availability", err)
	}

	if taken {
		return nil, apperrors.Conflict("slug is already taken")
	}

	now := time.Now().UTC()
	organization := &organizations_models.Organization{
		ID:        uuid.New(),
		Name:      request.Name,
		Slug:      request.Slug,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(organization).Error; err != nil {
			return err
		}

		member := &organizations_models.OrganizationMember{
			ID:             uuid.New(),
			UserID:         userID,
			OrganizationID: organization.ID,
			Role:           organizations_enums.OrgRoleOwner,
			CreatedAt:      now,
		}
		if err := tx.Create(member).Error; err != nil {
			return err
		}

		project := &projects_models.Project{
			ID:             uuid.New(),
			OrganizationID: organization.ID,
			Name:           defaultProjectName,
			IsPrivate:      false,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := tx.Create(project).Error; err != nil {
			return err
		}

		return tx.Model(&users_models.User{}).
			Where("id = ?", userID).
			Update("last_org_id", organization.ID).Error
	})
	if err != nil {
		return nil, apperrors.Internal("failed to create organization", err)
	}

	return buildOrganizationResponse(organization, organizations_enums.OrgRoleOwner), nil
}

func (s *OrganizationService) ListOrganizations(
	userID uuid.UUID,
) ([]*organizations_dto.OrganizationResponseDTO, error) {
	organizations, err := s.memberRepository.GetOrganizationsForUser(userID)
	if err != nil {
		return nil, apperrors.Internal("failed to list organizations", err)
	}

	memberships, err := s.memberRepository.GetMembershipsForUser(userID)
	if err != nil {
		return nil, apperrors.Internal("failed to list memberships", err)
	}

	roleByOrg := make(map[uuid.UUID]organizations_enums.OrgRole, len(memberships))
	for _, membership := range memberships {
		roleByOrg[membership.OrganizationID] = membership.Role
	}

	responses := make([]*organizations_dto.OrganizationResponseDTO, 0, len(organizations))
	for _, organization := range organizations {
		responses = append(responses, buildOrganizationResponse(organization, roleByOrg[organization.ID]))
	}

	return responses, nil
}

// GetOrganizationBySlug resolves an organization for a member and records it as
// the user's last visited organization. Non-members get a not found error so the
// existence of foreign organizations is not revealed.
func (s *OrganizationService) GetOrganizationBySlug(
	userID uuid.UUID,
	slug string,
) (*organizations_dto.OrganizationResponseDTO, error) {
	organization, err := s.organizationRepository.GetOrganizationBySlug(slug)
	if err != nil {
		return nil, apperrors.Internal("failed to get organization", err)
	}

	if organization == nil {
		return nil, apperrors.NotFound("organization not found")
	}

	role, err := s.memberRepository.GetMemberRole(userID, organization.ID)
	if err != nil {
		return nil, apperrors.Internal("failed to get membership", err)
	}

	if role == nil {
		return nil, apperrors.NotFound("organization not found")
	}

	orgID := organization.ID
	if err := s.userRepository.UpdateLastOrg(userID, &orgID); err != nil {
		return nil, apperrors.Internal("failed to update last organization", err)
	}

	return buildOrganizationResponse(organization, *role), nil
}

// RequireManageRole checks that the user can manage the organization (owner or admin).
func (s *OrganizationService) RequireManageRole(userID uuid.UUID, orgID uuid.UUID) error {
	role, err := s.memberRepository.GetMemberRole(userID, orgID)
	if err != nil {
		return apperrors.Internal("failed to get membership", err)
	}

	if role == nil {
		return apperrors.NotFound("organization not found")
	}

	if !role.CanManage() {
		return apperrors.Forbidden("insufficient role")
	}

	return nil
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
