package organizations_repositories

import (
	"errors"

	organizations_enums "teamhub/internal/features/organizations/enums"
	organizations_models "teamhub/internal/features/organizations/models"
	"teamhub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberRepository struct{}

// GetMemberRole returns nil when the user is not a member of the organization.
func (r *MemberRepository) GetMemberRole(userID uuid.UUID, orgID uuid.UUID) (*organizations_enums.OrgRole, error) {
	var member organizations_models.OrganizationMember

	err := storage.GetDb().
		Where("user_id = ? AND organization_id = ?", userID, orgID).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &member.Role, nil
}

func (r *MemberRepository) IsMember(userID uuid.UUID, orgID uuid.UUID) (bool, error) {
	role, err := r.GetMemberRole(userID, orgID)
	if err != nil {
		return false, err
	}

	return role != nil, nil
}

func (r *MemberRepository) GetOrganizationsForUser(userID uuid.UUID) ([]*organizations_models.Organization, error) {
	var organizations []*organizations_models.Organization

	err := storage.GetDb().
		Joins("JOIN organization_members ON organization_members.organization_id = organizations.id").
		Where("organization_members.user_id = ?", userID).
		Order("organizations.created_at ASC").
		Find(&organizations).Error
	if err != nil {
		return nil, err
	}

	return organizations, nil
}

func (r *MemberRepository) GetMembershipsForUser(userID uuid.UUID) ([]*organizations_models.OrganizationMember, error) {
	var members []*organizations_models.OrganizationMember

	err := storage.GetDb().
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}

	return members, nil
}
