package organizations_services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"teamhub/internal/apperrors"
	"teamhub/internal/features/emails"
	organizations_dto "teamhub/internal/features/organizations/dto"
	organizations_models "teamhub/internal/features/organizations/models"
	organizations_repositories "teamhub/internal/features/organizations/repositories"
	projects_models "teamhub/internal/features/projects/models"
	users_models "teamhub/internal/features/users/models"
	users_repositories "teamhub/internal/features/users/repositories"
	"teamhub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	inviteTokenBytes = 32
	inviteLifetime   = 7 * 24 * time.Hour
)

type InviteService struct {
	organizationRepository *organizations_repositories.OrganizationRepository
	memberRepository       *organizations_repositories.MemberRepository
	inviteRepository       *organizations_repositories.InviteRepository
	userRepository         *users_repositories.UserRepository
	emailService           *emails.EmailService
}

// CreateInvite issues a single-use invite token for the organization. Only
// owners and admins can invite, and an invite can only grant admin or member.
func (s *InviteService) CreateInvite(
	userID uuid.UUID,
	slug string,
	request *organizations_dto.CreateInviteRequestDTO,
) (*organizations_dto.InviteResponseDTO, error) {
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

	if !role.CanManage() {
		return nil, apperrors.Forbidden("insufficient role")
	}

	if request.ProjectID != nil {
		if err := s.checkProjectInOrganization(*request.ProjectID, organization.ID); err != nil {
			return nil, err
		}
	}

	token, err := generateInviteToken()
	if err != nil {
		return nil, apperrors.Internal("failed to generate invite token", err)
	}

	inviter, err := s.userRepository.GetUserByID(userID)
	if err != nil || inviter == nil {
		return nil, apperrors.Internal("failed to get inviter", err)
	}

	now := time.Now().UTC()
	invite := &organizations_models.Invite{
		ID:                uuid.New(),
		Token:             token,
		Email:             request.Email,
		OrganizationID:    organization.ID,
		ProjectID:         request.ProjectID,
		Role:              request.Role,
		ProjectPermission: request.ProjectPermission,
		InvitedByID:       userID,
		ExpiresAt:         now.Add(inviteLifetime),
		CreatedAt:         now,
	}

	if err := s.inviteRepository.CreateInvite(invite); err != nil {
		return nil, apperrors.Internal("failed to create invite", err)
	}

	s.emailService.EnqueueInviteEmail(invite.Email, inviter.DisplayName, organization.Name, token)

	return &organizations_dto.InviteResponseDTO{
		ID:        invite.ID,
		Email:     invite.Email,
		Role:      invite.Role,
		Token:     invite.Token,
		ExpiresAt: invite.ExpiresAt,
		CreatedAt: invite.CreatedAt,
	}, nil
}

// GetInviteInfo returns the public preview of a redeemable invite. Used or
// expired invites are indistinguishable from unknown tokens.
func (s *InviteService) GetInviteInfo(token string) (*organizations_dto.InviteInfoResponseDTO, error) {
	invite, err := s.inviteRepository.GetInviteByToken(token)
	if err != nil {
		return nil, apperrors.Internal("failed to get invite", err)
	}

	if invite == nil || !invite.IsRedeemable(time.Now().UTC()) {
		return nil, apperrors.NotFound("invite not found")
	}

	organization, err := s.organizationRepository.GetOrganizationByID(invite.OrganizationID)
	if err != nil {
		return nil, apperrors.Internal("failed to get organization", err)
	}

	if organization == nil {
		return nil, apperrors.NotFound("invite not found")
	}

	return &organizations_dto.InviteInfoResponseDTO{
		OrganizationName: organization.Name,
		OrganizationSlug: organization.Slug,
		Email:            invite.Email,
		ExpiresAt:        invite.ExpiresAt,
	}, nil
}

// AcceptInvite redeems the invite for the authenticated user: membership insert,
// used_at stamp and last visited organization pointer move in one transaction.
// The invite row is locked and revalidated inside the transaction, and the
// used_at stamp only lands on a still-unused row, so two concurrent accepts
// cannot both redeem it.
func (s *InviteService) AcceptInvite(
	userID uuid.UUID,
	token string,
) (*organizations_dto.AcceptInviteResponseDTO, error) {
	invite, err := s.inviteRepository.GetInviteByToken(token)
	if err != nil {
		return nil, apperrors.Internal("failed to get invite", err)
	}

	if invite == nil || !invite.IsRedeemable(time.Now().UTC()) {
		return nil, apperrors.NotFound("invite not found")
	}

	organization, err := s.organizationRepository.GetOrganizationByID(invite.OrganizationID)
	if err != nil {
		return nil, apperrors.Internal("failed to get organization", err)
	}

	if organization == nil {
		return nil, apperrors.NotFound("invite not found")
	}

	existingRole, err := s.memberRepository.GetMemberRole(userID, organization.ID)
	if err != nil {
		return nil, apperrors.Internal("failed to get membership", err)
	}

	if existingRole != nil {
		return nil, apperrors.Conflict("you are already a member of this organization")
	}

	now := time.Now().UTC()

	err = storage.GetDb().Transaction(func(tx *gorm.DB) error {
		var lockedInvite organizations_models.Invite

		// SELECT ... FOR UPDATE: a concurrent accept blocks here until
		// this transaction commits, then sees the stamped used_at.
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", invite.ID).
			First(&lockedInvite).Error
		if err != nil {
			return err
		}

		if !lockedInvite.IsRedeemable(now) {
			return errInviteSpent
		}

		member := &organizations_models.OrganizationMember{
			ID:             uuid.New(),
			UserID:         userID,
			OrganizationID: organization.ID,
			Role:           invite.Role,
			CreatedAt:      now,
		}
		if err := tx.Create(member).Error; err != nil {
			return err
		}

		stamp := tx.Model(&organizations_models.Invite{}).
			Where("id = ? AND used_at IS NULL", invite.ID).
			Update("used_at", now)
		if stamp.Error != nil {
			return stamp.Error
		}

		if stamp.RowsAffected == 0 {
			return errInviteSpent
		}

		return tx.Model(&users_models.User{}).
			Where("id = ?", userID).
			Update("last_org_id", organization.ID).Error
	})
	if err != nil {
		if errors.Is(err, errInviteSpent) {
			return nil, apperrors.NotFound("invite not found")
		}

		return nil, apperrors.Internal("failed to accept invite", err)
	}

	return &organizations_dto.AcceptInviteResponseDTO{
		Organization: *buildOrganizationResponse(organization, invite.Role),
	}, nil
}

var errInviteSpent = errors.New("invite already used or expired")

func (s *InviteService) checkProjectInOrganization(projectID uuid.UUID, orgID uuid.UUID) error {
	var count int64

	err := storage.GetDb().Model(&projects_models.Project{}).
		Where("id = ? AND organization_id = ?", projectID, orgID).
		Count(&count).Error
	if err != nil {
		return apperrors.Internal("failed to check project", err)
	}

	if count == 0 {
		return apperrors.Validation("project does not belong to this organization")
	}

	return nil
}

func generateInviteToken() (string, error) {
	buffer := make([]byte, inviteTokenBytes)

	if _, err := rand.Read(buffer); err != nil {
		return "", err
	}

	return hex.EncodeToString(buffer), nil
}
