package organizations_testing

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	organizations_dto "teamhub/internal/features/organizations/dto"
	organizations_enums "teamhub/internal/features/organizations/enums"
	organizations_models "teamhub/internal/features/organizations/models"
	organizations_services "teamhub/internal/features/organizations/services"
	"teamhub/internal/storage"

	"github.com/google/uuid"
)

// CreateTestOrganization creates an organization through the service so the
// owner membership and default project exist like in production.
func CreateTestOrganization(ownerID uuid.UUID) *organizations_dto.OrganizationResponseDTO {
	suffix := uuid.New().String()[:8]

	response, err := organizations_services.GetOrganizationService().CreateOrganization(
		ownerID,
		&organizations_dto.CreateOrganizationRequestDTO{
			Name: "Test Org " + suffix,
			Slug: "test-org-" + suffix,
		},
	)
	if err != nil {
		panic(err)
	}

	return response
}

// AddMember inserts a membership row directly, bypassing the invite flow.
func AddMember(userID uuid.UUID, orgID uuid.UUID, role organizations_enums.OrgRole) {
	member := &organizations_models.OrganizationMember{
		ID:             uuid.New(),
		UserID:         userID,
		OrganizationID: orgID,
		Role:           role,
		CreatedAt:      time.Now().UTC(),
	}

	if err := storage.GetDb().Create(member).Error; err != nil {
		panic(fmt.Errorf("failed to add test member: %w", err))
	}
}

// CreateExpiredInvite inserts an invite whose expiry is already in the past.
func CreateExpiredInvite(orgID uuid.UUID, invitedByID uuid.UUID, email string) *organizations_models.Invite {
	invite := &organizations_models.Invite{
		ID:             uuid.New(),
		Token:          randomInviteToken(),
		Email:          email,
		OrganizationID: orgID,
		Role:           organizations_enums.OrgRoleMember,
		InvitedByID:    invitedByID,
		ExpiresAt:      time.Now().UTC().Add(-time.Hour),
		CreatedAt:      time.Now().UTC().Add(-8 * 24 * time.Hour),
	}

	if err := storage.GetDb().Create(invite).Error; err != nil {
		panic(fmt.Errorf("failed to create expired test invite: %w", err))
	}

	return invite
}

// MarkInviteUsed stamps used_at directly, simulating a redemption that
// happened elsewhere.
func MarkInviteUsed(token string) {
	err := storage.GetDb().Model(&organizations_models.Invite{}).
		Where("token = ?", token).
		Update("used_at", time.Now().UTC()).Error
	if err != nil {
		panic(fmt.Errorf("failed to mark test invite used: %w", err))
	}
}

func randomInviteToken() string {
	buffer := make([]byte, 32)
	if _, err := rand.Read(buffer); err != nil {
		panic(err)
	}

	return hex.EncodeToString(buffer)
}

// RemoveMember revokes a membership directly, used to simulate stale pointers.
func RemoveMember(userID uuid.UUID, orgID uuid.UUID) {
	err := storage.GetDb().
		Where("user_id = ? AND organization_id = ?", userID, orgID).
		Delete(&organizations_models.OrganizationMember{}).Error
	if err != nil {
		panic(fmt.Errorf("failed to remove test member: %w", err))
	}
}
