package organizations_repositories

import (
	"errors"

	organizations_models "teamhub/internal/features/organizations/models"
	"teamhub/internal/storage"

	"gorm.io/gorm"
)

type InviteRepository struct{}

func (r *InviteRepository) CreateInvite(invite *organizations_models.Invite) error {
	return storage.GetDb().Create(invite).Error
}

func (r *InviteRepository) GetInviteByToken(token string) (*organizations_models.Invite, error) {
	var invite organizations_models.Invite

	if err := storage.GetDb().Where("token = ?", token).First(&invite).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &invite, nil
}
