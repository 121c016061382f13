package users_repositories

import (
	"errors"

	users_models "teamhub/internal/features/users/models"
	"teamhub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct{}

func (r *UserRepository) CreateUser(user *users_models.User) error {
	return storage.GetDb().Create(user).Error
}

func (r *UserRepository) GetUserByEmail(email string) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) UpdateDisplayName(userID uuid.UUID, displayName string) error {
	return storage.GetDb().Model(&users_models.User{}).
		Where("id = ?", userID).
		Update("display_name", displayName).Error
}

func (r *UserRepository) UpdateLastOrg(userID uuid.UUID, orgID *uuid.UUID) error {
	return storage.GetDb().Model(&users_models.User{}).
		Where("id = ?", userID).
		Update("last_org_id", orgID).Error
}

func (r *UserRepository) UpdateLastProject(userID uuid.UUID, projectID *uuid.UUID) error {
	return storage.GetDb().Model(&users_models.User{}).
		Where("id = ?", userID).
		Update("last_project_id", projectID).Error
}

// ClearLastContext drops both pointers in one statement; used by the
// self-healing paths of context resolution.
func (r *UserRepository) ClearLastContext(userID uuid.UUID) error {
	return storage.GetDb().Model(&users_models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"last_org_id":     nil,
			"last_project_id": nil,
		}).Error
}

func (r *UserRepository) ClearLastProject(userID uuid.UUID) error {
	return storage.GetDb().Model(&users_models.User{}).
		Where("id = ?", userID).
		Update("last_project_id", nil).Error
}
