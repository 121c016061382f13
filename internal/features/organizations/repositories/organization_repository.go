package organizations_repositories

import (
	"errors"

	organizations_models "teamhub/internal/features/organizations/models"
	"teamhub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrganizationRepository struct{}

func (r *OrganizationRepository) GetOrganizationByID(orgID uuid.UUID) (*organizations_models.Organization, error) {
	var org organizations_models.Organization

	if err := storage.GetDb().Where("id = ?", orgID).First(&org).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &org, nil
}

func (r *OrganizationRepository) GetOrganizationBySlug(slug string) (*organizations_models.Organization, error) {
	var org organizations_models.Organization

	if err := storage.GetDb().Where("slug = ?", slug).First(&org).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &org, nil
}

func (r *OrganizationRepository) IsSlugTaken(slug string) (bool, error) {
	var count int64

	err := storage.GetDb().Model(&organizations_models.Organization{}).
		Where("slug = ?", slug).
		Count(&count).Error

	return count > 0, err
}
