package projects_repositories

import (
	"errors"

	projects_models "teamhub/internal/features/projects/models"
	"teamhub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository struct{}

func (r *ProjectRepository) GetProjectByID(projectID uuid.UUID) (*projects_models.Project, error) {
	var project projects_models.Project

	if err := storage.GetDb().Where("id = ?", projectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &project, nil
}

// GetVisibleProjects returns the organization's public projects plus the private
// ones the user has an explicit membership row for.
func (r *ProjectRepository) GetVisibleProjects(
	orgID uuid.UUID,
	userID uuid.UUID,
) ([]*projects_models.Project, error) {
	var projects []*projects_models.Project

	err := storage.GetDb().
		Where(
			"organization_id = ? AND (is_private = false OR id IN (?))",
			orgID,
			storage.GetDb().Model(&projects_models.ProjectMember{}).
				Select("project_id").
				Where("user_id = ?", userID),
		).
		Order("created_at ASC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}

	return projects, nil
}
