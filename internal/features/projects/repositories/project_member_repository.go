package projects_repositories

import (
	"errors"

	projects_enums "teamhub/internal/features/projects/enums"
	projects_models "teamhub/internal/features/projects/models"
	"teamhub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectMemberRepository struct{}

func (r *ProjectMemberRepository) CreateProjectMember(member *projects_models.ProjectMember) error {
	return storage.GetDb().Create(member).Error
}

// GetPermission returns nil when the user has no explicit membership row.
func (r *ProjectMemberRepository) GetPermission(
	userID uuid.UUID,
	projectID uuid.UUID,
) (*projects_enums.ProjectPermission, error) {
	var member projects_models.ProjectMember

	err := storage.GetDb().
		Where("user_id = ? AND project_id = ?", userID, projectID).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &member.Permission, nil
}

func (r *ProjectMemberRepository) GetPermissionsForUser(
	userID uuid.UUID,
	projectIDs []uuid.UUID,
) (map[uuid.UUID]projects_enums.ProjectPermission, error) {
	if len(projectIDs) == 0 {
		return map[uuid.UUID]projects_enums.ProjectPermission{}, nil
	}

	var members []*projects_models.ProjectMember

	err := storage.GetDb().
		Where("user_id = ? AND project_id IN (?)", userID, projectIDs).
		Find(&members).Error
	if err != nil {
		return nil, err
	}

	permissions := make(map[uuid.UUID]projects_enums.ProjectPermission, len(members))
	for _, member := range members {
		permissions[member.ProjectID] = member.Permission
	}

	return permissions, nil
}
