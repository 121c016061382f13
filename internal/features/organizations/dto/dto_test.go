package organizations_dto

import (
	"testing"

	organizations_enums "teamhub/internal/features/organizations/enums"
	projects_enums "teamhub/internal/features/projects/enums"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CreateInviteRequestDTO_NormalizesEmail(t *testing.T) {
	request := &CreateInviteRequestDTO{
		Email: "  Alice@Example.COM  ",
		Role:  organizations_enums.OrgRoleMember,
	}

	require.NoError(t, request.Validate())
	assert.Equal(t, "alice@example.com", request.Email)
}

func Test_CreateInviteRequestDTO_ProjectPermissionRequiresProjectID(t *testing.T) {
	permission := projects_enums.ProjectPermissionEdit

	request := &CreateInviteRequestDTO{
		Email:             "alice@example.com",
		Role:              organizations_enums.OrgRoleMember,
		ProjectPermission: &permission,
	}

	err := request.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires project_id")

	projectID := uuid.New()
	request.ProjectID = &projectID
	assert.NoError(t, request.Validate())
}

func Test_CreateOrganizationRequestDTO_TrimsWhitespace(t *testing.T) {
	request := &CreateOrganizationRequestDTO{
		Name: "  Acme  ",
		Slug: " acme ",
	}

	require.NoError(t, request.Validate())
	assert.Equal(t, "Acme", request.Name)
	assert.Equal(t, "acme", request.Slug)
}
