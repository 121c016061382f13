package projects_controllers

import (
	"net/http"
	"testing"

	organizations_controllers "teamhub/internal/features/organizations/controllers"
	organizations_enums "teamhub/internal/features/organizations/enums"
	organizations_testing "teamhub/internal/features/organizations/testing"
	projects_dto "teamhub/internal/features/projects/dto"
	projects_enums "teamhub/internal/features/projects/enums"
	users_middleware "teamhub/internal/features/users/middleware"
	users_services "teamhub/internal/features/users/services"
	users_testing "teamhub/internal/features/users/testing"
	test_utils "teamhub/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createProjectTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")

	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetTokenService()))
	protectedGroup := protected.(*gin.RouterGroup)

	GetProjectController().RegisterProtectedRoutes(protectedGroup)
	organizations_controllers.GetOrganizationController().RegisterProtectedRoutes(protectedGroup)

	return router
}

func createProject(
	t *testing.T,
	router *gin.Engine,
	token, slug, name string,
	isPrivate bool,
) *projects_dto.ProjectResponseDTO {
	t.Helper()

	var response projects_dto.ProjectResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/organizations/"+slug+"/projects",
		token,
		projects_dto.CreateProjectRequestDTO{Name: name, IsPrivate: isPrivate},
		http.StatusCreated,
		&response,
	)

	return &response
}

func Test_CreateProject_Private_CreatorGetsEditMembership(t *testing.T) {
	router := createProjectTestRouter()
	owner := users_testing.CreateTestUser()
	organization := organizations_testing.CreateTestOrganization(owner.ID)

	project := createProject(t, router, owner.AccessToken, organization.Slug, "Secret Plans", true)

	assert.True(t, project.IsPrivate)
	assert.Equal(t, projects_enums.ProjectPermissionEdit, project.Permission)

	// The explicit membership row is what grants access, not the owner role.
	var fetched projects_dto.ProjectResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/organizations/"+organization.Slug+"/projects/"+project.ID.String(),
		owner.AccessToken,
		http.StatusOK,
		&fetched,
	)

	assert.Equal(t, projects_enums.ProjectPermissionEdit, fetched.Permission)
}

func Test_CreateProject_AsPlainMember_ReturnsForbidden(t *testing.T) {
	router := createProjectTestRouter()
	owner := users_testing.CreateTestUser()
	organization := organizations_testing.CreateTestOrganization(owner.ID)

	member := users_testing.CreateTestUser()
	organizations_testing.AddMember(member.ID, organization.ID, organizations_enums.OrgRoleMember)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/organizations/"+organization.Slug+"/projects",
		member.AccessToken,
		projects_dto.CreateProjectRequestDTO{Name: "Nope"},
		http.StatusForbidden,
	)
}

func Test_GetProject_PublicProject_MemberGetsViewAccess(t *testing.T) {
	router := createProjectTestRouter()
	owner := users_testing.CreateTestUser()
	organization := organizations_testing.CreateTestOrganization(owner.ID)
	project := createProject(t, router, owner.AccessToken, organization.Slug, "Everyone", false)

	member := users_testing.CreateTestUser()
	organizations_testing.AddMember(member.ID, organization.ID, organizations_enums.OrgRoleMember)

	var fetched projects_dto.ProjectResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/organizations/"+organization.Slug+"/projects/"+project.ID.String(),
		member.AccessToken,
		http.StatusOK,
		&fetched,
	)

	assert.Equal(t, projects_enums.ProjectPermissionView, fetched.Permission)
}

func Test_GetProject_PrivateProject_WithoutMembershipRow_ReturnsForbidden(t *testing.T) {
	router := createProjectTestRouter()
	owner := users_testing.CreateTestUser()
	organization := organizations_testing.CreateTestOrganization(owner.ID)
	project := createProject(t, router, owner.AccessToken, organization.Slug, "Hidden", true)

	// Even an org admin is locked out of a private project without an
	// explicit membership row.
	admin := users_testing.CreateTestUser()
	organizations_testing.AddMember(admin.ID, organization.ID, organizations_enums.OrgRoleAdmin)

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/organizations/"+organization.Slug+"/projects/"+project.ID.String(),
		admin.AccessToken,
		http.StatusForbidden,
	)
}

func Test_GetProject_AsNonOrgMember_ReturnsNotFound(t *testing.T) {
	router := createProjectTestRouter()
	owner := users_testing.CreateTestUser()
	organization := organizations_testing.CreateTestOrganization(owner.ID)
	project := createProject(t, router, owner.AccessToken, organization.Slug, "Foreign", false)

	stranger := users_testing.CreateTestUser()

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/organizations/"+organization.Slug+"/projects/"+project.ID.String(),
		stranger.AccessToken,
		http.StatusNotFound,
	)
}

func Test_GetProject_FromAnotherOrganization_ReturnsNotFound(t *testing.T) {
	router := createProjectTestRouter()
	owner := users_testing.CreateTestUser()
	firstOrg := organizations_testing.CreateTestOrganization(owner.ID)
	secondOrg := organizations_testing.CreateTestOrganization(owner.ID)
	project := createProject(t, router, owner.AccessToken, firstOrg.Slug, "Misplaced", false)

	// The project exists, but not under this organization's slug.
	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/organizations/"+secondOrg.Slug+"/projects/"+project.ID.String(),
		owner.AccessToken,
		http.StatusNotFound,
	)
}

func Test_ListProjects_PrivateProjectsHiddenWithoutMembership(t *testing.T) {
	router := createProjectTestRouter()
	owner := users_testing.CreateTestUser()
	organization := organizations_testing.CreateTestOrganization(owner.ID)
	createProject(t, router, owner.AccessToken, organization.Slug, "Visible", false)
	hidden := createProject(t, router, owner.AccessToken, organization.Slug, "Hidden", true)

	member := users_testing.CreateTestUser()
	organizations_testing.AddMember(member.ID, organization.ID, organizations_enums.OrgRoleMember)

	var projects []projects_dto.ProjectResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/organizations/"+organization.Slug+"/projects",
		member.AccessToken,
		http.StatusOK,
		&projects,
	)

	// Default project plus the public one; the private one stays invisible.
	require.Len(t, projects, 2)
	for _, project := range projects {
		assert.NotEqual(t, hidden.ID, project.ID)
	}
}

func Test_AddProjectMember_GrantsAccessToPrivateProject(t *testing.T) {
	router := createProjectTestRouter()
	owner := users_testing.CreateTestUser()
	organization := organizations_testing.CreateTestOrganization(owner.ID)
	project := createProject(t, router, owner.AccessToken, organization.Slug, "Shared Secret", true)

	member := users_testing.CreateTestUser()
	organizations_testing.AddMember(member.ID, organization.ID, organizations_enums.OrgRoleMember)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/organizations/"+organization.Slug+"/projects/"+project.ID.String()+"/members",
		owner.AccessToken,
		projects_dto.AddProjectMemberRequestDTO{
			UserID:     member.ID,
			Permission: projects_enums.ProjectPermissionEdit,
		},
		http.StatusCreated,
	)

	var fetched projects_dto.ProjectResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/organizations/"+organization.Slug+"/projects/"+project.ID.String(),
		member.AccessToken,
		http.StatusOK,
		&fetched,
	)

	assert.Equal(t, projects_enums.ProjectPermissionEdit, fetched.Permission)
}

func Test_AddProjectMember_TargetNotInOrganization_ReturnsBadRequest(t *testing.T) {
	router := createProjectTestRouter()
	owner := users_testing.CreateTestUser()
	organization := organizations_testing.CreateTestOrganization(owner.ID)
	project := createProject(t, router, owner.AccessToken, organization.Slug, "Members Only", true)

	outsider := users_testing.CreateTestUser()

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/organizations/"+organization.Slug+"/projects/"+project.ID.String()+"/members",
		owner.AccessToken,
		projects_dto.AddProjectMemberRequestDTO{
			UserID:     outsider.ID,
			Permission: projects_enums.ProjectPermissionView,
		},
		http.StatusBadRequest,
	)

	assert.Contains(t, string(resp.Body), "not a member of this organization")
}

func Test_AddProjectMember_Twice_ReturnsConflict(t *testing.T) {
	router := createProjectTestRouter()
	owner := users_testing.CreateTestUser()
	organization := organizations_testing.CreateTestOrganization(owner.ID)
	project := createProject(t, router, owner.AccessToken, organization.Slug, "Once Only", true)

	member := users_testing.CreateTestUser()
	organizations_testing.AddMember(member.ID, organization.ID, organizations_enums.OrgRoleMember)

	request := projects_dto.AddProjectMemberRequestDTO{
		UserID:     member.ID,
		Permission: projects_enums.ProjectPermissionView,
	}
	url := "/api/v1/organizations/" + organization.Slug + "/projects/" + project.ID.String() + "/members"

	test_utils.MakePostRequest(t, router, url, owner.AccessToken, request, http.StatusCreated)
	test_utils.MakePostRequest(t, router, url, owner.AccessToken, request, http.StatusConflict)
}

func Test_AddProjectMember_WithInvalidPermission_ReturnsBadRequest(t *testing.T) {
	router := createProjectTestRouter()
	owner := users_testing.CreateTestUser()
	organization := organizations_testing.CreateTestOrganization(owner.ID)
	project := createProject(t, router, owner.AccessToken, organization.Slug, "Strict", true)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/organizations/"+organization.Slug+"/projects/"+project.ID.String()+"/members",
		owner.AccessToken,
		map[string]any{"user_id": uuid.New().String(), "permission": "owner"},
		http.StatusBadRequest,
	)
}
