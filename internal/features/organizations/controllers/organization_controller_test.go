package organizations_controllers

import (
	"net/http"
	"testing"

	organizations_dto "teamhub/internal/features/organizations/dto"
	organizations_enums "teamhub/internal/features/organizations/enums"
	organizations_testing "teamhub/internal/features/organizations/testing"
	projects_controllers "teamhub/internal/features/projects/controllers"
	projects_dto "teamhub/internal/features/projects/dto"
	users_middleware "teamhub/internal/features/users/middleware"
	users_services "teamhub/internal/features/users/services"
	users_testing "teamhub/internal/features/users/testing"
	test_utils "teamhub/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createOrganizationTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")

	GetInviteController().RegisterRoutes(v1)

	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetTokenService()))
	protectedGroup := protected.(*gin.RouterGroup)

	GetOrganizationController().RegisterProtectedRoutes(protectedGroup)
	GetInviteController().RegisterProtectedRoutes(protectedGroup)
	projects_controllers.GetProjectController().RegisterProtectedRoutes(protectedGroup)

	return router
}

func Test_CreateOrganization_WithValidData_CreatorBecomesOwner(t *testing.T) {
	router := createOrganizationTestRouter()
	user := users_testing.CreateTestUser()
	slug := "acme-" + uuid.New().String()[:8]

	request := organizations_dto.CreateOrganizationRequestDTO{
		Name: "Acme Inc",
		Slug: slug,
	}

	var response organizations_dto.OrganizationResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/organizations",
		user.AccessToken,
		request,
		http.StatusCreated,
		&response,
	)

	assert.Equal(t, "Acme Inc", response.Name)
	assert.Equal(t, slug, response.Slug)
	assert.Equal(t, organizations_enums.OrgRoleOwner, response.Role)
}

func Test_CreateOrganization_CreatesDefaultPublicProject(t *testing.T) {
	router := createOrganizationTestRouter()
	user := users_testing.CreateTestUser()
	slug := "withproj-" + uuid.New().String()[:8]

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/organizations",
		user.AccessToken,
		organizations_dto.CreateOrganizationRequestDTO{Name: "With Project", Slug: slug},
		http.StatusCreated,
	)

	var projects []projects_dto.ProjectResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/organizations/"+slug+"/projects",
		user.AccessToken,
		http.StatusOK,
		&projects,
	)

	require.Len(t, projects, 1)
	assert.Equal(t, "General", projects[0].Name)
	assert.False(t, projects[0].IsPrivate)
}

func Test_CreateOrganization_WithTakenSlug_ReturnsConflict(t *testing.T) {
	router := createOrganizationTestRouter()
	user := users_testing.CreateTestUser()
	slug := "taken-" + uuid.New().String()[:8]

	request := organizations_dto.CreateOrganizationRequestDTO{Name: "First", Slug: slug}
	test_utils.MakePostRequest(t, router, "/api/v1/organizations", user.AccessToken, request, http.StatusCreated)

	otherUser := users_testing.CreateTestUser()
	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/organizations",
		otherUser.AccessToken,
		organizations_dto.CreateOrganizationRequestDTO{Name: "Second", Slug: slug},
		http.StatusConflict,
	)

	assert.Contains(t, string(resp.Body), "already taken")
}

func Test_CreateOrganization_WithInvalidSlug_ReturnsBadRequest(t *testing.T) {
	router := createOrganizationTestRouter()
	user := users_testing.CreateTestUser()

	testCases := []string{"Bad Slug", "UPPER", "trailing-", "-leading", "under_score", ""}

	for _, slug := range testCases {
		t.Run("slug="+slug, func(t *testing.T) {
			test_utils.MakePostRequest(
				t,
				router,
				"/api/v1/organizations",
				user.AccessToken,
				organizations_dto.CreateOrganizationRequestDTO{Name: "Bad", Slug: slug},
				http.StatusBadRequest,
			)
		})
	}
}

func Test_ListOrganizations_ReturnsOnlyMemberships(t *testing.T) {
	router := createOrganizationTestRouter()
	user := users_testing.CreateTestUser()
	stranger := users_testing.CreateTestUser()

	created := organizations_testing.CreateTestOrganization(user.ID)
	organizations_testing.CreateTestOrganization(stranger.ID)

	var response []organizations_dto.OrganizationResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/organizations",
		user.AccessToken,
		http.StatusOK,
		&response,
	)

	require.Len(t, response, 1)
	assert.Equal(t, created.ID, response[0].ID)
	assert.Equal(t, organizations_enums.OrgRoleOwner, response[0].Role)
}

func Test_GetOrganization_AsMember_ReturnsOrganization(t *testing.T) {
	router := createOrganizationTestRouter()
	user := users_testing.CreateTestUser()
	created := organizations_testing.CreateTestOrganization(user.ID)

	var response organizations_dto.OrganizationResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/organizations/"+created.Slug,
		user.AccessToken,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, created.ID, response.ID)
}

func Test_GetOrganization_AsNonMember_ReturnsNotFound(t *testing.T) {
	router := createOrganizationTestRouter()
	owner := users_testing.CreateTestUser()
	stranger := users_testing.CreateTestUser()
	created := organizations_testing.CreateTestOrganization(owner.ID)

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/organizations/"+created.Slug,
		stranger.AccessToken,
		http.StatusNotFound,
	)
}
