package users_controllers

import (
	"net/http"
	"testing"

	users_dto "teamhub/internal/features/users/dto"
	users_middleware "teamhub/internal/features/users/middleware"
	users_services "teamhub/internal/features/users/services"
	users_testing "teamhub/internal/features/users/testing"
	test_utils "teamhub/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func createUserTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")

	userController := GetUserController()
	userController.SetLoginLimiter(rate.NewLimiter(rate.Limit(100), 100))
	userController.RegisterRoutes(v1)

	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetTokenService()))
	userController.RegisterProtectedRoutes(protected.(*gin.RouterGroup))

	return router
}

func Test_Register_WithValidData_ReturnsTokenPair(t *testing.T) {
	router := createUserTestRouter()

	request := users_dto.RegisterRequestDTO{
		Email:       "register-" + uuid.New().String() + "@example.com",
		Password:    "testpassword123",
		DisplayName: "Test User",
	}

	var response users_dto.AuthResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/auth/register",
		"",
		request,
		http.StatusCreated,
		&response,
	)

	assert.NotEmpty(t, response.AccessToken)
	assert.NotEmpty(t, response.RefreshToken)
	assert.Equal(t, request.Email, response.User.Email)
	assert.Equal(t, "Test User", response.User.DisplayName)
}

func Test_Register_WithDuplicateEmail_ReturnsConflict(t *testing.T) {
	router := createUserTestRouter()

	request := users_dto.RegisterRequestDTO{
		Email:       "duplicate-" + uuid.New().String() + "@example.com",
		Password:    "testpassword123",
		DisplayName: "Test User",
	}

	test_utils.MakePostRequest(t, router, "/api/v1/auth/register", "", request, http.StatusCreated)

	resp := test_utils.MakePostRequest(t, router, "/api/v1/auth/register", "", request, http.StatusConflict)
	assert.Contains(t, string(resp.Body), "already exists")
}

func Test_Register_WithInvalidJSON_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()

	resp := test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         "POST",
		URL:            "/api/v1/auth/register",
		Body:           "invalid json",
		ExpectedStatus: http.StatusBadRequest,
	})

	assert.Contains(t, string(resp.Body), "Invalid request format")
}

func Test_Register_WithValidationErrors_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()

	testCases := []struct {
		name    string
		request users_dto.RegisterRequestDTO
	}{
		{
			name: "missing email",
			request: users_dto.RegisterRequestDTO{
				Password:    "testpassword123",
				DisplayName: "Test User",
			},
		},
		{
			name: "malformed email",
			request: users_dto.RegisterRequestDTO{
				Email:       "not-an-email",
				Password:    "testpassword123",
				DisplayName: "Test User",
			},
		},
		{
			name: "short password",
			request: users_dto.RegisterRequestDTO{
				Email:       "short@example.com",
				Password:    "short",
				DisplayName: "Test User",
			},
		},
		{
			name: "missing display name",
			request: users_dto.RegisterRequestDTO{
				Email:    "noname@example.com",
				Password: "testpassword123",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			test_utils.MakePostRequest(t, router, "/api/v1/auth/register", "", tc.request, http.StatusBadRequest)
		})
	}
}

func Test_Login_WithValidCredentials_ReturnsTokenPair(t *testing.T) {
	router := createUserTestRouter()
	email := "login-" + uuid.New().String() + "@example.com"
	password := "testpassword123"

	registerRequest := users_dto.RegisterRequestDTO{
		Email:       email,
		Password:    password,
		DisplayName: "Login User",
	}
	test_utils.MakePostRequest(t, router, "/api/v1/auth/register", "", registerRequest, http.StatusCreated)

	var response users_dto.AuthResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/auth/login",
		"",
		users_dto.LoginRequestDTO{Email: email, Password: password},
		http.StatusOK,
		&response,
	)

	assert.NotEmpty(t, response.AccessToken)
	assert.Equal(t, email, response.User.Email)
}

func Test_Login_WithWrongPassword_ReturnsUnauthorized(t *testing.T) {
	router := createUserTestRouter()
	email := "wrongpass-" + uuid.New().String() + "@example.com"

	registerRequest := users_dto.RegisterRequestDTO{
		Email:       email,
		Password:    "testpassword123",
		DisplayName: "Login User",
	}
	test_utils.MakePostRequest(t, router, "/api/v1/auth/register", "", registerRequest, http.StatusCreated)

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/auth/login",
		"",
		users_dto.LoginRequestDTO{Email: email, Password: "wrongpassword"},
		http.StatusUnauthorized,
	)

	// Same message as for an unknown email, so accounts cannot be enumerated.
	assert.Contains(t, string(resp.Body), "invalid email or password")
}

func Test_Login_WithUnknownEmail_ReturnsUnauthorized(t *testing.T) {
	router := createUserTestRouter()

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/auth/login",
		"",
		users_dto.LoginRequestDTO{
			Email:    "unknown-" + uuid.New().String() + "@example.com",
			Password: "testpassword123",
		},
		http.StatusUnauthorized,
	)

	assert.Contains(t, string(resp.Body), "invalid email or password")
}

func Test_Refresh_WithValidToken_ReturnsNewPair(t *testing.T) {
	router := createUserTestRouter()

	registerRequest := users_dto.RegisterRequestDTO{
		Email:       "refresh-" + uuid.New().String() + "@example.com",
		Password:    "testpassword123",
		DisplayName: "Refresh User",
	}

	var registered users_dto.AuthResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/auth/register",
		"",
		registerRequest,
		http.StatusCreated,
		&registered,
	)

	var refreshed users_dto.AuthResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/auth/refresh",
		"",
		users_dto.RefreshRequestDTO{RefreshToken: registered.RefreshToken},
		http.StatusOK,
		&refreshed,
	)

	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, registered.User.ID, refreshed.User.ID)
}

func Test_Refresh_WithGarbageToken_ReturnsUnauthorized(t *testing.T) {
	router := createUserTestRouter()

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/auth/refresh",
		"",
		users_dto.RefreshRequestDTO{RefreshToken: "garbage"},
		http.StatusUnauthorized,
	)
}

func Test_GetMe_WithValidToken_ReturnsProfile(t *testing.T) {
	router := createUserTestRouter()
	user := users_testing.CreateTestUser()

	var response users_dto.UserResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(t, router, "/api/v1/me", user.AccessToken, http.StatusOK, &response)

	assert.Equal(t, user.ID, response.ID)
	assert.Equal(t, user.Email, response.Email)
}

func Test_GetMe_WithoutToken_ReturnsUnauthorized(t *testing.T) {
	router := createUserTestRouter()

	test_utils.MakeGetRequest(t, router, "/api/v1/me", "", http.StatusUnauthorized)
}

func Test_UpdateMe_WithValidDisplayName_ProfileUpdated(t *testing.T) {
	router := createUserTestRouter()
	user := users_testing.CreateTestUser()

	newName := "Renamed User"
	test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         "PATCH",
		URL:            "/api/v1/me",
		Token:          user.AccessToken,
		Body:           users_dto.UpdateMeRequestDTO{DisplayName: &newName},
		ExpectedStatus: http.StatusOK,
	})

	var response users_dto.UserResponseDTO

	test_utils.MakeGetRequestAndUnmarshal(t, router, "/api/v1/me", user.AccessToken, http.StatusOK, &response)
	assert.Equal(t, "Renamed User", response.DisplayName)
}
