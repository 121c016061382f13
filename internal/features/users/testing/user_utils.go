package users_testing

import (
	"fmt"
	"time"

	users_models "teamhub/internal/features/users/models"
	users_repositories "teamhub/internal/features/users/repositories"
	users_services "teamhub/internal/features/users/services"

	"github.com/google/uuid"
)

type TestUser struct {
	ID          uuid.UUID
	Email       string
	DisplayName string
	AccessToken string
}

// CreateTestUser inserts a user directly through the repository and returns a
// ready-to-use access token. The stored password hash is a placeholder, so the
// user cannot log in with a password.
func CreateTestUser() *TestUser {
	userID := uuid.New()
	email := fmt.Sprintf("user-%s@test.com", userID.String()[:8])
	displayName := "Test User " + userID.String()[:8]

	user := &users_models.User{
		ID:             userID,
		Email:          email,
		HashedPassword: "$2a$12$test",
		DisplayName:    displayName,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}

	userRepository := &users_repositories.UserRepository{}
	if err := userRepository.CreateUser(user); err != nil {
		panic(err)
	}

	token, err := users_services.GetTokenService().GenerateAccessToken(user.ID, user.Email, user.DisplayName)
	if err != nil {
		panic(err)
	}

	return &TestUser{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		AccessToken: token,
	}
}
