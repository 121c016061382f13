package users_services

import (
	"fmt"
	"time"

	"teamhub/internal/apperrors"
	"teamhub/internal/features/emails"
	users_dto "teamhub/internal/features/users/dto"
	users_models "teamhub/internal/features/users/models"
	users_repositories "teamhub/internal/features/users/repositories"

	"github.com/google/uuid"
)

type UserService struct {
	userRepository *users_repositories.UserRepository
	tokenService   *TokenService
	emailService   *emails.EmailService
}

func (s *UserService) Register(request *users_dto.RegisterRequestDTO) (*users_dto.AuthResponseDTO, error) {
	existingUser, err := s.userRepository.GetUserByEmail(request.Email)
	if err != nil {
		return nil, apperrors.Internal("failed to check existing user", err)
	}

	if existingUser != nil {
		return nil, apperrors.Conflict("user with this email already exists")
	}

	hashedPassword, err := HashPassword(request.Password)
	if err != nil {
		return nil, apperrors.Internal("failed to hash password", err)
	}

	user := &users_models.User{
		ID:             uuid.New(),
		Email:          request.Email,
		HashedPassword: hashedPassword,
		DisplayName:    request.DisplayName,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}

	if err := s.userRepository.CreateUser(user); err != nil {
		return nil, apperrors.Internal("failed to create user", err)
	}

	// Notification only; registration does not depend on it.
	s.emailService.EnqueueWelcomeEmail(user.Email, user.DisplayName)

	return s.buildAuthResponse(user)
}

func (s *UserService) Login(request *users_dto.LoginRequestDTO) (*users_dto.AuthResponseDTO, error) {
	user, err := s.userRepository.GetUserByEmail(request.Email)
	if err != nil {
		return nil, apperrors.Internal("failed to find user", err)
	}

	// Same message for unknown email and wrong password, so the
	// endpoint is not an account oracle.
	if user == nil {
		return nil, apperrors.Unauthorized("invalid email or password")
	}

	if !CheckPassword(request.Password, user.HashedPassword) {
		return nil, apperrors.Unauthorized("invalid email or password")
	}

	return s.buildAuthResponse(user)
}

func (s *UserService) Refresh(request *users_dto.RefreshRequestDTO) (*users_dto.AuthResponseDTO, error) {
	userID, err := s.tokenService.ValidateRefreshToken(request.RefreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return nil, apperrors.Internal("failed to find user", err)
	}

	if user == nil {
		return nil, apperrors.Unauthorized("user not found")
	}

	return s.buildAuthResponse(user)
}

func (s *UserService) GetMe(userID uuid.UUID) (*users_dto.UserResponseDTO, error) {
	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return nil, apperrors.Internal("failed to find user", err)
	}

	if user == nil {
		return nil, apperrors.NotFound("user not found")
	}

	response := buildUserResponse(user)
	return &response, nil
}

func (s *UserService) UpdateMe(
	userID uuid.UUID,
	request *users_dto.UpdateMeRequestDTO,
) (*users_dto.UserResponseDTO, error) {
	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return nil, apperrors.Internal("failed to find user", err)
	}

	if user == nil {
		return nil, apperrors.NotFound("user not found")
	}

	if request.DisplayName != nil {
		if err := s.userRepository.UpdateDisplayName(userID, *request.DisplayName); err != nil {
			return nil, apperrors.Internal("failed to update user", err)
		}

		user.DisplayName = *request.DisplayName
	}

	response := buildUserResponse(user)
	return &response, nil
}

func (s *UserService) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	return s.userRepository.GetUserByID(userID)
}

func (s *UserService) buildAuthResponse(user *users_models.User) (*users_dto.AuthResponseDTO, error) {
	tokens, err := s.tokenService.GenerateTokenPair(user.ID, user.Email, user.DisplayName)
	if err != nil {
		return nil, apperrors.Internal(fmt.Sprintf("failed to generate tokens for %s", user.ID), err)
	}

	return &users_dto.AuthResponseDTO{
		User:         buildUserResponse(user),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}

func buildUserResponse(user *users_models.User) users_dto.UserResponseDTO {
	return users_dto.UserResponseDTO{
		ID:            user.ID,
		Email:         user.Email,
		DisplayName:   user.DisplayName,
		LastOrgID:     user.LastOrgID,
		LastProjectID: user.LastProjectID,
		CreatedAt:     user.CreatedAt,
	}
}
