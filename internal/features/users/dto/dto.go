package users_dto

import (
	"regexp"
	"time"

	"teamhub/internal/apperrors"

	"github.com/google/uuid"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	minPasswordLength  = 8
	maxDisplayNameSize = 100
)

type RegisterRequestDTO struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

func (r *RegisterRequestDTO) Validate() error {
	if r.Email == "" {
		return apperrors.Validation("email is required")
	}
	if !emailRegex.MatchString(r.Email) {
		return apperrors.Validation("email must be a valid email address")
	}
	if r.Password == "" {
		return apperrors.Validation("password is required")
	}
	if len(r.Password) < minPasswordLength {
		return apperrors.Validation("password must be at least 8 characters")
	}
	if r.DisplayName == "" {
		return apperrors.Validation("display_name is required")
	}
	if len(r.DisplayName) > maxDisplayNameSize {
		return apperrors.Validation("display_name must be at most 100 characters")
	}

	return nil
}

type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequestDTO) Validate() error {
	if r.Email == "" {
		return apperrors.Validation("email is required")
	}
	if !emailRegex.MatchString(r.Email) {
		return apperrors.Validation("email must be a valid email address")
	}
	if r.Password == "" {
		return apperrors.Validation("password is required")
	}

	return nil
}

type RefreshRequestDTO struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshRequestDTO) Validate() error {
	if r.RefreshToken == "" {
		return apperrors.Validation("refresh_token is required")
	}

	return nil
}

type UpdateMeRequestDTO struct {
	DisplayName *string `json:"display_name,omitempty"`
}

func (r *UpdateMeRequestDTO) Validate() error {
	if r.DisplayName != nil {
		if *r.DisplayName == "" {
			return apperrors.Validation("display_name must not be empty")
		}
		if len(*r.DisplayName) > maxDisplayNameSize {
			return apperrors.Validation("display_name must be at most 100 characters")
		}
	}

	return nil
}

type UserResponseDTO struct {
	ID            uuid.UUID  `json:"id"`
	Email         string     `json:"email"`
	DisplayName   string     `json:"display_name"`
	LastOrgID     *uuid.UUID `json:"last_org_id,omitempty"`
	LastProjectID *uuid.UUID `json:"last_project_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type AuthResponseDTO struct {
	User         UserResponseDTO `json:"user"`
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	ExpiresIn    int64           `json:"expires_in"`
}
