package users_services

import (
	"teamhub/internal/config"
	"teamhub/internal/features/emails"
	users_repositories "teamhub/internal/features/users/repositories"
)

var userRepository = &users_repositories.UserRepository{}

var tokenService = NewTokenService(config.GetEnv().JwtSecret)

var userService = &UserService{
	userRepository: userRepository,
	tokenService:   tokenService,
	emailService:   emails.GetEmailService(),
}

func GetTokenService() *TokenService {
	return tokenService
}

func GetUserService() *UserService {
	return userService
}
