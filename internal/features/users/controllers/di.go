package users_controllers

import (
	"teamhub/internal/config"
	users_services "teamhub/internal/features/users/services"
	rate_limit "teamhub/internal/util/rate_limit"

	"golang.org/x/time/rate"
)

var userController = &UserController{
	userService:    users_services.GetUserService(),
	loginLimiter:   rate.NewLimiter(rate.Limit(3), 3), // 3 RPS with burst of 3
	attemptLimiter: buildAttemptLimiter(),
}

func buildAttemptLimiter() *rate_limit.LoginLimiter {
	if !config.IsCacheConfigured() {
		return nil
	}

	return rate_limit.NewLoginLimiter()
}

func GetUserController() *UserController {
	return userController
}
