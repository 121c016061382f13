package users_controllers

import (
	"net/http"

	"teamhub/internal/apperrors"
	users_dto "teamhub/internal/features/users/dto"
	users_middleware "teamhub/internal/features/users/middleware"
	users_services "teamhub/internal/features/users/services"
	rate_limit "teamhub/internal/util/rate_limit"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type UserController struct {
	userService  *users_services.UserService
	loginLimiter *rate.Limiter
	// per-email throttle, nil when no cache is configured
	attemptLimiter *rate_limit.LoginLimiter
}

// SetLoginLimiter replaces the global login throttle, used by tests.
func (c *UserController) SetLoginLimiter(limiter *rate.Limiter) {
	c.loginLimiter = limiter
}

func (c *UserController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/auth/register", c.Register)
	router.POST("/auth/login", c.Login)
	router.POST("/auth/refresh", c.Refresh)
}

func (c *UserController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/me", c.GetMe)
	router.PATCH("/me", c.UpdateMe)
}

// Register
// @Summary Register a new user
// @Description Create an account with email, password and display name
// @Tags auth
// @Accept json
// @Produce json
// @Param request body users_dto.RegisterRequestDTO true "Registration data"
// @Success 201 {object} users_dto.AuthResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func (c *UserController) Register(ctx *gin.Context) {
	var request users_dto.RegisterRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
		return
	}

	response, err := c.userService.Register(&request)
	if err != nil {
		ctx.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

// Login
// @Summary Authenticate a user
// @Description Exchange email and password for an access/refresh token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body users_dto.LoginRequestDTO true "Login data"
// @Success 200 {object} users_dto.AuthResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Router /auth/login [post]
func (c *UserController) Login(ctx *gin.Context) {
	// Global brake against brute force attacks
	if !c.loginLimiter.Allow() {
		ctx.JSON(
			http.StatusTooManyRequests,
			gin.H{"error": "Rate limit exceeded. Please try again later."},
		)
		return
	}

	var request users_dto.LoginRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
		return
	}

	if c.attemptLimiter != nil {
		result, err := c.attemptLimiter.CheckAttempt(request.Email, 1, 5)
		if err == nil && !result.Allowed {
			ctx.JSON(
				http.StatusTooManyRequests,
				gin.H{"error": "Too many login attempts for this account. Please try again later."},
			)
			return
		}
	}

	response, err := c.userService.Login(&request)
	if err != nil {
		ctx.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// Refresh
// @Summary Refresh an access token
// @Description Exchange a valid refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body users_dto.RefreshRequestDTO true "Refresh data"
// @Success 200 {object} users_dto.AuthResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/refresh [post]
func (c *UserController) Refresh(ctx *gin.Context) {
	var request users_dto.RefreshRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
		return
	}

	response, err := c.userService.Refresh(&request)
	if err != nil {
		ctx.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetMe
// @Summary Get current user profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} users_dto.UserResponseDTO
// @Failure 401 {object} map[string]string
// @Router /me [get]
func (c *UserController) GetMe(ctx *gin.Context) {
	userID, ok := users_middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.userService.GetMe(userID)
	if err != nil {
		ctx.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// UpdateMe
// @Summary Update current user profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body users_dto.UpdateMeRequestDTO true "Profile changes"
// @Success 200 {object} users_dto.UserResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /me [patch]
func (c *UserController) UpdateMe(ctx *gin.Context) {
	userID, ok := users_middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request users_dto.UpdateMeRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
		return
	}

	response, err := c.userService.UpdateMe(userID, &request)
	if err != nil {
		ctx.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
