package organizations_controllers

import (
	"net/http"

	"teamhub/internal/apperrors"
	organizations_dto "teamhub/internal/features/organizations/dto"
	organizations_services "teamhub/internal/features/organizations/services"
	users_middleware "teamhub/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
)

type InviteController struct {
	inviteService *organizations_services.InviteService
}

func (c *InviteController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/invites/:token", c.GetInviteInfo)
}

func (c *InviteController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.POST("/organizations/:slug/invites", c.CreateInvite)
	router.POST("/invites/:token/accept", c.AcceptInvite)
}

// CreateInvite
// @Summary Invite a user to an organization
// @Description Issue a single-use invite token, owners and admins only
// @Tags invites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Organization slug"
// @Param request body organizations_dto.CreateInviteRequestDTO true "Invite data"
// @Success 201 {object} organizations_dto.InviteResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /organizations/{slug}/invites [post]
func (c *InviteController) CreateInvite(ctx *gin.Context) {
	userID, ok := users_middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request organizations_dto.CreateInviteRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
		return
	}

	response, err := c.inviteService.CreateInvite(userID, ctx.Param("slug"), &request)
	if err != nil {
		ctx.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

// GetInviteInfo
// @Summary Preview an invite
// @Description Public preview of a redeemable invite token
// @Tags invites
// @Produce json
// @Param token path string true "Invite token"
// @Success 200 {object} organizations_dto.InviteInfoResponseDTO
// @Failure 404 {object} map[string]string
// @Router /invites/{token} [get]
func (c *InviteController) GetInviteInfo(ctx *gin.Context) {
	response, err := c.inviteService.GetInviteInfo(ctx.Param("token"))
	if err != nil {
		ctx.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// AcceptInvite
// @Summary Accept an invite
// @Description Redeem an invite token for the authenticated user
// @Tags invites
// @Produce json
// @Security BearerAuth
// @Param token path string true "Invite token"
// @Success 200 {object} organizations_dto.AcceptInviteResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /invites/{token}/accept [post]
func (c *InviteController) AcceptInvite(ctx *gin.Context) {
	userID, ok := users_middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.inviteService.AcceptInvite(userID, ctx.Param("token"))
	if err != nil {
		ctx.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
