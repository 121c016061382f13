package organizations_controllers

import (
	"net/http"

	"teamhub/internal/apperrors"
	organizations_dto "teamhub/internal/features/organizations/dto"
	organizations_services "teamhub/internal/features/organizations/services"
	users_middleware "teamhub/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
)

type OrganizationController struct {
	organizationService *organizations_services.OrganizationService
}

func (c *OrganizationController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.POST("/organizations", c.CreateOrganization)
	router.GET("/organizations", c.ListOrganizations)
	router.GET("/organizations/:slug", c.GetOrganization)
}

// CreateOrganization
// @Summary Create an organization
// @Description Create an organization with its default project, making the caller owner
// @Tags organizations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body organizations_dto.CreateOrganizationRequestDTO true "Organization data"
// @Success 201 {object} organizations_dto.OrganizationResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /organizations [post]
func (c *OrganizationController) CreateOrganization(ctx *gin.Context) {
	userID, ok := users_middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request organizations_dto.CreateOrganizationRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
		return
	}

	response, err := c.organizationService.CreateOrganization(userID, &request)
	if err != nil {
		ctx.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

// ListOrganizations
// @Summary List organizations the current user belongs to
// @Tags organizations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} organizations_dto.OrganizationResponseDTO
// @Failure 401 {object} map[string]string
// @Router /organizations [get]
func (c *OrganizationController) ListOrganizations(ctx *gin.Context) {
	userID, ok := users_middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.organizationService.ListOrganizations(userID)
	if err != nil {
		ctx.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetOrganization
// @Summary Get an organization by slug
// @Description Resolve an organization the user is a member of and record it as last visited
// @Tags organizations
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Organization slug"
// @Success 200 {object} organizations_dto.OrganizationResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /organizations/{slug} [get]
func (c *OrganizationController) GetOrganization(ctx *gin.Context) {
	userID, ok := users_middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.organizationService.GetOrganizationBySlug(userID, ctx.Param("slug"))
	if err != nil {
		ctx.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
