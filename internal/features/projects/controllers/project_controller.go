package projects_controllers

import (
	"net/http"

	"teamhub/internal/apperrors"
	projects_dto "teamhub/internal/features/projects/dto"
	projects_services "teamhub/internal/features/projects/services"
	users_middleware "teamhub/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProjectController struct {
	projectService *projects_services.ProjectService
}

func (c *ProjectController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.POST("/organizations/:slug/projects", c.CreateProject)
	router.GET("/organizations/:slug/projects", c.ListProjects)
	router.GET("/organizations/:slug/projects/:project_id", c.GetProject)
	router.POST("/organizations/:slug/projects/:project_id/members", c.AddProjectMember)
}

// CreateProject
// @Summary Create a project
// @Description Create a project in the organization, owners and admins only
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Organization slug"
// @Param request body projects_dto.CreateProjectRequestDTO true "Project data"
// @Success 201 {object} projects_dto.ProjectResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /organizations/{slug}/projects [post]
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	userID, ok := users_middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request projects_dto.CreateProjectRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
		return
	}

	response, err := c.projectService.CreateProject(userID, ctx.Param("slug"), &request)
	if err != nil {
		ctx.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

// ListProjects
// @Summary List projects visible to the current user
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Organization slug"
// @Success 200 {array} projects_dto.ProjectResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /organizations/{slug}/projects [get]
func (c *ProjectController) ListProjects(ctx *gin.Context) {
	userID, ok := users_middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.projectService.ListProjects(userID, ctx.Param("slug"))
	if err != nil {
		ctx.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetProject
// @Summary Get a project
// @Description Resolve a project and record it as the user's last visited context
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Organization slug"
// @Param project_id path string true "Project ID"
// @Success 200 {object} projects_dto.ProjectResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /organizations/{slug}/projects/{project_id} [get]
func (c *ProjectController) GetProject(ctx *gin.Context) {
	userID, ok := users_middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("project_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	response, err := c.projectService.GetProject(userID, ctx.Param("slug"), projectID)
	if err != nil {
		ctx.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// AddProjectMember
// @Summary Grant a user access to a project
// @Description Add an explicit permission row, owners and admins only
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Organization slug"
// @Param project_id path string true "Project ID"
// @Param request body projects_dto.AddProjectMemberRequestDTO true "Member data"
// @Success 201 {object} projects_dto.ProjectMemberResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /organizations/{slug}/projects/{project_id}/members [post]
func (c *ProjectController) AddProjectMember(ctx *gin.Context) {
	userID, ok := users_middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("project_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	var request projects_dto.AddProjectMemberRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
		return
	}

	response, err := c.projectService.AddProjectMember(userID, ctx.Param("slug"), projectID, &request)
	if err != nil {
		ctx.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, response)
}
