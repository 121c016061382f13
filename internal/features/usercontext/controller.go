package usercontext

import (
	"net/http"

	"teamhub/internal/apperrors"
	users_middleware "teamhub/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
)

type ContextController struct {
	contextService *ContextService
}

func (c *ContextController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/context", c.GetCurrentContext)
	router.PUT("/context", c.UpdateContext)
}

// GetCurrentContext
// @Summary Get the user's current working context
// @Description Restore the last visited organization and project, healing stale pointers
// @Tags context
// @Produce json
// @Security BearerAuth
// @Success 200 {object} usercontext.ContextResponse
// @Failure 401 {object} map[string]string
// @Router /context [get]
func (c *ContextController) GetCurrentContext(ctx *gin.Context) {
	userID, ok := users_middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.contextService.GetCurrentContext(userID)
	if err != nil {
		ctx.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// UpdateContext
// @Summary Switch the user's working context
// @Description Point the user at an organization or project after validating access
// @Tags context
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body usercontext.UpdateContextRequest true "Context target"
// @Success 200 {object} usercontext.ContextResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /context [put]
func (c *ContextController) UpdateContext(ctx *gin.Context) {
	userID, ok := users_middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request UpdateContextRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
		return
	}

	response, err := c.contextService.UpdateContext(userID, &request)
	if err != nil {
		ctx.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
