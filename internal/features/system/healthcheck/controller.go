package system_healthcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthcheckController struct {
	healthcheckService *HealthcheckService
}

func (c *HealthcheckController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/system/health", c.GetHealth)
}

// GetHealth
// @Summary Service health status
// @Description Database, cache and host resource checks
// @Tags system
// @Produce json
// @Success 200 {object} system_healthcheck.HealthResponseDTO
// @Router /system/health [get]
func (c *HealthcheckController) GetHealth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.healthcheckService.GetHealthStatus())
}
