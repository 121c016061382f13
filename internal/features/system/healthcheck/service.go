package system_healthcheck

import (
	"context"
	"time"

	"teamhub/internal/cache"
	"teamhub/internal/config"
	"teamhub/internal/storage"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

const checkTimeout = 3 * time.Second

type HealthcheckService struct{}

func (s *HealthcheckService) GetHealthStatus() *HealthResponseDTO {
	response := &HealthResponseDTO{
		Status:   "ok",
		Database: s.checkDatabase(),
		Cache:    s.checkCache(),
	}

	if memory, err := mem.VirtualMemory(); err == nil {
		response.MemoryUsedPercent = memory.UsedPercent
	}

	if usage, err := disk.Usage("/"); err == nil {
		response.DiskUsedPercent = usage.UsedPercent
	}

	if response.Database != "ok" {
		response.Status = "degraded"
	}

	return response
}

func (s *HealthcheckService) checkDatabase() string {
	sqlDb, err := storage.GetDb().DB()
	if err != nil {
		return "unavailable"
	}

	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	if err := sqlDb.PingContext(ctx); err != nil {
		return "unavailable"
	}

	return "ok"
}

func (s *HealthcheckService) checkCache() string {
	if !config.IsCacheConfigured() {
		return "disabled"
	}

	client := cache.GetCache()

	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		return "unavailable"
	}

	return "ok"
}
