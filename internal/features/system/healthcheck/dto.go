package system_healthcheck

type HealthResponseDTO struct {
	Status            string  `json:"status"`
	Database          string  `json:"database"`
	Cache             string  `json:"cache"`
	MemoryUsedPercent float64 `json:"memory_used_percent"`
	DiskUsedPercent   float64 `json:"disk_used_percent"`
}
