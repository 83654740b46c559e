package handlers

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts the health check and the versioned API on e
func RegisterRoutes(e *echo.Echo, health *HealthCheckHandler, datasets *DatasetHandler, reports *ReportHandler) {
	e.GET("/health", health.HealthCheck)

	api := e.Group("/api/v1")

	api.POST("/datasets", datasets.UploadDataset)
	api.GET("/datasets/current", datasets.GetCurrentDataset)
	api.GET("/datasets/current/merchants", datasets.ListMerchants)
	api.GET("/datasets/runs", datasets.ListIngestionRuns)

	api.POST("/reports", reports.GenerateReport)
	api.GET("/reports", reports.ListReports)
	api.GET("/reports/:id", reports.GetReport)
	api.GET("/reports/:id/download", reports.DownloadReport)
}
