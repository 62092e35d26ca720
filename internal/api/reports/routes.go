package reports

import (
	"github.com/JorgeSaicoski/microservice-commons/middleware"
	"github.com/JorgeSaicoski/site-reporter/internal/api"
	"github.com/JorgeSaicoski/site-reporter/internal/services/reports"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all hourly report related routes
func RegisterRoutes(router *gin.RouterGroup, reportService *reports.ReportService) {
	handler := NewReportHandler(reportService)

	// Hourly reports endpoints
	reportsGroup := router.Group("/reports")
	reportsGroup.Use(
		middleware.DefaultLoggingMiddleware(),
		api.AuthMiddleware(),
	)
	{
		// Submission and correction
		reportsGroup.POST("/daily", handler.SubmitDailyReports) // Batch-submit a day's entries
		reportsGroup.PUT("/:id", handler.UpdateHourlyReport)    // Correct a report inside the edit window

		// Status and history
		reportsGroup.GET("/status", handler.GetDailyStatus)           // Per-period session status
		reportsGroup.GET("", handler.GetUserReports)                  // Report history with date filters
		reportsGroup.GET("/achievement", handler.GetDailyAchievement) // Daily achievement roll-up

		// Manager dashboards
		reportsGroup.GET("/attendance", handler.GetAttendanceSummary)  // Per-day attendance across employees
		reportsGroup.GET("/performance", handler.GetPerformanceReport) // Per-user reporting discipline
	}
}
