package main

import (
	"github.com/JorgeSaicoski/microservice-commons/config"
	"github.com/JorgeSaicoski/microservice-commons/database"
	"github.com/JorgeSaicoski/microservice-commons/server"
	"github.com/JorgeSaicoski/microservice-commons/utils"
	"github.com/JorgeSaicoski/site-reporter/internal/api/moms"
	"github.com/JorgeSaicoski/site-reporter/internal/api/reports"
	clients "github.com/JorgeSaicoski/site-reporter/internal/client"
	"github.com/JorgeSaicoski/site-reporter/internal/db"
	momsService "github.com/JorgeSaicoski/site-reporter/internal/services/moms"
	reportsService "github.com/JorgeSaicoski/site-reporter/internal/services/reports"
	"github.com/gin-gonic/gin"
)

func main() {
	server := server.NewServer(server.ServerOptions{
		ServiceName:    "site-reporter",
		ServiceVersion: "1.0.0",
		SetupRoutes:    setupRoutes,
	})
	server.Start()
}

func setupRoutes(router *gin.Engine, cfg *config.Config) {
	// Connect to database using microservice-commons
	dbConnection, err := database.ConnectWithConfig(cfg.DatabaseConfig)
	if err != nil {
		panic("Failed to connect to database: " + err.Error())
	}

	directoryURL := utils.GetEnv("EMPLOYEE_DIRECTORY_URL", "http://localhost:8000/api/internal")

	directoryClient := clients.NewDirectoryHTTPClient(directoryURL)

	// Auto-migrate models
	if err := database.QuickMigrate(dbConnection,
		&db.HourlyReport{},
		&db.MomRecord{},
	); err != nil {
		panic("Failed to migrate database: " + err.Error())
	}

	// Initialize services
	reportService := reportsService.NewReportService(dbConnection, directoryClient)
	momService := momsService.NewMomService(dbConnection)

	// Setup routes
	api := router.Group("/api")
	reports.RegisterRoutes(api, reportService)
	moms.RegisterRoutes(api, momService)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "site-reporter",
			"version": "1.0.0",
		})
	})
}
