package moms

import (
	"github.com/JorgeSaicoski/microservice-commons/middleware"
	"github.com/JorgeSaicoski/site-reporter/internal/api"
	"github.com/JorgeSaicoski/site-reporter/internal/services/moms"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all Minutes-of-Meeting related routes
func RegisterRoutes(router *gin.RouterGroup, momService *moms.MomService) {
	handler := NewMomHandler(momService)

	// MoM endpoints
	momsGroup := router.Group("/moms")
	momsGroup.Use(
		middleware.DefaultLoggingMiddleware(),
		api.AuthMiddleware(),
	)
	{
		momsGroup.POST("", handler.CreateMom)       // Create MoM record
		momsGroup.GET("", handler.GetUserMoms)      // List user's MoM records
		momsGroup.GET("/:id", handler.GetMom)       // Get MoM record by ID
		momsGroup.PUT("/:id", handler.UpdateMom)    // Update MoM record
		momsGroup.DELETE("/:id", handler.DeleteMom) // Delete MoM record
	}
}
