package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint onto the router. Shared by the server
// binary and the serverless entry point.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Shift Planner API",
			"version": "1.0.0",
		})
	})

	r.POST("/auth/signup", h.Signup)
	r.POST("/auth/login", h.Login)

	// Manager endpoints: integration key administration
	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware(), h.ManagerOnly())
	{
		admin.POST("/keys", h.GenerateKey)
		admin.GET("/keys", h.ListKeys)
		admin.PUT("/keys/:id", h.UpdateKeyLimit)
		admin.DELETE("/keys/:id", h.RevokeKey)
		admin.GET("/usage/:id", h.GetUsage)
	}

	api := r.Group("/api")
	api.Use(h.AuthMiddleware())
	{
		api.GET("/employees", h.ListEmployees)
		api.POST("/employees", h.ManagerOnly(), h.CreateEmployee)
		api.PUT("/employees/:id", h.ManagerOnly(), h.UpdateEmployee)
		api.DELETE("/employees/:id", h.ManagerOnly(), h.DeleteEmployee)

		api.GET("/availability", h.GetMyAvailability)
		api.PUT("/availability", h.PutAvailability)
		api.DELETE("/availability/:day", h.DeleteAvailability)

		api.GET("/shifts", h.ListShifts)
		api.POST("/shifts", h.ManagerOnly(), h.CreateShift)
		api.DELETE("/shifts/:id", h.ManagerOnly(), h.DeleteShift)

		api.GET("/coverage", h.ListCoverage)
		api.POST("/coverage", h.ManagerOnly(), h.CreateCoverage)
		api.DELETE("/coverage/:id", h.ManagerOnly(), h.DeleteCoverage)

		api.POST("/schedule/generate", h.ManagerOnly(), h.GenerateSchedule)
		api.GET("/schedules", h.ListSchedules)
		api.GET("/schedules/:id", h.GetSchedule)
		api.POST("/schedules/:id/publish", h.ManagerOnly(), h.PublishSchedule)
		api.GET("/schedules/:id/export.csv", h.ExportScheduleCSV)

		api.POST("/swaps", h.CreateSwapRequest)
		api.GET("/swaps", h.ListSwapRequests)
		api.PUT("/swaps/:id", h.RespondSwapRequest)

		api.GET("/notifications", h.ListNotifications)
		api.PUT("/notifications/:id/read", h.MarkNotificationRead)
	}

	// Machine-to-machine surface: run the engine on a supplied snapshot
	integration := r.Group("/integration")
	integration.Use(h.APIKeyMiddleware())
	{
		integration.POST("/schedule", h.SchedulePreview)
		integration.POST("/validate", h.ValidateInput)
		integration.GET("/usage", h.GetMyUsage)
	}
}
