package routes

import (
	"time"

	"schedly/handlers"
	"schedly/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the slot-lookup and appointments feed.
func RegisterAvailabilityRoutes(r *gin.Engine, availability *handlers.AvailabilityHandler, appointments *handlers.AppointmentsHandler) {
	api := r.Group("/api")
	api.Use(middleware.TenantAuthMiddleware())
	{
		api.GET("/availability", availability.GetAvailabilityHandler)
		api.GET("/appointments", appointments.ListAppointmentsHandler)
	}
}

// RegisterAdminRoutes registers the tenant-admin configuration endpoints.
func RegisterAdminRoutes(r *gin.Engine, schedule *handlers.ScheduleHandler) {
	admin := r.Group("/api/admin")
	admin.Use(middleware.TenantAuthMiddleware(), middleware.AdminOnlyMiddleware())
	{
		admin.GET("/business-hours", schedule.ListBusinessHoursHandler)
		admin.PUT("/business-hours", schedule.UpsertBusinessHoursHandler)
		admin.DELETE("/business-hours/:weekday", schedule.DeleteBusinessHoursHandler)

		admin.GET("/exceptions", schedule.ListExceptionsHandler)
		admin.PUT("/exceptions", schedule.UpsertExceptionHandler)
		admin.DELETE("/exceptions/:date", schedule.DeleteExceptionHandler)

		admin.GET("/appointment-types", schedule.ListAppointmentTypesHandler)
		admin.POST("/appointment-types", schedule.CreateAppointmentTypeHandler)
		admin.PUT("/appointment-types/:id", schedule.UpdateAppointmentTypeHandler)
		admin.DELETE("/appointment-types/:id", schedule.DeleteAppointmentTypeHandler)

		admin.GET("/settings", schedule.GetSettingsHandler)
		admin.PUT("/settings", schedule.SaveSettingsHandler)

		admin.GET("/agents", schedule.ListAgentsHandler)
		admin.POST("/agents", schedule.CreateAgentHandler)
		admin.GET("/agents/:id", schedule.GetAgentHandler)
		admin.PUT("/agents/:id/availability", schedule.UpdateAgentAvailabilityHandler)
	}
}

// RegisterHealthRoute registers the dependency health endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes wires CORS and all route groups onto the engine.
func RegisterRoutes(r *gin.Engine, availability *handlers.AvailabilityHandler, appointments *handlers.AppointmentsHandler, schedule *handlers.ScheduleHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAvailabilityRoutes(r, availability, appointments)
	RegisterAdminRoutes(r, schedule)
	RegisterHealthRoute(r)
}
