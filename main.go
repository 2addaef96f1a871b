// File: schedly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"schedly/config"
	"schedly/cron"
	"schedly/database"
	agentRepo "schedly/database/repository/agent"
	appointmentRepo "schedly/database/repository/appointment"
	apptypeRepo "schedly/database/repository/apptype"
	exceptionRepo "schedly/database/repository/exception"
	hoursRepo "schedly/database/repository/hours"
	settingsRepo "schedly/database/repository/settings"
	"schedly/handlers"
	"schedly/middleware"
	"schedly/routes"
	"schedly/services/availability"
	"schedly/services/schedule"
	"schedly/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	businessHoursRepo := hoursRepo.NewMongoBusinessHoursRepo()
	dateExceptionRepo := exceptionRepo.NewMongoDateExceptionRepo()
	appointmentTypeRepo := apptypeRepo.NewMongoAppointmentTypeRepo()
	appointmentSettingsRepo := settingsRepo.NewMongoAppointmentSettingsRepo()
	agentsRepo := agentRepo.NewMongoAgentRepo()
	appointmentsRepo := appointmentRepo.NewMongoAppointmentRepo()

	// services.
	responseCache := &availability.ResponseCache{
		Client: utils.GetCacheClient(),
		TTL:    time.Duration(config.AppConfig.AvailabilityTTL) * time.Second,
	}

	availabilityService := &availability.DefaultAvailabilityService{
		Hours:        businessHoursRepo,
		Exceptions:   dateExceptionRepo,
		Types:        appointmentTypeRepo,
		Settings:     appointmentSettingsRepo,
		Agents:       agentsRepo,
		Appointments: appointmentsRepo,
		Cache:        responseCache,
	}

	scheduleService := &schedule.DefaultScheduleService{
		HoursRepo:     businessHoursRepo,
		ExceptionRepo: dateExceptionRepo,
		TypeRepo:      appointmentTypeRepo,
		SettingsRepo:  appointmentSettingsRepo,
		AgentRepo:     agentsRepo,
		Cache:         responseCache,
	}

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	appointmentsHandler := handlers.NewAppointmentsHandler(appointmentsRepo)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)

	// Register routes.
	routes.RegisterRoutes(router, availabilityHandler, appointmentsHandler, scheduleHandler)

	// Background cache prewarming.
	cron.InitPrewarmWorker(availabilityService, businessHoursRepo)
	cron.StartPrewarmScheduler()

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
