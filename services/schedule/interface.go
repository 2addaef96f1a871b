package schedule

import (
	"context"

	agentRepo "schedly/database/repository/agent"
	apptypeRepo "schedly/database/repository/apptype"
	exceptionRepo "schedly/database/repository/exception"
	hoursRepo "schedly/database/repository/hours"
	settingsRepo "schedly/database/repository/settings"

	"schedly/models"
	"schedly/services/availability"
)

// ScheduleService is the tenant-admin surface for everything the
// availability engine reads: weekday hours, date exceptions, appointment
// types, tenant settings and agent working windows. Every successful write
// invalidates the tenant's cached availability.
type ScheduleService interface {
	UpsertBusinessHours(ctx context.Context, hours *models.BusinessHours) error
	ListBusinessHours(ctx context.Context, tenantID string) ([]models.BusinessHours, error)
	DeleteBusinessHours(ctx context.Context, tenantID string, weekday int, locationID string) error

	UpsertException(ctx context.Context, exc *models.DateException) error
	ListExceptions(ctx context.Context, tenantID, fromDate string) ([]models.DateException, error)
	DeleteException(ctx context.Context, tenantID, date, locationID string) error

	CreateAppointmentType(ctx context.Context, at *models.AppointmentType) error
	UpdateAppointmentType(ctx context.Context, at *models.AppointmentType) error
	ListAppointmentTypes(ctx context.Context, tenantID string) ([]models.AppointmentType, error)
	DeleteAppointmentType(ctx context.Context, tenantID, typeID string) error

	GetSettings(ctx context.Context, tenantID string) (*models.AppointmentSettings, error)
	SaveSettings(ctx context.Context, settings *models.AppointmentSettings) error

	ListAgents(ctx context.Context, tenantID string) ([]models.Agent, error)
	GetAgent(ctx context.Context, tenantID, agentID string) (*models.Agent, error)
	CreateAgent(ctx context.Context, agent *models.Agent) error
	UpdateAgentAvailability(ctx context.Context, tenantID, agentID string, av *models.AgentAvailability) error
}

// DefaultScheduleService is the production implementation over the Mongo
// repositories.
type DefaultScheduleService struct {
	HoursRepo      hoursRepo.BusinessHoursRepository
	ExceptionRepo  exceptionRepo.DateExceptionRepository
	TypeRepo       apptypeRepo.AppointmentTypeRepository
	SettingsRepo   settingsRepo.AppointmentSettingsRepository
	AgentRepo      agentRepo.AgentRepository
	Cache          *availability.ResponseCache
}
