package availability

import (
	"context"
	"time"

	agentRepo "schedly/database/repository/agent"
	appointmentRepo "schedly/database/repository/appointment"
	apptypeRepo "schedly/database/repository/apptype"
	exceptionRepo "schedly/database/repository/exception"
	hoursRepo "schedly/database/repository/hours"
	settingsRepo "schedly/database/repository/settings"

	"schedly/models"
)

// Request identifies one availability query. Date is "YYYY-MM-DD"; the three
// filter fields are optional and empty means unfiltered.
type Request struct {
	TenantID          string
	Date              string
	AppointmentTypeID string
	LocationID        string
	AgentID           string
}

// AvailabilityService computes the bookable slots for a tenant's date.
type AvailabilityService interface {
	Generate(ctx context.Context, req Request) (*models.DayAvailability, error)
}

// DefaultAvailabilityService is the production engine. All collaborators are
// read-only; the engine itself mutates nothing and holds no per-call state,
// so one instance serves concurrent requests without locking.
type DefaultAvailabilityService struct {
	Hours        hoursRepo.BusinessHoursRepository
	Exceptions   exceptionRepo.DateExceptionRepository
	Types        apptypeRepo.AppointmentTypeRepository
	Settings     settingsRepo.AppointmentSettingsRepository
	Agents       agentRepo.AgentRepository
	Appointments appointmentRepo.AppointmentRepository

	// Cache is optional; nil disables response caching.
	Cache *ResponseCache

	// Now is overridable for tests. Defaults to time.Now.
	Now func() time.Time
}
