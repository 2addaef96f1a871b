package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"schedly/models"
	"schedly/services/availability"
	"schedly/utils"

	"go.uber.org/zap"
)

// ErrValidation marks a rejected write. Handlers map it to a 400.
var ErrValidation = errors.New("validation failed")

func (s *DefaultScheduleService) UpsertBusinessHours(ctx context.Context, hours *models.BusinessHours) error {
	if hours.TenantID == "" {
		return fmt.Errorf("%w: tenant_id is required", ErrValidation)
	}
	if hours.Weekday < 0 || hours.Weekday > 6 {
		return fmt.Errorf("%w: weekday must be 0 (Sunday) through 6 (Saturday)", ErrValidation)
	}
	if !hours.IsClosed {
		open, err := availability.ParseClock(hours.OpenTime)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
		close, err := availability.ParseClock(hours.CloseTime)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
		if open >= close {
			return fmt.Errorf("%w: open_time must be before close_time", ErrValidation)
		}
	}
	if err := s.HoursRepo.Upsert(ctx, hours); err != nil {
		return err
	}
	s.invalidate(ctx, hours.TenantID)
	return nil
}

func (s *DefaultScheduleService) ListBusinessHours(ctx context.Context, tenantID string) ([]models.BusinessHours, error) {
	return s.HoursRepo.ListByTenant(ctx, tenantID)
}

func (s *DefaultScheduleService) DeleteBusinessHours(ctx context.Context, tenantID string, weekday int, locationID string) error {
	if err := s.HoursRepo.Delete(ctx, tenantID, weekday, locationID); err != nil {
		return err
	}
	s.invalidate(ctx, tenantID)
	return nil
}

func (s *DefaultScheduleService) UpsertException(ctx context.Context, exc *models.DateException) error {
	if exc.TenantID == "" {
		return fmt.Errorf("%w: tenant_id is required", ErrValidation)
	}
	if _, err := time.ParseInLocation(utils.DateLayout, exc.Date, time.Local); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	if !exc.IsClosed {
		open, err := availability.ParseClock(exc.OpenTime)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
		close, err := availability.ParseClock(exc.CloseTime)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
		if open >= close {
			return fmt.Errorf("%w: open_time must be before close_time", ErrValidation)
		}
	}
	if err := s.ExceptionRepo.Upsert(ctx, exc); err != nil {
		return err
	}
	s.invalidate(ctx, exc.TenantID)
	return nil
}

func (s *DefaultScheduleService) ListExceptions(ctx context.Context, tenantID, fromDate string) ([]models.DateException, error) {
	return s.ExceptionRepo.ListByTenant(ctx, tenantID, fromDate)
}

func (s *DefaultScheduleService) DeleteException(ctx context.Context, tenantID, date, locationID string) error {
	if err := s.ExceptionRepo.Delete(ctx, tenantID, date, locationID); err != nil {
		return err
	}
	s.invalidate(ctx, tenantID)
	return nil
}

func validateAppointmentType(at *models.AppointmentType) error {
	if at.TenantID == "" {
		return fmt.Errorf("%w: tenant_id is required", ErrValidation)
	}
	if at.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if at.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrValidation)
	}
	if at.BufferTime < 0 {
		return fmt.Errorf("%w: buffer_time cannot be negative", ErrValidation)
	}
	if at.MaxDailyAppointments != nil && *at.MaxDailyAppointments < 0 {
		return fmt.Errorf("%w: max_daily_appointments cannot be negative", ErrValidation)
	}
	return nil
}

func (s *DefaultScheduleService) CreateAppointmentType(ctx context.Context, at *models.AppointmentType) error {
	if err := validateAppointmentType(at); err != nil {
		return err
	}
	if err := s.TypeRepo.Create(ctx, at); err != nil {
		return err
	}
	s.invalidate(ctx, at.TenantID)
	return nil
}

func (s *DefaultScheduleService) UpdateAppointmentType(ctx context.Context, at *models.AppointmentType) error {
	if err := validateAppointmentType(at); err != nil {
		return err
	}
	if err := s.TypeRepo.Update(ctx, at); err != nil {
		return err
	}
	s.invalidate(ctx, at.TenantID)
	return nil
}

func (s *DefaultScheduleService) ListAppointmentTypes(ctx context.Context, tenantID string) ([]models.AppointmentType, error) {
	return s.TypeRepo.List(ctx, tenantID)
}

func (s *DefaultScheduleService) DeleteAppointmentType(ctx context.Context, tenantID, typeID string) error {
	if err := s.TypeRepo.Delete(ctx, tenantID, typeID); err != nil {
		return err
	}
	s.invalidate(ctx, tenantID)
	return nil
}

// GetSettings substitutes the built-in defaults when the tenant never saved
// settings, so callers always get a usable document.
func (s *DefaultScheduleService) GetSettings(ctx context.Context, tenantID string) (*models.AppointmentSettings, error) {
	settings, err := s.SettingsRepo.Get(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return models.DefaultAppointmentSettings(tenantID), nil
	}
	return settings, nil
}

func (s *DefaultScheduleService) SaveSettings(ctx context.Context, settings *models.AppointmentSettings) error {
	if settings.TenantID == "" {
		return fmt.Errorf("%w: tenant_id is required", ErrValidation)
	}
	if settings.AppointmentDuration <= 0 {
		return fmt.Errorf("%w: appointment_duration must be positive", ErrValidation)
	}
	if settings.BufferTime < 0 {
		return fmt.Errorf("%w: buffer_time cannot be negative", ErrValidation)
	}
	if settings.MinNoticeMinutes < 0 {
		return fmt.Errorf("%w: min_notice_minutes cannot be negative", ErrValidation)
	}
	if settings.MaxAdvanceDays <= 0 {
		return fmt.Errorf("%w: max_advance_days must be positive", ErrValidation)
	}
	if err := s.SettingsRepo.Upsert(ctx, settings); err != nil {
		return err
	}
	s.invalidate(ctx, settings.TenantID)
	return nil
}

func (s *DefaultScheduleService) ListAgents(ctx context.Context, tenantID string) ([]models.Agent, error) {
	return s.AgentRepo.List(ctx, tenantID)
}

func (s *DefaultScheduleService) GetAgent(ctx context.Context, tenantID, agentID string) (*models.Agent, error) {
	return s.AgentRepo.GetByID(ctx, tenantID, agentID)
}

func (s *DefaultScheduleService) CreateAgent(ctx context.Context, agent *models.Agent) error {
	if agent.TenantID == "" {
		return fmt.Errorf("%w: tenant_id is required", ErrValidation)
	}
	if agent.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if agent.Availability != nil {
		if err := validateAgentAvailability(agent.Availability); err != nil {
			return err
		}
	}
	if err := s.AgentRepo.Create(ctx, agent); err != nil {
		return err
	}
	s.invalidate(ctx, agent.TenantID)
	return nil
}

func (s *DefaultScheduleService) UpdateAgentAvailability(ctx context.Context, tenantID, agentID string, av *models.AgentAvailability) error {
	if av != nil {
		if err := validateAgentAvailability(av); err != nil {
			return err
		}
	}
	if err := s.AgentRepo.UpdateAvailability(ctx, tenantID, agentID, av); err != nil {
		return err
	}
	s.invalidate(ctx, tenantID)
	return nil
}

// validateAgentAvailability rejects malformed windows at the write boundary
// so the availability engine never sees them.
func validateAgentAvailability(av *models.AgentAvailability) error {
	for weekday, day := range av.Days {
		for _, w := range day.Windows {
			start, err := availability.ParseClock(w.Start)
			if err != nil {
				return fmt.Errorf("%w: weekday %d: %v", ErrValidation, weekday, err)
			}
			end, err := availability.ParseClock(w.End)
			if err != nil {
				return fmt.Errorf("%w: weekday %d: %v", ErrValidation, weekday, err)
			}
			if start >= end {
				return fmt.Errorf("%w: weekday %d: window start must be before end", ErrValidation, weekday)
			}
		}
	}
	return nil
}

func (s *DefaultScheduleService) invalidate(ctx context.Context, tenantID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.InvalidateTenant(ctx, tenantID); err != nil {
		utils.GetLogger().Warn("failed to invalidate availability cache",
			zap.String("tenantID", tenantID), zap.Error(err))
	}
}
