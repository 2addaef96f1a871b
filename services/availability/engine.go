package availability

import (
	"context"
	"fmt"
	"time"

	"schedly/models"
	"schedly/utils"

	"go.uber.org/zap"
)

// Generate resolves the effective hours and scheduling parameters for the
// requested date, then walks the day producing bookable slots. Any failed
// collaborator read fails the whole call; no partial slot list is ever
// returned.
func (s *DefaultAvailabilityService) Generate(ctx context.Context, req Request) (*models.DayAvailability, error) {
	logger := utils.GetLogger()

	day, err := time.ParseInLocation(utils.DateLayout, req.Date, time.Local)
	if err != nil {
		return nil, ErrInvalidDate
	}
	now := s.now()

	if s.Cache != nil {
		if cached, ok := s.Cache.Get(ctx, req); ok {
			return cached, nil
		}
	}

	weekday := int(day.Weekday())

	hours, err := s.Hours.GetForWeekday(ctx, req.TenantID, weekday, req.LocationID)
	if err != nil {
		return nil, fmt.Errorf("fetch business hours: %w", err)
	}
	// A closed (or missing) weekday row short-circuits before the exception
	// lookup, so a date exception cannot reopen a day the weekday rule
	// closes. Mirrors the long-standing behavior the booking UI depends on.
	if hours == nil || hours.IsClosed {
		res := closedDay(req.Date, hours, false)
		s.cachePut(ctx, req, res)
		return res, nil
	}

	exc, err := s.Exceptions.GetForDate(ctx, req.TenantID, req.Date, req.LocationID)
	if err != nil {
		return nil, fmt.Errorf("fetch date exception: %w", err)
	}
	if exc != nil && exc.IsClosed {
		res := &models.DayAvailability{
			AvailableSlots: []models.AvailableSlot{},
			BusinessHours: models.BusinessHoursView{
				OpenTime:  exc.OpenTime,
				CloseTime: exc.CloseTime,
				IsClosed:  true,
			},
			Date:           req.Date,
			IsExceptionDay: true,
		}
		s.cachePut(ctx, req, res)
		return res, nil
	}

	openStr, closeStr := hours.OpenTime, hours.CloseTime
	if exc != nil {
		openStr, closeStr = exc.OpenTime, exc.CloseTime
	}
	openMin, err := ParseClock(openStr)
	if err != nil {
		return nil, fmt.Errorf("business hours open time: %w", err)
	}
	closeMin, err := ParseClock(closeStr)
	if err != nil {
		return nil, fmt.Errorf("business hours close time: %w", err)
	}

	params, err := s.resolveParams(ctx, req)
	if err != nil {
		return nil, err
	}

	hoursView := models.BusinessHoursView{OpenTime: openStr, CloseTime: closeStr}
	result := &models.DayAvailability{
		AvailableSlots: []models.AvailableSlot{},
		BusinessHours:  hoursView,
		Date:           req.Date,
		IsExceptionDay: exc != nil,
	}

	// Dates past the tenant's booking horizon stay open but expose no slots.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.After(today.AddDate(0, 0, params.maxAdvanceDays)) {
		s.cachePut(ctx, req, result)
		return result, nil
	}

	appts, err := s.Appointments.ListByDate(ctx, req.TenantID, req.Date, req.LocationID, req.AgentID)
	if err != nil {
		return nil, fmt.Errorf("fetch appointments: %w", err)
	}
	booked := make([]minuteRange, 0, len(appts))
	for _, a := range appts {
		start, err := ParseClock(a.StartTime)
		if err != nil {
			return nil, fmt.Errorf("appointment %s start time: %w", a.ID, err)
		}
		end, err := ParseClock(a.EndTime)
		if err != nil {
			return nil, fmt.Errorf("appointment %s end time: %w", a.ID, err)
		}
		booked = append(booked, minuteRange{Start: start, End: end})
	}

	constrained, windows, err := s.agentWindows(ctx, req, weekday)
	if err != nil {
		return nil, err
	}

	earliest := -1
	if day.Equal(today) {
		earliest = now.Hour()*60 + now.Minute() + params.minNotice
	}

	open := computeSlots(slotParams{
		OpenMin:          openMin,
		CloseMin:         closeMin,
		Duration:         params.duration,
		Buffer:           params.buffer,
		EarliestStart:    earliest,
		Booked:           booked,
		AgentConstrained: constrained,
		AgentWindows:     windows,
	})

	if params.maxDaily != nil {
		remaining := *params.maxDaily - len(appts)
		if remaining < 0 {
			remaining = 0
		}
		if len(open) > remaining {
			open = open[:remaining]
		}
	}

	for _, slot := range open {
		startAt := day.Add(time.Duration(slot.Start) * time.Minute)
		endAt := day.Add(time.Duration(slot.End) * time.Minute)
		result.AvailableSlots = append(result.AvailableSlots, models.AvailableSlot{
			StartTime:     FormatClock(slot.Start),
			EndTime:       FormatClock(slot.End),
			StartDatetime: startAt.Format(time.RFC3339),
			EndDatetime:   endAt.Format(time.RFC3339),
		})
	}

	logger.Debug("availability generated",
		zap.String("tenantID", req.TenantID),
		zap.String("date", req.Date),
		zap.Int("slots", len(result.AvailableSlots)))

	s.cachePut(ctx, req, result)
	return result, nil
}

// dayParams are the effective scheduling knobs for one request.
type dayParams struct {
	duration       int
	buffer         int
	minNotice      int
	maxAdvanceDays int
	maxDaily       *int
}

// resolveParams layers the requested appointment type over the tenant
// settings over the built-in defaults. An inactive or unknown type falls
// back to the tenant settings; a missing settings row is not an error.
func (s *DefaultAvailabilityService) resolveParams(ctx context.Context, req Request) (dayParams, error) {
	settings, err := s.Settings.Get(ctx, req.TenantID)
	if err != nil {
		return dayParams{}, fmt.Errorf("fetch appointment settings: %w", err)
	}
	if settings == nil {
		settings = models.DefaultAppointmentSettings(req.TenantID)
	}

	params := dayParams{
		duration:       settings.AppointmentDuration,
		buffer:         settings.BufferTime,
		minNotice:      settings.MinNoticeMinutes,
		maxAdvanceDays: settings.MaxAdvanceDays,
		maxDaily:       settings.MaxDailyAppointments,
	}
	if params.duration <= 0 {
		params.duration = models.DefaultAppointmentDuration
	}
	if params.maxAdvanceDays <= 0 {
		params.maxAdvanceDays = models.DefaultMaxAdvanceDays
	}

	if req.AppointmentTypeID != "" {
		at, err := s.Types.GetByID(ctx, req.TenantID, req.AppointmentTypeID)
		if err != nil {
			return dayParams{}, fmt.Errorf("fetch appointment type: %w", err)
		}
		if at != nil && at.IsActive {
			params.duration = at.Duration
			params.buffer = at.BufferTime
			if at.MaxDailyAppointments != nil {
				params.maxDaily = at.MaxDailyAppointments
			}
		}
	}
	return params, nil
}

// agentWindows loads and parses the agent's working windows for the weekday.
// No agent filter, or an agent without stored availability, means
// unconstrained. A disabled weekday yields a constrained empty window set,
// which blocks every slot.
func (s *DefaultAvailabilityService) agentWindows(ctx context.Context, req Request, weekday int) (bool, []minuteRange, error) {
	if req.AgentID == "" {
		return false, nil, nil
	}
	agent, err := s.Agents.GetByID(ctx, req.TenantID, req.AgentID)
	if err != nil {
		return false, nil, fmt.Errorf("fetch agent: %w", err)
	}
	if agent == nil || agent.Availability == nil {
		return false, nil, nil
	}

	dayCfg := agent.Availability.Days[weekday]
	if !dayCfg.Enabled {
		return true, nil, nil
	}
	windows := make([]minuteRange, 0, len(dayCfg.Windows))
	for _, w := range dayCfg.Windows {
		start, err := ParseClock(w.Start)
		if err != nil {
			return false, nil, fmt.Errorf("agent %s window start: %w", req.AgentID, err)
		}
		end, err := ParseClock(w.End)
		if err != nil {
			return false, nil, fmt.Errorf("agent %s window end: %w", req.AgentID, err)
		}
		windows = append(windows, minuteRange{Start: start, End: end})
	}
	return true, windows, nil
}

func closedDay(date string, hours *models.BusinessHours, isException bool) *models.DayAvailability {
	view := models.BusinessHoursView{IsClosed: true}
	if hours != nil {
		view.OpenTime = hours.OpenTime
		view.CloseTime = hours.CloseTime
	}
	return &models.DayAvailability{
		AvailableSlots: []models.AvailableSlot{},
		BusinessHours:  view,
		Date:           date,
		IsExceptionDay: isException,
	}
}

func (s *DefaultAvailabilityService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultAvailabilityService) cachePut(ctx context.Context, req Request, day *models.DayAvailability) {
	if s.Cache != nil {
		s.Cache.Put(ctx, req, day)
	}
}
