package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"schedly/models"
)

type MockHoursRepo struct {
	mock.Mock
}

func (m *MockHoursRepo) GetForWeekday(ctx context.Context, tenantID string, weekday int, locationID string) (*models.BusinessHours, error) {
	args := m.Called(ctx, tenantID, weekday, locationID)
	if v := args.Get(0); v != nil {
		return v.(*models.BusinessHours), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockHoursRepo) ListByTenant(ctx context.Context, tenantID string) ([]models.BusinessHours, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]models.BusinessHours), args.Error(1)
}

func (m *MockHoursRepo) Upsert(ctx context.Context, hours *models.BusinessHours) error {
	return m.Called(ctx, hours).Error(0)
}

func (m *MockHoursRepo) Delete(ctx context.Context, tenantID string, weekday int, locationID string) error {
	return m.Called(ctx, tenantID, weekday, locationID).Error(0)
}

func (m *MockHoursRepo) ListTenantIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

type MockExceptionRepo struct {
	mock.Mock
}

func (m *MockExceptionRepo) GetForDate(ctx context.Context, tenantID, date, locationID string) (*models.DateException, error) {
	args := m.Called(ctx, tenantID, date, locationID)
	if v := args.Get(0); v != nil {
		return v.(*models.DateException), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExceptionRepo) ListByTenant(ctx context.Context, tenantID, fromDate string) ([]models.DateException, error) {
	args := m.Called(ctx, tenantID, fromDate)
	return args.Get(0).([]models.DateException), args.Error(1)
}

func (m *MockExceptionRepo) Upsert(ctx context.Context, exc *models.DateException) error {
	return m.Called(ctx, exc).Error(0)
}

func (m *MockExceptionRepo) Delete(ctx context.Context, tenantID, date, locationID string) error {
	return m.Called(ctx, tenantID, date, locationID).Error(0)
}

type MockTypeRepo struct {
	mock.Mock
}

func (m *MockTypeRepo) GetByID(ctx context.Context, tenantID, typeID string) (*models.AppointmentType, error) {
	args := m.Called(ctx, tenantID, typeID)
	if v := args.Get(0); v != nil {
		return v.(*models.AppointmentType), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTypeRepo) List(ctx context.Context, tenantID string) ([]models.AppointmentType, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]models.AppointmentType), args.Error(1)
}

func (m *MockTypeRepo) Create(ctx context.Context, at *models.AppointmentType) error {
	return m.Called(ctx, at).Error(0)
}

func (m *MockTypeRepo) Update(ctx context.Context, at *models.AppointmentType) error {
	return m.Called(ctx, at).Error(0)
}

func (m *MockTypeRepo) Delete(ctx context.Context, tenantID, typeID string) error {
	return m.Called(ctx, tenantID, typeID).Error(0)
}

type MockSettingsRepo struct {
	mock.Mock
}

func (m *MockSettingsRepo) Get(ctx context.Context, tenantID string) (*models.AppointmentSettings, error) {
	args := m.Called(ctx, tenantID)
	if v := args.Get(0); v != nil {
		return v.(*models.AppointmentSettings), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSettingsRepo) Upsert(ctx context.Context, settings *models.AppointmentSettings) error {
	return m.Called(ctx, settings).Error(0)
}

type MockAgentRepo struct {
	mock.Mock
}

func (m *MockAgentRepo) GetByID(ctx context.Context, tenantID, agentID string) (*models.Agent, error) {
	args := m.Called(ctx, tenantID, agentID)
	if v := args.Get(0); v != nil {
		return v.(*models.Agent), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAgentRepo) List(ctx context.Context, tenantID string) ([]models.Agent, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]models.Agent), args.Error(1)
}

func (m *MockAgentRepo) Create(ctx context.Context, agent *models.Agent) error {
	return m.Called(ctx, agent).Error(0)
}

func (m *MockAgentRepo) UpdateAvailability(ctx context.Context, tenantID, agentID string, availability *models.AgentAvailability) error {
	return m.Called(ctx, tenantID, agentID, availability).Error(0)
}

func (m *MockAgentRepo) Delete(ctx context.Context, tenantID, agentID string) error {
	return m.Called(ctx, tenantID, agentID).Error(0)
}

type MockAppointmentRepo struct {
	mock.Mock
}

func (m *MockAppointmentRepo) ListByDate(ctx context.Context, tenantID, date, locationID, agentID string) ([]models.Appointment, error) {
	args := m.Called(ctx, tenantID, date, locationID, agentID)
	if v := args.Get(0); v != nil {
		return v.([]models.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

type engineFixture struct {
	hours        *MockHoursRepo
	exceptions   *MockExceptionRepo
	types        *MockTypeRepo
	settings     *MockSettingsRepo
	agents       *MockAgentRepo
	appointments *MockAppointmentRepo
	svc          *DefaultAvailabilityService
}

// 2026-03-02 is a Monday; generation runs "at" 08:00 that morning so the
// Thursday target date is comfortably inside the booking horizon.
func newEngineFixture() *engineFixture {
	f := &engineFixture{
		hours:        new(MockHoursRepo),
		exceptions:   new(MockExceptionRepo),
		types:        new(MockTypeRepo),
		settings:     new(MockSettingsRepo),
		agents:       new(MockAgentRepo),
		appointments: new(MockAppointmentRepo),
	}
	f.svc = &DefaultAvailabilityService{
		Hours:        f.hours,
		Exceptions:   f.exceptions,
		Types:        f.types,
		Settings:     f.settings,
		Agents:       f.agents,
		Appointments: f.appointments,
		Now: func() time.Time {
			return time.Date(2026, 3, 2, 8, 0, 0, 0, time.Local)
		},
	}
	return f
}

const (
	testTenant   = "tenant-1"
	thursday     = "2026-03-05" // weekday 4
	thursdayIdx  = 4
	mondayToday  = "2026-03-02" // weekday 1
	mondayIdx    = 1
)

func openHours(weekday int, open, close string) *models.BusinessHours {
	return &models.BusinessHours{
		ID:        "bh-" + open,
		TenantID:  testTenant,
		Weekday:   weekday,
		OpenTime:  open,
		CloseTime: close,
	}
}

func TestGenerateRejectsInvalidDate(t *testing.T) {
	f := newEngineFixture()

	_, err := f.svc.Generate(context.Background(), Request{TenantID: testTenant, Date: "03-05-2026"})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = f.svc.Generate(context.Background(), Request{TenantID: testTenant, Date: "2026-13-40"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestGenerateClosedWeekdayShortCircuits(t *testing.T) {
	f := newEngineFixture()
	f.hours.On("GetForWeekday", mock.Anything, testTenant, thursdayIdx, "").Return(nil, nil)

	day, err := f.svc.Generate(context.Background(), Request{TenantID: testTenant, Date: thursday})
	require.NoError(t, err)

	assert.Empty(t, day.AvailableSlots)
	assert.True(t, day.BusinessHours.IsClosed)
	assert.False(t, day.IsExceptionDay)
	// The exception lookup never runs for a closed weekday, so an exception
	// cannot reopen it.
	f.exceptions.AssertNotCalled(t, "GetForDate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateClosedFlagOnWeekdayRow(t *testing.T) {
	f := newEngineFixture()
	closed := openHours(thursdayIdx, "09:00", "17:00")
	closed.IsClosed = true
	f.hours.On("GetForWeekday", mock.Anything, testTenant, thursdayIdx, "").Return(closed, nil)

	day, err := f.svc.Generate(context.Background(), Request{TenantID: testTenant, Date: thursday})
	require.NoError(t, err)

	assert.True(t, day.BusinessHours.IsClosed)
	assert.Empty(t, day.AvailableSlots)
	assert.False(t, day.IsExceptionDay)
}

func TestGenerateClosedExceptionDay(t *testing.T) {
	f := newEngineFixture()
	f.hours.On("GetForWeekday", mock.Anything, testTenant, thursdayIdx, "").
		Return(openHours(thursdayIdx, "09:00", "17:00"), nil)
	f.exceptions.On("GetForDate", mock.Anything, testTenant, thursday, "").
		Return(&models.DateException{TenantID: testTenant, Date: thursday, IsClosed: true, Reason: "holiday"}, nil)

	day, err := f.svc.Generate(context.Background(), Request{TenantID: testTenant, Date: thursday})
	require.NoError(t, err)

	assert.Empty(t, day.AvailableSlots)
	assert.True(t, day.BusinessHours.IsClosed)
	assert.True(t, day.IsExceptionDay)
}

func TestGenerateExceptionOverridesHours(t *testing.T) {
	f := newEngineFixture()
	f.hours.On("GetForWeekday", mock.Anything, testTenant, thursdayIdx, "").
		Return(openHours(thursdayIdx, "09:00", "17:00"), nil)
	// Special short day: 10:00-12:00.
	f.exceptions.On("GetForDate", mock.Anything, testTenant, thursday, "").
		Return(&models.DateException{TenantID: testTenant, Date: thursday, OpenTime: "10:00", CloseTime: "12:00"}, nil)
	f.settings.On("Get", mock.Anything, testTenant).Return(&models.AppointmentSettings{
		TenantID:            testTenant,
		AppointmentDuration: 60,
		MinNoticeMinutes:    60,
		MaxAdvanceDays:      30,
	}, nil)
	f.appointments.On("ListByDate", mock.Anything, testTenant, thursday, "", "").Return([]models.Appointment{}, nil)

	day, err := f.svc.Generate(context.Background(), Request{TenantID: testTenant, Date: thursday})
	require.NoError(t, err)

	assert.True(t, day.IsExceptionDay)
	assert.Equal(t, "10:00", day.BusinessHours.OpenTime)
	assert.Equal(t, "12:00", day.BusinessHours.CloseTime)
	require.Len(t, day.AvailableSlots, 2)
	assert.Equal(t, "10:00", day.AvailableSlots[0].StartTime)
	assert.Equal(t, "11:00", day.AvailableSlots[1].StartTime)
}

func TestGenerateDefaultsWhenNoSettings(t *testing.T) {
	f := newEngineFixture()
	f.hours.On("GetForWeekday", mock.Anything, testTenant, thursdayIdx, "").
		Return(openHours(thursdayIdx, "09:00", "10:30"), nil)
	f.exceptions.On("GetForDate", mock.Anything, testTenant, thursday, "").Return(nil, nil)
	f.settings.On("Get", mock.Anything, testTenant).Return(nil, nil)
	f.appointments.On("ListByDate", mock.Anything, testTenant, thursday, "", "").Return([]models.Appointment{}, nil)

	day, err := f.svc.Generate(context.Background(), Request{TenantID: testTenant, Date: thursday})
	require.NoError(t, err)

	// Default 30-minute duration with no buffer: 09:00, 09:30, 10:00.
	require.Len(t, day.AvailableSlots, 3)
	assert.Equal(t, "09:00", day.AvailableSlots[0].StartTime)
	assert.Equal(t, "09:30", day.AvailableSlots[0].EndTime)
	assert.Equal(t, "10:00", day.AvailableSlots[2].StartTime)
}

func TestGenerateUsesAppointmentTypeDuration(t *testing.T) {
	f := newEngineFixture()
	f.hours.On("GetForWeekday", mock.Anything, testTenant, thursdayIdx, "").
		Return(openHours(thursdayIdx, "09:00", "12:00"), nil)
	f.exceptions.On("GetForDate", mock.Anything, testTenant, thursday, "").Return(nil, nil)
	f.settings.On("Get", mock.Anything, testTenant).Return(nil, nil)
	f.types.On("GetByID", mock.Anything, testTenant, "type-1").Return(&models.AppointmentType{
		ID:         "type-1",
		TenantID:   testTenant,
		Name:       "Consultation",
		Duration:   60,
		BufferTime: 0,
		IsActive:   true,
	}, nil)
	f.appointments.On("ListByDate", mock.Anything, testTenant, thursday, "", "").Return([]models.Appointment{}, nil)

	day, err := f.svc.Generate(context.Background(), Request{
		TenantID:          testTenant,
		Date:              thursday,
		AppointmentTypeID: "type-1",
	})
	require.NoError(t, err)

	require.Len(t, day.AvailableSlots, 3)
	assert.Equal(t, "09:00", day.AvailableSlots[0].StartTime)
	assert.Equal(t, "10:00", day.AvailableSlots[0].EndTime)
}

func TestGenerateInactiveTypeFallsBackToSettings(t *testing.T) {
	f := newEngineFixture()
	f.hours.On("GetForWeekday", mock.Anything, testTenant, thursdayIdx, "").
		Return(openHours(thursdayIdx, "09:00", "10:00"), nil)
	f.exceptions.On("GetForDate", mock.Anything, testTenant, thursday, "").Return(nil, nil)
	f.settings.On("Get", mock.Anything, testTenant).Return(nil, nil)
	f.types.On("GetByID", mock.Anything, testTenant, "type-1").Return(&models.AppointmentType{
		ID: "type-1", TenantID: testTenant, Duration: 120, IsActive: false,
	}, nil)
	f.appointments.On("ListByDate", mock.Anything, testTenant, thursday, "", "").Return([]models.Appointment{}, nil)

	day, err := f.svc.Generate(context.Background(), Request{
		TenantID:          testTenant,
		Date:              thursday,
		AppointmentTypeID: "type-1",
	})
	require.NoError(t, err)

	// Default 30-minute duration, not the inactive type's 120.
	assert.Len(t, day.AvailableSlots, 2)
}

func TestGenerateExcludesBookedOverlaps(t *testing.T) {
	f := newEngineFixture()
	f.hours.On("GetForWeekday", mock.Anything, testTenant, thursdayIdx, "").
		Return(openHours(thursdayIdx, "09:00", "12:00"), nil)
	f.exceptions.On("GetForDate", mock.Anything, testTenant, thursday, "").Return(nil, nil)
	f.settings.On("Get", mock.Anything, testTenant).Return(&models.AppointmentSettings{
		TenantID:            testTenant,
		AppointmentDuration: 60,
		MaxAdvanceDays:      30,
	}, nil)
	f.appointments.On("ListByDate", mock.Anything, testTenant, thursday, "", "").Return([]models.Appointment{
		{ID: "a1", StartTime: "10:00", EndTime: "10:30"},
	}, nil)

	day, err := f.svc.Generate(context.Background(), Request{TenantID: testTenant, Date: thursday})
	require.NoError(t, err)

	require.Len(t, day.AvailableSlots, 2)
	assert.Equal(t, "09:00", day.AvailableSlots[0].StartTime)
	assert.Equal(t, "11:00", day.AvailableSlots[1].StartTime)
}

func TestGenerateDailyCapTruncatesEarliestFirst(t *testing.T) {
	f := newEngineFixture()
	dailyCap := 3
	f.hours.On("GetForWeekday", mock.Anything, testTenant, thursdayIdx, "").
		Return(openHours(thursdayIdx, "09:00", "17:00"), nil)
	f.exceptions.On("GetForDate", mock.Anything, testTenant, thursday, "").Return(nil, nil)
	f.settings.On("Get", mock.Anything, testTenant).Return(&models.AppointmentSettings{
		TenantID:             testTenant,
		AppointmentDuration:  60,
		MaxDailyAppointments: &dailyCap,
		MaxAdvanceDays:       30,
	}, nil)
	f.appointments.On("ListByDate", mock.Anything, testTenant, thursday, "", "").Return([]models.Appointment{
		{ID: "a1", StartTime: "09:00", EndTime: "10:00"},
		{ID: "a2", StartTime: "10:00", EndTime: "11:00"},
	}, nil)

	day, err := f.svc.Generate(context.Background(), Request{TenantID: testTenant, Date: thursday})
	require.NoError(t, err)

	// Cap 3 with 2 booked leaves room for exactly one slot, the earliest.
	require.Len(t, day.AvailableSlots, 1)
	assert.Equal(t, "11:00", day.AvailableSlots[0].StartTime)
}

func TestGenerateCapAlreadyExhausted(t *testing.T) {
	f := newEngineFixture()
	dailyCap := 1
	f.hours.On("GetForWeekday", mock.Anything, testTenant, thursdayIdx, "").
		Return(openHours(thursdayIdx, "09:00", "12:00"), nil)
	f.exceptions.On("GetForDate", mock.Anything, testTenant, thursday, "").Return(nil, nil)
	f.settings.On("Get", mock.Anything, testTenant).Return(&models.AppointmentSettings{
		TenantID:             testTenant,
		AppointmentDuration:  60,
		MaxDailyAppointments: &dailyCap,
		MaxAdvanceDays:       30,
	}, nil)
	f.appointments.On("ListByDate", mock.Anything, testTenant, thursday, "", "").Return([]models.Appointment{
		{ID: "a1", StartTime: "09:00", EndTime: "10:00"},
		{ID: "a2", StartTime: "10:00", EndTime: "11:00"},
	}, nil)

	day, err := f.svc.Generate(context.Background(), Request{TenantID: testTenant, Date: thursday})
	require.NoError(t, err)
	assert.Empty(t, day.AvailableSlots)
}

func TestGenerateAgentWindowsRestrictSlots(t *testing.T) {
	f := newEngineFixture()
	f.hours.On("GetForWeekday", mock.Anything, testTenant, thursdayIdx, "").
		Return(openHours(thursdayIdx, "09:00", "12:00"), nil)
	f.exceptions.On("GetForDate", mock.Anything, testTenant, thursday, "").Return(nil, nil)
	f.settings.On("Get", mock.Anything, testTenant).Return(nil, nil)
	f.appointments.On("ListByDate", mock.Anything, testTenant, thursday, "", "agent-1").Return([]models.Appointment{}, nil)

	av := &models.AgentAvailability{}
	av.Days[thursdayIdx] = models.AgentDay{
		Enabled: true,
		Windows: []models.AgentWindow{{Start: "09:00", End: "10:30"}},
	}
	f.agents.On("GetByID", mock.Anything, testTenant, "agent-1").Return(&models.Agent{
		ID: "agent-1", TenantID: testTenant, Name: "Dana", Availability: av,
	}, nil)

	day, err := f.svc.Generate(context.Background(), Request{
		TenantID: testTenant,
		Date:     thursday,
		AgentID:  "agent-1",
	})
	require.NoError(t, err)

	// 30-minute default slots inside 09:00-10:30 only.
	require.Len(t, day.AvailableSlots, 3)
	assert.Equal(t, "10:00", day.AvailableSlots[2].StartTime)
	assert.Equal(t, "10:30", day.AvailableSlots[2].EndTime)
}

func TestGenerateAgentWithoutAvailabilityIsUnconstrained(t *testing.T) {
	f := newEngineFixture()
	f.hours.On("GetForWeekday", mock.Anything, testTenant, thursdayIdx, "").
		Return(openHours(thursdayIdx, "09:00", "10:00"), nil)
	f.exceptions.On("GetForDate", mock.Anything, testTenant, thursday, "").Return(nil, nil)
	f.settings.On("Get", mock.Anything, testTenant).Return(nil, nil)
	f.appointments.On("ListByDate", mock.Anything, testTenant, thursday, "", "agent-1").Return([]models.Appointment{}, nil)
	f.agents.On("GetByID", mock.Anything, testTenant, "agent-1").Return(&models.Agent{
		ID: "agent-1", TenantID: testTenant, Name: "Dana",
	}, nil)

	day, err := f.svc.Generate(context.Background(), Request{
		TenantID: testTenant,
		Date:     thursday,
		AgentID:  "agent-1",
	})
	require.NoError(t, err)
	assert.Len(t, day.AvailableSlots, 2)
}

func TestGenerateMinNoticeAppliesOnlyToday(t *testing.T) {
	f := newEngineFixture()
	// Now is fixed at 08:00; 90 minutes notice floors today's slots at 09:30.
	f.hours.On("GetForWeekday", mock.Anything, testTenant, mondayIdx, "").
		Return(openHours(mondayIdx, "09:00", "12:00"), nil)
	f.exceptions.On("GetForDate", mock.Anything, testTenant, mondayToday, "").Return(nil, nil)
	f.settings.On("Get", mock.Anything, testTenant).Return(&models.AppointmentSettings{
		TenantID:            testTenant,
		AppointmentDuration: 60,
		MinNoticeMinutes:    90,
		MaxAdvanceDays:      30,
	}, nil)
	f.appointments.On("ListByDate", mock.Anything, testTenant, mondayToday, "", "").Return([]models.Appointment{}, nil)

	day, err := f.svc.Generate(context.Background(), Request{TenantID: testTenant, Date: mondayToday})
	require.NoError(t, err)

	// 09:00 starts before 09:30 and is dropped; 10:00 and 11:00 survive.
	require.Len(t, day.AvailableSlots, 2)
	assert.Equal(t, "10:00", day.AvailableSlots[0].StartTime)
}

func TestGenerateBeyondBookingHorizon(t *testing.T) {
	f := newEngineFixture()
	farOut := "2026-06-04" // Thursday, far past the 30-day default horizon
	f.hours.On("GetForWeekday", mock.Anything, testTenant, thursdayIdx, "").
		Return(openHours(thursdayIdx, "09:00", "17:00"), nil)
	f.exceptions.On("GetForDate", mock.Anything, testTenant, farOut, "").Return(nil, nil)
	f.settings.On("Get", mock.Anything, testTenant).Return(nil, nil)

	day, err := f.svc.Generate(context.Background(), Request{TenantID: testTenant, Date: farOut})
	require.NoError(t, err)

	assert.Empty(t, day.AvailableSlots)
	assert.False(t, day.BusinessHours.IsClosed)
	f.appointments.AssertNotCalled(t, "ListByDate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateUpstreamErrorFailsWholeCall(t *testing.T) {
	f := newEngineFixture()
	boom := errors.New("mongo down")
	f.hours.On("GetForWeekday", mock.Anything, testTenant, thursdayIdx, "").Return(nil, boom)

	day, err := f.svc.Generate(context.Background(), Request{TenantID: testTenant, Date: thursday})
	assert.Nil(t, day)
	assert.ErrorIs(t, err, boom)
}

func TestGenerateAppointmentLookupErrorFailsWholeCall(t *testing.T) {
	f := newEngineFixture()
	boom := errors.New("timeout")
	f.hours.On("GetForWeekday", mock.Anything, testTenant, thursdayIdx, "").
		Return(openHours(thursdayIdx, "09:00", "17:00"), nil)
	f.exceptions.On("GetForDate", mock.Anything, testTenant, thursday, "").Return(nil, nil)
	f.settings.On("Get", mock.Anything, testTenant).Return(nil, nil)
	f.appointments.On("ListByDate", mock.Anything, testTenant, thursday, "", "").Return(nil, boom)

	day, err := f.svc.Generate(context.Background(), Request{TenantID: testTenant, Date: thursday})
	assert.Nil(t, day)
	assert.ErrorIs(t, err, boom)
}

func TestGenerateIsDeterministic(t *testing.T) {
	f := newEngineFixture()
	f.hours.On("GetForWeekday", mock.Anything, testTenant, thursdayIdx, "").
		Return(openHours(thursdayIdx, "09:00", "12:00"), nil)
	f.exceptions.On("GetForDate", mock.Anything, testTenant, thursday, "").Return(nil, nil)
	f.settings.On("Get", mock.Anything, testTenant).Return(nil, nil)
	f.appointments.On("ListByDate", mock.Anything, testTenant, thursday, "", "").Return([]models.Appointment{
		{ID: "a1", StartTime: "09:30", EndTime: "10:00"},
	}, nil)

	first, err := f.svc.Generate(context.Background(), Request{TenantID: testTenant, Date: thursday})
	require.NoError(t, err)
	second, err := f.svc.Generate(context.Background(), Request{TenantID: testTenant, Date: thursday})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
