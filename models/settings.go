package models

import "time"

// AppointmentSettings are tenant-wide scheduling defaults, used whenever a
// request does not name an appointment type (or the type lacks a value).
type AppointmentSettings struct {
	TenantID             string    `bson:"tenant_id" json:"tenant_id"`
	AppointmentDuration  int       `bson:"appointment_duration" json:"appointment_duration"` // minutes
	BufferTime           int       `bson:"buffer_time" json:"buffer_time"`                   // minutes
	MaxDailyAppointments *int      `bson:"max_daily_appointments,omitempty" json:"max_daily_appointments,omitempty"`
	MinNoticeMinutes     int       `bson:"min_notice_minutes" json:"min_notice_minutes"`
	MaxAdvanceDays       int       `bson:"max_advance_days" json:"max_advance_days"`
	UpdatedAt            time.Time `bson:"updated_at" json:"updated_at"`
}

// Fallbacks applied when a tenant has no settings document. A missing
// settings row is a configuration gap, not an error.
const (
	DefaultAppointmentDuration = 30
	DefaultBufferTime          = 0
	DefaultMinNoticeMinutes    = 60
	DefaultMaxAdvanceDays      = 30
)

// DefaultAppointmentSettings returns the fallback settings for tenants that
// have never saved their own.
func DefaultAppointmentSettings(tenantID string) *AppointmentSettings {
	return &AppointmentSettings{
		TenantID:            tenantID,
		AppointmentDuration: DefaultAppointmentDuration,
		BufferTime:          DefaultBufferTime,
		MinNoticeMinutes:    DefaultMinNoticeMinutes,
		MaxAdvanceDays:      DefaultMaxAdvanceDays,
	}
}
