package models

import "time"

// AppointmentType is a bookable service offered by a tenant (e.g., "Consultation").
// Its duration and buffer govern slot granularity when a request filters by type.
type AppointmentType struct {
	ID                   string    `bson:"id" json:"id"`
	TenantID             string    `bson:"tenant_id" json:"tenant_id"`
	Name                 string    `bson:"name" json:"name"`
	Duration             int       `bson:"duration" json:"duration"`                                           // minutes, > 0
	BufferTime           int       `bson:"buffer_time" json:"buffer_time"`                                     // minutes, >= 0
	MaxDailyAppointments *int      `bson:"max_daily_appointments,omitempty" json:"max_daily_appointments,omitempty"` // nil = uncapped
	IsActive             bool      `bson:"is_active" json:"is_active"`
	CreatedAt            time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt            time.Time `bson:"updated_at" json:"updated_at"`
}
