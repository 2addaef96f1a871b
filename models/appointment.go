package models

import "time"

// Appointment is a booked record for a tenant on one date. The availability
// engine only reads these; booking workflows live in a separate system.
type Appointment struct {
	ID                string    `bson:"id" json:"id"`
	TenantID          string    `bson:"tenant_id" json:"tenant_id"`
	Date              string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	StartTime         string    `bson:"start_time" json:"start_time"`
	EndTime           string    `bson:"end_time" json:"end_time"`
	AppointmentTypeID string    `bson:"appointment_type_id,omitempty" json:"appointment_type_id,omitempty"`
	LocationID        string    `bson:"location_id" json:"location_id,omitempty"`
	AgentID           string    `bson:"agent_id,omitempty" json:"agent_id,omitempty"`
	CustomerName      string    `bson:"customer_name,omitempty" json:"customer_name,omitempty"`
	Status            string    `bson:"status" json:"status"` // e.g., "confirmed"
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
}
