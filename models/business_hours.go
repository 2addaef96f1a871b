package models

import "time"

// BusinessHours holds the recurring opening hours for one weekday.
// Weekday follows time.Weekday numbering: 0=Sunday .. 6=Saturday.
// Times are tenant-local wall clock in "HH:MM".
type BusinessHours struct {
	ID         string    `bson:"id" json:"id"`
	TenantID   string    `bson:"tenant_id" json:"tenant_id"`
	Weekday    int       `bson:"weekday" json:"weekday"`
	LocationID string    `bson:"location_id" json:"location_id,omitempty"`
	OpenTime   string    `bson:"open_time" json:"open_time"`
	CloseTime  string    `bson:"close_time" json:"close_time"`
	IsClosed   bool      `bson:"is_closed" json:"is_closed"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// DateException overrides the weekday hours for one exact calendar date
// (e.g., a public holiday or a special late opening). When present it fully
// supersedes the weekday rule for that date.
type DateException struct {
	ID         string    `bson:"id" json:"id"`
	TenantID   string    `bson:"tenant_id" json:"tenant_id"`
	Date       string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	LocationID string    `bson:"location_id" json:"location_id,omitempty"`
	OpenTime   string    `bson:"open_time,omitempty" json:"open_time,omitempty"`
	CloseTime  string    `bson:"close_time,omitempty" json:"close_time,omitempty"`
	IsClosed   bool      `bson:"is_closed" json:"is_closed"`
	Reason     string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
