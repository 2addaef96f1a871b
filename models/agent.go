package models

import "time"

// AgentWindow is a single working range within a day, tenant-local "HH:MM".
type AgentWindow struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// AgentDay holds one weekday of an agent's working schedule.
type AgentDay struct {
	Enabled bool          `bson:"enabled" json:"enabled"`
	Windows []AgentWindow `bson:"windows,omitempty" json:"windows,omitempty"`
}

// AgentAvailability holds working windows indexed by weekday
// (0=Sunday .. 6=Saturday). An agent with no stored availability is
// treated as unconstrained.
type AgentAvailability struct {
	Days [7]AgentDay `bson:"days" json:"days"`
}

// Agent is a bookable staff member of a tenant.
type Agent struct {
	ID           string             `bson:"id" json:"id"`
	TenantID     string             `bson:"tenant_id" json:"tenant_id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email,omitempty" json:"email,omitempty"`
	Availability *AgentAvailability `bson:"availability,omitempty" json:"availability,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
