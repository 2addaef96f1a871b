// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"

	"schedly/database"
	"schedly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentRepository reads the booked appointments for a tenant. The
// availability engine uses it purely as an overlap-exclusion snapshot;
// booking creation and cancellation belong to a separate system.
type AppointmentRepository interface {
	// ListByDate returns all appointments for the tenant on the given date,
	// optionally narrowed to one location and/or agent. Empty filter values
	// mean "any".
	ListByDate(ctx context.Context, tenantID, date, locationID, agentID string) ([]models.Appointment, error)
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}
