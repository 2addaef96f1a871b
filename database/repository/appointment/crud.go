// File: database/repository/appointment/crud.go
package appointmentRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"schedly/models"
)

func (r *mongoAppointmentRepo) ListByDate(ctx context.Context, tenantID, date, locationID, agentID string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"tenant_id": tenantID,
		"date":      date,
		"status":    bson.M{"$ne": "cancelled"},
	}
	if locationID != "" {
		filter["location_id"] = locationID
	}
	if agentID != "" {
		filter["agent_id"] = agentID
	}

	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}
