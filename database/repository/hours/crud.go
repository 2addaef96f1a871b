// File: database/repository/hours/crud.go
package hoursRepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"schedly/models"
)

func (r *mongoBusinessHoursRepo) GetForWeekday(ctx context.Context, tenantID string, weekday int, locationID string) (*models.BusinessHours, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"tenant_id": tenantID, "weekday": weekday, "location_id": locationID}
	var hours models.BusinessHours
	err := r.coll.FindOne(ctx, filter).Decode(&hours)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hours, nil
}

func (r *mongoBusinessHoursRepo) ListByTenant(ctx context.Context, tenantID string) ([]models.BusinessHours, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "location_id", Value: 1}, {Key: "weekday", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"tenant_id": tenantID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var all []models.BusinessHours
	if err := cursor.All(ctx, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func (r *mongoBusinessHoursRepo) Upsert(ctx context.Context, hours *models.BusinessHours) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if hours.ID == "" {
		hours.ID = uuid.New().String()
	}
	hours.UpdatedAt = time.Now()

	filter := bson.M{"tenant_id": hours.TenantID, "weekday": hours.Weekday, "location_id": hours.LocationID}
	update := bson.M{"$set": hours}
	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *mongoBusinessHoursRepo) Delete(ctx context.Context, tenantID string, weekday int, locationID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"tenant_id": tenantID, "weekday": weekday, "location_id": locationID}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoBusinessHoursRepo) ListTenantIDs(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	raw, err := r.coll.Distinct(ctx, "tenant_id", bson.M{})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			ids = append(ids, s)
		}
	}
	return ids, nil
}
