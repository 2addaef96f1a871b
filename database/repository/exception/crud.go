// File: database/repository/exception/crud.go
package exceptionRepo

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

func (r *mongoDateExceptionRepo) GetForDate(ctx context.Context, tenantID, date, locationID string) (*models.DateException, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"tenant_id": tenantID, "date": date, "location_id": locationID}
	var exc models.DateException
	err := r.coll.FindOne(ctx, filter).Decode(&exc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &exc, nil
}

func (r *mongoDateExceptionRepo) ListByTenant(ctx context.Context, tenantID, fromDate string) ([]models.DateException, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"tenant_id": tenantID}
	if fromDate != "" {
		filter["date"] = bson.M{"$gte": fromDate}
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var all []models.DateException
	if err := cursor.All(ctx, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func (r *mongoDateExceptionRepo) Upsert(ctx context.Context, exc *models.DateException) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if exc.ID == "" {
		exc.ID = uuid.New().String()
	}
	if exc.CreatedAt.IsZero() {
		exc.CreatedAt = time.Now()
	}

	filter := bson.M{"tenant_id": exc.TenantID, "date": exc.Date, "location_id": exc.LocationID}
	update := bson.M{"$set": exc}
	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *mongoDateExceptionRepo) Delete(ctx context.Context, tenantID, date, locationID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"tenant_id": tenantID, "date": date, "location_id": locationID}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
