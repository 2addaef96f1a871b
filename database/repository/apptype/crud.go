// File: database/repository/apptype/crud.go
package apptypeRepo

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

func (r *mongoAppointmentTypeRepo) GetByID(ctx context.Context, tenantID, typeID string) (*models.AppointmentType, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"tenant_id": tenantID, "id": typeID}
	var at models.AppointmentType
	err := r.coll.FindOne(ctx, filter).Decode(&at)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &at, nil
}

func (r *mongoAppointmentTypeRepo) List(ctx context.Context, tenantID string) ([]models.AppointmentType, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"tenant_id": tenantID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var all []models.AppointmentType
	if err := cursor.All(ctx, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func (r *mongoAppointmentTypeRepo) Create(ctx context.Context, at *models.AppointmentType) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if at.ID == "" {
		at.ID = uuid.New().String()
	}
	now := time.Now()
	at.CreatedAt = now
	at.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, at)
	return err
}

func (r *mongoAppointmentTypeRepo) Update(ctx context.Context, at *models.AppointmentType) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	at.UpdatedAt = time.Now()
	filter := bson.M{"tenant_id": at.TenantID, "id": at.ID}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": at})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoAppointmentTypeRepo) Delete(ctx context.Context, tenantID, typeID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"tenant_id": tenantID, "id": typeID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
