// File: database/repository/settings/crud.go
package settingsRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"schedly/models"
)

func (r *mongoAppointmentSettingsRepo) Get(ctx context.Context, tenantID string) (*models.AppointmentSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var settings models.AppointmentSettings
	err := r.coll.FindOne(ctx, bson.M{"tenant_id": tenantID}).Decode(&settings)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *mongoAppointmentSettingsRepo) Upsert(ctx context.Context, settings *models.AppointmentSettings) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	settings.UpdatedAt = time.Now()
	filter := bson.M{"tenant_id": settings.TenantID}
	_, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": settings}, options.Update().SetUpsert(true))
	return err
}
