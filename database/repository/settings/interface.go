// File: database/repository/settings/interface.go
package settingsRepo

import (
	"context"

	"schedly/database"
	"schedly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentSettingsRepository persists tenant-wide scheduling defaults.
// Get returns (nil, nil) when the tenant never saved settings; callers
// substitute the built-in defaults.
type AppointmentSettingsRepository interface {
	Get(ctx context.Context, tenantID string) (*models.AppointmentSettings, error)
	Upsert(ctx context.Context, settings *models.AppointmentSettings) error
}

type mongoAppointmentSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentSettingsRepo constructs a new MongoDB AppointmentSettingsRepository.
func NewMongoAppointmentSettingsRepo() AppointmentSettingsRepository {
	return &mongoAppointmentSettingsRepo{
		coll: database.DB().Collection("appointment_settings"),
	}
}
