// File: database/repository/apptype/interface.go
package apptypeRepo

import (
	"context"

	"schedly/database"
	"schedly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentTypeRepository persists a tenant's bookable service types.
// GetByID returns (nil, nil) when the type does not exist.
type AppointmentTypeRepository interface {
	GetByID(ctx context.Context, tenantID, typeID string) (*models.AppointmentType, error)
	List(ctx context.Context, tenantID string) ([]models.AppointmentType, error)
	Create(ctx context.Context, at *models.AppointmentType) error
	Update(ctx context.Context, at *models.AppointmentType) error
	Delete(ctx context.Context, tenantID, typeID string) error
}

type mongoAppointmentTypeRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentTypeRepo constructs a new MongoDB AppointmentTypeRepository.
func NewMongoAppointmentTypeRepo() AppointmentTypeRepository {
	return &mongoAppointmentTypeRepo{
		coll: database.DB().Collection("appointment_types"),
	}
}
