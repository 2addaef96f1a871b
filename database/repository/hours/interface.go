// File: database/repository/hours/interface.go
package hoursRepo

import (
	"context"

	"schedly/database"
	"schedly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BusinessHoursRepository persists the recurring weekday hours per tenant.
// Lookup methods return (nil, nil) when no row exists.
type BusinessHoursRepository interface {
	GetForWeekday(ctx context.Context, tenantID string, weekday int, locationID string) (*models.BusinessHours, error)
	ListByTenant(ctx context.Context, tenantID string) ([]models.BusinessHours, error)
	Upsert(ctx context.Context, hours *models.BusinessHours) error
	Delete(ctx context.Context, tenantID string, weekday int, locationID string) error
	ListTenantIDs(ctx context.Context) ([]string, error)
}

type mongoBusinessHoursRepo struct {
	coll *mongo.Collection
}

// NewMongoBusinessHoursRepo constructs a new MongoDB BusinessHoursRepository.
func NewMongoBusinessHoursRepo() BusinessHoursRepository {
	return &mongoBusinessHoursRepo{
		coll: database.DB().Collection("business_hours"),
	}
}
