// File: database/repository/exception/interface.go
package exceptionRepo

import (
	"context"

	"schedly/database"
	"schedly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// DateExceptionRepository persists per-date overrides of the weekday hours.
// GetForDate returns (nil, nil) when the date has no exception.
type DateExceptionRepository interface {
	GetForDate(ctx context.Context, tenantID, date, locationID string) (*models.DateException, error)
	ListByTenant(ctx context.Context, tenantID, fromDate string) ([]models.DateException, error)
	Upsert(ctx context.Context, exc *models.DateException) error
	Delete(ctx context.Context, tenantID, date, locationID string) error
}

type mongoDateExceptionRepo struct {
	coll *mongo.Collection
}

// NewMongoDateExceptionRepo constructs a new MongoDB DateExceptionRepository.
func NewMongoDateExceptionRepo() DateExceptionRepository {
	return &mongoDateExceptionRepo{
		coll: database.DB().Collection("date_exceptions"),
	}
}
