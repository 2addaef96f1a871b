// File: database/repository/agent/interface.go
package agentRepo

import (
	"context"

	"schedly/database"
	"schedly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AgentRepository persists a tenant's bookable staff members.
// GetByID returns (nil, nil) when the agent does not exist.
type AgentRepository interface {
	GetByID(ctx context.Context, tenantID, agentID string) (*models.Agent, error)
	List(ctx context.Context, tenantID string) ([]models.Agent, error)
	Create(ctx context.Context, agent *models.Agent) error
	UpdateAvailability(ctx context.Context, tenantID, agentID string, availability *models.AgentAvailability) error
	Delete(ctx context.Context, tenantID, agentID string) error
}

type mongoAgentRepo struct {
	coll *mongo.Collection
}

// NewMongoAgentRepo constructs a new MongoDB AgentRepository.
func NewMongoAgentRepo() AgentRepository {
	return &mongoAgentRepo{
		coll: database.DB().Collection("agents"),
	}
}
