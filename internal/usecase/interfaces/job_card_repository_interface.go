package interfaces

import (
	"context"

	"jobcard_service/internal/domain/entities"
)

// IJobCardRepository abstracts DynamoDB persistence for the JobCard aggregate.
//
// Get returns a zero-ID card when nothing is stored under the id; use cases
// translate that into their own not-found error. Save replaces the whole
// aggregate: all mutating operations are serialized per card by the engine, so
// a full put is safe.

type IJobCardRepository interface {
	Create(ctx context.Context, card entities.JobCard) (entities.JobCard, error)
	GetByID(ctx context.Context, id string) (entities.JobCard, error)
	GetByJobNumber(ctx context.Context, jobNumber string) (entities.JobCard, error)
	Save(ctx context.Context, card entities.JobCard) (entities.JobCard, error)
	ListByTechnician(ctx context.Context, technicianID string) ([]entities.JobCard, error)
}
