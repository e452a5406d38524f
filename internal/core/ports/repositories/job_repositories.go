package repositories

import (
	"context"

	"github.com/fieldwork/fsm_backend/internal/core/domain"
)

// JobReader defines read operations for jobs
type JobReader interface {
	// FindJobByID retrieves a job, or apperrors.ErrNotFound.
	FindJobByID(ctx context.Context, jobID string) (*domain.Job, error)
}

// JobCostReader defines read operations for the cost collections of a job
type JobCostReader interface {
	ListLaborEntries(ctx context.Context, jobID string) ([]domain.LaborEntry, error)
	ListMaterialUsages(ctx context.Context, jobID string) ([]domain.MaterialUsage, error)
	ListEquipmentUsages(ctx context.Context, jobID string) ([]domain.EquipmentUsage, error)
}

// JobRepositoryFacade combines all job-related repository interfaces
type JobRepositoryFacade interface {
	JobReader
	JobCostReader
}
