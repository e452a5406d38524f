package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fieldwork/fsm_backend/internal/apperrors"
	"github.com/fieldwork/fsm_backend/internal/core/domain"
	portsrepo "github.com/fieldwork/fsm_backend/internal/core/ports/repositories"
	"github.com/fieldwork/fsm_backend/internal/models"
	"github.com/fieldwork/fsm_backend/internal/utils/mapping"
)

type PgxJobRepository struct {
	pool *pgxpool.Pool
}

func newPgxJobRepository(pool *pgxpool.Pool) *PgxJobRepository {
	return &PgxJobRepository{pool: pool}
}

var _ portsrepo.JobRepositoryFacade = (*PgxJobRepository)(nil)

// FindJobByID retrieves a job by its ID.
func (r *PgxJobRepository) FindJobByID(ctx context.Context, jobID string) (*domain.Job, error) {
	query := `
		SELECT job_id, job_number, customer_id, title, status, completed_date
		FROM jobs
		WHERE job_id = $1;
	`
	var m models.Job
	err := r.pool.QueryRow(ctx, query, jobID).Scan(&m.JobID, &m.JobNumber, &m.CustomerID, &m.Title, &m.Status, &m.CompletedDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find job %s: %w", jobID, err)
	}
	job := mapping.ToDomainJob(m)
	return &job, nil
}

func (r *PgxJobRepository) ListLaborEntries(ctx context.Context, jobID string) ([]domain.LaborEntry, error) {
	query := `
		SELECT labor_entry_id, job_id, hours, hourly_rate, total_cost
		FROM labor_entries
		WHERE job_id = $1;
	`
	rows, err := r.pool.Query(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to query labor entries: %w", err)
	}
	defer rows.Close()

	var out []domain.LaborEntry
	for rows.Next() {
		var m models.LaborEntry
		if err := rows.Scan(&m.LaborEntryID, &m.JobID, &m.Hours, &m.HourlyRate, &m.TotalCost); err != nil {
			return nil, fmt.Errorf("failed to scan labor entry: %w", err)
		}
		out = append(out, mapping.ToDomainLaborEntry(m))
	}
	return out, rows.Err()
}

func (r *PgxJobRepository) ListMaterialUsages(ctx context.Context, jobID string) ([]domain.MaterialUsage, error) {
	query := `
		SELECT material_usage_id, job_id, material_id, quantity, unit_cost, total_cost
		FROM material_usages
		WHERE job_id = $1;
	`
	rows, err := r.pool.Query(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to query material usages: %w", err)
	}
	defer rows.Close()

	var out []domain.MaterialUsage
	for rows.Next() {
		var m models.MaterialUsage
		if err := rows.Scan(&m.MaterialUsageID, &m.JobID, &m.MaterialID, &m.Quantity, &m.UnitCost, &m.TotalCost); err != nil {
			return nil, fmt.Errorf("failed to scan material usage: %w", err)
		}
		out = append(out, mapping.ToDomainMaterialUsage(m))
	}
	return out, rows.Err()
}

func (r *PgxJobRepository) ListEquipmentUsages(ctx context.Context, jobID string) ([]domain.EquipmentUsage, error) {
	query := `
		SELECT equipment_usage_id, job_id, equipment_id, hours, hourly_rate, total_cost
		FROM equipment_usages
		WHERE job_id = $1;
	`
	rows, err := r.pool.Query(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to query equipment usages: %w", err)
	}
	defer rows.Close()

	var out []domain.EquipmentUsage
	for rows.Next() {
		var m models.EquipmentUsage
		if err := rows.Scan(&m.EquipmentUsageID, &m.JobID, &m.EquipmentID, &m.Hours, &m.HourlyRate, &m.TotalCost); err != nil {
			return nil, fmt.Errorf("failed to scan equipment usage: %w", err)
		}
		out = append(out, mapping.ToDomainEquipmentUsage(m))
	}
	return out, rows.Err()
}
