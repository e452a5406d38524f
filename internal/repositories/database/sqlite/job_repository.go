package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fieldwork/fsm_backend/internal/apperrors"
	"github.com/fieldwork/fsm_backend/internal/core/domain"
	portsrepo "github.com/fieldwork/fsm_backend/internal/core/ports/repositories"
	"github.com/fieldwork/fsm_backend/internal/models"
	"github.com/fieldwork/fsm_backend/internal/utils/mapping"
)

type SQLiteJobRepository struct {
	db *sql.DB
}

var _ portsrepo.JobRepositoryFacade = (*SQLiteJobRepository)(nil)

func (r *SQLiteJobRepository) FindJobByID(ctx context.Context, jobID string) (*domain.Job, error) {
	query := `
		SELECT job_id, job_number, customer_id, title, status, completed_date
		FROM jobs
		WHERE job_id = ?;
	`
	var (
		m         models.Job
		completed sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, jobID).Scan(&m.JobID, &m.JobNumber, &m.CustomerID, &m.Title, &m.Status, &completed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find job %s: %w", jobID, err)
	}
	if completed.Valid {
		t, err := parseTime(completed.String)
		if err != nil {
			return nil, err
		}
		m.CompletedDate = &t
	}

	job := mapping.ToDomainJob(m)
	return &job, nil
}

func (r *SQLiteJobRepository) ListLaborEntries(ctx context.Context, jobID string) ([]domain.LaborEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT labor_entry_id, job_id, hours, hourly_rate, total_cost
		FROM labor_entries
		WHERE job_id = ?;
	`, jobID)
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

func (r *SQLiteJobRepository) ListMaterialUsages(ctx context.Context, jobID string) ([]domain.MaterialUsage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT material_usage_id, job_id, material_id, quantity, unit_cost, total_cost
		FROM material_usages
		WHERE job_id = ?;
	`, jobID)
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

func (r *SQLiteJobRepository) ListEquipmentUsages(ctx context.Context, jobID string) ([]domain.EquipmentUsage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT equipment_usage_id, job_id, equipment_id, hours, hourly_rate, total_cost
		FROM equipment_usages
		WHERE job_id = ?;
	`, jobID)
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
