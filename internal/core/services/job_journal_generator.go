package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fieldwork/fsm_backend/internal/apperrors"
	"github.com/fieldwork/fsm_backend/internal/core/domain"
	"github.com/fieldwork/fsm_backend/internal/dto"
)

// GenerateForJobCompletion moves the costs of a completed job out of inventory:
// one debit per nonzero cost category and one Inventory credit for the total.
func (g *journalGenerator) GenerateForJobCompletion(ctx context.Context, jobID string) (string, error) {
	logger := g.GetLogger(ctx).With(slog.String("job_id", jobID))

	if entryID, found, err := g.existingEntry(ctx, domain.SourceJobCompletion, jobID); err != nil || found {
		return entryID, err
	}

	job, err := g.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.NewNotFoundError("Job not found")
		}
		logger.Error("Failed to fetch job", slog.String("error", err.Error()))
		return "", fmt.Errorf("failed to fetch job %s: %w", jobID, err)
	}

	if !job.IsCompleted() {
		return "", apperrors.NewPreconditionError(fmt.Sprintf("Job %s is not completed", job.JobNumber))
	}

	costs, err := g.aggregateJobCosts(ctx, jobID)
	if err != nil {
		logger.Error("Failed to aggregate job costs", slog.String("error", err.Error()))
		return "", err
	}
	if costs.Total() == 0 {
		return "", apperrors.NewPreconditionError(fmt.Sprintf("Job %s has no costs to record", job.JobNumber))
	}

	entryDate := time.Now().UTC()
	if job.CompletedDate != nil {
		entryDate = *job.CompletedDate
	}

	reference := job.JobNumber
	entryID, err := g.write(ctx, dto.CreateAutoJournalEntryRequest{
		SourceType:  domain.SourceJobCompletion,
		SourceID:    job.JobID,
		Date:        entryDate,
		Description: fmt.Sprintf("Job completion %s - %s", job.JobNumber, job.Title),
		Reference:   &reference,
		Lines:       jobCompletionLines(g.chart, job.JobNumber, costs),
	})
	if err != nil {
		return "", err
	}

	logger.Info("Generated job completion journal entry",
		slog.String("entry_id", entryID),
		slog.String("total_cost", costs.Total().String()))
	return entryID, nil
}

// aggregateJobCosts sums each cost collection independently and rounds each sum to cents.
func (g *journalGenerator) aggregateJobCosts(ctx context.Context, jobID string) (domain.JobCosts, error) {
	var costs domain.JobCosts

	labor, err := g.jobRepo.ListLaborEntries(ctx, jobID)
	if err != nil {
		return costs, fmt.Errorf("failed to list labor entries for job %s: %w", jobID, err)
	}
	materials, err := g.jobRepo.ListMaterialUsages(ctx, jobID)
	if err != nil {
		return costs, fmt.Errorf("failed to list material usages for job %s: %w", jobID, err)
	}
	equipment, err := g.jobRepo.ListEquipmentUsages(ctx, jobID)
	if err != nil {
		return costs, fmt.Errorf("failed to list equipment usages for job %s: %w", jobID, err)
	}

	var ok [3]bool
	costs.Labor, ok[0] = sumCosts(labor, func(l domain.LaborEntry) decimal.Decimal { return l.TotalCost })
	costs.Material, ok[1] = sumCosts(materials, func(m domain.MaterialUsage) decimal.Decimal { return m.TotalCost })
	costs.Equipment, ok[2] = sumCosts(equipment, func(e domain.EquipmentUsage) decimal.Decimal { return e.TotalCost })
	if !ok[0] || !ok[1] || !ok[2] || costs.Total() > domain.MaxAmount {
		return costs, apperrors.NewPreconditionError(fmt.Sprintf("Job %s costs exceed the maximum amount of %s", jobID, domain.MaxAmount))
	}

	return costs, nil
}

func jobCompletionLines(chart domain.ChartMapping, jobNumber string, costs domain.JobCosts) []dto.AutoJournalLineRequest {
	lines := make([]dto.AutoJournalLineRequest, 0, 4)
	if costs.Labor != 0 {
		lines = append(lines, dto.AutoJournalLineRequest{
			AccountCode: chart.LaborExpense,
			Debit:       costs.Labor.Decimal(),
			Description: fmt.Sprintf("Labor for job %s", jobNumber),
		})
	}
	if costs.Material != 0 {
		lines = append(lines, dto.AutoJournalLineRequest{
			AccountCode: chart.CostOfGoodsSold,
			Debit:       costs.Material.Decimal(),
			Description: fmt.Sprintf("Materials for job %s", jobNumber),
		})
	}
	if costs.Equipment != 0 {
		lines = append(lines, dto.AutoJournalLineRequest{
			AccountCode: chart.EquipmentExpense,
			Debit:       costs.Equipment.Decimal(),
			Description: fmt.Sprintf("Equipment for job %s", jobNumber),
		})
	}
	lines = append(lines, dto.AutoJournalLineRequest{
		AccountCode: chart.Inventory,
		Credit:      costs.Total().Decimal(),
		Description: fmt.Sprintf("Inventory relief for job %s", jobNumber),
	})
	return lines
}

// sumCosts adds the decimal totals of one cost collection and rounds once to cents.
func sumCosts[T any](items []T, total func(T) decimal.Decimal) (domain.Cents, bool) {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(total(item))
	}
	return domain.CentsFromDecimalChecked(sum)
}
