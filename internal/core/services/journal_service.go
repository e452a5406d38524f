package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fieldwork/fsm_backend/internal/apperrors"
	"github.com/fieldwork/fsm_backend/internal/core/domain"
	portsrepo "github.com/fieldwork/fsm_backend/internal/core/ports/repositories"
	portssvc "github.com/fieldwork/fsm_backend/internal/core/ports/services"
	"github.com/fieldwork/fsm_backend/internal/dto"
	"github.com/fieldwork/fsm_backend/internal/utils/accounting"
	"github.com/fieldwork/fsm_backend/internal/utils/pagination"
)

// journalService exposes the ledger engine: validation, idempotency lookup,
// entry creation and read-back.
type journalService struct {
	BaseService
	portssvc.IdempotencyResolverSvc
	portssvc.EntryWriterSvc

	journalRepo portsrepo.JournalRepositoryFacade
}

// NewJournalService creates a new JournalService around the shared resolver and writer.
func NewJournalService(
	journalRepo portsrepo.JournalRepositoryFacade,
	resolver portssvc.IdempotencyResolverSvc,
	writer portssvc.EntryWriterSvc,
) portssvc.JournalSvcFacade {
	return &journalService{
		IdempotencyResolverSvc: resolver,
		EntryWriterSvc:         writer,
		journalRepo:            journalRepo,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func (s *journalService) ValidateLines(lines []dto.AutoJournalLineRequest) accounting.ValidationResult {
	return accounting.ValidateLines(dto.ToLineInputs(lines))
}

// GetEntryByID retrieves an entry together with its lines.
func (s *journalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("Journal entry %s not found", entryID))
		}
		s.LogError(ctx, err, "Failed to fetch journal entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to fetch journal entry %s: %w", entryID, err)
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch journal entry lines", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to fetch lines for journal entry %s: %w", entryID, err)
	}
	entry.Lines = lines
	return entry, nil
}

// ListEntries lists entry headers newest first; lines are not loaded.
func (s *journalService) ListEntries(ctx context.Context, sourceType domain.SourceType, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if sourceType != "" && !sourceType.Valid() {
		return nil, nil, apperrors.NewValidationError([]string{fmt.Sprintf("Unknown source type %q", sourceType)})
	}

	entries, next, err := s.journalRepo.ListEntries(ctx, sourceType, pagination.NormalizeLimit(limit), nextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, nil, err
		}
		s.LogError(ctx, err, "Failed to list journal entries", slog.String("source_type", string(sourceType)))
		return nil, nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return entries, next, nil
}
