package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fieldwork/fsm_backend/internal/apperrors"
	"github.com/fieldwork/fsm_backend/internal/core/domain"
	portsrepo "github.com/fieldwork/fsm_backend/internal/core/ports/repositories"
	portssvc "github.com/fieldwork/fsm_backend/internal/core/ports/services"
	"github.com/fieldwork/fsm_backend/internal/dto"
	"github.com/fieldwork/fsm_backend/internal/utils/accounting"
)

type entryWriter struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	resolver    portssvc.IdempotencyResolverSvc
}

// NewEntryWriter creates the writer for auto-generated journal entries.
func NewEntryWriter(journalRepo portsrepo.JournalRepositoryFacade, resolver portssvc.IdempotencyResolverSvc) portssvc.EntryWriterSvc {
	return &entryWriter{journalRepo: journalRepo, resolver: resolver}
}

var _ portssvc.EntryWriterSvc = (*entryWriter)(nil)

// Create validates the request and writes the header and lines as one unit of work.
// A concurrent writer that already stored an entry for the same source wins; its
// id and totals are returned instead of an error.
func (w *entryWriter) Create(ctx context.Context, req dto.CreateAutoJournalEntryRequest) (*dto.CreateAutoJournalEntryResult, error) {
	logger := w.GetLogger(ctx).With(
		slog.String("source_type", string(req.SourceType)),
		slog.String("source_id", req.SourceID),
	)

	if !req.SourceType.Valid() {
		return nil, apperrors.NewValidationError([]string{fmt.Sprintf("Unknown source type %q", req.SourceType)})
	}
	if strings.TrimSpace(req.SourceID) == "" {
		return nil, apperrors.NewValidationError([]string{"Source id is required"})
	}

	inputs := dto.ToLineInputs(req.Lines)
	result := accounting.ValidateLines(inputs)
	if !result.Valid {
		logger.Warn("Rejected journal entry", slog.Any("problems", result.Errors))
		return nil, apperrors.NewValidationError(result.Errors)
	}

	entry := domain.JournalEntry{
		EntryID:       uuid.NewString(),
		SourceType:    req.SourceType,
		SourceID:      req.SourceID,
		EntryDate:     req.Date,
		Description:   req.Description,
		Reference:     req.Reference,
		AutoGenerated: true,
		Status:        domain.Draft,
		TotalDebits:   result.TotalDebits,
		TotalCredits:  result.TotalCredits,
		CreatedAt:     time.Now().UTC(),
	}

	err := withUnitOfWork(ctx, w.journalRepo, func(uow portsrepo.UnitOfWork) error {
		lines, err := resolveLines(ctx, uow.Accounts(), entry.EntryID, inputs)
		if err != nil {
			return err
		}
		return uow.Journals().SaveEntry(ctx, entry, lines)
	})

	switch {
	case err == nil:
		logger.Info("Journal entry created",
			slog.String("entry_id", entry.EntryID),
			slog.String("total_debits", entry.TotalDebits.String()))
		return newCreateResult(&entry), nil
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Info("Journal entry already exists for source, returning existing entry")
		return w.existingResult(ctx, req.SourceType, req.SourceID)
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Journal entry references unusable account", slog.String("error", err.Error()))
		return nil, err
	default:
		logger.Error("Failed to create journal entry", slog.String("error", err.Error()))
		return nil, apperrors.NewAppError(500, "failed to create journal entry", err)
	}
}

func (w *entryWriter) existingResult(ctx context.Context, sourceType domain.SourceType, sourceID string) (*dto.CreateAutoJournalEntryResult, error) {
	entryID, found, err := w.resolver.FindExisting(ctx, sourceType, sourceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to resolve existing journal entry", err)
	}
	if !found {
		return nil, apperrors.NewAppError(500, "journal entry conflicted but no existing entry was found", apperrors.ErrDuplicate)
	}

	existing, err := w.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to load existing journal entry", err)
	}
	return newCreateResult(existing), nil
}

// resolveLines maps every distinct account code to an active posting account
// and builds the persisted lines, numbered from 1 in input order.
func resolveLines(ctx context.Context, accounts portsrepo.AccountReader, entryID string, inputs []domain.LineInput) ([]domain.JournalEntryLine, error) {
	codes := make([]string, 0, len(inputs))
	seen := make(map[string]struct{}, len(inputs))
	for _, in := range inputs {
		code := strings.TrimSpace(in.AccountCode)
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}

	byCode, err := accounts.FindAccountsByCodes(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account codes: %w", err)
	}

	for _, code := range codes {
		acc, ok := byCode[code]
		if !ok || !acc.CanPost() {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("Account code %s not found, inactive, or not postable", code))
		}
	}

	lines := make([]domain.JournalEntryLine, len(inputs))
	for i, in := range inputs {
		code := strings.TrimSpace(in.AccountCode)
		lines[i] = domain.JournalEntryLine{
			LineID:      uuid.NewString(),
			EntryID:     entryID,
			LineNumber:  i + 1,
			AccountID:   byCode[code].AccountID,
			AccountCode: code,
			Debit:       domain.CentsFromDecimal(in.Debit),
			Credit:      domain.CentsFromDecimal(in.Credit),
			Description: in.Description,
		}
	}
	return lines, nil
}

func newCreateResult(entry *domain.JournalEntry) *dto.CreateAutoJournalEntryResult {
	return &dto.CreateAutoJournalEntryResult{
		ID:           entry.EntryID,
		Balanced:     entry.TotalDebits == entry.TotalCredits,
		TotalDebits:  entry.TotalDebits.Decimal(),
		TotalCredits: entry.TotalCredits.Decimal(),
	}
}
