package services

import (
	"context"

	"github.com/fieldwork/fsm_backend/internal/core/domain"
	"github.com/fieldwork/fsm_backend/internal/dto"
	"github.com/fieldwork/fsm_backend/internal/utils/accounting"
)

// LedgerValidatorSvc checks candidate line sets without touching storage
type LedgerValidatorSvc interface {
	// ValidateLines checks structure and balance of the given lines.
	ValidateLines(lines []dto.AutoJournalLineRequest) accounting.ValidationResult
}

// IdempotencyResolverSvc looks up entries already generated for a source
type IdempotencyResolverSvc interface {
	// FindExisting returns the id of the auto-generated entry for (sourceType, sourceID).
	// The boolean is false when none exists.
	FindExisting(ctx context.Context, sourceType domain.SourceType, sourceID string) (string, bool, error)
}

// EntryWriterSvc atomically validates and persists auto-generated entries
type EntryWriterSvc interface {
	// Create validates the request, resolves account codes and persists the entry
	// and its lines as one unit of work.
	Create(ctx context.Context, req dto.CreateAutoJournalEntryRequest) (*dto.CreateAutoJournalEntryResult, error)
}

// JournalEntryReaderSvc reads persisted entries back
type JournalEntryReaderSvc interface {
	// GetEntryByID retrieves an entry with its lines.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries lists entry headers newest first, optionally for one source type.
	ListEntries(ctx context.Context, sourceType domain.SourceType, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// InvoiceJournalGeneratorSvc turns an issued invoice into a journal entry
type InvoiceJournalGeneratorSvc interface {
	GenerateForInvoice(ctx context.Context, invoiceID string) (string, error)
}

// JobCompletionJournalGeneratorSvc turns a completed job into a journal entry
type JobCompletionJournalGeneratorSvc interface {
	GenerateForJobCompletion(ctx context.Context, jobID string) (string, error)
}

// JournalSvcFacade combines the ledger-engine service interfaces
type JournalSvcFacade interface {
	LedgerValidatorSvc
	IdempotencyResolverSvc
	EntryWriterSvc
	JournalEntryReaderSvc
}

// GeneratorSvcFacade combines the event generators
type GeneratorSvcFacade interface {
	InvoiceJournalGeneratorSvc
	JobCompletionJournalGeneratorSvc
}
