package services

import (
	"context"
	"log/slog"

	"github.com/fieldwork/fsm_backend/internal/core/domain"
	portsrepo "github.com/fieldwork/fsm_backend/internal/core/ports/repositories"
	portssvc "github.com/fieldwork/fsm_backend/internal/core/ports/services"
	"github.com/fieldwork/fsm_backend/internal/dto"
)

// journalGenerator turns business events into auto-generated journal entries.
// Both generators check for an existing entry first and delegate the write.
type journalGenerator struct {
	BaseService
	resolver    portssvc.IdempotencyResolverSvc
	writer      portssvc.EntryWriterSvc
	invoiceRepo portsrepo.InvoiceReader
	jobRepo     portsrepo.JobRepositoryFacade
	chart       domain.ChartMapping
}

// NewGeneratorService creates the invoice and job-completion generators.
func NewGeneratorService(
	resolver portssvc.IdempotencyResolverSvc,
	writer portssvc.EntryWriterSvc,
	invoiceRepo portsrepo.InvoiceReader,
	jobRepo portsrepo.JobRepositoryFacade,
	chart domain.ChartMapping,
) portssvc.GeneratorSvcFacade {
	return &journalGenerator{
		resolver:    resolver,
		writer:      writer,
		invoiceRepo: invoiceRepo,
		jobRepo:     jobRepo,
		chart:       chart,
	}
}

var _ portssvc.GeneratorSvcFacade = (*journalGenerator)(nil)

// existingEntry short-circuits generation when the source already has an entry.
func (g *journalGenerator) existingEntry(ctx context.Context, sourceType domain.SourceType, sourceID string) (string, bool, error) {
	entryID, found, err := g.resolver.FindExisting(ctx, sourceType, sourceID)
	if err != nil {
		return "", false, err
	}
	if found {
		g.LogDebug(ctx, "Journal entry already generated",
			slog.String("source_type", string(sourceType)),
			slog.String("source_id", sourceID),
			slog.String("entry_id", entryID))
	}
	return entryID, found, nil
}

func (g *journalGenerator) write(ctx context.Context, req dto.CreateAutoJournalEntryRequest) (string, error) {
	res, err := g.writer.Create(ctx, req)
	if err != nil {
		return "", err
	}
	return res.ID, nil
}
