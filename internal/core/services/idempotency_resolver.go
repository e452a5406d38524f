package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fieldwork/fsm_backend/internal/core/domain"
	portsrepo "github.com/fieldwork/fsm_backend/internal/core/ports/repositories"
	portssvc "github.com/fieldwork/fsm_backend/internal/core/ports/services"
)

type idempotencyResolver struct {
	BaseService
	journalRepo portsrepo.JournalEntryReader
}

// NewIdempotencyResolver creates a resolver over persisted auto-generated entries.
func NewIdempotencyResolver(journalRepo portsrepo.JournalEntryReader) portssvc.IdempotencyResolverSvc {
	return &idempotencyResolver{journalRepo: journalRepo}
}

var _ portssvc.IdempotencyResolverSvc = (*idempotencyResolver)(nil)

// FindExisting only considers auto-generated entries; manual entries never block generation.
func (r *idempotencyResolver) FindExisting(ctx context.Context, sourceType domain.SourceType, sourceID string) (string, bool, error) {
	entryID, found, err := r.journalRepo.FindAutoEntryIDBySource(ctx, sourceType, sourceID)
	if err != nil {
		r.LogError(ctx, err, "Failed to look up existing journal entry",
			slog.String("source_type", string(sourceType)),
			slog.String("source_id", sourceID))
		return "", false, fmt.Errorf("failed to look up entry for %s %s: %w", sourceType, sourceID, err)
	}
	return entryID, found, nil
}
