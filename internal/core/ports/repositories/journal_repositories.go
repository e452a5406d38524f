package repositories

import (
	"context"

	"github.com/fieldwork/fsm_backend/internal/core/domain"
)

// JournalEntryReader defines read operations for journal entries
type JournalEntryReader interface {
	// FindAutoEntryIDBySource returns the id of the auto-generated entry for a source.
	// The boolean is false when no such entry exists.
	FindAutoEntryIDBySource(ctx context.Context, sourceType domain.SourceType, sourceID string) (string, bool, error)

	// FindEntryByID retrieves an entry header by id.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindLinesByEntryID retrieves the lines of an entry ordered by line number.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalEntryLine, error)

	// ListEntries returns entry headers newest first. An empty sourceType lists all types.
	// The returned token is nil on the last page.
	ListEntries(ctx context.Context, sourceType domain.SourceType, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// JournalEntryWriter defines write operations for journal entries.
// It is only reachable through a UnitOfWork.
type JournalEntryWriter interface {
	// SaveEntry inserts the header and all lines. A second auto-generated entry
	// for the same source fails with apperrors.ErrDuplicate.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalEntryLine) error
}

// JournalRepositoryFacade combines the journal read interfaces with unit-of-work support
type JournalRepositoryFacade interface {
	JournalEntryReader
	UnitOfWorkFactory
}
