package repositories

import (
	"context"
)

// UnitOfWork is one commit/rollback boundary. Everything read or written
// through it is visible to other callers only after Commit succeeds.
type UnitOfWork interface {
	// Accounts returns the account repository bound to the unit of work.
	Accounts() AccountRepositoryFacade

	// Journals returns a journal writer bound to the unit of work.
	Journals() JournalEntryWriter

	// Commit makes all writes visible atomically.
	Commit(ctx context.Context) error

	// Rollback discards all writes. It is a no-op after Commit.
	Rollback(ctx context.Context) error
}

// UnitOfWorkFactory starts units of work
type UnitOfWorkFactory interface {
	// Begin starts a new unit of work backed by a database transaction.
	Begin(ctx context.Context) (UnitOfWork, error)
}

// RepositoryProvider holds all repository interfaces needed by services.
type RepositoryProvider struct {
	AccountRepo AccountRepositoryFacade
	JournalRepo JournalRepositoryFacade
	InvoiceRepo InvoiceReader
	JobRepo     JobRepositoryFacade

	// Transactions starts units of work spanning accounts and journals.
	Transactions UnitOfWorkFactory

	// Close releases the underlying connections.
	Close func()
}
