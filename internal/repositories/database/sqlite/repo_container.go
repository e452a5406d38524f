package sqlite

import (
	"database/sql"

	portsrepo "github.com/fieldwork/fsm_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every SQLite repository over one handle.
// Close closes the handle.
func NewRepositoryProvider(db *sql.DB) *portsrepo.RepositoryProvider {
	journals := newSQLiteJournalRepository(db)
	return &portsrepo.RepositoryProvider{
		AccountRepo:  newSQLiteAccountRepository(db),
		JournalRepo:  journals,
		InvoiceRepo:  &SQLiteInvoiceRepository{db: db},
		JobRepo:      &SQLiteJobRepository{db: db},
		Transactions: journals,
		Close:        func() { _ = db.Close() },
	}
}
