package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/fieldwork/fsm_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every Postgres repository over one pool.
// Close releases the pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	journals := newPgxJournalRepository(dbPool)
	return &portsrepo.RepositoryProvider{
		AccountRepo:  newPgxAccountRepository(dbPool),
		JournalRepo:  journals,
		InvoiceRepo:  newPgxInvoiceRepository(dbPool),
		JobRepo:      newPgxJobRepository(dbPool),
		Transactions: journals,
		Close:        dbPool.Close,
	}
}
