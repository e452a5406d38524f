package pgsql_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldwork/fsm_backend/internal/apperrors"
	"github.com/fieldwork/fsm_backend/internal/chart"
	"github.com/fieldwork/fsm_backend/internal/core/domain"
	portssvc "github.com/fieldwork/fsm_backend/internal/core/ports/services"
	"github.com/fieldwork/fsm_backend/internal/core/services"
	"github.com/fieldwork/fsm_backend/internal/dto"
	"github.com/fieldwork/fsm_backend/internal/repositories/database/pgsql"
	"github.com/fieldwork/fsm_backend/internal/testutil"
)

func setup(t *testing.T) (*pgxpool.Pool, *portssvc.ServiceContainer) {
	t.Helper()
	pool := testutil.SetupPostgres(t)
	svc := services.NewContainer(pgsql.NewRepositoryProvider(pool), domain.DefaultChartMapping())

	accounts, err := chart.DefaultChart()
	require.NoError(t, err)
	_, err = svc.Accounts.SeedAccounts(context.Background(), accounts)
	require.NoError(t, err)
	return pool, svc
}

func count(t *testing.T, pool *pgxpool.Pool, table string) int {
	t.Helper()
	var n int
	require.NoError(t, pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func insertInvoice(t *testing.T, pool *pgxpool.Pool, invoiceID, number, total string, issued time.Time) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `
		INSERT INTO invoices (invoice_id, invoice_number, customer_id, issue_date, total_amount, status)
		VALUES ($1, $2, 'cust-1', $3, $4::text::numeric, 'SENT')`,
		invoiceID, number, issued, total)
	require.NoError(t, err)
}

// Postgres is shared by every subtest; each uses its own source ids.
func TestPgxLedger(t *testing.T) {
	pool, svc := setup(t)
	ctx := context.Background()
	issued := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("invoice entry round trip", func(t *testing.T) {
		insertInvoice(t, pool, "inv-1", "INV-001", "1500.00", issued)

		entryID, err := svc.Generators.GenerateForInvoice(ctx, "inv-1")
		require.NoError(t, err)

		entry, err := svc.Journal.GetEntryByID(ctx, entryID)
		require.NoError(t, err)
		assert.Equal(t, "Invoice INV-001", entry.Description)
		assert.True(t, entry.EntryDate.Equal(issued))
		assert.Equal(t, domain.Cents(150000), entry.TotalDebits)
		require.Len(t, entry.Lines, 2)
		assert.Equal(t, "1100", entry.Lines[0].AccountCode)
		assert.Equal(t, "4000", entry.Lines[1].AccountCode)

		again, err := svc.Generators.GenerateForInvoice(ctx, "inv-1")
		require.NoError(t, err)
		assert.Equal(t, entryID, again)
	})

	t.Run("concurrent generation writes one entry", func(t *testing.T) {
		insertInvoice(t, pool, "inv-race", "INV-RACE", "42.00", issued)
		before := count(t, pool, "journal_entries")

		const workers = 8
		ids := make([]string, workers)
		errs := make([]error, workers)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				ids[i], errs[i] = svc.Generators.GenerateForInvoice(ctx, "inv-race")
			}(i)
		}
		wg.Wait()

		for i := 0; i < workers; i++ {
			require.NoError(t, errs[i])
			assert.Equal(t, ids[0], ids[i])
		}
		assert.Equal(t, before+1, count(t, pool, "journal_entries"))
	})

	t.Run("unknown account leaves nothing behind", func(t *testing.T) {
		before := count(t, pool, "journal_entries")
		lines := count(t, pool, "journal_entry_lines")

		_, err := svc.Journal.Create(ctx, dto.CreateAutoJournalEntryRequest{
			SourceType:  domain.SourceManual,
			SourceID:    "m-unknown",
			Date:        issued,
			Description: "Bad account",
			Lines: []dto.AutoJournalLineRequest{
				{AccountCode: "1010", Debit: domain.Cents(1000).Decimal()},
				{AccountCode: "9999", Credit: domain.Cents(1000).Decimal()},
			},
		})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Equal(t, before, count(t, pool, "journal_entries"))
		assert.Equal(t, lines, count(t, pool, "journal_entry_lines"))
	})

	t.Run("list entries by source type", func(t *testing.T) {
		page, next, err := svc.Journal.ListEntries(ctx, domain.SourceInvoice, 1, nil)
		require.NoError(t, err)
		require.Len(t, page, 1)
		require.NotNil(t, next)

		rest, last, err := svc.Journal.ListEntries(ctx, domain.SourceInvoice, 1, next)
		require.NoError(t, err)
		require.Len(t, rest, 1)
		assert.Nil(t, last)
		assert.NotEqual(t, page[0].EntryID, rest[0].EntryID)
	})
}
