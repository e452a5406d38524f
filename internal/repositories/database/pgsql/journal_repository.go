package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fieldwork/fsm_backend/internal/apperrors"
	"github.com/fieldwork/fsm_backend/internal/core/domain"
	portsrepo "github.com/fieldwork/fsm_backend/internal/core/ports/repositories"
	"github.com/fieldwork/fsm_backend/internal/models"
	"github.com/fieldwork/fsm_backend/internal/utils/mapping"
	"github.com/fieldwork/fsm_backend/internal/utils/pagination"
)

const entryColumns = `entry_id, source_type, source_id, entry_date, description, reference,
	auto_generated, status, total_debits_cents, total_credits_cents, created_at`

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entry data.
func newPgxJournalRepository(pool *pgxpool.Pool) *PgxJournalRepository {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

func scanEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.SourceType,
		&m.SourceID,
		&m.EntryDate,
		&m.Description,
		&m.Reference,
		&m.AutoGenerated,
		&m.Status,
		&m.TotalDebitsCents,
		&m.TotalCreditsCents,
		&m.CreatedAt,
	)
	return m, err
}

// FindAutoEntryIDBySource returns the id of the auto-generated entry for a source.
func (r *PgxJournalRepository) FindAutoEntryIDBySource(ctx context.Context, sourceType domain.SourceType, sourceID string) (string, bool, error) {
	query := `
		SELECT entry_id
		FROM journal_entries
		WHERE source_type = $1 AND source_id = $2 AND auto_generated
		LIMIT 1;
	`
	var entryID string
	err := r.Pool.QueryRow(ctx, query, string(sourceType), sourceID).Scan(&entryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to find journal entry for source %s/%s: %w", sourceType, sourceID, err)
	}
	return entryID, true, nil
}

// FindEntryByID retrieves an entry header by its ID.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`

	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal entry %s: %w", entryID, err)
	}
	entry := mapping.ToDomainJournalEntry(m)
	return &entry, nil
}

// FindLinesByEntryID retrieves all lines of an entry ordered by line number.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalEntryLine, error) {
	query := `
		SELECT line_id, entry_id, line_number, account_id, account_code, debit_cents, credit_cents, description
		FROM journal_entry_lines
		WHERE entry_id = $1
		ORDER BY line_number;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for journal entry %s: %w", entryID, err)
	}
	defer rows.Close()

	var ms []models.JournalEntryLine
	for rows.Next() {
		var m models.JournalEntryLine
		if err := rows.Scan(&m.LineID, &m.EntryID, &m.LineNumber, &m.AccountID, &m.AccountCode, &m.DebitCents, &m.CreditCents, &m.Description); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry line: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal entry lines: %w", err)
	}
	return mapping.ToDomainJournalEntryLineSlice(ms), nil
}

// ListEntries returns entry headers ordered by entry date, creation time and id, newest first.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, sourceType domain.SourceType, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := []any{string(sourceType)}
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE ($1 = '' OR source_type = $1)`

	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError([]string{err.Error()})
		}
		args = append(args, cursor.EntryDate, cursor.CreatedAt, cursor.EntryID)
		query += ` AND (entry_date, created_at, entry_id) < ($2, $3, $4)`
	}
	args = append(args, limit+1)
	query += fmt.Sprintf(` ORDER BY entry_date DESC, created_at DESC, entry_id DESC LIMIT $%d;`, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, mapping.ToDomainJournalEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating journal entries: %w", err)
	}

	return pageOf(entries, limit)
}

// pageOf trims a limit+1 result to limit and builds the token for the next page.
func pageOf(entries []domain.JournalEntry, limit int) ([]domain.JournalEntry, *string, error) {
	if len(entries) <= limit {
		return entries, nil, nil
	}
	entries = entries[:limit]
	last := entries[len(entries)-1]
	token := pagination.EncodeToken(pagination.Cursor{
		EntryDate: last.EntryDate,
		CreatedAt: last.CreatedAt,
		EntryID:   last.EntryID,
	})
	return entries, &token, nil
}

// Begin starts a unit of work backed by a database transaction.
func (r *PgxJournalRepository) Begin(ctx context.Context) (portsrepo.UnitOfWork, error) {
	tx, err := r.beginTx(ctx)
	if err != nil {
		return nil, err
	}
	return &pgxUnitOfWork{
		tx:       tx,
		accounts: newPgxAccountRepository(tx),
		journals: &pgxJournalWriter{db: tx},
	}, nil
}

// pgxUnitOfWork binds account and journal access to one pgx transaction.
type pgxUnitOfWork struct {
	tx       pgx.Tx
	accounts *PgxAccountRepository
	journals *pgxJournalWriter
}

var _ portsrepo.UnitOfWork = (*pgxUnitOfWork)(nil)

func (u *pgxUnitOfWork) Accounts() portsrepo.AccountRepositoryFacade { return u.accounts }

func (u *pgxUnitOfWork) Journals() portsrepo.JournalEntryWriter { return u.journals }

func (u *pgxUnitOfWork) Commit(ctx context.Context) error { return commitTx(ctx, u.tx) }

// Rollback is a no-op once the transaction has been committed.
func (u *pgxUnitOfWork) Rollback(ctx context.Context) error { return rollbackTx(ctx, u.tx) }

type pgxJournalWriter struct {
	db querier
}

// SaveEntry inserts the header, then all lines in one batch.
func (w *pgxJournalWriter) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalEntryLine) error {
	m := mapping.ToModelJournalEntry(entry)
	headerQuery := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := w.db.Exec(ctx, headerQuery,
		m.EntryID,
		m.SourceType,
		m.SourceID,
		m.EntryDate,
		m.Description,
		m.Reference,
		m.AutoGenerated,
		m.Status,
		m.TotalDebitsCents,
		m.TotalCreditsCents,
		m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: journal entry for %s %s", apperrors.ErrDuplicate, m.SourceType, m.SourceID)
		}
		return apperrors.NewAppError(500, "failed to insert journal entry "+m.EntryID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_entry_lines (line_id, entry_id, line_number, account_id, account_code, debit_cents, credit_cents, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for _, line := range lines {
		l := mapping.ToModelJournalEntryLine(line)
		batch.Queue(lineQuery, l.LineID, l.EntryID, l.LineNumber, l.AccountID, l.AccountCode, l.DebitCents, l.CreditCents, l.Description)
	}

	if err := w.db.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert lines for journal entry "+m.EntryID, err)
	}
	return nil
}
