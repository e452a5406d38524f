package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fieldwork/fsm_backend/internal/apperrors"
	"github.com/fieldwork/fsm_backend/internal/core/domain"
	portsrepo "github.com/fieldwork/fsm_backend/internal/core/ports/repositories"
	"github.com/fieldwork/fsm_backend/internal/models"
	"github.com/fieldwork/fsm_backend/internal/utils/mapping"
	"github.com/fieldwork/fsm_backend/internal/utils/pagination"
)

const entryColumns = `entry_id, source_type, source_id, entry_date, description, reference,
	auto_generated, status, total_debits_cents, total_credits_cents, created_at`

type SQLiteJournalRepository struct {
	BaseRepository
}

func newSQLiteJournalRepository(db *sql.DB) *SQLiteJournalRepository {
	return &SQLiteJournalRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.JournalRepositoryFacade = (*SQLiteJournalRepository)(nil)

func scanEntry(row rowScanner) (models.JournalEntry, error) {
	var (
		m                    models.JournalEntry
		entryDate, createdAt string
		reference            sql.NullString
	)
	err := row.Scan(
		&m.EntryID,
		&m.SourceType,
		&m.SourceID,
		&entryDate,
		&m.Description,
		&reference,
		&m.AutoGenerated,
		&m.Status,
		&m.TotalDebitsCents,
		&m.TotalCreditsCents,
		&createdAt,
	)
	if err != nil {
		return m, err
	}
	m.Reference = stringPtr(reference)
	if m.EntryDate, err = parseTime(entryDate); err != nil {
		return m, err
	}
	if m.CreatedAt, err = parseTime(createdAt); err != nil {
		return m, err
	}
	return m, nil
}

func (r *SQLiteJournalRepository) FindAutoEntryIDBySource(ctx context.Context, sourceType domain.SourceType, sourceID string) (string, bool, error) {
	query := `
		SELECT entry_id
		FROM journal_entries
		WHERE source_type = ? AND source_id = ? AND auto_generated = 1
		LIMIT 1;
	`
	var entryID string
	err := r.DB.QueryRowContext(ctx, query, string(sourceType), sourceID).Scan(&entryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to find journal entry for source %s/%s: %w", sourceType, sourceID, err)
	}
	return entryID, true, nil
}

func (r *SQLiteJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = ?;`

	m, err := scanEntry(r.DB.QueryRowContext(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal entry %s: %w", entryID, err)
	}
	entry := mapping.ToDomainJournalEntry(m)
	return &entry, nil
}

func (r *SQLiteJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalEntryLine, error) {
	query := `
		SELECT line_id, entry_id, line_number, account_id, account_code, debit_cents, credit_cents, description
		FROM journal_entry_lines
		WHERE entry_id = ?
		ORDER BY line_number;
	`
	rows, err := r.DB.QueryContext(ctx, query, entryID)
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

func (r *SQLiteJournalRepository) ListEntries(ctx context.Context, sourceType domain.SourceType, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE (? = '' OR source_type = ?)`
	args := []any{string(sourceType), string(sourceType)}

	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError([]string{err.Error()})
		}
		query += ` AND (entry_date, created_at, entry_id) < (?, ?, ?)`
		args = append(args, FormatTime(cursor.EntryDate), FormatTime(cursor.CreatedAt), cursor.EntryID)
	}
	query += ` ORDER BY entry_date DESC, created_at DESC, entry_id DESC LIMIT ?;`
	args = append(args, limit+1)

	rows, err := r.DB.QueryContext(ctx, query, args...)
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

	if len(entries) <= limit {
		return entries, nil, nil
	}
	entries = entries[:limit]
	last := entries[len(entries)-1]
	token := pagination.EncodeToken(pagination.Cursor{EntryDate: last.EntryDate, CreatedAt: last.CreatedAt, EntryID: last.EntryID})
	return entries, &token, nil
}

// Begin starts a unit of work backed by a database transaction.
func (r *SQLiteJournalRepository) Begin(ctx context.Context) (portsrepo.UnitOfWork, error) {
	tx, err := r.beginTx(ctx)
	if err != nil {
		return nil, err
	}
	return &sqliteUnitOfWork{
		tx:       tx,
		accounts: newSQLiteAccountRepository(tx),
		journals: &sqliteJournalWriter{db: tx},
	}, nil
}

type sqliteUnitOfWork struct {
	tx       *sql.Tx
	accounts *SQLiteAccountRepository
	journals *sqliteJournalWriter
}

var _ portsrepo.UnitOfWork = (*sqliteUnitOfWork)(nil)

func (u *sqliteUnitOfWork) Accounts() portsrepo.AccountRepositoryFacade { return u.accounts }

func (u *sqliteUnitOfWork) Journals() portsrepo.JournalEntryWriter { return u.journals }

func (u *sqliteUnitOfWork) Commit(_ context.Context) error { return commitTx(u.tx) }

func (u *sqliteUnitOfWork) Rollback(_ context.Context) error { return rollbackTx(u.tx) }

type sqliteJournalWriter struct {
	db querier
}

func (w *sqliteJournalWriter) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalEntryLine) error {
	m := mapping.ToModelJournalEntry(entry)
	headerQuery := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err := w.db.ExecContext(ctx, headerQuery,
		m.EntryID,
		m.SourceType,
		m.SourceID,
		FormatTime(m.EntryDate),
		m.Description,
		nullString(m.Reference),
		m.AutoGenerated,
		m.Status,
		m.TotalDebitsCents,
		m.TotalCreditsCents,
		FormatTime(m.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: journal entry for %s %s", apperrors.ErrDuplicate, m.SourceType, m.SourceID)
		}
		return apperrors.NewAppError(500, "failed to insert journal entry "+m.EntryID, err)
	}

	lineQuery := `
		INSERT INTO journal_entry_lines (line_id, entry_id, line_number, account_id, account_code, debit_cents, credit_cents, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`
	for _, line := range lines {
		l := mapping.ToModelJournalEntryLine(line)
		if _, err := w.db.ExecContext(ctx, lineQuery, l.LineID, l.EntryID, l.LineNumber, l.AccountID, l.AccountCode, l.DebitCents, l.CreditCents, l.Description); err != nil {
			return apperrors.NewAppError(500, fmt.Sprintf("failed to insert line %d of journal entry %s", l.LineNumber, m.EntryID), err)
		}
	}
	return nil
}
