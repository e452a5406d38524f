// Package testutil provides migrated databases and fixtures for tests.
package testutil

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fieldwork/fsm_backend/internal/chart"
	"github.com/fieldwork/fsm_backend/internal/core/domain"
	"github.com/fieldwork/fsm_backend/internal/platform/database"
	"github.com/fieldwork/fsm_backend/internal/repositories/database/sqlite"
	"github.com/fieldwork/fsm_backend/internal/utils/mapping"
)

// DiscardLogger is a logger that writes nowhere.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SetupSQLite returns a migrated SQLite database in a temporary directory.
func SetupSQLite(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.RunMigrations(db, database.DriverSQLite, database.Up, DiscardLogger()); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	return db
}

// SeedDefaultChart inserts the built-in chart of accounts.
func SeedDefaultChart(t *testing.T, db *sql.DB) {
	t.Helper()

	accounts, err := chart.DefaultChart()
	if err != nil {
		t.Fatalf("load default chart: %v", err)
	}
	for _, acc := range accounts {
		InsertAccount(t, db, acc)
	}
}

// InsertAccount inserts an account, generating an id when none is set.
func InsertAccount(t *testing.T, db *sql.DB, acc domain.Account) string {
	t.Helper()

	if acc.AccountID == "" {
		acc.AccountID = uuid.NewString()
	}
	m := mapping.ToModelAccount(acc)
	_, err := db.Exec(`
		INSERT INTO accounts (account_id, code, name, account_type, balance_type, is_active, is_posting)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.AccountID, m.Code, m.Name, m.AccountType, m.BalanceType, m.IsActive, m.IsPosting)
	if err != nil {
		t.Fatalf("insert account %s: %v", acc.Code, err)
	}
	return acc.AccountID
}

// SetAccountActive flips the active flag of an account.
func SetAccountActive(t *testing.T, db *sql.DB, code string, active bool) {
	t.Helper()
	if _, err := db.Exec(`UPDATE accounts SET is_active = ? WHERE code = ?`, active, code); err != nil {
		t.Fatalf("update account %s: %v", code, err)
	}
}

// InsertInvoice inserts an invoice with the given total.
func InsertInvoice(t *testing.T, db *sql.DB, invoiceID, number, total string, issued time.Time) {
	t.Helper()
	_, err := db.Exec(`
		INSERT INTO invoices (invoice_id, invoice_number, customer_id, job_id, issue_date, total_amount, status)
		VALUES (?, ?, ?, NULL, ?, ?, ?)`,
		invoiceID, number, "cust-1", sqlite.FormatTime(issued), decimal.RequireFromString(total).String(), string(domain.InvoiceSent))
	if err != nil {
		t.Fatalf("insert invoice %s: %v", invoiceID, err)
	}
}

// InsertJob inserts a job. completed may be nil.
func InsertJob(t *testing.T, db *sql.DB, jobID, number string, status domain.JobStatus, completed *time.Time) {
	t.Helper()

	var completedDate sql.NullString
	if completed != nil {
		completedDate = sql.NullString{String: sqlite.FormatTime(*completed), Valid: true}
	}
	_, err := db.Exec(`
		INSERT INTO jobs (job_id, job_number, customer_id, title, status, completed_date)
		VALUES (?, ?, ?, ?, ?, ?)`,
		jobID, number, "cust-1", "Furnace repair", string(status), completedDate)
	if err != nil {
		t.Fatalf("insert job %s: %v", jobID, err)
	}
}

// InsertLabor records labor on a job.
func InsertLabor(t *testing.T, db *sql.DB, jobID, hours, rate string) {
	t.Helper()
	h, r := decimal.RequireFromString(hours), decimal.RequireFromString(rate)
	_, err := db.Exec(`
		INSERT INTO labor_entries (labor_entry_id, job_id, hours, hourly_rate, total_cost)
		VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), jobID, h.String(), r.String(), h.Mul(r).String())
	if err != nil {
		t.Fatalf("insert labor entry: %v", err)
	}
}

// InsertMaterial records material usage on a job.
func InsertMaterial(t *testing.T, db *sql.DB, jobID, quantity, unitCost string) {
	t.Helper()
	q, c := decimal.RequireFromString(quantity), decimal.RequireFromString(unitCost)
	_, err := db.Exec(`
		INSERT INTO material_usages (material_usage_id, job_id, material_id, quantity, unit_cost, total_cost)
		VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), jobID, "mat-1", q.String(), c.String(), q.Mul(c).String())
	if err != nil {
		t.Fatalf("insert material usage: %v", err)
	}
}

// InsertEquipment records equipment usage on a job.
func InsertEquipment(t *testing.T, db *sql.DB, jobID, hours, rate string) {
	t.Helper()
	h, r := decimal.RequireFromString(hours), decimal.RequireFromString(rate)
	_, err := db.Exec(`
		INSERT INTO equipment_usages (equipment_usage_id, job_id, equipment_id, hours, hourly_rate, total_cost)
		VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), jobID, "eq-1", h.String(), r.String(), h.Mul(r).String())
	if err != nil {
		t.Fatalf("insert equipment usage: %v", err)
	}
}

// CountRows returns the number of rows in table.
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}
