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
)

type PgxInvoiceRepository struct {
	pool *pgxpool.Pool
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) *PgxInvoiceRepository {
	return &PgxInvoiceRepository{pool: pool}
}

var _ portsrepo.InvoiceReader = (*PgxInvoiceRepository)(nil)

// FindInvoiceByID retrieves an invoice by its ID.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `
		SELECT invoice_id, invoice_number, customer_id, job_id, issue_date, total_amount, status
		FROM invoices
		WHERE invoice_id = $1;
	`
	var m models.Invoice
	err := r.pool.QueryRow(ctx, query, invoiceID).Scan(
		&m.InvoiceID,
		&m.InvoiceNumber,
		&m.CustomerID,
		&m.JobID,
		&m.IssueDate,
		&m.TotalAmount,
		&m.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}
	invoice := mapping.ToDomainInvoice(m)
	return &invoice, nil
}
