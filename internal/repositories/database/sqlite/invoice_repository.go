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
)

type SQLiteInvoiceRepository struct {
	db *sql.DB
}

var _ portsrepo.InvoiceReader = (*SQLiteInvoiceRepository)(nil)

func (r *SQLiteInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `
		SELECT invoice_id, invoice_number, customer_id, job_id, issue_date, total_amount, status
		FROM invoices
		WHERE invoice_id = ?;
	`
	var (
		m         models.Invoice
		jobID     sql.NullString
		issueDate string
	)
	err := r.db.QueryRowContext(ctx, query, invoiceID).Scan(
		&m.InvoiceID,
		&m.InvoiceNumber,
		&m.CustomerID,
		&jobID,
		&issueDate,
		&m.TotalAmount,
		&m.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}
	m.JobID = stringPtr(jobID)
	if m.IssueDate, err = parseTime(issueDate); err != nil {
		return nil, err
	}

	invoice := mapping.ToDomainInvoice(m)
	return &invoice, nil
}
