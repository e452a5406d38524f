package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fieldwork/fsm_backend/internal/apperrors"
	"github.com/fieldwork/fsm_backend/internal/core/domain"
	"github.com/fieldwork/fsm_backend/internal/dto"
)

// GenerateForInvoice records an issued invoice: debit Accounts Receivable,
// credit Revenue, both for the invoice total.
func (g *journalGenerator) GenerateForInvoice(ctx context.Context, invoiceID string) (string, error) {
	logger := g.GetLogger(ctx).With(slog.String("invoice_id", invoiceID))

	if entryID, found, err := g.existingEntry(ctx, domain.SourceInvoice, invoiceID); err != nil || found {
		return entryID, err
	}

	invoice, err := g.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.NewNotFoundError("Invoice not found")
		}
		logger.Error("Failed to fetch invoice", slog.String("error", err.Error()))
		return "", fmt.Errorf("failed to fetch invoice %s: %w", invoiceID, err)
	}

	amount, ok := domain.CentsFromDecimalChecked(invoice.TotalAmount)
	if !ok || amount <= 0 {
		logger.Warn("Invoice has no positive amount", slog.String("total_amount", invoice.TotalAmount.String()))
		return "", apperrors.NewPreconditionError(fmt.Sprintf("Invoice %s has invalid amount %s", invoice.InvoiceNumber, invoice.TotalAmount.String()))
	}

	reference := invoice.InvoiceNumber
	entryID, err := g.write(ctx, dto.CreateAutoJournalEntryRequest{
		SourceType:  domain.SourceInvoice,
		SourceID:    invoice.InvoiceID,
		Date:        invoice.IssueDate,
		Description: fmt.Sprintf("Invoice %s", invoice.InvoiceNumber),
		Reference:   &reference,
		Lines:       invoiceLines(g.chart, invoice.InvoiceNumber, amount),
	})
	if err != nil {
		return "", err
	}

	logger.Info("Generated invoice journal entry", slog.String("entry_id", entryID))
	return entryID, nil
}

func invoiceLines(chart domain.ChartMapping, invoiceNumber string, amount domain.Cents) []dto.AutoJournalLineRequest {
	return []dto.AutoJournalLineRequest{
		{
			AccountCode: chart.AccountsReceivable,
			Debit:       amount.Decimal(),
			Description: fmt.Sprintf("Receivable for invoice %s", invoiceNumber),
		},
		{
			AccountCode: chart.Revenue,
			Credit:      amount.Decimal(),
			Description: fmt.Sprintf("Revenue for invoice %s", invoiceNumber),
		},
	}
}
