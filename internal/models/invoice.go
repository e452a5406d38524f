package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is the storage row of an invoice.
type Invoice struct {
	InvoiceID     string          `db:"invoice_id"`
	InvoiceNumber string          `db:"invoice_number"`
	CustomerID    string          `db:"customer_id"`
	JobID         *string         `db:"job_id"` // Nullable
	IssueDate     time.Time       `db:"issue_date"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	Status        string          `db:"status"`
}
