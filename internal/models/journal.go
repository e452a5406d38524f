package models

import "time"

// JournalEntry is the storage row of an entry header. Amounts are stored in cents.
type JournalEntry struct {
	EntryID           string    `db:"entry_id"`
	SourceType        string    `db:"source_type"`
	SourceID          string    `db:"source_id"`
	EntryDate         time.Time `db:"entry_date"`
	Description       string    `db:"description"`
	Reference         *string   `db:"reference"` // Nullable
	AutoGenerated     bool      `db:"auto_generated"`
	Status            string    `db:"status"`
	TotalDebitsCents  int64     `db:"total_debits_cents"`
	TotalCreditsCents int64     `db:"total_credits_cents"`
	CreatedAt         time.Time `db:"created_at"`
}

// JournalEntryLine is the storage row of a single posting.
type JournalEntryLine struct {
	LineID      string `db:"line_id"`
	EntryID     string `db:"entry_id"`
	LineNumber  int    `db:"line_number"`
	AccountID   string `db:"account_id"`
	AccountCode string `db:"account_code"`
	DebitCents  int64  `db:"debit_cents"`
	CreditCents int64  `db:"credit_cents"`
	Description string `db:"description"`
}
