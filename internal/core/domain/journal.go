package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SourceType identifies the kind of business event a journal entry was generated from.
type SourceType string

const (
	SourceInvoice       SourceType = "INVOICE"
	SourceJobCompletion SourceType = "JOB_COMPLETION"
	SourcePayment       SourceType = "PAYMENT"
	SourceExpense       SourceType = "EXPENSE"
	SourceManual        SourceType = "MANUAL"
)

var sourceTypes = map[SourceType]struct{}{
	SourceInvoice:       {},
	SourceJobCompletion: {},
	SourcePayment:       {},
	SourceExpense:       {},
	SourceManual:        {},
}

// Valid reports whether s is one of the known source types.
func (s SourceType) Valid() bool {
	_, ok := sourceTypes[s]
	return ok
}

// ParseSourceType converts a raw string into a SourceType, rejecting unknown values.
func ParseSourceType(raw string) (SourceType, error) {
	s := SourceType(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown source type %q", raw)
	}
	return s, nil
}

// EntryStatus indicates the state of a journal entry.
type EntryStatus string

const (
	Draft  EntryStatus = "DRAFT"
	Posted EntryStatus = "POSTED"
	Void   EntryStatus = "VOID"
)

// JournalEntry is the header of a balanced set of postings.
type JournalEntry struct {
	EntryID       string      `json:"entryID"`
	SourceType    SourceType  `json:"sourceType"`
	SourceID      string      `json:"sourceID"`
	EntryDate     time.Time   `json:"entryDate"`
	Description   string      `json:"description"`
	Reference     *string     `json:"reference,omitempty"`
	AutoGenerated bool        `json:"autoGenerated"`
	Status        EntryStatus `json:"status"`
	TotalDebits   Cents       `json:"totalDebits"`
	TotalCredits  Cents       `json:"totalCredits"`
	CreatedAt     time.Time   `json:"createdAt"`

	Lines []JournalEntryLine `json:"lines,omitempty"` // Loaded on demand
}

// JournalEntryLine is one posting of an entry. Exactly one of Debit/Credit is nonzero.
type JournalEntryLine struct {
	LineID      string `json:"lineID"`
	EntryID     string `json:"entryID"`
	LineNumber  int    `json:"lineNumber"`
	AccountID   string `json:"accountID"`
	AccountCode string `json:"accountCode"`
	Debit       Cents  `json:"debit"`
	Credit      Cents  `json:"credit"`
	Description string `json:"description"`
}

// LineInput is a candidate journal line before account codes are resolved.
type LineInput struct {
	AccountCode string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Description string
}
