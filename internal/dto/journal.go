package dto

import (
	"time"

	"github.com/fieldwork/fsm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AutoJournalLineRequest is one candidate line of an auto-generated entry.
type AutoJournalLineRequest struct {
	AccountCode string          `json:"accountCode"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description,omitempty"`
}

// CreateAutoJournalEntryRequest defines the data needed to write an auto-generated entry.
// Line-level problems are reported by the ledger validator rather than by binding.
type CreateAutoJournalEntryRequest struct {
	SourceType  domain.SourceType        `json:"sourceType" binding:"required,sourcetype"`
	SourceID    string                   `json:"sourceID" binding:"required"`
	Date        time.Time                `json:"date" binding:"required"`
	Description string                   `json:"description" binding:"required"`
	Lines       []AutoJournalLineRequest `json:"lines"`
	Reference   *string                  `json:"reference,omitempty"` // Descriptive only
}

// CreateAutoJournalEntryResult is returned by the entry writer.
type CreateAutoJournalEntryResult struct {
	ID           string          `json:"id"`
	Balanced     bool            `json:"balanced"`
	TotalDebits  decimal.Decimal `json:"totalDebits"`
	TotalCredits decimal.Decimal `json:"totalCredits"`
}

// ValidateJournalLinesRequest wraps a candidate line set for the validate endpoint.
type ValidateJournalLinesRequest struct {
	Lines []AutoJournalLineRequest `json:"lines"`
}

// ValidateJournalLinesResponse reports the validator outcome.
type ValidateJournalLinesResponse struct {
	Valid    bool     `json:"valid"`
	Balanced bool     `json:"balanced"`
	Errors   []string `json:"errors"`
}

// ExistingEntryResponse is returned by the source lookup and the generators.
type ExistingEntryResponse struct {
	EntryID string `json:"entryID"`
}

// JournalEntryLineResponse defines the data returned for an entry line.
type JournalEntryLineResponse struct {
	LineNumber  int             `json:"lineNumber"`
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description,omitempty"`
}

// JournalEntryResponse defines the data returned for an entry with its lines.
type JournalEntryResponse struct {
	EntryID       string                     `json:"entryID"`
	SourceType    domain.SourceType          `json:"sourceType"`
	SourceID      string                     `json:"sourceID"`
	Date          time.Time                  `json:"date"`
	Description   string                     `json:"description"`
	Reference     *string                    `json:"reference,omitempty"`
	AutoGenerated bool                       `json:"autoGenerated"`
	Status        domain.EntryStatus         `json:"status"`
	TotalDebits   decimal.Decimal            `json:"totalDebits"`
	TotalCredits  decimal.Decimal            `json:"totalCredits"`
	CreatedAt     time.Time                  `json:"createdAt"`
	Lines         []JournalEntryLineResponse `json:"lines"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to JournalEntryResponse DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalEntryLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = JournalEntryLineResponse{
			LineNumber:  l.LineNumber,
			AccountID:   l.AccountID,
			AccountCode: l.AccountCode,
			Debit:       l.Debit.Decimal(),
			Credit:      l.Credit.Decimal(),
			Description: l.Description,
		}
	}
	return JournalEntryResponse{
		EntryID:       e.EntryID,
		SourceType:    e.SourceType,
		SourceID:      e.SourceID,
		Date:          e.EntryDate,
		Description:   e.Description,
		Reference:     e.Reference,
		AutoGenerated: e.AutoGenerated,
		Status:        e.Status,
		TotalDebits:   e.TotalDebits.Decimal(),
		TotalCredits:  e.TotalCredits.Decimal(),
		CreatedAt:     e.CreatedAt,
		Lines:         lines,
	}
}

// ToLineInputs converts request lines to the validator's input type.
func ToLineInputs(lines []AutoJournalLineRequest) []domain.LineInput {
	inputs := make([]domain.LineInput, len(lines))
	for i, l := range lines {
		inputs[i] = domain.LineInput{
			AccountCode: l.AccountCode,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Description: l.Description,
		}
	}
	return inputs
}

// ListJournalEntriesParams defines the query parameters for listing entries.
type ListJournalEntriesParams struct {
	SourceType string  `form:"sourceType"`
	Limit      int     `form:"limit"`
	NextToken  *string `form:"nextToken"`
}

// ListJournalEntriesResponse is one page of entry headers.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToListJournalEntriesResponse converts a page of domain entries to the response DTO.
func ToListJournalEntriesResponse(entries []domain.JournalEntry, nextToken *string) ListJournalEntriesResponse {
	resp := ListJournalEntriesResponse{
		Entries:   make([]JournalEntryResponse, len(entries)),
		NextToken: nextToken,
	}
	for i := range entries {
		resp.Entries[i] = ToJournalEntryResponse(&entries[i])
	}
	return resp
}
