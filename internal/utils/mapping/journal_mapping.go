package mapping

import (
	"github.com/fieldwork/fsm_backend/internal/core/domain"
	"github.com/fieldwork/fsm_backend/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:           d.EntryID,
		SourceType:        string(d.SourceType),
		SourceID:          d.SourceID,
		EntryDate:         d.EntryDate,
		Description:       d.Description,
		Reference:         d.Reference,
		AutoGenerated:     d.AutoGenerated,
		Status:            string(d.Status),
		TotalDebitsCents:  int64(d.TotalDebits),
		TotalCreditsCents: int64(d.TotalCredits),
		CreatedAt:         d.CreatedAt,
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:       m.EntryID,
		SourceType:    domain.SourceType(m.SourceType),
		SourceID:      m.SourceID,
		EntryDate:     m.EntryDate,
		Description:   m.Description,
		Reference:     m.Reference,
		AutoGenerated: m.AutoGenerated,
		Status:        domain.EntryStatus(m.Status),
		TotalDebits:   domain.Cents(m.TotalDebitsCents),
		TotalCredits:  domain.Cents(m.TotalCreditsCents),
		CreatedAt:     m.CreatedAt,
	}
}

// ToModelJournalEntryLine converts a domain JournalEntryLine to a model JournalEntryLine
func ToModelJournalEntryLine(d domain.JournalEntryLine) models.JournalEntryLine {
	return models.JournalEntryLine{
		LineID:      d.LineID,
		EntryID:     d.EntryID,
		LineNumber:  d.LineNumber,
		AccountID:   d.AccountID,
		AccountCode: d.AccountCode,
		DebitCents:  int64(d.Debit),
		CreditCents: int64(d.Credit),
		Description: d.Description,
	}
}

// ToDomainJournalEntryLine converts a model JournalEntryLine to a domain JournalEntryLine
func ToDomainJournalEntryLine(m models.JournalEntryLine) domain.JournalEntryLine {
	return domain.JournalEntryLine{
		LineID:      m.LineID,
		EntryID:     m.EntryID,
		LineNumber:  m.LineNumber,
		AccountID:   m.AccountID,
		AccountCode: m.AccountCode,
		Debit:       domain.Cents(m.DebitCents),
		Credit:      domain.Cents(m.CreditCents),
		Description: m.Description,
	}
}

// ToDomainJournalEntryLineSlice converts a slice of model lines to a slice of domain lines
func ToDomainJournalEntryLineSlice(ms []models.JournalEntryLine) []domain.JournalEntryLine {
	ds := make([]domain.JournalEntryLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalEntryLine(m)
	}
	return ds
}
