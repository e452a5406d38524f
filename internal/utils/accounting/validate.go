package accounting

import (
	"fmt"
	"strings"

	"github.com/fieldwork/fsm_backend/internal/core/domain"
)

// ErrEmptyEntry is the message reported for an entry without lines.
const ErrEmptyEntry = "Journal entry must have at least one line"

// ValidationResult is the outcome of checking a candidate line set.
// Balanced is reported independently of the structural checks.
type ValidationResult struct {
	Valid        bool
	Balanced     bool
	Errors       []string
	TotalDebits  domain.Cents
	TotalCredits domain.Cents
}

// ValidateLines checks the structural and balance correctness of a candidate
// set of journal lines. Amounts are compared in whole cents, so sub-cent
// rounding noise never unbalances an entry while any real difference does.
func ValidateLines(lines []domain.LineInput) ValidationResult {
	if len(lines) == 0 {
		return ValidationResult{Errors: []string{ErrEmptyEntry}}
	}

	var errs []string
	var debits, credits domain.Cents
	// Set when a total can no longer be trusted, so balance is never claimed.
	untrusted := false

	for i, line := range lines {
		n := i + 1

		if strings.TrimSpace(line.AccountCode) == "" {
			errs = append(errs, fmt.Sprintf("Line %d: Account code is required", n))
		}

		debit, debitOK := domain.CentsFromDecimalChecked(line.Debit)
		credit, creditOK := domain.CentsFromDecimalChecked(line.Credit)
		if !debitOK || !creditOK {
			errs = append(errs, fmt.Sprintf("Line %d: Amount exceeds maximum of $%s", n, domain.MaxAmount))
			untrusted = true
			continue
		}

		if debit < 0 || credit < 0 {
			errs = append(errs, fmt.Sprintf("Line %d: Amounts cannot be negative", n))
		}
		switch {
		case debit > 0 && credit > 0:
			errs = append(errs, fmt.Sprintf("Line %d: Cannot have both debit and credit", n))
		case debit == 0 && credit == 0:
			errs = append(errs, fmt.Sprintf("Line %d: Either debit or credit must be greater than zero", n))
		}

		if untrusted {
			continue
		}
		var debitsOK, creditsOK bool
		debits, debitsOK = debits.Add(debit)
		credits, creditsOK = credits.Add(credit)
		if !debitsOK || !creditsOK {
			errs = append(errs, "Journal entry totals exceed the maximum representable amount")
			debits, credits = 0, 0
			untrusted = true
		}
	}

	balanced := !untrusted && debits == credits
	if !untrusted && !balanced {
		errs = append(errs, fmt.Sprintf("Journal entry is not balanced: debits $%s, credits $%s", debits, credits))
	}

	return ValidationResult{
		Valid:        len(errs) == 0,
		Balanced:     balanced,
		Errors:       errs,
		TotalDebits:  debits,
		TotalCredits: credits,
	}
}
