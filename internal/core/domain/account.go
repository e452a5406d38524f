package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
	COGS      AccountType = "COGS"
)

// BalanceType is the natural side of an account.
type BalanceType string

const (
	DebitBalance  BalanceType = "DEBIT"
	CreditBalance BalanceType = "CREDIT"
)

// Account is a chart-of-accounts entry. The ledger engine only reads accounts.
type Account struct {
	AccountID   string      `json:"accountID"`
	Code        string      `json:"code"` // Unique business key, e.g. "1100"
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
	BalanceType BalanceType `json:"balanceType"`
	IsActive    bool        `json:"isActive"`
	IsPosting   bool        `json:"isPosting"` // Only leaf accounts accept lines
}

// CanPost reports whether journal lines may be written against the account.
func (a Account) CanPost() bool {
	return a.IsActive && a.IsPosting
}
