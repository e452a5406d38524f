package models

// Account is the storage row of a chart-of-accounts entry.
type Account struct {
	AccountID   string `db:"account_id"`
	Code        string `db:"code"`
	Name        string `db:"name"`
	AccountType string `db:"account_type"`
	BalanceType string `db:"balance_type"`
	IsActive    bool   `db:"is_active"`
	IsPosting   bool   `db:"is_posting"`
}
