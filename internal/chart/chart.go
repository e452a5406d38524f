// Package chart loads chart-of-accounts definitions from YAML.
package chart

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fieldwork/fsm_backend/internal/core/domain"
)

//go:embed default_chart.yaml
var defaultChart []byte

// File is the YAML layout of a chart-of-accounts file.
type File struct {
	Accounts []AccountSpec `yaml:"accounts"`
}

// AccountSpec is one account in a chart file. Active and Posting default to true.
type AccountSpec struct {
	Code    string `yaml:"code"`
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Balance string `yaml:"balance"`
	Active  *bool  `yaml:"active,omitempty"`
	Posting *bool  `yaml:"posting,omitempty"`
}

var accountTypes = map[string]domain.AccountType{
	string(domain.Asset):     domain.Asset,
	string(domain.Liability): domain.Liability,
	string(domain.Equity):    domain.Equity,
	string(domain.Revenue):   domain.Revenue,
	string(domain.Expense):   domain.Expense,
	string(domain.COGS):      domain.COGS,
}

// DefaultChart returns the built-in field-service chart of accounts.
func DefaultChart() ([]domain.Account, error) {
	return Parse(defaultChart)
}

// LoadChart reads a chart of accounts from a YAML file.
func LoadChart(path string) ([]domain.Account, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chart file %s: %w", path, err)
	}
	accounts, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid chart file %s: %w", path, err)
	}
	return accounts, nil
}

// Parse decodes and validates a chart of accounts.
func Parse(data []byte) ([]domain.Account, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse chart: %w", err)
	}
	if len(f.Accounts) == 0 {
		return nil, fmt.Errorf("chart has no accounts")
	}

	seen := make(map[string]struct{}, len(f.Accounts))
	accounts := make([]domain.Account, 0, len(f.Accounts))
	for i, spec := range f.Accounts {
		acc, err := spec.toDomain()
		if err != nil {
			return nil, fmt.Errorf("account %d: %w", i+1, err)
		}
		if _, dup := seen[acc.Code]; dup {
			return nil, fmt.Errorf("account %d: duplicate code %s", i+1, acc.Code)
		}
		seen[acc.Code] = struct{}{}
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

func (s AccountSpec) toDomain() (domain.Account, error) {
	code := strings.TrimSpace(s.Code)
	if code == "" {
		return domain.Account{}, fmt.Errorf("code is required")
	}
	if strings.TrimSpace(s.Name) == "" {
		return domain.Account{}, fmt.Errorf("name is required for %s", code)
	}

	accountType, ok := accountTypes[strings.ToUpper(s.Type)]
	if !ok {
		return domain.Account{}, fmt.Errorf("unknown account type %q for %s", s.Type, code)
	}

	var balance domain.BalanceType
	switch strings.ToUpper(s.Balance) {
	case string(domain.DebitBalance):
		balance = domain.DebitBalance
	case string(domain.CreditBalance):
		balance = domain.CreditBalance
	default:
		return domain.Account{}, fmt.Errorf("unknown balance type %q for %s", s.Balance, code)
	}

	return domain.Account{
		Code:        code,
		Name:        strings.TrimSpace(s.Name),
		AccountType: accountType,
		BalanceType: balance,
		IsActive:    boolOr(s.Active, true),
		IsPosting:   boolOr(s.Posting, true),
	}, nil
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

// MissingCodes returns the mapped codes that are absent from accounts or cannot take postings.
func MissingCodes(accounts []domain.Account, mapping domain.ChartMapping) []string {
	byCode := make(map[string]domain.Account, len(accounts))
	for _, a := range accounts {
		byCode[a.Code] = a
	}

	var missing []string
	for _, code := range []string{
		mapping.AccountsReceivable,
		mapping.Revenue,
		mapping.LaborExpense,
		mapping.CostOfGoodsSold,
		mapping.EquipmentExpense,
		mapping.Inventory,
	} {
		if a, ok := byCode[code]; !ok || !a.CanPost() {
			missing = append(missing, code)
		}
	}
	return missing
}
