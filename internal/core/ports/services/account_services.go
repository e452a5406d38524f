package services

import (
	"context"

	"github.com/fieldwork/fsm_backend/internal/core/domain"
)

// AccountSvcFacade manages the chart of accounts the engine posts to
type AccountSvcFacade interface {
	// ListAccounts returns the whole chart of accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// SeedAccounts upserts the given accounts and returns how many were written.
	SeedAccounts(ctx context.Context, accounts []domain.Account) (int, error)
}
