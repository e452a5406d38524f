package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fieldwork/fsm_backend/internal/apperrors"
	"github.com/fieldwork/fsm_backend/internal/core/domain"
	portsrepo "github.com/fieldwork/fsm_backend/internal/core/ports/repositories"
	portssvc "github.com/fieldwork/fsm_backend/internal/core/ports/services"
)

type accountService struct {
	BaseService
	accountRepo  portsrepo.AccountRepositoryFacade
	transactions portsrepo.UnitOfWorkFactory
}

// NewAccountService creates a service over the chart of accounts.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, transactions portsrepo.UnitOfWorkFactory) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo, transactions: transactions}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// SeedAccounts upserts accounts by code in one unit of work, so the chart is
// either fully seeded or left untouched. Accounts without an id get a new one;
// an existing account keeps its id.
func (s *accountService) SeedAccounts(ctx context.Context, accounts []domain.Account) (int, error) {
	// Check everything before opening a transaction
	for _, acc := range accounts {
		if acc.Code == "" || acc.Name == "" {
			return 0, apperrors.NewValidationError([]string{fmt.Sprintf("Account %q requires both a code and a name", acc.Code)})
		}
	}

	err := withUnitOfWork(ctx, s.transactions, func(uow portsrepo.UnitOfWork) error {
		for _, acc := range accounts {
			if acc.AccountID == "" {
				acc.AccountID = uuid.NewString()
			}
			if err := uow.Accounts().UpsertAccount(ctx, acc); err != nil {
				s.LogError(ctx, err, "Failed to upsert account", slog.String("code", acc.Code))
				return fmt.Errorf("failed to upsert account %s: %w", acc.Code, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.LogInfo(ctx, "Seeded chart of accounts", slog.Int("accounts", len(accounts)))
	return len(accounts), nil
}
