package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fieldwork/fsm_backend/internal/core/domain"
	portssvc "github.com/fieldwork/fsm_backend/internal/core/ports/services"
	"github.com/fieldwork/fsm_backend/internal/dto"
	"github.com/fieldwork/fsm_backend/internal/utils/accounting"
)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) ValidateLines(lines []dto.AutoJournalLineRequest) accounting.ValidationResult {
	args := m.Called(lines)
	return args.Get(0).(accounting.ValidationResult)
}
func (m *MockJournalService) FindExisting(ctx context.Context, sourceType domain.SourceType, sourceID string) (string, bool, error) {
	args := m.Called(ctx, sourceType, sourceID)
	return args.String(0), args.Bool(1), args.Error(2)
}
func (m *MockJournalService) Create(ctx context.Context, req dto.CreateAutoJournalEntryRequest) (*dto.CreateAutoJournalEntryResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CreateAutoJournalEntryResult), args.Error(1)
}
func (m *MockJournalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalService) ListEntries(ctx context.Context, sourceType domain.SourceType, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, sourceType, limit, nextToken)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.JournalEntry), next, args.Error(2)
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Mock GeneratorService ---
type MockGeneratorService struct {
	mock.Mock
}

func (m *MockGeneratorService) GenerateForInvoice(ctx context.Context, invoiceID string) (string, error) {
	args := m.Called(ctx, invoiceID)
	return args.String(0), args.Error(1)
}
func (m *MockGeneratorService) GenerateForJobCompletion(ctx context.Context, jobID string) (string, error) {
	args := m.Called(ctx, jobID)
	return args.String(0), args.Error(1)
}

var _ portssvc.GeneratorSvcFacade = (*MockGeneratorService)(nil)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) SeedAccounts(ctx context.Context, accounts []domain.Account) (int, error) {
	args := m.Called(ctx, accounts)
	return args.Int(0), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)
