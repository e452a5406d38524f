package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fieldwork/fsm_backend/internal/core/domain"
	portsrepo "github.com/fieldwork/fsm_backend/internal/core/ports/repositories"
	"github.com/fieldwork/fsm_backend/internal/dto"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindAutoEntryIDBySource(ctx context.Context, sourceType domain.SourceType, sourceID string) (string, bool, error) {
	args := m.Called(ctx, sourceType, sourceID)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalEntryLine, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntryLine), args.Error(1)
}

func (m *MockJournalRepository) ListEntries(ctx context.Context, sourceType domain.SourceType, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
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

func (m *MockJournalRepository) Begin(ctx context.Context) (portsrepo.UnitOfWork, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(portsrepo.UnitOfWork), args.Error(1)
}

// --- Mock UnitOfWork ---
type MockUnitOfWork struct {
	mock.Mock
	accounts *MockAccountRepository
	journals *MockJournalWriter
}

var _ portsrepo.UnitOfWork = (*MockUnitOfWork)(nil)

func (m *MockUnitOfWork) Accounts() portsrepo.AccountRepositoryFacade { return m.accounts }
func (m *MockUnitOfWork) Journals() portsrepo.JournalEntryWriter      { return m.journals }

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// --- Mock JournalWriter ---
type MockJournalWriter struct {
	mock.Mock
}

func (m *MockJournalWriter) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalEntryLine) error {
	return m.Called(ctx, entry, lines).Error(0)
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByCodes(ctx context.Context, codes []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpsertAccount(ctx context.Context, account domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

// --- Mock JobRepository ---
type MockJobRepository struct {
	mock.Mock
}

var _ portsrepo.JobRepositoryFacade = (*MockJobRepository)(nil)

func (m *MockJobRepository) FindJobByID(ctx context.Context, jobID string) (*domain.Job, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepository) ListLaborEntries(ctx context.Context, jobID string) ([]domain.LaborEntry, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LaborEntry), args.Error(1)
}

func (m *MockJobRepository) ListMaterialUsages(ctx context.Context, jobID string) ([]domain.MaterialUsage, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MaterialUsage), args.Error(1)
}

func (m *MockJobRepository) ListEquipmentUsages(ctx context.Context, jobID string) ([]domain.EquipmentUsage, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EquipmentUsage), args.Error(1)
}

// --- Mock IdempotencyResolver ---
type MockIdempotencyResolver struct {
	mock.Mock
}

func (m *MockIdempotencyResolver) FindExisting(ctx context.Context, sourceType domain.SourceType, sourceID string) (string, bool, error) {
	args := m.Called(ctx, sourceType, sourceID)
	return args.String(0), args.Bool(1), args.Error(2)
}

// --- Mock EntryWriter ---
type MockEntryWriter struct {
	mock.Mock
}

func (m *MockEntryWriter) Create(ctx context.Context, req dto.CreateAutoJournalEntryRequest) (*dto.CreateAutoJournalEntryResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CreateAutoJournalEntryResult), args.Error(1)
}
