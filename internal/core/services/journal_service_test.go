package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/fieldwork/fsm_backend/internal/apperrors"
	"github.com/fieldwork/fsm_backend/internal/core/domain"
	portssvc "github.com/fieldwork/fsm_backend/internal/core/ports/services"
	"github.com/fieldwork/fsm_backend/internal/core/services"
	"github.com/fieldwork/fsm_backend/internal/dto"
)

type JournalServiceTestSuite struct {
	suite.Suite
	journalRepo *MockJournalRepository
	uow         *MockUnitOfWork
	accounts    *MockAccountRepository
	writer      *MockJournalWriter
	service     portssvc.JournalSvcFacade
	ctx         context.Context
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.journalRepo = new(MockJournalRepository)
	suite.accounts = new(MockAccountRepository)
	suite.writer = new(MockJournalWriter)
	suite.uow = &MockUnitOfWork{accounts: suite.accounts, journals: suite.writer}
	resolver := services.NewIdempotencyResolver(suite.journalRepo)
	suite.service = services.NewJournalService(suite.journalRepo, resolver, services.NewEntryWriter(suite.journalRepo, resolver))
	suite.ctx = context.Background()
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}

func postingAccount(code string) domain.Account {
	return domain.Account{
		AccountID: "acc-" + code,
		Code:      code,
		Name:      "Account " + code,
		IsActive:  true,
		IsPosting: true,
	}
}

func invoiceRequest(sourceID string, debit, credit string) dto.CreateAutoJournalEntryRequest {
	return dto.CreateAutoJournalEntryRequest{
		SourceType:  domain.SourceInvoice,
		SourceID:    sourceID,
		Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Description: "Invoice INV-1",
		Lines: []dto.AutoJournalLineRequest{
			{AccountCode: "1100", Debit: decimal.RequireFromString(debit)},
			{AccountCode: "4000", Credit: decimal.RequireFromString(credit)},
		},
	}
}

func (suite *JournalServiceTestSuite) expectAccounts() {
	suite.accounts.On("FindAccountsByCodes", mock.Anything, []string{"1100", "4000"}).
		Return(map[string]domain.Account{"1100": postingAccount("1100"), "4000": postingAccount("4000")}, nil).Once()
}

func (suite *JournalServiceTestSuite) TestCreate_Success() {
	req := invoiceRequest("inv-1", "1500.00", "1500.00")
	suite.journalRepo.On("Begin", mock.Anything).Return(suite.uow, nil).Once()
	suite.expectAccounts()
	suite.writer.On("SaveEntry", mock.Anything,
		mock.MatchedBy(func(e domain.JournalEntry) bool {
			return e.SourceType == domain.SourceInvoice &&
				e.SourceID == "inv-1" &&
				e.AutoGenerated &&
				e.Status == domain.Draft &&
				e.TotalDebits == 150000 &&
				e.TotalCredits == 150000
		}),
		mock.MatchedBy(func(lines []domain.JournalEntryLine) bool {
			return len(lines) == 2 &&
				lines[0].LineNumber == 1 && lines[0].AccountID == "acc-1100" && lines[0].Debit == 150000 && lines[0].Credit == 0 &&
				lines[1].LineNumber == 2 && lines[1].AccountID == "acc-4000" && lines[1].Credit == 150000 && lines[1].Debit == 0
		}),
	).Return(nil).Once()
	suite.uow.On("Commit", mock.Anything).Return(nil).Once()

	result, err := suite.service.Create(suite.ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(result.ID)
	suite.True(result.Balanced)
	suite.True(decimal.NewFromInt(1500).Equal(result.TotalDebits))
	suite.True(decimal.NewFromInt(1500).Equal(result.TotalCredits))
	suite.uow.AssertNotCalled(suite.T(), "Rollback", mock.Anything)
	suite.journalRepo.AssertExpectations(suite.T())
	suite.writer.AssertExpectations(suite.T())
	suite.uow.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreate_SubCentDifferenceIsBalanced() {
	req := invoiceRequest("inv-2", "100.004", "100.00")
	suite.journalRepo.On("Begin", mock.Anything).Return(suite.uow, nil).Once()
	suite.expectAccounts()
	suite.writer.On("SaveEntry", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	suite.uow.On("Commit", mock.Anything).Return(nil).Once()

	result, err := suite.service.Create(suite.ctx, req)

	suite.Require().NoError(err)
	suite.True(result.Balanced)
	suite.Equal("100.00", result.TotalDebits.StringFixed(2))
}

func (suite *JournalServiceTestSuite) TestCreate_UnbalancedWritesNothing() {
	req := invoiceRequest("inv-3", "100.00", "90.00")

	result, err := suite.service.Create(suite.ctx, req)

	suite.Nil(result)
	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	var verr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &verr))
	suite.Contains(verr.Problems, "Journal entry is not balanced: debits $100.00, credits $90.00")
	suite.journalRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreate_EmptyLinesRejected() {
	req := invoiceRequest("inv-4", "1", "1")
	req.Lines = nil

	_, err := suite.service.Create(suite.ctx, req)

	var verr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &verr))
	suite.Equal([]string{"Journal entry must have at least one line"}, verr.Problems)
	suite.journalRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreate_UnknownSourceTypeRejected() {
	req := invoiceRequest("inv-5", "1", "1")
	req.SourceType = "REFUND"

	_, err := suite.service.Create(suite.ctx, req)

	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.journalRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreate_UnknownAccountRollsBack() {
	req := invoiceRequest("inv-6", "50", "50")
	suite.journalRepo.On("Begin", mock.Anything).Return(suite.uow, nil).Once()
	suite.accounts.On("FindAccountsByCodes", mock.Anything, []string{"1100", "4000"}).
		Return(map[string]domain.Account{"1100": postingAccount("1100")}, nil).Once()
	suite.uow.On("Rollback", mock.Anything).Return(nil).Once()

	result, err := suite.service.Create(suite.ctx, req)

	suite.Nil(result)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
	suite.Contains(err.Error(), "4000")
	suite.writer.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
	suite.uow.AssertNotCalled(suite.T(), "Commit", mock.Anything)
	suite.uow.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreate_NonPostingAccountRejected() {
	req := invoiceRequest("inv-7", "50", "50")
	header := postingAccount("4000")
	header.IsPosting = false
	suite.journalRepo.On("Begin", mock.Anything).Return(suite.uow, nil).Once()
	suite.accounts.On("FindAccountsByCodes", mock.Anything, []string{"1100", "4000"}).
		Return(map[string]domain.Account{"1100": postingAccount("1100"), "4000": header}, nil).Once()
	suite.uow.On("Rollback", mock.Anything).Return(nil).Once()

	_, err := suite.service.Create(suite.ctx, req)

	suite.True(errors.Is(err, apperrors.ErrNotFound))
	suite.uow.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreate_InactiveAccountRejected() {
	req := invoiceRequest("inv-8", "50", "50")
	inactive := postingAccount("1100")
	inactive.IsActive = false
	suite.journalRepo.On("Begin", mock.Anything).Return(suite.uow, nil).Once()
	suite.accounts.On("FindAccountsByCodes", mock.Anything, []string{"1100", "4000"}).
		Return(map[string]domain.Account{"1100": inactive, "4000": postingAccount("4000")}, nil).Once()
	suite.uow.On("Rollback", mock.Anything).Return(nil).Once()

	_, err := suite.service.Create(suite.ctx, req)

	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func (suite *JournalServiceTestSuite) TestCreate_DuplicateRaceReturnsWinner() {
	req := invoiceRequest("inv-9", "1500", "1500")
	winner := &domain.JournalEntry{
		EntryID:      "winner-id",
		SourceType:   domain.SourceInvoice,
		SourceID:     "inv-9",
		TotalDebits:  150000,
		TotalCredits: 150000,
	}
	suite.journalRepo.On("Begin", mock.Anything).Return(suite.uow, nil).Once()
	suite.expectAccounts()
	suite.writer.On("SaveEntry", mock.Anything, mock.Anything, mock.Anything).
		Return(fmt.Errorf("insert journal entry: %w", apperrors.ErrDuplicate)).Once()
	suite.uow.On("Rollback", mock.Anything).Return(nil).Once()
	suite.journalRepo.On("FindAutoEntryIDBySource", mock.Anything, domain.SourceInvoice, "inv-9").
		Return("winner-id", true, nil).Once()
	suite.journalRepo.On("FindEntryByID", mock.Anything, "winner-id").Return(winner, nil).Once()

	result, err := suite.service.Create(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal("winner-id", result.ID)
	suite.True(result.Balanced)
	suite.True(decimal.NewFromInt(1500).Equal(result.TotalDebits))
	suite.uow.AssertNotCalled(suite.T(), "Commit", mock.Anything)
	suite.uow.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreate_CommitFailureIsPersistenceError() {
	req := invoiceRequest("inv-10", "10", "10")
	suite.journalRepo.On("Begin", mock.Anything).Return(suite.uow, nil).Once()
	suite.expectAccounts()
	suite.writer.On("SaveEntry", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	suite.uow.On("Commit", mock.Anything).Return(errors.New("connection reset")).Once()
	suite.uow.On("Rollback", mock.Anything).Return(nil).Once()

	result, err := suite.service.Create(suite.ctx, req)

	suite.Nil(result)
	suite.True(errors.Is(err, apperrors.ErrPersistence))
	suite.uow.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreate_BeginFailure() {
	req := invoiceRequest("inv-11", "10", "10")
	suite.journalRepo.On("Begin", mock.Anything).Return(nil, errors.New("pool closed")).Once()

	_, err := suite.service.Create(suite.ctx, req)

	suite.True(errors.Is(err, apperrors.ErrPersistence))
}

func (suite *JournalServiceTestSuite) TestCreate_RepeatedCodeResolvedOnce() {
	req := dto.CreateAutoJournalEntryRequest{
		SourceType:  domain.SourceJobCompletion,
		SourceID:    "job-1",
		Date:        time.Now(),
		Description: "Job completion",
		Lines: []dto.AutoJournalLineRequest{
			{AccountCode: "5100", Debit: decimal.NewFromInt(10)},
			{AccountCode: "5100", Debit: decimal.NewFromInt(5)},
			{AccountCode: "1200", Credit: decimal.NewFromInt(15)},
		},
	}
	suite.journalRepo.On("Begin", mock.Anything).Return(suite.uow, nil).Once()
	suite.accounts.On("FindAccountsByCodes", mock.Anything, []string{"5100", "1200"}).
		Return(map[string]domain.Account{"5100": postingAccount("5100"), "1200": postingAccount("1200")}, nil).Once()
	suite.writer.On("SaveEntry", mock.Anything, mock.Anything,
		mock.MatchedBy(func(lines []domain.JournalEntryLine) bool { return len(lines) == 3 && lines[2].LineNumber == 3 }),
	).Return(nil).Once()
	suite.uow.On("Commit", mock.Anything).Return(nil).Once()

	_, err := suite.service.Create(suite.ctx, req)

	suite.Require().NoError(err)
	suite.accounts.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestFindExisting() {
	suite.journalRepo.On("FindAutoEntryIDBySource", mock.Anything, domain.SourceInvoice, "inv-1").Return("entry-1", true, nil).Once()
	suite.journalRepo.On("FindAutoEntryIDBySource", mock.Anything, domain.SourceJobCompletion, "inv-1").Return("", false, nil).Once()

	id, found, err := suite.service.FindExisting(suite.ctx, domain.SourceInvoice, "inv-1")
	suite.Require().NoError(err)
	suite.True(found)
	suite.Equal("entry-1", id)

	_, found, err = suite.service.FindExisting(suite.ctx, domain.SourceJobCompletion, "inv-1")
	suite.Require().NoError(err)
	suite.False(found)
}

func (suite *JournalServiceTestSuite) TestFindExisting_StorageError() {
	suite.journalRepo.On("FindAutoEntryIDBySource", mock.Anything, domain.SourceInvoice, "inv-1").
		Return("", false, errors.New("timeout")).Once()

	_, found, err := suite.service.FindExisting(suite.ctx, domain.SourceInvoice, "inv-1")

	suite.Error(err)
	suite.False(found)
}

func (suite *JournalServiceTestSuite) TestGetEntryByID() {
	entry := &domain.JournalEntry{EntryID: "entry-1"}
	lines := []domain.JournalEntryLine{{LineNumber: 1}, {LineNumber: 2}}
	suite.journalRepo.On("FindEntryByID", mock.Anything, "entry-1").Return(entry, nil).Once()
	suite.journalRepo.On("FindLinesByEntryID", mock.Anything, "entry-1").Return(lines, nil).Once()

	got, err := suite.service.GetEntryByID(suite.ctx, "entry-1")

	suite.Require().NoError(err)
	suite.Len(got.Lines, 2)
}

func (suite *JournalServiceTestSuite) TestGetEntryByID_NotFound() {
	suite.journalRepo.On("FindEntryByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetEntryByID(suite.ctx, "missing")

	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func TestValidateLines_Delegates(t *testing.T) {
	repo := new(MockJournalRepository)
	resolver := services.NewIdempotencyResolver(repo)
	svc := services.NewJournalService(repo, resolver, services.NewEntryWriter(repo, resolver))

	result := svc.ValidateLines([]dto.AutoJournalLineRequest{
		{AccountCode: "1100", Debit: decimal.NewFromInt(1500)},
		{AccountCode: "4000", Credit: decimal.NewFromInt(1500)},
	})

	require.True(t, result.Valid)
	assert.True(t, result.Balanced)
	assert.Empty(t, result.Errors)
}

func (suite *JournalServiceTestSuite) TestListEntries_ClampsLimit() {
	next := "token-2"
	entries := []domain.JournalEntry{{EntryID: "e-1"}, {EntryID: "e-2"}}
	suite.journalRepo.On("ListEntries", mock.Anything, domain.SourceInvoice, 100, (*string)(nil)).Return(entries, &next, nil).Once()

	got, token, err := suite.service.ListEntries(suite.ctx, domain.SourceInvoice, 5000, nil)

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.Require().NotNil(token)
	suite.Equal("token-2", *token)
}

func (suite *JournalServiceTestSuite) TestListEntries_UnknownSourceType() {
	_, _, err := suite.service.ListEntries(suite.ctx, "REFUND", 10, nil)

	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.journalRepo.AssertNotCalled(suite.T(), "ListEntries", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
