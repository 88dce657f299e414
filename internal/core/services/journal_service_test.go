package services_test

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gunarwibowo/erp_backoffice_app/internal/apperrors"
	"github.com/gunarwibowo/erp_backoffice_app/internal/core/domain"
	portsrepo "github.com/gunarwibowo/erp_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/gunarwibowo/erp_backoffice_app/internal/core/ports/services"
	"github.com/gunarwibowo/erp_backoffice_app/internal/core/services"
	"github.com/gunarwibowo/erp_backoffice_app/internal/dto"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryWithTx = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal, lines []domain.JournalLine) error {
	args := m.Called(ctx, journal, lines)
	return args.Error(0)
}

func (m *MockJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) FindJournalByIDForUpdate(ctx context.Context, tx pgx.Tx, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, tx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

func (m *MockJournalRepository) FindLatestJournalNumber(ctx context.Context, prefix string, dateSuffix string) (*string, error) {
	args := m.Called(ctx, prefix, dateSuffix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

func (m *MockJournalRepository) ListJournals(ctx context.Context, limit int, offset int) ([]domain.Journal, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) UpdateJournalStatusTx(ctx context.Context, tx pgx.Tx, journalID string, status domain.JournalStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tx, journalID, status, updatedBy, updatedAt)
	return args.Error(0)
}

// Transaction passthroughs: the repository methods are mocked individually,
// so the transaction itself is a no-op and fn runs with a nil tx.
func (m *MockJournalRepository) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (m *MockJournalRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return nil
}
func (m *MockJournalRepository) Rollback(ctx context.Context, tx pgx.Tx) error { return nil }
func (m *MockJournalRepository) RunInTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
	return fn(ctx, nil)
}
func (m *MockJournalRepository) RunInTxWithHandler(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error, onErr func(ctx context.Context, err error, tx pgx.Tx)) error {
	err := fn(ctx, nil)
	if err != nil && onErr != nil {
		onErr(ctx, err, nil)
	}
	return err
}
func (m *MockJournalRepository) SafeRollback(ctx context.Context, tx pgx.Tx) {}
func (m *MockJournalRepository) SafeCommit(ctx context.Context, tx pgx.Tx) error {
	return nil
}

// --- Mock AccountService (as used by JournalService) ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Test Suite Setup ---
type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccountSvc  *MockAccountService
	service         portssvc.JournalSvcFacade
	cashAccount     domain.Account
	revenueAccount  domain.Account
	parentAccount   domain.Account
	userID          string
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountSvc = new(MockAccountService)
	suite.service = services.NewJournalService(suite.mockJournalRepo, suite.mockAccountSvc, 3)

	suite.userID = uuid.NewString()

	suite.cashAccount = domain.Account{
		AccountID:     uuid.NewString(),
		Code:          "1000",
		Category:      domain.Asset,
		NormalBalance: domain.DebitSide,
		IsActive:      true,
	}
	suite.revenueAccount = domain.Account{
		AccountID:     uuid.NewString(),
		Code:          "4000",
		Category:      domain.Revenue,
		NormalBalance: domain.CreditSide,
		IsActive:      true,
	}
	suite.parentAccount = domain.Account{
		AccountID:     uuid.NewString(),
		Code:          "1",
		Category:      domain.Asset,
		NormalBalance: domain.DebitSide,
		IsParent:      true,
		IsActive:      true,
	}
}

func (suite *JournalServiceTestSuite) balancedRequest() dto.CreateJournalRequest {
	return dto.CreateJournalRequest{
		Date:        time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Description: "Cash sale",
		Lines: []dto.CreateJournalLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(100)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(100)},
		},
	}
}

func (suite *JournalServiceTestSuite) expectAccounts(accounts ...domain.Account) {
	accountsMap := make(map[string]domain.Account, len(accounts))
	for _, a := range accounts {
		accountsMap[a.AccountID] = a
	}
	suite.mockAccountSvc.On("GetAccountsByIDs", mock.Anything, mock.AnythingOfType("[]string")).Return(accountsMap, nil).Once()
}

// --- CreateJournal ---

func (suite *JournalServiceTestSuite) TestCreateJournal_Success() {
	ctx := context.Background()
	req := suite.balancedRequest()

	suite.expectAccounts(suite.cashAccount, suite.revenueAccount)
	suite.mockJournalRepo.On("FindLatestJournalNumber", ctx, "JRN", "100124").Return(nil, nil).Once()
	suite.mockJournalRepo.On("SaveJournal", ctx, mock.AnythingOfType("domain.Journal"), mock.AnythingOfType("[]domain.JournalLine")).Return(nil).Once()

	created, err := suite.service.CreateJournal(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.JournalID)
	suite.Equal("JRN-0001-100124", created.JournalNumber)
	suite.Regexp(regexp.MustCompile(`^JRN-\d{4}-\d{6}$`), created.JournalNumber)
	suite.Equal(domain.Draft, created.Status)
	suite.Equal(suite.userID, created.CreatedBy)
	suite.Len(created.Lines, 2)

	suite.mockAccountSvc.AssertExpectations(suite.T())
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateJournal_ContinuesDailySequence() {
	ctx := context.Background()
	req := suite.balancedRequest()

	latest := "JRN-0007-100124"
	suite.expectAccounts(suite.cashAccount, suite.revenueAccount)
	suite.mockJournalRepo.On("FindLatestJournalNumber", ctx, "JRN", "100124").Return(&latest, nil).Once()
	suite.mockJournalRepo.On("SaveJournal", ctx, mock.MatchedBy(func(j domain.Journal) bool {
		return j.JournalNumber == "JRN-0008-100124"
	}), mock.AnythingOfType("[]domain.JournalLine")).Return(nil).Once()

	created, err := suite.service.CreateJournal(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("JRN-0008-100124", created.JournalNumber)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateJournal_SequenceGrowsPastPadWidth() {
	ctx := context.Background()
	req := suite.balancedRequest()

	latest := "JRN-9999-100124"
	suite.expectAccounts(suite.cashAccount, suite.revenueAccount)
	suite.mockJournalRepo.On("FindLatestJournalNumber", ctx, "JRN", "100124").Return(&latest, nil).Once()
	suite.mockJournalRepo.On("SaveJournal", ctx, mock.MatchedBy(func(j domain.Journal) bool {
		return j.JournalNumber == "JRN-10000-100124"
	}), mock.AnythingOfType("[]domain.JournalLine")).Return(nil).Once()

	created, err := suite.service.CreateJournal(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("JRN-10000-100124", created.JournalNumber)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateJournal_ProvidedNumberSkipsGeneration() {
	ctx := context.Background()
	req := suite.balancedRequest()
	number := "JRN-CUSTOM-1"
	req.JournalNumber = &number

	suite.expectAccounts(suite.cashAccount, suite.revenueAccount)
	suite.mockJournalRepo.On("SaveJournal", ctx, mock.MatchedBy(func(j domain.Journal) bool {
		return j.JournalNumber == number
	}), mock.AnythingOfType("[]domain.JournalLine")).Return(nil).Once()

	created, err := suite.service.CreateJournal(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(number, created.JournalNumber)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "FindLatestJournalNumber", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_TooFewLines() {
	ctx := context.Background()
	req := suite.balancedRequest()
	req.Lines = req.Lines[:1]

	created, err := suite.service.CreateJournal(ctx, req, suite.userID)

	suite.Require().ErrorIs(err, services.ErrJournalMinEntries)
	suite.Nil(created)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveJournal", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_SingleAccount() {
	ctx := context.Background()
	req := suite.balancedRequest()
	req.Lines[1].AccountID = suite.cashAccount.AccountID

	_, err := suite.service.CreateJournal(ctx, req, suite.userID)

	suite.Require().ErrorIs(err, services.ErrJournalMinAccounts)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_MissingDescription() {
	ctx := context.Background()
	req := suite.balancedRequest()
	req.Description = ""

	_, err := suite.service.CreateJournal(ctx, req, suite.userID)

	suite.Require().ErrorIs(err, services.ErrDescriptionMissing)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_Unbalanced() {
	ctx := context.Background()
	req := suite.balancedRequest()
	req.Lines[1].Credit = decimal.NewFromInt(90)

	_, err := suite.service.CreateJournal(ctx, req, suite.userID)

	suite.Require().ErrorIs(err, services.ErrJournalUnbalanced)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveJournal", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_NegativeAmount() {
	ctx := context.Background()
	req := suite.balancedRequest()
	req.Lines[0].Debit = decimal.NewFromInt(-100)

	_, err := suite.service.CreateJournal(ctx, req, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_UnknownAccount() {
	ctx := context.Background()
	req := suite.balancedRequest()

	// Only the cash account exists.
	suite.expectAccounts(suite.cashAccount)

	_, err := suite.service.CreateJournal(ctx, req, suite.userID)

	suite.Require().ErrorIs(err, services.ErrAccountNotFound)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_InactiveAccount() {
	ctx := context.Background()
	req := suite.balancedRequest()

	inactive := suite.revenueAccount
	inactive.IsActive = false
	suite.expectAccounts(suite.cashAccount, inactive)

	_, err := suite.service.CreateJournal(ctx, req, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_ParentAccountRejected() {
	ctx := context.Background()
	req := suite.balancedRequest()
	req.Lines[0].AccountID = suite.parentAccount.AccountID

	suite.expectAccounts(suite.parentAccount, suite.revenueAccount)

	_, err := suite.service.CreateJournal(ctx, req, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_RetriesOnNumberCollision() {
	ctx := context.Background()
	req := suite.balancedRequest()

	latest := "JRN-0001-100124"
	suite.expectAccounts(suite.cashAccount, suite.revenueAccount)
	suite.mockJournalRepo.On("FindLatestJournalNumber", ctx, "JRN", "100124").Return(nil, nil).Once()
	suite.mockJournalRepo.On("SaveJournal", ctx, mock.MatchedBy(func(j domain.Journal) bool {
		return j.JournalNumber == "JRN-0001-100124"
	}), mock.Anything).Return(fmt.Errorf("insert journal: %w", apperrors.ErrDuplicate)).Once()
	// A concurrent writer took 0001; the retry recomputes from the new max.
	suite.mockJournalRepo.On("FindLatestJournalNumber", ctx, "JRN", "100124").Return(&latest, nil).Once()
	suite.mockJournalRepo.On("SaveJournal", ctx, mock.MatchedBy(func(j domain.Journal) bool {
		return j.JournalNumber == "JRN-0002-100124"
	}), mock.Anything).Return(nil).Once()

	created, err := suite.service.CreateJournal(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("JRN-0002-100124", created.JournalNumber)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateJournal_CollisionAttemptsExhausted() {
	ctx := context.Background()
	req := suite.balancedRequest()

	suite.expectAccounts(suite.cashAccount, suite.revenueAccount)
	suite.mockJournalRepo.On("FindLatestJournalNumber", ctx, "JRN", "100124").Return(nil, nil).Times(3)
	suite.mockJournalRepo.On("SaveJournal", ctx, mock.Anything, mock.Anything).Return(fmt.Errorf("insert journal: %w", apperrors.ErrDuplicate)).Times(3)

	_, err := suite.service.CreateJournal(ctx, req, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateJournal_SaveErrorPropagates() {
	ctx := context.Background()
	req := suite.balancedRequest()
	dbErr := errors.New("connection reset")

	suite.expectAccounts(suite.cashAccount, suite.revenueAccount)
	suite.mockJournalRepo.On("FindLatestJournalNumber", ctx, "JRN", "100124").Return(nil, nil).Once()
	suite.mockJournalRepo.On("SaveJournal", ctx, mock.Anything, mock.Anything).Return(dbErr).Once()

	_, err := suite.service.CreateJournal(ctx, req, suite.userID)

	suite.Require().ErrorIs(err, dbErr)
}

// --- GetJournalByID / ListJournals ---

func (suite *JournalServiceTestSuite) TestGetJournalByID_IncludesLines() {
	ctx := context.Background()
	journalID := uuid.NewString()
	journal := &domain.Journal{JournalID: journalID, Status: domain.Draft}
	lines := []domain.JournalLine{
		{LineID: uuid.NewString(), JournalID: journalID, Debit: decimal.NewFromInt(50)},
		{LineID: uuid.NewString(), JournalID: journalID, Credit: decimal.NewFromInt(50)},
	}

	suite.mockJournalRepo.On("FindJournalByID", ctx, journalID).Return(journal, nil).Once()
	suite.mockJournalRepo.On("FindLinesByJournalID", ctx, journalID).Return(lines, nil).Once()

	got, err := suite.service.GetJournalByID(ctx, journalID)

	suite.Require().NoError(err)
	suite.Len(got.Lines, 2)
}

func (suite *JournalServiceTestSuite) TestGetJournalByID_NotFound() {
	ctx := context.Background()
	journalID := uuid.NewString()

	suite.mockJournalRepo.On("FindJournalByID", ctx, journalID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetJournalByID(ctx, journalID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *JournalServiceTestSuite) TestListJournals_DefaultsLimit() {
	ctx := context.Background()

	suite.mockJournalRepo.On("ListJournals", ctx, 20, 0).Return([]domain.Journal{{JournalID: uuid.NewString()}}, nil).Once()

	resp, err := suite.service.ListJournals(ctx, dto.ListJournalsParams{})

	suite.Require().NoError(err)
	suite.Len(resp.Journals, 1)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

// --- PostJournal / CancelJournal ---

func (suite *JournalServiceTestSuite) TestPostJournal_Success() {
	ctx := context.Background()
	journalID := uuid.NewString()
	journal := &domain.Journal{JournalID: journalID, Status: domain.Draft}
	lines := []domain.JournalLine{
		{Debit: decimal.NewFromInt(100)},
		{Credit: decimal.NewFromInt(100)},
	}

	suite.mockJournalRepo.On("FindJournalByIDForUpdate", ctx, mock.Anything, journalID).Return(journal, nil).Once()
	suite.mockJournalRepo.On("FindLinesByJournalID", ctx, journalID).Return(lines, nil).Once()
	suite.mockJournalRepo.On("UpdateJournalStatusTx", ctx, mock.Anything, journalID, domain.Posted, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	posted, err := suite.service.PostJournal(ctx, journalID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.Posted, posted.Status)
	suite.Equal(suite.userID, posted.LastUpdatedBy)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestPostJournal_NotFound() {
	ctx := context.Background()
	journalID := uuid.NewString()

	suite.mockJournalRepo.On("FindJournalByIDForUpdate", ctx, mock.Anything, journalID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.PostJournal(ctx, journalID, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *JournalServiceTestSuite) TestPostJournal_AlreadyPosted() {
	ctx := context.Background()
	journalID := uuid.NewString()
	journal := &domain.Journal{JournalID: journalID, Status: domain.Posted}

	suite.mockJournalRepo.On("FindJournalByIDForUpdate", ctx, mock.Anything, journalID).Return(journal, nil).Once()

	_, err := suite.service.PostJournal(ctx, journalID, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "UpdateJournalStatusTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestPostJournal_StoredLinesUnbalanced() {
	ctx := context.Background()
	journalID := uuid.NewString()
	journal := &domain.Journal{JournalID: journalID, Status: domain.Draft}
	lines := []domain.JournalLine{
		{Debit: decimal.NewFromInt(100)},
		{Credit: decimal.NewFromInt(40)},
	}

	suite.mockJournalRepo.On("FindJournalByIDForUpdate", ctx, mock.Anything, journalID).Return(journal, nil).Once()
	suite.mockJournalRepo.On("FindLinesByJournalID", ctx, journalID).Return(lines, nil).Once()

	_, err := suite.service.PostJournal(ctx, journalID, suite.userID)

	suite.Require().ErrorIs(err, services.ErrJournalUnbalanced)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "UpdateJournalStatusTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCancelJournal_FromDraft() {
	ctx := context.Background()
	journalID := uuid.NewString()
	journal := &domain.Journal{JournalID: journalID, Status: domain.Draft}

	suite.mockJournalRepo.On("FindJournalByIDForUpdate", ctx, mock.Anything, journalID).Return(journal, nil).Once()
	suite.mockJournalRepo.On("UpdateJournalStatusTx", ctx, mock.Anything, journalID, domain.Cancelled, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	cancelled, err := suite.service.CancelJournal(ctx, journalID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.Cancelled, cancelled.Status)
}

func (suite *JournalServiceTestSuite) TestCancelJournal_FromPosted() {
	ctx := context.Background()
	journalID := uuid.NewString()
	journal := &domain.Journal{JournalID: journalID, Status: domain.Posted}

	suite.mockJournalRepo.On("FindJournalByIDForUpdate", ctx, mock.Anything, journalID).Return(journal, nil).Once()
	suite.mockJournalRepo.On("UpdateJournalStatusTx", ctx, mock.Anything, journalID, domain.Cancelled, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	cancelled, err := suite.service.CancelJournal(ctx, journalID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.Cancelled, cancelled.Status)
}

func (suite *JournalServiceTestSuite) TestCancelJournal_AlreadyCancelled() {
	ctx := context.Background()
	journalID := uuid.NewString()
	journal := &domain.Journal{JournalID: journalID, Status: domain.Cancelled}

	suite.mockJournalRepo.On("FindJournalByIDForUpdate", ctx, mock.Anything, journalID).Return(journal, nil).Once()

	_, err := suite.service.CancelJournal(ctx, journalID, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrInvalidState)
}

func TestJournalService(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
