package services_test

import (
	"context"
	"errors"
	"io"
	"strings"
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

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) SaveUserTx(ctx context.Context, tx pgx.Tx, user domain.User, password string) error {
	args := m.Called(ctx, tx, user, password)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock RoleRepository ---
type MockRoleRepository struct {
	mock.Mock
}

var _ portsrepo.RoleRepositoryFacade = (*MockRoleRepository)(nil)

func (m *MockRoleRepository) FindRoleByName(ctx context.Context, name string) (*domain.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}

func (m *MockRoleRepository) AttachRoleToUserTx(ctx context.Context, tx pgx.Tx, roleID string, userID string) error {
	args := m.Called(ctx, tx, roleID, userID)
	return args.Error(0)
}

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
}

var _ portsrepo.EmployeeRepositoryWithTx = (*MockEmployeeRepository)(nil)

func (m *MockEmployeeRepository) SaveEmployeeTx(ctx context.Context, tx pgx.Tx, employee domain.Employee) error {
	args := m.Called(ctx, tx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) SaveHistoryTx(ctx context.Context, tx pgx.Tx, history domain.EmployeeHistory) error {
	args := m.Called(ctx, tx, history)
	return args.Error(0)
}

func (m *MockEmployeeRepository) TouchLatestHistoryTx(ctx context.Context, tx pgx.Tx, employeeID string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tx, employeeID, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindHistoriesByEmployeeID(ctx context.Context, employeeID string) ([]domain.EmployeeHistory, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EmployeeHistory), args.Error(1)
}

// Transaction passthroughs; fn runs with a nil tx since the repository
// methods are mocked individually.
func (m *MockEmployeeRepository) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (m *MockEmployeeRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return nil
}
func (m *MockEmployeeRepository) Rollback(ctx context.Context, tx pgx.Tx) error { return nil }
func (m *MockEmployeeRepository) RunInTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
	return fn(ctx, nil)
}
func (m *MockEmployeeRepository) RunInTxWithHandler(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error, onErr func(ctx context.Context, err error, tx pgx.Tx)) error {
	err := fn(ctx, nil)
	if err != nil && onErr != nil {
		onErr(ctx, err, nil)
	}
	return err
}
func (m *MockEmployeeRepository) SafeRollback(ctx context.Context, tx pgx.Tx) {}
func (m *MockEmployeeRepository) SafeCommit(ctx context.Context, tx pgx.Tx) error {
	return nil
}

// --- Mock FileMover ---
type MockFileMover struct {
	mock.Mock
}

var _ portsrepo.FileMover = (*MockFileMover)(nil)

func (m *MockFileMover) Save(ctx context.Context, content io.Reader, originalName string) (string, error) {
	args := m.Called(ctx, content, originalName)
	return args.String(0), args.Error(1)
}

// --- Test Suite Setup ---
type OnboardingServiceTestSuite struct {
	suite.Suite
	mockUserRepo     *MockUserRepository
	mockRoleRepo     *MockRoleRepository
	mockEmployeeRepo *MockEmployeeRepository
	mockFileMover    *MockFileMover
	service          portssvc.OnboardingSvcFacade
	guestRole        domain.Role
	creatorID        string
}

func (suite *OnboardingServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockRoleRepo = new(MockRoleRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.mockFileMover = new(MockFileMover)
	suite.service = services.NewOnboardingService(suite.mockUserRepo, suite.mockRoleRepo, suite.mockEmployeeRepo, suite.mockFileMover, false)

	suite.guestRole = domain.Role{RoleID: uuid.NewString(), Name: domain.DefaultRoleName}
	suite.creatorID = uuid.NewString()
}

func (suite *OnboardingServiceTestSuite) onboardRequest() dto.OnboardEmployeeRequest {
	birthDate := "1995-06-15"
	return dto.OnboardEmployeeRequest{
		Email: "new.hire@example.com",
		Employee: dto.EmployeePayload{
			Name:      "New Hire",
			BirthDate: &birthDate,
			JoinDate:  "2024-02-01",
		},
		History: dto.HistoryPayload{
			JobTitle:  "Accountant",
			Company:   "Acme",
			Branch:    "HQ",
			Division:  "Finance",
			Salary:    decimal.NewFromInt(5000),
			Allowance: decimal.NewFromInt(500),
		},
	}
}

// --- OnboardEmployee ---

func (suite *OnboardingServiceTestSuite) TestOnboardEmployee_Success() {
	ctx := context.Background()
	req := suite.onboardRequest()

	suite.mockUserRepo.On("SaveUserTx", ctx, mock.Anything, mock.AnythingOfType("domain.User"), mock.AnythingOfType("string")).Return(nil).Once()
	suite.mockRoleRepo.On("FindRoleByName", ctx, domain.DefaultRoleName).Return(&suite.guestRole, nil).Once()
	suite.mockRoleRepo.On("AttachRoleToUserTx", ctx, mock.Anything, suite.guestRole.RoleID, mock.AnythingOfType("string")).Return(nil).Once()
	suite.mockEmployeeRepo.On("SaveEmployeeTx", ctx, mock.Anything, mock.AnythingOfType("domain.Employee")).Return(nil).Once()
	suite.mockEmployeeRepo.On("SaveHistoryTx", ctx, mock.Anything, mock.AnythingOfType("domain.EmployeeHistory")).Return(nil).Once()

	user, employee, err := suite.service.OnboardEmployee(ctx, req, nil, suite.creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Require().NotNil(employee)
	suite.Equal(req.Email, user.Email)
	suite.Equal(req.Employee.Name, user.Name)
	suite.True(user.IsActive)
	suite.Equal(user.UserID, employee.UserID)
	suite.Nil(employee.AvatarPath)
	suite.Require().NotNil(employee.BirthDate)
	suite.Equal(time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC), *employee.BirthDate)
	suite.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), employee.JoinDate)
	suite.Equal(suite.creatorID, user.CreatedBy)

	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockRoleRepo.AssertExpectations(suite.T())
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
	suite.mockFileMover.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OnboardingServiceTestSuite) TestOnboardEmployee_WithAvatar() {
	ctx := context.Background()
	req := suite.onboardRequest()
	avatar := &dto.UploadFile{Name: "photo.png", Content: strings.NewReader("png-bytes")}
	storedPath := uuid.NewString() + ".png"

	suite.mockFileMover.On("Save", ctx, avatar.Content, "photo.png").Return(storedPath, nil).Once()
	suite.mockUserRepo.On("SaveUserTx", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockRoleRepo.On("FindRoleByName", ctx, domain.DefaultRoleName).Return(&suite.guestRole, nil).Once()
	suite.mockRoleRepo.On("AttachRoleToUserTx", ctx, mock.Anything, suite.guestRole.RoleID, mock.Anything).Return(nil).Once()
	suite.mockEmployeeRepo.On("SaveEmployeeTx", ctx, mock.Anything, mock.MatchedBy(func(e domain.Employee) bool {
		return e.AvatarPath != nil && *e.AvatarPath == storedPath
	})).Return(nil).Once()
	suite.mockEmployeeRepo.On("SaveHistoryTx", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	_, employee, err := suite.service.OnboardEmployee(ctx, req, avatar, suite.creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(employee.AvatarPath)
	suite.Equal(storedPath, *employee.AvatarPath)
	suite.mockFileMover.AssertExpectations(suite.T())
}

func (suite *OnboardingServiceTestSuite) TestOnboardEmployee_AvatarFailureAbortsBeforeWrites() {
	ctx := context.Background()
	req := suite.onboardRequest()
	avatar := &dto.UploadFile{Name: "photo.png", Content: strings.NewReader("png-bytes")}
	diskErr := errors.New("no space left on device")

	suite.mockFileMover.On("Save", ctx, avatar.Content, "photo.png").Return("", diskErr).Once()

	_, _, err := suite.service.OnboardEmployee(ctx, req, avatar, suite.creatorID)

	suite.Require().ErrorIs(err, diskErr)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUserTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockEmployeeRepo.AssertNotCalled(suite.T(), "SaveEmployeeTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OnboardingServiceTestSuite) TestOnboardEmployee_MissingRoleLenient() {
	ctx := context.Background()
	req := suite.onboardRequest()

	suite.mockUserRepo.On("SaveUserTx", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockRoleRepo.On("FindRoleByName", ctx, domain.DefaultRoleName).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockEmployeeRepo.On("SaveEmployeeTx", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockEmployeeRepo.On("SaveHistoryTx", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	user, _, err := suite.service.OnboardEmployee(ctx, req, nil, suite.creatorID)

	suite.Require().NoError(err)
	suite.NotNil(user)
	suite.mockRoleRepo.AssertNotCalled(suite.T(), "AttachRoleToUserTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OnboardingServiceTestSuite) TestOnboardEmployee_MissingRoleStrict() {
	ctx := context.Background()
	req := suite.onboardRequest()
	strictService := services.NewOnboardingService(suite.mockUserRepo, suite.mockRoleRepo, suite.mockEmployeeRepo, suite.mockFileMover, true)

	suite.mockUserRepo.On("SaveUserTx", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockRoleRepo.On("FindRoleByName", ctx, domain.DefaultRoleName).Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := strictService.OnboardEmployee(ctx, req, nil, suite.creatorID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockEmployeeRepo.AssertNotCalled(suite.T(), "SaveEmployeeTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OnboardingServiceTestSuite) TestOnboardEmployee_StepFailurePropagates() {
	ctx := context.Background()
	req := suite.onboardRequest()
	dbErr := errors.New("employees_user_id_key violation")

	suite.mockUserRepo.On("SaveUserTx", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockRoleRepo.On("FindRoleByName", ctx, domain.DefaultRoleName).Return(&suite.guestRole, nil).Once()
	suite.mockRoleRepo.On("AttachRoleToUserTx", ctx, mock.Anything, suite.guestRole.RoleID, mock.Anything).Return(nil).Once()
	suite.mockEmployeeRepo.On("SaveEmployeeTx", ctx, mock.Anything, mock.Anything).Return(dbErr).Once()

	_, _, err := suite.service.OnboardEmployee(ctx, req, nil, suite.creatorID)

	suite.Require().ErrorIs(err, dbErr)
	suite.mockEmployeeRepo.AssertNotCalled(suite.T(), "SaveHistoryTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OnboardingServiceTestSuite) TestOnboardEmployee_BadJoinDate() {
	ctx := context.Background()
	req := suite.onboardRequest()
	req.Employee.JoinDate = "01/02/2024"

	_, _, err := suite.service.OnboardEmployee(ctx, req, nil, suite.creatorID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUserTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OnboardingServiceTestSuite) TestOnboardEmployee_MissingJoinDate() {
	ctx := context.Background()
	req := suite.onboardRequest()
	req.Employee.JoinDate = ""

	_, _, err := suite.service.OnboardEmployee(ctx, req, nil, suite.creatorID)

	suite.Require().ErrorIs(err, services.ErrJoinDateMissing)
}

// --- RecordAssignmentChange ---

func (suite *OnboardingServiceTestSuite) TestRecordAssignmentChange_Success() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	actorID := uuid.NewString()
	req := dto.AssignmentChangeRequest{
		JobTitle: "Senior Accountant",
		Company:  "Acme",
		Salary:   decimal.NewFromInt(6500),
	}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(&domain.Employee{EmployeeID: employeeID}, nil).Once()
	suite.mockEmployeeRepo.On("TouchLatestHistoryTx", ctx, mock.Anything, employeeID, actorID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockEmployeeRepo.On("SaveHistoryTx", ctx, mock.Anything, mock.MatchedBy(func(h domain.EmployeeHistory) bool {
		return h.EmployeeID == employeeID && h.JobTitle == "Senior Accountant"
	})).Return(nil).Once()

	history, err := suite.service.RecordAssignmentChange(ctx, employeeID, req, actorID)

	suite.Require().NoError(err)
	suite.NotEmpty(history.HistoryID)
	suite.Equal(actorID, history.CreatedBy)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func (suite *OnboardingServiceTestSuite) TestRecordAssignmentChange_EmployeeNotFound() {
	ctx := context.Background()
	employeeID := uuid.NewString()

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RecordAssignmentChange(ctx, employeeID, dto.AssignmentChangeRequest{JobTitle: "x", Company: "y"}, uuid.NewString())

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockEmployeeRepo.AssertNotCalled(suite.T(), "SaveHistoryTx", mock.Anything, mock.Anything, mock.Anything)
}

func TestOnboardingService(t *testing.T) {
	suite.Run(t, new(OnboardingServiceTestSuite))
}
