package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/merpati-sia/bookkeeping/internal/apperrors"
	"github.com/merpati-sia/bookkeeping/internal/core/domain"
	portssvc "github.com/merpati-sia/bookkeeping/internal/core/ports/services"
	"github.com/merpati-sia/bookkeeping/internal/core/services"
	"github.com/merpati-sia/bookkeeping/internal/dto"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	var accounts map[string]domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).(map[string]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	var accounts []domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// --- Test Suite ---
type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Code: "1101", Name: "Kas"}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(account domain.Account) bool {
		return account.Code == "1101" && account.Name == "Kas" && account.AccountID != ""
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal("1101", account.Code)
	suite.Equal("Kas", account.Name)
	suite.Equal("user-1", account.CreatedBy)
	suite.NotEmpty(account.AccountID)

	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_UnclassifiedCodeAllowed() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Code: "8101", Name: "Pos Lain-lain"}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.Anything).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal("8101", account.Code)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_FreeTextCodeAllowed() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Code: "KAS-01", Name: "Kas Kecil"}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.Anything).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal("KAS-01", account.Code)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InvalidCode() {
	ctx := context.Background()

	testCases := []struct {
		name string
		req  dto.CreateAccountRequest
	}{
		{name: "empty code", req: dto.CreateAccountRequest{Code: "", Name: "Kas"}},
		{name: "blank code", req: dto.CreateAccountRequest{Code: "   ", Name: "Kas"}},
		{name: "blank name", req: dto.CreateAccountRequest{Code: "1101", Name: "   "}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			account, err := suite.service.CreateAccount(ctx, tc.req, "user-1")
			suite.Require().Error(err)
			suite.ErrorIs(err, apperrors.ErrValidation)
			suite.Nil(account)
		})
	}

	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Code: "1101", Name: "Kas"}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	account, err := suite.service.CreateAccount(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(account)
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_Success() {
	ctx := context.Background()
	expected := &domain.Account{AccountID: "acc-1", Code: "1101", Name: "Kas"}

	suite.mockAccountRepo.On("FindAccountByID", ctx, "acc-1").Return(expected, nil).Once()

	account, err := suite.service.GetAccountByID(ctx, "acc-1")

	suite.Require().NoError(err)
	suite.Equal(expected, account)
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(ctx, "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(account)
}

func (suite *AccountServiceTestSuite) TestListAccounts_EmptyRegistry() {
	ctx := context.Background()

	suite.mockAccountRepo.On("ListAccounts", ctx).Return(nil, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx)

	suite.Require().NoError(err)
	suite.NotNil(accounts)
	suite.Empty(accounts)
}

func (suite *AccountServiceTestSuite) TestListAccounts_RepoError() {
	ctx := context.Background()

	suite.mockAccountRepo.On("ListAccounts", ctx).Return(nil, assert.AnError).Once()

	accounts, err := suite.service.ListAccounts(ctx)

	suite.Require().Error(err)
	suite.Nil(accounts)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_Success() {
	ctx := context.Background()

	suite.mockAccountRepo.On("DeleteAccount", ctx, "acc-1").Return(nil).Once()

	err := suite.service.DeleteAccount(ctx, "acc-1")

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_ReferencedByTransactions() {
	ctx := context.Background()

	suite.mockAccountRepo.On("DeleteAccount", ctx, "acc-1").Return(apperrors.ErrConflict).Once()

	err := suite.service.DeleteAccount(ctx, "acc-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
