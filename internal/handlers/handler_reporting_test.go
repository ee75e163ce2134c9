package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/merpati-sia/bookkeeping/internal/core/accounting"
	"github.com/merpati-sia/bookkeeping/internal/core/domain"
	portssvc "github.com/merpati-sia/bookkeeping/internal/core/ports/services"
	"github.com/merpati-sia/bookkeeping/internal/dto"
	"github.com/merpati-sia/bookkeeping/internal/handlers"
	"github.com/merpati-sia/bookkeeping/internal/middleware"
)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) TrialBalance(ctx context.Context, opts accounting.TrialBalanceOptions) ([]domain.TrialBalanceRow, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Error(1)
}

func (m *MockReportingService) IncomeStatement(ctx context.Context, fromDate, toDate string) (*domain.IncomeStatement, error) {
	args := m.Called(ctx, fromDate, toDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeStatement), args.Error(1)
}

func (m *MockReportingService) BalanceSheet(ctx context.Context) (domain.BalanceSheet, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.BalanceSheet), args.Error(1)
}

func (m *MockReportingService) Ledgers(ctx context.Context) ([]domain.AccountLedger, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountLedger), args.Error(1)
}

func (m *MockReportingService) LedgerForAccount(ctx context.Context, accountCode string) (*domain.AccountLedger, error) {
	args := m.Called(ctx, accountCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountLedger), args.Error(1)
}

func (m *MockReportingService) Receivables(ctx context.Context) (domain.SubsidiaryLedger, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.SubsidiaryLedger), args.Error(1)
}

func (m *MockReportingService) Payables(ctx context.Context) (domain.SubsidiaryLedger, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.SubsidiaryLedger), args.Error(1)
}

func (m *MockReportingService) ActivitySummary(ctx context.Context) (domain.ActivitySummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ActivitySummary), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Test Suite ---
type ReportingHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockReportingService *MockReportingService
	jwtSecret            string
}

func (suite *ReportingHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "bookkeeping-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ReportingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockReportingService = new(MockReportingService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterReportingRoutes(v1, suite.mockReportingService)
}

func (suite *ReportingHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ReportingHandlerTestSuite) TestTrialBalance_DefaultView() {
	rows := []domain.TrialBalanceRow{
		{AccountCode: "1101", AccountName: "Kas", Debit: decimal.NewFromInt(500000), Credit: decimal.Zero},
		{AccountCode: "4101", AccountName: "Penjualan", Debit: decimal.Zero, Credit: decimal.NewFromInt(500000)},
	}

	suite.mockReportingService.On("TrialBalance", mock.Anything, accounting.TrialBalanceOptions{}).
		Return(rows, nil).Once()

	w := suite.get("/api/v1/reports/trial-balance")

	suite.Equal(http.StatusOK, w.Code)

	var response dto.TrialBalanceResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal("full", response.View)
	suite.Len(response.Rows, 2)
	suite.True(response.Totals.Debit.Equal(response.Totals.Credit))
}

func (suite *ReportingHandlerTestSuite) TestTrialBalance_BeforeAdjustmentView() {
	suite.mockReportingService.On("TrialBalance", mock.Anything, accounting.TrialBalanceOptions{
		FromDate:           "2024-01-01",
		ToDate:             "2024-12-31",
		ExcludeAdjustments: true,
	}).Return([]domain.TrialBalanceRow{}, nil).Once()

	w := suite.get("/api/v1/reports/trial-balance?from=2024-01-01&to=2024-12-31&view=before-adjustment")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestTrialBalance_BadDate() {
	w := suite.get("/api/v1/reports/trial-balance?from=01-01-2024")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReportingService.AssertNotCalled(suite.T(), "TrialBalance", mock.Anything, mock.Anything)
}

func (suite *ReportingHandlerTestSuite) TestTrialBalance_BadView() {
	w := suite.get("/api/v1/reports/trial-balance?view=partial")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ReportingHandlerTestSuite) TestIncomeStatement_NoData() {
	suite.mockReportingService.On("IncomeStatement", mock.Anything, "", "").
		Return(nil, nil).Once()

	w := suite.get("/api/v1/reports/income-statement")

	suite.Equal(http.StatusOK, w.Code)

	var response dto.IncomeStatementResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.True(response.NoData)
	suite.Nil(response.Revenue)
}

func (suite *ReportingHandlerTestSuite) TestBalanceSheet_Success() {
	sheet := domain.BalanceSheet{
		Assets: domain.StatementSection{
			Items: []domain.StatementItem{{AccountCode: "1101", AccountName: "Kas", Amount: decimal.NewFromInt(1000)}},
			Total: decimal.NewFromInt(1000),
		},
		Balanced:    false,
		IdentityGap: decimal.NewFromInt(1000),
	}

	suite.mockReportingService.On("BalanceSheet", mock.Anything).Return(sheet, nil).Once()

	w := suite.get("/api/v1/reports/balance-sheet")

	suite.Equal(http.StatusOK, w.Code)

	var response dto.BalanceSheetResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.False(response.Balanced)
	suite.True(response.IdentityGap.Equal(decimal.NewFromInt(1000)))
}

func (suite *ReportingHandlerTestSuite) TestLedgerForAccount_Success() {
	ledger := &domain.AccountLedger{
		AccountCode: "1101",
		AccountName: "Kas",
		Entries: []domain.LedgerEntry{
			{TxDate: "2024-03-01", TransactionID: "txn-1", Debit: decimal.NewFromInt(500000), RunningBalance: decimal.NewFromInt(500000)},
		},
	}

	suite.mockReportingService.On("LedgerForAccount", mock.Anything, "1101").Return(ledger, nil).Once()

	w := suite.get("/api/v1/reports/ledgers/1101")

	suite.Equal(http.StatusOK, w.Code)

	var response dto.AccountLedgerResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal("1101", response.AccountCode)
	suite.Len(response.Entries, 1)
}

func (suite *ReportingHandlerTestSuite) TestReceivables_Success() {
	ledger := domain.SubsidiaryLedger{
		ControlCode: "1102",
		Nature:      domain.DebitNormal,
		Parties: []domain.PartyLedger{
			{Party: "Toko A", Entries: []domain.PartyLedgerEntry{
				{TxDate: "2024-03-02", TransactionID: "txn-2", DebitCode: "1102", CreditCode: "4101", Amount: decimal.NewFromInt(200000), RunningBalance: decimal.NewFromInt(200000)},
			}},
		},
	}

	suite.mockReportingService.On("Receivables", mock.Anything).Return(ledger, nil).Once()

	w := suite.get("/api/v1/reports/receivables")

	suite.Equal(http.StatusOK, w.Code)

	var response dto.SubsidiaryLedgerResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal("1102", response.ControlCode)
	suite.Require().Len(response.Parties, 1)
	suite.Equal("Toko A", response.Parties[0].Party)
}

func (suite *ReportingHandlerTestSuite) TestSummary_Success() {
	summary := domain.ActivitySummary{
		TransactionCount: 2,
		TotalSales:       decimal.NewFromInt(700000),
		CashBalance:      decimal.NewFromInt(500000),
	}

	suite.mockReportingService.On("ActivitySummary", mock.Anything).Return(summary, nil).Once()

	w := suite.get("/api/v1/reports/summary")

	suite.Equal(http.StatusOK, w.Code)

	var response dto.ActivitySummaryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(2, response.TransactionCount)
	suite.True(response.TotalSales.Equal(decimal.NewFromInt(700000)))
}

func TestReportingHandler(t *testing.T) {
	suite.Run(t, new(ReportingHandlerTestSuite))
}
