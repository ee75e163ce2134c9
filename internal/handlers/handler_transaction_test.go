package handlers_test

import (
	"bytes"
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

	"github.com/merpati-sia/bookkeeping/internal/apperrors"
	"github.com/merpati-sia/bookkeeping/internal/core/domain"
	portssvc "github.com/merpati-sia/bookkeeping/internal/core/ports/services"
	"github.com/merpati-sia/bookkeeping/internal/dto"
	"github.com/merpati-sia/bookkeeping/internal/handlers"
	"github.com/merpati-sia/bookkeeping/internal/middleware"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context) ([]domain.JournalLine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

func (m *MockTransactionService) RecordTransaction(ctx context.Context, req dto.RecordTransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.RecordTransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router                 *gin.Engine
	mockTransactionService *MockTransactionService
	jwtSecret              string
}

func (suite *TransactionHandlerTestSuite) generateTestToken(userID string) string {
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

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockTransactionService = new(MockTransactionService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterTransactionRoutes(v1, suite.mockTransactionService)
}

func (suite *TransactionHandlerTestSuite) authedRequest(method, url string, body []byte, userID string) *http.Request {
	req, _ := http.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func validRecordRequest() dto.RecordTransactionRequest {
	return dto.RecordTransactionRequest{
		TxDate:          "2024-03-01",
		Description:     "Penjualan tunai",
		DebitAccountID:  "acc-kas",
		CreditAccountID: "acc-penjualan",
		Amount:          decimal.NewFromInt(500000),
	}
}

func (suite *TransactionHandlerTestSuite) TestRecordTransaction_Success() {
	userID := uuid.NewString()
	expected := &domain.Transaction{
		TransactionID:   uuid.NewString(),
		TxDate:          "2024-03-01",
		Description:     "Penjualan tunai",
		DebitAccountID:  "acc-kas",
		CreditAccountID: "acc-penjualan",
		Amount:          decimal.NewFromInt(500000),
		EntryKind:       domain.EntryNormal,
	}

	suite.mockTransactionService.On("RecordTransaction",
		mock.Anything,
		mock.MatchedBy(func(req dto.RecordTransactionRequest) bool {
			return req.TxDate == "2024-03-01" && req.Amount.Equal(decimal.NewFromInt(500000))
		}),
		userID,
	).Return(expected, nil).Once()

	body, _ := json.Marshal(validRecordRequest())
	req := suite.authedRequest(http.MethodPost, "/api/v1/transactions", body, userID)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var response dto.TransactionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(expected.TransactionID, response.TransactionID)
	suite.Equal(domain.EntryNormal, response.EntryKind)

	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestRecordTransaction_ValidationError() {
	userID := uuid.NewString()

	suite.mockTransactionService.On("RecordTransaction", mock.Anything, mock.Anything, userID).
		Return(nil, apperrors.ErrValidation).Once()

	reqBody := validRecordRequest()
	reqBody.CreditAccountID = reqBody.DebitAccountID
	body, _ := json.Marshal(reqBody)
	req := suite.authedRequest(http.MethodPost, "/api/v1/transactions", body, userID)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestRecordTransaction_InvalidEntryKind() {
	userID := uuid.NewString()

	body := []byte(`{"txDate":"2024-03-01","description":"x","debitAccountID":"a","creditAccountID":"b","amount":"100","entryKind":"WEIRD"}`)
	req := suite.authedRequest(http.MethodPost, "/api/v1/transactions", body, userID)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTransactionService.AssertNotCalled(suite.T(), "RecordTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestRecordTransaction_Unauthenticated() {
	body, _ := json.Marshal(validRecordRequest())
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewReader(body))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_Success() {
	userID := uuid.NewString()
	lines := []domain.JournalLine{
		{
			TransactionID: uuid.NewString(),
			TxDate:        "2024-03-01",
			Description:   "Penjualan tunai",
			DebitCode:     "1101",
			DebitName:     "Kas",
			CreditCode:    "4101",
			CreditName:    "Penjualan",
			Amount:        decimal.NewFromInt(500000),
			EntryKind:     domain.EntryNormal,
		},
	}

	suite.mockTransactionService.On("ListTransactions", mock.Anything).Return(lines, nil).Once()

	req := suite.authedRequest(http.MethodGet, "/api/v1/transactions", nil, userID)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var response dto.ListTransactionsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Len(response.Transactions, 1)
	suite.Equal("1101", response.Transactions[0].DebitCode)
	suite.Equal("Penjualan", response.Transactions[0].CreditName)
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_NotFound() {
	userID := uuid.NewString()

	suite.mockTransactionService.On("GetTransactionByID", mock.Anything, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	req := suite.authedRequest(http.MethodGet, "/api/v1/transactions/missing", nil, userID)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestUpdateTransaction_NotFound() {
	userID := uuid.NewString()
	transactionID := uuid.NewString()

	suite.mockTransactionService.On("UpdateTransaction", mock.Anything, transactionID, mock.Anything, userID).
		Return(nil, apperrors.ErrNotFound).Once()

	body, _ := json.Marshal(validRecordRequest())
	req := suite.authedRequest(http.MethodPut, "/api/v1/transactions/"+transactionID, body, userID)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestUpdateTransaction_Success() {
	userID := uuid.NewString()
	transactionID := uuid.NewString()
	updated := &domain.Transaction{
		TransactionID:   transactionID,
		TxDate:          "2024-03-05",
		Description:     "Penjualan tunai (koreksi)",
		DebitAccountID:  "acc-kas",
		CreditAccountID: "acc-penjualan",
		Amount:          decimal.NewFromInt(450000),
		EntryKind:       domain.EntryNormal,
	}

	suite.mockTransactionService.On("UpdateTransaction", mock.Anything, transactionID, mock.Anything, userID).
		Return(updated, nil).Once()

	reqBody := validRecordRequest()
	reqBody.TxDate = "2024-03-05"
	reqBody.Amount = decimal.NewFromInt(450000)
	body, _ := json.Marshal(reqBody)
	req := suite.authedRequest(http.MethodPut, "/api/v1/transactions/"+transactionID, body, userID)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var response dto.TransactionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal("2024-03-05", response.TxDate)
	suite.True(response.Amount.Equal(decimal.NewFromInt(450000)))
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_Success() {
	userID := uuid.NewString()
	transactionID := uuid.NewString()

	suite.mockTransactionService.On("DeleteTransaction", mock.Anything, transactionID).Return(nil).Once()

	req := suite.authedRequest(http.MethodDelete, "/api/v1/transactions/"+transactionID, nil, userID)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_NotFound() {
	userID := uuid.NewString()
	transactionID := uuid.NewString()

	suite.mockTransactionService.On("DeleteTransaction", mock.Anything, transactionID).
		Return(apperrors.ErrNotFound).Once()

	req := suite.authedRequest(http.MethodDelete, "/api/v1/transactions/"+transactionID, nil, userID)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
