package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/merpati-sia/bookkeeping/internal/apperrors"
	"github.com/merpati-sia/bookkeeping/internal/core/accounting"
	"github.com/merpati-sia/bookkeeping/internal/core/domain"
	portssvc "github.com/merpati-sia/bookkeeping/internal/core/ports/services"
	"github.com/merpati-sia/bookkeeping/internal/dto"
	"github.com/merpati-sia/bookkeeping/internal/middleware"
)

// Trial balance view names. The "before-adjustment" view excludes
// ADJUSTMENT entries; "full" includes everything.
const (
	trialBalanceViewFull             = "full"
	trialBalanceViewBeforeAdjustment = "before-adjustment"
)

// reportingHandler handles HTTP requests for derived reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// RegisterReportingRoutes registers routes for the derived reports.
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.trialBalance)
		reports.GET("/income-statement", h.incomeStatement)
		reports.GET("/balance-sheet", h.balanceSheet)
		reports.GET("/ledgers", h.ledgers)
		reports.GET("/ledgers/:accountCode", h.ledgerForAccount)
		reports.GET("/receivables", h.receivables)
		reports.GET("/payables", h.payables)
		reports.GET("/summary", h.summary)
	}
}

// parseDateParam validates an optional YYYY-MM-DD query parameter.
func parseDateParam(c *gin.Context, name string) (string, bool) {
	value := c.Query(name)
	if value == "" {
		return "", true
	}
	if _, err := time.Parse(domain.DateLayout, value); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: name + " must be formatted as " + domain.DateLayout})
		return "", false
	}
	return value, true
}

// trialBalance godoc
// @Summary Trial balance report
// @Description Derives per-account debit/credit sums over an optional date range. The before-adjustment view excludes adjustment entries.
// @Tags reports
// @Produce  json
// @Param   from query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param   to query string false "End date (YYYY-MM-DD, inclusive)"
// @Param   view query string false "full or before-adjustment" default(full)
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to build report"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) trialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, ok := parseDateParam(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateParam(c, "to")
	if !ok {
		return
	}

	view := c.DefaultQuery("view", trialBalanceViewFull)
	if view != trialBalanceViewFull && view != trialBalanceViewBeforeAdjustment {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "view must be full or before-adjustment"})
		return
	}

	rows, err := h.reportingService.TrialBalance(c.Request.Context(), accounting.TrialBalanceOptions{
		FromDate:           from,
		ToDate:             to,
		ExcludeAdjustments: view == trialBalanceViewBeforeAdjustment,
	})
	if err != nil {
		logger.Error("Failed to build trial balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build trial balance"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(rows, view, from, to))
}

// incomeStatement godoc
// @Summary Income statement report
// @Description Derives the classified profit and loss report over an optional date range
// @Tags reports
// @Produce  json
// @Param   from query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param   to query string false "End date (YYYY-MM-DD, inclusive)"
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to build report"
// @Security BearerAuth
// @Router /reports/income-statement [get]
func (h *reportingHandler) incomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, ok := parseDateParam(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateParam(c, "to")
	if !ok {
		return
	}

	stmt, err := h.reportingService.IncomeStatement(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to build income statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build income statement"})
		return
	}

	c.JSON(http.StatusOK, dto.ToIncomeStatementResponse(stmt, from, to))
}

// balanceSheet godoc
// @Summary Balance sheet report
// @Description Derives the statement of financial position over the whole log
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to build report"
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) balanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sheet, err := h.reportingService.BalanceSheet(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build balance sheet", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build balance sheet"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(sheet))
}

// ledgers godoc
// @Summary All account ledgers
// @Description Derives the running-balance ledger of every account with activity
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.LedgersResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to build report"
// @Security BearerAuth
// @Router /reports/ledgers [get]
func (h *reportingHandler) ledgers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ledgers, err := h.reportingService.Ledgers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build ledgers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build ledgers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgersResponse(ledgers))
}

// ledgerForAccount godoc
// @Summary Single account ledger
// @Description Derives one account's running-balance ledger by account code
// @Tags reports
// @Produce  json
// @Param   accountCode path string true "Account code"
// @Success 200 {object} dto.AccountLedgerResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account has no activity"
// @Failure 500 {object} ErrorResponse "Failed to build report"
// @Security BearerAuth
// @Router /reports/ledgers/{accountCode} [get]
func (h *reportingHandler) ledgerForAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountCode := c.Param("accountCode")

	ledger, err := h.reportingService.LedgerForAccount(c.Request.Context(), accountCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Account has no ledger activity"})
			return
		}
		logger.Error("Failed to build account ledger", slog.String("error", err.Error()), slog.String("account_code", accountCode))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build account ledger"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountLedgerResponse(*ledger))
}

// receivables godoc
// @Summary Receivables subsidiary ledger
// @Description Groups receivables control account activity by counterparty
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.SubsidiaryLedgerResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to build report"
// @Security BearerAuth
// @Router /reports/receivables [get]
func (h *reportingHandler) receivables(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ledger, err := h.reportingService.Receivables(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build receivables ledger", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build receivables ledger"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSubsidiaryLedgerResponse(ledger))
}

// payables godoc
// @Summary Payables subsidiary ledger
// @Description Groups payables control account activity by counterparty
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.SubsidiaryLedgerResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to build report"
// @Security BearerAuth
// @Router /reports/payables [get]
func (h *reportingHandler) payables(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ledger, err := h.reportingService.Payables(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build payables ledger", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build payables ledger"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSubsidiaryLedgerResponse(ledger))
}

// summary godoc
// @Summary Activity summary
// @Description Rolls the whole transaction log up into dashboard figures
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.ActivitySummaryResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to build report"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) summary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.ActivitySummary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build activity summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build activity summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToActivitySummaryResponse(summary))
}
