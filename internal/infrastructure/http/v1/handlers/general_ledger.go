package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stockyard/internal/core/apperror"
	"stockyard/internal/domain/ledgers/general"
	"stockyard/internal/infrastructure/http/v1/dto"
)

// GeneralLedgerHandler handles read endpoints of the general ledger.
type GeneralLedgerHandler struct {
	*BaseHandler
	service *general.Service
}

// NewGeneralLedgerHandler creates a new general ledger handler.
func NewGeneralLedgerHandler(base *BaseHandler, service *general.Service) *GeneralLedgerHandler {
	return &GeneralLedgerHandler{
		BaseHandler: base,
		service:     service,
	}
}

// GetAccountBalance handles GET /ledgers/general/accounts/:code/balance
func (h *GeneralLedgerHandler) GetAccountBalance(c *gin.Context) {
	ctx := c.Request.Context()

	code := c.Param("code")
	if code == "" {
		h.Error(c, apperror.NewValidation("account code is required"))
		return
	}

	balance, err := h.service.GetAccountBalance(ctx, code)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromAccountBalance(balance))
}

// GetAccountHistory handles GET /ledgers/general/accounts/:code/history
func (h *GeneralLedgerHandler) GetAccountHistory(c *gin.Context) {
	ctx := c.Request.Context()

	code := c.Param("code")
	if code == "" {
		h.Error(c, apperror.NewValidation("account code is required"))
		return
	}

	filter := general.HistoryFilter{
		Limit:  h.ParseIntQuery(c, "limit", 100),
		Offset: h.ParseIntQuery(c, "offset", 0),
	}
	filter.CounterpartyID = h.queryID(c, "counterpartyId")
	filter.FromDate = h.queryTime(c, "fromDate")
	filter.ToDate = h.queryTime(c, "toDate")

	movements, err := h.service.GetAccountHistory(ctx, code, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      dto.FromGeneralMovements(movements),
		"totalCount": len(movements),
	})
}

// GetTrialBalance handles GET /ledgers/general/trial-balance
func (h *GeneralLedgerHandler) GetTrialBalance(c *gin.Context) {
	ctx := c.Request.Context()

	fromStr := c.Query("fromDate")
	toStr := c.Query("toDate")
	if fromStr == "" || toStr == "" {
		h.Error(c, apperror.NewValidation("fromDate and toDate are required"))
		return
	}

	fromDate, err := time.Parse(time.RFC3339, fromStr)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid fromDate format, expected RFC3339"))
		return
	}

	toDate, err := time.Parse(time.RFC3339, toStr)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid toDate format, expected RFC3339"))
		return
	}

	rows, err := h.service.GetTrialBalance(ctx, fromDate, toDate)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"fromDate": fromDate,
		"toDate":   toDate,
		"accounts": rows,
	})
}
