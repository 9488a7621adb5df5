package handlers

import (
	"github.com/gin-gonic/gin"

	"stockyard/internal/domain/reports"
	"stockyard/internal/infrastructure/http/v1/dto"
)

// ReportsHandler handles report endpoints.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// GetStockBalance handles GET /reports/stock-balance
func (h *ReportsHandler) GetStockBalance(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.StockBalanceReportRequest
	if !h.BindQuery(c, &req) {
		return
	}

	filter, err := req.ToFilter()
	if err != nil {
		h.Error(c, err)
		return
	}

	report, err := h.service.GetStockBalanceReport(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, report)
}

// GetStockTurnover handles GET /reports/stock-turnover
func (h *ReportsHandler) GetStockTurnover(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.StockTurnoverReportRequest
	if !h.BindQuery(c, &req) {
		return
	}

	filter, err := req.ToFilter()
	if err != nil {
		h.Error(c, err)
		return
	}

	report, err := h.service.GetStockTurnoverReport(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, report)
}

// GetCustomerStatement handles GET /reports/customer-statement
func (h *ReportsHandler) GetCustomerStatement(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CustomerStatementRequest
	if !h.BindQuery(c, &req) {
		return
	}

	filter, err := req.ToFilter()
	if err != nil {
		h.Error(c, err)
		return
	}

	statement, err := h.service.GetCustomerStatement(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, statement)
}

// GetDocumentJournal handles GET /reports/document-journal
func (h *ReportsHandler) GetDocumentJournal(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.DocumentJournalRequest
	if !h.BindQuery(c, &req) {
		return
	}

	filter, err := req.ToFilter()
	if err != nil {
		h.Error(c, err)
		return
	}

	journal, err := h.service.GetDocumentJournal(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, journal)
}
