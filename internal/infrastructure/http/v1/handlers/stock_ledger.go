package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stockyard/internal/core/apperror"
	"stockyard/internal/core/entity"
	"stockyard/internal/core/id"
	"stockyard/internal/domain/ledgers/stock"
	"stockyard/internal/infrastructure/http/v1/dto"
)

// StockLedgerHandler handles read endpoints of the stock ledger.
type StockLedgerHandler struct {
	*BaseHandler
	service *stock.Service
	repo    stock.Repository
}

// NewStockLedgerHandler creates a new stock ledger handler.
func NewStockLedgerHandler(base *BaseHandler, service *stock.Service, repo stock.Repository) *StockLedgerHandler {
	return &StockLedgerHandler{
		BaseHandler: base,
		service:     service,
		repo:        repo,
	}
}

// GetBalances handles GET /ledgers/stock/balances
func (h *StockLedgerHandler) GetBalances(c *gin.Context) {
	ctx := c.Request.Context()

	var warehouseID *id.ID
	if whStr := c.Query("warehouseId"); whStr != "" {
		parsed, err := id.Parse(whStr)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid warehouseId format"))
			return
		}
		warehouseID = &parsed
	}

	var itemID *id.ID
	if itemStr := c.Query("itemId"); itemStr != "" {
		parsed, err := id.Parse(itemStr)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid itemId format"))
			return
		}
		itemID = &parsed
	}

	// Point-in-time balance from the movement history, not the snapshot table.
	if asOfStr := c.Query("asOf"); asOfStr != "" {
		if warehouseID == nil || itemID == nil {
			h.Error(c, apperror.NewValidation("asOf requires both warehouseId and itemId"))
			return
		}
		asOf, err := time.Parse(time.RFC3339, asOfStr)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid asOf format, expected RFC3339"))
			return
		}

		qty, err := h.repo.GetBalanceAsOf(ctx, *warehouseID, *itemID, asOf)
		if err != nil {
			h.Error(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"warehouseId": warehouseID.String(),
			"itemId":      itemID.String(),
			"asOf":        asOf,
			"quantity":    qty,
		})
		return
	}

	var balances []entity.StockBalance
	var err error

	switch {
	case warehouseID != nil:
		filter := stock.BalanceFilter{
			ExcludeZero: c.Query("excludeZero") != "false",
		}
		if itemID != nil {
			filter.ItemIDs = []id.ID{*itemID}
		}
		balances, err = h.repo.GetBalancesByWarehouse(ctx, *warehouseID, filter)
	case itemID != nil:
		balances, err = h.repo.GetBalancesByItem(ctx, *itemID)
	default:
		h.Error(c, apperror.NewValidation("warehouseId or itemId is required"))
		return
	}

	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": dto.FromStockBalances(balances)})
}

// GetMovements handles GET /ledgers/stock/movements
func (h *StockLedgerHandler) GetMovements(c *gin.Context) {
	ctx := c.Request.Context()

	itemStr := c.Query("itemId")
	if itemStr == "" {
		h.Error(c, apperror.NewValidation("itemId is required"))
		return
	}

	itemID, err := id.Parse(itemStr)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid itemId format"))
		return
	}

	filter := stock.MovementFilter{
		Limit:  h.ParseIntQuery(c, "limit", 100),
		Offset: h.ParseIntQuery(c, "offset", 0),
	}
	filter.WarehouseID = h.queryID(c, "warehouseId")
	filter.FromDate = h.queryTime(c, "fromDate")
	filter.ToDate = h.queryTime(c, "toDate")

	if rt := c.Query("recordType"); rt != "" {
		recordType := entity.RecordType(rt)
		if recordType != entity.RecordTypeReceipt && recordType != entity.RecordTypeExpense {
			h.Error(c, apperror.NewValidation("invalid recordType, expected receipt or expense"))
			return
		}
		filter.RecordType = &recordType
	}

	movements, err := h.service.GetMovementHistory(ctx, itemID, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      dto.FromStockMovements(movements),
		"totalCount": len(movements),
	})
}

// GetTurnover handles GET /ledgers/stock/turnover
func (h *StockLedgerHandler) GetTurnover(c *gin.Context) {
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

	filter := stock.TurnoverFilter{
		FromDate: fromDate,
		ToDate:   toDate,
	}
	filter.WarehouseID = h.queryID(c, "warehouseId")
	filter.ItemID = h.queryID(c, "itemId")

	turnover, err := h.service.GetTurnover(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromStockTurnover(turnover))
}

// GetItemAvailability handles GET /ledgers/stock/availability/:itemId
func (h *StockLedgerHandler) GetItemAvailability(c *gin.Context) {
	ctx := c.Request.Context()

	itemID, err := id.Parse(c.Param("itemId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid itemId format"))
		return
	}

	available, err := h.service.GetItemAvailability(ctx, itemID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"itemId":    itemID.String(),
		"available": available,
	})
}
