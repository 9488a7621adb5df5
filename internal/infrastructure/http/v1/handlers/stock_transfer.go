package handlers

import (
	"github.com/gin-gonic/gin"

	"stockyard/internal/domain/documents/stock_transfer"
	"stockyard/internal/infrastructure/http/v1/dto"
)

// StockTransferHandler handles HTTP requests for stock transfers.
type StockTransferHandler struct {
	*BaseDocumentHandler[*stock_transfer.StockTransfer, dto.CreateStockTransferRequest, dto.UpdateStockTransferRequest]
	service *stock_transfer.Service
}

// NewStockTransferHandler creates a new stock transfer handler.
func NewStockTransferHandler(base *BaseHandler, service *stock_transfer.Service) *StockTransferHandler {
	cfg := BaseDocumentHandlerConfig[*stock_transfer.StockTransfer, dto.CreateStockTransferRequest, dto.UpdateStockTransferRequest]{
		Service:    service,
		EntityName: "stock-transfer",
		MapCreateDTO: func(req dto.CreateStockTransferRequest) (*stock_transfer.StockTransfer, error) {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateStockTransferRequest, existing *stock_transfer.StockTransfer) (*stock_transfer.StockTransfer, error) {
			if err := req.ApplyTo(existing); err != nil {
				return nil, err
			}
			return existing, nil
		},
		MapToDTO: func(entity *stock_transfer.StockTransfer) any {
			return dto.FromStockTransfer(entity)
		},
		IsPostImmediately: func(req dto.CreateStockTransferRequest) bool {
			return req.PostImmediately
		},
	}

	return &StockTransferHandler{
		BaseDocumentHandler: NewBaseDocumentHandler(base, cfg),
		service:             service,
	}
}

// List handles GET /document/stock-transfer - list with filtering.
func (h *StockTransferHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := stock_transfer.ListFilter{ListFilter: h.baseDocFilter(c)}
	filter.SourceWarehouseID = h.queryID(c, "sourceWarehouseId")
	filter.TargetWarehouseID = h.queryID(c, "targetWarehouseId")
	filter.Status = h.queryString(c, "status")
	filter.Posted = h.queryBool(c, "posted")
	filter.DateFrom = h.queryTime(c, "dateFrom")
	filter.DateTo = h.queryTime(c, "dateTo")

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	respondList(c, result, func(doc *stock_transfer.StockTransfer) any {
		return dto.FromStockTransfer(doc)
	})
}
