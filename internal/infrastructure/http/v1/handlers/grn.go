package handlers

import (
	"github.com/gin-gonic/gin"

	"stockyard/internal/domain/documents/grn"
	"stockyard/internal/infrastructure/http/v1/dto"
)

// GoodsReceiptNoteHandler handles HTTP requests for goods receipt notes.
type GoodsReceiptNoteHandler struct {
	*BaseDocumentHandler[*grn.GoodsReceiptNote, dto.CreateGoodsReceiptNoteRequest, dto.UpdateGoodsReceiptNoteRequest]
	service *grn.Service
}

// NewGoodsReceiptNoteHandler creates a new goods receipt note handler.
func NewGoodsReceiptNoteHandler(base *BaseHandler, service *grn.Service) *GoodsReceiptNoteHandler {
	cfg := BaseDocumentHandlerConfig[*grn.GoodsReceiptNote, dto.CreateGoodsReceiptNoteRequest, dto.UpdateGoodsReceiptNoteRequest]{
		Service:    service,
		EntityName: "goods-receipt-note",
		MapCreateDTO: func(req dto.CreateGoodsReceiptNoteRequest) (*grn.GoodsReceiptNote, error) {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateGoodsReceiptNoteRequest, existing *grn.GoodsReceiptNote) (*grn.GoodsReceiptNote, error) {
			if err := req.ApplyTo(existing); err != nil {
				return nil, err
			}
			return existing, nil
		},
		MapToDTO: func(entity *grn.GoodsReceiptNote) any {
			return dto.FromGoodsReceiptNote(entity)
		},
		IsPostImmediately: func(req dto.CreateGoodsReceiptNoteRequest) bool {
			return req.PostImmediately
		},
	}

	return &GoodsReceiptNoteHandler{
		BaseDocumentHandler: NewBaseDocumentHandler(base, cfg),
		service:             service,
	}
}

// List handles GET /document/goods-receipt-note - list with filtering.
func (h *GoodsReceiptNoteHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := grn.ListFilter{ListFilter: h.baseDocFilter(c)}
	filter.SupplierID = h.queryID(c, "supplierId")
	filter.WarehouseID = h.queryID(c, "warehouseId")
	filter.Status = h.queryString(c, "status")
	filter.Posted = h.queryBool(c, "posted")
	filter.DateFrom = h.queryTime(c, "dateFrom")
	filter.DateTo = h.queryTime(c, "dateTo")

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	respondList(c, result, func(doc *grn.GoodsReceiptNote) any {
		return dto.FromGoodsReceiptNote(doc)
	})
}
