package handlers

import (
	"github.com/gin-gonic/gin"

	"stockyard/internal/domain/documents/storage_invoice"
	"stockyard/internal/infrastructure/http/v1/dto"
)

// StorageInvoiceHandler handles HTTP requests for storage invoices.
type StorageInvoiceHandler struct {
	*BaseDocumentHandler[*storage_invoice.StorageInvoice, dto.CreateStorageInvoiceRequest, dto.UpdateStorageInvoiceRequest]
	service *storage_invoice.Service
}

// NewStorageInvoiceHandler creates a new storage invoice handler.
func NewStorageInvoiceHandler(base *BaseHandler, service *storage_invoice.Service) *StorageInvoiceHandler {
	cfg := BaseDocumentHandlerConfig[*storage_invoice.StorageInvoice, dto.CreateStorageInvoiceRequest, dto.UpdateStorageInvoiceRequest]{
		Service:    service,
		EntityName: "storage-invoice",
		MapCreateDTO: func(req dto.CreateStorageInvoiceRequest) (*storage_invoice.StorageInvoice, error) {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateStorageInvoiceRequest, existing *storage_invoice.StorageInvoice) (*storage_invoice.StorageInvoice, error) {
			if err := req.ApplyTo(existing); err != nil {
				return nil, err
			}
			return existing, nil
		},
		MapToDTO: func(entity *storage_invoice.StorageInvoice) any {
			return dto.FromStorageInvoice(entity)
		},
		IsPostImmediately: func(req dto.CreateStorageInvoiceRequest) bool {
			return req.PostImmediately
		},
	}

	return &StorageInvoiceHandler{
		BaseDocumentHandler: NewBaseDocumentHandler(base, cfg),
		service:             service,
	}
}

// List handles GET /document/storage-invoice - list with filtering.
func (h *StorageInvoiceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := storage_invoice.ListFilter{ListFilter: h.baseDocFilter(c)}
	filter.CustomerID = h.queryID(c, "customerId")
	filter.Status = h.queryString(c, "status")
	filter.Posted = h.queryBool(c, "posted")
	filter.DateFrom = h.queryTime(c, "dateFrom")
	filter.DateTo = h.queryTime(c, "dateTo")

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	respondList(c, result, func(doc *storage_invoice.StorageInvoice) any {
		return dto.FromStorageInvoice(doc)
	})
}
