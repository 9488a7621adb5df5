package handlers

import (
	"github.com/gin-gonic/gin"

	"stockyard/internal/domain/documents/delivery_order"
	"stockyard/internal/infrastructure/http/v1/dto"
)

// DeliveryOrderHandler handles HTTP requests for delivery orders.
type DeliveryOrderHandler struct {
	*BaseDocumentHandler[*delivery_order.DeliveryOrder, dto.CreateDeliveryOrderRequest, dto.UpdateDeliveryOrderRequest]
	service *delivery_order.Service
}

// NewDeliveryOrderHandler creates a new delivery order handler.
func NewDeliveryOrderHandler(base *BaseHandler, service *delivery_order.Service) *DeliveryOrderHandler {
	cfg := BaseDocumentHandlerConfig[*delivery_order.DeliveryOrder, dto.CreateDeliveryOrderRequest, dto.UpdateDeliveryOrderRequest]{
		Service:    service,
		EntityName: "delivery-order",
		MapCreateDTO: func(req dto.CreateDeliveryOrderRequest) (*delivery_order.DeliveryOrder, error) {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateDeliveryOrderRequest, existing *delivery_order.DeliveryOrder) (*delivery_order.DeliveryOrder, error) {
			if err := req.ApplyTo(existing); err != nil {
				return nil, err
			}
			return existing, nil
		},
		MapToDTO: func(entity *delivery_order.DeliveryOrder) any {
			return dto.FromDeliveryOrder(entity)
		},
		IsPostImmediately: func(req dto.CreateDeliveryOrderRequest) bool {
			return req.PostImmediately
		},
	}

	return &DeliveryOrderHandler{
		BaseDocumentHandler: NewBaseDocumentHandler(base, cfg),
		service:             service,
	}
}

// List handles GET /document/delivery-order - list with filtering.
func (h *DeliveryOrderHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := delivery_order.ListFilter{ListFilter: h.baseDocFilter(c)}
	filter.CustomerID = h.queryID(c, "customerId")
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

	respondList(c, result, func(doc *delivery_order.DeliveryOrder) any {
		return dto.FromDeliveryOrder(doc)
	})
}
