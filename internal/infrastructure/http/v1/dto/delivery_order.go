package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"stockyard/internal/core/types"
	"stockyard/internal/domain/documents/delivery_order"
)

// --- Request DTOs ---

// CreateDeliveryOrderRequest creates a delivery order.
type CreateDeliveryOrderRequest struct {
	Number          string                     `json:"number,omitempty"`
	Date            time.Time                  `json:"date" binding:"required"`
	CustomerID      string                     `json:"customerId" binding:"required"`
	WarehouseID     string                     `json:"warehouseId" binding:"required"`
	CarrierID       *string                    `json:"carrierId,omitempty"`
	ShipTo          *string                    `json:"shipTo,omitempty"`
	PlannedAt       *time.Time                 `json:"plannedAt,omitempty"`
	Comment         string                     `json:"comment,omitempty"`
	Lines           []DeliveryOrderLineRequest `json:"lines" binding:"required,min=1,dive"`
	PostImmediately bool                       `json:"postImmediately,omitempty"`
}

// DeliveryOrderLineRequest represents a line in create/update request.
// Weight and volume are derived server-side from the item's unit measures.
type DeliveryOrderLineRequest struct {
	ItemID      string     `json:"itemId" binding:"required"`
	Quantity    float64    `json:"quantity" binding:"required,gt=0"`
	BatchNumber string     `json:"batchNumber,omitempty"`
	ExpiryDate  *time.Time `json:"expiryDate,omitempty"`
}

func (r *DeliveryOrderLineRequest) toLine() (delivery_order.Line, error) {
	itemID, err := parseID("lines.itemId", r.ItemID)
	if err != nil {
		return delivery_order.Line{}, err
	}
	return delivery_order.Line{
		ItemID:      itemID,
		Quantity:    types.NewQuantityFromFloat64(r.Quantity),
		BatchNumber: r.BatchNumber,
		ExpiryDate:  r.ExpiryDate,
	}, nil
}

// ToEntity converts request to domain entity.
func (r *CreateDeliveryOrderRequest) ToEntity() (*delivery_order.DeliveryOrder, error) {
	customerID, err := parseID("customerId", r.CustomerID)
	if err != nil {
		return nil, err
	}
	warehouseID, err := parseID("warehouseId", r.WarehouseID)
	if err != nil {
		return nil, err
	}

	doc := delivery_order.NewDeliveryOrder(customerID, warehouseID)
	doc.Number = r.Number
	doc.Date = r.Date
	doc.ShipTo = r.ShipTo
	doc.PlannedAt = r.PlannedAt
	doc.Comment = r.Comment

	if r.CarrierID != nil {
		carrierID, err := parseID("carrierId", *r.CarrierID)
		if err != nil {
			return nil, err
		}
		doc.CarrierID = &carrierID
	}

	for _, line := range r.Lines {
		l, err := line.toLine()
		if err != nil {
			return nil, err
		}
		doc.AddLine(l)
	}

	return doc, nil
}

// UpdateDeliveryOrderRequest updates a delivery order.
type UpdateDeliveryOrderRequest struct {
	Number      *string                    `json:"number,omitempty"`
	Date        *time.Time                 `json:"date,omitempty"`
	CustomerID  *string                    `json:"customerId,omitempty"`
	WarehouseID *string                    `json:"warehouseId,omitempty"`
	CarrierID   *string                    `json:"carrierId,omitempty"`
	ShipTo      *string                    `json:"shipTo,omitempty"`
	PlannedAt   *time.Time                 `json:"plannedAt,omitempty"`
	Comment     *string                    `json:"comment,omitempty"`
	Lines       []DeliveryOrderLineRequest `json:"lines,omitempty"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdateDeliveryOrderRequest) ApplyTo(doc *delivery_order.DeliveryOrder) error {
	if r.Number != nil {
		doc.Number = *r.Number
	}
	if r.Date != nil {
		doc.Date = *r.Date
	}
	if r.CustomerID != nil {
		customerID, err := parseID("customerId", *r.CustomerID)
		if err != nil {
			return err
		}
		doc.CustomerID = customerID
	}
	if r.WarehouseID != nil {
		warehouseID, err := parseID("warehouseId", *r.WarehouseID)
		if err != nil {
			return err
		}
		doc.WarehouseID = warehouseID
	}
	if r.CarrierID != nil {
		carrierID, err := parseID("carrierId", *r.CarrierID)
		if err != nil {
			return err
		}
		doc.CarrierID = &carrierID
	}
	if r.ShipTo != nil {
		doc.ShipTo = r.ShipTo
	}
	if r.PlannedAt != nil {
		doc.PlannedAt = r.PlannedAt
	}
	if r.Comment != nil {
		doc.Comment = *r.Comment
	}

	if r.Lines != nil {
		doc.Lines = make([]delivery_order.Line, 0, len(r.Lines))
		for _, line := range r.Lines {
			l, err := line.toLine()
			if err != nil {
				return err
			}
			doc.AddLine(l)
		}
	}

	return nil
}

// --- Response DTOs ---

// DeliveryOrderResponse represents a delivery order in API responses.
type DeliveryOrderResponse struct {
	DocumentResponse
	CustomerID    string                      `json:"customerId"`
	WarehouseID   string                      `json:"warehouseId"`
	CarrierID     *string                     `json:"carrierId,omitempty"`
	ShipTo        *string                     `json:"shipTo,omitempty"`
	PlannedAt     *time.Time                  `json:"plannedAt,omitempty"`
	TotalQuantity types.Quantity              `json:"totalQuantity"`
	TotalWeight   decimal.Decimal             `json:"totalWeight"`
	TotalVolume   decimal.Decimal             `json:"totalVolume"`
	Lines         []DeliveryOrderLineResponse `json:"lines,omitempty"`
}

// DeliveryOrderLineResponse represents a line in API responses.
type DeliveryOrderLineResponse struct {
	LineID      string          `json:"lineId"`
	LineNo      int             `json:"lineNo"`
	ItemID      string          `json:"itemId"`
	Quantity    types.Quantity  `json:"quantity"`
	Weight      decimal.Decimal `json:"weight"`
	Volume      decimal.Decimal `json:"volume"`
	BatchNumber string          `json:"batchNumber,omitempty"`
	ExpiryDate  *time.Time      `json:"expiryDate,omitempty"`
}

// FromDeliveryOrder converts domain entity to response DTO.
func FromDeliveryOrder(doc *delivery_order.DeliveryOrder) *DeliveryOrderResponse {
	resp := &DeliveryOrderResponse{
		DocumentResponse: FromDocument(doc.Document),
		CustomerID:       doc.CustomerID.String(),
		WarehouseID:      doc.WarehouseID.String(),
		ShipTo:           doc.ShipTo,
		PlannedAt:        doc.PlannedAt,
		TotalQuantity:    doc.TotalQuantity,
		TotalWeight:      doc.TotalWeight,
		TotalVolume:      doc.TotalVolume,
	}

	if doc.CarrierID != nil {
		carrier := doc.CarrierID.String()
		resp.CarrierID = &carrier
	}

	resp.Lines = make([]DeliveryOrderLineResponse, len(doc.Lines))
	for i, line := range doc.Lines {
		resp.Lines[i] = DeliveryOrderLineResponse{
			LineID:      line.LineID.String(),
			LineNo:      line.LineNo,
			ItemID:      line.ItemID.String(),
			Quantity:    line.Quantity,
			Weight:      line.Weight,
			Volume:      line.Volume,
			BatchNumber: line.BatchNumber,
			ExpiryDate:  line.ExpiryDate,
		}
	}

	return resp
}
