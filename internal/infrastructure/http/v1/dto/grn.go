package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"stockyard/internal/core/types"
	"stockyard/internal/domain/documents/grn"
)

// --- Request DTOs ---

// CreateGoodsReceiptNoteRequest creates a goods receipt note.
type CreateGoodsReceiptNoteRequest struct {
	Number            string                        `json:"number,omitempty"`
	Date              time.Time                     `json:"date" binding:"required"`
	SupplierID        string                        `json:"supplierId" binding:"required"`
	WarehouseID       string                        `json:"warehouseId" binding:"required"`
	SupplierDocNumber string                        `json:"supplierDocNumber,omitempty"`
	SupplierDocDate   *time.Time                    `json:"supplierDocDate,omitempty"`
	Comment           string                        `json:"comment,omitempty"`
	Lines             []GoodsReceiptNoteLineRequest `json:"lines" binding:"required,min=1,dive"`
	PostImmediately   bool                          `json:"postImmediately,omitempty"`
}

// GoodsReceiptNoteLineRequest represents a line in create/update request.
// Weight and volume are derived server-side from the item's unit measures.
type GoodsReceiptNoteLineRequest struct {
	ItemID      string      `json:"itemId" binding:"required"`
	Quantity    float64     `json:"quantity" binding:"required,gt=0"`
	UnitCost    types.Money `json:"unitCost"`
	BatchNumber string      `json:"batchNumber,omitempty"`
	ExpiryDate  *time.Time  `json:"expiryDate,omitempty"`
}

func (r *GoodsReceiptNoteLineRequest) toLine() (grn.Line, error) {
	itemID, err := parseID("lines.itemId", r.ItemID)
	if err != nil {
		return grn.Line{}, err
	}
	return grn.Line{
		ItemID:      itemID,
		Quantity:    types.NewQuantityFromFloat64(r.Quantity),
		UnitCost:    r.UnitCost,
		BatchNumber: r.BatchNumber,
		ExpiryDate:  r.ExpiryDate,
	}, nil
}

// ToEntity converts request to domain entity.
func (r *CreateGoodsReceiptNoteRequest) ToEntity() (*grn.GoodsReceiptNote, error) {
	supplierID, err := parseID("supplierId", r.SupplierID)
	if err != nil {
		return nil, err
	}
	warehouseID, err := parseID("warehouseId", r.WarehouseID)
	if err != nil {
		return nil, err
	}

	doc := grn.NewGoodsReceiptNote(supplierID, warehouseID)
	doc.Number = r.Number
	doc.Date = r.Date
	doc.SupplierDocNumber = r.SupplierDocNumber
	doc.SupplierDocDate = r.SupplierDocDate
	doc.Comment = r.Comment

	for _, line := range r.Lines {
		l, err := line.toLine()
		if err != nil {
			return nil, err
		}
		doc.AddLine(l)
	}

	return doc, nil
}

// UpdateGoodsReceiptNoteRequest updates a goods receipt note.
type UpdateGoodsReceiptNoteRequest struct {
	Number            *string                       `json:"number,omitempty"`
	Date              *time.Time                    `json:"date,omitempty"`
	SupplierID        *string                       `json:"supplierId,omitempty"`
	WarehouseID       *string                       `json:"warehouseId,omitempty"`
	SupplierDocNumber *string                       `json:"supplierDocNumber,omitempty"`
	SupplierDocDate   *time.Time                    `json:"supplierDocDate,omitempty"`
	Comment           *string                       `json:"comment,omitempty"`
	Lines             []GoodsReceiptNoteLineRequest `json:"lines,omitempty"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdateGoodsReceiptNoteRequest) ApplyTo(doc *grn.GoodsReceiptNote) error {
	if r.Number != nil {
		doc.Number = *r.Number
	}
	if r.Date != nil {
		doc.Date = *r.Date
	}
	if r.SupplierID != nil {
		supplierID, err := parseID("supplierId", *r.SupplierID)
		if err != nil {
			return err
		}
		doc.SupplierID = supplierID
	}
	if r.WarehouseID != nil {
		warehouseID, err := parseID("warehouseId", *r.WarehouseID)
		if err != nil {
			return err
		}
		doc.WarehouseID = warehouseID
	}
	if r.SupplierDocNumber != nil {
		doc.SupplierDocNumber = *r.SupplierDocNumber
	}
	if r.SupplierDocDate != nil {
		doc.SupplierDocDate = r.SupplierDocDate
	}
	if r.Comment != nil {
		doc.Comment = *r.Comment
	}

	// If lines are provided, rebuild them
	if r.Lines != nil {
		doc.Lines = make([]grn.Line, 0, len(r.Lines))
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

// GoodsReceiptNoteResponse represents a goods receipt note in API responses.
type GoodsReceiptNoteResponse struct {
	DocumentResponse
	SupplierID        string                         `json:"supplierId"`
	WarehouseID       string                         `json:"warehouseId"`
	SupplierDocNumber string                         `json:"supplierDocNumber,omitempty"`
	SupplierDocDate   *time.Time                     `json:"supplierDocDate,omitempty"`
	TotalQuantity     types.Quantity                 `json:"totalQuantity"`
	TotalWeight       decimal.Decimal                `json:"totalWeight"`
	TotalVolume       decimal.Decimal                `json:"totalVolume"`
	TotalAmount       types.Money                    `json:"totalAmount"`
	Lines             []GoodsReceiptNoteLineResponse `json:"lines,omitempty"`
}

// GoodsReceiptNoteLineResponse represents a line in API responses.
type GoodsReceiptNoteLineResponse struct {
	LineID      string          `json:"lineId"`
	LineNo      int             `json:"lineNo"`
	ItemID      string          `json:"itemId"`
	Quantity    types.Quantity  `json:"quantity"`
	Weight      decimal.Decimal `json:"weight"`
	Volume      decimal.Decimal `json:"volume"`
	UnitCost    types.Money     `json:"unitCost"`
	Amount      types.Money     `json:"amount"`
	BatchNumber string          `json:"batchNumber,omitempty"`
	ExpiryDate  *time.Time      `json:"expiryDate,omitempty"`
}

// FromGoodsReceiptNote converts domain entity to response DTO.
func FromGoodsReceiptNote(doc *grn.GoodsReceiptNote) *GoodsReceiptNoteResponse {
	resp := &GoodsReceiptNoteResponse{
		DocumentResponse:  FromDocument(doc.Document),
		SupplierID:        doc.SupplierID.String(),
		WarehouseID:       doc.WarehouseID.String(),
		SupplierDocNumber: doc.SupplierDocNumber,
		SupplierDocDate:   doc.SupplierDocDate,
		TotalQuantity:     doc.TotalQuantity,
		TotalWeight:       doc.TotalWeight,
		TotalVolume:       doc.TotalVolume,
		TotalAmount:       doc.TotalAmount,
	}

	resp.Lines = make([]GoodsReceiptNoteLineResponse, len(doc.Lines))
	for i, line := range doc.Lines {
		resp.Lines[i] = GoodsReceiptNoteLineResponse{
			LineID:      line.LineID.String(),
			LineNo:      line.LineNo,
			ItemID:      line.ItemID.String(),
			Quantity:    line.Quantity,
			Weight:      line.Weight,
			Volume:      line.Volume,
			UnitCost:    line.UnitCost,
			Amount:      line.Amount,
			BatchNumber: line.BatchNumber,
			ExpiryDate:  line.ExpiryDate,
		}
	}

	return resp
}
