package dto

import (
	"time"

	"stockyard/internal/core/types"
	"stockyard/internal/domain/documents/stock_transfer"
)

// --- Request DTOs ---

// CreateStockTransferRequest creates a stock transfer.
type CreateStockTransferRequest struct {
	Number            string                     `json:"number,omitempty"`
	Date              time.Time                  `json:"date" binding:"required"`
	SourceWarehouseID string                     `json:"sourceWarehouseId" binding:"required"`
	TargetWarehouseID string                     `json:"targetWarehouseId" binding:"required"`
	Comment           string                     `json:"comment,omitempty"`
	Lines             []StockTransferLineRequest `json:"lines" binding:"required,min=1,dive"`
	PostImmediately   bool                       `json:"postImmediately,omitempty"`
}

// StockTransferLineRequest represents a line in create/update request.
type StockTransferLineRequest struct {
	ItemID   string  `json:"itemId" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
}

// ToEntity converts request to domain entity.
func (r *CreateStockTransferRequest) ToEntity() (*stock_transfer.StockTransfer, error) {
	sourceID, err := parseID("sourceWarehouseId", r.SourceWarehouseID)
	if err != nil {
		return nil, err
	}
	targetID, err := parseID("targetWarehouseId", r.TargetWarehouseID)
	if err != nil {
		return nil, err
	}

	doc := stock_transfer.NewStockTransfer(sourceID, targetID)
	doc.Number = r.Number
	doc.Date = r.Date
	doc.Comment = r.Comment

	for _, line := range r.Lines {
		itemID, err := parseID("lines.itemId", line.ItemID)
		if err != nil {
			return nil, err
		}
		doc.AddLine(itemID, types.NewQuantityFromFloat64(line.Quantity))
	}

	return doc, nil
}

// UpdateStockTransferRequest updates a stock transfer.
type UpdateStockTransferRequest struct {
	Number            *string                    `json:"number,omitempty"`
	Date              *time.Time                 `json:"date,omitempty"`
	SourceWarehouseID *string                    `json:"sourceWarehouseId,omitempty"`
	TargetWarehouseID *string                    `json:"targetWarehouseId,omitempty"`
	Comment           *string                    `json:"comment,omitempty"`
	Lines             []StockTransferLineRequest `json:"lines,omitempty"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdateStockTransferRequest) ApplyTo(doc *stock_transfer.StockTransfer) error {
	if r.Number != nil {
		doc.Number = *r.Number
	}
	if r.Date != nil {
		doc.Date = *r.Date
	}
	if r.SourceWarehouseID != nil {
		sourceID, err := parseID("sourceWarehouseId", *r.SourceWarehouseID)
		if err != nil {
			return err
		}
		doc.SourceWarehouseID = sourceID
	}
	if r.TargetWarehouseID != nil {
		targetID, err := parseID("targetWarehouseId", *r.TargetWarehouseID)
		if err != nil {
			return err
		}
		doc.TargetWarehouseID = targetID
	}
	if r.Comment != nil {
		doc.Comment = *r.Comment
	}

	if r.Lines != nil {
		doc.Lines = make([]stock_transfer.Line, 0, len(r.Lines))
		for _, line := range r.Lines {
			itemID, err := parseID("lines.itemId", line.ItemID)
			if err != nil {
				return err
			}
			doc.AddLine(itemID, types.NewQuantityFromFloat64(line.Quantity))
		}
	}

	return nil
}

// --- Response DTOs ---

// StockTransferResponse represents a stock transfer in API responses.
type StockTransferResponse struct {
	DocumentResponse
	SourceWarehouseID string                      `json:"sourceWarehouseId"`
	TargetWarehouseID string                      `json:"targetWarehouseId"`
	TotalQuantity     types.Quantity              `json:"totalQuantity"`
	Lines             []StockTransferLineResponse `json:"lines,omitempty"`
}

// StockTransferLineResponse represents a line in API responses.
type StockTransferLineResponse struct {
	LineID   string         `json:"lineId"`
	LineNo   int            `json:"lineNo"`
	ItemID   string         `json:"itemId"`
	Quantity types.Quantity `json:"quantity"`
}

// FromStockTransfer converts domain entity to response DTO.
func FromStockTransfer(doc *stock_transfer.StockTransfer) *StockTransferResponse {
	resp := &StockTransferResponse{
		DocumentResponse:  FromDocument(doc.Document),
		SourceWarehouseID: doc.SourceWarehouseID.String(),
		TargetWarehouseID: doc.TargetWarehouseID.String(),
		TotalQuantity:     doc.TotalQuantity,
	}

	resp.Lines = make([]StockTransferLineResponse, len(doc.Lines))
	for i, line := range doc.Lines {
		resp.Lines[i] = StockTransferLineResponse{
			LineID:   line.LineID.String(),
			LineNo:   line.LineNo,
			ItemID:   line.ItemID.String(),
			Quantity: line.Quantity,
		}
	}

	return resp
}
