// Package stock_transfer provides the StockTransfer document.
// A transfer moves goods between two warehouses in one posting: an
// expense from the source and a receipt into the target.
package stock_transfer

import (
	"context"

	"stockyard/internal/core/apperror"
	"stockyard/internal/core/entity"
	"stockyard/internal/core/id"
	"stockyard/internal/core/types"
	stockledger "stockyard/internal/domain/ledgers/stock"
	"stockyard/internal/domain/posting"
)

// StockTransfer represents an inter-warehouse transfer document.
type StockTransfer struct {
	entity.Document

	// SourceWarehouseID is where goods are taken from
	SourceWarehouseID id.ID `db:"source_warehouse_id" json:"sourceWarehouseId"`

	// TargetWarehouseID is where goods are delivered to
	TargetWarehouseID id.ID `db:"target_warehouse_id" json:"targetWarehouseId"`

	// TotalQuantity is calculated from lines
	TotalQuantity types.Quantity `db:"total_quantity" json:"totalQuantity"`

	// Table part: transferred goods
	Lines []Line `db:"-" json:"lines"`
}

// Line represents one transferred item.
type Line struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	ItemID   id.ID          `db:"item_id" json:"itemId"`
	Quantity types.Quantity `db:"quantity" json:"quantity"`
}

// NewStockTransfer creates a new transfer document in draft state.
func NewStockTransfer(sourceWarehouseID, targetWarehouseID id.ID) *StockTransfer {
	return &StockTransfer{
		Document:          entity.NewDocument(),
		SourceWarehouseID: sourceWarehouseID,
		TargetWarehouseID: targetWarehouseID,
		Lines:             make([]Line, 0),
	}
}

// AddLine adds a line and recalculates totals.
func (t *StockTransfer) AddLine(itemID id.ID, quantity types.Quantity) {
	t.Lines = append(t.Lines, Line{
		LineID:   id.New(),
		LineNo:   len(t.Lines) + 1,
		ItemID:   itemID,
		Quantity: quantity,
	})
	t.RecalculateTotals()
}

// RecalculateTotals updates document totals from lines.
func (t *StockTransfer) RecalculateTotals() {
	t.TotalQuantity = 0
	for _, line := range t.Lines {
		t.TotalQuantity += line.Quantity
	}
}

// Validate implements entity.Validatable.
func (t *StockTransfer) Validate(ctx context.Context) error {
	if err := t.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(t.SourceWarehouseID) {
		return apperror.NewValidation("source warehouse is required").
			WithDetail("field", "sourceWarehouseId")
	}

	if id.IsNil(t.TargetWarehouseID) {
		return apperror.NewValidation("target warehouse is required").
			WithDetail("field", "targetWarehouseId")
	}

	if t.SourceWarehouseID == t.TargetWarehouseID {
		return apperror.NewValidation("source and target warehouses must differ").
			WithDetail("field", "targetWarehouseId")
	}

	if len(t.Lines) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "lines")
	}

	for i, line := range t.Lines {
		if id.IsNil(line.ItemID) {
			return apperror.NewValidation("item is required").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if !line.Quantity.IsPositive() {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
	}

	return nil
}

// GetDocumentType returns the document type name.
func (t *StockTransfer) GetDocumentType() string {
	return "StockTransfer"
}

// GenerateMovements creates paired expense and receipt movements.
// Availability is checked on the source warehouse only.
func (t *StockTransfer) GenerateMovements(ctx context.Context) (*posting.MovementSet, error) {
	movements := posting.NewMovementSet()

	newVersion := t.PostedVersion + 1
	demand := make(map[id.ID]types.Quantity)

	for _, line := range t.Lines {
		movements.AddStock(entity.NewStockMovement(
			t.ID,
			t.GetDocumentType(),
			newVersion,
			t.Date,
			entity.RecordTypeExpense,
			t.SourceWarehouseID,
			line.ItemID,
			line.Quantity,
		))
		movements.AddStock(entity.NewStockMovement(
			t.ID,
			t.GetDocumentType(),
			newVersion,
			t.Date,
			entity.RecordTypeReceipt,
			t.TargetWarehouseID,
			line.ItemID,
			line.Quantity,
		))
		demand[line.ItemID] += line.Quantity
	}

	for itemID, qty := range demand {
		movements.AddReservation(stockledger.StockReservation{
			WarehouseID: t.SourceWarehouseID,
			ItemID:      itemID,
			RequiredQty: qty,
		})
	}

	return movements, nil
}

var _ posting.Postable = (*StockTransfer)(nil)
