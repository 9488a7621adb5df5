// Package grn provides the GoodsReceiptNote document.
// A GRN records goods arriving from a supplier into a warehouse.
package grn

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"stockyard/internal/core/apperror"
	"stockyard/internal/core/entity"
	"stockyard/internal/core/id"
	"stockyard/internal/core/types"
	"stockyard/internal/domain/posting"
)

// GoodsReceiptNote represents an incoming goods document.
type GoodsReceiptNote struct {
	entity.Document

	// SupplierID references the counterparty delivering the goods
	SupplierID id.ID `db:"supplier_id" json:"supplierId"`

	// WarehouseID is where goods are received
	WarehouseID id.ID `db:"warehouse_id" json:"warehouseId"`

	// Supplier's document reference
	SupplierDocNumber string     `db:"supplier_doc_number" json:"supplierDocNumber,omitempty"`
	SupplierDocDate   *time.Time `db:"supplier_doc_date" json:"supplierDocDate,omitempty"`

	// Totals (calculated from lines)
	TotalQuantity types.Quantity  `db:"total_quantity" json:"totalQuantity"`
	TotalWeight   decimal.Decimal `db:"total_weight" json:"totalWeight"`
	TotalVolume   decimal.Decimal `db:"total_volume" json:"totalVolume"`
	TotalAmount   types.Money     `db:"total_amount" json:"totalAmount"`

	// Table part: received goods
	Lines []Line `db:"-" json:"lines"`
}

// Line represents one received item.
type Line struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	ItemID id.ID `db:"item_id" json:"itemId"`

	Quantity types.Quantity `db:"quantity" json:"quantity"`

	// Weight and Volume are derived from the item's unit measures
	Weight decimal.Decimal `db:"weight" json:"weight"`
	Volume decimal.Decimal `db:"volume" json:"volume"`

	// UnitCost is the purchase cost per unit
	UnitCost types.Money `db:"unit_cost" json:"unitCost"`

	// Amount = UnitCost * Quantity, rounded to 2 decimal places
	Amount types.Money `db:"amount" json:"amount"`

	// BatchNumber is required when the item is batch-tracked
	BatchNumber string     `db:"batch_number" json:"batchNumber,omitempty"`
	ExpiryDate  *time.Time `db:"expiry_date" json:"expiryDate,omitempty"`
}

// NewGoodsReceiptNote creates a new GRN document in draft state.
func NewGoodsReceiptNote(supplierID, warehouseID id.ID) *GoodsReceiptNote {
	return &GoodsReceiptNote{
		Document:    entity.NewDocument(),
		SupplierID:  supplierID,
		WarehouseID: warehouseID,
		TotalWeight: decimal.Zero,
		TotalVolume: decimal.Zero,
		TotalAmount: types.ZeroMoney(),
		Lines:       make([]Line, 0),
	}
}

// AddLine appends a line, assigning its identity and amount, and
// recalculates totals.
func (g *GoodsReceiptNote) AddLine(line Line) {
	line.LineID = id.New()
	line.LineNo = len(g.Lines) + 1
	line.Amount = line.UnitCost.Mul(line.Quantity.Decimal()).Round(2)
	g.Lines = append(g.Lines, line)
	g.RecalculateTotals()
}

// RecalculateTotals updates document totals from lines.
func (g *GoodsReceiptNote) RecalculateTotals() {
	g.TotalQuantity = 0
	g.TotalWeight = decimal.Zero
	g.TotalVolume = decimal.Zero
	g.TotalAmount = types.ZeroMoney()

	for _, line := range g.Lines {
		g.TotalQuantity += line.Quantity
		g.TotalWeight = g.TotalWeight.Add(line.Weight)
		g.TotalVolume = g.TotalVolume.Add(line.Volume)
		g.TotalAmount = g.TotalAmount.Add(line.Amount)
	}
}

// Validate implements entity.Validatable.
func (g *GoodsReceiptNote) Validate(ctx context.Context) error {
	if err := g.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(g.SupplierID) {
		return apperror.NewValidation("supplier is required").
			WithDetail("field", "supplierId")
	}

	if id.IsNil(g.WarehouseID) {
		return apperror.NewValidation("warehouse is required").
			WithDetail("field", "warehouseId")
	}

	if len(g.Lines) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "lines")
	}

	for i, line := range g.Lines {
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
		if line.UnitCost.IsNegative() {
			return apperror.NewValidation("unit cost cannot be negative").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
	}

	return nil
}

// GetDocumentType returns the document type name.
func (g *GoodsReceiptNote) GetDocumentType() string {
	return "GoodsReceiptNote"
}

// GenerateMovements creates stock receipts for every line.
func (g *GoodsReceiptNote) GenerateMovements(ctx context.Context) (*posting.MovementSet, error) {
	movements := posting.NewMovementSet()

	newVersion := g.PostedVersion + 1
	for _, line := range g.Lines {
		movements.AddStock(entity.NewStockMovement(
			g.ID,
			g.GetDocumentType(),
			newVersion,
			g.Date,
			entity.RecordTypeReceipt,
			g.WarehouseID,
			line.ItemID,
			line.Quantity,
		))
	}

	return movements, nil
}

var _ posting.Postable = (*GoodsReceiptNote)(nil)
