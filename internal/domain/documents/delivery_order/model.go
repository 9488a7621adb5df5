// Package delivery_order provides the DeliveryOrder document.
// A delivery order ships goods out of a warehouse to a customer.
package delivery_order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"stockyard/internal/core/apperror"
	"stockyard/internal/core/entity"
	"stockyard/internal/core/id"
	"stockyard/internal/core/types"
	stockledger "stockyard/internal/domain/ledgers/stock"
	"stockyard/internal/domain/posting"
)

// DeliveryOrder represents an outgoing goods document.
type DeliveryOrder struct {
	entity.Document

	// CustomerID references the counterparty receiving the goods
	CustomerID id.ID `db:"customer_id" json:"customerId"`

	// WarehouseID is where goods are issued from
	WarehouseID id.ID `db:"warehouse_id" json:"warehouseId"`

	// CarrierID optionally references the transport company
	CarrierID *id.ID `db:"carrier_id" json:"carrierId,omitempty"`

	// ShipTo is the delivery address
	ShipTo *string `db:"ship_to" json:"shipTo,omitempty"`

	// PlannedAt is the requested shipping date
	PlannedAt *time.Time `db:"planned_at" json:"plannedAt,omitempty"`

	// Totals (calculated from lines)
	TotalQuantity types.Quantity  `db:"total_quantity" json:"totalQuantity"`
	TotalWeight   decimal.Decimal `db:"total_weight" json:"totalWeight"`
	TotalVolume   decimal.Decimal `db:"total_volume" json:"totalVolume"`

	// Table part: shipped goods
	Lines []Line `db:"-" json:"lines"`
}

// Line represents one shipped item.
type Line struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	ItemID   id.ID          `db:"item_id" json:"itemId"`
	Quantity types.Quantity `db:"quantity" json:"quantity"`

	// Weight and Volume are derived from the item's unit measures
	Weight decimal.Decimal `db:"weight" json:"weight"`
	Volume decimal.Decimal `db:"volume" json:"volume"`

	// BatchNumber identifies the shipped batch for batch-tracked items
	BatchNumber string     `db:"batch_number" json:"batchNumber,omitempty"`
	ExpiryDate  *time.Time `db:"expiry_date" json:"expiryDate,omitempty"`
}

// NewDeliveryOrder creates a new delivery order in draft state.
func NewDeliveryOrder(customerID, warehouseID id.ID) *DeliveryOrder {
	return &DeliveryOrder{
		Document:    entity.NewDocument(),
		CustomerID:  customerID,
		WarehouseID: warehouseID,
		TotalWeight: decimal.Zero,
		TotalVolume: decimal.Zero,
		Lines:       make([]Line, 0),
	}
}

// AddLine appends a line, assigning its identity, and recalculates totals.
func (d *DeliveryOrder) AddLine(line Line) {
	line.LineID = id.New()
	line.LineNo = len(d.Lines) + 1
	d.Lines = append(d.Lines, line)
	d.RecalculateTotals()
}

// RecalculateTotals updates document totals from lines.
func (d *DeliveryOrder) RecalculateTotals() {
	d.TotalQuantity = 0
	d.TotalWeight = decimal.Zero
	d.TotalVolume = decimal.Zero

	for _, line := range d.Lines {
		d.TotalQuantity += line.Quantity
		d.TotalWeight = d.TotalWeight.Add(line.Weight)
		d.TotalVolume = d.TotalVolume.Add(line.Volume)
	}
}

// Validate implements entity.Validatable.
func (d *DeliveryOrder) Validate(ctx context.Context) error {
	if err := d.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(d.CustomerID) {
		return apperror.NewValidation("customer is required").
			WithDetail("field", "customerId")
	}

	if id.IsNil(d.WarehouseID) {
		return apperror.NewValidation("warehouse is required").
			WithDetail("field", "warehouseId")
	}

	if len(d.Lines) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "lines")
	}

	for i, line := range d.Lines {
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
func (d *DeliveryOrder) GetDocumentType() string {
	return "DeliveryOrder"
}

// GenerateMovements creates stock expenses with availability checks.
// Lines for the same item are aggregated so the reservation reflects
// the total demand, not per-line amounts.
func (d *DeliveryOrder) GenerateMovements(ctx context.Context) (*posting.MovementSet, error) {
	movements := posting.NewMovementSet()

	newVersion := d.PostedVersion + 1
	demand := make(map[id.ID]types.Quantity)

	for _, line := range d.Lines {
		movements.AddStock(entity.NewStockMovement(
			d.ID,
			d.GetDocumentType(),
			newVersion,
			d.Date,
			entity.RecordTypeExpense,
			d.WarehouseID,
			line.ItemID,
			line.Quantity,
		))
		demand[line.ItemID] += line.Quantity
	}

	for itemID, qty := range demand {
		movements.AddReservation(stockledger.StockReservation{
			WarehouseID: d.WarehouseID,
			ItemID:      itemID,
			RequiredQty: qty,
		})
	}

	return movements, nil
}

var _ posting.Postable = (*DeliveryOrder)(nil)
