// Package entity provides core domain entities.
package entity

import (
	"time"

	"stockyard/internal/core/id"
	"stockyard/internal/core/types"
)

// RecordType defines movement direction for accumulation ledgers.
type RecordType string

const (
	// RecordTypeReceipt increases balance
	RecordTypeReceipt RecordType = "receipt"
	// RecordTypeExpense decreases balance
	RecordTypeExpense RecordType = "expense"
)

// MovementBase contains common fields for all ledger movements.
// Movements are immutable: they are never updated, only deleted by
// recorder version and recreated on re-posting.
type MovementBase struct {
	// LineID is unique identifier for this movement line (UUIDv7)
	LineID id.ID `db:"line_id" json:"lineId"`

	// RecorderID is the document that created this movement
	RecorderID id.ID `db:"recorder_id" json:"recorderId"`

	// RecorderType is the document type (e.g., "GRN", "DeliveryOrder")
	RecorderType string `db:"recorder_type" json:"recorderType"`

	// RecorderVersion tracks which posting iteration created this movement.
	// Allows efficient cleanup: DELETE WHERE recorder_id = X AND recorder_version < Y
	RecorderVersion int `db:"recorder_version" json:"recorderVersion"`

	// Period is the business date for the movement (for period-based queries)
	Period time.Time `db:"period" json:"period"`

	// RecordType: receipt or expense
	RecordType RecordType `db:"record_type" json:"recordType"`

	// CreatedAt is when the movement was recorded
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// NewMovementBase creates a new movement base with generated LineID.
func NewMovementBase(recorderID id.ID, recorderType string, recorderVersion int, period time.Time, recordType RecordType) MovementBase {
	return MovementBase{
		LineID:          id.New(),
		RecorderID:      recorderID,
		RecorderType:    recorderType,
		RecorderVersion: recorderVersion,
		Period:          period,
		RecordType:      recordType,
		CreatedAt:       time.Now().UTC(),
	}
}

// StockMovement represents one row in the stock ledger.
// Tracks quantity changes for items in warehouses with a denormalized
// running balance per (warehouse, item) key.
type StockMovement struct {
	MovementBase

	// Dimensions
	WarehouseID id.ID `db:"warehouse_id" json:"warehouseId"`
	ItemID      id.ID `db:"item_id" json:"itemId"`

	// Resources
	Quantity types.Quantity `db:"quantity" json:"quantity"`

	// RunningBalance is the balance for (warehouse, item) after this
	// movement, in (period, created_at) order. Maintained by the stock
	// ledger service; rebuilt forward when a backdated row is inserted.
	RunningBalance types.Quantity `db:"running_balance" json:"runningBalance"`
}

// NewStockMovement creates a new stock movement.
func NewStockMovement(
	recorderID id.ID,
	recorderType string,
	recorderVersion int,
	period time.Time,
	recordType RecordType,
	warehouseID, itemID id.ID,
	quantity types.Quantity,
) StockMovement {
	return StockMovement{
		MovementBase: NewMovementBase(recorderID, recorderType, recorderVersion, period, recordType),
		WarehouseID:  warehouseID,
		ItemID:       itemID,
		Quantity:     quantity,
	}
}

// SignedQuantity returns quantity with sign based on record type.
// Receipt = positive, Expense = negative.
func (m *StockMovement) SignedQuantity() types.Quantity {
	if m.RecordType == RecordTypeExpense {
		return m.Quantity.Neg()
	}
	return m.Quantity
}

// StockBalance is the materialized current balance per (warehouse, item).
type StockBalance struct {
	// Dimensions
	WarehouseID id.ID `db:"warehouse_id" json:"warehouseId"`
	ItemID      id.ID `db:"item_id" json:"itemId"`

	// Balances
	Quantity types.Quantity `db:"quantity" json:"quantity"`

	// Metadata
	LastMovementAt time.Time `db:"last_movement_at" json:"lastMovementAt"`
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`
}

// GeneralMovement represents one row in the general ledger: a debit or
// credit against an account, with the account's running balance after
// this row (balance = prior + debit - credit).
type GeneralMovement struct {
	MovementBase

	// Dimensions
	AccountCode    string `db:"account_code" json:"accountCode"`
	CounterpartyID *id.ID `db:"counterparty_id" json:"counterpartyId,omitempty"`

	// Resources
	Debit  types.Money `db:"debit" json:"debit"`
	Credit types.Money `db:"credit" json:"credit"`

	// RunningBalance after this row, per account_code in (period, created_at) order.
	RunningBalance types.Money `db:"running_balance" json:"runningBalance"`
}

// NewGeneralMovement creates a new general ledger movement.
func NewGeneralMovement(
	recorderID id.ID,
	recorderType string,
	recorderVersion int,
	period time.Time,
	accountCode string,
	debit, credit types.Money,
) GeneralMovement {
	recordType := RecordTypeReceipt
	if credit.GreaterThan(debit) {
		recordType = RecordTypeExpense
	}
	return GeneralMovement{
		MovementBase: NewMovementBase(recorderID, recorderType, recorderVersion, period, recordType),
		AccountCode:  accountCode,
		Debit:        debit,
		Credit:       credit,
	}
}

// SignedAmount returns debit - credit.
func (m *GeneralMovement) SignedAmount() types.Money {
	return m.Debit.Sub(m.Credit)
}

// AccountBalance is the materialized current balance per account.
type AccountBalance struct {
	AccountCode    string      `db:"account_code" json:"accountCode"`
	Balance        types.Money `db:"balance" json:"balance"`
	LastMovementAt time.Time   `db:"last_movement_at" json:"lastMovementAt"`
	UpdatedAt      time.Time   `db:"updated_at" json:"updatedAt"`
}
