// Package stock provides the stock ledger: quantity movements per
// warehouse and item with a running balance on every row.
package stock

import (
	"context"
	"time"

	"stockyard/internal/core/entity"
	"stockyard/internal/core/id"
	"stockyard/internal/core/types"
)

// Repository defines operations for the stock ledger.
type Repository interface {
	// Movement operations

	// CreateMovements batch inserts movements (used during posting)
	CreateMovements(ctx context.Context, movements []entity.StockMovement) error

	// DeleteMovementsByRecorder removes movements of a document whose
	// recorder_version is below the given version. Used during unposting
	// and re-posting.
	DeleteMovementsByRecorder(ctx context.Context, recorderID id.ID, beforeVersion int) error

	// GetMovementsByRecorder retrieves all movements for a document
	GetMovementsByRecorder(ctx context.Context, recorderID id.ID) ([]entity.StockMovement, error)

	// Running balances

	// RebuildRunningBalances recomputes the running_balance column for
	// every movement of (warehouse, item) with period >= from, in ledger
	// order, and refreshes the balance snapshot row. Called after any
	// insert or delete that is not strictly append-only.
	RebuildRunningBalances(ctx context.Context, warehouseID, itemID id.ID, from time.Time) error

	// Balance operations

	// GetBalance returns current balance for warehouse+item
	GetBalance(ctx context.Context, warehouseID, itemID id.ID) (entity.StockBalance, error)

	// GetBalanceForUpdate returns balance with a row lock for stock control
	GetBalanceForUpdate(ctx context.Context, warehouseID, itemID id.ID) (entity.StockBalance, error)

	// GetBalancesByWarehouse returns balances for a warehouse
	GetBalancesByWarehouse(ctx context.Context, warehouseID id.ID, filter BalanceFilter) ([]entity.StockBalance, error)

	// GetBalancesByItem returns balances across all warehouses for an item
	GetBalancesByItem(ctx context.Context, itemID id.ID) ([]entity.StockBalance, error)

	// GetBalanceAsOf computes the balance from movements strictly before date
	GetBalanceAsOf(ctx context.Context, warehouseID, itemID id.ID, date time.Time) (types.Quantity, error)

	// Reporting

	// GetMovementHistory returns movement history for an item
	GetMovementHistory(ctx context.Context, itemID id.ID, filter MovementFilter) ([]entity.StockMovement, error)

	// GetTurnover calculates receipt and expense totals for a period
	GetTurnover(ctx context.Context, filter TurnoverFilter) (Turnover, error)
}

// BalanceFilter for filtering balance queries.
type BalanceFilter struct {
	ItemIDs     []id.ID
	ExcludeZero bool
	MinQuantity *types.Quantity
	MaxQuantity *types.Quantity
}

// MovementFilter for filtering movement history.
type MovementFilter struct {
	WarehouseID *id.ID
	RecordType  *entity.RecordType
	FromDate    *time.Time
	ToDate      *time.Time
	Limit       int
	Offset      int
}

// TurnoverFilter for turnover reports.
type TurnoverFilter struct {
	WarehouseID *id.ID
	ItemID      *id.ID
	FromDate    time.Time
	ToDate      time.Time
}

// Turnover represents receipt/expense totals.
type Turnover struct {
	WarehouseID    id.ID          `json:"warehouseId,omitempty"`
	ItemID         id.ID          `json:"itemId,omitempty"`
	OpeningBalance types.Quantity `json:"openingBalance"`
	Receipt        types.Quantity `json:"receipt"`
	Expense        types.Quantity `json:"expense"`
	ClosingBalance types.Quantity `json:"closingBalance"`
}
