// Package stock provides the stock ledger service.
package stock

import (
	"context"
	"fmt"
	"time"

	"stockyard/internal/core/apperror"
	"stockyard/internal/core/entity"
	"stockyard/internal/core/id"
	"stockyard/internal/core/types"
	"stockyard/pkg/logger"
)

// Service provides business operations for the stock ledger.
// Transactions are managed by the caller (the posting engine).
type Service struct {
	repo Repository
}

// NewService creates a new stock ledger service.
func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
	}
}

type dimensionKey struct {
	warehouseID id.ID
	itemID      id.ID
}

// RecordMovements inserts stock movements for a document posting and
// rebuilds running balances from the earliest touched period forward.
// A backdated document therefore shifts the running balance of every
// later movement for the same warehouse and item.
func (s *Service) RecordMovements(ctx context.Context, movements []entity.StockMovement) error {
	if len(movements) == 0 {
		return nil
	}

	for i, m := range movements {
		if !m.Quantity.IsPositive() {
			return apperror.NewValidation(fmt.Sprintf("movement %d: quantity must be positive", i))
		}
		if id.IsNil(m.RecorderID) {
			return apperror.NewValidation(fmt.Sprintf("movement %d: recorder_id is required", i))
		}
		if id.IsNil(m.WarehouseID) || id.IsNil(m.ItemID) {
			return apperror.NewValidation(fmt.Sprintf("movement %d: warehouse_id and item_id are required", i))
		}
	}

	if err := s.repo.CreateMovements(ctx, movements); err != nil {
		return fmt.Errorf("create movements: %w", err)
	}

	if err := s.rebuildAffected(ctx, movements); err != nil {
		return err
	}

	logger.Info(ctx, "recorded stock movements",
		"count", len(movements),
		"recorder_id", movements[0].RecorderID,
	)

	return nil
}

// ReverseMovements removes movements for a document (used during
// unposting) and rebuilds balances of the dimensions they touched.
func (s *Service) ReverseMovements(ctx context.Context, recorderID id.ID, beforeVersion int) error {
	existing, err := s.repo.GetMovementsByRecorder(ctx, recorderID)
	if err != nil {
		return fmt.Errorf("load movements: %w", err)
	}

	if err := s.repo.DeleteMovementsByRecorder(ctx, recorderID, beforeVersion); err != nil {
		return fmt.Errorf("delete movements: %w", err)
	}

	if err := s.rebuildAffected(ctx, existing); err != nil {
		return err
	}

	logger.Info(ctx, "reversed stock movements",
		"recorder_id", recorderID,
		"before_version", beforeVersion,
	)

	return nil
}

// rebuildAffected rebuilds running balances once per touched
// (warehouse, item) pair, starting at its earliest movement period.
func (s *Service) rebuildAffected(ctx context.Context, movements []entity.StockMovement) error {
	earliest := make(map[dimensionKey]time.Time)
	for _, m := range movements {
		key := dimensionKey{m.WarehouseID, m.ItemID}
		if from, ok := earliest[key]; !ok || m.Period.Before(from) {
			earliest[key] = m.Period
		}
	}

	for key, from := range earliest {
		if err := s.repo.RebuildRunningBalances(ctx, key.warehouseID, key.itemID, from); err != nil {
			return fmt.Errorf("rebuild balances for item %s: %w", key.itemID, err)
		}
	}
	return nil
}

// StockReservation represents a stock check request.
type StockReservation struct {
	WarehouseID id.ID
	ItemID      id.ID
	RequiredQty types.Quantity
}

// CheckAndReserveStock validates stock availability with pessimistic
// locking. Must be called within a transaction before creating expense
// movements.
func (s *Service) CheckAndReserveStock(ctx context.Context, items []StockReservation) error {
	for _, item := range items {
		balance, err := s.repo.GetBalanceForUpdate(ctx, item.WarehouseID, item.ItemID)
		if err != nil {
			return fmt.Errorf("get balance for %s: %w", item.ItemID, err)
		}

		if balance.Quantity < item.RequiredQty {
			return apperror.NewInsufficientStock(
				item.ItemID.String(),
				item.RequiredQty.Float64(),
				balance.Quantity.Float64(),
			)
		}
	}

	return nil
}

// GetItemAvailability returns available quantity across warehouses.
func (s *Service) GetItemAvailability(ctx context.Context, itemID id.ID) (types.Quantity, error) {
	balances, err := s.repo.GetBalancesByItem(ctx, itemID)
	if err != nil {
		return 0, fmt.Errorf("get balances: %w", err)
	}

	var total types.Quantity
	for _, b := range balances {
		total += b.Quantity
	}

	return total, nil
}

// GetWarehouseStock returns all items with stock in a warehouse.
func (s *Service) GetWarehouseStock(ctx context.Context, warehouseID id.ID) ([]entity.StockBalance, error) {
	return s.repo.GetBalancesByWarehouse(ctx, warehouseID, BalanceFilter{
		ExcludeZero: true,
	})
}

// GetBalance returns the current balance for one warehouse and item.
func (s *Service) GetBalance(ctx context.Context, warehouseID, itemID id.ID) (entity.StockBalance, error) {
	return s.repo.GetBalance(ctx, warehouseID, itemID)
}

// GetMovementHistory returns the ledger rows for an item.
func (s *Service) GetMovementHistory(ctx context.Context, itemID id.ID, f MovementFilter) ([]entity.StockMovement, error) {
	return s.repo.GetMovementHistory(ctx, itemID, f)
}

// GetTurnover generates a turnover report for the period.
func (s *Service) GetTurnover(ctx context.Context, filter TurnoverFilter) (Turnover, error) {
	return s.repo.GetTurnover(ctx, filter)
}
