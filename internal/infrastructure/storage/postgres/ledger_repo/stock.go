// Package ledger_repo provides PostgreSQL implementations for ledger repositories.
package ledger_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"stockyard/internal/core/entity"
	"stockyard/internal/core/id"
	"stockyard/internal/core/types"
	"stockyard/internal/domain/ledgers/stock"
	"stockyard/internal/infrastructure/storage/postgres"
)

const (
	stockMovementsTable = "ldg_stock_movements"
	stockBalancesTable  = "ldg_stock_balances"
)

var stockMovementCols = []string{
	"line_id", "recorder_id", "recorder_type", "recorder_version",
	"period", "record_type",
	"warehouse_id", "item_id", "quantity", "running_balance", "created_at",
}

// StockRepo implements stock.Repository.
type StockRepo struct {
	txManager *postgres.TxManager
	builder   squirrel.StatementBuilderType
}

// NewStockRepo creates a new stock ledger repository.
func NewStockRepo(txManager *postgres.TxManager) *StockRepo {
	return &StockRepo{
		txManager: txManager,
		builder:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateMovements batch inserts movements.
func (r *StockRepo) CreateMovements(ctx context.Context, movements []entity.StockMovement) error {
	if len(movements) == 0 {
		return nil
	}

	// Fast path: COPY when inside a transaction.
	if tx := r.txManager.GetTx(ctx); tx != nil {
		inserter := postgres.NewBatchInserter(r.txManager)
		rows := make([][]any, 0, len(movements))
		for _, m := range movements {
			rows = append(rows, []any{
				m.LineID, m.RecorderID, m.RecorderType, m.RecorderVersion,
				m.Period, m.RecordType,
				m.WarehouseID, m.ItemID, m.Quantity, m.RunningBalance, m.CreatedAt,
			})
		}
		if _, err := inserter.CopyFromSlice(ctx, stockMovementsTable, stockMovementCols, rows); err != nil {
			return fmt.Errorf("copy movements: %w", err)
		}
		return nil
	}

	// Fallback: non-transactional insert (slower). Prefer calling CreateMovements within tx.
	q := r.builder.Insert(stockMovementsTable).Columns(stockMovementCols...)
	for _, m := range movements {
		q = q.Values(
			m.LineID, m.RecorderID, m.RecorderType, m.RecorderVersion,
			m.Period, m.RecordType,
			m.WarehouseID, m.ItemID, m.Quantity, m.RunningBalance, m.CreatedAt,
		)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert movements: %w", err)
	}

	return nil
}

// DeleteMovementsByRecorder removes movements for a document version.
func (r *StockRepo) DeleteMovementsByRecorder(ctx context.Context, recorderID id.ID, beforeVersion int) error {
	q := r.builder.Delete(stockMovementsTable).
		Where(squirrel.Eq{"recorder_id": recorderID}).
		Where(squirrel.Lt{"recorder_version": beforeVersion})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete movements: %w", err)
	}

	return nil
}

// GetMovementsByRecorder retrieves movements for a document.
func (r *StockRepo) GetMovementsByRecorder(ctx context.Context, recorderID id.ID) ([]entity.StockMovement, error) {
	q := r.builder.Select(stockMovementCols...).
		From(stockMovementsTable).
		Where(squirrel.Eq{"recorder_id": recorderID}).
		OrderBy("created_at")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var movements []entity.StockMovement
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &movements, sql, args...); err != nil {
		return nil, fmt.Errorf("select movements: %w", err)
	}

	return movements, nil
}

// RebuildRunningBalances recomputes running_balance for every movement of
// (warehouse, item) with period >= from and refreshes the balance snapshot.
// Backdated inserts and deletions work the same way: callers pass the
// earliest touched period and everything from there forward is rewritten.
func (r *StockRepo) RebuildRunningBalances(ctx context.Context, warehouseID, itemID id.ID, from time.Time) error {
	querier := r.txManager.GetQuerier(ctx)

	// Opening balance: signed sum of everything strictly before the rebuild point.
	openingSQL := `
		SELECT COALESCE(
			SUM(CASE WHEN record_type = 'receipt' THEN quantity ELSE -quantity END),
			0
		)
		FROM ` + stockMovementsTable + `
		WHERE warehouse_id = $1 AND item_id = $2 AND period < $3
	`
	var opening int64
	if err := querier.QueryRow(ctx, openingSQL, warehouseID, itemID, from).Scan(&opening); err != nil && err != pgx.ErrNoRows {
		return fmt.Errorf("opening balance: %w", err)
	}

	// Rewrite running balances forward in ledger order. line_id breaks
	// ties so the ordering is total and stable.
	rebuildSQL := `
		UPDATE ` + stockMovementsTable + ` m
		SET running_balance = sub.rb
		FROM (
			SELECT line_id,
				   $4::bigint + SUM(
					   CASE WHEN record_type = 'receipt' THEN quantity ELSE -quantity END
				   ) OVER (ORDER BY period, created_at, line_id) AS rb
			FROM ` + stockMovementsTable + `
			WHERE warehouse_id = $1 AND item_id = $2 AND period >= $3
		) sub
		WHERE m.line_id = sub.line_id
	`
	if _, err := querier.Exec(ctx, rebuildSQL, warehouseID, itemID, from, opening); err != nil {
		return fmt.Errorf("rebuild running balances: %w", err)
	}

	// Refresh the snapshot row from the full movement set.
	snapshotSQL := `
		INSERT INTO ` + stockBalancesTable + ` (warehouse_id, item_id, quantity, last_movement_at, updated_at)
		SELECT $1, $2,
			   COALESCE(SUM(CASE WHEN record_type = 'receipt' THEN quantity ELSE -quantity END), 0),
			   COALESCE(MAX(period), NOW()),
			   NOW()
		FROM ` + stockMovementsTable + `
		WHERE warehouse_id = $1 AND item_id = $2
		ON CONFLICT (warehouse_id, item_id) DO UPDATE
		SET quantity = EXCLUDED.quantity,
			last_movement_at = EXCLUDED.last_movement_at,
			updated_at = NOW()
	`
	if _, err := querier.Exec(ctx, snapshotSQL, warehouseID, itemID); err != nil {
		return fmt.Errorf("refresh balance snapshot: %w", err)
	}

	return nil
}

// GetBalance returns current balance for warehouse+item.
func (r *StockRepo) GetBalance(ctx context.Context, warehouseID, itemID id.ID) (entity.StockBalance, error) {
	var balance entity.StockBalance

	q := r.builder.Select(
		"warehouse_id", "item_id",
		"quantity", "last_movement_at", "updated_at",
	).From(stockBalancesTable).
		Where(squirrel.Eq{
			"warehouse_id": warehouseID,
			"item_id":      itemID,
		}).Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return balance, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &balance, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return entity.StockBalance{
				WarehouseID: warehouseID,
				ItemID:      itemID,
				Quantity:    0,
			}, nil
		}
		return balance, fmt.Errorf("get balance: %w", err)
	}

	return balance, nil
}

// GetBalanceForUpdate returns balance with pessimistic lock.
func (r *StockRepo) GetBalanceForUpdate(ctx context.Context, warehouseID, itemID id.ID) (entity.StockBalance, error) {
	var balance entity.StockBalance

	sql := `
		SELECT warehouse_id, item_id, quantity, last_movement_at, updated_at
		FROM ` + stockBalancesTable + `
		WHERE warehouse_id = $1 AND item_id = $2
		FOR UPDATE
	`

	err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &balance, sql, warehouseID, itemID)
	if err != nil {
		if pgxscan.NotFound(err) {
			return entity.StockBalance{
				WarehouseID: warehouseID,
				ItemID:      itemID,
				Quantity:    0,
			}, nil
		}
		return balance, fmt.Errorf("get balance for update: %w", err)
	}

	return balance, nil
}

// GetBalancesByWarehouse returns balances for a warehouse.
func (r *StockRepo) GetBalancesByWarehouse(ctx context.Context, warehouseID id.ID, filter stock.BalanceFilter) ([]entity.StockBalance, error) {
	q := r.builder.Select(
		"warehouse_id", "item_id",
		"quantity", "last_movement_at", "updated_at",
	).From(stockBalancesTable).
		Where(squirrel.Eq{"warehouse_id": warehouseID})

	if filter.ExcludeZero {
		q = q.Where(squirrel.NotEq{"quantity": int64(0)})
	}

	if len(filter.ItemIDs) > 0 {
		q = q.Where(squirrel.Eq{"item_id": filter.ItemIDs})
	}

	if filter.MinQuantity != nil {
		q = q.Where(squirrel.GtOrEq{"quantity": filter.MinQuantity.Int64Scaled()})
	}

	if filter.MaxQuantity != nil {
		q = q.Where(squirrel.LtOrEq{"quantity": filter.MaxQuantity.Int64Scaled()})
	}

	q = q.OrderBy("item_id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var balances []entity.StockBalance
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &balances, sql, args...); err != nil {
		return nil, fmt.Errorf("select balances: %w", err)
	}

	return balances, nil
}

// GetBalancesByItem returns balances for an item across warehouses.
func (r *StockRepo) GetBalancesByItem(ctx context.Context, itemID id.ID) ([]entity.StockBalance, error) {
	q := r.builder.Select(
		"warehouse_id", "item_id",
		"quantity", "last_movement_at", "updated_at",
	).From(stockBalancesTable).
		Where(squirrel.Eq{"item_id": itemID}).
		Where(squirrel.NotEq{"quantity": int64(0)}).
		OrderBy("warehouse_id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var balances []entity.StockBalance
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &balances, sql, args...); err != nil {
		return nil, fmt.Errorf("select balances: %w", err)
	}

	return balances, nil
}

// GetBalanceAsOf calculates balance from movements strictly before a date.
func (r *StockRepo) GetBalanceAsOf(ctx context.Context, warehouseID, itemID id.ID, date time.Time) (types.Quantity, error) {
	sql := `
		SELECT COALESCE(
			SUM(CASE WHEN record_type = 'receipt' THEN quantity ELSE -quantity END),
			0
		)
		FROM ` + stockMovementsTable + `
		WHERE warehouse_id = $1
		  AND item_id = $2
		  AND period < $3
	`

	var balanceScaled int64
	err := r.txManager.GetQuerier(ctx).QueryRow(ctx, sql, warehouseID, itemID, date).Scan(&balanceScaled)
	if err != nil && err != pgx.ErrNoRows {
		return 0, fmt.Errorf("calculate balance as of: %w", err)
	}

	return types.NewQuantityFromInt64Scaled(balanceScaled), nil
}

// GetMovementHistory returns movement history for an item.
func (r *StockRepo) GetMovementHistory(ctx context.Context, itemID id.ID, filter stock.MovementFilter) ([]entity.StockMovement, error) {
	q := r.builder.Select(stockMovementCols...).
		From(stockMovementsTable).
		Where(squirrel.Eq{"item_id": itemID})

	if filter.WarehouseID != nil {
		q = q.Where(squirrel.Eq{"warehouse_id": *filter.WarehouseID})
	}

	if filter.RecordType != nil {
		q = q.Where(squirrel.Eq{"record_type": *filter.RecordType})
	}

	if filter.FromDate != nil {
		q = q.Where(squirrel.GtOrEq{"period": *filter.FromDate})
	}

	if filter.ToDate != nil {
		q = q.Where(squirrel.LtOrEq{"period": *filter.ToDate})
	}

	q = q.OrderBy("period DESC", "created_at DESC")

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var movements []entity.StockMovement
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &movements, sql, args...); err != nil {
		return nil, fmt.Errorf("select history: %w", err)
	}

	return movements, nil
}

// GetTurnover calculates turnover for period.
func (r *StockRepo) GetTurnover(ctx context.Context, filter stock.TurnoverFilter) (stock.Turnover, error) {
	var result stock.Turnover

	args := []any{filter.FromDate, filter.ToDate}
	baseConditions := "period >= $1 AND period < $2"
	argIndex := 3

	if filter.WarehouseID != nil {
		baseConditions += fmt.Sprintf(" AND warehouse_id = $%d", argIndex)
		args = append(args, *filter.WarehouseID)
		result.WarehouseID = *filter.WarehouseID
		argIndex++
	}

	if filter.ItemID != nil {
		baseConditions += fmt.Sprintf(" AND item_id = $%d", argIndex)
		args = append(args, *filter.ItemID)
		result.ItemID = *filter.ItemID
	}

	sql := fmt.Sprintf(`
		SELECT
			COALESCE(SUM(CASE WHEN record_type = 'receipt' THEN quantity ELSE 0 END), 0) as receipt,
			COALESCE(SUM(CASE WHEN record_type = 'expense' THEN quantity ELSE 0 END), 0) as expense
		FROM %s
		WHERE %s
	`, stockMovementsTable, baseConditions)

	querier := r.txManager.GetQuerier(ctx)
	var receiptScaled, expenseScaled int64
	err := querier.QueryRow(ctx, sql, args...).Scan(&receiptScaled, &expenseScaled)
	if err != nil && err != pgx.ErrNoRows {
		return result, fmt.Errorf("calculate turnover: %w", err)
	}
	result.Receipt = types.NewQuantityFromInt64Scaled(receiptScaled)
	result.Expense = types.NewQuantityFromInt64Scaled(expenseScaled)

	// Opening balance
	openingArgs := []any{filter.FromDate}
	openingConditions := "period < $1"
	argIndex = 2

	if filter.WarehouseID != nil {
		openingConditions += fmt.Sprintf(" AND warehouse_id = $%d", argIndex)
		openingArgs = append(openingArgs, *filter.WarehouseID)
		argIndex++
	}

	if filter.ItemID != nil {
		openingConditions += fmt.Sprintf(" AND item_id = $%d", argIndex)
		openingArgs = append(openingArgs, *filter.ItemID)
	}

	openingSQL := fmt.Sprintf(`
		SELECT COALESCE(
			SUM(CASE WHEN record_type = 'receipt' THEN quantity ELSE -quantity END),
			0
		)
		FROM %s
		WHERE %s
	`, stockMovementsTable, openingConditions)

	var openingScaled int64
	err = querier.QueryRow(ctx, openingSQL, openingArgs...).Scan(&openingScaled)
	if err != nil && err != pgx.ErrNoRows {
		return result, fmt.Errorf("calculate opening balance: %w", err)
	}
	result.OpeningBalance = types.NewQuantityFromInt64Scaled(openingScaled)

	result.ClosingBalance = result.OpeningBalance + result.Receipt - result.Expense

	return result, nil
}

// Ensure interface compliance.
var _ stock.Repository = (*StockRepo)(nil)
