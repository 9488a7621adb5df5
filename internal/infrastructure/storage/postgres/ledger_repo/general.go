package ledger_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"stockyard/internal/core/entity"
	"stockyard/internal/core/id"
	"stockyard/internal/domain/ledgers/general"
	"stockyard/internal/infrastructure/storage/postgres"
)

const (
	generalMovementsTable = "ldg_general_movements"
	accountBalancesTable  = "ldg_account_balances"
)

var generalMovementCols = []string{
	"line_id", "recorder_id", "recorder_type", "recorder_version",
	"period", "record_type",
	"account_code", "counterparty_id", "debit", "credit", "running_balance", "created_at",
}

// GeneralRepo implements general.Repository.
type GeneralRepo struct {
	txManager *postgres.TxManager
	builder   squirrel.StatementBuilderType
}

// NewGeneralRepo creates a new general ledger repository.
func NewGeneralRepo(txManager *postgres.TxManager) *GeneralRepo {
	return &GeneralRepo{
		txManager: txManager,
		builder:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateMovements batch inserts movements.
func (r *GeneralRepo) CreateMovements(ctx context.Context, movements []entity.GeneralMovement) error {
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
				m.AccountCode, m.CounterpartyID, m.Debit, m.Credit, m.RunningBalance, m.CreatedAt,
			})
		}
		if _, err := inserter.CopyFromSlice(ctx, generalMovementsTable, generalMovementCols, rows); err != nil {
			return fmt.Errorf("copy movements: %w", err)
		}
		return nil
	}

	q := r.builder.Insert(generalMovementsTable).Columns(generalMovementCols...)
	for _, m := range movements {
		q = q.Values(
			m.LineID, m.RecorderID, m.RecorderType, m.RecorderVersion,
			m.Period, m.RecordType,
			m.AccountCode, m.CounterpartyID, m.Debit, m.Credit, m.RunningBalance, m.CreatedAt,
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
func (r *GeneralRepo) DeleteMovementsByRecorder(ctx context.Context, recorderID id.ID, beforeVersion int) error {
	q := r.builder.Delete(generalMovementsTable).
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
func (r *GeneralRepo) GetMovementsByRecorder(ctx context.Context, recorderID id.ID) ([]entity.GeneralMovement, error) {
	q := r.builder.Select(generalMovementCols...).
		From(generalMovementsTable).
		Where(squirrel.Eq{"recorder_id": recorderID}).
		OrderBy("created_at")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var movements []entity.GeneralMovement
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &movements, sql, args...); err != nil {
		return nil, fmt.Errorf("select movements: %w", err)
	}

	return movements, nil
}

// RebuildRunningBalances recomputes running_balance for every movement of
// the account with period >= from and refreshes the account snapshot.
func (r *GeneralRepo) RebuildRunningBalances(ctx context.Context, accountCode string, from time.Time) error {
	querier := r.txManager.GetQuerier(ctx)

	openingSQL := `
		SELECT COALESCE(SUM(debit - credit), 0)
		FROM ` + generalMovementsTable + `
		WHERE account_code = $1 AND period < $2
	`
	var opening decimal.Decimal
	if err := querier.QueryRow(ctx, openingSQL, accountCode, from).Scan(&opening); err != nil && err != pgx.ErrNoRows {
		return fmt.Errorf("opening balance: %w", err)
	}

	rebuildSQL := `
		UPDATE ` + generalMovementsTable + ` m
		SET running_balance = sub.rb
		FROM (
			SELECT line_id,
				   $3::numeric + SUM(debit - credit)
					   OVER (ORDER BY period, created_at, line_id) AS rb
			FROM ` + generalMovementsTable + `
			WHERE account_code = $1 AND period >= $2
		) sub
		WHERE m.line_id = sub.line_id
	`
	if _, err := querier.Exec(ctx, rebuildSQL, accountCode, from, opening); err != nil {
		return fmt.Errorf("rebuild running balances: %w", err)
	}

	snapshotSQL := `
		INSERT INTO ` + accountBalancesTable + ` (account_code, balance, last_movement_at, updated_at)
		SELECT $1,
			   COALESCE(SUM(debit - credit), 0),
			   COALESCE(MAX(period), NOW()),
			   NOW()
		FROM ` + generalMovementsTable + `
		WHERE account_code = $1
		ON CONFLICT (account_code) DO UPDATE
		SET balance = EXCLUDED.balance,
			last_movement_at = EXCLUDED.last_movement_at,
			updated_at = NOW()
	`
	if _, err := querier.Exec(ctx, snapshotSQL, accountCode); err != nil {
		return fmt.Errorf("refresh balance snapshot: %w", err)
	}

	return nil
}

// GetAccountBalance returns the current balance for an account.
func (r *GeneralRepo) GetAccountBalance(ctx context.Context, accountCode string) (entity.AccountBalance, error) {
	var balance entity.AccountBalance

	q := r.builder.Select(
		"account_code", "balance", "last_movement_at", "updated_at",
	).From(accountBalancesTable).
		Where(squirrel.Eq{"account_code": accountCode}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return balance, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &balance, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return entity.AccountBalance{
				AccountCode: accountCode,
				Balance:     decimal.Zero,
			}, nil
		}
		return balance, fmt.Errorf("get account balance: %w", err)
	}

	return balance, nil
}

// GetAccountHistory returns ledger rows for an account.
func (r *GeneralRepo) GetAccountHistory(ctx context.Context, accountCode string, filter general.HistoryFilter) ([]entity.GeneralMovement, error) {
	q := r.builder.Select(generalMovementCols...).
		From(generalMovementsTable).
		Where(squirrel.Eq{"account_code": accountCode})

	if filter.CounterpartyID != nil {
		q = q.Where(squirrel.Eq{"counterparty_id": *filter.CounterpartyID})
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

	var movements []entity.GeneralMovement
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &movements, sql, args...); err != nil {
		return nil, fmt.Errorf("select history: %w", err)
	}

	return movements, nil
}

// GetTrialBalance returns per-account totals for a period.
func (r *GeneralRepo) GetTrialBalance(ctx context.Context, from, to time.Time) ([]general.TrialBalanceRow, error) {
	sql := `
		SELECT account_code,
			   COALESCE(SUM(CASE WHEN period < $1 THEN debit - credit ELSE 0 END), 0) AS opening_balance,
			   COALESCE(SUM(CASE WHEN period >= $1 THEN debit ELSE 0 END), 0) AS debit_total,
			   COALESCE(SUM(CASE WHEN period >= $1 THEN credit ELSE 0 END), 0) AS credit_total
		FROM ` + generalMovementsTable + `
		WHERE period < $2
		GROUP BY account_code
		ORDER BY account_code
	`

	var rows []general.TrialBalanceRow
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &rows, sql, from, to); err != nil {
		return nil, fmt.Errorf("select trial balance: %w", err)
	}

	for i := range rows {
		rows[i].ClosingBalance = rows[i].OpeningBalance.
			Add(rows[i].DebitTotal).
			Sub(rows[i].CreditTotal)
	}

	return rows, nil
}

// Ensure interface compliance.
var _ general.Repository = (*GeneralRepo)(nil)
