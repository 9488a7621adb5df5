// Package general provides the general ledger: debit/credit movements
// per account with running balances.
package general

import (
	"context"
	"time"

	"stockyard/internal/core/entity"
	"stockyard/internal/core/id"
	"stockyard/internal/core/types"
)

// Repository defines operations for the general ledger.
type Repository interface {
	// CreateMovements batch inserts movements (used during posting)
	CreateMovements(ctx context.Context, movements []entity.GeneralMovement) error

	// DeleteMovementsByRecorder removes movements of a document whose
	// recorder_version is below the given version
	DeleteMovementsByRecorder(ctx context.Context, recorderID id.ID, beforeVersion int) error

	// GetMovementsByRecorder retrieves all movements for a document
	GetMovementsByRecorder(ctx context.Context, recorderID id.ID) ([]entity.GeneralMovement, error)

	// RebuildRunningBalances recomputes running_balance for every
	// movement of the account with period >= from, in ledger order,
	// and refreshes the account balance snapshot.
	RebuildRunningBalances(ctx context.Context, accountCode string, from time.Time) error

	// GetAccountBalance returns the current balance for an account
	GetAccountBalance(ctx context.Context, accountCode string) (entity.AccountBalance, error)

	// GetAccountHistory returns ledger rows for an account
	GetAccountHistory(ctx context.Context, accountCode string, filter HistoryFilter) ([]entity.GeneralMovement, error)

	// GetTrialBalance returns debit/credit totals per account for a period
	GetTrialBalance(ctx context.Context, from, to time.Time) ([]TrialBalanceRow, error)
}

// HistoryFilter for filtering account history.
type HistoryFilter struct {
	CounterpartyID *id.ID
	FromDate       *time.Time
	ToDate         *time.Time
	Limit          int
	Offset         int
}

// TrialBalanceRow holds period totals for one account.
type TrialBalanceRow struct {
	AccountCode    string      `json:"accountCode"`
	OpeningBalance types.Money `json:"openingBalance"`
	DebitTotal     types.Money `json:"debitTotal"`
	CreditTotal    types.Money `json:"creditTotal"`
	ClosingBalance types.Money `json:"closingBalance"`
}
