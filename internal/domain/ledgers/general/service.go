// Package general provides the general ledger service.
package general

import (
	"context"
	"fmt"
	"time"

	"stockyard/internal/core/apperror"
	"stockyard/internal/core/entity"
	"stockyard/internal/core/id"
	"stockyard/pkg/logger"
)

// Service provides business operations for the general ledger.
// Transactions are managed by the caller (the posting engine).
type Service struct {
	repo Repository
}

// NewService creates a new general ledger service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// RecordMovements inserts general ledger movements and rebuilds running
// balances from the earliest touched period per account.
func (s *Service) RecordMovements(ctx context.Context, movements []entity.GeneralMovement) error {
	if len(movements) == 0 {
		return nil
	}

	for i, m := range movements {
		if m.AccountCode == "" {
			return apperror.NewValidation(fmt.Sprintf("movement %d: account_code is required", i))
		}
		if id.IsNil(m.RecorderID) {
			return apperror.NewValidation(fmt.Sprintf("movement %d: recorder_id is required", i))
		}
		if m.Debit.IsNegative() || m.Credit.IsNegative() {
			return apperror.NewValidation(fmt.Sprintf("movement %d: debit and credit must not be negative", i))
		}
	}

	if err := s.repo.CreateMovements(ctx, movements); err != nil {
		return fmt.Errorf("create movements: %w", err)
	}

	if err := s.rebuildAffected(ctx, movements); err != nil {
		return err
	}

	logger.Info(ctx, "recorded general ledger movements",
		"count", len(movements),
		"recorder_id", movements[0].RecorderID,
	)

	return nil
}

// ReverseMovements removes movements for a document and rebuilds the
// accounts they touched.
func (s *Service) ReverseMovements(ctx context.Context, recorderID id.ID, beforeVersion int) error {
	existing, err := s.repo.GetMovementsByRecorder(ctx, recorderID)
	if err != nil {
		return fmt.Errorf("load movements: %w", err)
	}

	if err := s.repo.DeleteMovementsByRecorder(ctx, recorderID, beforeVersion); err != nil {
		return fmt.Errorf("delete movements: %w", err)
	}

	return s.rebuildAffected(ctx, existing)
}

func (s *Service) rebuildAffected(ctx context.Context, movements []entity.GeneralMovement) error {
	earliest := make(map[string]time.Time)
	for _, m := range movements {
		if from, ok := earliest[m.AccountCode]; !ok || m.Period.Before(from) {
			earliest[m.AccountCode] = m.Period
		}
	}

	for account, from := range earliest {
		if err := s.repo.RebuildRunningBalances(ctx, account, from); err != nil {
			return fmt.Errorf("rebuild balances for account %s: %w", account, err)
		}
	}
	return nil
}

// GetAccountBalance returns the current balance for an account.
func (s *Service) GetAccountBalance(ctx context.Context, accountCode string) (entity.AccountBalance, error) {
	return s.repo.GetAccountBalance(ctx, accountCode)
}

// GetAccountHistory returns ledger rows for an account.
func (s *Service) GetAccountHistory(ctx context.Context, accountCode string, f HistoryFilter) ([]entity.GeneralMovement, error) {
	return s.repo.GetAccountHistory(ctx, accountCode, f)
}

// GetTrialBalance returns per-account totals for the period.
func (s *Service) GetTrialBalance(ctx context.Context, from, to time.Time) ([]TrialBalanceRow, error) {
	return s.repo.GetTrialBalance(ctx, from, to)
}
