package reports

import (
	"context"
	"fmt"
	"time"

	"stockyard/internal/core/apperror"
	"stockyard/internal/core/id"
	"stockyard/internal/core/tx"
)

// Service provides report generation.
type Service struct {
	repo Repository
	tx   tx.ReadOnlyManager
}

// NewService creates a report service. txManager may be nil, multi-query
// reports then run without snapshot isolation.
func NewService(repo Repository, txManager tx.ReadOnlyManager) *Service {
	return &Service{repo: repo, tx: txManager}
}

func (s *Service) readOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.tx == nil {
		return fn(ctx)
	}
	return s.tx.ReadOnly(ctx, fn)
}

// GetStockBalanceReport generates a stock balance report as of a date.
func (s *Service) GetStockBalanceReport(ctx context.Context, filter StockBalanceReportFilter) (*StockBalanceReport, error) {
	if filter.AsOfDate == nil {
		now := time.Now()
		filter.AsOfDate = &now
	}
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	if filter.Limit > 1000 {
		filter.Limit = 1000
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	items, total, err := s.repo.GetStockBalances(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("stock balance report: %w", err)
	}

	report := &StockBalanceReport{
		AsOfDate:   *filter.AsOfDate,
		Items:      items,
		TotalItems: total,
	}
	for _, item := range items {
		report.TotalQuantity += item.Quantity
	}
	return report, nil
}

// GetStockTurnoverReport generates a stock turnover report for a period.
func (s *Service) GetStockTurnoverReport(ctx context.Context, filter StockTurnoverReportFilter) (*StockTurnoverReport, error) {
	if filter.FromDate.IsZero() || filter.ToDate.IsZero() {
		return nil, apperror.NewValidation("fromDate and toDate are required")
	}
	if filter.ToDate.Before(filter.FromDate) {
		return nil, apperror.NewValidation("toDate must not be before fromDate")
	}
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	if filter.Limit > 1000 {
		filter.Limit = 1000
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	items, total, err := s.repo.GetStockTurnover(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("stock turnover report: %w", err)
	}

	return &StockTurnoverReport{
		FromDate:   filter.FromDate,
		ToDate:     filter.ToDate,
		Items:      items,
		TotalItems: total,
	}, nil
}

// GetCustomerStatement generates a receivables statement for one counterparty.
func (s *Service) GetCustomerStatement(ctx context.Context, filter CustomerStatementFilter) (*CustomerStatement, error) {
	if id.IsNil(filter.CustomerID) {
		return nil, apperror.NewValidation("customerId is required")
	}
	if filter.FromDate.IsZero() || filter.ToDate.IsZero() {
		return nil, apperror.NewValidation("fromDate and toDate are required")
	}
	if filter.ToDate.Before(filter.FromDate) {
		return nil, apperror.NewValidation("toDate must not be before fromDate")
	}

	stmt, err := s.repo.GetCustomerStatement(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("customer statement: %w", err)
	}
	return stmt, nil
}

// GetDocumentJournal returns a filtered, paginated journal across document types.
func (s *Service) GetDocumentJournal(ctx context.Context, filter DocumentJournalFilter) (*DocumentJournal, error) {
	if filter.FromDate != nil && filter.ToDate != nil && filter.ToDate.Before(*filter.FromDate) {
		return nil, apperror.NewValidation("toDate must not be before fromDate")
	}
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Limit > 500 {
		filter.Limit = 500
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if filter.SortBy == "" {
		filter.SortBy = "date"
	}
	if filter.SortOrder == "" {
		filter.SortOrder = "desc"
	}

	var journal *DocumentJournal

	// Items and summary come from separate queries, keep them on one snapshot.
	err := s.readOnly(ctx, func(ctx context.Context) error {
		items, total, err := s.repo.GetDocuments(ctx, filter)
		if err != nil {
			return fmt.Errorf("document journal: %w", err)
		}

		journal = &DocumentJournal{
			Items:      items,
			TotalCount: total,
			Limit:      filter.Limit,
			Offset:     filter.Offset,
		}

		// Summary only on the first page, it covers the whole filter anyway.
		if filter.Offset == 0 {
			summary, err := s.repo.GetDocumentTypeSummary(ctx, filter)
			if err == nil {
				journal.Summary = summary
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return journal, nil
}
