package reports

import "context"

// Repository defines data access for report generation.
type Repository interface {
	// GetStockBalances returns stock balance rows as of a date.
	// Returns rows and the total count before pagination.
	GetStockBalances(ctx context.Context, filter StockBalanceReportFilter) ([]StockBalanceReportItem, int, error)

	// GetStockTurnover returns turnover rows for a period.
	GetStockTurnover(ctx context.Context, filter StockTurnoverReportFilter) ([]StockTurnoverReportItem, int, error)

	// GetCustomerStatement returns receivables lines for one counterparty
	// together with the opening balance before the period.
	GetCustomerStatement(ctx context.Context, filter CustomerStatementFilter) (*CustomerStatement, error)

	// GetDocuments returns journal rows across document types.
	GetDocuments(ctx context.Context, filter DocumentJournalFilter) ([]DocumentJournalItem, int, error)

	// GetDocumentTypeSummary returns per-type counts and totals for the filter.
	GetDocumentTypeSummary(ctx context.Context, filter DocumentJournalFilter) ([]DocumentTypeSummary, error)
}
