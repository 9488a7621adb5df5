package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockyard/internal/core/apperror"
	"stockyard/internal/core/id"
	"stockyard/internal/core/types"
)

type mockRepo struct {
	balanceFilter  StockBalanceReportFilter
	journalFilter  DocumentJournalFilter
	summaryCalled  bool
	turnoverFilter StockTurnoverReportFilter
}

func (m *mockRepo) GetStockBalances(_ context.Context, f StockBalanceReportFilter) ([]StockBalanceReportItem, int, error) {
	m.balanceFilter = f
	return []StockBalanceReportItem{
		{ItemName: "Pallet wrap", Quantity: types.NewQuantityFromFloat64(10)},
		{ItemName: "Stretch film", Quantity: types.NewQuantityFromFloat64(5)},
	}, 2, nil
}

func (m *mockRepo) GetStockTurnover(_ context.Context, f StockTurnoverReportFilter) ([]StockTurnoverReportItem, int, error) {
	m.turnoverFilter = f
	return nil, 0, nil
}

func (m *mockRepo) GetCustomerStatement(_ context.Context, f CustomerStatementFilter) (*CustomerStatement, error) {
	return &CustomerStatement{CustomerID: f.CustomerID}, nil
}

func (m *mockRepo) GetDocuments(_ context.Context, f DocumentJournalFilter) ([]DocumentJournalItem, int, error) {
	m.journalFilter = f
	return []DocumentJournalItem{{Number: "GRN-2026-0001"}}, 1, nil
}

func (m *mockRepo) GetDocumentTypeSummary(_ context.Context, _ DocumentJournalFilter) ([]DocumentTypeSummary, error) {
	m.summaryCalled = true
	return []DocumentTypeSummary{{DocumentType: "goods_receipt_note", Count: 1}}, nil
}

func TestGetStockBalanceReport_Defaults(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, nil)

	report, err := svc.GetStockBalanceReport(context.Background(), StockBalanceReportFilter{})
	require.NoError(t, err)

	assert.NotNil(t, repo.balanceFilter.AsOfDate)
	assert.Equal(t, 100, repo.balanceFilter.Limit)
	assert.Equal(t, 2, report.TotalItems)
	assert.Equal(t, types.NewQuantityFromFloat64(15), report.TotalQuantity)
}

func TestGetStockBalanceReport_LimitClamp(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, nil)

	_, err := svc.GetStockBalanceReport(context.Background(), StockBalanceReportFilter{Limit: 5000})
	require.NoError(t, err)
	assert.Equal(t, 1000, repo.balanceFilter.Limit)
}

func TestGetStockTurnoverReport_RequiresPeriod(t *testing.T) {
	svc := NewService(&mockRepo{}, nil)

	_, err := svc.GetStockTurnoverReport(context.Background(), StockTurnoverReportFilter{})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err = svc.GetStockTurnoverReport(context.Background(), StockTurnoverReportFilter{
		FromDate: from,
		ToDate:   from.AddDate(0, 0, -1),
	})
	require.Error(t, err)
}

func TestGetCustomerStatement_RequiresCustomer(t *testing.T) {
	svc := NewService(&mockRepo{}, nil)

	_, err := svc.GetCustomerStatement(context.Background(), CustomerStatementFilter{
		FromDate: time.Now().AddDate(0, -1, 0),
		ToDate:   time.Now(),
	})
	require.Error(t, err)

	stmt, err := svc.GetCustomerStatement(context.Background(), CustomerStatementFilter{
		CustomerID: id.New(),
		FromDate:   time.Now().AddDate(0, -1, 0),
		ToDate:     time.Now(),
	})
	require.NoError(t, err)
	assert.False(t, id.IsNil(stmt.CustomerID))
}

func TestGetDocumentJournal_SummaryOnFirstPageOnly(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, nil)

	journal, err := svc.GetDocumentJournal(context.Background(), DocumentJournalFilter{})
	require.NoError(t, err)
	assert.True(t, repo.summaryCalled)
	assert.Len(t, journal.Summary, 1)
	assert.Equal(t, 50, repo.journalFilter.Limit)
	assert.Equal(t, "date", repo.journalFilter.SortBy)
	assert.Equal(t, "desc", repo.journalFilter.SortOrder)

	repo.summaryCalled = false
	journal, err = svc.GetDocumentJournal(context.Background(), DocumentJournalFilter{Offset: 10})
	require.NoError(t, err)
	assert.False(t, repo.summaryCalled)
	assert.Empty(t, journal.Summary)
}
