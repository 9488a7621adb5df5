package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"stockyard/internal/core/id"
	"stockyard/internal/domain"
	"stockyard/internal/domain/documents/stock_transfer"
	"stockyard/internal/infrastructure/storage/postgres"
)

const (
	stockTransfersTable     = "doc_stock_transfers"
	stockTransferLinesTable = "doc_stock_transfer_lines"
)

// StockTransferRepo implements stock_transfer.Repository.
type StockTransferRepo struct {
	*BaseDocumentRepo[*stock_transfer.StockTransfer]
}

// NewStockTransferRepo creates a new stock transfer repository.
func NewStockTransferRepo(txManager *postgres.TxManager) *StockTransferRepo {
	return &StockTransferRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txManager,
			stockTransfersTable,
			postgres.ExtractDBColumns[stock_transfer.StockTransfer](),
			func() *stock_transfer.StockTransfer { return &stock_transfer.StockTransfer{} },
		),
	}
}

// GetLines retrieves lines for a stock transfer.
func (r *StockTransferRepo) GetLines(ctx context.Context, docID id.ID) ([]stock_transfer.Line, error) {
	q := r.Builder().
		Select("line_id", "line_no", "item_id", "quantity").
		From(stockTransferLinesTable).
		Where(squirrel.Eq{"document_id": docID}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []stock_transfer.Line
	if err := pgxscan.Select(ctx, r.Querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}

	return lines, nil
}

// SaveLines saves lines for a stock transfer (delete existing + insert new).
func (r *StockTransferRepo) SaveLines(ctx context.Context, docID id.ID, lines []stock_transfer.Line) error {
	querier := r.Querier(ctx)

	deleteSQL := "DELETE FROM " + stockTransferLinesTable + " WHERE document_id = $1"
	if _, err := querier.Exec(ctx, deleteSQL, docID); err != nil {
		return fmt.Errorf("delete existing lines: %w", err)
	}

	if len(lines) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(stockTransferLinesTable).
		Columns("line_id", "document_id", "line_no", "item_id", "quantity")

	for _, line := range lines {
		q = q.Values(line.LineID, docID, line.LineNo, line.ItemID, line.Quantity)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert lines: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert lines: %w", err)
	}

	return nil
}

// List retrieves stock transfers with filtering.
func (r *StockTransferRepo) List(ctx context.Context, f stock_transfer.ListFilter) (domain.ListResult[*stock_transfer.StockTransfer], error) {
	q := r.baseSelect()

	if !f.IncludeDeleted {
		q = q.Where(squirrel.Eq{"deletion_mark": false})
	}
	if f.SourceWarehouseID != nil {
		q = q.Where(squirrel.Eq{"source_warehouse_id": *f.SourceWarehouseID})
	}
	if f.TargetWarehouseID != nil {
		q = q.Where(squirrel.Eq{"target_warehouse_id": *f.TargetWarehouseID})
	}
	if f.Status != nil {
		q = q.Where(squirrel.Eq{"status": *f.Status})
	}
	if f.Posted != nil {
		q = q.Where(squirrel.Eq{"posted": *f.Posted})
	}
	if f.DateFrom != nil {
		q = q.Where(squirrel.GtOrEq{"date": *f.DateFrom})
	}
	if f.DateTo != nil {
		q = q.Where(squirrel.LtOrEq{"date": *f.DateTo})
	}
	if f.Search != "" {
		q = q.Where(squirrel.ILike{"number": "%" + f.Search + "%"})
	}

	return r.list(ctx, q, f.ListFilter)
}
