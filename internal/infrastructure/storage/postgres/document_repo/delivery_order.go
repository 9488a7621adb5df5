package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"stockyard/internal/core/id"
	"stockyard/internal/domain"
	"stockyard/internal/domain/documents/delivery_order"
	"stockyard/internal/infrastructure/storage/postgres"
)

const (
	deliveryOrdersTable     = "doc_delivery_orders"
	deliveryOrderLinesTable = "doc_delivery_order_lines"
)

// DeliveryOrderRepo implements delivery_order.Repository.
type DeliveryOrderRepo struct {
	*BaseDocumentRepo[*delivery_order.DeliveryOrder]
}

// NewDeliveryOrderRepo creates a new delivery order repository.
func NewDeliveryOrderRepo(txManager *postgres.TxManager) *DeliveryOrderRepo {
	return &DeliveryOrderRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txManager,
			deliveryOrdersTable,
			postgres.ExtractDBColumns[delivery_order.DeliveryOrder](),
			func() *delivery_order.DeliveryOrder { return &delivery_order.DeliveryOrder{} },
		),
	}
}

// GetLines retrieves lines for a delivery order.
func (r *DeliveryOrderRepo) GetLines(ctx context.Context, docID id.ID) ([]delivery_order.Line, error) {
	q := r.Builder().
		Select("line_id", "line_no", "item_id", "quantity", "weight", "volume",
			"batch_number", "expiry_date").
		From(deliveryOrderLinesTable).
		Where(squirrel.Eq{"document_id": docID}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []delivery_order.Line
	if err := pgxscan.Select(ctx, r.Querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}

	return lines, nil
}

// SaveLines saves lines for a delivery order (delete existing + insert new).
func (r *DeliveryOrderRepo) SaveLines(ctx context.Context, docID id.ID, lines []delivery_order.Line) error {
	querier := r.Querier(ctx)

	deleteSQL := "DELETE FROM " + deliveryOrderLinesTable + " WHERE document_id = $1"
	if _, err := querier.Exec(ctx, deleteSQL, docID); err != nil {
		return fmt.Errorf("delete existing lines: %w", err)
	}

	if len(lines) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(deliveryOrderLinesTable).
		Columns("line_id", "document_id", "line_no", "item_id", "quantity", "weight", "volume",
			"batch_number", "expiry_date")

	for _, line := range lines {
		q = q.Values(line.LineID, docID, line.LineNo, line.ItemID, line.Quantity, line.Weight, line.Volume,
			line.BatchNumber, line.ExpiryDate)
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

// List retrieves delivery orders with filtering.
func (r *DeliveryOrderRepo) List(ctx context.Context, f delivery_order.ListFilter) (domain.ListResult[*delivery_order.DeliveryOrder], error) {
	q := r.baseSelect()

	if !f.IncludeDeleted {
		q = q.Where(squirrel.Eq{"deletion_mark": false})
	}
	if f.CustomerID != nil {
		q = q.Where(squirrel.Eq{"customer_id": *f.CustomerID})
	}
	if f.WarehouseID != nil {
		q = q.Where(squirrel.Eq{"warehouse_id": *f.WarehouseID})
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
