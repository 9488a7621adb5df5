package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"stockyard/internal/core/id"
	"stockyard/internal/domain"
	"stockyard/internal/domain/documents/grn"
	"stockyard/internal/infrastructure/storage/postgres"
)

const (
	grnTable      = "doc_goods_receipt_notes"
	grnLinesTable = "doc_goods_receipt_note_lines"
)

// GoodsReceiptNoteRepo implements grn.Repository.
type GoodsReceiptNoteRepo struct {
	*BaseDocumentRepo[*grn.GoodsReceiptNote]
}

// NewGoodsReceiptNoteRepo creates a new goods receipt note repository.
func NewGoodsReceiptNoteRepo(txManager *postgres.TxManager) *GoodsReceiptNoteRepo {
	return &GoodsReceiptNoteRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txManager,
			grnTable,
			postgres.ExtractDBColumns[grn.GoodsReceiptNote](),
			func() *grn.GoodsReceiptNote { return &grn.GoodsReceiptNote{} },
		),
	}
}

// GetLines retrieves lines for a goods receipt note.
func (r *GoodsReceiptNoteRepo) GetLines(ctx context.Context, docID id.ID) ([]grn.Line, error) {
	q := r.Builder().
		Select("line_id", "line_no", "item_id", "quantity", "weight", "volume",
			"unit_cost", "amount", "batch_number", "expiry_date").
		From(grnLinesTable).
		Where(squirrel.Eq{"document_id": docID}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []grn.Line
	if err := pgxscan.Select(ctx, r.Querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}

	return lines, nil
}

// SaveLines saves lines for a goods receipt note (delete existing + insert new).
func (r *GoodsReceiptNoteRepo) SaveLines(ctx context.Context, docID id.ID, lines []grn.Line) error {
	querier := r.Querier(ctx)

	deleteSQL := "DELETE FROM " + grnLinesTable + " WHERE document_id = $1"
	if _, err := querier.Exec(ctx, deleteSQL, docID); err != nil {
		return fmt.Errorf("delete existing lines: %w", err)
	}

	if len(lines) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(grnLinesTable).
		Columns("line_id", "document_id", "line_no", "item_id", "quantity", "weight", "volume",
			"unit_cost", "amount", "batch_number", "expiry_date")

	for _, line := range lines {
		q = q.Values(line.LineID, docID, line.LineNo, line.ItemID, line.Quantity, line.Weight, line.Volume,
			line.UnitCost, line.Amount, line.BatchNumber, line.ExpiryDate)
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

// List retrieves goods receipt notes with filtering.
func (r *GoodsReceiptNoteRepo) List(ctx context.Context, f grn.ListFilter) (domain.ListResult[*grn.GoodsReceiptNote], error) {
	q := r.baseSelect()

	if !f.IncludeDeleted {
		q = q.Where(squirrel.Eq{"deletion_mark": false})
	}
	if f.SupplierID != nil {
		q = q.Where(squirrel.Eq{"supplier_id": *f.SupplierID})
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
		pattern := "%" + f.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"number": pattern},
			squirrel.ILike{"supplier_doc_number": pattern},
		})
	}

	return r.list(ctx, q, f.ListFilter)
}
