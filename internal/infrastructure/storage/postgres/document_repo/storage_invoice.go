package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"stockyard/internal/core/id"
	"stockyard/internal/domain"
	"stockyard/internal/domain/documents/storage_invoice"
	"stockyard/internal/infrastructure/storage/postgres"
)

const (
	storageInvoicesTable     = "doc_storage_invoices"
	storageInvoiceLinesTable = "doc_storage_invoice_lines"
)

// StorageInvoiceRepo implements storage_invoice.Repository.
type StorageInvoiceRepo struct {
	*BaseDocumentRepo[*storage_invoice.StorageInvoice]
}

// NewStorageInvoiceRepo creates a new storage invoice repository.
func NewStorageInvoiceRepo(txManager *postgres.TxManager) *StorageInvoiceRepo {
	return &StorageInvoiceRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txManager,
			storageInvoicesTable,
			postgres.ExtractDBColumns[storage_invoice.StorageInvoice](),
			func() *storage_invoice.StorageInvoice { return &storage_invoice.StorageInvoice{} },
		),
	}
}

// GetLines retrieves lines for a storage invoice.
func (r *StorageInvoiceRepo) GetLines(ctx context.Context, docID id.ID) ([]storage_invoice.Line, error) {
	q := r.Builder().
		Select(
			"line_id", "line_no", "charge_code_id", "charge_type", "description",
			"rate", "quantity", "volume", "weight", "days", "months", "amount",
		).
		From(storageInvoiceLinesTable).
		Where(squirrel.Eq{"document_id": docID}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []storage_invoice.Line
	if err := pgxscan.Select(ctx, r.Querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}

	return lines, nil
}

// SaveLines saves lines for a storage invoice (delete existing + insert new).
func (r *StorageInvoiceRepo) SaveLines(ctx context.Context, docID id.ID, lines []storage_invoice.Line) error {
	querier := r.Querier(ctx)

	deleteSQL := "DELETE FROM " + storageInvoiceLinesTable + " WHERE document_id = $1"
	if _, err := querier.Exec(ctx, deleteSQL, docID); err != nil {
		return fmt.Errorf("delete existing lines: %w", err)
	}

	if len(lines) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(storageInvoiceLinesTable).
		Columns(
			"line_id", "document_id", "line_no", "charge_code_id", "charge_type",
			"description", "rate", "quantity", "volume", "weight", "days", "months", "amount",
		)

	for _, line := range lines {
		q = q.Values(
			line.LineID, docID, line.LineNo, line.ChargeCodeID, line.ChargeType,
			line.Description, line.Rate, line.Quantity, line.Volume, line.Weight,
			line.Days, line.Months, line.Amount,
		)
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

// List retrieves storage invoices with filtering.
func (r *StorageInvoiceRepo) List(ctx context.Context, f storage_invoice.ListFilter) (domain.ListResult[*storage_invoice.StorageInvoice], error) {
	q := r.baseSelect()

	if !f.IncludeDeleted {
		q = q.Where(squirrel.Eq{"deletion_mark": false})
	}
	if f.CustomerID != nil {
		q = q.Where(squirrel.Eq{"customer_id": *f.CustomerID})
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
