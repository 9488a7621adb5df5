// Package report_repo provides PostgreSQL implementations for report queries.
package report_repo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"stockyard/internal/core/apperror"
	"stockyard/internal/domain/documents/storage_invoice"
	"stockyard/internal/domain/reports"
	"stockyard/internal/infrastructure/storage/postgres"
)

// docSource describes one document table for the cross-type journal.
// Tables differ in which dimensions they carry, so missing columns are
// substituted with typed NULL/zero expressions.
type docSource struct {
	docType          string
	table            string
	counterpartyExpr string // uuid or NULL::uuid
	warehouseExpr    string
	quantityExpr     string // bigint
	amountExpr       string // numeric
}

var docSources = []docSource{
	{
		docType:          "GoodsReceiptNote",
		table:            "doc_goods_receipt_notes",
		counterpartyExpr: "d.supplier_id",
		warehouseExpr:    "d.warehouse_id",
		quantityExpr:     "d.total_quantity",
		amountExpr:       "d.total_amount",
	},
	{
		docType:          "DeliveryOrder",
		table:            "doc_delivery_orders",
		counterpartyExpr: "d.customer_id",
		warehouseExpr:    "d.warehouse_id",
		quantityExpr:     "d.total_quantity",
		amountExpr:       "0::numeric",
	},
	{
		docType:          "StockTransfer",
		table:            "doc_stock_transfers",
		counterpartyExpr: "NULL::uuid",
		warehouseExpr:    "d.source_warehouse_id",
		quantityExpr:     "d.total_quantity",
		amountExpr:       "0::numeric",
	},
	{
		docType:          "StorageInvoice",
		table:            "doc_storage_invoices",
		counterpartyExpr: "d.customer_id",
		warehouseExpr:    "NULL::uuid",
		quantityExpr:     "0::bigint",
		amountExpr:       "d.total_amount",
	},
	{
		docType:          "JournalEntry",
		table:            "doc_journal_entries",
		counterpartyExpr: "NULL::uuid",
		warehouseExpr:    "NULL::uuid",
		quantityExpr:     "0::bigint",
		amountExpr:       "d.total_debit",
	},
}

func sourcesFor(docTypes []string) []docSource {
	if len(docTypes) == 0 {
		return docSources
	}
	wanted := make(map[string]struct{}, len(docTypes))
	for _, t := range docTypes {
		wanted[t] = struct{}{}
	}
	var result []docSource
	for _, src := range docSources {
		if _, ok := wanted[src.docType]; ok {
			result = append(result, src)
		}
	}
	return result
}

// ReportRepo implements reports.Repository.
type ReportRepo struct {
	txManager *postgres.TxManager
	builder   squirrel.StatementBuilderType
}

// NewReportRepo creates a new report repository.
func NewReportRepo(txManager *postgres.TxManager) *ReportRepo {
	return &ReportRepo{
		txManager: txManager,
		builder:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetStockBalances returns stock balance rows as of a date.
func (r *ReportRepo) GetStockBalances(ctx context.Context, filter reports.StockBalanceReportFilter) ([]reports.StockBalanceReportItem, int, error) {
	asOfDate := time.Now()
	if filter.AsOfDate != nil {
		asOfDate = *filter.AsOfDate
	}

	signedSum := "SUM(CASE WHEN m.record_type = 'receipt' THEN m.quantity ELSE -m.quantity END)"

	inner := squirrel.Select(
		"m.warehouse_id",
		"m.item_id",
		signedSum+" AS quantity",
	).
		From("ldg_stock_movements m").
		Where(squirrel.Lt{"m.period": asOfDate}).
		GroupBy("m.warehouse_id", "m.item_id")

	if len(filter.WarehouseIDs) > 0 {
		inner = inner.Where(squirrel.Eq{"m.warehouse_id": filter.WarehouseIDs})
	}
	if len(filter.ItemIDs) > 0 {
		inner = inner.Where(squirrel.Eq{"m.item_id": filter.ItemIDs})
	}
	if filter.ExcludeZero {
		inner = inner.Having(signedSum + " != 0")
	}

	base := squirrel.Select(
		"bd.warehouse_id",
		"w.name AS warehouse_name",
		"bd.item_id",
		"i.name AS item_name",
		"COALESCE(i.sku, '') AS item_sku",
		"i.unit",
		"bd.quantity",
		"i.min_stock",
	).
		FromSelect(inner, "bd").
		Join("cat_warehouses w ON bd.warehouse_id = w.id").
		Join("cat_items i ON bd.item_id = i.id").
		PlaceholderFormat(squirrel.Dollar)

	if filter.OnlyBelowMinStock {
		base = base.Where("i.min_stock > 0 AND bd.quantity < i.min_stock")
	}

	countQuery := squirrel.Select("COUNT(*)").
		FromSelect(base, "sub").
		PlaceholderFormat(squirrel.Dollar)

	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count stock balances: %w", err)
	}

	base = base.OrderBy("w.name", "i.name")
	if filter.Limit > 0 {
		base = base.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		base = base.Offset(uint64(filter.Offset))
	}

	sql, args, err := base.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	var items []reports.StockBalanceReportItem
	if err := pgxscan.Select(ctx, querier, &items, sql, args...); err != nil {
		return nil, 0, fmt.Errorf("select stock balances: %w", err)
	}

	return items, total, nil
}

// GetStockTurnover returns per-warehouse, per-item turnover for a period.
func (r *ReportRepo) GetStockTurnover(ctx context.Context, filter reports.StockTurnoverReportFilter) ([]reports.StockTurnoverReportItem, int, error) {
	signedSum := "SUM(CASE WHEN m.record_type = 'receipt' THEN m.quantity ELSE -m.quantity END)"

	opening := squirrel.Select(
		"m.warehouse_id",
		"m.item_id",
		signedSum+" AS quantity",
	).
		From("ldg_stock_movements m").
		Where(squirrel.Lt{"m.period": filter.FromDate}).
		GroupBy("m.warehouse_id", "m.item_id")

	if len(filter.WarehouseIDs) > 0 {
		opening = opening.Where(squirrel.Eq{"m.warehouse_id": filter.WarehouseIDs})
	}
	if len(filter.ItemIDs) > 0 {
		opening = opening.Where(squirrel.Eq{"m.item_id": filter.ItemIDs})
	}

	openingSQL, openingArgs, err := opening.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build opening query: %w", err)
	}

	base := squirrel.Select(
		"m.warehouse_id",
		"w.name AS warehouse_name",
		"m.item_id",
		"i.name AS item_name",
		"COALESCE(i.sku, '') AS item_sku",
		"COALESCE(op.quantity, 0) AS opening_balance",
		"SUM(CASE WHEN m.record_type = 'receipt' THEN m.quantity ELSE 0 END) AS receipt",
		"SUM(CASE WHEN m.record_type = 'expense' THEN m.quantity ELSE 0 END) AS expense",
		"COALESCE(op.quantity, 0) + "+signedSum+" AS closing_balance",
	).
		From("ldg_stock_movements m").
		Join("cat_warehouses w ON m.warehouse_id = w.id").
		Join("cat_items i ON m.item_id = i.id").
		JoinClause("LEFT JOIN ("+openingSQL+") op ON m.warehouse_id = op.warehouse_id AND m.item_id = op.item_id", openingArgs...).
		Where(squirrel.GtOrEq{"m.period": filter.FromDate}).
		Where(squirrel.Lt{"m.period": filter.ToDate}).
		GroupBy("m.warehouse_id", "w.name", "m.item_id", "i.name", "i.sku", "op.quantity").
		PlaceholderFormat(squirrel.Dollar)

	if len(filter.WarehouseIDs) > 0 {
		base = base.Where(squirrel.Eq{"m.warehouse_id": filter.WarehouseIDs})
	}
	if len(filter.ItemIDs) > 0 {
		base = base.Where(squirrel.Eq{"m.item_id": filter.ItemIDs})
	}

	countQuery := squirrel.Select("COUNT(*)").
		FromSelect(base, "sub").
		PlaceholderFormat(squirrel.Dollar)

	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count turnover rows: %w", err)
	}

	base = base.OrderBy("w.name", "i.name")
	if filter.Limit > 0 {
		base = base.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		base = base.Offset(uint64(filter.Offset))
	}

	sql, args, err := base.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	var items []reports.StockTurnoverReportItem
	if err := pgxscan.Select(ctx, querier, &items, sql, args...); err != nil {
		return nil, 0, fmt.Errorf("select turnover: %w", err)
	}

	return items, total, nil
}

// GetCustomerStatement returns receivables activity for one counterparty.
// The running balance is computed per customer, so it cannot come from the
// account-wide running_balance column.
func (r *ReportRepo) GetCustomerStatement(ctx context.Context, filter reports.CustomerStatementFilter) (*reports.CustomerStatement, error) {
	querier := r.txManager.GetQuerier(ctx)

	statement := &reports.CustomerStatement{
		CustomerID: filter.CustomerID,
		FromDate:   filter.FromDate,
		ToDate:     filter.ToDate,
		Lines:      []reports.CustomerStatementLine{},
	}

	nameSQL := `SELECT name FROM cat_counterparties WHERE id = $1`
	if err := querier.QueryRow(ctx, nameSQL, filter.CustomerID).Scan(&statement.CustomerName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("Counterparty", filter.CustomerID)
		}
		return nil, fmt.Errorf("customer lookup: %w", err)
	}

	openingSQL := `
		SELECT COALESCE(SUM(debit - credit), 0)
		FROM ldg_general_movements
		WHERE account_code = $1 AND counterparty_id = $2 AND period < $3
	`
	if err := querier.QueryRow(ctx, openingSQL,
		storage_invoice.AccountReceivable, filter.CustomerID, filter.FromDate,
	).Scan(&statement.OpeningBalance); err != nil {
		return nil, fmt.Errorf("opening balance: %w", err)
	}

	linesSQL := `
		SELECT m.period AS date,
			   m.recorder_type AS document_type,
			   COALESCE(si.number, je.number, '') AS number,
			   m.debit,
			   m.credit
		FROM ldg_general_movements m
		LEFT JOIN doc_storage_invoices si
			ON m.recorder_type = 'StorageInvoice' AND si.id = m.recorder_id
		LEFT JOIN doc_journal_entries je
			ON m.recorder_type = 'JournalEntry' AND je.id = m.recorder_id
		WHERE m.account_code = $1
			AND m.counterparty_id = $2
			AND m.period >= $3 AND m.period < $4
		ORDER BY m.period, m.created_at
	`

	var lines []reports.CustomerStatementLine
	if err := pgxscan.Select(ctx, querier, &lines, linesSQL,
		storage_invoice.AccountReceivable, filter.CustomerID, filter.FromDate, filter.ToDate,
	); err != nil {
		return nil, fmt.Errorf("select statement lines: %w", err)
	}

	balance := statement.OpeningBalance
	for i := range lines {
		balance = balance.Add(lines[i].Debit).Sub(lines[i].Credit)
		lines[i].Balance = balance
	}

	statement.Lines = lines
	statement.ClosingBalance = balance

	return statement, nil
}

// GetDocuments returns journal rows as a UNION over document tables.
func (r *ReportRepo) GetDocuments(ctx context.Context, filter reports.DocumentJournalFilter) ([]reports.DocumentJournalItem, int, error) {
	sources := sourcesFor(filter.DocumentTypes)
	if len(sources) == 0 {
		return []reports.DocumentJournalItem{}, 0, nil
	}

	var unions []string
	var args []any
	argIndex := 1

	for _, src := range sources {
		q := fmt.Sprintf(`
			SELECT d.id, '%s' AS document_type, d.number, d.date, d.status, d.posted,
				   %s AS counterparty_id,
				   %s AS warehouse_id,
				   %s AS total_quantity,
				   %s AS total_amount,
				   d.deletion_mark, d.created_at, d.updated_at
			FROM %s d
			WHERE d.deletion_mark = false
		`, src.docType, src.counterpartyExpr, src.warehouseExpr, src.quantityExpr, src.amountExpr, src.table)

		clause, clauseArgs := r.journalConditions(src, filter, &argIndex)
		q += clause
		args = append(args, clauseArgs...)

		unions = append(unions, q)
	}

	unionSQL := strings.Join(unions, " UNION ALL ")

	// Names are joined over the union so every branch stays uniform.
	query := fmt.Sprintf(`
		SELECT j.*,
			   COALESCE(c.name, '') AS counterparty_name,
			   COALESCE(w.name, '') AS warehouse_name
		FROM (%s) j
		LEFT JOIN cat_counterparties c ON j.counterparty_id = c.id
		LEFT JOIN cat_warehouses w ON j.warehouse_id = w.id
	`, unionSQL)

	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM (%s) j", unionSQL)

	querier := r.txManager.GetQuerier(ctx)

	var total int
	if err := querier.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count documents: %w", err)
	}

	query += " ORDER BY " + journalOrderBy(filter.SortBy, filter.SortOrder)
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	var items []reports.DocumentJournalItem
	if err := pgxscan.Select(ctx, querier, &items, query, args...); err != nil {
		return nil, 0, fmt.Errorf("select documents: %w", err)
	}

	return items, total, nil
}

// journalConditions renders shared journal filters for one union branch.
// Placeholder numbering is continuous across branches.
func (r *ReportRepo) journalConditions(src docSource, filter reports.DocumentJournalFilter, argIndex *int) (string, []any) {
	var sb strings.Builder
	var args []any

	next := func(v any) string {
		p := fmt.Sprintf("$%d", *argIndex)
		*argIndex++
		args = append(args, v)
		return p
	}

	if filter.FromDate != nil {
		sb.WriteString(" AND d.date >= " + next(*filter.FromDate))
	}
	if filter.ToDate != nil {
		sb.WriteString(" AND d.date < " + next(*filter.ToDate))
	}
	if filter.Posted != nil {
		sb.WriteString(" AND d.posted = " + next(*filter.Posted))
	}
	if filter.NumberContains != "" {
		sb.WriteString(" AND d.number ILIKE " + next("%"+filter.NumberContains+"%"))
	}

	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			placeholders[i] = next(s)
		}
		sb.WriteString(" AND d.status IN (" + strings.Join(placeholders, ",") + ")")
	}

	if len(filter.WarehouseIDs) > 0 {
		placeholders := make([]string, len(filter.WarehouseIDs))
		for i, whID := range filter.WarehouseIDs {
			placeholders[i] = next(whID)
		}
		sb.WriteString(fmt.Sprintf(" AND %s IN (%s)", src.warehouseExpr, strings.Join(placeholders, ",")))
	}

	if len(filter.CounterpartyIDs) > 0 {
		placeholders := make([]string, len(filter.CounterpartyIDs))
		for i, cpID := range filter.CounterpartyIDs {
			placeholders[i] = next(cpID)
		}
		sb.WriteString(fmt.Sprintf(" AND %s IN (%s)", src.counterpartyExpr, strings.Join(placeholders, ",")))
	}

	return sb.String(), args
}

func journalOrderBy(sortBy, sortOrder string) string {
	col := "j.date"
	switch sortBy {
	case "number":
		col = "j.number"
	case "type":
		col = "j.document_type"
	}

	dir := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		dir = "ASC"
	}

	// Number as tiebreaker keeps pagination stable.
	return fmt.Sprintf("%s %s, j.number", col, dir)
}

// GetDocumentTypeSummary returns counts and totals per document type.
func (r *ReportRepo) GetDocumentTypeSummary(ctx context.Context, filter reports.DocumentJournalFilter) ([]reports.DocumentTypeSummary, error) {
	sources := sourcesFor(filter.DocumentTypes)
	querier := r.txManager.GetQuerier(ctx)

	var result []reports.DocumentTypeSummary
	for _, src := range sources {
		query := fmt.Sprintf(`
			SELECT COUNT(*) AS count,
				   COUNT(*) FILTER (WHERE d.posted = true) AS posted_count,
				   COALESCE(SUM(%s), 0) AS total_amount
			FROM %s d
			WHERE d.deletion_mark = false
		`, src.amountExpr, src.table)

		argIndex := 1
		clause, args := r.journalConditions(src, filter, &argIndex)
		query += clause

		summary := reports.DocumentTypeSummary{DocumentType: src.docType}
		if err := querier.QueryRow(ctx, query, args...).Scan(
			&summary.Count,
			&summary.PostedCount,
			&summary.TotalAmount,
		); err != nil {
			return nil, fmt.Errorf("summary for %s: %w", src.docType, err)
		}

		result = append(result, summary)
	}

	return result, nil
}

// Ensure interface compliance
var _ reports.Repository = (*ReportRepo)(nil)
