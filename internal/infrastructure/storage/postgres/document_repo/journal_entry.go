package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"stockyard/internal/core/id"
	"stockyard/internal/domain"
	"stockyard/internal/domain/documents/journal_entry"
	"stockyard/internal/infrastructure/storage/postgres"
)

const (
	journalEntriesTable    = "doc_journal_entries"
	journalEntryLinesTable = "doc_journal_entry_lines"
)

// JournalEntryRepo implements journal_entry.Repository.
type JournalEntryRepo struct {
	*BaseDocumentRepo[*journal_entry.JournalEntry]
}

// NewJournalEntryRepo creates a new journal entry repository.
func NewJournalEntryRepo(txManager *postgres.TxManager) *JournalEntryRepo {
	return &JournalEntryRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txManager,
			journalEntriesTable,
			postgres.ExtractDBColumns[journal_entry.JournalEntry](),
			func() *journal_entry.JournalEntry { return &journal_entry.JournalEntry{} },
		),
	}
}

// GetLines retrieves lines for a journal entry.
func (r *JournalEntryRepo) GetLines(ctx context.Context, docID id.ID) ([]journal_entry.Line, error) {
	q := r.Builder().
		Select("line_id", "line_no", "account_code", "counterparty_id", "debit", "credit", "memo").
		From(journalEntryLinesTable).
		Where(squirrel.Eq{"document_id": docID}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []journal_entry.Line
	if err := pgxscan.Select(ctx, r.Querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}

	return lines, nil
}

// SaveLines saves lines for a journal entry (delete existing + insert new).
func (r *JournalEntryRepo) SaveLines(ctx context.Context, docID id.ID, lines []journal_entry.Line) error {
	querier := r.Querier(ctx)

	deleteSQL := "DELETE FROM " + journalEntryLinesTable + " WHERE document_id = $1"
	if _, err := querier.Exec(ctx, deleteSQL, docID); err != nil {
		return fmt.Errorf("delete existing lines: %w", err)
	}

	if len(lines) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(journalEntryLinesTable).
		Columns("line_id", "document_id", "line_no", "account_code", "counterparty_id", "debit", "credit", "memo")

	for _, line := range lines {
		q = q.Values(line.LineID, docID, line.LineNo, line.AccountCode, line.CounterpartyID, line.Debit, line.Credit, line.Memo)
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

// List retrieves journal entries with filtering.
func (r *JournalEntryRepo) List(ctx context.Context, f journal_entry.ListFilter) (domain.ListResult[*journal_entry.JournalEntry], error) {
	q := r.baseSelect()

	if !f.IncludeDeleted {
		q = q.Where(squirrel.Eq{"deletion_mark": false})
	}
	if f.AccountCode != nil {
		q = q.Where(squirrel.Expr(
			"id IN (SELECT document_id FROM "+journalEntryLinesTable+" WHERE account_code = ?)",
			*f.AccountCode,
		))
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
			squirrel.ILike{"memo": pattern},
		})
	}

	return r.list(ctx, q, f.ListFilter)
}
