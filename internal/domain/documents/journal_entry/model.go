// Package journal_entry provides the JournalEntry document: a manual
// general ledger posting whose debits must equal credits.
package journal_entry

import (
	"context"

	"stockyard/internal/core/apperror"
	"stockyard/internal/core/entity"
	"stockyard/internal/core/id"
	"stockyard/internal/core/types"
	"stockyard/internal/domain/posting"
)

// JournalEntry represents a manual accounting entry.
type JournalEntry struct {
	entity.Document

	// Memo describes the business reason for the entry
	Memo string `db:"memo" json:"memo,omitempty"`

	// Totals (calculated from lines)
	TotalDebit  types.Money `db:"total_debit" json:"totalDebit"`
	TotalCredit types.Money `db:"total_credit" json:"totalCredit"`

	// Table part: ledger lines
	Lines []Line `db:"-" json:"lines"`
}

// Line represents one side of the entry.
type Line struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	// AccountCode is the ledger account
	AccountCode string `db:"account_code" json:"accountCode"`

	// CounterpartyID optionally ties the line to a business partner
	CounterpartyID *id.ID `db:"counterparty_id" json:"counterpartyId,omitempty"`

	Debit  types.Money `db:"debit" json:"debit"`
	Credit types.Money `db:"credit" json:"credit"`

	Memo string `db:"memo" json:"memo,omitempty"`
}

// NewJournalEntry creates a new journal entry in draft state.
func NewJournalEntry(memo string) *JournalEntry {
	return &JournalEntry{
		Document:    entity.NewDocument(),
		Memo:        memo,
		TotalDebit:  types.ZeroMoney(),
		TotalCredit: types.ZeroMoney(),
		Lines:       make([]Line, 0),
	}
}

// AddDebit appends a debit line.
func (j *JournalEntry) AddDebit(accountCode string, amount types.Money, memo string) {
	j.addLine(Line{AccountCode: accountCode, Debit: amount, Credit: types.ZeroMoney(), Memo: memo})
}

// AddCredit appends a credit line.
func (j *JournalEntry) AddCredit(accountCode string, amount types.Money, memo string) {
	j.addLine(Line{AccountCode: accountCode, Debit: types.ZeroMoney(), Credit: amount, Memo: memo})
}

func (j *JournalEntry) addLine(line Line) {
	line.LineID = id.New()
	line.LineNo = len(j.Lines) + 1
	j.Lines = append(j.Lines, line)
	j.RecalculateTotals()
}

// RecalculateTotals updates totals from lines.
func (j *JournalEntry) RecalculateTotals() {
	j.TotalDebit = types.ZeroMoney()
	j.TotalCredit = types.ZeroMoney()
	for _, line := range j.Lines {
		j.TotalDebit = j.TotalDebit.Add(line.Debit)
		j.TotalCredit = j.TotalCredit.Add(line.Credit)
	}
}

// IsBalanced reports whether debits equal credits at 2 decimal places.
func (j *JournalEntry) IsBalanced() bool {
	return j.TotalDebit.Round(2).Equal(j.TotalCredit.Round(2))
}

// Validate implements entity.Validatable.
func (j *JournalEntry) Validate(ctx context.Context) error {
	if err := j.Document.Validate(ctx); err != nil {
		return err
	}

	if len(j.Lines) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "lines")
	}

	for i, line := range j.Lines {
		if line.AccountCode == "" {
			return apperror.NewValidation("account code is required").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return apperror.NewValidation("debit and credit cannot be negative").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if line.Debit.IsZero() && line.Credit.IsZero() {
			return apperror.NewValidation("line must carry a debit or a credit").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if !line.Debit.IsZero() && !line.Credit.IsZero() {
			return apperror.NewValidation("line cannot carry both debit and credit").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
	}

	if !j.IsBalanced() {
		return apperror.NewUnbalancedEntry(
			j.TotalDebit.StringFixed(2),
			j.TotalCredit.StringFixed(2),
		)
	}

	return nil
}

// GetDocumentType returns the document type name.
func (j *JournalEntry) GetDocumentType() string {
	return "JournalEntry"
}

// GenerateMovements emits one general ledger movement per line.
func (j *JournalEntry) GenerateMovements(ctx context.Context) (*posting.MovementSet, error) {
	movements := posting.NewMovementSet()

	newVersion := j.PostedVersion + 1
	for _, line := range j.Lines {
		m := entity.NewGeneralMovement(
			j.ID, j.GetDocumentType(), newVersion, j.Date,
			line.AccountCode, line.Debit, line.Credit,
		)
		m.CounterpartyID = line.CounterpartyID
		movements.AddGeneral(m)
	}

	return movements, nil
}

var _ posting.Postable = (*JournalEntry)(nil)
