package dto

import (
	"time"

	"stockyard/internal/core/types"
	"stockyard/internal/domain/documents/journal_entry"
)

// --- Request DTOs ---

// CreateJournalEntryRequest creates a manual journal entry.
type CreateJournalEntryRequest struct {
	Number          string                    `json:"number,omitempty"`
	Date            time.Time                 `json:"date" binding:"required"`
	Memo            string                    `json:"memo,omitempty"`
	Comment         string                    `json:"comment,omitempty"`
	Lines           []JournalEntryLineRequest `json:"lines" binding:"required,min=2,dive"`
	PostImmediately bool                      `json:"postImmediately,omitempty"`
}

// JournalEntryLineRequest represents one side of the entry.
type JournalEntryLineRequest struct {
	AccountCode    string      `json:"accountCode" binding:"required"`
	CounterpartyID *string     `json:"counterpartyId,omitempty"`
	Debit          types.Money `json:"debit"`
	Credit         types.Money `json:"credit"`
	Memo           string      `json:"memo,omitempty"`
}

func applyJournalLines(doc *journal_entry.JournalEntry, lines []JournalEntryLineRequest) error {
	for _, line := range lines {
		if line.Debit.IsPositive() {
			doc.AddDebit(line.AccountCode, line.Debit, line.Memo)
		} else {
			doc.AddCredit(line.AccountCode, line.Credit, line.Memo)
		}

		if line.CounterpartyID != nil {
			cpID, err := parseID("lines.counterpartyId", *line.CounterpartyID)
			if err != nil {
				return err
			}
			doc.Lines[len(doc.Lines)-1].CounterpartyID = &cpID
		}
	}
	return nil
}

// ToEntity converts request to domain entity.
func (r *CreateJournalEntryRequest) ToEntity() (*journal_entry.JournalEntry, error) {
	doc := journal_entry.NewJournalEntry(r.Memo)
	doc.Number = r.Number
	doc.Date = r.Date
	doc.Comment = r.Comment

	if err := applyJournalLines(doc, r.Lines); err != nil {
		return nil, err
	}

	return doc, nil
}

// UpdateJournalEntryRequest updates a journal entry.
type UpdateJournalEntryRequest struct {
	Number  *string                   `json:"number,omitempty"`
	Date    *time.Time                `json:"date,omitempty"`
	Memo    *string                   `json:"memo,omitempty"`
	Comment *string                   `json:"comment,omitempty"`
	Lines   []JournalEntryLineRequest `json:"lines,omitempty"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdateJournalEntryRequest) ApplyTo(doc *journal_entry.JournalEntry) error {
	if r.Number != nil {
		doc.Number = *r.Number
	}
	if r.Date != nil {
		doc.Date = *r.Date
	}
	if r.Memo != nil {
		doc.Memo = *r.Memo
	}
	if r.Comment != nil {
		doc.Comment = *r.Comment
	}

	if r.Lines != nil {
		doc.Lines = make([]journal_entry.Line, 0, len(r.Lines))
		if err := applyJournalLines(doc, r.Lines); err != nil {
			return err
		}
	}

	return nil
}

// --- Response DTOs ---

// JournalEntryResponse represents a journal entry in API responses.
type JournalEntryResponse struct {
	DocumentResponse
	Memo        string                     `json:"memo,omitempty"`
	TotalDebit  types.Money                `json:"totalDebit"`
	TotalCredit types.Money                `json:"totalCredit"`
	Lines       []JournalEntryLineResponse `json:"lines,omitempty"`
}

// JournalEntryLineResponse represents one side of the entry in responses.
type JournalEntryLineResponse struct {
	LineID         string      `json:"lineId"`
	LineNo         int         `json:"lineNo"`
	AccountCode    string      `json:"accountCode"`
	CounterpartyID *string     `json:"counterpartyId,omitempty"`
	Debit          types.Money `json:"debit"`
	Credit         types.Money `json:"credit"`
	Memo           string      `json:"memo,omitempty"`
}

// FromJournalEntry converts domain entity to response DTO.
func FromJournalEntry(doc *journal_entry.JournalEntry) *JournalEntryResponse {
	resp := &JournalEntryResponse{
		DocumentResponse: FromDocument(doc.Document),
		Memo:             doc.Memo,
		TotalDebit:       doc.TotalDebit,
		TotalCredit:      doc.TotalCredit,
	}

	resp.Lines = make([]JournalEntryLineResponse, len(doc.Lines))
	for i, line := range doc.Lines {
		lr := JournalEntryLineResponse{
			LineID:      line.LineID.String(),
			LineNo:      line.LineNo,
			AccountCode: line.AccountCode,
			Debit:       line.Debit,
			Credit:      line.Credit,
			Memo:        line.Memo,
		}
		if line.CounterpartyID != nil {
			cp := line.CounterpartyID.String()
			lr.CounterpartyID = &cp
		}
		resp.Lines[i] = lr
	}

	return resp
}
