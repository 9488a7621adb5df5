// Package storage_invoice provides the StorageInvoice document.
// An invoice bills a customer for storage and handling services over a
// period, one charge line per tariff applied.
package storage_invoice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"stockyard/internal/core/apperror"
	"stockyard/internal/core/entity"
	"stockyard/internal/core/id"
	"stockyard/internal/core/types"
	"stockyard/internal/domain/billing"
	"stockyard/internal/domain/posting"
)

// StorageInvoice represents a billing document for storage services.
type StorageInvoice struct {
	entity.Document

	// CustomerID references the billed counterparty
	CustomerID id.ID `db:"customer_id" json:"customerId"`

	// PeriodFrom / PeriodTo bound the billed period
	PeriodFrom time.Time `db:"period_from" json:"periodFrom"`
	PeriodTo   time.Time `db:"period_to" json:"periodTo"`

	// DueDate is the payment deadline
	DueDate *time.Time `db:"due_date" json:"dueDate,omitempty"`

	// TotalAmount is calculated from lines
	TotalAmount types.Money `db:"total_amount" json:"totalAmount"`

	// Table part: charge lines
	Lines []Line `db:"-" json:"lines"`
}

// Line represents one billed charge.
type Line struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	// ChargeCodeID references the tariff catalog entry
	ChargeCodeID id.ID `db:"charge_code_id" json:"chargeCodeId"`

	// ChargeType selects the billing formula
	ChargeType billing.ChargeType `db:"charge_type" json:"chargeType"`

	Description string `db:"description" json:"description,omitempty"`

	// Rate is the tariff for one formula unit
	Rate types.Money `db:"rate" json:"rate"`

	// Measured inputs; the formula picks the ones it needs
	Quantity types.Quantity  `db:"quantity" json:"quantity"`
	Volume   decimal.Decimal `db:"volume" json:"volume"`
	Weight   decimal.Decimal `db:"weight" json:"weight"`
	Days     int             `db:"days" json:"days"`
	Months   int             `db:"months" json:"months"`

	// Amount is computed from the formula, rounded to 2 decimal places
	Amount types.Money `db:"amount" json:"amount"`
}

// NewStorageInvoice creates a new invoice in draft state.
func NewStorageInvoice(customerID id.ID, periodFrom, periodTo time.Time) *StorageInvoice {
	return &StorageInvoice{
		Document:    entity.NewDocument(),
		CustomerID:  customerID,
		PeriodFrom:  periodFrom,
		PeriodTo:    periodTo,
		TotalAmount: types.ZeroMoney(),
		Lines:       make([]Line, 0),
	}
}

// AddLine appends a charge line, computing its amount, and
// recalculates the invoice total.
func (inv *StorageInvoice) AddLine(line Line) {
	if id.IsNil(line.LineID) {
		line.LineID = id.New()
	}
	line.LineNo = len(inv.Lines) + 1
	line.Amount = billing.CalculateAmount(line.ChargeType, billing.Input{
		Rate:     line.Rate,
		Quantity: line.Quantity,
		Volume:   line.Volume,
		Weight:   line.Weight,
		Days:     line.Days,
		Months:   line.Months,
	})

	inv.Lines = append(inv.Lines, line)
	inv.RecalculateTotals()
}

// RecalculateTotals recomputes line amounts and the invoice total.
func (inv *StorageInvoice) RecalculateTotals() {
	inv.TotalAmount = types.ZeroMoney()
	for i := range inv.Lines {
		line := &inv.Lines[i]
		line.Amount = billing.CalculateAmount(line.ChargeType, billing.Input{
			Rate:     line.Rate,
			Quantity: line.Quantity,
			Volume:   line.Volume,
			Weight:   line.Weight,
			Days:     line.Days,
			Months:   line.Months,
		})
		inv.TotalAmount = inv.TotalAmount.Add(line.Amount)
	}
}

// Validate implements entity.Validatable.
func (inv *StorageInvoice) Validate(ctx context.Context) error {
	if err := inv.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(inv.CustomerID) {
		return apperror.NewValidation("customer is required").
			WithDetail("field", "customerId")
	}

	if inv.PeriodFrom.IsZero() || inv.PeriodTo.IsZero() {
		return apperror.NewValidation("billing period is required").
			WithDetail("field", "periodFrom")
	}

	if inv.PeriodTo.Before(inv.PeriodFrom) {
		return apperror.NewValidation("period end must not precede period start").
			WithDetail("field", "periodTo")
	}

	if len(inv.Lines) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "lines")
	}

	for i, line := range inv.Lines {
		if id.IsNil(line.ChargeCodeID) {
			return apperror.NewValidation("charge code is required").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if line.Rate.IsNegative() {
			return apperror.NewValidation("rate cannot be negative").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if line.Days < 0 || line.Months < 0 {
			return apperror.NewValidation("days and months cannot be negative").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
	}

	return nil
}

// GetDocumentType returns the document type name.
func (inv *StorageInvoice) GetDocumentType() string {
	return "StorageInvoice"
}

// GenerateMovements posts the invoice total to the general ledger:
// debit receivables, credit storage revenue.
func (inv *StorageInvoice) GenerateMovements(ctx context.Context) (*posting.MovementSet, error) {
	movements := posting.NewMovementSet()

	newVersion := inv.PostedVersion + 1
	customerID := inv.CustomerID

	debit := entity.NewGeneralMovement(
		inv.ID, inv.GetDocumentType(), newVersion, inv.Date,
		AccountReceivable, inv.TotalAmount, types.ZeroMoney(),
	)
	debit.CounterpartyID = &customerID
	movements.AddGeneral(debit)

	credit := entity.NewGeneralMovement(
		inv.ID, inv.GetDocumentType(), newVersion, inv.Date,
		AccountStorageRevenue, types.ZeroMoney(), inv.TotalAmount,
	)
	credit.CounterpartyID = &customerID
	movements.AddGeneral(credit)

	return movements, nil
}

var _ posting.Postable = (*StorageInvoice)(nil)
