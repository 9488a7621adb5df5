package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"stockyard/internal/core/types"
	"stockyard/internal/domain/billing"
	"stockyard/internal/domain/documents/storage_invoice"
)

// --- Request DTOs ---

// CreateStorageInvoiceRequest creates a storage invoice.
type CreateStorageInvoiceRequest struct {
	Number          string                      `json:"number,omitempty"`
	Date            time.Time                   `json:"date" binding:"required"`
	CustomerID      string                      `json:"customerId" binding:"required"`
	PeriodFrom      time.Time                   `json:"periodFrom" binding:"required"`
	PeriodTo        time.Time                   `json:"periodTo" binding:"required"`
	DueDate         *time.Time                  `json:"dueDate,omitempty"`
	Comment         string                      `json:"comment,omitempty"`
	Lines           []StorageInvoiceLineRequest `json:"lines" binding:"required,min=1,dive"`
	PostImmediately bool                        `json:"postImmediately,omitempty"`
}

// StorageInvoiceLineRequest represents a billed charge in a request.
// ChargeType and Rate may be omitted; they resolve from the tariff catalog.
type StorageInvoiceLineRequest struct {
	ChargeCodeID string             `json:"chargeCodeId" binding:"required"`
	ChargeType   billing.ChargeType `json:"chargeType,omitempty"`
	Description  string             `json:"description,omitempty"`
	Rate         types.Money        `json:"rate"`
	Quantity     float64            `json:"quantity"`
	Volume       decimal.Decimal    `json:"volume"`
	Weight       decimal.Decimal    `json:"weight"`
	Days         int                `json:"days"`
	Months       int                `json:"months"`
}

func (r *StorageInvoiceLineRequest) toLine() (storage_invoice.Line, error) {
	chargeCodeID, err := parseID("lines.chargeCodeId", r.ChargeCodeID)
	if err != nil {
		return storage_invoice.Line{}, err
	}
	return storage_invoice.Line{
		ChargeCodeID: chargeCodeID,
		ChargeType:   r.ChargeType,
		Description:  r.Description,
		Rate:         r.Rate,
		Quantity:     types.NewQuantityFromFloat64(r.Quantity),
		Volume:       r.Volume,
		Weight:       r.Weight,
		Days:         r.Days,
		Months:       r.Months,
	}, nil
}

// ToEntity converts request to domain entity.
func (r *CreateStorageInvoiceRequest) ToEntity() (*storage_invoice.StorageInvoice, error) {
	customerID, err := parseID("customerId", r.CustomerID)
	if err != nil {
		return nil, err
	}

	doc := storage_invoice.NewStorageInvoice(customerID, r.PeriodFrom, r.PeriodTo)
	doc.Number = r.Number
	doc.Date = r.Date
	doc.DueDate = r.DueDate
	doc.Comment = r.Comment

	for _, line := range r.Lines {
		l, err := line.toLine()
		if err != nil {
			return nil, err
		}
		doc.AddLine(l)
	}

	return doc, nil
}

// UpdateStorageInvoiceRequest updates a storage invoice.
type UpdateStorageInvoiceRequest struct {
	Number     *string                     `json:"number,omitempty"`
	Date       *time.Time                  `json:"date,omitempty"`
	CustomerID *string                     `json:"customerId,omitempty"`
	PeriodFrom *time.Time                  `json:"periodFrom,omitempty"`
	PeriodTo   *time.Time                  `json:"periodTo,omitempty"`
	DueDate    *time.Time                  `json:"dueDate,omitempty"`
	Comment    *string                     `json:"comment,omitempty"`
	Lines      []StorageInvoiceLineRequest `json:"lines,omitempty"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdateStorageInvoiceRequest) ApplyTo(doc *storage_invoice.StorageInvoice) error {
	if r.Number != nil {
		doc.Number = *r.Number
	}
	if r.Date != nil {
		doc.Date = *r.Date
	}
	if r.CustomerID != nil {
		customerID, err := parseID("customerId", *r.CustomerID)
		if err != nil {
			return err
		}
		doc.CustomerID = customerID
	}
	if r.PeriodFrom != nil {
		doc.PeriodFrom = *r.PeriodFrom
	}
	if r.PeriodTo != nil {
		doc.PeriodTo = *r.PeriodTo
	}
	if r.DueDate != nil {
		doc.DueDate = r.DueDate
	}
	if r.Comment != nil {
		doc.Comment = *r.Comment
	}

	if r.Lines != nil {
		doc.Lines = make([]storage_invoice.Line, 0, len(r.Lines))
		for _, line := range r.Lines {
			l, err := line.toLine()
			if err != nil {
				return err
			}
			doc.AddLine(l)
		}
	}

	return nil
}

// --- Response DTOs ---

// StorageInvoiceResponse represents a storage invoice in API responses.
type StorageInvoiceResponse struct {
	DocumentResponse
	CustomerID  string                       `json:"customerId"`
	PeriodFrom  time.Time                    `json:"periodFrom"`
	PeriodTo    time.Time                    `json:"periodTo"`
	DueDate     *time.Time                   `json:"dueDate,omitempty"`
	TotalAmount types.Money                  `json:"totalAmount"`
	Lines       []StorageInvoiceLineResponse `json:"lines,omitempty"`
}

// StorageInvoiceLineResponse represents a billed charge in API responses.
type StorageInvoiceLineResponse struct {
	LineID       string             `json:"lineId"`
	LineNo       int                `json:"lineNo"`
	ChargeCodeID string             `json:"chargeCodeId"`
	ChargeType   billing.ChargeType `json:"chargeType"`
	Description  string             `json:"description,omitempty"`
	Rate         types.Money        `json:"rate"`
	Quantity     types.Quantity     `json:"quantity"`
	Volume       decimal.Decimal    `json:"volume"`
	Weight       decimal.Decimal    `json:"weight"`
	Days         int                `json:"days"`
	Months       int                `json:"months"`
	Amount       types.Money        `json:"amount"`
}

// FromStorageInvoice converts domain entity to response DTO.
func FromStorageInvoice(doc *storage_invoice.StorageInvoice) *StorageInvoiceResponse {
	resp := &StorageInvoiceResponse{
		DocumentResponse: FromDocument(doc.Document),
		CustomerID:       doc.CustomerID.String(),
		PeriodFrom:       doc.PeriodFrom,
		PeriodTo:         doc.PeriodTo,
		DueDate:          doc.DueDate,
		TotalAmount:      doc.TotalAmount,
	}

	resp.Lines = make([]StorageInvoiceLineResponse, len(doc.Lines))
	for i, line := range doc.Lines {
		resp.Lines[i] = StorageInvoiceLineResponse{
			LineID:       line.LineID.String(),
			LineNo:       line.LineNo,
			ChargeCodeID: line.ChargeCodeID.String(),
			ChargeType:   line.ChargeType,
			Description:  line.Description,
			Rate:         line.Rate,
			Quantity:     line.Quantity,
			Volume:       line.Volume,
			Weight:       line.Weight,
			Days:         line.Days,
			Months:       line.Months,
			Amount:       line.Amount,
		}
	}

	return resp
}
