package entity

import (
	"context"
	"time"

	"stockyard/internal/core/apperror"
	"stockyard/internal/core/id"
	"stockyard/internal/core/workflow"
)

// Document is the base type for business transactions.
// Examples: GRN, DeliveryOrder, StockTransfer, StorageInvoice, JournalEntry.
type Document struct {
	BaseDocument

	// Number is the document number (auto-generated, unique within type+year)
	Number string `db:"number" json:"number"`

	// Date is the business date of the document
	Date time.Time `db:"date" json:"date"`

	// Status is the workflow state (draft, pending, approved, ...)
	Status workflow.Status `db:"status" json:"status"`

	// Posted indicates if document movements are recorded in ledgers
	Posted bool `db:"posted" json:"posted"`

	// PostedVersion tracks posting iterations for movement reconciliation.
	// Incremented each time the document is posted.
	PostedVersion int `db:"posted_version" json:"postedVersion"`

	// Comment is an optional user comment
	Comment string `db:"comment" json:"comment,omitempty"`
}

// NewDocument creates a new Document in draft state.
func NewDocument() Document {
	return Document{
		BaseDocument: NewBaseDocument(),
		Date:         time.Now().UTC(),
		Status:       workflow.StatusDraft,
	}
}

// Validate implements Validatable interface.
func (d *Document) Validate(ctx context.Context) error {
	if d.Date.IsZero() {
		return apperror.NewValidation("date is required").
			WithDetail("field", "date")
	}

	if !d.Status.Valid() {
		return apperror.NewValidation("unknown status").
			WithDetail("field", "status").
			WithDetail("value", string(d.Status))
	}

	return nil
}

// CanModify checks if document fields can still be changed.
// Posted documents require unposting first; approved and later states
// are locked for editing.
func (d *Document) CanModify() error {
	if d.Posted {
		return apperror.NewBusinessRule(
			apperror.CodeDocumentPosted,
			"Cannot modify posted document. Unpost first.",
		).WithDetail("document_id", d.ID.String())
	}
	if !workflow.CanEdit(d.Status) {
		return apperror.NewBusinessRule(
			apperror.CodeBusinessRule,
			"Document is locked in its current status",
		).WithDetail("status", string(d.Status))
	}
	return nil
}

// TransitionTo moves the document to a new status after checking the
// machine's transition table. Sets the audit timestamp via Touch.
func (d *Document) TransitionTo(m workflow.Machine, to workflow.Status, actor string) error {
	if err := m.Transition(d.Status, to); err != nil {
		return err
	}
	d.Status = to
	if actor != "" {
		d.UpdatedBy = actor
	}
	d.Touch()
	return nil
}

// MarkPosted sets the posted flag and increments the posting version.
func (d *Document) MarkPosted() {
	d.Posted = true
	d.PostedVersion++
	d.Touch()
}

// MarkUnposted clears the posted flag.
func (d *Document) MarkUnposted() {
	d.Posted = false
	d.Touch()
}

// IsBackdated checks if document date is before today.
func (d *Document) IsBackdated() bool {
	return d.Date.Before(time.Now().UTC().Truncate(24 * time.Hour))
}

// --- Postable interface default implementations ---
// Document-specific types only need GetDocumentType() and GenerateMovements().

// GetID returns the document ID.
func (d *Document) GetID() id.ID {
	return d.ID
}

// GetPostedVersion returns the current posting version.
func (d *Document) GetPostedVersion() int {
	return d.PostedVersion
}

// IsPosted returns true if document is currently posted.
func (d *Document) IsPosted() bool {
	return d.Posted
}

// GetDate returns the business date (the ledger period for movements).
func (d *Document) GetDate() time.Time {
	return d.Date
}

// CanPost validates if document can be posted.
// Override in specific document types if additional validation is needed.
func (d *Document) CanPost(ctx context.Context) error {
	if !workflow.CanPost(d.Status, d.Posted) {
		if d.Posted {
			return apperror.NewBusinessRule(
				apperror.CodeDocumentPosted,
				"Document is already posted",
			).WithDetail("document_id", d.ID.String())
		}
		return apperror.NewBusinessRule(
			apperror.CodeBusinessRule,
			"Document cannot be posted in its current status",
		).WithDetail("status", string(d.Status))
	}
	return d.Validate(ctx)
}
