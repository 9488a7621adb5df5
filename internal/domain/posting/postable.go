// Package posting implements the document posting engine: turning
// documents into ledger movements and back, atomically.
package posting

import (
	"context"
	"time"

	"stockyard/internal/core/entity"
	"stockyard/internal/core/id"
	stockledger "stockyard/internal/domain/ledgers/stock"
)

// Postable is a document that can produce ledger movements.
// entity.Document provides defaults for everything except
// GetDocumentType and GenerateMovements.
type Postable interface {
	GetID() id.ID
	GetDocumentType() string
	GetPostedVersion() int
	IsPosted() bool
	GetDate() time.Time

	// CanPost validates posting preconditions (status, document fields).
	CanPost(ctx context.Context) error

	// GenerateMovements produces the movement set for the current
	// document state. Called inside the posting transaction.
	GenerateMovements(ctx context.Context) (*MovementSet, error)

	MarkPosted()
	MarkUnposted()
}

// MovementSet holds everything one posting writes to the ledgers.
type MovementSet struct {
	// Stock movements to insert into the stock ledger
	Stock []entity.StockMovement

	// General movements to insert into the general ledger
	General []entity.GeneralMovement

	// Reservations are stock checks performed with row locks before
	// expense movements are written
	Reservations []stockledger.StockReservation
}

// NewMovementSet creates an empty movement set.
func NewMovementSet() *MovementSet {
	return &MovementSet{}
}

// AddStock appends a stock movement.
func (s *MovementSet) AddStock(m entity.StockMovement) {
	s.Stock = append(s.Stock, m)
}

// AddGeneral appends a general ledger movement.
func (s *MovementSet) AddGeneral(m entity.GeneralMovement) {
	s.General = append(s.General, m)
}

// AddReservation appends a stock availability check.
func (s *MovementSet) AddReservation(r stockledger.StockReservation) {
	s.Reservations = append(s.Reservations, r)
}

// IsEmpty reports whether the set carries no movements at all.
func (s *MovementSet) IsEmpty() bool {
	return s == nil || (len(s.Stock) == 0 && len(s.General) == 0)
}

// stamp fills recorder fields on every movement so ledger rows can be
// traced back to the document and posting iteration that created them.
func (s *MovementSet) stamp(doc Postable, version int) {
	period := doc.GetDate()

	for i := range s.Stock {
		m := &s.Stock[i]
		if id.IsNil(m.LineID) {
			m.LineID = id.New()
		}
		m.RecorderID = doc.GetID()
		m.RecorderType = doc.GetDocumentType()
		m.RecorderVersion = version
		if m.Period.IsZero() {
			m.Period = period
		}
		if m.CreatedAt.IsZero() {
			m.CreatedAt = time.Now().UTC()
		}
	}

	for i := range s.General {
		m := &s.General[i]
		if id.IsNil(m.LineID) {
			m.LineID = id.New()
		}
		m.RecorderID = doc.GetID()
		m.RecorderType = doc.GetDocumentType()
		m.RecorderVersion = version
		if m.Period.IsZero() {
			m.Period = period
		}
		if m.CreatedAt.IsZero() {
			m.CreatedAt = time.Now().UTC()
		}
	}
}
