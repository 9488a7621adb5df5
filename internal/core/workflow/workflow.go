// Package workflow provides status lifecycle checks for documents.
// Each document type declares its transition table; guards answer whether
// a mutation is allowed in the current state.
package workflow

import (
	"stockyard/internal/core/apperror"
)

// Status is a document lifecycle state.
type Status string

const (
	StatusDraft      Status = "draft"
	StatusPending    Status = "pending"
	StatusApproved   Status = "approved"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Valid reports whether s is a declared status value.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusApproved, StatusInProgress,
		StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Machine holds the allowed transitions for one document type.
type Machine struct {
	entity      string
	transitions map[Status][]Status
}

// New creates a Machine from an explicit transition table.
func New(entity string, transitions map[Status][]Status) Machine {
	return Machine{entity: entity, transitions: transitions}
}

// DocumentFlow is the standard lifecycle shared by most documents:
// draft -> pending -> approved -> in_progress -> completed, with
// cancellation possible from any non-terminal state.
func DocumentFlow(entity string) Machine {
	return New(entity, map[Status][]Status{
		StatusDraft:      {StatusPending, StatusApproved, StatusCancelled},
		StatusPending:    {StatusApproved, StatusCancelled},
		StatusApproved:   {StatusInProgress, StatusCompleted, StatusCancelled},
		StatusInProgress: {StatusCompleted, StatusCancelled},
	})
}

// Can reports whether the transition from -> to is declared.
func (m Machine) Can(from, to Status) bool {
	for _, next := range m.transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition validates from -> to, returning a structured error when the
// transition is not declared.
func (m Machine) Transition(from, to Status) error {
	if !to.Valid() {
		return apperror.NewValidation("unknown status").
			WithDetail("status", string(to))
	}
	if !m.Can(from, to) {
		return apperror.NewInvalidTransition(m.entity, string(from), string(to))
	}
	return nil
}

// --- Guards ---

// CanEdit reports whether document fields may still be modified.
// Only draft and pending documents are editable.
func CanEdit(s Status) bool {
	return s == StatusDraft || s == StatusPending
}

// CanCancel reports whether the document may still be cancelled.
func CanCancel(s Status) bool {
	return !s.IsTerminal()
}

// CanPost reports whether the document may record ledger movements.
// Posted and terminal documents cannot be posted again.
func CanPost(s Status, posted bool) bool {
	if posted {
		return false
	}
	return s == StatusApproved || s == StatusInProgress || s == StatusDraft
}
