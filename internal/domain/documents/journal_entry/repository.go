package journal_entry

import (
	"context"
	"time"

	"stockyard/internal/core/id"
	"stockyard/internal/domain"
)

// Repository defines operations for journal entry documents.
type Repository interface {
	Create(ctx context.Context, doc *JournalEntry) error
	GetByID(ctx context.Context, docID id.ID) (*JournalEntry, error)
	GetByNumber(ctx context.Context, number string) (*JournalEntry, error)
	Update(ctx context.Context, doc *JournalEntry) error
	Delete(ctx context.Context, docID id.ID) error

	GetLines(ctx context.Context, docID id.ID) ([]Line, error)
	SaveLines(ctx context.Context, docID id.ID, lines []Line) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*JournalEntry], error)

	GetForUpdate(ctx context.Context, docID id.ID) (*JournalEntry, error)
}

// ListFilter for filtering journal entries.
type ListFilter struct {
	domain.ListFilter

	AccountCode *string
	Status      *string
	Posted      *bool
	DateFrom    *time.Time
	DateTo      *time.Time
}
