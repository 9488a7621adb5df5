package storage_invoice

import (
	"context"
	"time"

	"stockyard/internal/core/id"
	"stockyard/internal/domain"
)

// Repository defines operations for storage invoice documents.
type Repository interface {
	Create(ctx context.Context, doc *StorageInvoice) error
	GetByID(ctx context.Context, docID id.ID) (*StorageInvoice, error)
	GetByNumber(ctx context.Context, number string) (*StorageInvoice, error)
	Update(ctx context.Context, doc *StorageInvoice) error
	Delete(ctx context.Context, docID id.ID) error

	GetLines(ctx context.Context, docID id.ID) ([]Line, error)
	SaveLines(ctx context.Context, docID id.ID, lines []Line) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*StorageInvoice], error)

	GetForUpdate(ctx context.Context, docID id.ID) (*StorageInvoice, error)
}

// ListFilter for filtering storage invoices.
type ListFilter struct {
	domain.ListFilter

	CustomerID *id.ID
	Status     *string
	Posted     *bool
	DateFrom   *time.Time
	DateTo     *time.Time
}
