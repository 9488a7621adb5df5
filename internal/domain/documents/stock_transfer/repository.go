package stock_transfer

import (
	"context"
	"time"

	"stockyard/internal/core/id"
	"stockyard/internal/domain"
)

// Repository defines operations for stock transfer documents.
type Repository interface {
	Create(ctx context.Context, doc *StockTransfer) error
	GetByID(ctx context.Context, docID id.ID) (*StockTransfer, error)
	GetByNumber(ctx context.Context, number string) (*StockTransfer, error)
	Update(ctx context.Context, doc *StockTransfer) error
	Delete(ctx context.Context, docID id.ID) error

	GetLines(ctx context.Context, docID id.ID) ([]Line, error)
	SaveLines(ctx context.Context, docID id.ID, lines []Line) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*StockTransfer], error)

	GetForUpdate(ctx context.Context, docID id.ID) (*StockTransfer, error)
}

// ListFilter for filtering stock transfers.
type ListFilter struct {
	domain.ListFilter

	SourceWarehouseID *id.ID
	TargetWarehouseID *id.ID
	Status            *string
	Posted            *bool
	DateFrom          *time.Time
	DateTo            *time.Time
}
