package delivery_order

import (
	"context"
	"time"

	"stockyard/internal/core/id"
	"stockyard/internal/domain"
)

// Repository defines operations for delivery order documents.
type Repository interface {
	Create(ctx context.Context, doc *DeliveryOrder) error
	GetByID(ctx context.Context, docID id.ID) (*DeliveryOrder, error)
	GetByNumber(ctx context.Context, number string) (*DeliveryOrder, error)
	Update(ctx context.Context, doc *DeliveryOrder) error
	Delete(ctx context.Context, docID id.ID) error

	GetLines(ctx context.Context, docID id.ID) ([]Line, error)
	SaveLines(ctx context.Context, docID id.ID, lines []Line) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*DeliveryOrder], error)

	GetForUpdate(ctx context.Context, docID id.ID) (*DeliveryOrder, error)
}

// ListFilter for filtering delivery orders.
type ListFilter struct {
	domain.ListFilter

	CustomerID  *id.ID
	WarehouseID *id.ID
	Status      *string
	Posted      *bool
	DateFrom    *time.Time
	DateTo      *time.Time
}
