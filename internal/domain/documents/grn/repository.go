// Package grn provides the GoodsReceiptNote document repository.
package grn

import (
	"context"
	"time"

	"stockyard/internal/core/id"
	"stockyard/internal/domain"
)

// Repository defines operations for GRN documents.
type Repository interface {
	// CRUD operations
	Create(ctx context.Context, doc *GoodsReceiptNote) error
	GetByID(ctx context.Context, docID id.ID) (*GoodsReceiptNote, error)
	GetByNumber(ctx context.Context, number string) (*GoodsReceiptNote, error)
	Update(ctx context.Context, doc *GoodsReceiptNote) error
	Delete(ctx context.Context, docID id.ID) error

	// Line operations
	GetLines(ctx context.Context, docID id.ID) ([]Line, error)
	SaveLines(ctx context.Context, docID id.ID, lines []Line) error

	// List operations
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*GoodsReceiptNote], error)

	// Locking
	GetForUpdate(ctx context.Context, docID id.ID) (*GoodsReceiptNote, error)
}

// ListFilter for filtering GRN documents.
type ListFilter struct {
	domain.ListFilter

	SupplierID  *id.ID
	WarehouseID *id.ID
	Status      *string
	Posted      *bool
	DateFrom    *time.Time
	DateTo      *time.Time
}
