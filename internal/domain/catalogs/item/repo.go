package item

import (
	"context"

	"stockyard/internal/domain"
)

// Repository defines the interface for Item persistence.
type Repository interface {
	domain.CatalogRepository[*Item]

	// FindBySKU retrieves item by SKU.
	FindBySKU(ctx context.Context, sku string) (*Item, error)

	// FindByBarcode retrieves item by barcode.
	FindByBarcode(ctx context.Context, barcode string) (*Item, error)
}
