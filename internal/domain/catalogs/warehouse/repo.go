package warehouse

import (
	"context"

	"stockyard/internal/domain"
)

// Repository defines the interface for Warehouse persistence.
type Repository interface {
	domain.CatalogRepository[*Warehouse]

	// GetDefault retrieves the default warehouse.
	GetDefault(ctx context.Context) (*Warehouse, error)
}
