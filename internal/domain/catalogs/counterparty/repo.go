package counterparty

import (
	"context"

	"stockyard/internal/domain"
)

// Repository defines the interface for Counterparty persistence.
type Repository interface {
	domain.CatalogRepository[*Counterparty]

	// FindByTaxID retrieves counterparty by tax identification number.
	FindByTaxID(ctx context.Context, taxID string) (*Counterparty, error)
}
