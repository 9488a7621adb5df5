package chargecode

import (
	"stockyard/internal/domain"
)

// Repository defines the interface for ChargeCode persistence.
type Repository interface {
	domain.CatalogRepository[*ChargeCode]
}
