package warehouse

import (
	"context"

	"stockyard/internal/core/apperror"
	"stockyard/internal/core/tx"
	"stockyard/internal/domain"
)

// Service provides business logic for the Warehouse catalog.
type Service struct {
	*domain.CatalogService[*Warehouse]
	repo Repository
}

// NewService creates a new Warehouse service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Warehouse]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "warehouse",
	})

	return &Service{
		CatalogService: base,
		repo:           repo,
	}
}

// GetDefault retrieves the default warehouse.
func (s *Service) GetDefault(ctx context.Context) (*Warehouse, error) {
	wh, err := s.repo.GetDefault(ctx)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("warehouse", "default")
		}
		return nil, err
	}
	return wh, nil
}
