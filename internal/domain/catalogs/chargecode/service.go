package chargecode

import (
	"stockyard/internal/core/tx"
	"stockyard/internal/domain"
)

// Service provides business logic for the ChargeCode catalog.
type Service struct {
	*domain.CatalogService[*ChargeCode]
	repo Repository
}

// NewService creates a new ChargeCode service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*ChargeCode]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "charge_code",
	})

	return &Service{
		CatalogService: base,
		repo:           repo,
	}
}
