package counterparty

import (
	"context"
	"fmt"
	"time"

	"stockyard/internal/core/apperror"
	"stockyard/internal/core/tx"
	"stockyard/internal/domain"
	"stockyard/pkg/numerator"
)

// Service provides business logic for the Counterparty catalog.
type Service struct {
	*domain.CatalogService[*Counterparty]
	repo      Repository
	numerator *numerator.Service
}

// NewService creates a new Counterparty service.
func NewService(repo Repository, txManager tx.Manager, num *numerator.Service) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Counterparty]{
		Repo:       repo,
		TxManager:  txManager,
		Numerator:  num,
		EntityName: "counterparty",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      num,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)
	base.Hooks().OnBeforeUpdate(svc.checkTaxID)

	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, cp *Counterparty) error {
	if cp.Code == "" {
		code, err := s.numerator.GetNextNumber(ctx, numerator.Config{
			Prefix:      "CP",
			PadWidth:    5,
			ResetPeriod: "never",
		}, nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		cp.Code = code
	}

	return s.checkTaxID(ctx, cp)
}

func (s *Service) checkTaxID(ctx context.Context, cp *Counterparty) error {
	if cp.TaxID == nil || *cp.TaxID == "" {
		return nil
	}
	if existing, err := s.repo.FindByTaxID(ctx, *cp.TaxID); err == nil && existing.ID != cp.ID {
		return apperror.NewConflict("counterparty with this tax ID already exists").
			WithDetail("tax_id", *cp.TaxID)
	}
	return nil
}

// FindByTaxID retrieves counterparty by tax identification number.
func (s *Service) FindByTaxID(ctx context.Context, taxID string) (*Counterparty, error) {
	cp, err := s.repo.FindByTaxID(ctx, taxID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("counterparty", taxID)
		}
		return nil, err
	}
	return cp, nil
}
