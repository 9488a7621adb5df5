package item

import (
	"context"
	"fmt"
	"time"

	"stockyard/internal/core/apperror"
	"stockyard/internal/core/tx"
	"stockyard/internal/domain"
	"stockyard/pkg/numerator"
)

// Service provides business logic for the Item catalog.
// Composes domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Item]
	repo      Repository
	numerator *numerator.Service
}

// NewService creates a new Item service.
func NewService(repo Repository, txManager tx.Manager, num *numerator.Service) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Item]{
		Repo:       repo,
		TxManager:  txManager,
		Numerator:  num,
		EntityName: "item",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      num,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)
	base.Hooks().OnBeforeUpdate(svc.checkUniqueness)

	return svc
}

// prepareForCreate handles code generation and uniqueness checks.
func (s *Service) prepareForCreate(ctx context.Context, item *Item) error {
	if item.Code == "" {
		code, err := s.numerator.GetNextNumber(ctx, numerator.Config{
			Prefix:      "ITM",
			PadWidth:    5,
			ResetPeriod: "never",
		}, nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		item.Code = code
	}

	return s.checkUniqueness(ctx, item)
}

func (s *Service) checkUniqueness(ctx context.Context, item *Item) error {
	if item.SKU != nil && *item.SKU != "" {
		if existing, err := s.repo.FindBySKU(ctx, *item.SKU); err == nil && existing.ID != item.ID {
			return apperror.NewConflict("item with this SKU already exists").
				WithDetail("sku", *item.SKU)
		}
	}

	if item.Barcode != nil && *item.Barcode != "" {
		if existing, err := s.repo.FindByBarcode(ctx, *item.Barcode); err == nil && existing.ID != item.ID {
			return apperror.NewConflict("item with this barcode already exists").
				WithDetail("barcode", *item.Barcode)
		}
	}

	return nil
}

// FindBySKU retrieves item by SKU.
func (s *Service) FindBySKU(ctx context.Context, sku string) (*Item, error) {
	it, err := s.repo.FindBySKU(ctx, sku)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("item", sku)
		}
		return nil, err
	}
	return it, nil
}

// FindByBarcode retrieves item by barcode.
func (s *Service) FindByBarcode(ctx context.Context, barcode string) (*Item, error) {
	it, err := s.repo.FindByBarcode(ctx, barcode)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("item", barcode)
		}
		return nil, err
	}
	return it, nil
}
