// Package grn provides the GoodsReceiptNote document service.
package grn

import (
	"context"
	"fmt"

	"stockyard/internal/core/apperror"
	"stockyard/internal/core/id"
	"stockyard/internal/core/tx"
	"stockyard/internal/core/workflow"
	"stockyard/internal/domain"
	"stockyard/internal/domain/catalogs/item"
	"stockyard/internal/domain/posting"
	"stockyard/pkg/logger"
	"stockyard/pkg/numerator"
)

// ItemLookup resolves catalog items referenced by document lines.
type ItemLookup interface {
	GetByID(ctx context.Context, itemID id.ID) (*item.Item, error)
}

// Service provides business operations for GRN documents.
type Service struct {
	repo          Repository
	items         ItemLookup
	postingEngine *posting.Engine
	numerator     *numerator.Service
	txManager     tx.Manager
	flow          workflow.Machine
	hooks         *domain.HookRegistry[*GoodsReceiptNote]
}

// NewService creates a new GRN service.
func NewService(
	repo Repository,
	items ItemLookup,
	postingEngine *posting.Engine,
	num *numerator.Service,
	txManager tx.Manager,
) *Service {
	return &Service{
		repo:          repo,
		items:         items,
		postingEngine: postingEngine,
		numerator:     num,
		txManager:     txManager,
		flow:          workflow.DocumentFlow("GoodsReceiptNote"),
		hooks:         domain.NewHookRegistry[*GoodsReceiptNote](),
	}
}

// enrichLines derives line weight and volume from the item's unit
// measures and enforces batch tracking.
func (s *Service) enrichLines(ctx context.Context, doc *GoodsReceiptNote) error {
	cache := make(map[id.ID]*item.Item)
	for i := range doc.Lines {
		line := &doc.Lines[i]
		if id.IsNil(line.ItemID) {
			continue // Validate reports missing items
		}

		it, ok := cache[line.ItemID]
		if !ok {
			var err error
			it, err = s.items.GetByID(ctx, line.ItemID)
			if err != nil {
				return fmt.Errorf("resolve line item: %w", err)
			}
			cache[line.ItemID] = it
		}

		line.Weight = it.TotalWeight(line.Quantity)
		line.Volume = it.TotalVolume(line.Quantity)

		if it.TrackBatch && line.BatchNumber == "" {
			return apperror.NewValidation("batch number is required for batch-tracked item").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1).
				WithDetail("itemId", line.ItemID.String())
		}
	}

	doc.RecalculateTotals()
	return nil
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*GoodsReceiptNote] {
	return s.hooks
}

// Create creates a new GRN document.
func (s *Service) Create(ctx context.Context, doc *GoodsReceiptNote) error {
	if err := s.hooks.Run(ctx, domain.BeforeCreate, doc); err != nil {
		return err
	}

	if err := s.enrichLines(ctx, doc); err != nil {
		return err
	}
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if doc.Number == "" {
		number, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig(NumberPrefix),
			&numerator.Options{Strategy: NumeratorStrategy}, doc.Date)
		if err != nil {
			return fmt.Errorf("generate number: %w", err)
		}
		doc.Number = number
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create document: %w", err)
		}
		if err := s.repo.SaveLines(ctx, doc.ID, doc.Lines); err != nil {
			return fmt.Errorf("save lines: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.hooks.Run(ctx, domain.AfterCreate, doc); err != nil {
		logger.Warn(ctx, "after-create hook failed", "id", doc.ID, "error", err)
	}

	logger.Info(ctx, "goods receipt note created", "id", doc.ID, "number", doc.Number)
	return nil
}

// GetByID retrieves a GRN with lines.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*GoodsReceiptNote, error) {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	lines, err := s.repo.GetLines(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}
	doc.Lines = lines

	return doc, nil
}

// Update updates a GRN document.
func (s *Service) Update(ctx context.Context, doc *GoodsReceiptNote) error {
	if err := s.hooks.Run(ctx, domain.BeforeUpdate, doc); err != nil {
		return err
	}

	if err := doc.CanModify(); err != nil {
		return err
	}

	if err := s.enrichLines(ctx, doc); err != nil {
		return err
	}
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, doc); err != nil {
			return fmt.Errorf("update document: %w", err)
		}
		if err := s.repo.SaveLines(ctx, doc.ID, doc.Lines); err != nil {
			return fmt.Errorf("save lines: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// After-update hooks run outside the transaction, failures only logged.
	if err := s.hooks.Run(ctx, domain.AfterUpdate, doc); err != nil {
		logger.Warn(ctx, "after-update hook failed", "id", doc.ID, "error", err)
	}
	return nil
}

// Delete soft-deletes a GRN.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	if doc.Posted {
		return doc.CanModify()
	}

	return s.repo.Delete(ctx, docID)
}

// ChangeStatus moves the document through its workflow.
func (s *Service) ChangeStatus(ctx context.Context, docID id.ID, to workflow.Status, actor string) (*GoodsReceiptNote, error) {
	doc, err := s.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	if err := doc.TransitionTo(s.flow, to, actor); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, fmt.Errorf("update document: %w", err)
	}

	logger.Info(ctx, "goods receipt note status changed",
		"id", doc.ID, "status", string(to))
	return doc, nil
}

// Post records document movements to the stock ledger.
func (s *Service) Post(ctx context.Context, docID id.ID) error {
	doc, err := s.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	return s.postingEngine.Post(ctx, doc, func(ctx context.Context) error {
		return s.repo.Update(ctx, doc)
	})
}

// Unpost reverses document movements.
func (s *Service) Unpost(ctx context.Context, docID id.ID) error {
	doc, err := s.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	return s.postingEngine.Unpost(ctx, doc, func(ctx context.Context) error {
		return s.repo.Update(ctx, doc)
	})
}

// Cancel moves the document to cancelled, reversing its movements first
// when it is posted.
func (s *Service) Cancel(ctx context.Context, docID id.ID, actor string) (*GoodsReceiptNote, error) {
	doc, err := s.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	if err := doc.TransitionTo(s.flow, workflow.StatusCancelled, actor); err != nil {
		return nil, err
	}

	if doc.Posted {
		if err := s.postingEngine.Unpost(ctx, doc, func(ctx context.Context) error {
			return s.repo.Update(ctx, doc)
		}); err != nil {
			return nil, err
		}
		return doc, nil
	}

	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, fmt.Errorf("update document: %w", err)
	}
	return doc, nil
}

// Copy creates a new draft GRN from an existing one. The copy gets a
// fresh identity, no number, and today's date.
func (s *Service) Copy(ctx context.Context, docID id.ID) (*GoodsReceiptNote, error) {
	src, err := s.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	clone := NewGoodsReceiptNote(src.SupplierID, src.WarehouseID)
	clone.SupplierDocNumber = src.SupplierDocNumber
	clone.SupplierDocDate = src.SupplierDocDate
	clone.Comment = src.Comment
	for _, line := range src.Lines {
		clone.AddLine(line)
	}

	if err := s.Create(ctx, clone); err != nil {
		return nil, err
	}
	return clone, nil
}

// List retrieves GRN documents with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*GoodsReceiptNote], error) {
	return s.repo.List(ctx, filter)
}
