package stock_transfer

import (
	"context"
	"fmt"

	"stockyard/internal/core/id"
	"stockyard/internal/core/tx"
	"stockyard/internal/core/workflow"
	"stockyard/internal/domain"
	"stockyard/internal/domain/posting"
	"stockyard/pkg/logger"
	"stockyard/pkg/numerator"
)

// Service provides business operations for stock transfers.
type Service struct {
	repo          Repository
	postingEngine *posting.Engine
	numerator     *numerator.Service
	txManager     tx.Manager
	flow          workflow.Machine
	hooks         *domain.HookRegistry[*StockTransfer]
}

// NewService creates a new stock transfer service.
func NewService(
	repo Repository,
	postingEngine *posting.Engine,
	num *numerator.Service,
	txManager tx.Manager,
) *Service {
	return &Service{
		repo:          repo,
		postingEngine: postingEngine,
		numerator:     num,
		txManager:     txManager,
		flow:          workflow.DocumentFlow("StockTransfer"),
		hooks:         domain.NewHookRegistry[*StockTransfer](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*StockTransfer] {
	return s.hooks
}

// Create creates a new stock transfer.
func (s *Service) Create(ctx context.Context, doc *StockTransfer) error {
	if err := s.hooks.Run(ctx, domain.BeforeCreate, doc); err != nil {
		return err
	}

	doc.RecalculateTotals()
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

	logger.Info(ctx, "stock transfer created", "id", doc.ID, "number", doc.Number)
	return nil
}

// GetByID retrieves a stock transfer with lines.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*StockTransfer, error) {
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

// Update updates a stock transfer.
func (s *Service) Update(ctx context.Context, doc *StockTransfer) error {
	if err := s.hooks.Run(ctx, domain.BeforeUpdate, doc); err != nil {
		return err
	}

	if err := doc.CanModify(); err != nil {
		return err
	}

	doc.RecalculateTotals()
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

// Delete soft-deletes a stock transfer.
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
func (s *Service) ChangeStatus(ctx context.Context, docID id.ID, to workflow.Status, actor string) (*StockTransfer, error) {
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

	logger.Info(ctx, "stock transfer status changed", "id", doc.ID, "status", string(to))
	return doc, nil
}

// Post records the transfer in the stock ledger.
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

// Cancel moves the document to cancelled, reversing movements first
// when posted.
func (s *Service) Cancel(ctx context.Context, docID id.ID, actor string) (*StockTransfer, error) {
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

// Copy creates a new draft transfer from an existing one.
func (s *Service) Copy(ctx context.Context, docID id.ID) (*StockTransfer, error) {
	src, err := s.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	clone := NewStockTransfer(src.SourceWarehouseID, src.TargetWarehouseID)
	clone.Comment = src.Comment
	for _, line := range src.Lines {
		clone.AddLine(line.ItemID, line.Quantity)
	}

	if err := s.Create(ctx, clone); err != nil {
		return nil, err
	}
	return clone, nil
}

// List retrieves stock transfers with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*StockTransfer], error) {
	return s.repo.List(ctx, filter)
}
