package storage_invoice

import (
	"context"
	"fmt"

	"stockyard/internal/core/apperror"
	"stockyard/internal/core/id"
	"stockyard/internal/core/tx"
	"stockyard/internal/core/workflow"
	"stockyard/internal/domain"
	"stockyard/internal/domain/catalogs/chargecode"
	"stockyard/internal/domain/posting"
	"stockyard/pkg/logger"
	"stockyard/pkg/numerator"
)

// Service provides business operations for storage invoices.
type Service struct {
	repo          Repository
	chargeCodes   chargecode.Repository
	postingEngine *posting.Engine
	numerator     *numerator.Service
	txManager     tx.Manager
	flow          workflow.Machine
	hooks         *domain.HookRegistry[*StorageInvoice]
}

// NewService creates a new storage invoice service.
func NewService(
	repo Repository,
	chargeCodes chargecode.Repository,
	postingEngine *posting.Engine,
	num *numerator.Service,
	txManager tx.Manager,
) *Service {
	return &Service{
		repo:          repo,
		chargeCodes:   chargeCodes,
		postingEngine: postingEngine,
		numerator:     num,
		txManager:     txManager,
		flow:          workflow.DocumentFlow("StorageInvoice"),
		hooks:         domain.NewHookRegistry[*StorageInvoice](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*StorageInvoice] {
	return s.hooks
}

// resolveLines fills charge type and rate from the tariff catalog for
// lines that do not carry them explicitly.
func (s *Service) resolveLines(ctx context.Context, doc *StorageInvoice) error {
	for i := range doc.Lines {
		line := &doc.Lines[i]
		if line.ChargeType != "" && !line.Rate.IsZero() {
			continue
		}

		code, err := s.chargeCodes.GetByID(ctx, line.ChargeCodeID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewNotFound("charge_code", line.ChargeCodeID.String())
			}
			return fmt.Errorf("resolve charge code: %w", err)
		}

		if !code.IsActive {
			return apperror.NewBusinessRule(
				apperror.CodeBusinessRule,
				"Charge code is inactive",
			).WithDetail("charge_code", code.Code)
		}

		if line.ChargeType == "" {
			line.ChargeType = code.ChargeType
		}
		if line.Rate.IsZero() {
			line.Rate = code.DefaultRate
		}
		if line.Description == "" {
			line.Description = code.Name
		}
	}
	return nil
}

// Create creates a new storage invoice, resolving tariffs and computing
// line amounts.
func (s *Service) Create(ctx context.Context, doc *StorageInvoice) error {
	if err := s.hooks.Run(ctx, domain.BeforeCreate, doc); err != nil {
		return err
	}

	if err := s.resolveLines(ctx, doc); err != nil {
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

	logger.Info(ctx, "storage invoice created",
		"id", doc.ID, "number", doc.Number, "total", doc.TotalAmount.StringFixed(2))
	return nil
}

// GetByID retrieves a storage invoice with lines.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*StorageInvoice, error) {
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

// Update updates a storage invoice.
func (s *Service) Update(ctx context.Context, doc *StorageInvoice) error {
	if err := s.hooks.Run(ctx, domain.BeforeUpdate, doc); err != nil {
		return err
	}

	if err := doc.CanModify(); err != nil {
		return err
	}

	if err := s.resolveLines(ctx, doc); err != nil {
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

// Delete soft-deletes a storage invoice.
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
func (s *Service) ChangeStatus(ctx context.Context, docID id.ID, to workflow.Status, actor string) (*StorageInvoice, error) {
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

	logger.Info(ctx, "storage invoice status changed", "id", doc.ID, "status", string(to))
	return doc, nil
}

// Post records the invoice in the general ledger.
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
func (s *Service) Cancel(ctx context.Context, docID id.ID, actor string) (*StorageInvoice, error) {
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

// Copy creates a new draft invoice from an existing one.
func (s *Service) Copy(ctx context.Context, docID id.ID) (*StorageInvoice, error) {
	src, err := s.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	clone := NewStorageInvoice(src.CustomerID, src.PeriodFrom, src.PeriodTo)
	clone.DueDate = src.DueDate
	clone.Comment = src.Comment
	for _, line := range src.Lines {
		line.LineID = id.New()
		clone.AddLine(line)
	}

	if err := s.Create(ctx, clone); err != nil {
		return nil, err
	}
	return clone, nil
}

// List retrieves storage invoices with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*StorageInvoice], error) {
	return s.repo.List(ctx, filter)
}
