package posting

import (
	"context"
	"fmt"

	"stockyard/internal/core/apperror"
	"stockyard/internal/core/tx"
	"stockyard/internal/domain/ledgers/general"
	stockledger "stockyard/internal/domain/ledgers/stock"
	"stockyard/pkg/logger"
)

// Engine posts and unposts documents. Ledger writes and the document
// update happen in one transaction, so a failed stock check rolls back
// the whole posting.
type Engine struct {
	txManager tx.Manager
	stock     *stockledger.Service
	general   *general.Service
}

// NewEngine creates a posting engine.
func NewEngine(txManager tx.Manager, stock *stockledger.Service, general *general.Service) *Engine {
	return &Engine{
		txManager: txManager,
		stock:     stock,
		general:   general,
	}
}

// SaveFunc persists the document after its posted flag changed.
// It runs inside the posting transaction with optimistic locking.
type SaveFunc func(ctx context.Context) error

// Post records the document's movements in the ledgers and marks the
// document posted. Posted documents are immutable, so changing a posted
// document means unposting, editing and posting again.
func (e *Engine) Post(ctx context.Context, doc Postable, save SaveFunc) error {
	return e.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := doc.CanPost(ctx); err != nil {
			return err
		}

		set, err := doc.GenerateMovements(ctx)
		if err != nil {
			return fmt.Errorf("generate movements: %w", err)
		}
		if set.IsEmpty() {
			return apperror.NewBusinessRule(
				apperror.CodeBusinessRule,
				"Document produces no movements",
			).WithDetail("document_id", doc.GetID().String())
		}

		newVersion := doc.GetPostedVersion() + 1
		set.stamp(doc, newVersion)

		if len(set.Reservations) > 0 {
			if err := e.stock.CheckAndReserveStock(ctx, set.Reservations); err != nil {
				return err
			}
		}

		if err := e.stock.RecordMovements(ctx, set.Stock); err != nil {
			return err
		}
		if err := e.general.RecordMovements(ctx, set.General); err != nil {
			return err
		}

		doc.MarkPosted()
		if err := save(ctx); err != nil {
			return fmt.Errorf("save document: %w", err)
		}

		logger.Info(ctx, "document posted",
			"document_id", doc.GetID(),
			"document_type", doc.GetDocumentType(),
			"version", newVersion,
			"stock_movements", len(set.Stock),
			"general_movements", len(set.General),
		)
		return nil
	})
}

// Unpost removes the document's movements from the ledgers and clears
// the posted flag.
func (e *Engine) Unpost(ctx context.Context, doc Postable, save SaveFunc) error {
	if !doc.IsPosted() {
		return apperror.NewBusinessRule(
			apperror.CodeBusinessRule,
			"Document is not posted",
		).WithDetail("document_id", doc.GetID().String())
	}

	return e.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		// beforeVersion above the current version removes every iteration
		if err := e.reverse(ctx, doc, doc.GetPostedVersion()+1); err != nil {
			return err
		}

		doc.MarkUnposted()
		if err := save(ctx); err != nil {
			return fmt.Errorf("save document: %w", err)
		}

		logger.Info(ctx, "document unposted",
			"document_id", doc.GetID(),
			"document_type", doc.GetDocumentType(),
		)
		return nil
	})
}

func (e *Engine) reverse(ctx context.Context, doc Postable, beforeVersion int) error {
	if err := e.stock.ReverseMovements(ctx, doc.GetID(), beforeVersion); err != nil {
		return fmt.Errorf("reverse stock movements: %w", err)
	}
	if err := e.general.ReverseMovements(ctx, doc.GetID(), beforeVersion); err != nil {
		return fmt.Errorf("reverse general movements: %w", err)
	}
	return nil
}
