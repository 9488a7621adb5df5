package v1

import (
	"context"
	"encoding/json"

	"github.com/gin-gonic/gin"

	"stockyard/internal/core/appctx"
	"stockyard/internal/core/id"
	"stockyard/internal/domain"
	"stockyard/internal/domain/catalogs/chargecode"
	"stockyard/internal/domain/catalogs/counterparty"
	"stockyard/internal/domain/catalogs/item"
	"stockyard/internal/domain/catalogs/warehouse"
	"stockyard/internal/domain/documents/delivery_order"
	"stockyard/internal/domain/documents/grn"
	"stockyard/internal/domain/documents/journal_entry"
	"stockyard/internal/domain/documents/stock_transfer"
	"stockyard/internal/domain/documents/storage_invoice"
	"stockyard/internal/domain/ledgers/general"
	"stockyard/internal/domain/ledgers/stock"
	"stockyard/internal/domain/posting"
	"stockyard/internal/domain/reports"
	"stockyard/internal/infrastructure/http/v1/handlers"
	"stockyard/internal/infrastructure/http/v1/middleware"
	"stockyard/internal/infrastructure/storage/postgres"
	"stockyard/internal/infrastructure/storage/postgres/catalog_repo"
	"stockyard/internal/infrastructure/storage/postgres/document_repo"
	"stockyard/internal/infrastructure/storage/postgres/ledger_repo"
	"stockyard/internal/infrastructure/storage/postgres/report_repo"
	"stockyard/pkg/logger"
	"stockyard/pkg/numerator"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Pool is the database connection pool (used by health checks and the numerator)
	Pool *postgres.Pool

	// TxManager provides transaction scoping for repositories
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger

	// Numerator for document and catalog number generation
	Numerator *numerator.Service

	// Audit records entity change history; optional
	Audit *postgres.AuditService
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Identity())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// API v1
	v1 := router.Group("/api/v1")
	{
		registerCatalogRoutes(v1, cfg)
		registerDocumentRoutes(v1, cfg)
		registerLedgerRoutes(v1, cfg)
		registerReportRoutes(v1, cfg)

		if cfg.Audit != nil {
			auditHandler := handlers.NewAuditHandler(handlers.NewBaseHandler(), cfg.Audit)
			v1.GET("/audit/:entityType/:id", auditHandler.GetEntityHistory)
		}
	}

	return router
}

// enrichActor stamps the acting user onto document audit fields.
func enrichActor(ctx context.Context, createdBy, updatedBy *string) {
	uid := appctx.GetUserID(ctx)
	if uid == "" {
		return
	}
	if createdBy != nil && *createdBy == "" {
		*createdBy = uid
	}
	*updatedBy = uid
}

// registerDocumentAudit records create/update history for a document type.
func registerDocumentAudit[T interface{ GetID() id.ID }](
	hooks *domain.HookRegistry[T],
	audit *postgres.AuditService,
	entityType string,
) {
	if audit == nil {
		return
	}

	log := func(action postgres.AuditAction) domain.Hook[T] {
		return func(ctx context.Context, doc T) error {
			changes, err := json.Marshal(doc)
			if err != nil {
				return err
			}
			return audit.Log(ctx, postgres.AuditEntry{
				EntityType: entityType,
				EntityID:   doc.GetID(),
				Action:     action,
				Changes:    changes,
			})
		}
	}

	hooks.On(domain.AfterCreate, log(postgres.AuditActionCreate))
	hooks.On(domain.AfterUpdate, log(postgres.AuditActionUpdate))
}

// registerCatalogRoutes registers catalog endpoints.
func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	catalogs := rg.Group("/catalog")
	baseHandler := handlers.NewBaseHandler()

	// --- ITEMS ---
	{
		repo := catalog_repo.NewItemRepo(cfg.TxManager)
		service := item.NewService(repo, cfg.TxManager, cfg.Numerator)
		handler := handlers.NewItemHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/items"), handler)
	}

	// --- COUNTERPARTIES ---
	{
		repo := catalog_repo.NewCounterpartyRepo(cfg.TxManager)
		service := counterparty.NewService(repo, cfg.TxManager, cfg.Numerator)
		handler := handlers.NewCounterpartyHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/counterparties"), handler)
	}

	// --- WAREHOUSES ---
	{
		repo := catalog_repo.NewWarehouseRepo(cfg.TxManager)
		service := warehouse.NewService(repo, cfg.TxManager)
		handler := handlers.NewWarehouseHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/warehouses"), handler)
	}

	// --- CHARGE CODES ---
	{
		repo := catalog_repo.NewChargeCodeRepo(cfg.TxManager)
		service := chargecode.NewService(repo, cfg.TxManager)
		handler := handlers.NewChargeCodeHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/charge-codes"), handler)
	}
}

// registerDocumentRoutes registers document endpoints.
func registerDocumentRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	docsGroup := rg.Group("/document")
	baseHandler := handlers.NewBaseHandler()

	// Shared posting dependencies: both ledgers feed from the same engine.
	stockRepo := ledger_repo.NewStockRepo(cfg.TxManager)
	stockService := stock.NewService(stockRepo)
	generalRepo := ledger_repo.NewGeneralRepo(cfg.TxManager)
	generalService := general.NewService(generalRepo)
	postingEngine := posting.NewEngine(cfg.TxManager, stockService, generalService)

	// Goods documents resolve line items for weight/volume and batch rules.
	itemRepo := catalog_repo.NewItemRepo(cfg.TxManager)

	// --- GOODS RECEIPT NOTES ---
	{
		repo := document_repo.NewGoodsReceiptNoteRepo(cfg.TxManager)
		service := grn.NewService(repo, itemRepo, postingEngine, cfg.Numerator, cfg.TxManager)

		service.Hooks().OnBeforeCreate(func(ctx context.Context, doc *grn.GoodsReceiptNote) error {
			enrichActor(ctx, &doc.CreatedBy, &doc.UpdatedBy)
			return nil
		})
		service.Hooks().OnBeforeUpdate(func(ctx context.Context, doc *grn.GoodsReceiptNote) error {
			enrichActor(ctx, nil, &doc.UpdatedBy)
			return nil
		})
		registerDocumentAudit(service.Hooks(), cfg.Audit, "GoodsReceiptNote")

		handler := handlers.NewGoodsReceiptNoteHandler(baseHandler, service)
		RegisterDocumentRoutes(docsGroup.Group("/goods-receipt-note"), handler)
	}

	// --- DELIVERY ORDERS ---
	{
		repo := document_repo.NewDeliveryOrderRepo(cfg.TxManager)
		service := delivery_order.NewService(repo, itemRepo, postingEngine, cfg.Numerator, cfg.TxManager)

		service.Hooks().OnBeforeCreate(func(ctx context.Context, doc *delivery_order.DeliveryOrder) error {
			enrichActor(ctx, &doc.CreatedBy, &doc.UpdatedBy)
			return nil
		})
		service.Hooks().OnBeforeUpdate(func(ctx context.Context, doc *delivery_order.DeliveryOrder) error {
			enrichActor(ctx, nil, &doc.UpdatedBy)
			return nil
		})
		registerDocumentAudit(service.Hooks(), cfg.Audit, "DeliveryOrder")

		handler := handlers.NewDeliveryOrderHandler(baseHandler, service)
		RegisterDocumentRoutes(docsGroup.Group("/delivery-order"), handler)
	}

	// --- STOCK TRANSFERS ---
	{
		repo := document_repo.NewStockTransferRepo(cfg.TxManager)
		service := stock_transfer.NewService(repo, postingEngine, cfg.Numerator, cfg.TxManager)

		service.Hooks().OnBeforeCreate(func(ctx context.Context, doc *stock_transfer.StockTransfer) error {
			enrichActor(ctx, &doc.CreatedBy, &doc.UpdatedBy)
			return nil
		})
		service.Hooks().OnBeforeUpdate(func(ctx context.Context, doc *stock_transfer.StockTransfer) error {
			enrichActor(ctx, nil, &doc.UpdatedBy)
			return nil
		})
		registerDocumentAudit(service.Hooks(), cfg.Audit, "StockTransfer")

		handler := handlers.NewStockTransferHandler(baseHandler, service)
		RegisterDocumentRoutes(docsGroup.Group("/stock-transfer"), handler)
	}

	// --- STORAGE INVOICES ---
	{
		repo := document_repo.NewStorageInvoiceRepo(cfg.TxManager)
		chargeCodeRepo := catalog_repo.NewChargeCodeRepo(cfg.TxManager)
		service := storage_invoice.NewService(repo, chargeCodeRepo, postingEngine, cfg.Numerator, cfg.TxManager)

		service.Hooks().OnBeforeCreate(func(ctx context.Context, doc *storage_invoice.StorageInvoice) error {
			enrichActor(ctx, &doc.CreatedBy, &doc.UpdatedBy)
			return nil
		})
		service.Hooks().OnBeforeUpdate(func(ctx context.Context, doc *storage_invoice.StorageInvoice) error {
			enrichActor(ctx, nil, &doc.UpdatedBy)
			return nil
		})
		registerDocumentAudit(service.Hooks(), cfg.Audit, "StorageInvoice")

		handler := handlers.NewStorageInvoiceHandler(baseHandler, service)
		RegisterDocumentRoutes(docsGroup.Group("/storage-invoice"), handler)
	}

	// --- JOURNAL ENTRIES ---
	{
		repo := document_repo.NewJournalEntryRepo(cfg.TxManager)
		service := journal_entry.NewService(repo, postingEngine, cfg.Numerator, cfg.TxManager)

		service.Hooks().OnBeforeCreate(func(ctx context.Context, doc *journal_entry.JournalEntry) error {
			enrichActor(ctx, &doc.CreatedBy, &doc.UpdatedBy)
			return nil
		})
		service.Hooks().OnBeforeUpdate(func(ctx context.Context, doc *journal_entry.JournalEntry) error {
			enrichActor(ctx, nil, &doc.UpdatedBy)
			return nil
		})
		registerDocumentAudit(service.Hooks(), cfg.Audit, "JournalEntry")

		handler := handlers.NewJournalEntryHandler(baseHandler, service)
		RegisterDocumentRoutes(docsGroup.Group("/journal-entry"), handler)
	}
}

// registerLedgerRoutes registers ledger read endpoints.
func registerLedgerRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	ledgers := rg.Group("/ledgers")
	baseHandler := handlers.NewBaseHandler()

	// Stock ledger
	{
		repo := ledger_repo.NewStockRepo(cfg.TxManager)
		service := stock.NewService(repo)
		handler := handlers.NewStockLedgerHandler(baseHandler, service, repo)

		group := ledgers.Group("/stock")
		group.GET("/balances", handler.GetBalances)
		group.GET("/movements", handler.GetMovements)
		group.GET("/turnover", handler.GetTurnover)
		group.GET("/availability/:itemId", handler.GetItemAvailability)
	}

	// General ledger
	{
		repo := ledger_repo.NewGeneralRepo(cfg.TxManager)
		service := general.NewService(repo)
		handler := handlers.NewGeneralLedgerHandler(baseHandler, service)

		group := ledgers.Group("/general")
		group.GET("/accounts/:code/balance", handler.GetAccountBalance)
		group.GET("/accounts/:code/history", handler.GetAccountHistory)
		group.GET("/trial-balance", handler.GetTrialBalance)
	}
}

// registerReportRoutes registers report endpoints.
func registerReportRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	reportsGroup := rg.Group("/reports")
	baseHandler := handlers.NewBaseHandler()

	reportRepo := report_repo.NewReportRepo(cfg.TxManager)
	reportService := reports.NewService(reportRepo, cfg.TxManager)
	reportHandler := handlers.NewReportsHandler(baseHandler, reportService)

	reportsGroup.GET("/stock-balance", reportHandler.GetStockBalance)
	reportsGroup.GET("/stock-turnover", reportHandler.GetStockTurnover)
	reportsGroup.GET("/customer-statement", reportHandler.GetCustomerStatement)
	reportsGroup.GET("/document-journal", reportHandler.GetDocumentJournal)
}
