// Package main provides a CLI tool for seeding the database with initial data.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"stockyard/internal/core/id"
	"stockyard/internal/infrastructure/storage/postgres"
	"stockyard/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	if err := seedDefaultWarehouse(ctx, pool, log); err != nil {
		log.Fatalw("failed to seed default warehouse", "error", err)
	}

	if err := seedChargeCodes(ctx, pool, log); err != nil {
		log.Fatalw("failed to seed charge codes", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoData(ctx, pool, log); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedDefaultWarehouse(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	var existingID id.ID
	err := pool.QueryRow(ctx,
		`SELECT id FROM cat_warehouses WHERE is_default AND NOT deletion_mark`,
	).Scan(&existingID)
	if err == nil {
		log.Infow("default warehouse already exists", "warehouse_id", existingID)
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("check default warehouse: %w", err)
	}

	warehouseID := id.New()
	_, err = pool.Exec(ctx, `
		INSERT INTO cat_warehouses (id, code, name, type, is_active, is_default, version)
		VALUES ($1, 'MAIN', 'Main Warehouse', 'general', true, true, 1)
	`, warehouseID)
	if err != nil {
		return fmt.Errorf("insert default warehouse: %w", err)
	}

	log.Infow("created default warehouse", "warehouse_id", warehouseID, "code", "MAIN")
	return nil
}

func seedChargeCodes(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	codes := []struct {
		code       string
		name       string
		chargeType string
		rate       string
		unit       string
	}{
		{"STORAGE-CBM", "Storage per cubic meter", "per_cbm_day", "1.50", "cbm/day"},
		{"STORAGE-ITEM", "Storage per item", "per_item_day", "0.05", "item/day"},
		{"HANDLING-IN", "Inbound handling", "fixed", "25.00", "operation"},
		{"HANDLING-OUT", "Outbound handling", "fixed", "25.00", "operation"},
		{"RENT-MONTHLY", "Monthly space rent", "fixed_monthly", "500.00", "month"},
	}

	for _, c := range codes {
		var existingID id.ID
		err := pool.QueryRow(ctx,
			`SELECT id FROM cat_charge_codes WHERE code = $1 AND NOT deletion_mark`,
			c.code,
		).Scan(&existingID)
		if err == nil {
			continue
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("check charge code %s: %w", c.code, err)
		}

		_, err = pool.Exec(ctx, `
			INSERT INTO cat_charge_codes (id, code, name, charge_type, default_rate, unit, is_active, version)
			VALUES ($1, $2, $3, $4, $5, $6, true, 1)
		`, id.New(), c.code, c.name, c.chargeType, c.rate, c.unit)
		if err != nil {
			return fmt.Errorf("insert charge code %s: %w", c.code, err)
		}

		log.Infow("created charge code", "code", c.code)
	}

	return nil
}

func seedDemoData(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	counterparties := []struct {
		code  string
		name  string
		cType string
	}{
		{"ACME", "ACME Logistics Ltd", "customer"},
		{"GLOBEX", "Globex Trading GmbH", "supplier"},
		{"SPEEDY", "Speedy Freight Inc", "carrier"},
	}

	for _, cp := range counterparties {
		var existingID id.ID
		err := pool.QueryRow(ctx,
			`SELECT id FROM cat_counterparties WHERE code = $1 AND NOT deletion_mark`,
			cp.code,
		).Scan(&existingID)
		if err == nil {
			continue
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("check counterparty %s: %w", cp.code, err)
		}

		_, err = pool.Exec(ctx, `
			INSERT INTO cat_counterparties (id, code, name, type, version)
			VALUES ($1, $2, $3, $4, 1)
		`, id.New(), cp.code, cp.name, cp.cType)
		if err != nil {
			return fmt.Errorf("insert counterparty %s: %w", cp.code, err)
		}

		log.Infow("created counterparty", "code", cp.code)
	}

	items := []struct {
		code string
		name string
		sku  string
		unit string
	}{
		{"PLT-EUR", "Euro pallet", "PLT-001", "pcs"},
		{"BOX-STD", "Standard carton box", "BOX-001", "pcs"},
		{"DRUM-200", "Steel drum 200L", "DRM-001", "pcs"},
	}

	for _, it := range items {
		var existingID id.ID
		err := pool.QueryRow(ctx,
			`SELECT id FROM cat_items WHERE code = $1 AND NOT deletion_mark`,
			it.code,
		).Scan(&existingID)
		if err == nil {
			continue
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("check item %s: %w", it.code, err)
		}

		_, err = pool.Exec(ctx, `
			INSERT INTO cat_items (id, code, name, kind, sku, unit, version)
			VALUES ($1, $2, $3, 'goods', $4, $5, 1)
		`, id.New(), it.code, it.name, it.sku, it.unit)
		if err != nil {
			return fmt.Errorf("insert item %s: %w", it.code, err)
		}

		log.Infow("created item", "code", it.code)
	}

	return nil
}
