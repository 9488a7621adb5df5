// Package item provides the Item catalog.
// Items are the goods stored in warehouses and moved by documents.
package item

import (
	"context"

	"github.com/shopspring/decimal"

	"stockyard/internal/core/apperror"
	"stockyard/internal/core/entity"
	"stockyard/internal/core/types"
)

// ItemKind defines the category of item.
type ItemKind string

const (
	KindGoods     ItemKind = "goods"
	KindPackaging ItemKind = "packaging"
	KindService   ItemKind = "service"
)

// Item represents a stored good with its logistics attributes.
type Item struct {
	entity.Catalog

	// Kind defines the item category
	Kind ItemKind `db:"kind" json:"kind"`

	// SKU is the stock keeping unit code
	SKU *string `db:"sku" json:"sku,omitempty"`

	// Barcode is the item barcode (EAN-13, etc.)
	Barcode *string `db:"barcode" json:"barcode,omitempty"`

	// Unit is the unit of measure (pcs, box, pallet)
	Unit string `db:"unit" json:"unit"`

	// UnitWeight in kg, used for per-weight charges
	UnitWeight decimal.Decimal `db:"unit_weight" json:"unitWeight"`

	// UnitVolume in cubic meters, used for per-cbm charges
	UnitVolume decimal.Decimal `db:"unit_volume" json:"unitVolume"`

	// MinStock triggers low-stock reporting when balance falls below
	MinStock types.Quantity `db:"min_stock" json:"minStock"`

	// TrackBatch indicates if item is tracked by batch/lot numbers
	TrackBatch bool `db:"track_batch" json:"trackBatch"`

	// Description is a detailed description
	Description *string `db:"description" json:"description,omitempty"`
}

// NewItem creates a new Item with required fields.
func NewItem(code, name string, kind ItemKind) *Item {
	return &Item{
		Catalog:    entity.NewCatalog(code, name),
		Kind:       kind,
		Unit:       "pcs",
		UnitWeight: decimal.Zero,
		UnitVolume: decimal.Zero,
	}
}

// Validate implements entity.Validatable interface.
func (i *Item) Validate(ctx context.Context) error {
	if err := i.Catalog.Validate(ctx); err != nil {
		return err
	}

	if !isValidKind(i.Kind) {
		return apperror.NewValidation("invalid item kind").
			WithDetail("field", "kind").
			WithDetail("value", string(i.Kind))
	}

	if i.Unit == "" {
		return apperror.NewValidation("unit is required").
			WithDetail("field", "unit")
	}

	if i.UnitWeight.IsNegative() {
		return apperror.NewValidation("unit weight cannot be negative").
			WithDetail("field", "unitWeight")
	}

	if i.UnitVolume.IsNegative() {
		return apperror.NewValidation("unit volume cannot be negative").
			WithDetail("field", "unitVolume")
	}

	if i.MinStock.IsNegative() {
		return apperror.NewValidation("min stock cannot be negative").
			WithDetail("field", "minStock")
	}

	return nil
}

// IsPhysical returns true if item occupies warehouse space.
func (i *Item) IsPhysical() bool {
	return i.Kind != KindService
}

// TotalWeight returns the weight of the given quantity.
func (i *Item) TotalWeight(qty types.Quantity) decimal.Decimal {
	return i.UnitWeight.Mul(qty.Decimal())
}

// TotalVolume returns the volume of the given quantity.
func (i *Item) TotalVolume(qty types.Quantity) decimal.Decimal {
	return i.UnitVolume.Mul(qty.Decimal())
}

func isValidKind(k ItemKind) bool {
	switch k {
	case KindGoods, KindPackaging, KindService:
		return true
	}
	return false
}
