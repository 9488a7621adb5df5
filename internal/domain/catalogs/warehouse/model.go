// Package warehouse provides the Warehouse catalog.
package warehouse

import (
	"context"

	"stockyard/internal/core/apperror"
	"stockyard/internal/core/entity"
)

// WarehouseType defines the type of warehouse.
type WarehouseType string

const (
	TypeGeneral  WarehouseType = "general"
	TypeBonded   WarehouseType = "bonded"
	TypeCold     WarehouseType = "cold"
	TypeTransit  WarehouseType = "transit"
	TypeQuarante WarehouseType = "quarantine"
)

// Warehouse represents a storage location for goods.
type Warehouse struct {
	entity.Catalog

	// Type defines the warehouse category
	Type WarehouseType `db:"type" json:"type"`

	// Address is the physical address
	Address *string `db:"address" json:"address,omitempty"`

	// IsActive indicates if warehouse is operational
	IsActive bool `db:"is_active" json:"isActive"`

	// AllowNegativeStock permits issuing more than the current balance
	AllowNegativeStock bool `db:"allow_negative_stock" json:"allowNegativeStock"`

	// IsDefault marks the default warehouse for new documents
	IsDefault bool `db:"is_default" json:"isDefault"`

	Description *string `db:"description" json:"description,omitempty"`
}

// NewWarehouse creates a new Warehouse with required fields.
func NewWarehouse(code, name string, whType WarehouseType) *Warehouse {
	return &Warehouse{
		Catalog:  entity.NewCatalog(code, name),
		Type:     whType,
		IsActive: true,
	}
}

// Validate implements entity.Validatable interface.
func (w *Warehouse) Validate(ctx context.Context) error {
	if err := w.Catalog.Validate(ctx); err != nil {
		return err
	}

	if !isValidWarehouseType(w.Type) {
		return apperror.NewValidation("invalid warehouse type").
			WithDetail("field", "type").
			WithDetail("value", string(w.Type))
	}

	return nil
}

// CanAcceptStock returns true if warehouse can accept stock.
func (w *Warehouse) CanAcceptStock() bool {
	return w.IsActive && !w.IsFolder
}

// CanIssueStock returns true if warehouse can issue stock.
func (w *Warehouse) CanIssueStock() bool {
	return w.IsActive && !w.IsFolder
}

func isValidWarehouseType(t WarehouseType) bool {
	switch t {
	case TypeGeneral, TypeBonded, TypeCold, TypeTransit, TypeQuarante:
		return true
	}
	return false
}
