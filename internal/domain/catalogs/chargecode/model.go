// Package chargecode provides the ChargeCode catalog: billable service
// tariffs referenced by storage invoices.
package chargecode

import (
	"context"

	"stockyard/internal/core/apperror"
	"stockyard/internal/core/entity"
	"stockyard/internal/core/types"
	"stockyard/internal/domain/billing"
)

// ChargeCode represents one billable service with its default tariff.
type ChargeCode struct {
	entity.Catalog

	// ChargeType selects the billing formula
	ChargeType billing.ChargeType `db:"charge_type" json:"chargeType"`

	// DefaultRate is the tariff applied when an invoice line has no
	// explicit rate
	DefaultRate types.Money `db:"default_rate" json:"defaultRate"`

	// Unit is a human-readable formula unit (cbm/day, pallet/day)
	Unit *string `db:"unit" json:"unit,omitempty"`

	// IsActive indicates if the tariff can be used on new invoices
	IsActive bool `db:"is_active" json:"isActive"`

	Description *string `db:"description" json:"description,omitempty"`
}

// NewChargeCode creates a new ChargeCode with required fields.
func NewChargeCode(code, name string, chargeType billing.ChargeType, rate types.Money) *ChargeCode {
	return &ChargeCode{
		Catalog:     entity.NewCatalog(code, name),
		ChargeType:  chargeType,
		DefaultRate: rate,
		IsActive:    true,
	}
}

// Validate implements entity.Validatable interface.
func (c *ChargeCode) Validate(ctx context.Context) error {
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}

	if !c.ChargeType.Valid() {
		return apperror.NewValidation("invalid charge type").
			WithDetail("field", "chargeType").
			WithDetail("value", string(c.ChargeType))
	}

	if c.DefaultRate.IsNegative() {
		return apperror.NewValidation("default rate cannot be negative").
			WithDetail("field", "defaultRate")
	}

	return nil
}
