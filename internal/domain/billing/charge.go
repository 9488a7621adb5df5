// Package billing computes storage and handling charges.
//
// Every charge is driven by a charge type that selects the formula
// applied to the rate. Results are rounded half-up to 2 decimal places.
package billing

import (
	"github.com/shopspring/decimal"

	"stockyard/internal/core/types"
)

// ChargeType selects the calculation formula for a charge line.
type ChargeType string

const (
	// PerCBMDay charges rate per cubic meter per day.
	PerCBMDay ChargeType = "per_cbm_day"

	// PerItemDay charges rate per item per day.
	PerItemDay ChargeType = "per_item_day"

	// PerWeightDay charges rate per weight unit per day.
	PerWeightDay ChargeType = "per_weight_day"

	// PerPalletDay charges rate per pallet position per day.
	PerPalletDay ChargeType = "per_pallet_day"

	// Fixed charges the rate once regardless of duration.
	Fixed ChargeType = "fixed"

	// FixedMonthly charges the rate per calendar month.
	FixedMonthly ChargeType = "fixed_monthly"

	// Weekly charges the rate per started or partial week (days / 7).
	Weekly ChargeType = "weekly"

	// Monthly charges the rate per 30-day month fraction (days / 30).
	Monthly ChargeType = "monthly"
)

// KnownChargeTypes lists all supported charge types.
func KnownChargeTypes() []ChargeType {
	return []ChargeType{
		PerCBMDay, PerItemDay, PerWeightDay, PerPalletDay,
		Fixed, FixedMonthly, Weekly, Monthly,
	}
}

// Valid reports whether the charge type is one of the known types.
func (t ChargeType) Valid() bool {
	switch t {
	case PerCBMDay, PerItemDay, PerWeightDay, PerPalletDay,
		Fixed, FixedMonthly, Weekly, Monthly:
		return true
	}
	return false
}

// Input carries the measured values a charge formula may consume.
// Unused fields are ignored by the selected formula.
type Input struct {
	// Rate is the tariff for one formula unit.
	Rate types.Money

	// Quantity is the item count for per-item charges.
	Quantity types.Quantity

	// Volume is total cubic meters for volumetric charges.
	Volume decimal.Decimal

	// Weight is total weight for weight-based charges.
	Weight decimal.Decimal

	// Days is the billed duration in days.
	Days int

	// Months is the number of calendar months for fixed monthly charges.
	Months int
}

var (
	seven  = decimal.NewFromInt(7)
	thirty = decimal.NewFromInt(30)
)

// CalculateAmount applies the charge formula and rounds the result
// half-up to 2 decimal places. An unknown charge type falls back to
// the bare rate so a misconfigured tariff line never silently zeroes
// out an invoice.
func CalculateAmount(chargeType ChargeType, in Input) types.Money {
	days := decimal.NewFromInt(int64(in.Days))

	var amount decimal.Decimal
	switch chargeType {
	case PerCBMDay:
		amount = in.Rate.Mul(in.Volume).Mul(days)
	case PerItemDay:
		amount = in.Rate.Mul(in.Quantity.Decimal()).Mul(days)
	case PerWeightDay:
		amount = in.Rate.Mul(in.Weight).Mul(days)
	case PerPalletDay:
		amount = in.Rate.Mul(days)
	case Fixed:
		amount = in.Rate
	case FixedMonthly:
		amount = in.Rate.Mul(decimal.NewFromInt(int64(in.Months)))
	case Weekly:
		amount = in.Rate.Mul(days.Div(seven))
	case Monthly:
		amount = in.Rate.Mul(days.Div(thirty))
	default:
		amount = in.Rate
	}

	return amount.Round(2)
}
