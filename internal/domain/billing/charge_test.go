package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"stockyard/internal/core/types"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculateAmount(t *testing.T) {
	tests := []struct {
		name       string
		chargeType ChargeType
		in         Input
		want       string
	}{
		{
			name:       "per cbm day",
			chargeType: PerCBMDay,
			in:         Input{Rate: dec("5.00"), Volume: dec("2.5"), Days: 10},
			want:       "125.00",
		},
		{
			name:       "per item day",
			chargeType: PerItemDay,
			in:         Input{Rate: dec("0.15"), Quantity: types.Quantity(120_0000), Days: 7},
			want:       "126.00",
		},
		{
			name:       "per weight day",
			chargeType: PerWeightDay,
			in:         Input{Rate: dec("0.02"), Weight: dec("340.5"), Days: 3},
			want:       "20.43",
		},
		{
			name:       "per pallet day",
			chargeType: PerPalletDay,
			in:         Input{Rate: dec("1.75"), Days: 14},
			want:       "24.50",
		},
		{
			name:       "fixed ignores duration",
			chargeType: Fixed,
			in:         Input{Rate: dec("99.90"), Days: 365},
			want:       "99.90",
		},
		{
			name:       "fixed monthly",
			chargeType: FixedMonthly,
			in:         Input{Rate: dec("250.00"), Months: 3},
			want:       "750.00",
		},
		{
			name:       "weekly prorates partial weeks",
			chargeType: Weekly,
			in:         Input{Rate: dec("70.00"), Days: 10},
			want:       "100.00",
		},
		{
			name:       "monthly prorates by 30 days",
			chargeType: Monthly,
			in:         Input{Rate: dec("300.00"), Days: 45},
			want:       "450.00",
		},
		{
			name:       "unknown type falls back to rate",
			chargeType: ChargeType("per_container"),
			in:         Input{Rate: dec("12.34"), Days: 99},
			want:       "12.34",
		},
		{
			name:       "rounding half up",
			chargeType: PerCBMDay,
			in:         Input{Rate: dec("0.335"), Volume: dec("1"), Days: 1},
			want:       "0.34",
		},
		{
			name:       "zero days",
			chargeType: PerCBMDay,
			in:         Input{Rate: dec("5.00"), Volume: dec("2.5"), Days: 0},
			want:       "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateAmount(tt.chargeType, tt.in)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestChargeTypeValid(t *testing.T) {
	for _, ct := range KnownChargeTypes() {
		assert.True(t, ct.Valid(), string(ct))
	}
	assert.False(t, ChargeType("per_container").Valid())
	assert.False(t, ChargeType("").Valid())
}
