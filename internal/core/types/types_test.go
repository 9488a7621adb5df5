package types

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantity_String(t *testing.T) {
	tests := []struct {
		name string
		q    Quantity
		want string
	}{
		{"zero", 0, "0.0000"},
		{"whole number", 50_000, "5.0000"},
		{"fractional", 12_500, "1.2500"},
		{"sub-unit", 1, "0.0001"},
		{"negative", -30_000, "-3.0000"},
		{"negative fractional", -12_345, "-1.2345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.String())
		})
	}
}

func TestQuantity_MarshalJSON(t *testing.T) {
	type wrapper struct {
		Qty Quantity `json:"qty"`
	}

	data, err := json.Marshal(wrapper{Qty: 25_000})
	require.NoError(t, err)
	assert.Equal(t, `{"qty":2.5000}`, string(data))
}

func TestQuantity_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Quantity
		wantErr bool
	}{
		{"integer", `10`, 100_000, false},
		{"decimal", `2.5`, 25_000, false},
		{"four digits", `0.0001`, 1, false},
		{"extra digits truncated", `1.23456`, 12_345, false},
		{"negative", `-3.25`, -32_500, false},
		{"quoted string", `"7.5"`, 75_000, false},
		{"leading plus", `+1.5`, 15_000, false},
		{"bare dot fraction", `.5`, 5_000, false},
		{"exponent form", `1e2`, 1_000_000, false},
		{"null", `null`, 0, false},
		{"garbage", `"abc"`, 0, true},
		{"near int64 limit", `"922337203685477.5807"`, math.MaxInt64, false},
		{"integer part too large", `"922337203685478"`, 0, true},
		{"scaled value overflows", `"1000000000000000"`, 0, true},
		{"integer overflows int64", `"99999999999999999999"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var q Quantity
			err := json.Unmarshal([]byte(tt.input), &q)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, q)
		})
	}
}

func TestQuantity_RoundTrip(t *testing.T) {
	orig := NewQuantityFromFloat64(123.4567)

	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var back Quantity
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, orig, back)
}

func TestQuantity_Arithmetic(t *testing.T) {
	q := NewQuantityFromFloat64(2.5)

	assert.True(t, q.IsPositive())
	assert.False(t, q.IsNegative())
	assert.Equal(t, Quantity(-25_000), q.Neg())
	assert.Equal(t, q, q.Neg().Abs())
	assert.Equal(t, 2.5, q.Float64())
	assert.Equal(t, "2.5", q.Decimal().String())
}

func TestMoney_Constructors(t *testing.T) {
	m, err := NewMoneyFromString("19.99")
	require.NoError(t, err)
	assert.Equal(t, "19.99", m.String())

	assert.True(t, ZeroMoney().IsZero())

	assert.Panics(t, func() { MustMoney("not-a-number") })
}
