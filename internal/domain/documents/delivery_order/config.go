package delivery_order

import "stockyard/pkg/numerator"

const (
	// NumberPrefix is the document number prefix (DO-2026-0001).
	NumberPrefix = "DO"

	// NumeratorStrategy for delivery orders. Strict keeps shipping
	// paperwork gap-free.
	NumeratorStrategy = numerator.StrategyStrict
)
