package stock_transfer

import "stockyard/pkg/numerator"

const (
	// NumberPrefix is the document number prefix (TRF-2026-0001).
	NumberPrefix = "TRF"

	// NumeratorStrategy for transfers. Internal movements tolerate
	// numbering gaps, so the faster Cached strategy is used.
	NumeratorStrategy = numerator.StrategyCached
)
