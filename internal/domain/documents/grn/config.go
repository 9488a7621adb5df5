package grn

import "stockyard/pkg/numerator"

const (
	// NumberPrefix is the document number prefix (GRN-2026-0001).
	NumberPrefix = "GRN"

	// NumeratorStrategy defines the numbering strategy for this document type.
	// GRN is a primary accounting document, so we use Strict strategy.
	NumeratorStrategy = numerator.StrategyStrict
)
