package journal_entry

import "stockyard/pkg/numerator"

const (
	// NumberPrefix is the document number prefix (JE-2026-0001).
	NumberPrefix = "JE"

	// NumeratorStrategy for journal entries. Accounting documents use
	// the gap-free Strict strategy.
	NumeratorStrategy = numerator.StrategyStrict
)
