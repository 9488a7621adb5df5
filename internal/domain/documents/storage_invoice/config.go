package storage_invoice

import "stockyard/pkg/numerator"

const (
	// NumberPrefix is the document number prefix (SI-2026-0001).
	NumberPrefix = "SI"

	// NumeratorStrategy for invoices. Invoices are outward-facing
	// accounting documents, numbering must be gap-free.
	NumeratorStrategy = numerator.StrategyStrict

	// AccountReceivable is the accounts receivable ledger account.
	AccountReceivable = "1200"

	// AccountStorageRevenue is the storage services revenue account.
	AccountStorageRevenue = "4000"
)
