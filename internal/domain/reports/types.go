// Package reports provides report generation services.
package reports

import (
	"time"

	"stockyard/internal/core/id"
	"stockyard/internal/core/types"
)

// --- Stock Balance Report ---

// StockBalanceReportFilter defines filter for stock balance report.
type StockBalanceReportFilter struct {
	// AsOfDate - report date (defaults to now)
	AsOfDate *time.Time

	WarehouseIDs []id.ID
	ItemIDs      []id.ID

	// OnlyBelowMinStock keeps rows where balance is under the item minimum
	OnlyBelowMinStock bool

	// ExcludeZero drops zero balances
	ExcludeZero bool

	Limit  int
	Offset int
}

// StockBalanceReportItem represents a single row in stock balance report.
type StockBalanceReportItem struct {
	WarehouseID   id.ID          `json:"warehouseId"`
	WarehouseName string         `json:"warehouseName"`
	ItemID        id.ID          `json:"itemId"`
	ItemName      string         `json:"itemName"`
	ItemSKU       string         `json:"itemSku,omitempty"`
	Unit          string         `json:"unit"`
	Quantity      types.Quantity `json:"quantity"`
	MinStock      types.Quantity `json:"minStock,omitempty"`
}

// StockBalanceReport represents the full stock balance report.
type StockBalanceReport struct {
	AsOfDate   time.Time                `json:"asOfDate"`
	Items      []StockBalanceReportItem `json:"items"`
	TotalItems int                      `json:"totalItems"`

	TotalQuantity types.Quantity `json:"totalQuantity"`
}

// --- Stock Turnover Report ---

// StockTurnoverReportFilter defines filter for stock turnover report.
type StockTurnoverReportFilter struct {
	// Period (required)
	FromDate time.Time
	ToDate   time.Time

	WarehouseIDs []id.ID
	ItemIDs      []id.ID

	IncludeZero bool

	Limit  int
	Offset int
}

// StockTurnoverReportItem represents a single row in turnover report.
type StockTurnoverReportItem struct {
	WarehouseID    id.ID          `json:"warehouseId,omitempty"`
	WarehouseName  string         `json:"warehouseName,omitempty"`
	ItemID         id.ID          `json:"itemId,omitempty"`
	ItemName       string         `json:"itemName,omitempty"`
	ItemSKU        string         `json:"itemSku,omitempty"`
	OpeningBalance types.Quantity `json:"openingBalance"`
	Receipt        types.Quantity `json:"receipt"`
	Expense        types.Quantity `json:"expense"`
	ClosingBalance types.Quantity `json:"closingBalance"`
}

// StockTurnoverReport represents the full turnover report.
type StockTurnoverReport struct {
	FromDate   time.Time                 `json:"fromDate"`
	ToDate     time.Time                 `json:"toDate"`
	Items      []StockTurnoverReportItem `json:"items"`
	TotalItems int                       `json:"totalItems"`
}

// --- Customer Statement ---

// CustomerStatementFilter defines filter for a counterparty statement.
type CustomerStatementFilter struct {
	CustomerID id.ID
	FromDate   time.Time
	ToDate     time.Time
}

// CustomerStatementLine is one invoice or payment row on the statement.
type CustomerStatementLine struct {
	Date         time.Time   `json:"date"`
	DocumentType string      `json:"documentType"`
	Number       string      `json:"number"`
	Debit        types.Money `json:"debit"`
	Credit       types.Money `json:"credit"`
	Balance      types.Money `json:"balance"`
}

// CustomerStatement represents receivables activity for one customer.
type CustomerStatement struct {
	CustomerID     id.ID                   `json:"customerId"`
	CustomerName   string                  `json:"customerName"`
	FromDate       time.Time               `json:"fromDate"`
	ToDate         time.Time               `json:"toDate"`
	OpeningBalance types.Money             `json:"openingBalance"`
	Lines          []CustomerStatementLine `json:"lines"`
	ClosingBalance types.Money             `json:"closingBalance"`
}

// --- Document Journal ---

// DocumentJournalFilter defines filter for the cross-type document journal.
type DocumentJournalFilter struct {
	FromDate *time.Time
	ToDate   *time.Time

	DocumentTypes []string
	Statuses      []string
	Posted        *bool

	NumberContains string

	WarehouseIDs    []id.ID
	CounterpartyIDs []id.ID

	SortBy    string // "date", "number", "type"
	SortOrder string // "asc", "desc"

	Limit  int
	Offset int
}

// DocumentJournalItem represents a document in the journal.
type DocumentJournalItem struct {
	ID           id.ID     `json:"id"`
	DocumentType string    `json:"documentType"`
	Number       string    `json:"number"`
	Date         time.Time `json:"date"`
	Status       string    `json:"status"`
	Posted       bool      `json:"posted"`

	CounterpartyID   *id.ID `json:"counterpartyId,omitempty"`
	CounterpartyName string `json:"counterpartyName,omitempty"`

	WarehouseID   *id.ID `json:"warehouseId,omitempty"`
	WarehouseName string `json:"warehouseName,omitempty"`

	TotalQuantity types.Quantity `json:"totalQuantity"`
	TotalAmount   types.Money    `json:"totalAmount"`

	DeletionMark bool      `json:"deletionMark"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// DocumentJournal represents the document journal result.
type DocumentJournal struct {
	Items      []DocumentJournalItem `json:"items"`
	TotalCount int                   `json:"totalCount"`
	Limit      int                   `json:"limit"`
	Offset     int                   `json:"offset"`

	Summary []DocumentTypeSummary `json:"summary,omitempty"`
}

// DocumentTypeSummary provides count and totals by document type.
type DocumentTypeSummary struct {
	DocumentType string      `json:"documentType"`
	Count        int         `json:"count"`
	PostedCount  int         `json:"postedCount"`
	TotalAmount  types.Money `json:"totalAmount"`
}
