package dto

import (
	"time"

	"stockyard/internal/core/entity"
	"stockyard/internal/core/id"
	"stockyard/internal/core/types"
	"stockyard/internal/domain/ledgers/stock"
)

// StockBalanceResponse is one balance row of the stock ledger.
type StockBalanceResponse struct {
	WarehouseID    string         `json:"warehouseId"`
	ItemID         string         `json:"itemId"`
	Quantity       types.Quantity `json:"quantity"`
	LastMovementAt *time.Time     `json:"lastMovementAt,omitempty"`
	UpdatedAt      *time.Time     `json:"updatedAt,omitempty"`
}

// FromStockBalance converts a stock balance entity to a response DTO.
func FromStockBalance(b entity.StockBalance) StockBalanceResponse {
	resp := StockBalanceResponse{
		WarehouseID: b.WarehouseID.String(),
		ItemID:      b.ItemID.String(),
		Quantity:    b.Quantity,
	}
	if !b.LastMovementAt.IsZero() {
		resp.LastMovementAt = &b.LastMovementAt
	}
	if !b.UpdatedAt.IsZero() {
		resp.UpdatedAt = &b.UpdatedAt
	}
	return resp
}

// FromStockBalances converts a slice of stock balances.
func FromStockBalances(balances []entity.StockBalance) []StockBalanceResponse {
	result := make([]StockBalanceResponse, len(balances))
	for i, b := range balances {
		result[i] = FromStockBalance(b)
	}
	return result
}

// StockMovementResponse is one row of stock movement history.
type StockMovementResponse struct {
	LineID         string         `json:"lineId"`
	RecorderID     string         `json:"recorderId"`
	RecorderType   string         `json:"recorderType"`
	Period         time.Time      `json:"period"`
	RecordType     string         `json:"recordType"`
	WarehouseID    string         `json:"warehouseId"`
	ItemID         string         `json:"itemId"`
	Quantity       types.Quantity `json:"quantity"`
	RunningBalance types.Quantity `json:"runningBalance"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// FromStockMovement converts a stock movement entity to a response DTO.
func FromStockMovement(m entity.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		LineID:         m.LineID.String(),
		RecorderID:     m.RecorderID.String(),
		RecorderType:   m.RecorderType,
		Period:         m.Period,
		RecordType:     string(m.RecordType),
		WarehouseID:    m.WarehouseID.String(),
		ItemID:         m.ItemID.String(),
		Quantity:       m.Quantity,
		RunningBalance: m.RunningBalance,
		CreatedAt:      m.CreatedAt,
	}
}

// FromStockMovements converts a slice of stock movements.
func FromStockMovements(movements []entity.StockMovement) []StockMovementResponse {
	result := make([]StockMovementResponse, len(movements))
	for i, m := range movements {
		result[i] = FromStockMovement(m)
	}
	return result
}

// StockTurnoverResponse holds receipt/expense totals for a period.
type StockTurnoverResponse struct {
	WarehouseID    string         `json:"warehouseId,omitempty"`
	ItemID         string         `json:"itemId,omitempty"`
	OpeningBalance types.Quantity `json:"openingBalance"`
	Receipt        types.Quantity `json:"receipt"`
	Expense        types.Quantity `json:"expense"`
	ClosingBalance types.Quantity `json:"closingBalance"`
}

// FromStockTurnover converts a turnover result to a response DTO.
func FromStockTurnover(t stock.Turnover) StockTurnoverResponse {
	resp := StockTurnoverResponse{
		OpeningBalance: t.OpeningBalance,
		Receipt:        t.Receipt,
		Expense:        t.Expense,
		ClosingBalance: t.ClosingBalance,
	}
	if !id.IsNil(t.WarehouseID) {
		resp.WarehouseID = t.WarehouseID.String()
	}
	if !id.IsNil(t.ItemID) {
		resp.ItemID = t.ItemID.String()
	}
	return resp
}

// ItemAvailabilityResponse reports whether an item can be issued.
type ItemAvailabilityResponse struct {
	WarehouseID string         `json:"warehouseId"`
	ItemID      string         `json:"itemId"`
	Available   types.Quantity `json:"available"`
}

// AccountBalanceResponse is the current balance of one account.
type AccountBalanceResponse struct {
	AccountCode    string      `json:"accountCode"`
	Balance        types.Money `json:"balance"`
	LastMovementAt *time.Time  `json:"lastMovementAt,omitempty"`
}

// FromAccountBalance converts an account balance entity to a response DTO.
func FromAccountBalance(b entity.AccountBalance) AccountBalanceResponse {
	resp := AccountBalanceResponse{
		AccountCode: b.AccountCode,
		Balance:     b.Balance,
	}
	if !b.LastMovementAt.IsZero() {
		resp.LastMovementAt = &b.LastMovementAt
	}
	return resp
}

// GeneralMovementResponse is one row of account history.
type GeneralMovementResponse struct {
	LineID         string      `json:"lineId"`
	RecorderID     string      `json:"recorderId"`
	RecorderType   string      `json:"recorderType"`
	Period         time.Time   `json:"period"`
	AccountCode    string      `json:"accountCode"`
	CounterpartyID *string     `json:"counterpartyId,omitempty"`
	Debit          types.Money `json:"debit"`
	Credit         types.Money `json:"credit"`
	RunningBalance types.Money `json:"runningBalance"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// FromGeneralMovement converts a general ledger row to a response DTO.
func FromGeneralMovement(m entity.GeneralMovement) GeneralMovementResponse {
	resp := GeneralMovementResponse{
		LineID:         m.LineID.String(),
		RecorderID:     m.RecorderID.String(),
		RecorderType:   m.RecorderType,
		Period:         m.Period,
		AccountCode:    m.AccountCode,
		Debit:          m.Debit,
		Credit:         m.Credit,
		RunningBalance: m.RunningBalance,
		CreatedAt:      m.CreatedAt,
	}
	if m.CounterpartyID != nil {
		s := m.CounterpartyID.String()
		resp.CounterpartyID = &s
	}
	return resp
}

// FromGeneralMovements converts a slice of general ledger rows.
func FromGeneralMovements(movements []entity.GeneralMovement) []GeneralMovementResponse {
	result := make([]GeneralMovementResponse, len(movements))
	for i, m := range movements {
		result[i] = FromGeneralMovement(m)
	}
	return result
}
