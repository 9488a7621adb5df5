package dto

import (
	"time"

	"stockyard/internal/core/apperror"
	"stockyard/internal/core/id"
	"stockyard/internal/domain/reports"
)

// Report dates accept both plain dates and full timestamps.
const (
	dateLayout = "2006-01-02"
)

func parseReportDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func parseIDList(values []string, field string) ([]id.ID, error) {
	if len(values) == 0 {
		return nil, nil
	}
	ids := make([]id.ID, 0, len(values))
	for _, v := range values {
		parsed, err := id.Parse(v)
		if err != nil {
			return nil, apperror.NewValidation("invalid " + field + ": " + v)
		}
		ids = append(ids, parsed)
	}
	return ids, nil
}

// StockBalanceReportRequest is the query surface of the stock balance report.
type StockBalanceReportRequest struct {
	AsOfDate          string   `form:"asOfDate"`
	WarehouseIDs      []string `form:"warehouseId"`
	ItemIDs           []string `form:"itemId"`
	OnlyBelowMinStock bool     `form:"onlyBelowMinStock"`
	ExcludeZero       bool     `form:"excludeZero"`
	Limit             int      `form:"limit"`
	Offset            int      `form:"offset"`
}

// ToFilter converts the request to a domain filter.
func (r *StockBalanceReportRequest) ToFilter() (reports.StockBalanceReportFilter, error) {
	filter := reports.StockBalanceReportFilter{
		OnlyBelowMinStock: r.OnlyBelowMinStock,
		ExcludeZero:       r.ExcludeZero,
		Limit:             r.Limit,
		Offset:            r.Offset,
	}

	if r.AsOfDate != "" {
		date, err := parseReportDate(r.AsOfDate)
		if err != nil {
			return filter, apperror.NewValidation("invalid asOfDate format")
		}
		filter.AsOfDate = &date
	}

	var err error
	if filter.WarehouseIDs, err = parseIDList(r.WarehouseIDs, "warehouseId"); err != nil {
		return filter, err
	}
	if filter.ItemIDs, err = parseIDList(r.ItemIDs, "itemId"); err != nil {
		return filter, err
	}
	return filter, nil
}

// StockTurnoverReportRequest is the query surface of the turnover report.
type StockTurnoverReportRequest struct {
	FromDate     string   `form:"fromDate" binding:"required"`
	ToDate       string   `form:"toDate" binding:"required"`
	WarehouseIDs []string `form:"warehouseId"`
	ItemIDs      []string `form:"itemId"`
	IncludeZero  bool     `form:"includeZero"`
	Limit        int      `form:"limit"`
	Offset       int      `form:"offset"`
}

// ToFilter converts the request to a domain filter.
func (r *StockTurnoverReportRequest) ToFilter() (reports.StockTurnoverReportFilter, error) {
	filter := reports.StockTurnoverReportFilter{
		IncludeZero: r.IncludeZero,
		Limit:       r.Limit,
		Offset:      r.Offset,
	}

	var err error
	if filter.FromDate, err = parseReportDate(r.FromDate); err != nil {
		return filter, apperror.NewValidation("invalid fromDate format")
	}
	if filter.ToDate, err = parseReportDate(r.ToDate); err != nil {
		return filter, apperror.NewValidation("invalid toDate format")
	}
	if filter.WarehouseIDs, err = parseIDList(r.WarehouseIDs, "warehouseId"); err != nil {
		return filter, err
	}
	if filter.ItemIDs, err = parseIDList(r.ItemIDs, "itemId"); err != nil {
		return filter, err
	}
	return filter, nil
}

// CustomerStatementRequest is the query surface of the customer statement.
type CustomerStatementRequest struct {
	CustomerID string `form:"customerId" binding:"required"`
	FromDate   string `form:"fromDate" binding:"required"`
	ToDate     string `form:"toDate" binding:"required"`
}

// ToFilter converts the request to a domain filter.
func (r *CustomerStatementRequest) ToFilter() (reports.CustomerStatementFilter, error) {
	var filter reports.CustomerStatementFilter

	customerID, err := id.Parse(r.CustomerID)
	if err != nil {
		return filter, apperror.NewValidation("invalid customerId")
	}
	filter.CustomerID = customerID

	if filter.FromDate, err = parseReportDate(r.FromDate); err != nil {
		return filter, apperror.NewValidation("invalid fromDate format")
	}
	if filter.ToDate, err = parseReportDate(r.ToDate); err != nil {
		return filter, apperror.NewValidation("invalid toDate format")
	}
	return filter, nil
}

// DocumentJournalRequest is the query surface of the document journal.
type DocumentJournalRequest struct {
	FromDate        string   `form:"fromDate"`
	ToDate          string   `form:"toDate"`
	DocumentTypes   []string `form:"documentType"`
	Statuses        []string `form:"status"`
	Posted          *bool    `form:"posted"`
	NumberContains  string   `form:"number"`
	WarehouseIDs    []string `form:"warehouseId"`
	CounterpartyIDs []string `form:"counterpartyId"`
	SortBy          string   `form:"sortBy"`
	SortOrder       string   `form:"sortOrder"`
	Limit           int      `form:"limit"`
	Offset          int      `form:"offset"`
}

// ToFilter converts the request to a domain filter.
func (r *DocumentJournalRequest) ToFilter() (reports.DocumentJournalFilter, error) {
	filter := reports.DocumentJournalFilter{
		DocumentTypes:  r.DocumentTypes,
		Statuses:       r.Statuses,
		Posted:         r.Posted,
		NumberContains: r.NumberContains,
		SortBy:         r.SortBy,
		SortOrder:      r.SortOrder,
		Limit:          r.Limit,
		Offset:         r.Offset,
	}

	if r.FromDate != "" {
		date, err := parseReportDate(r.FromDate)
		if err != nil {
			return filter, apperror.NewValidation("invalid fromDate format")
		}
		filter.FromDate = &date
	}
	if r.ToDate != "" {
		date, err := parseReportDate(r.ToDate)
		if err != nil {
			return filter, apperror.NewValidation("invalid toDate format")
		}
		filter.ToDate = &date
	}

	var err error
	if filter.WarehouseIDs, err = parseIDList(r.WarehouseIDs, "warehouseId"); err != nil {
		return filter, err
	}
	if filter.CounterpartyIDs, err = parseIDList(r.CounterpartyIDs, "counterpartyId"); err != nil {
		return filter, err
	}
	return filter, nil
}
