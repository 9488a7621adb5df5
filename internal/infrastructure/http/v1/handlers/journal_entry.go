package handlers

import (
	"github.com/gin-gonic/gin"

	"stockyard/internal/domain/documents/journal_entry"
	"stockyard/internal/infrastructure/http/v1/dto"
)

// JournalEntryHandler handles HTTP requests for manual journal entries.
type JournalEntryHandler struct {
	*BaseDocumentHandler[*journal_entry.JournalEntry, dto.CreateJournalEntryRequest, dto.UpdateJournalEntryRequest]
	service *journal_entry.Service
}

// NewJournalEntryHandler creates a new journal entry handler.
func NewJournalEntryHandler(base *BaseHandler, service *journal_entry.Service) *JournalEntryHandler {
	cfg := BaseDocumentHandlerConfig[*journal_entry.JournalEntry, dto.CreateJournalEntryRequest, dto.UpdateJournalEntryRequest]{
		Service:    service,
		EntityName: "journal-entry",
		MapCreateDTO: func(req dto.CreateJournalEntryRequest) (*journal_entry.JournalEntry, error) {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateJournalEntryRequest, existing *journal_entry.JournalEntry) (*journal_entry.JournalEntry, error) {
			if err := req.ApplyTo(existing); err != nil {
				return nil, err
			}
			return existing, nil
		},
		MapToDTO: func(entity *journal_entry.JournalEntry) any {
			return dto.FromJournalEntry(entity)
		},
		IsPostImmediately: func(req dto.CreateJournalEntryRequest) bool {
			return req.PostImmediately
		},
	}

	return &JournalEntryHandler{
		BaseDocumentHandler: NewBaseDocumentHandler(base, cfg),
		service:             service,
	}
}

// List handles GET /document/journal-entry - list with filtering.
func (h *JournalEntryHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := journal_entry.ListFilter{ListFilter: h.baseDocFilter(c)}
	filter.AccountCode = h.queryString(c, "accountCode")
	filter.Status = h.queryString(c, "status")
	filter.Posted = h.queryBool(c, "posted")
	filter.DateFrom = h.queryTime(c, "dateFrom")
	filter.DateTo = h.queryTime(c, "dateTo")

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	respondList(c, result, func(doc *journal_entry.JournalEntry) any {
		return dto.FromJournalEntry(doc)
	})
}
