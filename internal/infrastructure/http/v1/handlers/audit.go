package handlers

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"

	"stockyard/internal/core/apperror"
	"stockyard/internal/core/id"
	"stockyard/internal/infrastructure/storage/postgres"
)

// AuditHandler exposes the change history recorded in the audit trail.
type AuditHandler struct {
	*BaseHandler
	audit *postgres.AuditService
}

// NewAuditHandler creates an audit handler.
func NewAuditHandler(base *BaseHandler, audit *postgres.AuditService) *AuditHandler {
	return &AuditHandler{BaseHandler: base, audit: audit}
}

// AuditEntryResponse is a single audit record in API responses.
type AuditEntryResponse struct {
	ID         string          `json:"id"`
	EntityType string          `json:"entityType"`
	EntityID   string          `json:"entityId"`
	Action     string          `json:"action"`
	UserID     string          `json:"userId,omitempty"`
	UserName   string          `json:"userName,omitempty"`
	Changes    json.RawMessage `json:"changes,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// GetEntityHistory handles GET /audit/:entityType/:id.
func (h *AuditHandler) GetEntityHistory(c *gin.Context) {
	entityType := c.Param("entityType")

	entityID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid entity id"))
		return
	}

	limit := h.ParseIntQuery(c, "limit", 50)
	if limit > 500 {
		limit = 500
	}

	entries, err := h.audit.GetEntityHistory(c.Request.Context(), entityType, entityID, limit)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, AuditEntryResponse{
			ID:         e.ID.String(),
			EntityType: e.EntityType,
			EntityID:   e.EntityID.String(),
			Action:     string(e.Action),
			UserID:     e.UserID,
			UserName:   e.UserName,
			Changes:    e.Changes,
			CreatedAt:  e.CreatedAt,
		})
	}

	h.OK(c, gin.H{"items": items})
}
