package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stockyard/internal/core/id"
	"stockyard/internal/domain"
	"stockyard/internal/infrastructure/http/v1/dto"
)

// baseDocFilter reads the pagination and search params shared by all
// document list endpoints. Documents default to newest first.
func (h *BaseHandler) baseDocFilter(c *gin.Context) domain.ListFilter {
	filter := domain.DefaultListFilter()
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.DefaultQuery("orderBy", "date DESC")
	filter.IncludeDeleted = c.Query("includeDeleted") == "true"
	return filter
}

// queryID parses an optional UUID query param; malformed values are ignored.
func (h *BaseHandler) queryID(c *gin.Context, key string) *id.ID {
	val := c.Query(key)
	if val == "" {
		return nil
	}
	parsed, err := id.Parse(val)
	if err != nil {
		return nil
	}
	return &parsed
}

// queryBool parses an optional boolean query param.
func (h *BaseHandler) queryBool(c *gin.Context, key string) *bool {
	val := c.Query(key)
	if val == "" {
		return nil
	}
	b := val == "true"
	return &b
}

// queryString returns an optional string query param.
func (h *BaseHandler) queryString(c *gin.Context, key string) *string {
	val := c.Query(key)
	if val == "" {
		return nil
	}
	return &val
}

// queryTime parses an optional RFC3339 (or date-only) query param.
func (h *BaseHandler) queryTime(c *gin.Context, key string) *time.Time {
	val := c.Query(key)
	if val == "" {
		return nil
	}
	if parsed, err := time.Parse(time.RFC3339, val); err == nil {
		return &parsed
	}
	if parsed, err := time.Parse("2006-01-02", val); err == nil {
		return &parsed
	}
	return nil
}

// respondList maps a paginated result to a list response.
func respondList[T any](c *gin.Context, result domain.ListResult[T], mapTo func(T) any) {
	items := make([]any, len(result.Items))
	for i, item := range result.Items {
		items[i] = mapTo(item)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}
