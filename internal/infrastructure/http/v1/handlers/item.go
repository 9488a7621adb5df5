package handlers

import (
	"stockyard/internal/domain/catalogs/item"
	"stockyard/internal/infrastructure/http/v1/dto"
)

// ItemHTTPHandler handles item catalog endpoints.
type ItemHTTPHandler = CatalogHandler[
	*item.Item,
	dto.CreateItemRequest,
	dto.UpdateItemRequest,
]

// NewItemHandler creates the item catalog handler.
func NewItemHandler(
	base *BaseHandler,
	service *item.Service,
) *ItemHTTPHandler {
	config := CatalogHandlerConfig[
		*item.Item,
		dto.CreateItemRequest,
		dto.UpdateItemRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "item",

		MapCreateDTO: func(req dto.CreateItemRequest) *item.Item {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateItemRequest, existing *item.Item) *item.Item {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *item.Item) any {
			return dto.FromItem(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
