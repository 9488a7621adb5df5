package dto

import (
	"github.com/shopspring/decimal"

	"stockyard/internal/core/entity"
	"stockyard/internal/core/types"
	"stockyard/internal/domain/catalogs/item"
)

// --- Request DTOs ---

// CreateItemRequest is the request body for creating an item.
type CreateItemRequest struct {
	Code        string            `json:"code"`
	Name        string            `json:"name" binding:"required"`
	Kind        item.ItemKind     `json:"kind" binding:"required"`
	SKU         *string           `json:"sku"`
	Barcode     *string           `json:"barcode"`
	Unit        string            `json:"unit"`
	UnitWeight  decimal.Decimal   `json:"unitWeight"`
	UnitVolume  decimal.Decimal   `json:"unitVolume"`
	MinStock    float64           `json:"minStock"`
	TrackBatch  bool              `json:"trackBatch"`
	Description *string           `json:"description"`
	ParentID    *string           `json:"parentId"`
	IsFolder    bool              `json:"isFolder"`
	Attributes  entity.Attributes `json:"attributes"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateItemRequest) ToEntity() *item.Item {
	it := item.NewItem(r.Code, r.Name, r.Kind)
	it.SKU = r.SKU
	it.Barcode = r.Barcode
	if r.Unit != "" {
		it.Unit = r.Unit
	}
	it.UnitWeight = r.UnitWeight
	it.UnitVolume = r.UnitVolume
	it.MinStock = types.NewQuantityFromFloat64(r.MinStock)
	it.TrackBatch = r.TrackBatch
	it.Description = r.Description
	it.ParentID = r.ParentID
	it.IsFolder = r.IsFolder
	it.Attributes = r.Attributes
	return it
}

// UpdateItemRequest is the request body for updating an item.
type UpdateItemRequest struct {
	Code        string            `json:"code"`
	Name        string            `json:"name" binding:"required"`
	Kind        item.ItemKind     `json:"kind" binding:"required"`
	SKU         *string           `json:"sku,omitempty"`
	Barcode     *string           `json:"barcode,omitempty"`
	Unit        string            `json:"unit"`
	UnitWeight  decimal.Decimal   `json:"unitWeight"`
	UnitVolume  decimal.Decimal   `json:"unitVolume"`
	MinStock    float64           `json:"minStock"`
	TrackBatch  bool              `json:"trackBatch"`
	Description *string           `json:"description,omitempty"`
	ParentID    *string           `json:"parentId,omitempty"`
	IsFolder    bool              `json:"isFolder"`
	Attributes  entity.Attributes `json:"attributes"`
	Version     int               `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateItemRequest) ApplyTo(it *item.Item) {
	it.Code = r.Code
	it.Name = r.Name
	it.Kind = r.Kind
	it.SKU = r.SKU
	it.Barcode = r.Barcode
	it.Unit = r.Unit
	it.UnitWeight = r.UnitWeight
	it.UnitVolume = r.UnitVolume
	it.MinStock = types.NewQuantityFromFloat64(r.MinStock)
	it.TrackBatch = r.TrackBatch
	it.Description = r.Description
	it.ParentID = r.ParentID
	it.IsFolder = r.IsFolder
	it.Attributes = r.Attributes
	it.Version = r.Version
}

// --- Response DTOs ---

// ItemResponse is the response body for an item.
type ItemResponse struct {
	CatalogResponse
	Kind        item.ItemKind   `json:"kind"`
	SKU         *string         `json:"sku,omitempty"`
	Barcode     *string         `json:"barcode,omitempty"`
	Unit        string          `json:"unit"`
	UnitWeight  decimal.Decimal `json:"unitWeight"`
	UnitVolume  decimal.Decimal `json:"unitVolume"`
	MinStock    types.Quantity  `json:"minStock"`
	TrackBatch  bool            `json:"trackBatch"`
	Description *string         `json:"description,omitempty"`
}

// FromItem creates response DTO from domain entity.
func FromItem(it *item.Item) *ItemResponse {
	return &ItemResponse{
		CatalogResponse: FromCatalog(it.Catalog),
		Kind:            it.Kind,
		SKU:             it.SKU,
		Barcode:         it.Barcode,
		Unit:            it.Unit,
		UnitWeight:      it.UnitWeight,
		UnitVolume:      it.UnitVolume,
		MinStock:        it.MinStock,
		TrackBatch:      it.TrackBatch,
		Description:     it.Description,
	}
}
