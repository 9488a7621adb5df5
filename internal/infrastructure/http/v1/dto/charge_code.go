package dto

import (
	"stockyard/internal/core/entity"
	"stockyard/internal/core/types"
	"stockyard/internal/domain/billing"
	"stockyard/internal/domain/catalogs/chargecode"
)

// --- Request DTOs ---

// CreateChargeCodeRequest is the request body for creating a charge code.
type CreateChargeCodeRequest struct {
	Code        string             `json:"code"`
	Name        string             `json:"name" binding:"required"`
	ChargeType  billing.ChargeType `json:"chargeType" binding:"required,chargetype"`
	DefaultRate types.Money        `json:"defaultRate"`
	Unit        *string            `json:"unit"`
	IsActive    bool               `json:"isActive"`
	Description *string            `json:"description"`
	ParentID    *string            `json:"parentId"`
	IsFolder    bool               `json:"isFolder"`
	Attributes  entity.Attributes  `json:"attributes"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateChargeCodeRequest) ToEntity() *chargecode.ChargeCode {
	cc := chargecode.NewChargeCode(r.Code, r.Name, r.ChargeType, r.DefaultRate)
	cc.Unit = r.Unit
	cc.IsActive = r.IsActive
	cc.Description = r.Description
	cc.ParentID = r.ParentID
	cc.IsFolder = r.IsFolder
	cc.Attributes = r.Attributes
	return cc
}

// UpdateChargeCodeRequest is the request body for updating a charge code.
type UpdateChargeCodeRequest struct {
	Code        string             `json:"code"`
	Name        string             `json:"name" binding:"required"`
	ChargeType  billing.ChargeType `json:"chargeType" binding:"required,chargetype"`
	DefaultRate types.Money        `json:"defaultRate"`
	Unit        *string            `json:"unit,omitempty"`
	IsActive    bool               `json:"isActive"`
	Description *string            `json:"description,omitempty"`
	ParentID    *string            `json:"parentId,omitempty"`
	IsFolder    bool               `json:"isFolder"`
	Attributes  entity.Attributes  `json:"attributes"`
	Version     int                `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateChargeCodeRequest) ApplyTo(cc *chargecode.ChargeCode) {
	cc.Code = r.Code
	cc.Name = r.Name
	cc.ChargeType = r.ChargeType
	cc.DefaultRate = r.DefaultRate
	cc.Unit = r.Unit
	cc.IsActive = r.IsActive
	cc.Description = r.Description
	cc.ParentID = r.ParentID
	cc.IsFolder = r.IsFolder
	cc.Attributes = r.Attributes
	cc.Version = r.Version
}

// --- Response DTOs ---

// ChargeCodeResponse is the response body for a charge code.
type ChargeCodeResponse struct {
	CatalogResponse
	ChargeType  billing.ChargeType `json:"chargeType"`
	DefaultRate types.Money        `json:"defaultRate"`
	Unit        *string            `json:"unit,omitempty"`
	IsActive    bool               `json:"isActive"`
	Description *string            `json:"description,omitempty"`
}

// FromChargeCode creates response DTO from domain entity.
func FromChargeCode(cc *chargecode.ChargeCode) *ChargeCodeResponse {
	return &ChargeCodeResponse{
		CatalogResponse: FromCatalog(cc.Catalog),
		ChargeType:      cc.ChargeType,
		DefaultRate:     cc.DefaultRate,
		Unit:            cc.Unit,
		IsActive:        cc.IsActive,
		Description:     cc.Description,
	}
}
