package handlers

import (
	"stockyard/internal/domain/catalogs/chargecode"
	"stockyard/internal/infrastructure/http/v1/dto"
)

// ChargeCodeHTTPHandler handles storage tariff catalog endpoints.
type ChargeCodeHTTPHandler = CatalogHandler[
	*chargecode.ChargeCode,
	dto.CreateChargeCodeRequest,
	dto.UpdateChargeCodeRequest,
]

// NewChargeCodeHandler creates the charge code catalog handler.
func NewChargeCodeHandler(
	base *BaseHandler,
	service *chargecode.Service,
) *ChargeCodeHTTPHandler {
	config := CatalogHandlerConfig[
		*chargecode.ChargeCode,
		dto.CreateChargeCodeRequest,
		dto.UpdateChargeCodeRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "chargeCode",

		MapCreateDTO: func(req dto.CreateChargeCodeRequest) *chargecode.ChargeCode {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateChargeCodeRequest, existing *chargecode.ChargeCode) *chargecode.ChargeCode {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *chargecode.ChargeCode) any {
			return dto.FromChargeCode(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
