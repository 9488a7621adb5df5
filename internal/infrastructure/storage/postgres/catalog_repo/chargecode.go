package catalog_repo

import (
	"stockyard/internal/domain/catalogs/chargecode"
	"stockyard/internal/infrastructure/storage/postgres"
)

const chargeCodeTable = "cat_charge_codes"

// ChargeCodeRepo implements chargecode.Repository.
type ChargeCodeRepo struct {
	*BaseCatalogRepo[*chargecode.ChargeCode]
}

// NewChargeCodeRepo creates a new charge code repository.
func NewChargeCodeRepo(txManager *postgres.TxManager) *ChargeCodeRepo {
	return &ChargeCodeRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			chargeCodeTable,
			postgres.ExtractDBColumns[chargecode.ChargeCode](),
			func() *chargecode.ChargeCode { return &chargecode.ChargeCode{} },
		),
	}
}
