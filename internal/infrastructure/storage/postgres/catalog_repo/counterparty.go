package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"stockyard/internal/core/apperror"
	"stockyard/internal/domain/catalogs/counterparty"
	"stockyard/internal/infrastructure/storage/postgres"
)

const counterpartyTable = "cat_counterparties"

// CounterpartyRepo implements counterparty.Repository.
type CounterpartyRepo struct {
	*BaseCatalogRepo[*counterparty.Counterparty]
}

// NewCounterpartyRepo creates a new counterparty repository.
func NewCounterpartyRepo(txManager *postgres.TxManager) *CounterpartyRepo {
	return &CounterpartyRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			counterpartyTable,
			postgres.ExtractDBColumns[counterparty.Counterparty](),
			func() *counterparty.Counterparty { return &counterparty.Counterparty{} },
		),
	}
}

// FindByTaxID retrieves counterparty by tax identification number.
func (r *CounterpartyRepo) FindByTaxID(ctx context.Context, taxID string) (*counterparty.Counterparty, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"tax_id": taxID}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	cp, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("counterparty", taxID)
		}
		return nil, err
	}
	return cp, nil
}
