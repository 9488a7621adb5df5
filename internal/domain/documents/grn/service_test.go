package grn

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockyard/internal/core/apperror"
	"stockyard/internal/core/id"
	"stockyard/internal/core/types"
	"stockyard/internal/domain/catalogs/item"
)

type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeRepo records the persisted document; unused methods come from the
// embedded interface and panic if called.
type fakeRepo struct {
	Repository

	created *GoodsReceiptNote
	lines   []Line
}

func (r *fakeRepo) Create(ctx context.Context, doc *GoodsReceiptNote) error {
	r.created = doc
	return nil
}

func (r *fakeRepo) SaveLines(ctx context.Context, docID id.ID, lines []Line) error {
	r.lines = lines
	return nil
}

type fakeItems struct {
	items map[id.ID]*item.Item
}

func (f *fakeItems) GetByID(ctx context.Context, itemID id.ID) (*item.Item, error) {
	it, ok := f.items[itemID]
	if !ok {
		return nil, apperror.NewNotFound("item", itemID)
	}
	return it, nil
}

func newTestItem(weight, volume string, trackBatch bool) *item.Item {
	it := item.NewItem("TEST", "Test item", item.KindGoods)
	it.UnitWeight = decimal.RequireFromString(weight)
	it.UnitVolume = decimal.RequireFromString(volume)
	it.TrackBatch = trackBatch
	return it
}

func TestCreate_DerivesLineMeasuresFromItem(t *testing.T) {
	itemID := id.New()
	repo := &fakeRepo{}
	svc := NewService(repo, &fakeItems{items: map[id.ID]*item.Item{
		itemID: newTestItem("12.5", "0.48", false),
	}}, nil, nil, fakeTxManager{})

	doc := NewGoodsReceiptNote(id.New(), id.New())
	doc.Number = "GRN-TEST-1"
	doc.AddLine(Line{ItemID: itemID, Quantity: types.Quantity(2_0000), UnitCost: types.MustMoney("3.00")})

	require.NoError(t, svc.Create(context.Background(), doc))

	require.Len(t, repo.lines, 1)
	assert.Equal(t, "25.000", repo.lines[0].Weight.StringFixed(3))
	assert.Equal(t, "0.960", repo.lines[0].Volume.StringFixed(3))
	assert.Equal(t, "25.000", doc.TotalWeight.StringFixed(3))
	assert.Equal(t, "0.960", doc.TotalVolume.StringFixed(3))
}

func TestCreate_BatchTrackedItemRequiresBatchNumber(t *testing.T) {
	itemID := id.New()
	svc := NewService(&fakeRepo{}, &fakeItems{items: map[id.ID]*item.Item{
		itemID: newTestItem("1", "0.1", true),
	}}, nil, nil, fakeTxManager{})

	doc := NewGoodsReceiptNote(id.New(), id.New())
	doc.Number = "GRN-TEST-2"
	doc.AddLine(Line{ItemID: itemID, Quantity: types.Quantity(1_0000), UnitCost: types.MustMoney("1.00")})

	err := svc.Create(context.Background(), doc)
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	assert.Equal(t, 1, appErr.Details["lineNo"])
}

func TestCreate_BatchTrackedItemWithBatchNumber(t *testing.T) {
	itemID := id.New()
	repo := &fakeRepo{}
	svc := NewService(repo, &fakeItems{items: map[id.ID]*item.Item{
		itemID: newTestItem("1", "0.1", true),
	}}, nil, nil, fakeTxManager{})

	doc := NewGoodsReceiptNote(id.New(), id.New())
	doc.Number = "GRN-TEST-3"
	doc.AddLine(Line{
		ItemID:      itemID,
		Quantity:    types.Quantity(1_0000),
		UnitCost:    types.MustMoney("1.00"),
		BatchNumber: "LOT-2026-001",
	})

	require.NoError(t, svc.Create(context.Background(), doc))
	require.Len(t, repo.lines, 1)
	assert.Equal(t, "LOT-2026-001", repo.lines[0].BatchNumber)
}
