package stock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockyard/internal/core/apperror"
	"stockyard/internal/core/entity"
	"stockyard/internal/core/id"
	"stockyard/internal/core/types"
)

type rebuildCall struct {
	warehouseID id.ID
	itemID      id.ID
	from        time.Time
}

type mockRepo struct {
	Repository

	created  []entity.StockMovement
	deleted  []id.ID
	rebuilds []rebuildCall

	movementsByRecorder []entity.StockMovement
	balances            map[id.ID]entity.StockBalance
}

func (m *mockRepo) CreateMovements(ctx context.Context, movements []entity.StockMovement) error {
	m.created = append(m.created, movements...)
	return nil
}

func (m *mockRepo) DeleteMovementsByRecorder(ctx context.Context, recorderID id.ID, beforeVersion int) error {
	m.deleted = append(m.deleted, recorderID)
	return nil
}

func (m *mockRepo) GetMovementsByRecorder(ctx context.Context, recorderID id.ID) ([]entity.StockMovement, error) {
	return m.movementsByRecorder, nil
}

func (m *mockRepo) RebuildRunningBalances(ctx context.Context, warehouseID, itemID id.ID, from time.Time) error {
	m.rebuilds = append(m.rebuilds, rebuildCall{warehouseID, itemID, from})
	return nil
}

func (m *mockRepo) GetBalanceForUpdate(ctx context.Context, warehouseID, itemID id.ID) (entity.StockBalance, error) {
	return m.balances[itemID], nil
}

func (m *mockRepo) GetBalancesByItem(ctx context.Context, itemID id.ID) ([]entity.StockBalance, error) {
	var out []entity.StockBalance
	if b, ok := m.balances[itemID]; ok {
		out = append(out, b)
	}
	return out, nil
}

func movement(warehouseID, itemID id.ID, period time.Time, qty types.Quantity) entity.StockMovement {
	return entity.StockMovement{
		MovementBase: entity.MovementBase{
			LineID:     id.New(),
			RecorderID: id.New(),
			Period:     period,
			RecordType: entity.RecordTypeReceipt,
		},
		WarehouseID: warehouseID,
		ItemID:      itemID,
		Quantity:    qty,
	}
}

func TestRecordMovements_RebuildsFromEarliestPeriod(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	wh := id.New()
	item := id.New()
	jan := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	// the backdated January movement must drive the rebuild start
	err := svc.RecordMovements(ctx, []entity.StockMovement{
		movement(wh, item, mar, types.Quantity(10_0000)),
		movement(wh, item, jan, types.Quantity(5_0000)),
	})
	require.NoError(t, err)

	assert.Len(t, repo.created, 2)
	require.Len(t, repo.rebuilds, 1)
	assert.Equal(t, wh, repo.rebuilds[0].warehouseID)
	assert.Equal(t, item, repo.rebuilds[0].itemID)
	assert.True(t, repo.rebuilds[0].from.Equal(jan))
}

func TestRecordMovements_RebuildsPerDimension(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	wh := id.New()
	period := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	err := svc.RecordMovements(ctx, []entity.StockMovement{
		movement(wh, id.New(), period, types.Quantity(1_0000)),
		movement(wh, id.New(), period, types.Quantity(2_0000)),
	})
	require.NoError(t, err)
	assert.Len(t, repo.rebuilds, 2)
}

func TestRecordMovements_Validation(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	wh := id.New()
	item := id.New()
	period := time.Now()

	t.Run("zero quantity", func(t *testing.T) {
		m := movement(wh, item, period, 0)
		err := svc.RecordMovements(ctx, []entity.StockMovement{m})
		require.Error(t, err)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeValidation, appErr.Code)
	})

	t.Run("missing recorder", func(t *testing.T) {
		m := movement(wh, item, period, types.Quantity(1_0000))
		m.RecorderID = id.Nil()
		err := svc.RecordMovements(ctx, []entity.StockMovement{m})
		require.Error(t, err)
	})

	t.Run("missing dimensions", func(t *testing.T) {
		m := movement(id.Nil(), item, period, types.Quantity(1_0000))
		err := svc.RecordMovements(ctx, []entity.StockMovement{m})
		require.Error(t, err)
	})

	assert.Empty(t, repo.created, "invalid movements must not reach storage")
}

func TestReverseMovements(t *testing.T) {
	wh := id.New()
	item := id.New()
	recorder := id.New()
	period := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	existing := movement(wh, item, period, types.Quantity(3_0000))
	existing.RecorderID = recorder

	repo := &mockRepo{movementsByRecorder: []entity.StockMovement{existing}}
	svc := NewService(repo)

	err := svc.ReverseMovements(context.Background(), recorder, 7)
	require.NoError(t, err)

	assert.Equal(t, []id.ID{recorder}, repo.deleted)
	require.Len(t, repo.rebuilds, 1)
	assert.True(t, repo.rebuilds[0].from.Equal(period))
}

func TestCheckAndReserveStock(t *testing.T) {
	wh := id.New()
	item := id.New()

	repo := &mockRepo{balances: map[id.ID]entity.StockBalance{
		item: {WarehouseID: wh, ItemID: item, Quantity: types.Quantity(10_0000)},
	}}
	svc := NewService(repo)
	ctx := context.Background()

	err := svc.CheckAndReserveStock(ctx, []StockReservation{
		{WarehouseID: wh, ItemID: item, RequiredQty: types.Quantity(10_0000)},
	})
	assert.NoError(t, err)

	err = svc.CheckAndReserveStock(ctx, []StockReservation{
		{WarehouseID: wh, ItemID: item, RequiredQty: types.Quantity(10_0001)},
	})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInsufficientStock, appErr.Code)
}

func TestGetItemAvailability(t *testing.T) {
	item := id.New()
	repo := &mockRepo{balances: map[id.ID]entity.StockBalance{
		item: {ItemID: item, Quantity: types.Quantity(42_0000)},
	}}
	svc := NewService(repo)

	total, err := svc.GetItemAvailability(context.Background(), item)
	require.NoError(t, err)
	assert.Equal(t, types.Quantity(42_0000), total)
}
