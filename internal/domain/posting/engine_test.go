package posting

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
	"stockyard/internal/core/workflow"
	"stockyard/internal/domain/ledgers/general"
	stockledger "stockyard/internal/domain/ledgers/stock"
)

// fakeTxManager runs the function directly, recording invocations.
type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fakeStockRepo struct {
	stockledger.Repository

	created []entity.StockMovement
	deletes []int
	balance types.Quantity
}

func (r *fakeStockRepo) CreateMovements(ctx context.Context, movements []entity.StockMovement) error {
	r.created = append(r.created, movements...)
	return nil
}

func (r *fakeStockRepo) DeleteMovementsByRecorder(ctx context.Context, recorderID id.ID, beforeVersion int) error {
	r.deletes = append(r.deletes, beforeVersion)
	return nil
}

func (r *fakeStockRepo) GetMovementsByRecorder(ctx context.Context, recorderID id.ID) ([]entity.StockMovement, error) {
	return nil, nil
}

func (r *fakeStockRepo) RebuildRunningBalances(ctx context.Context, warehouseID, itemID id.ID, from time.Time) error {
	return nil
}

func (r *fakeStockRepo) GetBalanceForUpdate(ctx context.Context, warehouseID, itemID id.ID) (entity.StockBalance, error) {
	return entity.StockBalance{WarehouseID: warehouseID, ItemID: itemID, Quantity: r.balance}, nil
}

type fakeGeneralRepo struct {
	general.Repository

	created []entity.GeneralMovement
	deletes []int
}

func (r *fakeGeneralRepo) CreateMovements(ctx context.Context, movements []entity.GeneralMovement) error {
	r.created = append(r.created, movements...)
	return nil
}

func (r *fakeGeneralRepo) DeleteMovementsByRecorder(ctx context.Context, recorderID id.ID, beforeVersion int) error {
	r.deletes = append(r.deletes, beforeVersion)
	return nil
}

func (r *fakeGeneralRepo) GetMovementsByRecorder(ctx context.Context, recorderID id.ID) ([]entity.GeneralMovement, error) {
	return nil, nil
}

func (r *fakeGeneralRepo) RebuildRunningBalances(ctx context.Context, accountCode string, from time.Time) error {
	return nil
}

// testDoc is a minimal postable document issuing one receipt movement.
type testDoc struct {
	entity.Document

	warehouseID id.ID
	itemID      id.ID
	qty         types.Quantity
	reserve     bool
}

func newTestDoc(status workflow.Status) *testDoc {
	doc := &testDoc{
		warehouseID: id.New(),
		itemID:      id.New(),
		qty:         types.Quantity(5_0000),
	}
	doc.Document = entity.NewDocument()
	doc.Status = status
	doc.Date = time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	return doc
}

func (d *testDoc) GetDocumentType() string { return "TestDoc" }

func (d *testDoc) GenerateMovements(ctx context.Context) (*MovementSet, error) {
	set := &MovementSet{
		Stock: []entity.StockMovement{{
			WarehouseID: d.warehouseID,
			ItemID:      d.itemID,
			Quantity:    d.qty,
			MovementBase: entity.MovementBase{
				RecordType: entity.RecordTypeReceipt,
			},
		}},
	}
	if d.reserve {
		set.Stock[0].RecordType = entity.RecordTypeExpense
		set.Reservations = []stockledger.StockReservation{{
			WarehouseID: d.warehouseID,
			ItemID:      d.itemID,
			RequiredQty: d.qty,
		}}
	}
	return set, nil
}

func newEngine(stockRepo *fakeStockRepo, generalRepo *fakeGeneralRepo) (*Engine, *fakeTxManager) {
	txm := &fakeTxManager{}
	return NewEngine(txm, stockledger.NewService(stockRepo), general.NewService(generalRepo)), txm
}

func TestPost_RecordsMovementsAndMarksDocument(t *testing.T) {
	stockRepo := &fakeStockRepo{}
	engine, txm := newEngine(stockRepo, &fakeGeneralRepo{})

	doc := newTestDoc(workflow.StatusDraft)
	saved := false

	err := engine.Post(context.Background(), doc, func(ctx context.Context) error {
		saved = true
		return nil
	})
	require.NoError(t, err)

	assert.True(t, doc.Posted)
	assert.Equal(t, 1, doc.PostedVersion)
	assert.True(t, saved)
	assert.Equal(t, 1, txm.calls)

	require.Len(t, stockRepo.created, 1)
	m := stockRepo.created[0]
	assert.Equal(t, doc.ID, m.RecorderID)
	assert.Equal(t, "TestDoc", m.RecorderType)
	assert.Equal(t, 1, m.RecorderVersion)
	assert.True(t, m.Period.Equal(doc.Date), "period defaults to document date")
	assert.False(t, id.IsNil(m.LineID))

	// first posting has nothing to reverse
	assert.Empty(t, stockRepo.deletes)
}

func TestPost_AlreadyPostedRejected(t *testing.T) {
	stockRepo := &fakeStockRepo{}
	engine, _ := newEngine(stockRepo, &fakeGeneralRepo{})

	doc := newTestDoc(workflow.StatusApproved)
	require.NoError(t, engine.Post(context.Background(), doc, func(ctx context.Context) error { return nil }))
	require.Equal(t, 1, doc.PostedVersion)

	err := engine.Post(context.Background(), doc, func(ctx context.Context) error { return nil })
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDocumentPosted, appErr.Code)
	assert.Equal(t, 1, doc.PostedVersion)
	assert.Len(t, stockRepo.created, 1, "no second set of movements")
}

func TestPost_AfterUnpostWritesNextVersion(t *testing.T) {
	stockRepo := &fakeStockRepo{}
	engine, _ := newEngine(stockRepo, &fakeGeneralRepo{})

	doc := newTestDoc(workflow.StatusApproved)
	require.NoError(t, engine.Post(context.Background(), doc, func(ctx context.Context) error { return nil }))
	require.NoError(t, engine.Unpost(context.Background(), doc, func(ctx context.Context) error { return nil }))
	require.NoError(t, engine.Post(context.Background(), doc, func(ctx context.Context) error { return nil }))

	assert.Equal(t, 2, doc.PostedVersion)
	require.Len(t, stockRepo.created, 2)
	assert.Equal(t, 2, stockRepo.created[1].RecorderVersion)
}

func TestPost_InsufficientStockFailsPosting(t *testing.T) {
	stockRepo := &fakeStockRepo{balance: types.Quantity(1_0000)}
	engine, _ := newEngine(stockRepo, &fakeGeneralRepo{})

	doc := newTestDoc(workflow.StatusApproved)
	doc.reserve = true
	doc.qty = types.Quantity(5_0000)

	err := engine.Post(context.Background(), doc, func(ctx context.Context) error { return nil })
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInsufficientStock, appErr.Code)
	assert.False(t, doc.Posted)
	assert.Empty(t, stockRepo.created)
}

func TestPost_RejectsWrongStatus(t *testing.T) {
	engine, _ := newEngine(&fakeStockRepo{}, &fakeGeneralRepo{})

	doc := newTestDoc(workflow.StatusCancelled)
	err := engine.Post(context.Background(), doc, func(ctx context.Context) error { return nil })
	require.Error(t, err)
	assert.False(t, doc.Posted)
}

func TestUnpost(t *testing.T) {
	stockRepo := &fakeStockRepo{}
	generalRepo := &fakeGeneralRepo{}
	engine, _ := newEngine(stockRepo, generalRepo)

	doc := newTestDoc(workflow.StatusDraft)
	require.NoError(t, engine.Post(context.Background(), doc, func(ctx context.Context) error { return nil }))
	require.True(t, doc.Posted)

	err := engine.Unpost(context.Background(), doc, func(ctx context.Context) error { return nil })
	require.NoError(t, err)

	assert.False(t, doc.Posted)
	// delete everything below version+1, i.e. all iterations
	assert.Contains(t, stockRepo.deletes, 2)
	assert.Contains(t, generalRepo.deletes, 2)
}

func TestUnpost_NotPosted(t *testing.T) {
	engine, txm := newEngine(&fakeStockRepo{}, &fakeGeneralRepo{})

	doc := newTestDoc(workflow.StatusDraft)
	err := engine.Unpost(context.Background(), doc, func(ctx context.Context) error { return nil })
	require.Error(t, err)
	assert.Equal(t, 0, txm.calls)
}
