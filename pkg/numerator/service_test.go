package numerator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRow struct {
	val int64
	err error
}

func (m *mockRow) Scan(dest ...any) error {
	if m.err != nil {
		return m.err
	}
	if len(dest) > 0 {
		if ptr, ok := dest[0].(*int64); ok {
			*ptr = m.val
		}
	}
	return nil
}

// mockQuerier simulates the sys_sequences UPSERT: strict calls pass only
// the key and increment by 1, cached calls pass the range size as args[1].
type mockQuerier struct {
	mu           sync.Mutex
	currentValue int64
	calls        int
}

func (m *mockQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	m.mu.Lock()
	defer m.mu.Unlock()

	var increment int64 = 1
	if len(args) == 2 {
		if val, ok := args[1].(int64); ok {
			increment = val
		}
	}

	m.currentValue += increment
	m.calls++

	return &mockRow{val: m.currentValue}
}

func TestGetNextNumber_Strict(t *testing.T) {
	q := &mockQuerier{}
	svc := New(q)
	ctx := context.Background()
	cfg := DefaultConfig("GRN")
	period := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	num, err := svc.GetNextNumber(ctx, cfg, nil, period)
	require.NoError(t, err)
	assert.Equal(t, "GRN-2026-0001", num)

	num, err = svc.GetNextNumber(ctx, cfg, nil, period)
	require.NoError(t, err)
	assert.Equal(t, "GRN-2026-0002", num)

	assert.Equal(t, 2, q.calls, "strict strategy hits DB every call")
}

func TestGetNextNumber_Cached(t *testing.T) {
	q := &mockQuerier{}
	svc := New(q)
	ctx := context.Background()
	cfg := DefaultConfig("TRF")
	period := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	opts := &Options{
		Strategy:  StrategyCached,
		RangeSize: 10,
	}

	// first call allocates the range 1..10
	num, err := svc.GetNextNumber(ctx, cfg, opts, period)
	require.NoError(t, err)
	assert.Equal(t, "TRF-2026-0001", num)
	assert.Equal(t, int64(10), q.currentValue)

	// second call is served from memory
	num, err = svc.GetNextNumber(ctx, cfg, opts, period)
	require.NoError(t, err)
	assert.Equal(t, "TRF-2026-0002", num)
	assert.Equal(t, int64(10), q.currentValue)

	// exhaust the range, the next call must allocate 11..20
	for i := 0; i < 8; i++ {
		_, err = svc.GetNextNumber(ctx, cfg, opts, period)
		require.NoError(t, err)
	}

	num, err = svc.GetNextNumber(ctx, cfg, opts, period)
	require.NoError(t, err)
	assert.Equal(t, "TRF-2026-0011", num)
	assert.Equal(t, int64(20), q.currentValue)
}

func TestGetNextNumber_YearInKey(t *testing.T) {
	q := &mockQuerier{}
	svc := New(q)
	ctx := context.Background()
	cfg := DefaultConfig("SI")

	num, err := svc.GetNextNumber(ctx, cfg, nil, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "SI-2025-0001", num)

	// a new year starts a new sequence key; the mock shares one counter,
	// so only the formatted year changes here
	num, err = svc.GetNextNumber(ctx, cfg, nil, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "SI-2026-0002", num)
}

func TestSetNextNumber_InvalidatesCache(t *testing.T) {
	q := &mockQuerier{}
	svc := New(q)
	ctx := context.Background()
	cfg := DefaultConfig("GRN")
	period := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	opts := &Options{
		Strategy:  StrategyCached,
		RangeSize: 10,
	}

	_, err := svc.GetNextNumber(ctx, cfg, opts, period)
	require.NoError(t, err)
	_, err = svc.GetNextNumber(ctx, cfg, opts, period)
	require.NoError(t, err)
	assert.Equal(t, 1, q.calls, "second call served from the cached range")

	require.NoError(t, svc.SetNextNumber(ctx, cfg, period, 100))
	assert.Equal(t, 2, q.calls)

	// the cached range is dropped, so the next call allocates a fresh one
	_, err = svc.GetNextNumber(ctx, cfg, opts, period)
	require.NoError(t, err)
	assert.Equal(t, 3, q.calls)
}

func TestFormatNumber(t *testing.T) {
	svc := New(nil)
	period := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		cfg  Config
		num  int64
		want string
	}{
		{"with year", Config{Prefix: "GRN", IncludeYear: true, PadWidth: 4}, 7, "GRN-2026-0007"},
		{"without year", Config{Prefix: "DO", PadWidth: 4}, 42, "DO-0042"},
		{"default pad", Config{Prefix: "JE", IncludeYear: true}, 123, "JE-2026-0123"},
		{"overflow pad", Config{Prefix: "SI", IncludeYear: true, PadWidth: 4}, 12345, "SI-2026-12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.formatNumber(tt.cfg, period, tt.num))
		})
	}
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, int64(17), ParseNumber("GRN-2026-0017"))
	assert.Equal(t, int64(42), ParseNumber("DO-0042"))
	assert.Equal(t, int64(-1), ParseNumber("garbage"))
}

func TestBuildKey(t *testing.T) {
	svc := New(nil)
	period := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "GRN_2026", svc.buildKey(Config{Prefix: "GRN", ResetPeriod: "year"}, period))
	assert.Equal(t, "GRN_2026_07", svc.buildKey(Config{Prefix: "GRN", ResetPeriod: "month"}, period))
	assert.Equal(t, "GRN", svc.buildKey(Config{Prefix: "GRN", ResetPeriod: "never"}, period))
}
