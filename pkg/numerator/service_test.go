package numerator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	corenum "pharmacy/internal/core/numerator"
	"pharmacy/internal/core/tx"
)

func TestGetNextNumber_Sequential(t *testing.T) {
	svc := New()
	ctx := context.Background()
	cfg := corenum.DefaultConfig("VD")
	period := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	num, err := svc.GetNextNumber(ctx, cfg, period)
	require.NoError(t, err)
	assert.Equal(t, "VD-2026-00001", num)

	num, err = svc.GetNextNumber(ctx, cfg, period)
	require.NoError(t, err)
	assert.Equal(t, "VD-2026-00002", num)
}

func TestGetNextNumber_YearReset(t *testing.T) {
	svc := New()
	ctx := context.Background()
	cfg := corenum.DefaultConfig("VD")

	_, err := svc.GetNextNumber(ctx, cfg, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	num, err := svc.GetNextNumber(ctx, cfg, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "VD-2027-00001", num)
}

func TestGetNextNumber_NoYear(t *testing.T) {
	svc := New()
	cfg := corenum.Config{Prefix: "T", PadWidth: 3, ResetPeriod: "never"}

	num, err := svc.GetNextNumber(context.Background(), cfg, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "T-001", num)
}

func TestGetNextNumber_RequiresPrefix(t *testing.T) {
	_, err := New().GetNextNumber(context.Background(), corenum.Config{}, time.Now())
	assert.Error(t, err)
}

func TestSetNextNumber_ResetsCounter(t *testing.T) {
	svc := New()
	cfg := corenum.DefaultConfig("VD")
	period := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	svc.setNextNumber(cfg, period, 100)
	num, err := svc.GetNextNumber(context.Background(), cfg, period)
	require.NoError(t, err)
	assert.Equal(t, "VD-2026-00100", num)
}

func TestGetNextNumber_Concurrent(t *testing.T) {
	svc := New()
	cfg := corenum.DefaultConfig("VD")
	period := time.Now()

	var wg sync.WaitGroup
	seen := sync.Map{}
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			num, err := svc.GetNextNumber(context.Background(), cfg, period)
			assert.NoError(t, err)
			_, dup := seen.LoadOrStore(num, true)
			assert.False(t, dup, "duplicate number %s", num)
		}()
	}
	wg.Wait()
}

func TestGetNextNumber_RollbackReturnsNumber(t *testing.T) {
	svc := New()
	cfg := corenum.DefaultConfig("VD")
	period := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	ctx, undo := tx.WithUndoLog(context.Background())
	n, err := svc.GetNextNumber(ctx, cfg, period)
	require.NoError(t, err)
	assert.Equal(t, "VD-2026-00001", n)
	assert.Equal(t, 1, undo.Len())

	undo.Rollback()

	n, err = svc.GetNextNumber(context.Background(), cfg, period)
	require.NoError(t, err)
	assert.Equal(t, "VD-2026-00001", n)
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, int64(42), ParseNumber("VD-2026-00042"))
	assert.Equal(t, int64(7), ParseNumber("T-007"))
	assert.Equal(t, int64(-1), ParseNumber("garbage"))
}
