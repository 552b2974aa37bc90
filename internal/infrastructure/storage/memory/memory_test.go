package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacy/internal/core/apperror"
	"pharmacy/internal/core/id"
	"pharmacy/internal/domain/catalogs/client"
	"pharmacy/internal/domain/catalogs/laboratory"
	"pharmacy/internal/domain/catalogs/medication"
	"pharmacy/internal/domain/documents/sale"
	"pharmacy/internal/domain/filter"
	"pharmacy/internal/domain/registers/sales"
)

func TestCatalogStore_CRUD(t *testing.T) {
	ctx := context.Background()
	store := NewClientStore()

	ana := client.NewClient("1", "Ana", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC))
	bia := client.NewClient("2", "Bia", time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, store.Create(ctx, ana))
	require.NoError(t, store.Create(ctx, bia))

	err := store.Create(ctx, client.NewClient("1", "Other", time.Now()))
	assert.True(t, apperror.IsDuplicate(err))

	got, err := store.Get(ctx, "2")
	require.NoError(t, err)
	assert.Same(t, bia, got)

	_, err = store.Get(ctx, "9")
	assert.True(t, apperror.IsNotFound(err))

	ok, err := store.Exists(ctx, "1")
	require.NoError(t, err)
	assert.True(t, ok)

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*client.Client{ana, bia}, list)
	assert.Equal(t, 2, store.Len())
}

func TestTxManager_RollsBackCatalogWrites(t *testing.T) {
	ctx := context.Background()
	txm := NewTxManager()
	store := NewLaboratoryStore()

	boom := errors.New("boom")
	err := txm.RunInTransaction(ctx, func(ctx context.Context) error {
		require.NoError(t, store.Create(ctx, laboratory.NewLaboratory("EMS", "", "", "", "SP")))
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, store.Len())

	err = txm.RunInTransaction(ctx, func(ctx context.Context) error {
		return store.Create(ctx, laboratory.NewLaboratory("EMS", "", "", "", "SP"))
	})
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
}

func TestTxManager_NestedReusesUnitOfWork(t *testing.T) {
	ctx := context.Background()
	txm := NewTxManager()
	store := NewLaboratoryStore()

	err := txm.RunInTransaction(ctx, func(ctx context.Context) error {
		inner := txm.RunInTransaction(ctx, func(ctx context.Context) error {
			return store.Create(ctx, laboratory.NewLaboratory("A", "", "", "", "SP"))
		})
		require.NoError(t, inner)
		return errors.New("outer fails")
	})
	require.Error(t, err)
	assert.Zero(t, store.Len(), "outer failure undoes inner writes")
}

func TestTxManager_RecoversPanic(t *testing.T) {
	ctx := context.Background()
	txm := NewTxManager()
	store := NewLaboratoryStore()

	err := txm.RunInTransaction(ctx, func(ctx context.Context) error {
		_ = store.Create(ctx, laboratory.NewLaboratory("A", "", "", "", "SP"))
		panic("unexpected")
	})
	require.Error(t, err)
	assert.Zero(t, store.Len())
}

func testMedication(name string, kind medication.Kind, lab, description string) *medication.Medication {
	l := laboratory.NewLaboratory(lab, "", "", "", "SP")
	if kind == medication.KindChemotherapy {
		return medication.NewChemotherapy(name, "x", l, description, decimal.RequireFromString("10"), true)
	}
	return medication.NewPhytotherapy(name, "x", l, description, decimal.RequireFromString("10"))
}

func TestMedicationStore_FindBy(t *testing.T) {
	ctx := context.Background()
	store := NewMedicationStore()
	require.NoError(t, store.Create(ctx, testMedication("A", medication.KindChemotherapy, "EMS", "oral tablet")))
	require.NoError(t, store.Create(ctx, testMedication("B", medication.KindPhytotherapy, "ems", "Herbal tea")))
	require.NoError(t, store.Create(ctx, testMedication("C", medication.KindPhytotherapy, "Hypera", "herbal capsule")))

	got, err := store.FindBy(ctx, filter.Item{Field: filter.VarLaboratory, Operator: filter.EqualFold, Value: "EMS"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Name)
	assert.Equal(t, "B", got[1].Name)

	got, err = store.FindBy(ctx,
		filter.Item{Field: filter.VarDescription, Operator: filter.Contains, Value: "herbal"},
		filter.Item{Field: filter.VarLaboratory, Operator: filter.EqualFold, Value: "hypera"},
	)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "C", got[0].Name)

	got, err = store.FindBy(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestSaleStore_AppendAndRollback(t *testing.T) {
	ctx := context.Background()
	txm := NewTxManager()
	store := NewSaleStore()

	first := sale.NewSale(nil)
	first.Number = "VD-2026-00001"
	require.NoError(t, store.Append(ctx, first))

	err := txm.RunInTransaction(ctx, func(ctx context.Context) error {
		second := sale.NewSale(nil)
		second.Number = "VD-2026-00002"
		require.NoError(t, store.Append(ctx, second))
		return errors.New("declined")
	})
	require.Error(t, err)

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = store.GetByNumber(ctx, "VD-2026-00002")
	assert.True(t, apperror.IsNotFound(err))

	got, err := store.GetByNumber(ctx, "VD-2026-00001")
	require.NoError(t, err)
	assert.Same(t, first, got)

	dup := sale.NewSale(nil)
	dup.Number = "VD-2026-00001"
	assert.True(t, apperror.IsDuplicate(store.Append(ctx, dup)))
}

func TestSalesRegisterStore_Rollback(t *testing.T) {
	ctx := context.Background()
	txm := NewTxManager()
	store := NewSalesRegisterStore()

	saleID := id.New()
	med := testMedication("A", medication.KindChemotherapy, "EMS", "")
	m := sales.NewMovement(saleID, sale.DocumentType, time.Now(), med, 2, decimal.RequireFromString("20"))

	err := txm.RunInTransaction(ctx, func(ctx context.Context) error {
		require.NoError(t, store.CreateMovements(ctx, []sales.Movement{m}))
		require.NoError(t, store.IncrementSaleCount(ctx))
		return errors.New("abort")
	})
	require.Error(t, err)

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Zero(t, snap.SaleCount())
	assert.Empty(t, snap.Items())

	posted, err := store.GetMovementsByRecorder(ctx, saleID)
	require.NoError(t, err)
	assert.Empty(t, posted)

	require.NoError(t, txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := store.CreateMovements(ctx, []sales.Movement{m}); err != nil {
			return err
		}
		return store.IncrementSaleCount(ctx)
	}))

	snap, _ = store.Snapshot(ctx)
	assert.Equal(t, 1, snap.SaleCount())
	item, ok := snap.Item("A")
	require.True(t, ok)
	assert.Equal(t, int64(2), item.Quantity)
}

func TestSalesRegisterStore_PartialBatchRejected(t *testing.T) {
	ctx := context.Background()
	store := NewSalesRegisterStore()

	good := sales.Movement{MedicationName: "A", Kind: medication.KindChemotherapy, Quantity: 1, Revenue: decimal.RequireFromString("1")}
	bad := sales.Movement{MedicationName: "B", Kind: "unknown", Quantity: 1, Revenue: decimal.RequireFromString("1")}

	require.Error(t, store.CreateMovements(ctx, []sales.Movement{good, bad}))
	snap, _ := store.Snapshot(ctx)
	assert.Empty(t, snap.Items())
}
