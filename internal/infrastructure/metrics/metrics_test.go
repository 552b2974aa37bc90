package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacy/internal/domain/catalogs/laboratory"
	"pharmacy/internal/domain/catalogs/medication"
	"pharmacy/internal/domain/discount"
	"pharmacy/internal/domain/documents/sale"
)

func TestRegistry_ObserveSale(t *testing.T) {
	r := NewRegistry()
	lab := laboratory.NewLaboratory("EMS", "", "", "", "SP")

	s := sale.NewSale(nil)
	require.NoError(t, s.AddLine(medication.NewChemotherapy("Paclitaxel", "p", lab, "", decimal.RequireFromString("100"), true), 2))
	require.NoError(t, s.AddLine(medication.NewPhytotherapy("Guaco", "g", lab, "", decimal.RequireFromString("10")), 3))
	s.ApplyDiscount(discount.Apply(30, s.Subtotal))

	r.ObserveSale(s)
	r.ObserveControlledAlert([]string{"Paclitaxel"})
	r.ObserveControlledAlert(nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.SalesCommitted))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.UnitsSold.WithLabelValues("chemotherapy")))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.UnitsSold.WithLabelValues("phytotherapy")))
	assert.InDelta(t, 207.0, testutil.ToFloat64(r.Revenue), 1e-9)
	assert.Equal(t, 1.0, testutil.ToFloat64(r.Discounts.WithLabelValues("bulk")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.ControlledAlerts))

	n, err := testutil.GatherAndCount(r.Gatherer(), "pos_sales_committed_total", "pos_sale_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
