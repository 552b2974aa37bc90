// Package metrics keeps in-process counters for committed sales.
// The registry is private; nothing is served over the network.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"pharmacy/internal/domain/documents/sale"
)

var _ sale.Metrics = (*Registry)(nil)

type Registry struct {
	reg *prometheus.Registry

	SalesCommitted   prometheus.Counter
	UnitsSold        *prometheus.CounterVec // by kind
	Revenue          prometheus.Counter
	Discounts        *prometheus.CounterVec // by reason
	SaleTotal        prometheus.Histogram
	ControlledAlerts prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	committed := prometheus.NewCounter(prometheus.CounterOpts{Name: "pos_sales_committed_total"})
	units := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "pos_units_sold_total"}, []string{"kind"})
	revenue := prometheus.NewCounter(prometheus.CounterOpts{Name: "pos_revenue_total"})
	discounts := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "pos_discounts_total"}, []string{"reason"})
	saleTotal := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "pos_sale_total",
		Buckets: []float64{10, 25, 50, 100, 150, 300, 600},
	})
	controlled := prometheus.NewCounter(prometheus.CounterOpts{Name: "pos_controlled_alerts_total"})

	r.MustRegister(committed, units, revenue, discounts, saleTotal, controlled)
	return &Registry{
		reg:              r,
		SalesCommitted:   committed,
		UnitsSold:        units,
		Revenue:          revenue,
		Discounts:        discounts,
		SaleTotal:        saleTotal,
		ControlledAlerts: controlled,
	}
}

// ObserveSale counts a committed sale, its units per kind and its final total.
func (r *Registry) ObserveSale(s *sale.Sale) {
	r.SalesCommitted.Inc()
	for _, line := range s.Lines {
		r.UnitsSold.WithLabelValues(string(line.Medication.Kind)).Add(float64(line.Quantity))
	}
	total, _ := s.Total.Float64()
	r.Revenue.Add(total)
	r.SaleTotal.Observe(total)
	r.Discounts.WithLabelValues(string(s.Discount.Reason)).Inc()
}

// ObserveControlledAlert counts a prescription warning shown for a committed sale.
func (r *Registry) ObserveControlledAlert(names []string) {
	if len(names) > 0 {
		r.ControlledAlerts.Inc()
	}
}

// Gatherer exposes the registry for inspection.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }
