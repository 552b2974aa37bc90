package sales

import (
	"fmt"

	"pharmacy/internal/core/apperror"
	"pharmacy/internal/domain/catalogs/medication"
)

// Ledger holds the running session statistics.
// It is not safe for concurrent use; repositories guard it.
type Ledger struct {
	items map[string]*ItemTotals

	// order keeps names in first-recorded order
	order []string

	chemotherapy Totals
	phytotherapy Totals

	saleCount int
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{items: make(map[string]*ItemTotals)}
}

// Apply adds one movement to the item and category totals.
func (l *Ledger) Apply(m Movement) error {
	switch m.Kind {
	case medication.KindChemotherapy:
		l.chemotherapy = l.chemotherapy.Add(m.Quantity, m.Revenue)
	case medication.KindPhytotherapy:
		l.phytotherapy = l.phytotherapy.Add(m.Quantity, m.Revenue)
	default:
		return apperror.NewValidation(fmt.Sprintf("unknown medication kind %q", m.Kind))
	}

	item, ok := l.items[m.MedicationName]
	if !ok {
		item = &ItemTotals{MedicationName: m.MedicationName, Kind: m.Kind}
		l.items[m.MedicationName] = item
		l.order = append(l.order, m.MedicationName)
	}
	item.Totals = item.Totals.Add(m.Quantity, m.Revenue)
	return nil
}

// CountSale increments the session sale counter.
func (l *Ledger) CountSale() {
	l.saleCount++
}

// SaleCount returns the number of committed sales.
func (l *Ledger) SaleCount() int {
	return l.saleCount
}

// Item returns the totals for one medication.
func (l *Ledger) Item(name string) (ItemTotals, bool) {
	item, ok := l.items[name]
	if !ok {
		return ItemTotals{}, false
	}
	return *item, true
}

// Items returns every medication sold, in first-recorded order.
func (l *Ledger) Items() []ItemTotals {
	out := make([]ItemTotals, 0, len(l.order))
	for _, name := range l.order {
		out = append(out, *l.items[name])
	}
	return out
}

// Category returns the accumulated totals for a kind.
func (l *Ledger) Category(kind medication.Kind) Totals {
	switch kind {
	case medication.KindChemotherapy:
		return l.chemotherapy
	case medication.KindPhytotherapy:
		return l.phytotherapy
	}
	return Totals{}
}

// MostSold returns the medication with the greatest quantity.
// On a tie the one recorded first wins.
func (l *Ledger) MostSold() (ItemTotals, bool) {
	var (
		best  *ItemTotals
		found bool
	)
	for _, name := range l.order {
		item := l.items[name]
		if !found || item.Quantity > best.Quantity {
			best, found = item, true
		}
	}
	if !found {
		return ItemTotals{}, false
	}
	return *best, true
}

// Clone returns a deep copy.
func (l *Ledger) Clone() *Ledger {
	c := &Ledger{
		items:        make(map[string]*ItemTotals, len(l.items)),
		order:        append([]string(nil), l.order...),
		chemotherapy: l.chemotherapy,
		phytotherapy: l.phytotherapy,
		saleCount:    l.saleCount,
	}
	for name, item := range l.items {
		cp := *item
		c.items[name] = &cp
	}
	return c
}
