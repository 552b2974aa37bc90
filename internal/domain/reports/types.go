// Package reports provides catalog listings and the session statistics report.
package reports

import (
	"pharmacy/internal/core/types"
	"pharmacy/internal/domain/registers/sales"
)

// --- Session Statistics Report ---

// Statistics is the end-of-session snapshot.
type Statistics struct {
	SaleCount int `json:"saleCount"`

	// BestSeller is nil when nothing was sold
	BestSeller *sales.ItemTotals `json:"bestSeller,omitempty"`

	Chemotherapy sales.Totals `json:"chemotherapy"`
	Phytotherapy sales.Totals `json:"phytotherapy"`

	// Items in first-sold order
	Items []sales.ItemTotals `json:"items"`
}

// TotalRevenue returns revenue across both categories.
func (s Statistics) TotalRevenue() types.Money {
	return s.Chemotherapy.Revenue.Add(s.Phytotherapy.Revenue)
}

// TotalQuantity returns units sold across both categories.
func (s Statistics) TotalQuantity() int64 {
	return s.Chemotherapy.Quantity + s.Phytotherapy.Quantity
}
