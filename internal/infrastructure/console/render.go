package console

import (
	"fmt"
	"io"
	"strings"

	"pharmacy/internal/core/types"
	"pharmacy/internal/domain/catalogs/client"
	"pharmacy/internal/domain/catalogs/medication"
	"pharmacy/internal/domain/documents/sale"
	"pharmacy/internal/domain/reports"
)

const ruler = "=================================================="

func formatClient(c *client.Client) string {
	return fmt.Sprintf("%s | ID: %s | Born: %s",
		c.Name, c.ClientID, c.BirthDate.Format(client.BirthDateLayout))
}

func kindLabel(k medication.Kind) string {
	switch k {
	case medication.KindChemotherapy:
		return "Chemotherapy"
	case medication.KindPhytotherapy:
		return "Phytotherapy"
	}
	return string(k)
}

func formatMedication(m *medication.Medication) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s (%s) | Lab: %s | Price: %s",
		kindLabel(m.Kind), m.Name, m.ActiveCompound, m.LaboratoryName(), types.FormatMoney(m.Price))
	if m.Kind == medication.KindChemotherapy {
		if m.PrescriptionRequired {
			b.WriteString(" | Prescription required")
		} else {
			b.WriteString(" | No prescription")
		}
	}
	if m.Description != "" {
		fmt.Fprintf(&b, " | %s", m.Description)
	}
	return b.String()
}

func renderQuote(w io.Writer, q sale.Quote) {
	if q.HasControlledSubstance() {
		fmt.Fprintf(w, "\n*** WARNING: check the prescription for: %s ***\n\n", strings.Join(q.Controlled, ", "))
	}
	fmt.Fprintf(w, "Subtotal: %s\n", types.FormatMoney(q.Subtotal))
	if q.Discount.Applied() {
		fmt.Fprintf(w, "Discount applied: %s => %s\n", q.Discount.Description(), types.FormatMoney(q.Discount.Amount))
	} else {
		fmt.Fprintln(w, "No discount applied.")
	}
	fmt.Fprintf(w, "Final total: %s\n\n", types.FormatMoney(q.Total))
}

func renderStatistics(w io.Writer, s *reports.Statistics) {
	fmt.Fprintln(w, "\n========== Session Sales Report ==========")
	fmt.Fprintf(w, "Clients served: %d\n", s.SaleCount)
	if s.BestSeller != nil {
		fmt.Fprintf(w, "Best-selling medication: %s\n", s.BestSeller.MedicationName)
		fmt.Fprintf(w, "Total quantity sold: %d units\n", s.BestSeller.Quantity)
		fmt.Fprintf(w, "Total value: %s\n", types.FormatMoney(s.BestSeller.Revenue))
	} else {
		fmt.Fprintln(w, "No medication sold yet.")
	}
	fmt.Fprintf(w, "Chemotherapy sold: %d units | Total value: %s\n",
		s.Chemotherapy.Quantity, types.FormatMoney(s.Chemotherapy.Revenue))
	fmt.Fprintf(w, "Phytotherapy sold: %d units | Total value: %s\n",
		s.Phytotherapy.Quantity, types.FormatMoney(s.Phytotherapy.Revenue))
	fmt.Fprintln(w, ruler)
}
