// Package medication provides the Medication catalog.
// A medication is either chemotherapy or phytotherapy; Kind is the variant tag.
package medication

import (
	"context"
	"strings"

	"pharmacy/internal/core/apperror"
	"pharmacy/internal/core/entity"
	"pharmacy/internal/core/types"
	"pharmacy/internal/domain/catalogs/laboratory"
	"pharmacy/internal/domain/filter"
)

// Kind is the medication variant.
type Kind string

const (
	KindChemotherapy Kind = "chemotherapy"
	KindPhytotherapy Kind = "phytotherapy"
)

// IsValid checks if kind is known.
func (k Kind) IsValid() bool {
	switch k {
	case KindChemotherapy, KindPhytotherapy:
		return true
	}
	return false
}

// ParseKind accepts the operator codes Q/F or the full kind names.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "q", string(KindChemotherapy):
		return KindChemotherapy, nil
	case "f", string(KindPhytotherapy):
		return KindPhytotherapy, nil
	}
	return "", apperror.NewInvalidInput("medication type must be Q (chemotherapy) or F (phytotherapy)").
		WithDetail("value", s)
}

// Medication is a sellable product.
type Medication struct {
	entity.Catalog

	Kind Kind `json:"kind"`

	ActiveCompound string                 `json:"activeCompound"`
	Laboratory     *laboratory.Laboratory `json:"laboratory"`
	Description    string                 `json:"description"`
	Price          types.Money            `json:"price"`

	// PrescriptionRequired is only ever set on chemotherapy
	PrescriptionRequired bool `json:"prescriptionRequired"`
}

func newMedication(kind Kind, name, compound string, lab *laboratory.Laboratory, description string, price types.Money) *Medication {
	return &Medication{
		Catalog:        entity.NewCatalog(name),
		Kind:           kind,
		ActiveCompound: strings.TrimSpace(compound),
		Laboratory:     lab,
		Description:    strings.TrimSpace(description),
		Price:          price,
	}
}

// NewChemotherapy creates a chemotherapy medication.
func NewChemotherapy(name, compound string, lab *laboratory.Laboratory, description string, price types.Money, prescriptionRequired bool) *Medication {
	m := newMedication(KindChemotherapy, name, compound, lab, description, price)
	m.PrescriptionRequired = prescriptionRequired
	return m
}

// NewPhytotherapy creates a phytotherapy medication.
func NewPhytotherapy(name, compound string, lab *laboratory.Laboratory, description string, price types.Money) *Medication {
	return newMedication(KindPhytotherapy, name, compound, lab, description, price)
}

// CatalogKey implements domain.CatalogEntity.
func (m *Medication) CatalogKey() string {
	return m.Name
}

// IsControlled reports whether selling m must raise a prescription alert.
func (m *Medication) IsControlled() bool {
	return m.Kind == KindChemotherapy && m.PrescriptionRequired
}

// LaboratoryName returns the manufacturer name or "" when unset.
func (m *Medication) LaboratoryName() string {
	if m.Laboratory == nil {
		return ""
	}
	return m.Laboratory.Name
}

// FilterVars exposes the medication to filter items and expressions.
func (m *Medication) FilterVars() filter.Vars {
	price, _ := m.Price.Float64()
	return filter.Vars{
		filter.VarName:         m.Name,
		filter.VarCompound:     m.ActiveCompound,
		filter.VarLaboratory:   m.LaboratoryName(),
		filter.VarDescription:  m.Description,
		filter.VarPrice:        price,
		filter.VarKind:         string(m.Kind),
		filter.VarPrescription: m.PrescriptionRequired,
	}
}

// Validate implements entity.Validatable interface.
func (m *Medication) Validate(ctx context.Context) error {
	if !m.Kind.IsValid() {
		return apperror.NewValidation("invalid medication kind").
			WithDetail("field", "kind").
			WithDetail("value", string(m.Kind))
	}
	if err := m.Catalog.Validate(ctx); err != nil {
		return err
	}
	if m.Laboratory == nil {
		return apperror.NewValidation("laboratory is required").
			WithDetail("field", "laboratory")
	}
	if m.Price.IsNegative() {
		return apperror.NewValidation("price cannot be negative").
			WithDetail("field", "price").
			WithDetail("value", types.FormatMoney(m.Price))
	}
	if m.Kind == KindPhytotherapy && m.PrescriptionRequired {
		return apperror.NewValidation("phytotherapy medications do not carry a prescription flag").
			WithDetail("field", "prescriptionRequired")
	}
	return nil
}
