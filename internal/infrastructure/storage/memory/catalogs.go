package memory

import (
	"context"

	"pharmacy/internal/domain/catalogs/client"
	"pharmacy/internal/domain/catalogs/laboratory"
	"pharmacy/internal/domain/catalogs/medication"
	"pharmacy/internal/domain/filter"
)

var (
	_ client.Repository     = (*ClientStore)(nil)
	_ laboratory.Repository = (*LaboratoryStore)(nil)
	_ medication.Repository = (*MedicationStore)(nil)
)

// ClientStore keeps clients keyed by client identifier.
type ClientStore struct {
	*CatalogStore[*client.Client]
}

// NewClientStore creates an empty client store.
func NewClientStore() *ClientStore {
	return &ClientStore{CatalogStore: NewCatalogStore[*client.Client]("client")}
}

// LaboratoryStore keeps laboratories keyed by name.
type LaboratoryStore struct {
	*CatalogStore[*laboratory.Laboratory]
}

// NewLaboratoryStore creates an empty laboratory store.
func NewLaboratoryStore() *LaboratoryStore {
	return &LaboratoryStore{CatalogStore: NewCatalogStore[*laboratory.Laboratory]("laboratory")}
}

// MedicationStore keeps medications keyed by name.
type MedicationStore struct {
	*CatalogStore[*medication.Medication]
}

// NewMedicationStore creates an empty medication store.
func NewMedicationStore() *MedicationStore {
	return &MedicationStore{CatalogStore: NewCatalogStore[*medication.Medication]("medication")}
}

// FindBy returns medications matching every item, in registration order.
func (s *MedicationStore) FindBy(ctx context.Context, items ...filter.Item) ([]*medication.Medication, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	var out []*medication.Medication
	for _, m := range all {
		vars := m.FilterVars()
		matched := true
		for _, item := range items {
			if !item.Matches(vars) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, m)
		}
	}
	return out, nil
}
