// Package seed loads an optional demo catalog at start-up.
package seed

import (
	"context"
	"fmt"
	"time"

	"pharmacy/internal/core/types"
	"pharmacy/internal/domain/catalogs/client"
	"pharmacy/internal/domain/catalogs/laboratory"
	"pharmacy/internal/domain/catalogs/medication"
	"pharmacy/pkg/logger"
)

// Catalogs are the services the demo data is registered through.
type Catalogs struct {
	Clients      *client.Service
	Laboratories *laboratory.Service
	Medications  *medication.Service
}

type demoMedication struct {
	kind         medication.Kind
	name         string
	compound     string
	lab          string
	description  string
	price        string
	prescription bool
}

var demoLaboratories = []struct {
	name, address, phone, city, region string
}{
	{"Eurofarma", "Av. Vereador Jose Diniz, 3465", "11 5090-8600", "Sao Paulo", "SP"},
	{"EMS", "Rod. Jornalista Francisco Aguirre Proenca, km 08", "19 3887-9800", "Hortolandia", "SP"},
	{"Herbarium", "Av. Santos Dumont, 1100", "41 2141-8500", "Colombo", "PR"},
}

var demoMedications = []demoMedication{
	{medication.KindChemotherapy, "Paclitaxel", "paclitaxel", "Eurofarma", "Antineoplastic for breast and ovarian cancer", "120.00", true},
	{medication.KindChemotherapy, "Cisplatina", "cisplatin", "Eurofarma", "Platinum based antineoplastic", "20.00", true},
	{medication.KindChemotherapy, "Tamoxifeno", "tamoxifen citrate", "EMS", "Hormonal therapy for breast cancer", "35.90", false},
	{medication.KindPhytotherapy, "Guaco", "mikania glomerata", "Herbarium", "Expectorant syrup", "10.00", false},
	{medication.KindPhytotherapy, "Valeriana", "valeriana officinalis", "Herbarium", "Mild sedative, helps sleep", "24.50", false},
	{medication.KindPhytotherapy, "Ginkgo", "ginkgo biloba", "EMS", "Improves peripheral circulation", "42.00", false},
}

var demoClients = []struct {
	id, name, birth string
}{
	{"12345678900", "Ana Souza", "1986-05-01"},
	{"98765432100", "Jose Lima", "1950-01-01"},
}

// LoadDemo registers the demo laboratories, medications and clients.
func LoadDemo(ctx context.Context, c Catalogs) error {
	labs := make(map[string]*laboratory.Laboratory, len(demoLaboratories))
	for _, d := range demoLaboratories {
		l := laboratory.NewLaboratory(d.name, d.address, d.phone, d.city, d.region)
		if err := c.Laboratories.Create(ctx, l); err != nil {
			return fmt.Errorf("seed laboratory %s: %w", l.Name, err)
		}
		labs[l.Name] = l
	}

	for _, d := range demoMedications {
		price := types.MustMoney(d.price)
		var m *medication.Medication
		switch d.kind {
		case medication.KindChemotherapy:
			m = medication.NewChemotherapy(d.name, d.compound, labs[d.lab], d.description, price, d.prescription)
		default:
			m = medication.NewPhytotherapy(d.name, d.compound, labs[d.lab], d.description, price)
		}
		if err := c.Medications.Create(ctx, m); err != nil {
			return fmt.Errorf("seed medication %s: %w", d.name, err)
		}
	}

	for _, d := range demoClients {
		birth, err := time.Parse(client.BirthDateLayout, d.birth)
		if err != nil {
			return fmt.Errorf("seed client %s: %w", d.id, err)
		}
		if err := c.Clients.Create(ctx, client.NewClient(d.id, d.name, birth)); err != nil {
			return fmt.Errorf("seed client %s: %w", d.id, err)
		}
	}

	logger.Info(ctx, "demo catalog loaded",
		"laboratories", len(demoLaboratories),
		"medications", len(demoMedications),
		"clients", len(demoClients),
	)
	return nil
}
