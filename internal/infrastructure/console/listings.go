package console

import (
	"context"

	"pharmacy/internal/domain/catalogs/medication"
)

func (a *App) listClients(ctx context.Context) error {
	list, err := a.svc.Reports.Clients(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.println("No client registered.")
		return nil
	}
	a.println("\n--- Clients (A-Z) ---")
	for _, c := range list {
		a.println(formatClient(c))
	}
	return nil
}

func (a *App) listMedications(ctx context.Context) error {
	list, err := a.svc.Reports.Medications(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.println("No medication registered.")
		return nil
	}
	a.println("\n--- Medications (A-Z) ---")
	for _, m := range list {
		a.println(formatMedication(m))
	}
	return nil
}

func (a *App) listMedicationsByKind(ctx context.Context) error {
	answer, err := a.in.ask("List medications ([Q] chemotherapy / [F] phytotherapy): ")
	if err != nil {
		return err
	}
	kind, err := medication.ParseKind(answer)
	if err != nil {
		a.println("Invalid type.")
		return nil
	}

	list, err := a.svc.Reports.MedicationsByKind(ctx, kind)
	if err != nil {
		return err
	}
	a.printf("\n--- %s medications ---\n", kindLabel(kind))
	if len(list) == 0 {
		a.println("None registered.")
	}
	for _, m := range list {
		a.println(formatMedication(m))
	}
	return nil
}

func (a *App) showStatistics(ctx context.Context) error {
	stats, err := a.svc.Reports.SessionStatistics(ctx)
	if err != nil {
		return err
	}
	renderStatistics(a.out, stats)
	return nil
}
