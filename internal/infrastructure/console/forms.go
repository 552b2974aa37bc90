package console

import (
	"context"

	"pharmacy/internal/core/apperror"
	"pharmacy/internal/core/types"
	"pharmacy/internal/domain/catalogs/client"
	"pharmacy/internal/domain/catalogs/laboratory"
	"pharmacy/internal/domain/catalogs/medication"
)

func (a *App) registerClient(ctx context.Context) error {
	clientID, err := a.in.ask("Client ID (digits only): ")
	if err != nil {
		return err
	}
	if exists, err := a.svc.Clients.Exists(ctx, clientID); err != nil {
		return err
	} else if exists {
		a.println("A client with this ID already exists!")
		return nil
	}

	name, err := a.in.ask("Full name: ")
	if err != nil {
		return err
	}
	birth, err := a.in.ask("Birth date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	birthDate, err := client.ParseBirthDate(birth)
	if err != nil {
		a.println("Invalid date format. Registration cancelled.")
		return nil
	}

	if err := a.svc.Clients.Create(ctx, client.NewClient(clientID, name, birthDate)); err != nil {
		return err
	}
	a.println("Client registered successfully!")
	return nil
}

func (a *App) registerLaboratory(ctx context.Context) error {
	name, err := a.in.ask("Laboratory name: ")
	if err != nil {
		return err
	}
	if exists, err := a.svc.Laboratories.Exists(ctx, name); err != nil {
		return err
	} else if exists {
		a.println("A laboratory with this name already exists!")
		return nil
	}

	answers := make([]string, 0, 4)
	for _, label := range []string{"Full address: ", "Contact phone: ", "City: ", "State (abbreviation): "} {
		v, err := a.in.ask(label)
		if err != nil {
			return err
		}
		answers = append(answers, v)
	}

	lab := laboratory.NewLaboratory(name, answers[0], answers[1], answers[2], answers[3])
	if err := a.svc.Laboratories.Create(ctx, lab); err != nil {
		return err
	}
	a.println("Laboratory registered successfully!")
	return nil
}

// chooseLaboratory lists registered laboratories and returns the selected one, or nil.
func (a *App) chooseLaboratory(ctx context.Context) (*laboratory.Laboratory, error) {
	labs, err := a.svc.Laboratories.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(labs) == 0 {
		a.println("No laboratory registered. Register one before adding medications.")
		return nil, nil
	}

	a.println("Available laboratories:")
	options := make([]string, 0, len(labs))
	for _, l := range labs {
		options = append(options, l.Name+" ("+l.Location()+")")
	}
	idx, ok, err := a.in.choose("Choose the laboratory number: ", options)
	if err != nil {
		return nil, err
	}
	if !ok {
		a.println("Invalid choice.")
		return nil, nil
	}
	return labs[idx], nil
}

func (a *App) registerMedication(ctx context.Context) error {
	kindAnswer, err := a.in.ask("Medication type ([Q] chemotherapy / [F] phytotherapy): ")
	if err != nil {
		return err
	}
	kind, err := medication.ParseKind(kindAnswer)
	if err != nil {
		a.println("Invalid type.")
		return nil
	}

	name, err := a.in.ask("Commercial name: ")
	if err != nil {
		return err
	}
	if exists, err := a.svc.Medications.Exists(ctx, name); err != nil {
		return err
	} else if exists {
		a.println("A medication with this name already exists!")
		return nil
	}

	compound, err := a.in.ask("Main active compound: ")
	if err != nil {
		return err
	}
	lab, err := a.chooseLaboratory(ctx)
	if err != nil || lab == nil {
		return err
	}
	description, err := a.in.ask("Short description: ")
	if err != nil {
		return err
	}
	priceAnswer, err := a.in.ask("Unit price (use a decimal point): ")
	if err != nil {
		return err
	}
	price, perr := types.NewMoneyFromString(priceAnswer)
	if perr != nil || price.IsNegative() {
		a.println("Invalid price. Registration cancelled.")
		return nil
	}

	var med *medication.Medication
	switch kind {
	case medication.KindChemotherapy:
		rx, err := a.in.confirm("Requires prescription?")
		if err != nil {
			return err
		}
		med = medication.NewChemotherapy(name, compound, lab, description, price, rx)
	case medication.KindPhytotherapy:
		med = medication.NewPhytotherapy(name, compound, lab, description, price)
	default:
		return apperror.NewInvalidInput("unknown medication type")
	}

	if err := a.svc.Medications.Create(ctx, med); err != nil {
		return err
	}
	a.println("Medication registered successfully!")
	return nil
}
