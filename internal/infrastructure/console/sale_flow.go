package console

import (
	"context"
	"fmt"

	"pharmacy/internal/core/apperror"
	"pharmacy/internal/domain/catalogs/medication"
	"pharmacy/internal/domain/documents/sale"
	"pharmacy/pkg/logger"
)

var searchModes = []struct {
	label  string
	prompt string
	mode   medication.SearchMode
}{
	{"Exact name", "Exact medication name: ", medication.SearchByName},
	{"Laboratory name", "Laboratory name: ", medication.SearchByLaboratory},
	{"Text in description", "Text to search in the description: ", medication.SearchByDescription},
	{"Filter expression", "Expression (e.g. kind == \"phytotherapy\" && price < 20.0): ", medication.SearchByExpression},
}

// searchMedications asks for a search mode and query and returns the matches.
func (a *App) searchMedications(ctx context.Context) ([]*medication.Medication, error) {
	all, err := a.svc.Medications.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		a.println("No medication registered.")
		return nil, nil
	}

	a.println("Search medications by:")
	labels := make([]string, 0, len(searchModes))
	for _, m := range searchModes {
		labels = append(labels, m.label)
	}
	idx, ok, err := a.in.choose(fmt.Sprintf("Choose (1-%d): ", len(searchModes)), labels)
	if err != nil {
		return nil, err
	}
	if !ok {
		a.println("Invalid option.")
		return nil, nil
	}

	query, err := a.in.ask(searchModes[idx].prompt)
	if err != nil {
		return nil, err
	}

	found, err := a.svc.Medications.Search(ctx, searchModes[idx].mode, query)
	if apperror.Is(err, apperror.CodeInvalidInput) {
		a.printf("Invalid search: %s\n", apperror.UserMessage(err))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		a.println("No medication matches the given criteria.")
	}
	return found, nil
}

// pickMedication narrows matches down to one. nil means the choice was invalid.
func (a *App) pickMedication(found []*medication.Medication) (*medication.Medication, error) {
	if len(found) == 1 {
		return found[0], nil
	}
	a.println("Several medications found:")
	options := make([]string, 0, len(found))
	for _, m := range found {
		options = append(options, formatMedication(m))
	}
	idx, ok, err := a.in.choose("Choose the medication number: ", options)
	if err != nil {
		return nil, err
	}
	if !ok {
		a.println("Invalid choice. Back to adding items.")
		return nil, nil
	}
	return found[idx], nil
}

// fillCart runs the add-item loop until the operator stops.
func (a *App) fillCart(ctx context.Context, cart *sale.Cart) error {
	for {
		a.println("\n--- Add item ---")
		found, err := a.searchMedications(ctx)
		if err != nil {
			return err
		}
		if len(found) == 0 {
			again, err := a.in.confirm("Try another search?")
			if err != nil {
				return err
			}
			if !again {
				return nil
			}
			continue
		}

		med, err := a.pickMedication(found)
		if err != nil {
			return err
		}
		if med == nil {
			continue
		}

		qty, ok, err := a.in.askInt(fmt.Sprintf("Quantity of '%s': ", med.Name))
		if err != nil {
			return err
		}
		if !ok {
			qty = 0
		}
		if err := cart.AddItem(med, qty); err != nil {
			if apperror.Is(err, apperror.CodeInvalidQuantity) {
				a.println("Invalid quantity. Item not added.")
				continue
			}
			return err
		}

		more, err := a.in.confirm("Add another medication?")
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

func (a *App) makeSale(ctx context.Context) error {
	clientID, err := a.in.ask("Client ID for the sale (digits only): ")
	if err != nil {
		return err
	}
	buyer, err := a.svc.Clients.GetByID(ctx, clientID)
	if apperror.IsNotFound(err) {
		a.println("Client not registered. Operation cancelled.")
		return nil
	}
	if err != nil {
		return err
	}

	cart := sale.NewCart()
	if err := a.fillCart(ctx, cart); err != nil {
		return err
	}

	quote, err := a.svc.Sales.Quote(cart, buyer, a.clock())
	if apperror.Is(err, apperror.CodeEmptyCart) {
		a.println("No item added. Sale cancelled.")
		return nil
	}
	if err != nil {
		return err
	}

	renderQuote(a.out, quote)

	ok, err := a.in.confirm("Confirm sale?")
	if err != nil {
		return err
	}
	if !ok {
		logger.Info(ctx, "sale declined", "client", buyer.ClientID, "lines", quote.LineCount)
		a.println("Sale not confirmed.")
		return nil
	}

	doc, err := a.svc.Sales.Commit(ctx, cart, buyer, quote)
	if err != nil {
		return err
	}
	a.printf("Sale %s registered successfully!\n", doc.Number)
	return nil
}
