package console

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacy/internal/infrastructure/seed"
)

var fixedNow = time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func lines(answers ...string) string {
	return strings.Join(answers, "\n") + "\n"
}

func run(t *testing.T, demo bool, input string) string {
	t.Helper()
	ctx := context.Background()

	svc := NewInMemoryServices(WireConfig{Clock: clock})
	if demo {
		require.NoError(t, seed.LoadDemo(ctx, seed.Catalogs{
			Clients:      svc.Clients,
			Laboratories: svc.Laboratories,
			Medications:  svc.Medications,
		}))
	}

	var out bytes.Buffer
	app := New(svc, strings.NewReader(input), &out, WithClock(clock))
	require.NoError(t, app.Run(ctx))
	return out.String()
}

func TestRun_ExitPrintsStatistics(t *testing.T) {
	out := run(t, false, lines("6"))

	assert.Contains(t, out, "Clients served: 0")
	assert.Contains(t, out, "No medication sold yet.")
	assert.Contains(t, out, "Chemotherapy sold: 0 units | Total value: 0.00")
	assert.Contains(t, out, "Goodbye")
}

func TestRun_EndOfInputActsAsExit(t *testing.T) {
	out := run(t, false, "")
	assert.Contains(t, out, "Clients served: 0")
	assert.Contains(t, out, "Goodbye")
}

func TestRun_InvalidOption(t *testing.T) {
	out := run(t, false, lines("9", "6"))
	assert.Contains(t, out, "Invalid option. Try again.")
}

func TestRun_RegisterAndSell(t *testing.T) {
	out := run(t, false, lines(
		"1", "111", "Maria", "1990-02-03",
		"2", "EMS", "Rua A, 1", "19 3887", "Hortolandia", "sp",
		"3", "Q", "Cisplatina", "cisplatin", "1", "platinum", "20.00", "y",
		"3", "F", "Guaco", "mikania", "1", "syrup", "10.00",
		"4", "111",
		"1", "Guaco", "2", "y",
		"1", "Cisplatina", "1", "n",
		"y",
		"6",
	))

	assert.Contains(t, out, "Client registered successfully!")
	assert.Contains(t, out, "1. EMS (Hortolandia-SP)")
	assert.Contains(t, out, "Medication registered successfully!")
	assert.Contains(t, out, "WARNING: check the prescription for: Cisplatina")
	assert.Contains(t, out, "Subtotal: 40.00")
	assert.Contains(t, out, "No discount applied.")
	assert.Contains(t, out, "Final total: 40.00")
	assert.Contains(t, out, "Sale VD-2026-00001 registered successfully!")
	assert.Contains(t, out, "Clients served: 1")
	assert.Contains(t, out, "Best-selling medication: Guaco")
	assert.Contains(t, out, "Total quantity sold: 2 units")
	assert.Contains(t, out, "Chemotherapy sold: 1 units | Total value: 20.00")
	assert.Contains(t, out, "Phytotherapy sold: 2 units | Total value: 20.00")
}

func TestRun_DuplicateRegistrations(t *testing.T) {
	out := run(t, true, lines(
		"1", "12345678900",
		"2", "EMS",
		"3", "F", "Guaco",
		"6",
	))
	assert.Contains(t, out, "A client with this ID already exists!")
	assert.Contains(t, out, "A laboratory with this name already exists!")
	assert.Contains(t, out, "A medication with this name already exists!")
}

func TestRun_InvalidRegistrationInput(t *testing.T) {
	out := run(t, true, lines(
		"1", "555", "Bad Date", "03/02/1990",
		"3", "X",
		"3", "F", "Boldo", "peumus", "1", "tea", "-1",
		"6",
	))
	assert.Contains(t, out, "Invalid date format. Registration cancelled.")
	assert.Contains(t, out, "Invalid type.")
	assert.Contains(t, out, "Invalid price. Registration cancelled.")
}

func TestRun_DeclinedSaleChangesNothing(t *testing.T) {
	out := run(t, true, lines(
		"4", "98765432100",
		"1", "Paclitaxel", "1", "n",
		"n",
		"6",
	))

	assert.Contains(t, out, "Discount applied: 20% (elderly) => 24.00")
	assert.Contains(t, out, "Final total: 96.00")
	assert.Contains(t, out, "Sale not confirmed.")
	assert.Contains(t, out, "Clients served: 0")
	assert.Contains(t, out, "No medication sold yet.")
}

func TestRun_UnknownClient(t *testing.T) {
	out := run(t, true, lines("4", "000", "6"))
	assert.Contains(t, out, "Client not registered. Operation cancelled.")
}

func TestRun_InvalidQuantityIsNotAdded(t *testing.T) {
	out := run(t, true, lines(
		"4", "12345678900",
		"1", "Guaco", "0",
		"1", "Guaco", "abc",
		"1", "Guaco", "3", "n",
		"y",
		"6",
	))

	assert.Equal(t, 2, strings.Count(out, "Invalid quantity. Item not added."))
	assert.Contains(t, out, "Subtotal: 30.00")
	assert.Contains(t, out, "Total quantity sold: 3 units")
}

func TestRun_DisambiguateByLaboratory(t *testing.T) {
	out := run(t, true, lines(
		"4", "12345678900",
		"2", "EUROFARMA", "2", "10", "n",
		"y",
		"6",
	))

	assert.Contains(t, out, "Several medications found:")
	assert.Contains(t, out, "Discount applied: 10% (purchase over 150.00) => 20.00")
	assert.Contains(t, out, "Final total: 180.00")
	assert.Contains(t, out, "Best-selling medication: Cisplatina")
}

func TestRun_SearchByDescriptionAndExpression(t *testing.T) {
	out := run(t, true, lines(
		"4", "12345678900",
		"3", "SYRUP", "1", "y",
		"4", `kind == "phytotherapy" && price > 40.0`, "1", "n",
		"y",
		"6",
	))

	assert.Contains(t, out, "Subtotal: 52.00")
	assert.Contains(t, out, "Phytotherapy sold: 2 units | Total value: 52.00")
}

func TestRun_InvalidExpression(t *testing.T) {
	out := run(t, true, lines(
		"4", "12345678900",
		"4", "price >", "n",
		"6",
	))
	assert.Contains(t, out, "Invalid search: invalid filter expression")
	assert.Contains(t, out, "No item added. Sale cancelled.")
}

func TestRun_NothingFoundCancelsSale(t *testing.T) {
	out := run(t, true, lines(
		"4", "12345678900",
		"1", "Aspirin", "n",
		"6",
	))
	assert.Contains(t, out, "No medication matches the given criteria.")
	assert.Contains(t, out, "No item added. Sale cancelled.")
}

func TestRun_Reports(t *testing.T) {
	out := run(t, true, lines(
		"5", "1", "2", "3", "Q", "3", "Z", "4", "5",
		"6",
	))

	assert.Contains(t, out, "--- Clients (A-Z) ---")
	ana := strings.Index(out, "Ana Souza | ID: 12345678900")
	jose := strings.Index(out, "Jose Lima | ID: 98765432100")
	require.True(t, ana >= 0 && jose >= 0)
	assert.Less(t, ana, jose)

	assert.Contains(t, out, "--- Medications (A-Z) ---")
	assert.Contains(t, out, "--- Chemotherapy medications ---")
	assert.Contains(t, out, "[Chemotherapy] Cisplatina (cisplatin) | Lab: Eurofarma | Price: 20.00 | Prescription required")
	assert.Contains(t, out, "Invalid type.")
	assert.Equal(t, 2, strings.Count(out, "Session Sales Report"))
}

func TestRun_EmptyReports(t *testing.T) {
	out := run(t, false, lines("5", "1", "2", "5", "3", "F", "Boldo", "peumus", "6"))
	assert.Contains(t, out, "No client registered.")
	assert.Contains(t, out, "No medication registered.")
	assert.Contains(t, out, "No laboratory registered.")
}
