// Package console implements the interactive operator interface of the
// point of sale: menus, registration forms, the sale flow and reports.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"pharmacy/internal/core/apperror"
	"pharmacy/internal/domain/catalogs/client"
	"pharmacy/internal/domain/catalogs/laboratory"
	"pharmacy/internal/domain/catalogs/medication"
	"pharmacy/internal/domain/documents/sale"
	"pharmacy/internal/domain/reports"
	"pharmacy/pkg/logger"
)

// Services groups the domain services the console drives.
type Services struct {
	Clients      *client.Service
	Laboratories *laboratory.Service
	Medications  *medication.Service
	Sales        *sale.Service
	Reports      *reports.Service
}

// App is one console session.
type App struct {
	svc    Services
	in     *prompter
	out    io.Writer
	clock  func() time.Time
	banner string
}

// Option configures an App.
type Option func(*App)

// WithClock overrides the time source used for ages and quotes.
func WithClock(clock func() time.Time) Option {
	return func(a *App) { a.clock = clock }
}

// WithBanner sets the line printed at start-up.
func WithBanner(banner string) Option {
	return func(a *App) { a.banner = banner }
}

// New creates a console session reading from in and writing to out.
func New(svc Services, in io.Reader, out io.Writer, opts ...Option) *App {
	a := &App{
		svc:    svc,
		in:     newPrompter(in, out),
		out:    out,
		clock:  time.Now,
		banner: "Starting pharmacy point of sale...",
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// Run drives the main menu until the operator exits or input ends.
// The end-of-session report is printed on the way out.
func (a *App) Run(ctx context.Context) error {
	a.println(a.banner)

	err := a.mainLoop(ctx)
	if err != nil && !errors.Is(err, errInputClosed) {
		return err
	}

	if err := a.showStatistics(ctx); err != nil {
		return err
	}
	a.println("Leaving the system. Goodbye!")
	return nil
}

func (a *App) mainLoop(ctx context.Context) error {
	for {
		a.println("\n============ Pharmacy Point of Sale ============")
		a.println("1. Register client")
		a.println("2. Register laboratory")
		a.println("3. Register medication")
		a.println("4. Make a sale")
		a.println("5. Reports")
		a.println("6. Exit")
		a.println(ruler)

		choice, err := a.in.ask("Choose an option (1-6): ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = a.registerClient(ctx)
		case "2":
			err = a.registerLaboratory(ctx)
		case "3":
			err = a.registerMedication(ctx)
		case "4":
			err = a.makeSale(ctx)
		case "5":
			err = a.reportsLoop(ctx)
		case "6":
			return nil
		default:
			a.println("Invalid option. Try again.")
		}
		if err != nil && !a.recoverable(ctx, err) {
			return err
		}
	}
}

// recoverable prints business errors and reports whether the loop may go on.
func (a *App) recoverable(ctx context.Context, err error) bool {
	if errors.Is(err, errInputClosed) {
		return false
	}
	if !apperror.IsAppError(err) {
		logger.Error(ctx, "console operation failed", "error", err)
	}
	a.printf("Error: %s\n", apperror.UserMessage(err))
	return true
}

func (a *App) reportsLoop(ctx context.Context) error {
	for {
		a.println("\n================ Reports Menu ================")
		a.println("1. List clients")
		a.println("2. List all medications")
		a.println("3. List medications by type")
		a.println("4. Show session statistics")
		a.println("5. Back to main menu")
		a.println(ruler)

		choice, err := a.in.ask("Choose an option (1-5): ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = a.listClients(ctx)
		case "2":
			err = a.listMedications(ctx)
		case "3":
			err = a.listMedicationsByKind(ctx)
		case "4":
			err = a.showStatistics(ctx)
		case "5":
			return nil
		default:
			a.println("Invalid option. Try again.")
		}
		if err != nil && !a.recoverable(ctx, err) {
			return err
		}
	}
}
