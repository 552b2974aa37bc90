// Package main is the entry point for the pharmacy point-of-sale console.
package main

import (
	"context"
	"fmt"
	"os"

	"pharmacy/internal/config"
	appctx "pharmacy/internal/core/context"
	"pharmacy/internal/infrastructure/console"
	"pharmacy/internal/infrastructure/metrics"
	"pharmacy/internal/infrastructure/seed"
	"pharmacy/pkg/logger"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
		OutputPaths: []string{cfg.Log.Output},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	session := appctx.NewSessionContext(cfg.POS.Operator)
	ctx := appctx.WithSession(context.Background(), session)
	ctx = logger.WithLogger(ctx, log.WithComponent("pos"))

	log.Infow("starting point of sale",
		"session_id", session.SessionID,
		"operator", session.Operator,
		"sale_prefix", cfg.POS.SaleNumberPrefix,
	)

	reg := metrics.NewRegistry()
	svc := console.NewInMemoryServices(console.WireConfig{
		Metrics:      reg,
		NumberPrefix: cfg.POS.SaleNumberPrefix,
	})

	if cfg.Seed.DemoData {
		if err := seed.LoadDemo(ctx, seed.Catalogs{
			Clients:      svc.Clients,
			Laboratories: svc.Laboratories,
			Medications:  svc.Medications,
		}); err != nil {
			log.Fatalw("failed to load demo catalog", "error", err)
		}
	}

	app := console.New(svc, os.Stdin, os.Stdout,
		console.WithBanner(fmt.Sprintf("Starting pharmacy point of sale (operator: %s)...", session.Operator)),
	)
	if err := app.Run(ctx); err != nil {
		log.Fatalw("console session failed", "error", err)
	}

	logSessionMetrics(ctx, reg)
	log.Info("point of sale stopped")
}

// logSessionMetrics writes the final counter values to the log.
func logSessionMetrics(ctx context.Context, reg *metrics.Registry) {
	families, err := reg.Gatherer().Gather()
	if err != nil {
		logger.Warn(ctx, "failed to gather session metrics", "error", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var value float64
			switch {
			case m.GetCounter() != nil:
				value = m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				value = float64(m.GetHistogram().GetSampleCount())
			default:
				continue
			}
			logger.Debug(ctx, "session metric", "name", mf.GetName(), "labels", m.GetLabel(), "value", value)
		}
	}
}
