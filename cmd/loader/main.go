package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/rpattn/seedloader/internal/coerce"
	"github.com/rpattn/seedloader/internal/config"
	"github.com/rpattn/seedloader/internal/db"
	"github.com/rpattn/seedloader/internal/domain"
	"github.com/rpattn/seedloader/internal/loader"
	"github.com/rpattn/seedloader/internal/report"
	"github.com/rpattn/seedloader/internal/rowsource"
	"github.com/rpattn/seedloader/internal/store"
)

func main() {
	runID := uuid.New().String()
	reporter := report.NewConsoleReporter("seedloader", runID)

	if err := run(context.Background(), reporter); err != nil {
		reporter.Errorf("migration failed: %v", err)
		os.Exit(1)
	}
}

// run performs one full migration. The store connection is acquired once and
// released on every exit path; only structural errors escape here — per-row
// and per-file failures are degraded inside the loader packages.
func run(ctx context.Context, reporter report.Reporter) error {
	// Optional .env for local development; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	conn, err := db.NewConnection(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer conn.Close()

	coercer := coerce.New(reporter)
	reconciler := loader.NewReconciler(store.NewPostgresStore(conn), coercer, reporter)
	source := rowsource.New(reporter)
	orchestrator := loader.NewOrchestrator(source, reconciler, reporter, cfg.DataDir)

	results, err := orchestrator.Run(ctx, domain.DefaultSpecs())
	if err != nil {
		return err
	}

	reporter.Infof("migration complete")
	for _, result := range results {
		reporter.Infof("%s: attempted=%d upserted=%d skipped=%d errors=%d",
			result.Entity, result.RowsAttempted, result.RowsUpserted, result.RowsSkipped, result.RowErrors)
	}
	return nil
}
