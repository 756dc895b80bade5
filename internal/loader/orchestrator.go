package loader

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rpattn/seedloader/internal/domain"
	"github.com/rpattn/seedloader/internal/report"
)

// RowSource produces the row sequence for one entity file.
type RowSource interface {
	Read(path string) ([]domain.Row, error)
}

// Orchestrator runs entity reconciliations in dependency order and aggregates
// their results. It never short-circuits on an empty or failing entity type;
// only structural errors (bad spec ordering, unsupported source format) abort
// the run.
type Orchestrator struct {
	source     RowSource
	reconciler *Reconciler
	reporter   report.Reporter
	dataDir    string
}

// NewOrchestrator creates an Orchestrator reading entity files from dataDir.
func NewOrchestrator(source RowSource, reconciler *Reconciler, reporter report.Reporter, dataDir string) *Orchestrator {
	return &Orchestrator{
		source:     source,
		reconciler: reconciler,
		reporter:   reporter,
		dataDir:    dataDir,
	}
}

// Run reconciles each entity spec in turn, in the order given. Before any
// entity is touched it verifies the order respects every declared reference
// edge, so dependent records are never written ahead of the records they
// point at.
func (o *Orchestrator) Run(ctx context.Context, specs []domain.EntitySpec) ([]domain.LoadResult, error) {
	if err := validateOrder(specs); err != nil {
		return nil, err
	}

	results := make([]domain.LoadResult, 0, len(specs))
	for _, spec := range specs {
		path := filepath.Join(o.dataDir, spec.SourceFile)
		rows, err := o.source.Read(path)
		if err != nil {
			return results, fmt.Errorf("failed to read %s source: %w", spec.Name, err)
		}

		result := o.reconciler.Reconcile(ctx, spec, rows)
		o.reporter.Infof("%s: %d rows processed", spec.Name, result.RowsAttempted)
		results = append(results, result)
	}

	return results, nil
}

// validateOrder checks that every referenced entity type appears before the
// spec that references it.
func validateOrder(specs []domain.EntitySpec) error {
	loaded := make(map[string]bool, len(specs))
	for _, spec := range specs {
		for _, ref := range spec.References() {
			if !loaded[ref] {
				return fmt.Errorf("entity %s references %s, which is not loaded before it", spec.Name, ref)
			}
		}
		loaded[spec.Name] = true
	}
	return nil
}
