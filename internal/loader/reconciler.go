// Package loader contains the reconciliation core: turning parsed rows into
// key-based upserts, one entity type at a time, in an order that respects the
// foreign keys between entity types.
package loader

import (
	"context"
	"time"

	"github.com/rpattn/seedloader/internal/coerce"
	"github.com/rpattn/seedloader/internal/domain"
	"github.com/rpattn/seedloader/internal/report"
	"github.com/rpattn/seedloader/internal/store"
)

// Reconciler performs the per-entity upsert pass. The algorithm is identical
// for every entity type; the EntitySpec carries everything type-specific.
type Reconciler struct {
	store    store.Store
	coercer  *coerce.Coercer
	reporter report.Reporter
	now      func() time.Time
}

// NewReconciler creates a Reconciler writing through the given store.
func NewReconciler(st store.Store, coercer *coerce.Coercer, reporter report.Reporter) *Reconciler {
	return &Reconciler{
		store:    st,
		coercer:  coercer,
		reporter: reporter,
		now:      time.Now,
	}
}

// Reconcile upserts every row against the store, in file order. Rows with a
// blank required-identifier field are skipped without an upsert or an error
// entry. A failed upsert is reported with the row's key and the pass moves on
// to the next row; one bad row never aborts the batch. Re-running with the
// same rows converges to the same stored state.
func (r *Reconciler) Reconcile(ctx context.Context, spec domain.EntitySpec, rows []domain.Row) domain.LoadResult {
	result := domain.LoadResult{Entity: spec.Name}

	for _, row := range rows {
		result.RowsAttempted++

		if missingIdentifier(spec, row) {
			// Silent-skip policy: a relationship row without its required
			// identifiers is excluded, not treated as an error.
			result.RowsSkipped++
			continue
		}

		record := r.buildRecord(spec, row)
		key, _ := record[spec.KeyField].(string)

		if err := r.store.Upsert(ctx, spec.Name, key, record); err != nil {
			r.reporter.Errorf("%s %q: upsert failed: %v", spec.Name, key, err)
			result.RowErrors++
			continue
		}
		result.RowsUpserted++
	}

	return result
}

// buildRecord coerces each schema field of the row into its typed value.
// Every field in the schema ends up with a value: either the parsed one or
// the coercion fallback. Optional timestamp fields that are blank or
// unparseable are materialized as the current time rather than the zero-time
// marker.
func (r *Reconciler) buildRecord(spec domain.EntitySpec, row domain.Row) domain.Record {
	record := make(domain.Record, len(spec.Fields))
	for _, field := range spec.Fields {
		raw := row[field.Name]
		switch field.Type {
		case domain.FieldTypeBoolean:
			record[field.Name] = r.coercer.ToBool(raw)
		case domain.FieldTypeInteger:
			record[field.Name] = r.coercer.ToInt(field.Name, raw)
		case domain.FieldTypeFloat:
			record[field.Name] = r.coercer.ToFloat(field.Name, raw)
		case domain.FieldTypeTimestamp:
			ts := r.coercer.ToTimestamp(field.Name, raw)
			if field.Optional && ts.IsZero() {
				ts = r.now().UTC()
			}
			record[field.Name] = ts
		default:
			record[field.Name] = raw
		}
	}
	return record
}

// missingIdentifier reports whether the row is missing a value for any field
// marked as a required identifier.
func missingIdentifier(spec domain.EntitySpec, row domain.Row) bool {
	for _, field := range spec.Fields {
		if field.RequiredIdentifier && row[field.Name] == "" {
			return true
		}
	}
	return false
}
