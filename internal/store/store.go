package store

import (
	"context"

	"github.com/rpattn/seedloader/internal/domain"
)

// Store is the persistence capability the loader writes through. Upsert must
// insert a new record or update the existing one matching key, atomically from
// the caller's perspective, which is what makes re-running a migration
// converge to the same stored state.
type Store interface {
	Upsert(ctx context.Context, entityType string, key string, fields domain.Record) error
}
