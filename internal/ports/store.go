package ports

import (
	"context"

	"github.com/jsamuelsen11/taskplace-api/internal/domain"
)

// Collection names.
const (
	CollectionUsers  = "users"
	CollectionTasks  = "tasks"
	CollectionPlaces = "places"
)

// Store holds whole collections of records. Every mutation is a read of the
// full collection followed by a write of the full collection; the store does
// no locking of its own.
type Store interface {
	// ReadAll returns every record of the collection in stored order.
	// An empty backing store yields an empty slice, not an error.
	ReadAll(ctx context.Context, collection string) ([]domain.Record, error)

	// WriteAll replaces the collection with records. The replacement is
	// all-or-nothing.
	WriteAll(ctx context.Context, collection string, records []domain.Record) error
}
