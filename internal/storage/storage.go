// Package storage defines the Repository interface — the contract any
// persistence backend must satisfy to work with the services.
//
// Services depend only on this interface, so tests can pass an in-memory
// fake and main can choose SQLite or PostgreSQL without touching them.
package storage

import "context"

// Repository is a by-id store of one entity kind.
type Repository[E any] interface {
	// Save inserts e when it has no identity yet (the store assigns one)
	// and upserts it by identity otherwise. The persisted value is
	// returned, identity included.
	Save(ctx context.Context, e E) (E, error)

	// FindAll returns every stored entity. The slice is empty, never nil,
	// when there are no records. Order is storage-defined.
	FindAll(ctx context.Context) ([]E, error)

	// FindByID reports found=false when no record has that id. Absence
	// is not an error.
	FindByID(ctx context.Context, id int64) (e E, found bool, err error)

	// DeleteByID removes the record. Deleting a missing id is a no-op.
	DeleteByID(ctx context.Context, id int64) error
}
