// Package storage implements the durable write-through layer. Every mutation
// of an in-memory collection is mirrored to the backing store as a full
// overwrite of that collection's document before the operation completes.
package storage

import "context"

// Collection names of the two durable collections.
const (
	CollectionUsers    = "users"
	CollectionProjects = "projects"
)

// Store is a durable document store keyed by collection name.
type Store interface {
	// Load returns the last saved document for the collection, or (nil, nil)
	// when the collection has never been saved. Called once per collection
	// at process start.
	Load(ctx context.Context, collection string) ([]byte, error)

	// Save overwrites the collection's document. Synchronous: the caller's
	// mutation is not committed until Save returns.
	Save(ctx context.Context, collection string, data []byte) error
}
