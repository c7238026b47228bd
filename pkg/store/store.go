package store

import "context"

// SnapshotStore is the durable key-value persistence collaborator. It sees
// only an opaque serialized snapshot; the catalog decides what is durable.
// Implementations: file on disk, Redis. Swappable for tests.
type SnapshotStore interface {
	// Load returns the stored snapshot. found=false means nothing was ever
	// saved, which is not an error.
	Load(ctx context.Context) (data []byte, found bool, err error)

	// Save overwrites the stored snapshot.
	Save(ctx context.Context, data []byte) error
}
