// Package storage provides the durable snapshot side-channel used by the
// session and catalog stores. A store writes a full serialized copy of its
// state under a fixed key on every mutation and reads it back on restart.
package storage

import "context"

// Snapshot keys. One per store-owned aggregate.
const (
	KeyDirectory = "allUsers"
	KeySession   = "user"
	KeyCatalog   = "courses"
)

type SnapshotStore interface {
	// Save overwrites the snapshot stored under key.
	Save(ctx context.Context, key string, data []byte) error
	// Load returns the snapshot under key, or ok=false when absent.
	Load(ctx context.Context, key string) (data []byte, ok bool, err error)
	// Delete removes the snapshot under key. Deleting an absent key is not
	// an error.
	Delete(ctx context.Context, key string) error
}
