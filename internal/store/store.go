// Package store defines the document-store contract the persistence layer
// depends on. Implementations live under internal/store/<driver>/.
package store

import (
	"context"
	"encoding/json"
)

// Store is a durable key/value document store organised by collection.
// Each collection holds JSON documents keyed by a record key.
//
// GetValue returns (nil, nil) for missing records; corrupt records also
// degrade to (nil, nil) so a bad row can never take the application down.
// SetValue returns an error the caller must handle. There is no atomicity
// across calls: bulk writers accept partial-failure risk.
type Store interface {
	GetValue(ctx context.Context, collection, key string) (json.RawMessage, error)
	SetValue(ctx context.Context, collection, key string, value interface{}) error
	DeleteValue(ctx context.Context, collection, key string) error
	Clear(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}
