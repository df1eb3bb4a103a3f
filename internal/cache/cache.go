// Package cache defines the persistent local cache contract: a
// durable, partitioned mirror of the feed that survives restarts.
// Implementations live in subpackages (boltdb, rediscache).
package cache

import (
	"context"
	"time"

	"github.com/iudanet/shelfsync/internal/models"
)

//go:generate moq -out cache_mock.go . Storage

// FilterSet кешированный результат фильтрованного запроса:
// целостный снимок, заменяемый только целиком.
type FilterSet struct {
	FetchedAt   time.Time            `json:"fetched_at"`
	Fingerprint string               `json:"fingerprint"`
	Items       []models.ContentItem `json:"items"`
}

// ItemStore defines operations on the raw items partition
type ItemStore interface {
	// PutItems inserts or overwrites items by id
	PutItems(ctx context.Context, items []models.ContentItem) error

	// GetAllItems returns every cached item
	GetAllItems(ctx context.Context) ([]models.ContentItem, error)

	// DeleteItem removes an item by id; deleting a missing id is not an error
	DeleteItem(ctx context.Context, id string) error
}

// FilterStore defines operations on the filtered result set partitions
type FilterStore interface {
	// PutFilterSet stores a filtered snapshot under its fingerprint,
	// replacing any previous snapshot wholesale
	PutFilterSet(ctx context.Context, fingerprint string, items []models.ContentItem, fetchedAt time.Time) error

	// GetFilterSet retrieves the snapshot stored under fingerprint
	// Returns ErrFilterSetNotFound if no snapshot exists
	GetFilterSet(ctx context.Context, fingerprint string) (*FilterSet, error)
}

// MetaStore defines operations on the metadata partition
type MetaStore interface {
	// GetLastSeen retrieves the newest durably applied change timestamp
	// Returns the zero time if no change has been applied yet
	GetLastSeen(ctx context.Context) (time.Time, error)

	// SetLastSeen persists the newest durably applied change timestamp
	SetLastSeen(ctx context.Context, ts time.Time) error

	// GetSchemaVersion retrieves the locally stored schema version token
	// Returns an empty string if none is stored
	GetSchemaVersion(ctx context.Context) (string, error)

	// SetSchemaVersion persists the schema version token
	SetSchemaVersion(ctx context.Context, version string) error
}

// Storage is the full partitioned cache: items, filtered snapshots and
// metadata, plus a clear operation spanning every partition
type Storage interface {
	ItemStore
	FilterStore
	MetaStore

	// ClearAll wipes every partition. Partial clears must not be
	// observable once ClearAll returns.
	ClearAll(ctx context.Context) error

	// Close releases storage resources
	Close() error
}
