// Package rediscache implements the persistent local cache on Redis.
// It mirrors the boltdb implementation for deployments where several
// kiosk clients share one cache host instead of a local file.
package rediscache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/iudanet/shelfsync/internal/cache"
	"github.com/iudanet/shelfsync/internal/models"
)

// Ключевая схема - по префиксу на партицию.
// setItems и setFilters индексируют ключи партиций, чтобы ClearAll
// мог перечислить их без SCAN.
const (
	keyItemPrefix      = "item:"
	keyFilterSetPrefix = "filterset:"
	keyFilterMeta      = "filtermeta" // hash: fingerprint -> unix millis
	keyLastSeen        = "meta:last_seen"
	keySchemaVersion   = "meta:schema_version"
	setItems           = "items"
	setFilters         = "filtersets"
)

// Storage provides the partitioned feed cache in Redis.
type Storage struct {
	client *redis.Client
}

// New creates a new Redis cache instance.
func New(client *redis.Client) *Storage {
	return &Storage{client: client}
}

// Close releases the underlying client.
func (s *Storage) Close() error {
	return s.client.Close()
}

// PutItems inserts or overwrites items by id.
func (s *Storage) PutItems(ctx context.Context, items []models.ContentItem) error {
	if len(items) == 0 {
		return nil
	}

	pipe := s.client.TxPipeline()
	for i := range items {
		data, err := json.Marshal(&items[i])
		if err != nil {
			return fmt.Errorf("failed to marshal item %s: %w", items[i].ID, err)
		}
		pipe.Set(ctx, keyItemPrefix+items[i].ID, data, 0)
		pipe.SAdd(ctx, setItems, items[i].ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to put items: %w", err)
	}
	return nil
}

// GetAllItems returns every cached item.
func (s *Storage) GetAllItems(ctx context.Context) ([]models.ContentItem, error) {
	ids, err := s.client.SMembers(ctx, setItems).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list item ids: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	pipe := s.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, keyItemPrefix+id)
	}
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}

	items := make([]models.ContentItem, 0, len(ids))
	for _, cmd := range cmds {
		data, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Индекс опередил удаление ключа - пропускаем
				continue
			}
			return nil, fmt.Errorf("failed to get item: %w", err)
		}

		var item models.ContentItem
		if err := json.Unmarshal([]byte(data), &item); err != nil {
			return nil, fmt.Errorf("failed to unmarshal item: %w", err)
		}
		items = append(items, item)
	}

	return items, nil
}

// DeleteItem removes an item by id; deleting a missing id is not an error.
func (s *Storage) DeleteItem(ctx context.Context, id string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, keyItemPrefix+id)
	pipe.SRem(ctx, setItems, id)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete item %s: %w", id, err)
	}
	return nil
}

// PutFilterSet stores a filtered snapshot under its fingerprint,
// replacing any previous snapshot wholesale.
func (s *Storage) PutFilterSet(ctx context.Context, fingerprint string, items []models.ContentItem, fetchedAt time.Time) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal filter set: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, keyFilterSetPrefix+fingerprint, data, 0)
	pipe.HSet(ctx, keyFilterMeta, fingerprint, strconv.FormatInt(fetchedAt.UnixMilli(), 10))
	pipe.SAdd(ctx, setFilters, fingerprint)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to put filter set: %w", err)
	}
	return nil
}

// GetFilterSet retrieves the snapshot stored under fingerprint.
func (s *Storage) GetFilterSet(ctx context.Context, fingerprint string) (*cache.FilterSet, error) {
	data, err := s.client.Get(ctx, keyFilterSetPrefix+fingerprint).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, cache.ErrFilterSetNotFound
		}
		return nil, fmt.Errorf("failed to get filter set: %w", err)
	}

	var items []models.ContentItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal filter set: %w", err)
	}

	set := &cache.FilterSet{
		Fingerprint: fingerprint,
		Items:       items,
	}

	millis, err := s.client.HGet(ctx, keyFilterMeta, fingerprint).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get filter meta: %w", err)
	}
	if err == nil {
		ms, parseErr := strconv.ParseInt(millis, 10, 64)
		if parseErr != nil {
			return nil, fmt.Errorf("failed to parse filter meta: %w", parseErr)
		}
		set.FetchedAt = time.UnixMilli(ms)
	}

	return set, nil
}

// SetLastSeen persists the newest durably applied change timestamp.
func (s *Storage) SetLastSeen(ctx context.Context, ts time.Time) error {
	err := s.client.Set(ctx, keyLastSeen, strconv.FormatInt(ts.UnixMilli(), 10), 0).Err()
	if err != nil {
		return fmt.Errorf("failed to save last seen cursor: %w", err)
	}
	return nil
}

// GetLastSeen retrieves the newest durably applied change timestamp.
// Returns the zero time if no change has been applied yet.
func (s *Storage) GetLastSeen(ctx context.Context) (time.Time, error) {
	millis, err := s.client.Get(ctx, keyLastSeen).Result()
	if err != nil {
		if err == redis.Nil {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("failed to get last seen cursor: %w", err)
	}

	ms, err := strconv.ParseInt(millis, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse last seen cursor: %w", err)
	}
	return time.UnixMilli(ms), nil
}

// SetSchemaVersion persists the schema version token.
func (s *Storage) SetSchemaVersion(ctx context.Context, version string) error {
	if err := s.client.Set(ctx, keySchemaVersion, version, 0).Err(); err != nil {
		return fmt.Errorf("failed to save schema version: %w", err)
	}
	return nil
}

// GetSchemaVersion retrieves the locally stored schema version token.
func (s *Storage) GetSchemaVersion(ctx context.Context) (string, error) {
	version, err := s.client.Get(ctx, keySchemaVersion).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}

// ClearAll wipes every partition in one MULTI/EXEC transaction.
func (s *Storage) ClearAll(ctx context.Context) error {
	itemIDs, err := s.client.SMembers(ctx, setItems).Result()
	if err != nil {
		return fmt.Errorf("failed to list item ids: %w", err)
	}
	fingerprints, err := s.client.SMembers(ctx, setFilters).Result()
	if err != nil {
		return fmt.Errorf("failed to list fingerprints: %w", err)
	}

	pipe := s.client.TxPipeline()
	for _, id := range itemIDs {
		pipe.Del(ctx, keyItemPrefix+id)
	}
	for _, fp := range fingerprints {
		pipe.Del(ctx, keyFilterSetPrefix+fp)
	}
	pipe.Del(ctx, setItems, setFilters, keyFilterMeta, keyLastSeen, keySchemaVersion)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}
