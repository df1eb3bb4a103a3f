package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/shelfsync/internal/cache"
	"github.com/iudanet/shelfsync/internal/models"
)

// PutFilterSet stores a filtered snapshot under its fingerprint,
// replacing any previous snapshot wholesale. The snapshot and its
// fetch timestamp are written in one transaction, so a reader never
// sees one without the other.
func (s *Storage) PutFilterSet(ctx context.Context, fingerprint string, items []models.ContentItem, fetchedAt time.Time) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		sets := tx.Bucket(bucketFilterSets)
		if sets == nil {
			return fmt.Errorf("filter_sets bucket not found")
		}
		meta := tx.Bucket(bucketFilterMeta)
		if meta == nil {
			return fmt.Errorf("filter_meta bucket not found")
		}

		// Сериализуем снимок целиком
		data, err := json.Marshal(items)
		if err != nil {
			return fmt.Errorf("failed to marshal filter set: %w", err)
		}

		if err := sets.Put([]byte(fingerprint), data); err != nil {
			return fmt.Errorf("failed to put filter set: %w", err)
		}

		// Время выборки храним в миллисекундах big-endian
		tsBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(tsBytes, uint64(fetchedAt.UnixMilli()))

		if err := meta.Put([]byte(fingerprint), tsBytes); err != nil {
			return fmt.Errorf("failed to put filter meta: %w", err)
		}

		return nil
	})
}

// GetFilterSet retrieves the snapshot stored under fingerprint
// Returns cache.ErrFilterSetNotFound if no snapshot exists
func (s *Storage) GetFilterSet(ctx context.Context, fingerprint string) (*cache.FilterSet, error) {
	var set *cache.FilterSet

	err := s.db.View(func(tx *bbolt.Tx) error {
		sets := tx.Bucket(bucketFilterSets)
		if sets == nil {
			return fmt.Errorf("filter_sets bucket not found")
		}
		meta := tx.Bucket(bucketFilterMeta)
		if meta == nil {
			return fmt.Errorf("filter_meta bucket not found")
		}

		data := sets.Get([]byte(fingerprint))
		if data == nil {
			return cache.ErrFilterSetNotFound
		}

		var items []models.ContentItem
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("failed to unmarshal filter set: %w", err)
		}

		set = &cache.FilterSet{
			Fingerprint: fingerprint,
			Items:       items,
		}

		// Метаданные пишутся в одной транзакции со снимком,
		// но при их отсутствии снимок считается устаревшим (нулевое время)
		if tsBytes := meta.Get([]byte(fingerprint)); tsBytes != nil {
			set.FetchedAt = time.UnixMilli(int64(binary.BigEndian.Uint64(tsBytes)))
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return set, nil
}
