package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const (
	keyLastSeen      = "last_seen"
	keySchemaVersion = "schema_version"
)

// SetLastSeen persists the newest durably applied change timestamp
func (s *Storage) SetLastSeen(ctx context.Context, ts time.Time) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncCursor)
		if bucket == nil {
			return fmt.Errorf("sync_cursor bucket not found")
		}

		// Конвертируем метку времени в big-endian миллисекунды
		tsBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(tsBytes, uint64(ts.UnixMilli()))

		if err := bucket.Put([]byte(keyLastSeen), tsBytes); err != nil {
			return fmt.Errorf("failed to save last seen cursor: %w", err)
		}

		return nil
	})
}

// GetLastSeen retrieves the newest durably applied change timestamp
// Returns the zero time if no change has been applied yet
func (s *Storage) GetLastSeen(ctx context.Context) (time.Time, error) {
	var ts time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncCursor)
		if bucket == nil {
			return fmt.Errorf("sync_cursor bucket not found")
		}

		tsBytes := bucket.Get([]byte(keyLastSeen))
		if tsBytes == nil {
			// Курсор еще не сохранялся - начинаем с эпохи
			return nil
		}

		ts = time.UnixMilli(int64(binary.BigEndian.Uint64(tsBytes)))
		return nil
	})

	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last seen cursor: %w", err)
	}

	return ts, nil
}

// SetSchemaVersion persists the schema version token
func (s *Storage) SetSchemaVersion(ctx context.Context, version string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSchema)
		if bucket == nil {
			return fmt.Errorf("schema bucket not found")
		}

		if err := bucket.Put([]byte(keySchemaVersion), []byte(version)); err != nil {
			return fmt.Errorf("failed to save schema version: %w", err)
		}

		return nil
	})
}

// GetSchemaVersion retrieves the locally stored schema version token
// Returns an empty string if none is stored
func (s *Storage) GetSchemaVersion(ctx context.Context) (string, error) {
	var version string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSchema)
		if bucket == nil {
			return fmt.Errorf("schema bucket not found")
		}

		if data := bucket.Get([]byte(keySchemaVersion)); data != nil {
			version = string(data)
		}

		return nil
	})

	if err != nil {
		return "", fmt.Errorf("failed to get schema version: %w", err)
	}

	return version, nil
}
