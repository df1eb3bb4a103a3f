package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"
)

// Имена bucket'ов - по одному на партицию кеша.
// Список allBuckets является единственным перечислением партиций:
// ClearAll и инициализация работают только через него, поэтому
// добавление новой партиции не может разойтись с очисткой.
var (
	bucketItems      = []byte("items")        // сырые посты по id
	bucketFilterSets = []byte("filter_sets")  // снимки фильтрованных выборок по фингерпринту
	bucketFilterMeta = []byte("filter_meta")  // время выборки по фингерпринту
	bucketSyncCursor = []byte("sync_cursor")  // курсор последнего примененного изменения
	bucketSchema     = []byte("schema")       // маркер версии схемы

	allBuckets = [][]byte{
		bucketItems,
		bucketFilterSets,
		bucketFilterMeta,
		bucketSyncCursor,
		bucketSchema,
	}
)

// Storage represents BoltDB implementation of the persistent local cache
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB cache instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	// Инициализируем buckets
	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets создает все партиции, если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", name, err)
			}
		}
		return nil
	})
}

// ClearAll wipes every partition in a single transaction, so a partial
// clear is never observable
func (s *Storage) ClearAll(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range allBuckets {
			if err := tx.DeleteBucket(name); err != nil {
				return fmt.Errorf("failed to delete bucket %s: %w", name, err)
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return fmt.Errorf("failed to recreate bucket %s: %w", name, err)
			}
		}
		return nil
	})
}
