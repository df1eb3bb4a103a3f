package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/shelfsync/internal/cache"
	"github.com/iudanet/shelfsync/internal/models"
)

// PutItems inserts or overwrites items in the raw items partition
func (s *Storage) PutItems(ctx context.Context, items []models.ContentItem) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketItems)
		if bucket == nil {
			return fmt.Errorf("items bucket not found")
		}

		for i := range items {
			// Сериализуем пост в JSON
			data, err := json.Marshal(&items[i])
			if err != nil {
				return fmt.Errorf("failed to marshal item %s: %w", items[i].ID, err)
			}

			// Сохраняем по ID: повторная запись перезаписывает
			if err := bucket.Put([]byte(items[i].ID), data); err != nil {
				return fmt.Errorf("failed to put item %s: %w", items[i].ID, err)
			}
		}

		return nil
	})
}

// GetItem retrieves a single item by id
// Returns cache.ErrItemNotFound if the item is not cached
func (s *Storage) GetItem(ctx context.Context, id string) (*models.ContentItem, error) {
	var item *models.ContentItem

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketItems)
		if bucket == nil {
			return fmt.Errorf("items bucket not found")
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return cache.ErrItemNotFound
		}

		item = &models.ContentItem{}
		if err := json.Unmarshal(data, item); err != nil {
			return fmt.Errorf("failed to unmarshal item: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return item, nil
}

// GetAllItems returns every item in the raw items partition
func (s *Storage) GetAllItems(ctx context.Context) ([]models.ContentItem, error) {
	var items []models.ContentItem

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketItems)
		if bucket == nil {
			return fmt.Errorf("items bucket not found")
		}

		// Итерируемся по всем постам
		return bucket.ForEach(func(k, v []byte) error {
			var item models.ContentItem
			if err := json.Unmarshal(v, &item); err != nil {
				return fmt.Errorf("failed to unmarshal item: %w", err)
			}

			items = append(items, item)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return items, nil
}

// DeleteItem removes an item by id
// Deleting a missing id is not an error
func (s *Storage) DeleteItem(ctx context.Context, id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketItems)
		if bucket == nil {
			return fmt.Errorf("items bucket not found")
		}

		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete item %s: %w", id, err)
		}

		return nil
	})
}
