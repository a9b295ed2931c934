package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/docsync/internal/client/storage"
)

// SavePendingConflict stores or replaces the pending conflict of a path
func (s *Storage) SavePendingConflict(ctx context.Context, c *storage.PendingConflict) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal pending conflict: %w", err)
	}

	err = s.update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketConflicts)
		if err != nil {
			return err
		}
		return b.Put([]byte(c.Path), data)
	})
	if err != nil {
		return fmt.Errorf("failed to save pending conflict %s: %w", c.Path, err)
	}

	return nil
}

// GetPendingConflict returns the pending conflict of a path
func (s *Storage) GetPendingConflict(ctx context.Context, path string) (*storage.PendingConflict, error) {
	var c *storage.PendingConflict

	err := s.view(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketConflicts)
		if err != nil {
			return err
		}

		data := b.Get([]byte(path))
		if data == nil {
			return storage.ErrConflictNotFound
		}

		c = &storage.PendingConflict{}
		return json.Unmarshal(data, c)
	})
	if err != nil {
		return nil, err
	}

	return c, nil
}

// ListPendingConflicts returns all pending conflicts ordered by path
func (s *Storage) ListPendingConflicts(ctx context.Context) ([]*storage.PendingConflict, error) {
	var conflicts []*storage.PendingConflict

	err := s.view(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketConflicts)
		if err != nil {
			return err
		}

		return b.ForEach(func(k, v []byte) error {
			var c storage.PendingConflict
			if err := json.Unmarshal(v, &c); err != nil {
				return fmt.Errorf("failed to unmarshal pending conflict %s: %w", k, err)
			}
			conflicts = append(conflicts, &c)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pending conflicts: %w", err)
	}

	return conflicts, nil
}

// DeletePendingConflict removes the pending conflict of a path
func (s *Storage) DeletePendingConflict(ctx context.Context, path string) error {
	return s.update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketConflicts)
		if err != nil {
			return err
		}
		return b.Delete([]byte(path))
	})
}
