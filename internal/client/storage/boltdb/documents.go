package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/docsync/internal/client/storage"
	"github.com/iudanet/docsync/internal/models"
)

// SaveDocument stores or updates a document keyed by its path
func (s *Storage) SaveDocument(ctx context.Context, doc *models.Document) error {
	if doc == nil || doc.Path == "" {
		return fmt.Errorf("document path is required")
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	err = s.update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketDocuments)
		if err != nil {
			return err
		}
		return b.Put([]byte(doc.Path), data)
	})
	if err != nil {
		return fmt.Errorf("failed to save document %s: %w", doc.Path, err)
	}

	return nil
}

// GetDocument retrieves a document by path
func (s *Storage) GetDocument(ctx context.Context, path string) (*models.Document, error) {
	var doc *models.Document

	err := s.view(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketDocuments)
		if err != nil {
			return err
		}

		data := b.Get([]byte(path))
		if data == nil {
			return storage.ErrDocumentNotFound
		}

		doc = &models.Document{}
		if err := json.Unmarshal(data, doc); err != nil {
			return fmt.Errorf("failed to unmarshal document: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// ListDocuments returns all documents (including deleted ones), ordered by path
func (s *Storage) ListDocuments(ctx context.Context) ([]*models.Document, error) {
	return s.collect(func(*models.Document) bool { return true })
}

// GetDirtyDocuments returns documents with local changes not yet accepted by the server
func (s *Storage) GetDirtyDocuments(ctx context.Context) ([]*models.Document, error) {
	return s.collect((*models.Document).IsDirty)
}

// collect обходит bucket в порядке ключей, то есть путей
func (s *Storage) collect(keep func(*models.Document) bool) ([]*models.Document, error) {
	var docs []*models.Document

	err := s.view(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketDocuments)
		if err != nil {
			return err
		}

		return b.ForEach(func(k, v []byte) error {
			var doc models.Document
			if err := json.Unmarshal(v, &doc); err != nil {
				return fmt.Errorf("failed to unmarshal document %s: %w", k, err)
			}
			if keep(&doc) {
				docs = append(docs, &doc)
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	return docs, nil
}
