package storage

import (
	"context"

	"github.com/iudanet/docsync/internal/models"
)

//go:generate moq -out documentstorage_mock.go . DocumentStorage

// DocumentStorage defines interface for storing replicated documents on client
type DocumentStorage interface {
	// SaveDocument stores or updates a document keyed by its path
	SaveDocument(ctx context.Context, doc *models.Document) error

	// GetDocument retrieves a document by path
	// Returns ErrDocumentNotFound if document doesn't exist
	GetDocument(ctx context.Context, path string) (*models.Document, error)

	// ListDocuments returns all documents (including deleted ones), ordered by path
	ListDocuments(ctx context.Context) ([]*models.Document, error)

	// GetDirtyDocuments returns documents with local changes not yet accepted by the server
	GetDirtyDocuments(ctx context.Context) ([]*models.Document, error)
}
