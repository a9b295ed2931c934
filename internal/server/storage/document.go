package storage

import (
	"context"

	"github.com/iudanet/docsync/internal/models"
)

//go:generate moq -out documentstorage_mock.go . DocumentStorage

// DocumentStorage defines interface for replicated document persistence
type DocumentStorage interface {
	// SaveDocument accepts a pushed revision only when it fast-forwards the stored one:
	// nothing is stored yet, the push is based on the stored revision, or it repeats it.
	// An accepted revision is stamped with the next Lamport timestamp.
	// Returns the stored revision and whether the push was accepted.
	SaveDocument(ctx context.Context, doc *models.Document) (*models.Document, bool, error)

	// GetDocument retrieves the current revision of a path
	// Returns ErrDocumentNotFound if document doesn't exist
	GetDocument(ctx context.Context, path string) (*models.Document, error)

	// GetDocumentsSince returns current revisions (including deleted) stamped after since,
	// ordered by timestamp
	GetDocumentsSince(ctx context.Context, since int64) ([]*models.Document, error)

	// CurrentTimestamp returns the current value of the server Lamport clock
	CurrentTimestamp() int64
}
