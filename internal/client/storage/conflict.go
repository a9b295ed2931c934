package storage

import (
	"context"
	"time"

	"github.com/iudanet/docsync/internal/models"
)

//go:generate moq -out conflictstorage_mock.go . ConflictStorage

// ConflictStorage keeps conflicts whose resolution was deferred
type ConflictStorage interface {
	// SavePendingConflict stores or replaces the pending conflict of a path
	SavePendingConflict(ctx context.Context, c *PendingConflict) error

	// GetPendingConflict returns the pending conflict of a path
	// Returns ErrConflictNotFound if there is none
	GetPendingConflict(ctx context.Context, path string) (*PendingConflict, error)

	// ListPendingConflicts returns all pending conflicts ordered by path
	ListPendingConflicts(ctx context.Context) ([]*PendingConflict, error)

	// DeletePendingConflict removes the pending conflict of a path; missing is not an error
	DeletePendingConflict(ctx context.Context, path string) error
}

// PendingConflict is a conflict that ended Cancelled and waits for a later decision.
type PendingConflict struct {
	DetectedAt time.Time        `json:"detected_at"`
	Local      *models.Document `json:"local"`
	Remote     *models.Document `json:"remote"`
	Path       string           `json:"path"`
	Cause      models.Cause     `json:"cause"`
	Attempts   int              `json:"attempts"`
}
