package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no device credentials are stored
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrDocumentNotFound indicates that document was not found
	ErrDocumentNotFound = errors.New("document not found")

	// ErrConflictNotFound indicates that no pending conflict exists for the path
	ErrConflictNotFound = errors.New("pending conflict not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
