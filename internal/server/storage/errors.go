package storage

import "errors"

// Common storage errors
var (
	// ErrDocumentNotFound indicates that document was not found in storage
	ErrDocumentNotFound = errors.New("document not found")

	// ErrDeviceNotFound indicates that no device with this node id is registered
	ErrDeviceNotFound = errors.New("device not found")
)
