package conflict

import "errors"

var (
	// ErrEmptyKey indicates a request without a document key
	ErrEmptyKey = errors.New("conflict key is empty")

	// ErrEmptyDiff indicates a request without an edit script
	ErrEmptyDiff = errors.New("conflict diff is empty")

	// ErrInvalidAction indicates an action outside the set the session offers
	ErrInvalidAction = errors.New("action not allowed for this session")
)
