package models

import "errors"

var (
	// ErrUnknownDiffOp indicates a diff operation outside Equal/Insert/Delete
	ErrUnknownDiffOp = errors.New("unknown diff operation")
)
