package storage

import (
	"context"
)

// AuthStorage defines interface for storing device credentials on client
type AuthStorage interface {
	// SaveAuth stores device credentials
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves stored device credentials
	// Returns ErrAuthNotFound if no auth data exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes stored credentials (logout)
	DeleteAuth(ctx context.Context) error

	// IsAuthenticated checks if a non-expired device token is stored
	IsAuthenticated(ctx context.Context) (bool, error)
}

// AuthData is the device token issued by the server for this node.
type AuthData struct {
	Token     string `json:"token"`
	NodeID    string `json:"node_id"`
	ServerURL string `json:"server_url"`
	// ExpiresAt is a unix timestamp, 0 means the token never expires
	ExpiresAt int64 `json:"expires_at"`
}
