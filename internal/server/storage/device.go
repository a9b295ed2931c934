package storage

import (
	"context"

	"github.com/iudanet/docsync/internal/models"
)

//go:generate moq -out devicestorage_mock.go . DeviceStorage

// DeviceStorage defines interface for registered devices
type DeviceStorage interface {
	// SaveDevice stores a device, replacing its previous token
	SaveDevice(ctx context.Context, device *models.Device) error

	// GetDevice retrieves device by node id
	// Returns ErrDeviceNotFound if device doesn't exist
	GetDevice(ctx context.Context, nodeID string) (*models.Device, error)

	// ListDevices returns all devices ordered by node id
	ListDevices(ctx context.Context) ([]*models.Device, error)

	// RevokeDevice marks device token as revoked
	// Returns ErrDeviceNotFound if device doesn't exist
	RevokeDevice(ctx context.Context, nodeID string) error
}
