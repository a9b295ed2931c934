package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/server/storage"
)

const deviceColumns = `node_id, token_id, issued_at, expires_at, revoked`

// SaveDevice stores a device, replacing its previous token
func (s *Storage) SaveDevice(ctx context.Context, device *models.Device) error {
	query := `
		INSERT INTO devices (` + deviceColumns + `)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(node_id) DO UPDATE SET
			token_id = excluded.token_id,
			issued_at = excluded.issued_at,
			expires_at = excluded.expires_at,
			revoked = excluded.revoked
	`

	_, err := s.db.ExecContext(ctx, query,
		device.NodeID,
		device.TokenID,
		device.IssuedAt.Unix(),
		timeToUnix(device.ExpiresAt),
		boolToInt(device.Revoked),
	)
	if err != nil {
		return fmt.Errorf("failed to save device: %w", err)
	}

	return nil
}

// GetDevice retrieves device by node id
func (s *Storage) GetDevice(ctx context.Context, nodeID string) (*models.Device, error) {
	device, err := scanDevice(s.db.QueryRowContext(ctx,
		`SELECT `+deviceColumns+` FROM devices WHERE node_id = ?`, nodeID))
	if err != nil {
		if errors.Is(err, storage.ErrDeviceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get device: %w", err)
	}
	return device, nil
}

// ListDevices returns all devices ordered by node id
func (s *Storage) ListDevices(ctx context.Context) ([]*models.Device, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+deviceColumns+` FROM devices ORDER BY node_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query devices: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var devices []*models.Device
	for rows.Next() {
		device, err := scanDevice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan device: %w", err)
		}
		devices = append(devices, device)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating devices: %w", err)
	}

	return devices, nil
}

// RevokeDevice marks device token as revoked
func (s *Storage) RevokeDevice(ctx context.Context, nodeID string) error {
	result, err := s.db.ExecContext(ctx, `UPDATE devices SET revoked = 1 WHERE node_id = ?`, nodeID)
	if err != nil {
		return fmt.Errorf("failed to revoke device: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return storage.ErrDeviceNotFound
	}

	return nil
}

func scanDevice(row rowScanner) (*models.Device, error) {
	var (
		device    models.Device
		issuedAt  int64
		expiresAt int64
		revoked   int
	)

	err := row.Scan(&device.NodeID, &device.TokenID, &issuedAt, &expiresAt, &revoked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrDeviceNotFound
		}
		return nil, err
	}

	device.IssuedAt = time.Unix(issuedAt, 0).UTC()
	if expiresAt != 0 {
		device.ExpiresAt = time.Unix(expiresAt, 0).UTC()
	}
	device.Revoked = intToBool(revoked)

	return &device, nil
}

// timeToUnix 0 для нулевого времени (бессрочный токен)
func timeToUnix(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}
