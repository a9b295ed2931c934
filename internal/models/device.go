package models

import "time"

// Device зарегистрированное устройство (узел), которому выдан токен
type Device struct {
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"` // ExpiresAt нулевое значение для бессрочного токена
	NodeID    string    `json:"node_id"`
	TokenID   string    `json:"token_id"` // TokenID jti последнего выданного токена
	Revoked   bool      `json:"revoked"`
}

// Active reports whether tokenID is the current, unrevoked token of the device.
func (d *Device) Active(tokenID string, now time.Time) bool {
	if d.Revoked || d.TokenID != tokenID {
		return false
	}
	return d.ExpiresAt.IsZero() || now.Before(d.ExpiresAt)
}
