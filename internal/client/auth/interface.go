package auth

import (
	"context"

	"github.com/iudanet/docsync/internal/client/storage"
)

//go:generate moq -out service_mock.go . Service

// Service defines the device authentication operations of the client.
// The server administrator issues a device token per node; the client only stores it.
type Service interface {
	// Login проверяет токен устройства, доступность сервера и сохраняет токен
	Login(ctx context.Context, token string) (*storage.AuthData, error)

	// Token возвращает действующий токен для запросов к серверу
	Token(ctx context.Context) (string, error)

	// GetAuth возвращает сохраненные данные устройства
	GetAuth(ctx context.Context) (*storage.AuthData, error)

	// IsAuthenticated checks if a valid device token is stored
	IsAuthenticated(ctx context.Context) (bool, error)

	// Logout удаляет локальный токен устройства
	Logout(ctx context.Context) error
}
