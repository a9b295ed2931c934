package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/docsync/internal/client/storage"
	"github.com/iudanet/docsync/internal/token"
	"github.com/iudanet/docsync/internal/validation"
	"github.com/iudanet/docsync/pkg/api"
)

var (
	// ErrNotAuthenticated indicates that no device token is stored
	ErrNotAuthenticated = errors.New("not authenticated, run 'docsync login' first")
	// ErrTokenExpired indicates that the stored device token has expired
	ErrTokenExpired = errors.New("device token has expired, ask for a new one and run 'docsync login'")
)

// HealthChecker проверяет доступность сервера
type HealthChecker interface {
	Health(ctx context.Context) (*api.HealthResponse, error)
}

// service предоставляет функции авторизации устройства
type service struct {
	health    HealthChecker
	storage   storage.AuthStorage
	logger    *slog.Logger
	now       func() time.Time
	serverURL string
}

// NewService создает новый сервис авторизации
func NewService(health HealthChecker, authStorage storage.AuthStorage, serverURL string, logger *slog.Logger) Service {
	return &service{
		health:    health,
		storage:   authStorage,
		serverURL: serverURL,
		logger:    logger,
		now:       time.Now,
	}
}

// Login stores the device token after checking its claims and the server
func (s *service) Login(ctx context.Context, deviceToken string) (*storage.AuthData, error) {
	claims, err := token.ParseUnverified(deviceToken)
	if err != nil {
		return nil, err
	}

	if err := validation.ValidateNodeID(claims.NodeID); err != nil {
		return nil, fmt.Errorf("invalid node id in token: %w", err)
	}

	expiresAt := claims.Expiry()
	if !expiresAt.IsZero() && !s.now().Before(expiresAt) {
		return nil, ErrTokenExpired
	}

	// Проверяем, что сервер доступен, до сохранения токена
	health, err := s.health.Health(ctx)
	if err != nil {
		return nil, fmt.Errorf("server is not reachable: %w", err)
	}

	auth := &storage.AuthData{
		Token:     deviceToken,
		NodeID:    claims.NodeID,
		ServerURL: s.serverURL,
	}
	if !expiresAt.IsZero() {
		auth.ExpiresAt = expiresAt.Unix()
	}

	if err := s.storage.SaveAuth(ctx, auth); err != nil {
		return nil, fmt.Errorf("failed to save auth data: %w", err)
	}

	s.logger.Info("Device logged in",
		"node_id", auth.NodeID,
		"server", s.serverURL,
		"server_version", health.Version)

	return auth, nil
}

// Token returns the stored token if it is still valid
func (s *service) Token(ctx context.Context) (string, error) {
	auth, err := s.GetAuth(ctx)
	if err != nil {
		return "", err
	}

	if auth.ExpiresAt != 0 && s.now().Unix() >= auth.ExpiresAt {
		return "", ErrTokenExpired
	}

	return auth.Token, nil
}

// GetAuth returns the stored device credentials
func (s *service) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	auth, err := s.storage.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to get auth data: %w", err)
	}
	return auth, nil
}

// IsAuthenticated checks if valid authentication exists
func (s *service) IsAuthenticated(ctx context.Context) (bool, error) {
	return s.storage.IsAuthenticated(ctx)
}

// Logout удаляет локальные данные авторизации
func (s *service) Logout(ctx context.Context) error {
	if err := s.storage.DeleteAuth(ctx); err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return ErrNotAuthenticated
		}
		return fmt.Errorf("failed to delete auth data: %w", err)
	}
	return nil
}
