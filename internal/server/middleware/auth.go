package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/iudanet/docsync/internal/server/handlers"
	"github.com/iudanet/docsync/internal/server/storage"
	"github.com/iudanet/docsync/internal/token"
)

//go:generate moq -out tokenvalidator_mock.go . TokenValidator

// TokenValidator проверяет подпись и срок действия токена устройства
type TokenValidator interface {
	Validate(tokenString string) (*token.Claims, error)
}

// Auth проверяет Bearer токен устройства и кладет его node_id в контекст запроса.
// Токен должен совпадать с последним выданным устройству и не быть отозванным.
func Auth(logger *slog.Logger, tokens TokenValidator, devices storage.DeviceStorage, now func() time.Time) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Ожидаем формат: "Bearer <token>"
			scheme, tokenString, ok := strings.Cut(r.Header.Get("Authorization"), " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
				logger.Warn("Missing or malformed Authorization header", "path", r.URL.Path)
				handlers.WriteError(w, logger, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := tokens.Validate(tokenString)
			if err != nil {
				logger.Warn("Invalid device token", "error", err)
				handlers.WriteError(w, logger, http.StatusUnauthorized, "invalid token")
				return
			}

			device, err := devices.GetDevice(r.Context(), claims.NodeID)
			if err != nil {
				if errors.Is(err, storage.ErrDeviceNotFound) {
					logger.Warn("Token for unknown device", "node_id", claims.NodeID)
					handlers.WriteError(w, logger, http.StatusUnauthorized, "unknown device")
					return
				}
				logger.Error("Failed to load device", "node_id", claims.NodeID, "error", err)
				handlers.WriteError(w, logger, http.StatusInternalServerError, "")
				return
			}

			if !device.Active(claims.ID, now()) {
				logger.Warn("Token is revoked or superseded", "node_id", claims.NodeID, "token_id", claims.ID)
				handlers.WriteError(w, logger, http.StatusUnauthorized, "token revoked")
				return
			}

			if info := requestInfoFrom(r.Context()); info != nil {
				info.nodeID = claims.NodeID
			}

			logger.Debug("Device authenticated", "node_id", claims.NodeID)

			next.ServeHTTP(w, r.WithContext(handlers.WithNodeID(r.Context(), claims.NodeID)))
		})
	}
}
