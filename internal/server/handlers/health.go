package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/docsync/pkg/api"
)

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	logger  *slog.Logger
	now     func() time.Time
	version string
}

// NewHealthHandler создает новый handler для health check
func NewHealthHandler(logger *slog.Logger, version string) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		version: version,
		now:     time.Now,
	}
}

// Health обрабатывает GET /api/v1/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, h.logger, http.StatusMethodNotAllowed, "use GET")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, api.HealthResponse{
		Status:  "ok",
		Version: h.version,
		Time:    h.now().UTC(),
	})
}
