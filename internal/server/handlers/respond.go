package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/docsync/pkg/api"
)

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// WriteError пишет ответ с ошибкой в формате api.ErrorResponse
func WriteError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	writeJSON(w, logger, status, api.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}
