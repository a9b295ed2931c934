package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/server/storage"
	"github.com/iudanet/docsync/internal/validation"
	"github.com/iudanet/docsync/pkg/api"
)

// maxSyncBodySize ограничивает размер тела sync запроса
const maxSyncBodySize = 64 << 20

// SyncHandler handles synchronization requests
type SyncHandler struct {
	logger  *slog.Logger
	storage storage.DocumentStorage
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(logger *slog.Logger, storage storage.DocumentStorage) *SyncHandler {
	return &SyncHandler{
		logger:  logger,
		storage: storage,
	}
}

// HandleSync обрабатывает POST /api/v1/sync
// Принимает локальные изменения узла (только fast-forward) и возвращает изменения сервера после Since
func (h *SyncHandler) HandleSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Получаем node_id из контекста (установлен AuthMiddleware)
	nodeID, ok := GetNodeID(ctx)
	if !ok {
		h.logger.Error("Node ID not found in context")
		WriteError(w, h.logger, http.StatusUnauthorized, "missing device identity")
		return
	}

	if r.Method != http.MethodPost {
		WriteError(w, h.logger, http.StatusMethodNotAllowed, "use POST")
		return
	}

	var req api.SyncRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSyncBodySize)).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode sync request", "error", err)
		WriteError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Since < 0 {
		WriteError(w, h.logger, http.StatusBadRequest, "since must not be negative")
		return
	}

	h.logger.Info("Sync request",
		"node_id", nodeID,
		"since", req.Since,
		"documents_count", len(req.Documents))

	// Проверяем весь батч до записи, чтобы не принять его частично
	for i, d := range req.Documents {
		if err := validatePushed(d, nodeID); err != nil {
			h.logger.Warn("Rejected pushed document", "node_id", nodeID, "index", i, "path", d.Path, "error", err)
			status := http.StatusBadRequest
			if d.NodeID != "" && d.NodeID != nodeID {
				status = http.StatusForbidden
			}
			WriteError(w, h.logger, status, fmt.Sprintf("document %d: %v", i, err))
			return
		}
	}

	resp := api.SyncResponse{
		Accepted:  make([]api.Accepted, 0, len(req.Documents)),
		Conflicts: make([]api.Document, 0),
	}

	for _, d := range req.Documents {
		doc := models.DocumentFromAPI(d)
		doc.NodeID = nodeID
		doc.Timestamp = 0

		stored, accepted, err := h.storage.SaveDocument(ctx, doc)
		if err != nil {
			h.logger.Error("Failed to save document", "error", err, "path", doc.Path)
			WriteError(w, h.logger, http.StatusInternalServerError, "failed to save document")
			return
		}

		if !accepted {
			h.logger.Debug("Push rejected, not a fast-forward",
				"path", doc.Path,
				"base_revision", doc.BaseRevision,
				"stored_revision", stored.Revision)
			resp.Conflicts = append(resp.Conflicts, stored.ToAPI())
			continue
		}

		resp.Accepted = append(resp.Accepted, api.Accepted{
			Path:      stored.Path,
			Revision:  stored.Revision,
			Timestamp: stored.Timestamp,
		})
	}

	docs, err := h.storage.GetDocumentsSince(ctx, req.Since)
	if err != nil {
		h.logger.Error("Failed to get documents", "error", err, "since", req.Since)
		WriteError(w, h.logger, http.StatusInternalServerError, "failed to load documents")
		return
	}

	resp.Documents = make([]api.Document, 0, len(docs))
	for _, d := range docs {
		resp.Documents = append(resp.Documents, d.ToAPI())
	}
	resp.CurrentTimestamp = h.storage.CurrentTimestamp()

	writeJSON(w, h.logger, http.StatusOK, resp)

	h.logger.Info("Sync completed",
		"node_id", nodeID,
		"accepted", len(resp.Accepted),
		"conflicts", len(resp.Conflicts),
		"returned_documents", len(resp.Documents),
		"current_timestamp", resp.CurrentTimestamp)
}

func validatePushed(d api.Document, nodeID string) error {
	if d.NodeID != "" && d.NodeID != nodeID {
		return fmt.Errorf("node_id mismatch: %q", d.NodeID)
	}
	if err := validation.ValidateDocumentPath(d.Path); err != nil {
		return err
	}
	if err := validation.ValidateContent(d.Content); err != nil {
		return err
	}
	if d.Revision == "" {
		return fmt.Errorf("revision cannot be empty")
	}
	if d.Revision == d.BaseRevision {
		return fmt.Errorf("document carries no changes")
	}
	return nil
}
