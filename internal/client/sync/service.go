package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/docsync/internal/client/storage"
	"github.com/iudanet/docsync/internal/conflict"
	"github.com/iudanet/docsync/internal/diff"
	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/pkg/api"
)

//go:generate moq -out service_mock.go . Service
//go:generate moq -out apiclient_mock.go . APIClient
//go:generate moq -out resolver_mock.go . ConflictResolver

// Service определяет интерфейс для sync.Service
type Service interface {
	// Sync выполняет полную синхронизацию с сервером
	Sync(ctx context.Context, token string) (*SyncResult, error)

	// ResolvePending повторно открывает отложенный конфликт без обращения к серверу
	ResolvePending(ctx context.Context, path string) (models.Outcome, error)

	// ApplyOutcome применяет исход разрешения конфликта к локальному хранилищу
	ApplyOutcome(ctx context.Context, c *Conflict, out models.Outcome) error

	// GetPendingSyncCount возвращает количество документов, ожидающих синхронизации
	GetPendingSyncCount(ctx context.Context) (int, error)
}

// APIClient is the part of the HTTP client used by the sync service.
type APIClient interface {
	Sync(ctx context.Context, token string, req api.SyncRequest) (*api.SyncResponse, error)
}

// ConflictResolver turns a detected conflict into an outcome.
type ConflictResolver interface {
	Resolve(ctx context.Context, req conflict.Request) models.Outcome
}

// Config holds sync settings.
type Config struct {
	// Diff computes edit scripts; DiffMatchPatch by default
	Diff     diff.Func
	NodeID   string
	PickMode bool
}

type service struct {
	apiClient       APIClient
	documents       storage.DocumentStorage
	metadataStorage storage.MetadataStorage
	conflicts       storage.ConflictStorage
	resolver        ConflictResolver
	logger          *slog.Logger
	now             func() time.Time
	cfg             Config
}

// NewService creates a new sync service
func NewService(
	apiClient APIClient,
	documents storage.DocumentStorage,
	metadataStorage storage.MetadataStorage,
	conflicts storage.ConflictStorage,
	resolver ConflictResolver,
	cfg Config,
	logger *slog.Logger,
) Service {
	if cfg.Diff == nil {
		cfg.Diff = diff.DiffMatchPatch(diff.DefaultTimeout)
	}
	return &service{
		apiClient:       apiClient,
		documents:       documents,
		metadataStorage: metadataStorage,
		conflicts:       conflicts,
		resolver:        resolver,
		logger:          logger,
		now:             time.Now,
		cfg:             cfg,
	}
}

// SyncResult contains sync operation results
type SyncResult struct {
	PushedDocuments  int // количество отправленных на сервер документов
	AcceptedPushes   int // количество push, принятых сервером
	PulledDocuments  int // количество полученных с сервера ревизий
	MergedDocuments  int // количество ревизий, примененных без конфликта
	Conflicts        int // количество обнаруженных конфликтов
	Resolved         int // конфликты с принятым решением
	Deferred         int // конфликты, отложенные до следующей синхронизации
	SkippedDocuments int // количество пропущенных ревизий (ошибки)
}

// Sync performs full synchronization with server
// 1. Pushes dirty documents
// 2. Pulls server changes since the last known server timestamp
// 3. Fast-forwards clean documents and resolves divergent ones one at a time
func (s *service) Sync(ctx context.Context, token string) (*SyncResult, error) {
	s.logger.Info("Starting synchronization", "node_id", s.cfg.NodeID)

	result := &SyncResult{}

	// Получаем last known server timestamp из metadata storage
	since, err := s.metadataStorage.GetLastSyncTimestamp(ctx)
	if err != nil {
		s.logger.Warn("Failed to get last sync timestamp, using 0", "error", err)
		since = 0
	}

	dirty, err := s.documents.GetDirtyDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get local changes: %w", err)
	}

	s.logger.Info("Collected local changes", "count", len(dirty))
	result.PushedDocuments = len(dirty)

	req := api.SyncRequest{
		NodeID:    s.cfg.NodeID,
		Since:     since,
		Documents: make([]api.Document, 0, len(dirty)),
	}
	for _, doc := range dirty {
		req.Documents = append(req.Documents, doc.ToAPI())
	}

	resp, err := s.apiClient.Sync(ctx, token, req)
	if err != nil {
		return nil, fmt.Errorf("sync request failed: %w", err)
	}

	s.logger.Info("Received server response",
		"accepted", len(resp.Accepted),
		"server_documents", len(resp.Documents),
		"rejected", len(resp.Conflicts),
		"server_timestamp", resp.CurrentTimestamp)

	for _, acc := range resp.Accepted {
		if err := s.markAccepted(ctx, acc); err != nil {
			s.logger.Warn("Failed to record accepted push", "path", acc.Path, "error", err)
			continue
		}
		result.AcceptedPushes++
	}

	remotes := latestByPath(resp.Documents, resp.Conflicts)
	result.PulledDocuments = len(resp.Documents)

	for _, remote := range remotes {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		out, err := s.mergeRemote(ctx, remote)
		if err != nil {
			s.logger.Warn("Failed to merge document", "path", remote.Path, "error", err)
			result.SkippedDocuments++
			continue
		}
		switch {
		case out == nil:
			result.MergedDocuments++
		case out.IsCancelled():
			result.Conflicts++
			result.Deferred++
		default:
			result.Conflicts++
			result.Resolved++
		}
	}

	s.logger.Info("Synchronization completed",
		"pushed", result.PushedDocuments,
		"accepted", result.AcceptedPushes,
		"pulled", result.PulledDocuments,
		"merged", result.MergedDocuments,
		"conflicts", result.Conflicts,
		"deferred", result.Deferred,
		"skipped", result.SkippedDocuments)

	// Сохраняем текущий server timestamp для следующей синхронизации
	if err := s.metadataStorage.SaveLastSyncTimestamp(ctx, resp.CurrentTimestamp); err != nil {
		s.logger.Warn("Failed to save last sync timestamp", "error", err)
	}

	return result, nil
}

// markAccepted переводит принятую сервером ревизию в чистое состояние
func (s *service) markAccepted(ctx context.Context, acc api.Accepted) error {
	local, err := s.documents.GetDocument(ctx, acc.Path)
	if err != nil {
		return err
	}

	local.BaseRevision = acc.Revision
	if local.Revision == acc.Revision {
		local.Timestamp = acc.Timestamp
	}
	if err := s.documents.SaveDocument(ctx, local); err != nil {
		return err
	}

	// Принятый push закрывает отложенный конфликт
	return s.conflicts.DeletePendingConflict(ctx, acc.Path)
}

// mergeRemote применяет серверную ревизию. Возвращает nil, если конфликта не было,
// иначе исход его разрешения.
func (s *service) mergeRemote(ctx context.Context, remote *models.Document) (*models.Outcome, error) {
	local, err := s.documents.GetDocument(ctx, remote.Path)
	if err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			return nil, s.storeClean(ctx, remote)
		}
		return nil, fmt.Errorf("failed to get local document: %w", err)
	}

	c := DetectConflict(s.cfg.Diff, local, remote)
	if c == nil {
		return nil, s.fastForward(ctx, local, remote)
	}

	out, err := s.resolve(ctx, c, 0)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// fastForward применяет ревизию без конфликта
func (s *service) fastForward(ctx context.Context, local, remote *models.Document) error {
	switch {
	case local.Revision == remote.Revision:
		if local.Timestamp == remote.Timestamp && !local.IsDirty() {
			return nil
		}
		return s.storeClean(ctx, remote)
	case local.IsDirty() && local.BaseRevision == remote.Revision:
		// Локальная правка основана на этой ревизии и уйдет следующим push
		return nil
	case !local.IsDirty() && remote.Timestamp != 0 && remote.Timestamp < local.Timestamp:
		// Устаревшая ревизия
		return nil
	default:
		if err := s.storeClean(ctx, remote); err != nil {
			return err
		}
		return s.conflicts.DeletePendingConflict(ctx, remote.Path)
	}
}

func (s *service) storeClean(ctx context.Context, remote *models.Document) error {
	doc := remote.Clone()
	doc.BaseRevision = doc.Revision
	return s.documents.SaveDocument(ctx, doc)
}

// resolve открывает сессию разрешения конфликта и применяет исход
func (s *service) resolve(ctx context.Context, c *Conflict, attempts int) (models.Outcome, error) {
	s.logger.Info("Conflict detected",
		"path", c.Local.Path,
		"local", c.Local.Revision,
		"remote", c.Remote.Revision)

	opts := conflict.Options{PickMode: s.cfg.PickMode}
	if s.cfg.PickMode {
		opts.RightLabel = c.Remote.NodeID
	}
	out := s.resolver.Resolve(ctx, c.Request(opts))

	if err := s.applyOutcome(ctx, c, out, attempts); err != nil {
		return out, err
	}
	return out, nil
}

// ApplyOutcome применяет исход конфликта, разрешенного вне Sync
func (s *service) ApplyOutcome(ctx context.Context, c *Conflict, out models.Outcome) error {
	return s.applyOutcome(ctx, c, out, 0)
}

// applyOutcome switches exhaustively on the action of the outcome.
func (s *service) applyOutcome(ctx context.Context, c *Conflict, out models.Outcome, attempts int) error {
	local, remote := c.Local, c.Remote

	switch out.Action {
	case models.ActionKeepLeft:
		// Локальная версия поверх серверной: новая ревизия уйдет следующим push
		doc := local.Clone()
		doc.BaseRevision = remote.Revision
		doc.Timestamp = remote.Timestamp
		doc.Revision = models.NextRevision(remote.Revision, doc.Content, doc.Deleted)
		doc.ModifiedAt = s.now()
		doc.NodeID = s.cfg.NodeID
		if err := s.documents.SaveDocument(ctx, doc); err != nil {
			return fmt.Errorf("failed to keep local revision: %w", err)
		}
	case models.ActionKeepRight:
		if err := s.storeClean(ctx, remote); err != nil {
			return fmt.Errorf("failed to keep remote revision: %w", err)
		}
	case models.ActionConcatenateBoth:
		content := Concatenate(diff.Text(local), diff.Text(remote))
		doc := local.Clone()
		doc.Content = content
		doc.Deleted = false
		doc.BaseRevision = remote.Revision
		doc.Timestamp = remote.Timestamp
		doc.Revision = models.NextRevision(remote.Revision, content, false)
		doc.ModifiedAt = s.now()
		doc.NodeID = s.cfg.NodeID
		if err := s.documents.SaveDocument(ctx, doc); err != nil {
			return fmt.Errorf("failed to save concatenated revision: %w", err)
		}
	case models.ActionCancelled:
		pc := &storage.PendingConflict{
			Path:       local.Path,
			Local:      local,
			Remote:     remote,
			Cause:      out.Cause,
			Attempts:   attempts + 1,
			DetectedAt: s.now(),
		}
		if err := s.conflicts.SavePendingConflict(ctx, pc); err != nil {
			return fmt.Errorf("failed to defer conflict: %w", err)
		}
		s.logger.Info("Conflict deferred", "path", local.Path, "cause", string(out.Cause))
		return nil
	default:
		return fmt.Errorf("unknown action %s", out.Action)
	}

	s.logger.Info("Conflict resolved", "path", local.Path, "outcome", out.String())
	return s.conflicts.DeletePendingConflict(ctx, local.Path)
}

// ResolvePending повторно открывает отложенный конфликт по сохраненной серверной ревизии
func (s *service) ResolvePending(ctx context.Context, path string) (models.Outcome, error) {
	pc, err := s.conflicts.GetPendingConflict(ctx, path)
	if err != nil {
		return models.Cancelled(models.CauseUser), err
	}

	local, err := s.documents.GetDocument(ctx, path)
	if err != nil {
		if !errors.Is(err, storage.ErrDocumentNotFound) {
			return models.Cancelled(models.CauseUser), fmt.Errorf("failed to get local document: %w", err)
		}
		local = pc.Local
	}

	c := DetectConflict(s.cfg.Diff, local, pc.Remote)
	if c == nil {
		// Конфликт исчез (например, правки совпали)
		if err := s.fastForward(ctx, local, pc.Remote); err != nil {
			return models.Cancelled(models.CauseUser), err
		}
		return models.KeepRight(pc.Remote.Revision), s.conflicts.DeletePendingConflict(ctx, path)
	}

	return s.resolve(ctx, c, pc.Attempts)
}

// GetPendingSyncCount возвращает количество документов, ожидающих синхронизации
func (s *service) GetPendingSyncCount(ctx context.Context) (int, error) {
	dirty, err := s.documents.GetDirtyDocuments(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get pending documents: %w", err)
	}
	return len(dirty), nil
}

// latestByPath объединяет изменения и отклоненные push, оставляя самую свежую ревизию пути
func latestByPath(lists ...[]api.Document) []*models.Document {
	var order []string
	latest := make(map[string]*models.Document)

	for _, list := range lists {
		for _, d := range list {
			doc := models.DocumentFromAPI(d)
			prev, ok := latest[doc.Path]
			if !ok {
				order = append(order, doc.Path)
				latest[doc.Path] = doc
				continue
			}
			if doc.Timestamp > prev.Timestamp {
				latest[doc.Path] = doc
			}
		}
	}

	docs := make([]*models.Document, 0, len(order))
	for _, p := range order {
		docs = append(docs, latest[p])
	}
	return docs
}
