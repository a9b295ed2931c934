package sync

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/docsync/internal/client/storage"
	"github.com/iudanet/docsync/internal/client/storage/boltdb"
	"github.com/iudanet/docsync/internal/conflict"
	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/pkg/api"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStorage(t *testing.T) *boltdb.Storage {
	t.Helper()
	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newTestService(t *testing.T, apiClient APIClient, resolver ConflictResolver, store *boltdb.Storage) *service {
	t.Helper()
	svc := NewService(apiClient, store, store, store, resolver, Config{NodeID: "laptop"}, newTestLogger()).(*service)
	svc.now = func() time.Time { return testNow }
	return svc
}

// fixture: общая базовая ревизия r1, локальная правка и серверная правка поверх нее
type fixture struct {
	base   *models.Document
	local  *models.Document
	remote *models.Document
}

func newFixture(path string) fixture {
	r1 := models.NextRevision("", "intro base end", false)
	base := &models.Document{
		Path: path, Content: "intro base end", Revision: r1, BaseRevision: r1,
		NodeID: "laptop", Timestamp: 3, ModifiedAt: testNow.Add(-time.Hour),
	}
	local := base.Clone()
	local.Content = "intro left end"
	local.Revision = models.NextRevision(r1, local.Content, false)
	local.ModifiedAt = testNow.Add(-time.Minute)

	remote := base.Clone()
	remote.Content = "intro right end"
	remote.Revision = models.NextRevision(r1, remote.Content, false)
	remote.BaseRevision = r1
	remote.NodeID = "desktop"
	remote.Timestamp = 5
	remote.ModifiedAt = testNow.Add(-30 * time.Second)

	return fixture{base: base, local: local, remote: remote}
}

func rejectingAPI(remote *models.Document) *APIClientMock {
	return &APIClientMock{
		SyncFunc: func(ctx context.Context, token string, req api.SyncRequest) (*api.SyncResponse, error) {
			return &api.SyncResponse{
				Conflicts:        []api.Document{remote.ToAPI()},
				CurrentTimestamp: 5,
			}, nil
		},
	}
}

func resolverReturning(out models.Outcome) *ConflictResolverMock {
	return &ConflictResolverMock{
		ResolveFunc: func(ctx context.Context, req conflict.Request) models.Outcome {
			return out
		},
	}
}

func TestSync_PushAccepted(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()
	f := newFixture("notes/a.md")
	require.NoError(t, store.SaveDocument(ctx, f.local))
	require.NoError(t, store.SavePendingConflict(ctx, &storage.PendingConflict{Path: "notes/a.md"}))

	mockAPI := &APIClientMock{
		SyncFunc: func(ctx context.Context, token string, req api.SyncRequest) (*api.SyncResponse, error) {
			assert.Equal(t, "tok", token)
			assert.Equal(t, "laptop", req.NodeID)
			require.Len(t, req.Documents, 1)
			assert.Equal(t, f.local.Revision, req.Documents[0].Revision)
			assert.Equal(t, f.base.Revision, req.Documents[0].BaseRevision)
			return &api.SyncResponse{
				Accepted:         []api.Accepted{{Path: "notes/a.md", Revision: f.local.Revision, Timestamp: 9}},
				CurrentTimestamp: 9,
			}, nil
		},
	}
	svc := newTestService(t, mockAPI, resolverReturning(models.Cancelled(models.CauseUser)), store)

	result, err := svc.Sync(ctx, "tok")
	require.NoError(t, err)

	assert.Equal(t, 1, result.PushedDocuments)
	assert.Equal(t, 1, result.AcceptedPushes)

	doc, err := store.GetDocument(ctx, "notes/a.md")
	require.NoError(t, err)
	assert.False(t, doc.IsDirty())
	assert.Equal(t, int64(9), doc.Timestamp)

	ts, err := store.GetLastSyncTimestamp(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(9), ts)

	_, err = store.GetPendingConflict(ctx, "notes/a.md")
	assert.ErrorIs(t, err, storage.ErrConflictNotFound)
}

func TestSync_PullsNewAndFastForwards(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()
	f := newFixture("notes/a.md")
	require.NoError(t, store.SaveDocument(ctx, f.base))
	require.NoError(t, store.SaveLastSyncTimestamp(ctx, 3))

	fresh := &models.Document{Path: "notes/new.md", Content: "new", Revision: "1-aa", Timestamp: 4, NodeID: "desktop"}
	mockAPI := &APIClientMock{
		SyncFunc: func(ctx context.Context, token string, req api.SyncRequest) (*api.SyncResponse, error) {
			assert.Equal(t, int64(3), req.Since)
			assert.Empty(t, req.Documents)
			return &api.SyncResponse{
				Documents:        []api.Document{fresh.ToAPI(), f.remote.ToAPI()},
				CurrentTimestamp: 5,
			}, nil
		},
	}
	resolver := resolverReturning(models.Cancelled(models.CauseUser))
	svc := newTestService(t, mockAPI, resolver, store)

	result, err := svc.Sync(ctx, "tok")
	require.NoError(t, err)

	assert.Equal(t, 2, result.PulledDocuments)
	assert.Equal(t, 2, result.MergedDocuments)
	assert.Zero(t, result.Conflicts)
	assert.Empty(t, resolver.ResolveCalls())

	doc, err := store.GetDocument(ctx, "notes/a.md")
	require.NoError(t, err)
	assert.Equal(t, "intro right end", doc.Content)
	assert.False(t, doc.IsDirty())

	doc, err = store.GetDocument(ctx, "notes/new.md")
	require.NoError(t, err)
	assert.Equal(t, "new", doc.Content)
	assert.False(t, doc.IsDirty())
}

func TestSync_Conflict_RequestShape(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()
	f := newFixture("notes/a.md")
	require.NoError(t, store.SaveDocument(ctx, f.local))

	resolver := resolverReturning(models.KeepRight(f.remote.Revision))
	svc := newTestService(t, rejectingAPI(f.remote), resolver, store)

	_, err := svc.Sync(ctx, "tok")
	require.NoError(t, err)

	require.Len(t, resolver.ResolveCalls(), 1)
	req := resolver.ResolveCalls()[0].Req
	assert.Equal(t, "notes/a.md", req.Key)
	assert.Equal(t, f.local.Revision, req.Left.RevisionID())
	assert.Equal(t, f.remote.Revision, req.Right.RevisionID())
	assert.Equal(t, "intro left end", req.Diff.Left())
	assert.Equal(t, "intro right end", req.Diff.Right())
	assert.False(t, req.Options.PickMode)
}

func TestSync_Conflict_Outcomes(t *testing.T) {
	f := newFixture("notes/a.md")

	tests := []struct {
		name        string
		outcome     models.Outcome
		wantContent string
		wantDirty   bool
		wantPending bool
		wantDefer   int
	}{
		{
			name:        "keep right stores the server revision",
			outcome:     models.KeepRight(f.remote.Revision),
			wantContent: "intro right end",
		},
		{
			name:        "keep left rebases the local text",
			outcome:     models.KeepLeft(f.local.Revision),
			wantContent: "intro left end",
			wantDirty:   true,
		},
		{
			name:        "concatenate keeps both",
			outcome:     models.ConcatenateBoth(),
			wantContent: "intro left end\nintro right end",
			wantDirty:   true,
		},
		{
			name:        "cancelled defers",
			outcome:     models.Cancelled(models.CauseSuperseded),
			wantContent: "intro left end",
			wantDirty:   true,
			wantPending: true,
			wantDefer:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStorage(t)
			ctx := context.Background()
			require.NoError(t, store.SaveDocument(ctx, f.local))

			svc := newTestService(t, rejectingAPI(f.remote), resolverReturning(tt.outcome), store)

			result, err := svc.Sync(ctx, "tok")
			require.NoError(t, err)
			assert.Equal(t, 1, result.Conflicts)
			assert.Equal(t, tt.wantDefer, result.Deferred)

			doc, err := store.GetDocument(ctx, "notes/a.md")
			require.NoError(t, err)
			assert.Equal(t, tt.wantContent, doc.Content)
			assert.Equal(t, tt.wantDirty, doc.IsDirty())

			pc, err := store.GetPendingConflict(ctx, "notes/a.md")
			if !tt.wantPending {
				assert.ErrorIs(t, err, storage.ErrConflictNotFound)
				if tt.wantDirty {
					// Новая ревизия отталкивается от серверной и пройдет fast-forward
					assert.Equal(t, f.remote.Revision, doc.BaseRevision)
					assert.Equal(t, models.RevisionGeneration(f.remote.Revision)+1, models.RevisionGeneration(doc.Revision))
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.CauseSuperseded, pc.Cause)
			assert.Equal(t, 1, pc.Attempts)
			assert.Equal(t, f.remote.Revision, pc.Remote.Revision)
			assert.Equal(t, f.local.Revision, doc.Revision, "local revision untouched")
		})
	}
}

func TestSync_Concatenate_UsesDocumentContent(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()
	f := newFixture("notes/a.md")
	require.NoError(t, store.SaveDocument(ctx, f.local))

	svc := newTestService(t, rejectingAPI(f.remote), resolverReturning(models.ConcatenateBoth()), store)
	// Скрипт этого движка не восстанавливает исходные тексты
	svc.cfg.Diff = func(left, right string) models.DiffScript {
		return models.DiffScript{models.Delete("?"), models.Insert("!")}
	}

	_, err := svc.Sync(ctx, "tok")
	require.NoError(t, err)

	doc, err := store.GetDocument(ctx, "notes/a.md")
	require.NoError(t, err)
	assert.Equal(t, "intro left end\nintro right end", doc.Content)
	assert.Equal(t, models.NextRevision(f.remote.Revision, doc.Content, false), doc.Revision)
}

func TestSync_ConvergedEditsNeedNoDecision(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()
	f := newFixture("notes/a.md")
	local := f.local.Clone()
	local.Content = f.remote.Content
	require.NoError(t, store.SaveDocument(ctx, local))

	resolver := resolverReturning(models.Cancelled(models.CauseUser))
	svc := newTestService(t, rejectingAPI(f.remote), resolver, store)

	result, err := svc.Sync(ctx, "tok")
	require.NoError(t, err)

	assert.Empty(t, resolver.ResolveCalls())
	assert.Equal(t, 1, result.MergedDocuments)

	doc, err := store.GetDocument(ctx, "notes/a.md")
	require.NoError(t, err)
	assert.Equal(t, f.remote.Revision, doc.Revision)
	assert.False(t, doc.IsDirty())
}

func TestSync_APIError(t *testing.T) {
	store := newTestStorage(t)
	mockAPI := &APIClientMock{
		SyncFunc: func(ctx context.Context, token string, req api.SyncRequest) (*api.SyncResponse, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := newTestService(t, mockAPI, resolverReturning(models.Cancelled(models.CauseUser)), store)

	result, err := svc.Sync(context.Background(), "tok")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestResolvePending(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()
	f := newFixture("notes/a.md")
	require.NoError(t, store.SaveDocument(ctx, f.local))

	resolver := &ConflictResolverMock{}
	outcomes := []models.Outcome{models.Cancelled(models.CauseWaitTimeout), models.KeepLeft(f.local.Revision)}
	resolver.ResolveFunc = func(ctx context.Context, req conflict.Request) models.Outcome {
		return outcomes[len(resolver.ResolveCalls())-1]
	}
	svc := newTestService(t, rejectingAPI(f.remote), resolver, store)

	_, err := svc.Sync(ctx, "tok")
	require.NoError(t, err)

	pending, err := store.ListPendingConflicts(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	out, err := svc.ResolvePending(ctx, "notes/a.md")
	require.NoError(t, err)
	assert.Equal(t, models.KeepLeft(f.local.Revision), out)

	pending, err = store.ListPendingConflicts(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	doc, err := store.GetDocument(ctx, "notes/a.md")
	require.NoError(t, err)
	assert.Equal(t, f.remote.Revision, doc.BaseRevision)
}

func TestResolvePending_NotFound(t *testing.T) {
	store := newTestStorage(t)
	svc := newTestService(t, &APIClientMock{}, &ConflictResolverMock{}, store)

	out, err := svc.ResolvePending(context.Background(), "notes/none.md")

	assert.ErrorIs(t, err, storage.ErrConflictNotFound)
	assert.True(t, out.IsCancelled())
}

func TestGetPendingSyncCount(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()
	f := newFixture("notes/a.md")
	require.NoError(t, store.SaveDocument(ctx, f.local))
	other := f.base.Clone()
	other.Path = "notes/b.md"
	require.NoError(t, store.SaveDocument(ctx, other))

	svc := newTestService(t, &APIClientMock{}, &ConflictResolverMock{}, store)

	n, err := svc.GetPendingSyncCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSync_WithCoordinator(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()
	f := newFixture("notes/a.md")
	require.NoError(t, store.SaveDocument(ctx, f.local))

	coord := conflict.NewCoordinator(conflict.Config{}, newTestLogger())
	defer coord.Close()

	var seen *conflict.Session
	presenter := conflict.PresenterFunc(func(ctx context.Context, s *conflict.Session) (models.Action, error) {
		seen = s
		return models.ActionKeepRight, nil
	})
	resolver := conflict.NewResolver(coord, presenter, time.Second, newTestLogger())

	svc := newTestService(t, rejectingAPI(f.remote), resolver, store)

	result, err := svc.Sync(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Resolved)

	require.NotNil(t, seen)
	assert.Equal(t, "Conflicting changes", seen.Options().Title)
	assert.Equal(t, conflict.StateResolved, seen.State())

	doc, err := store.GetDocument(ctx, "notes/a.md")
	require.NoError(t, err)
	assert.Equal(t, "intro right end", doc.Content)
}
