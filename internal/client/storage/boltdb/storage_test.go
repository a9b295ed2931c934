package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/docsync/internal/client/storage"
	"github.com/iudanet/docsync/internal/models"
)

// createTestStorage создает временное хранилище для тестов
func createTestStorage(t *testing.T) *Storage {
	t.Helper()
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestNew_Success(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()

	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	// Проверяем, что бакеты существуют
	err = store.db.View(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketAuth, bucketDocuments, bucketMetadata, bucketConflicts} {
			if tx.Bucket(b) == nil {
				return os.ErrNotExist
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "missing", "dir", "x.db"))
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestStorage_Closed(t *testing.T) {
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, store.Close())
	require.NoError(t, store.Close(), "close is idempotent")

	_, err = store.GetDocument(context.Background(), "a.md")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = store.SaveLastSyncTimestamp(context.Background(), 1)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestStorage_Reopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.SaveDocument(ctx, &models.Document{Path: "a.md", Content: "persisted"}))
	require.NoError(t, store.SaveLastSyncTimestamp(ctx, 42))
	require.NoError(t, store.Close())

	store, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer store.Close()

	doc, err := store.GetDocument(ctx, "a.md")
	require.NoError(t, err)
	assert.Equal(t, "persisted", doc.Content)

	ts, err := store.GetLastSyncTimestamp(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), ts)
}

func TestStorage_Metadata(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	ts, err := store.GetLastSyncTimestamp(ctx)
	require.NoError(t, err)
	assert.Zero(t, ts, "first sync starts from zero")

	require.NoError(t, store.SaveLastSyncTimestamp(ctx, 1700000000))
	ts, err = store.GetLastSyncTimestamp(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), ts)
}

func TestStorage_Auth(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	_, err := store.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)

	ok, err := store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	auth := &storage.AuthData{Token: "tok", NodeID: "laptop", ServerURL: "http://localhost:8080"}
	require.NoError(t, store.SaveAuth(ctx, auth))

	got, err := store.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, auth, got)

	ok, err = store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	auth.ExpiresAt = time.Now().Add(-time.Hour).Unix()
	require.NoError(t, store.SaveAuth(ctx, auth))
	ok, err = store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "expired token")

	require.NoError(t, store.DeleteAuth(ctx))
	assert.ErrorIs(t, store.DeleteAuth(ctx), storage.ErrAuthNotFound)
}
