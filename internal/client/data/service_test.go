package data

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/docsync/internal/client/storage"
	"github.com/iudanet/docsync/internal/models"
)

// memoryDocuments returns a DocumentStorageMock backed by a map
func memoryDocuments() (*storage.DocumentStorageMock, map[string]*models.Document) {
	docs := make(map[string]*models.Document)
	mock := &storage.DocumentStorageMock{
		SaveDocumentFunc: func(ctx context.Context, doc *models.Document) error {
			docs[doc.Path] = doc.Clone()
			return nil
		},
		GetDocumentFunc: func(ctx context.Context, path string) (*models.Document, error) {
			doc, ok := docs[path]
			if !ok {
				return nil, storage.ErrDocumentNotFound
			}
			return doc.Clone(), nil
		},
		ListDocumentsFunc: func(ctx context.Context) ([]*models.Document, error) {
			result := make([]*models.Document, 0, len(docs))
			for _, path := range []string{"a.md", "b.md", "c.md"} {
				if doc, ok := docs[path]; ok {
					result = append(result, doc.Clone())
				}
			}
			return result, nil
		},
	}
	return mock, docs
}

func newTestService(docs storage.DocumentStorage) *service {
	s := NewService(docs, "laptop").(*service)
	s.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestService_Put_New(t *testing.T) {
	mock, docs := memoryDocuments()
	s := newTestService(mock)

	doc, err := s.Put(context.Background(), "a.md", "hello")
	require.NoError(t, err)

	assert.Equal(t, "a.md", doc.Path)
	assert.Equal(t, "hello", doc.Content)
	assert.Equal(t, models.NextRevision("", "hello", false), doc.Revision)
	assert.Equal(t, 1, models.RevisionGeneration(doc.Revision))
	assert.Empty(t, doc.BaseRevision)
	assert.True(t, doc.IsDirty())
	assert.Equal(t, "laptop", doc.NodeID)
	assert.Equal(t, s.now(), doc.ModifiedAt)
	assert.Contains(t, docs, "a.md")
}

func TestService_Put_Update(t *testing.T) {
	mock, docs := memoryDocuments()
	docs["a.md"] = &models.Document{
		Path:         "a.md",
		Content:      "v1",
		Revision:     "1-abc",
		BaseRevision: "1-abc",
		Timestamp:    7,
		NodeID:       "desktop",
	}
	s := newTestService(mock)

	doc, err := s.Put(context.Background(), "a.md", "v2")
	require.NoError(t, err)

	assert.Equal(t, models.NextRevision("1-abc", "v2", false), doc.Revision)
	assert.Equal(t, 2, models.RevisionGeneration(doc.Revision))
	assert.Equal(t, "1-abc", doc.BaseRevision, "base revision is kept until the server accepts")
	assert.Equal(t, int64(7), doc.Timestamp)
	assert.Equal(t, "laptop", doc.NodeID)
	assert.True(t, doc.IsDirty())
}

func TestService_Put_Unchanged(t *testing.T) {
	mock, docs := memoryDocuments()
	docs["a.md"] = &models.Document{Path: "a.md", Content: "same", Revision: "1-abc", BaseRevision: "1-abc"}
	s := newTestService(mock)

	doc, err := s.Put(context.Background(), "a.md", "same")
	require.NoError(t, err)

	assert.Equal(t, "1-abc", doc.Revision)
	assert.Empty(t, mock.SaveDocumentCalls())
}

func TestService_Put_RecreatesDeleted(t *testing.T) {
	mock, docs := memoryDocuments()
	docs["a.md"] = &models.Document{Path: "a.md", Revision: "2-del", BaseRevision: "2-del", Deleted: true}
	s := newTestService(mock)

	doc, err := s.Put(context.Background(), "a.md", "")
	require.NoError(t, err)

	assert.False(t, doc.Deleted)
	assert.Equal(t, 3, models.RevisionGeneration(doc.Revision))
}

func TestService_Put_Validation(t *testing.T) {
	mock, _ := memoryDocuments()
	s := newTestService(mock)

	_, err := s.Put(context.Background(), "../escape.md", "x")
	assert.Error(t, err)

	_, err = s.Put(context.Background(), "", "x")
	assert.Error(t, err)

	assert.Empty(t, mock.GetDocumentCalls())
}

func TestService_Put_StorageError(t *testing.T) {
	storageErr := errors.New("disk full")
	mock := &storage.DocumentStorageMock{
		GetDocumentFunc: func(ctx context.Context, path string) (*models.Document, error) {
			return nil, storage.ErrDocumentNotFound
		},
		SaveDocumentFunc: func(ctx context.Context, doc *models.Document) error {
			return storageErr
		},
	}
	s := newTestService(mock)

	_, err := s.Put(context.Background(), "a.md", "x")

	assert.ErrorIs(t, err, storageErr)
	assert.Contains(t, err.Error(), "failed to save document")
}

func TestService_Get(t *testing.T) {
	mock, docs := memoryDocuments()
	docs["a.md"] = &models.Document{Path: "a.md", Content: "hello", Revision: "1-a"}
	docs["b.md"] = &models.Document{Path: "b.md", Revision: "2-b", Deleted: true}
	s := newTestService(mock)

	doc, err := s.Get(context.Background(), "a.md")
	require.NoError(t, err)
	assert.Equal(t, "hello", doc.Content)

	_, err = s.Get(context.Background(), "b.md")
	assert.ErrorIs(t, err, ErrDocumentDeleted)

	_, err = s.Get(context.Background(), "c.md")
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)
}

func TestService_List_SkipsTombstones(t *testing.T) {
	mock, docs := memoryDocuments()
	docs["a.md"] = &models.Document{Path: "a.md", Revision: "1-a"}
	docs["b.md"] = &models.Document{Path: "b.md", Revision: "2-b", Deleted: true}
	docs["c.md"] = &models.Document{Path: "c.md", Revision: "1-c"}
	s := newTestService(mock)

	list, err := s.List(context.Background())
	require.NoError(t, err)

	require.Len(t, list, 2)
	assert.Equal(t, "a.md", list[0].Path)
	assert.Equal(t, "c.md", list[1].Path)
}

func TestService_Remove(t *testing.T) {
	mock, docs := memoryDocuments()
	docs["a.md"] = &models.Document{Path: "a.md", Content: "bye", Revision: "1-a", BaseRevision: "1-a"}
	s := newTestService(mock)

	doc, err := s.Remove(context.Background(), "a.md")
	require.NoError(t, err)

	assert.True(t, doc.Deleted)
	assert.Empty(t, doc.Content)
	assert.Equal(t, models.NextRevision("1-a", "", true), doc.Revision)
	assert.True(t, doc.IsDirty())
	assert.True(t, docs["a.md"].Deleted)

	_, err = s.Remove(context.Background(), "a.md")
	assert.ErrorIs(t, err, ErrDocumentDeleted)
}
