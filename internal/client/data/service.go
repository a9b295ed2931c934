package data

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/docsync/internal/client/storage"
	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/validation"
)

// ErrDocumentDeleted indicates that the document exists only as a tombstone
var ErrDocumentDeleted = errors.New("document is deleted")

// Service определяет интерфейс для локального редактирования документов
type Service interface {
	// Put создает документ или новую ревизию существующего
	Put(ctx context.Context, path, content string) (*models.Document, error)
	// Get возвращает документ по пути
	Get(ctx context.Context, path string) (*models.Document, error)
	// List возвращает все неудаленные документы
	List(ctx context.Context) ([]*models.Document, error)
	// Remove помечает документ удаленным (tombstone ревизия)
	Remove(ctx context.Context, path string) (*models.Document, error)
}

// service handles local document edits; every edit produces a new dirty revision
type service struct {
	documents storage.DocumentStorage
	now       func() time.Time
	nodeID    string
}

// NewService creates a new document editing service for the given node
func NewService(documents storage.DocumentStorage, nodeID string) Service {
	return &service{
		documents: documents,
		nodeID:    nodeID,
		now:       time.Now,
	}
}

// Put stores content under path as a new local revision
func (s *service) Put(ctx context.Context, path, content string) (*models.Document, error) {
	if err := validation.ValidateDocumentPath(path); err != nil {
		return nil, err
	}
	if err := validation.ValidateContent(content); err != nil {
		return nil, err
	}

	doc, err := s.documents.GetDocument(ctx, path)
	switch {
	case errors.Is(err, storage.ErrDocumentNotFound):
		doc = &models.Document{Path: path}
	case err != nil:
		return nil, fmt.Errorf("failed to get document: %w", err)
	case !doc.Deleted && doc.Content == content:
		// Содержимое не изменилось, новая ревизия не нужна
		return doc, nil
	}

	doc.Revision = models.NextRevision(doc.Revision, content, false)
	doc.Content = content
	doc.Deleted = false
	doc.NodeID = s.nodeID
	doc.ModifiedAt = s.now().UTC()

	if err := s.documents.SaveDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to save document: %w", err)
	}

	return doc, nil
}

// Get retrieves a live document by path
func (s *service) Get(ctx context.Context, path string) (*models.Document, error) {
	doc, err := s.documents.GetDocument(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	if doc.Deleted {
		return nil, fmt.Errorf("%s: %w", path, ErrDocumentDeleted)
	}

	return doc, nil
}

// List returns all live documents ordered by path
func (s *service) List(ctx context.Context) ([]*models.Document, error) {
	docs, err := s.documents.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	live := make([]*models.Document, 0, len(docs))
	for _, doc := range docs {
		if !doc.Deleted {
			live = append(live, doc)
		}
	}

	return live, nil
}

// Remove marks document as deleted (soft delete)
func (s *service) Remove(ctx context.Context, path string) (*models.Document, error) {
	doc, err := s.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	doc.Revision = models.NextRevision(doc.Revision, "", true)
	doc.Content = ""
	doc.Deleted = true
	doc.NodeID = s.nodeID
	doc.ModifiedAt = s.now().UTC()

	if err := s.documents.SaveDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to delete document: %w", err)
	}

	return doc, nil
}
