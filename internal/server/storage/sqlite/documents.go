package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/server/storage"
)

const documentColumns = `path, revision, node_id, content, deleted, timestamp, modified_at`

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// SaveDocument принимает push только как fast-forward
func (s *Storage) SaveDocument(ctx context.Context, doc *models.Document) (*models.Document, bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stored, err := scanDocument(tx.QueryRowContext(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE path = ?`, doc.Path))
	switch {
	case errors.Is(err, storage.ErrDocumentNotFound):
		stored = nil
	case err != nil:
		return nil, false, fmt.Errorf("failed to load stored document: %w", err)
	}

	if stored != nil {
		// Повторный push уже принятой ревизии: ничего не меняем
		if stored.Revision == doc.Revision {
			return stored, true, nil
		}
		if stored.Revision != doc.BaseRevision {
			return stored, false, nil
		}
	}

	accepted := doc.Clone()
	accepted.Timestamp = s.clock.Tick()
	accepted.BaseRevision = accepted.Revision
	if accepted.ModifiedAt.IsZero() {
		accepted.ModifiedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO documents (` + documentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			revision = excluded.revision,
			node_id = excluded.node_id,
			content = excluded.content,
			deleted = excluded.deleted,
			timestamp = excluded.timestamp,
			modified_at = excluded.modified_at
	`

	_, err = tx.ExecContext(ctx, query,
		accepted.Path,
		accepted.Revision,
		accepted.NodeID,
		accepted.Content,
		boolToInt(accepted.Deleted),
		accepted.Timestamp,
		accepted.ModifiedAt.UnixNano(),
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to save document: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit document: %w", err)
	}

	return accepted, true, nil
}

// GetDocument retrieves the current revision of a path
func (s *Storage) GetDocument(ctx context.Context, path string) (*models.Document, error) {
	doc, err := scanDocument(s.db.QueryRowContext(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE path = ?`, path))
	if err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return doc, nil
}

// GetDocumentsSince returns revisions stamped after since, ordered by timestamp
func (s *Storage) GetDocumentsSince(ctx context.Context, since int64) ([]*models.Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE timestamp > ? ORDER BY timestamp ASC`, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer func() { _ = rows.Close() }()

	docs := make([]*models.Document, 0)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating documents: %w", err)
	}

	return docs, nil
}

// CurrentTimestamp returns the current value of the server Lamport clock
func (s *Storage) CurrentTimestamp() int64 {
	return s.clock.GetTimestamp()
}

func scanDocument(row rowScanner) (*models.Document, error) {
	var (
		doc        models.Document
		deleted    int
		modifiedAt int64
	)

	err := row.Scan(
		&doc.Path,
		&doc.Revision,
		&doc.NodeID,
		&doc.Content,
		&deleted,
		&doc.Timestamp,
		&modifiedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrDocumentNotFound
		}
		return nil, err
	}

	doc.Deleted = intToBool(deleted)
	doc.ModifiedAt = time.Unix(0, modifiedAt).UTC()
	// Сервер хранит только принятые ревизии
	doc.BaseRevision = doc.Revision

	return &doc, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}
