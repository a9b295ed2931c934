package models

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"
)

// Document представляет реплицируемый документ (одна ревизия одного пути).
// Используется и на клиенте (bbolt), и на сервере (sqlite).
type Document struct {
	ModifiedAt   time.Time `json:"modified_at"`   // ModifiedAt время последнего изменения на узле-авторе
	Path         string    `json:"path"`          // Path идентичность документа, ключ партиционирования конфликтов
	Revision     string    `json:"revision"`      // Revision текущая ревизия "<generation>-<hash>"
	BaseRevision string    `json:"base_revision"` // BaseRevision последняя ревизия, известная серверу
	NodeID       string    `json:"node_id"`       // NodeID идентификатор узла, создавшего эту ревизию
	Content      string    `json:"content"`       // Content текстовое содержимое документа
	Timestamp    int64     `json:"timestamp"`     // Timestamp Lamport timestamp, выставленный сервером
	Deleted      bool      `json:"deleted"`       // Deleted флаг soft delete
}

// IsDirty reports whether the document carries local changes the server has not seen.
func (d *Document) IsDirty() bool {
	return d.Revision != d.BaseRevision
}

// Ref returns the immutable revision reference describing this side of a conflict.
func (d *Document) Ref() RevisionRef {
	return NewRevisionRef(d.Revision, d.ModifiedAt, d.Deleted)
}

// IsNewerThan сравнивает два документа по правилу LWW:
// 1. Сначала сравнивается Timestamp (больший выигрывает)
// 2. При равных Timestamp сравнивается ModifiedAt
// 3. При равных ModifiedAt сравнивается NodeID (лексикографически)
func (d *Document) IsNewerThan(other *Document) bool {
	if d.Timestamp != other.Timestamp {
		return d.Timestamp > other.Timestamp
	}
	if !d.ModifiedAt.Equal(other.ModifiedAt) {
		return d.ModifiedAt.After(other.ModifiedAt)
	}
	return d.NodeID > other.NodeID
}

// Clone создает копию документа
func (d *Document) Clone() *Document {
	c := *d
	return &c
}

// NextRevision derives the revision id that follows base for the given content.
// Revision ids have the form "<generation>-<hash>", the hash being a blake2b
// digest over the parent revision, the content and the deletion flag.
func NextRevision(base, content string, deleted bool) string {
	gen := RevisionGeneration(base) + 1

	h, _ := blake2b.New(16, nil) // nil key never fails
	h.Write([]byte(base))
	h.Write([]byte{0})
	h.Write([]byte(content))
	if deleted {
		h.Write([]byte{1})
	}

	return fmt.Sprintf("%d-%s", gen, hex.EncodeToString(h.Sum(nil)))
}

// RevisionGeneration returns the generation prefix of a revision id, 0 for an empty
// or malformed id.
func RevisionGeneration(rev string) int {
	prefix, _, ok := strings.Cut(rev, "-")
	if !ok {
		return 0
	}
	gen, err := strconv.Atoi(prefix)
	if err != nil || gen < 0 {
		return 0
	}
	return gen
}
