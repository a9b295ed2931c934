package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/docsync/internal/client/data"
	"github.com/iudanet/docsync/internal/client/storage"
	"github.com/iudanet/docsync/internal/models"
)

// dataServiceStub implements data.Service with canned answers
type dataServiceStub struct {
	docs   map[string]*models.Document
	putErr error
}

func (d *dataServiceStub) Put(ctx context.Context, path, content string) (*models.Document, error) {
	if d.putErr != nil {
		return nil, d.putErr
	}
	doc := &models.Document{Path: path, Content: content, Revision: models.NextRevision("", content, false)}
	d.docs[path] = doc
	return doc, nil
}

func (d *dataServiceStub) Get(ctx context.Context, path string) (*models.Document, error) {
	doc, ok := d.docs[path]
	if !ok {
		return nil, storage.ErrDocumentNotFound
	}
	return doc, nil
}

func (d *dataServiceStub) List(ctx context.Context) ([]*models.Document, error) {
	var list []*models.Document
	for _, p := range []string{"a.md", "notes/b.md"} {
		if doc, ok := d.docs[p]; ok {
			list = append(list, doc)
		}
	}
	return list, nil
}

func (d *dataServiceStub) Remove(ctx context.Context, path string) (*models.Document, error) {
	doc, ok := d.docs[path]
	if !ok {
		return nil, storage.ErrDocumentNotFound
	}
	doc.Deleted = true
	doc.Revision = "2-deleted"
	return doc, nil
}

var _ data.Service = (*dataServiceStub)(nil)

func TestCli_RunPut(t *testing.T) {
	mockIO, out := newMockIO()
	stub := &dataServiceStub{docs: map[string]*models.Document{}}
	c := &Cli{io: mockIO, dataService: stub}

	err := c.RunPut(context.Background(), "a.md", "hello")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "✓ Saved a.md (revision 1-")
	assert.Contains(t, out.String(), "docsync sync")
}

func TestCli_RunPut_Error(t *testing.T) {
	mockIO, _ := newMockIO()
	stub := &dataServiceStub{docs: map[string]*models.Document{}, putErr: errors.New("invalid path")}
	c := &Cli{io: mockIO, dataService: stub}

	err := c.RunPut(context.Background(), "/abs", "hello")

	assert.ErrorContains(t, err, "invalid path")
}

func TestCli_RunShow(t *testing.T) {
	mockIO, out := newMockIO()
	stub := &dataServiceStub{docs: map[string]*models.Document{
		"a.md": {
			Path:         "a.md",
			Content:      "hello world",
			Revision:     "2-bb",
			BaseRevision: "1-aa",
			NodeID:       "laptop",
			ModifiedAt:   time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		},
	}}
	c := &Cli{io: mockIO, dataService: stub}

	require.NoError(t, c.RunShow(context.Background(), "a.md"))

	s := out.String()
	assert.Contains(t, s, "=== a.md ===")
	assert.Contains(t, s, "Revision: 2-bb (not synchronized)")
	assert.Contains(t, s, " by laptop")
	assert.Contains(t, s, "---\nhello world\n---")
}

func TestCli_RunShow_NotFound(t *testing.T) {
	mockIO, _ := newMockIO()
	c := &Cli{io: mockIO, dataService: &dataServiceStub{docs: map[string]*models.Document{}}}

	err := c.RunShow(context.Background(), "missing.md")

	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)
}

func TestCli_RunCat(t *testing.T) {
	mockIO, out := newMockIO()
	stub := &dataServiceStub{docs: map[string]*models.Document{"a.md": {Path: "a.md", Content: "raw\ncontent"}}}
	c := &Cli{io: mockIO, dataService: stub}

	require.NoError(t, c.RunCat(context.Background(), "a.md"))
	assert.Equal(t, "raw\ncontent", out.String())
}

func TestCli_RunList(t *testing.T) {
	mockIO, out := newMockIO()
	stub := &dataServiceStub{docs: map[string]*models.Document{
		"a.md":       {Path: "a.md", Revision: "1-0123456789abcdef", BaseRevision: "1-0123456789abcdef"},
		"notes/b.md": {Path: "notes/b.md", Revision: "3-ff", BaseRevision: "2-ee"},
	}}
	c := &Cli{io: mockIO, dataService: stub}

	require.NoError(t, c.RunList(context.Background()))

	s := out.String()
	assert.Contains(t, s, "PATH")
	assert.Contains(t, s, "1-0123456789")
	assert.NotContains(t, s, "1-0123456789abcdef")
	assert.Regexp(t, `a\.md\s+1-0123456789\s+-\s+synced`, s)
	assert.Regexp(t, `notes/b\.md\s+3-ff\s+-\s+modified`, s)
}

func TestCli_RunList_Empty(t *testing.T) {
	mockIO, out := newMockIO()
	c := &Cli{io: mockIO, dataService: &dataServiceStub{docs: map[string]*models.Document{}}}

	require.NoError(t, c.RunList(context.Background()))
	assert.Equal(t, "No documents.\n", out.String())
}

func TestCli_RunRemove(t *testing.T) {
	mockIO, out := newMockIO()
	stub := &dataServiceStub{docs: map[string]*models.Document{"a.md": {Path: "a.md", Revision: "1-a"}}}
	c := &Cli{io: mockIO, dataService: stub}

	require.NoError(t, c.RunRemove(context.Background(), "a.md"))
	assert.Contains(t, out.String(), "✓ Deleted a.md (revision 2-deleted)")

	err := c.RunRemove(context.Background(), "missing.md")
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)
}
