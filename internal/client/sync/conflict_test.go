package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/docsync/internal/conflict"
	"github.com/iudanet/docsync/internal/diff"
	"github.com/iudanet/docsync/internal/models"
)

func TestDetectConflict(t *testing.T) {
	f := newFixture("notes/a.md")
	dmp := diff.DiffMatchPatch(0)

	deletedLocal := f.local.Clone()
	deletedLocal.Deleted = true
	deletedRemote := f.remote.Clone()
	deletedRemote.Deleted = true

	tests := []struct {
		name     string
		local    *models.Document
		remote   *models.Document
		conflict bool
	}{
		{name: "no local copy", local: nil, remote: f.remote},
		{name: "clean local", local: f.base, remote: f.remote},
		{name: "same revision", local: f.local, remote: f.local},
		{name: "remote is the base of local", local: f.local, remote: f.base},
		{name: "divergent edits", local: f.local, remote: f.remote, conflict: true},
		{name: "local deleted remote edited", local: deletedLocal, remote: f.remote, conflict: true},
		{name: "both deleted", local: deletedLocal, remote: deletedRemote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DetectConflict(dmp, tt.local, tt.remote)
			if !tt.conflict {
				assert.Nil(t, c)
				return
			}
			require.NotNil(t, c)
			assert.Equal(t, tt.local, c.Local)
			assert.Equal(t, tt.remote, c.Remote)
			assert.NotEmpty(t, c.Diff)
			assert.NoError(t, c.Diff.Validate())
		})
	}
}

func TestDetectConflict_DeletedSideIsEmpty(t *testing.T) {
	f := newFixture("notes/a.md")
	local := f.local.Clone()
	local.Deleted = true

	c := DetectConflict(diff.DiffMatchPatch(0), local, f.remote)
	require.NotNil(t, c)

	assert.Equal(t, "", c.Diff.Left())
	assert.Equal(t, "intro right end", c.Diff.Right())
	assert.True(t, c.Request(conflict.Options{}).Left.IsDeleted())
}

func TestConcatenate(t *testing.T) {
	tests := []struct {
		left, right, want string
	}{
		{left: "a", right: "b", want: "a\nb"},
		{left: "a\n", right: "b\n", want: "a\nb\n"},
		{left: "", right: "b", want: "b"},
		{left: "a", right: "", want: "a"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Concatenate(tt.left, tt.right))
	}
}
