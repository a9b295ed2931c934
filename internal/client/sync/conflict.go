package sync

import (
	"strings"

	"github.com/iudanet/docsync/internal/conflict"
	"github.com/iudanet/docsync/internal/diff"
	"github.com/iudanet/docsync/internal/models"
)

// Conflict is a divergence between the local and the server revision of one document.
type Conflict struct {
	Local  *models.Document
	Remote *models.Document
	Diff   models.DiffScript
}

// Request builds the session request: the local revision is the left side.
func (c *Conflict) Request(opts conflict.Options) conflict.Request {
	return conflict.Request{
		Key:     c.Local.Path,
		Left:    c.Local.Ref(),
		Right:   c.Remote.Ref(),
		Diff:    c.Diff,
		Options: opts,
	}
}

// DetectConflict returns the conflict between local and remote, or nil when
// remote can be applied without a decision: the local copy has no unpushed
// changes, already is remote, was derived from it, or converged to the same text.
func DetectConflict(f diff.Func, local, remote *models.Document) *Conflict {
	if local == nil || remote == nil || !local.IsDirty() {
		return nil
	}
	if local.Revision == remote.Revision || local.BaseRevision == remote.Revision {
		return nil
	}
	if local.Deleted && remote.Deleted {
		return nil
	}
	if !local.Deleted && !remote.Deleted && local.Content == remote.Content {
		return nil
	}

	return &Conflict{
		Local:  local,
		Remote: remote,
		Diff:   diff.Compute(f, local, remote),
	}
}

// Concatenate keeps both texts: left first, then right on a new line.
func Concatenate(left, right string) string {
	if left == "" || right == "" || strings.HasSuffix(left, "\n") {
		return left + right
	}
	return left + "\n" + right
}
