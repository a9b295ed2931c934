// Package diff computes edit scripts between two revisions of a document.
package diff

import (
	"time"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/iudanet/docsync/internal/models"
)

// Func maps two texts to an edit script transforming left into right.
// Implementations must be pure: Left() and Right() of the result reproduce the inputs.
type Func func(left, right string) models.DiffScript

// DefaultTimeout bounds the diff computation of DiffMatchPatch.
const DefaultTimeout = time.Second

// DiffMatchPatch returns a Func backed by diff-match-patch with semantic cleanup.
func DiffMatchPatch(timeout time.Duration) Func {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return func(left, right string) models.DiffScript {
		if !utf8.ValidString(left) || !utf8.ValidString(right) {
			// diff-match-patch работает с рунами и заменил бы битые байты на U+FFFD
			return replaceAll(left, right)
		}

		dmp := diffmatchpatch.New()
		dmp.DiffTimeout = timeout

		diffs := dmp.DiffMain(left, right, false)
		diffs = dmp.DiffCleanupSemantic(diffs)

		return fromDiffs(diffs)
	}
}

// replaceAll is the coarsest script: delete all of left, insert all of right.
func replaceAll(left, right string) models.DiffScript {
	script := make(models.DiffScript, 0, 2)
	if left != "" {
		script = append(script, models.Delete(left))
	}
	if right != "" {
		script = append(script, models.Insert(right))
	}
	return script
}

func fromDiffs(diffs []diffmatchpatch.Diff) models.DiffScript {
	script := make(models.DiffScript, 0, len(diffs))
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			script = append(script, models.Insert(d.Text))
		case diffmatchpatch.DiffDelete:
			script = append(script, models.Delete(d.Text))
		default:
			script = append(script, models.Equal(d.Text))
		}
	}
	return script
}

// Text returns the content of doc; a missing or deleted document is empty text.
func Text(doc *models.Document) string {
	if doc == nil || doc.Deleted {
		return ""
	}
	return doc.Content
}

// Compute diffs two documents with f. A missing side counts as empty text.
func Compute(f Func, left, right *models.Document) models.DiffScript {
	script := f(Text(left), Text(right))
	if len(script) == 0 {
		// Две пустые стороны: сессии нужен хотя бы один фрагмент
		script = models.DiffScript{models.Equal("")}
	}
	return script
}
