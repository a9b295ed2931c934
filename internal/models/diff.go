package models

import (
	"fmt"
	"strings"
)

// DiffOp тип операции в скрипте редактирования
type DiffOp int

const (
	DiffDelete DiffOp = -1 // DiffDelete фрагмент есть только слева
	DiffEqual  DiffOp = 0  // DiffEqual фрагмент общий для обеих сторон
	DiffInsert DiffOp = 1  // DiffInsert фрагмент есть только справа
)

// String returns a short name of the operation.
func (op DiffOp) String() string {
	switch op {
	case DiffDelete:
		return "delete"
	case DiffEqual:
		return "equal"
	case DiffInsert:
		return "insert"
	default:
		return fmt.Sprintf("DiffOp(%d)", int(op))
	}
}

// DiffOperation is one edit of a DiffScript. Text may be empty and may contain
// newlines; the fragment is never split by this package.
type DiffOperation struct {
	Text string `json:"text"`
	Op   DiffOp `json:"op"`
}

// Equal, Insert and Delete build single operations.
func Equal(text string) DiffOperation  { return DiffOperation{Op: DiffEqual, Text: text} }
func Insert(text string) DiffOperation { return DiffOperation{Op: DiffInsert, Text: text} }
func Delete(text string) DiffOperation { return DiffOperation{Op: DiffDelete, Text: text} }

// DiffScript is an ordered edit script transforming the left revision into the right one.
type DiffScript []DiffOperation

// Walk visits operations in order, skipping operations with empty text.
// Iteration stops at the first error returned by fn.
func (s DiffScript) Walk(fn func(DiffOperation) error) error {
	for _, op := range s {
		if op.Text == "" {
			continue
		}
		if err := fn(op); err != nil {
			return err
		}
	}
	return nil
}

// Left reconstructs the left revision: every Equal and Delete fragment.
func (s DiffScript) Left() string {
	var b strings.Builder
	for _, op := range s {
		if op.Op != DiffInsert {
			b.WriteString(op.Text)
		}
	}
	return b.String()
}

// Right reconstructs the right revision: every Equal and Insert fragment.
func (s DiffScript) Right() string {
	var b strings.Builder
	for _, op := range s {
		if op.Op != DiffDelete {
			b.WriteString(op.Text)
		}
	}
	return b.String()
}

// IsIdentical reports whether the script describes two equal revisions.
func (s DiffScript) IsIdentical() bool {
	for _, op := range s {
		if op.Op != DiffEqual && op.Text != "" {
			return false
		}
	}
	return true
}

// Validate проверяет, что скрипт состоит только из известных операций
func (s DiffScript) Validate() error {
	for i, op := range s {
		switch op.Op {
		case DiffEqual, DiffInsert, DiffDelete:
		default:
			return fmt.Errorf("operation %d: %w: %d", i, ErrUnknownDiffOp, int(op.Op))
		}
	}
	return nil
}

// Stats counts the characters touched by each kind of operation.
func (s DiffScript) Stats() (equal, inserted, deleted int) {
	for _, op := range s {
		n := len([]rune(op.Text))
		switch op.Op {
		case DiffEqual:
			equal += n
		case DiffInsert:
			inserted += n
		case DiffDelete:
			deleted += n
		}
	}
	return equal, inserted, deleted
}
