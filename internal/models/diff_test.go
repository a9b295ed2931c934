package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffScript_LeftRight(t *testing.T) {
	tests := []struct {
		name      string
		script    DiffScript
		wantLeft  string
		wantRight string
	}{
		{
			name:      "replace in the middle",
			script:    DiffScript{Equal("intro "), Delete("left"), Insert("right"), Equal(" end")},
			wantLeft:  "intro left end",
			wantRight: "intro right end",
		},
		{
			name:      "identical",
			script:    DiffScript{Equal("same\ntext\n")},
			wantLeft:  "same\ntext\n",
			wantRight: "same\ntext\n",
		},
		{
			name:      "empty fragments are legal",
			script:    DiffScript{Equal(""), Insert("a"), Delete(""), Equal("b")},
			wantLeft:  "b",
			wantRight: "ab",
		},
		{
			name:      "newline fragments kept verbatim",
			script:    DiffScript{Delete("line1\r\nline2\n"), Insert("\n")},
			wantLeft:  "line1\r\nline2\n",
			wantRight: "\n",
		},
		{
			name:      "empty script",
			script:    nil,
			wantLeft:  "",
			wantRight: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLeft, tt.script.Left())
			assert.Equal(t, tt.wantRight, tt.script.Right())
		})
	}
}

func TestDiffScript_Walk_SkipsEmpty(t *testing.T) {
	script := DiffScript{Equal(""), Insert("a\nb"), Delete(""), Equal("c")}

	var visited []DiffOperation
	err := script.Walk(func(op DiffOperation) error {
		visited = append(visited, op)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []DiffOperation{Insert("a\nb"), Equal("c")}, visited)
}

func TestDiffScript_Walk_StopsOnError(t *testing.T) {
	stop := errors.New("stop")
	script := DiffScript{Equal("a"), Insert("b"), Equal("c")}

	count := 0
	err := script.Walk(func(op DiffOperation) error {
		count++
		if op.Op == DiffInsert {
			return stop
		}
		return nil
	})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, count)
}

func TestDiffScript_IsIdentical(t *testing.T) {
	assert.True(t, DiffScript{Equal("x")}.IsIdentical())
	assert.True(t, DiffScript{Equal("x"), Insert("")}.IsIdentical())
	assert.False(t, DiffScript{Equal("x"), Insert("y")}.IsIdentical())
	assert.False(t, DiffScript{Delete("y")}.IsIdentical())
}

func TestDiffScript_Validate(t *testing.T) {
	require.NoError(t, DiffScript{Equal("a"), Insert("b"), Delete("c")}.Validate())

	err := DiffScript{Equal("a"), {Op: DiffOp(7), Text: "?"}}.Validate()
	assert.ErrorIs(t, err, ErrUnknownDiffOp)
}

func TestDiffScript_Stats(t *testing.T) {
	equal, inserted, deleted := DiffScript{Equal("intro "), Delete("left"), Insert("право")}.Stats()

	assert.Equal(t, 6, equal)
	assert.Equal(t, 5, inserted)
	assert.Equal(t, 4, deleted)
}
