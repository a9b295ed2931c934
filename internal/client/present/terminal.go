package present

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/iudanet/docsync/internal/client/iocli"
	"github.com/iudanet/docsync/internal/conflict"
	"github.com/iudanet/docsync/internal/models"
)

type choice struct {
	label  string
	action models.Action
}

// Terminal asks the user on the terminal.
type Terminal struct {
	io     iocli.IO
	logger *slog.Logger
	styles Styles
}

// NewTerminal creates a terminal decision surface
func NewTerminal(io iocli.IO, styles Styles, logger *slog.Logger) *Terminal {
	return &Terminal{
		io:     io,
		styles: styles,
		logger: logger,
	}
}

// Present renders the session and reads a numbered choice until one is valid.
// It returns as soon as ctx is cancelled.
func (t *Terminal) Present(ctx context.Context, s *conflict.Session) (models.Action, error) {
	t.io.Printf("%s", t.Render(s))

	choices := t.choices(s)
	var prompt strings.Builder
	for i, c := range choices {
		fmt.Fprintf(&prompt, "[%d] %s  ", i+1, t.styles.render(t.styles.Choice, c.label))
	}
	prompt.WriteString("> ")

	for {
		answer, err := t.io.ReadInputContext(ctx, prompt.String())
		if err != nil {
			if ctx.Err() != nil {
				t.io.Println("")
				t.io.Println("Conflict dialog closed:", s.Key())
			}
			return models.ActionCancelled, err
		}

		n, err := strconv.Atoi(answer)
		if err == nil && n >= 1 && n <= len(choices) {
			return choices[n-1].action, nil
		}

		t.logger.Debug("Unknown conflict choice", "key", s.Key(), "answer", answer)
		t.io.Printf("Unknown choice %q, enter a number from 1 to %d\n", answer, len(choices))
	}
}

// Render returns the dialog text: title, path, diff and both revision labels.
func (t *Terminal) Render(s *conflict.Session) string {
	opts := s.Options()
	st := t.styles

	var b strings.Builder
	b.WriteString(st.render(st.Title, opts.Title))
	b.WriteString("\n")
	b.WriteString(st.render(st.Path, s.Key()))
	b.WriteString("\n\n")
	b.WriteString(RenderDiff(s.Diff(), st))
	b.WriteString("\n\n")
	b.WriteString(st.render(st.Deleted, "A: "+s.Left().Label()))
	b.WriteString("\n")
	b.WriteString(st.render(st.Added, "B: "+s.Right().Label()))
	b.WriteString("\n")

	return b.String()
}

func (t *Terminal) choices(s *conflict.Session) []choice {
	opts := s.Options()
	choices := []choice{
		{label: opts.LeftLabel, action: models.ActionKeepLeft},
		{label: opts.RightLabel, action: models.ActionKeepRight},
	}
	if s.Allowed(models.ActionConcatenateBoth) {
		choices = append(choices, choice{label: "Concat both", action: models.ActionConcatenateBoth})
	}

	cancel := "Not now"
	if opts.PickMode {
		cancel = "Cancel"
	}
	return append(choices, choice{label: cancel, action: models.ActionCancelled})
}

// RenderDiff renders a diff script. Every newline inside a fragment is
// preceded by CRMarker; fragments are styled line by line.
func RenderDiff(diff models.DiffScript, st Styles) string {
	var b strings.Builder

	_ = diff.Walk(func(op models.DiffOperation) error {
		style := st.Normal
		open, closing := "", ""
		switch op.Op {
		case models.DiffDelete:
			style = st.Deleted
			if !st.Colored {
				open, closing = "[-", "-]"
			}
		case models.DiffInsert:
			style = st.Added
			if !st.Colored {
				open, closing = "{+", "+}"
			}
		}

		b.WriteString(open)
		lines := strings.Split(op.Text, "\n")
		for i, line := range lines {
			b.WriteString(st.render(style, line))
			if i < len(lines)-1 {
				b.WriteString(st.render(st.Marker, CRMarker))
				b.WriteString("\n")
			}
		}
		b.WriteString(closing)
		return nil
	})

	return b.String()
}
