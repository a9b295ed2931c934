package cli

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/iudanet/docsync/internal/client/iocli"
)

// output собирает все, что команда напечатала
type output struct {
	mu  sync.Mutex
	buf strings.Builder
}

func (o *output) String() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.buf.String()
}

func (o *output) write(s string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.buf.WriteString(s)
}

// newMockIO returns an IOMock that records output and answers prompts from input
func newMockIO(input ...string) (*iocli.IOMock, *output) {
	out := &output{}
	next := func() (string, error) {
		if len(input) == 0 {
			return "", fmt.Errorf("no more input")
		}
		line := input[0]
		input = input[1:]
		return line, nil
	}

	mock := &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			out.write(fmt.Sprintln(a...))
		},
		PrintfFunc: func(format string, a ...any) {
			out.write(fmt.Sprintf(format, a...))
		},
		WriteFunc: func(p []byte) (int, error) {
			out.write(string(p))
			return len(p), nil
		},
		ReadInputFunc: func(prompt string) (string, error) {
			out.write(prompt)
			return next()
		},
		ReadInputContextFunc: func(ctx context.Context, prompt string) (string, error) {
			out.write(prompt)
			return next()
		},
		ReadPasswordFunc: func(prompt string) (string, error) {
			out.write(prompt)
			return next()
		},
	}
	return mock, out
}
