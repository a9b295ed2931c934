package iocli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

type line struct {
	err  error
	text string
}

type Stdio struct {
	in      *bufio.Reader
	out     io.Writer
	file    *os.File
	lines   chan line
	reqs    chan struct{}
	once    sync.Once
	mu      sync.Mutex
	pending bool
}

// NewStdio returns IO bound to the process terminal
func NewStdio() IO {
	s := New(os.Stdin, os.Stdout)
	s.file = os.Stdin
	return s
}

// New returns IO reading from in and writing to out
func New(in io.Reader, out io.Writer) *Stdio {
	return &Stdio{
		in:    bufio.NewReader(in),
		out:   out,
		lines: make(chan line),
		reqs:  make(chan struct{}),
	}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	return s.ReadInputContext(context.Background(), prompt)
}

func (s *Stdio) ReadInputContext(ctx context.Context, prompt string) (string, error) {
	s.once.Do(func() { go s.readLoop() })

	s.Printf("%s", prompt)

	s.mu.Lock()
	if !s.pending {
		s.pending = true
		s.reqs <- struct{}{}
	}
	s.mu.Unlock()

	select {
	case l := <-s.lines:
		s.mu.Lock()
		s.pending = false
		s.mu.Unlock()
		if l.err != nil {
			return "", l.err
		}
		return strings.TrimSpace(l.text), nil
	case <-ctx.Done():
		// Запрос на чтение остается в полете, его строку получит следующий вызов
		return "", ctx.Err()
	}
}

// readLoop читает по одной строке на запрос, чтобы не перехватывать ввод у ReadPassword
func (s *Stdio) readLoop() {
	for range s.reqs {
		text, err := s.in.ReadString('\n')
		if err != nil && text != "" {
			err = nil
		}
		s.lines <- line{text: text, err: err}
	}
}

func (s *Stdio) ReadPassword(prompt string) (string, error) {
	if s.file == nil || !term.IsTerminal(int(s.file.Fd())) {
		return s.ReadInput(prompt)
	}

	s.Printf("%s", prompt)
	pwBytes, err := term.ReadPassword(int(s.file.Fd()))
	s.Println("")
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}
