// Package conflict coordinates interactive conflict resolution: one pending
// decision per document key, superseded when a newer conflict for the same
// key is opened.
package conflict

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/signal"
)

// Request describes a detected conflict.
type Request struct {
	Left    models.RevisionRef
	Right   models.RevisionRef
	Key     string
	Diff    models.DiffScript
	Options Options
}

// Config holds coordinator settings.
type Config struct {
	// SessionTimeout makes an open session time out by itself. Zero disables it.
	SessionTimeout time.Duration
	// Retention is the grace window of the signal channels.
	Retention time.Duration
}

// Coordinator owns the supersede and result channels shared by all sessions
// and tracks the current session of every key.
type Coordinator struct {
	supersede *signal.Channel[bool]
	results   *signal.Channel[Result]
	current   map[string]*Session
	logger    *slog.Logger
	cfg       Config
	mu        sync.Mutex
}

// NewCoordinator creates a coordinator. Close releases the channel janitors.
func NewCoordinator(cfg Config, logger *slog.Logger) *Coordinator {
	if cfg.Retention <= 0 {
		cfg.Retention = signal.DefaultRetention
	}

	return &Coordinator{
		supersede: signal.NewChannel[bool](signal.WithRetention(cfg.Retention)),
		results:   signal.NewChannel[Result](signal.WithRetention(cfg.Retention)),
		current:   make(map[string]*Session),
		logger:    logger,
		cfg:       cfg,
	}
}

// Close stops the signal channels. Open sessions keep their own timers.
func (c *Coordinator) Close() {
	c.supersede.Close()
	c.results.Close()
}

// Open creates a session for req.Key and supersedes any session previously
// open for the same key.
//
// The supersede publish and the registration of the new session's own
// subscription happen under the coordinator lock, and every session registers
// its subscription inside Open. So when a newer session publishes, the older
// one is guaranteed to be listening; no grace delay is involved. Open returns
// after the superseded session has acknowledged by reaching a terminal state,
// or when ctx is done.
func (c *Coordinator) Open(ctx context.Context, req Request) (*Session, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	s := &Session{
		createdAt: time.Now(),
		left:      req.Left,
		right:     req.Right,
		coord:     c,
		logger:    c.logger,
		done:      make(chan struct{}),
		id:        uuid.New().String(),
		key:       req.Key,
		diff:      req.Diff,
		opts:      req.Options.withDefaults(),
		state:     StateOpen,
	}

	c.mu.Lock()
	prev := c.current[req.Key]
	c.current[req.Key] = s
	// Вытесняем предыдущую сессию (если ее нет, сигнал просто удержится и истечет)
	c.supersede.Publish(supersedeTopic(req.Key), true)
	s.sub = c.supersede.Subscribe(supersedeTopic(req.Key))
	c.mu.Unlock()

	go s.run(c.cfg.SessionTimeout)

	c.logger.Info("Conflict session opened",
		"key", s.key,
		"session_id", s.id,
		"left", s.left.RevisionID(),
		"right", s.right.RevisionID(),
		"supersedes", sessionID(prev))

	if prev == nil {
		return s, nil
	}

	select {
	case <-prev.Done():
		return s, nil
	case <-ctx.Done():
		s.finish(StateTimedOut, models.Cancelled(models.CauseContext))
		return nil, fmt.Errorf("waiting for superseded session %s: %w", prev.ID(), ctx.Err())
	}
}

// Active returns the current session for key, if any.
func (c *Coordinator) Active(key string) (*Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.current[key]
	return s, ok
}

// ActiveCount returns the number of keys with an open session.
func (c *Coordinator) ActiveCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.current)
}

func (c *Coordinator) isCurrent(s *Session) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.current[s.key] == s
}

// release забывает сессию, если она все еще текущая для своего ключа
func (c *Coordinator) release(s *Session) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current[s.key] == s {
		delete(c.current, s.key)
	}
}

func validate(req Request) error {
	if req.Key == "" {
		return ErrEmptyKey
	}
	if len(req.Diff) == 0 {
		return ErrEmptyDiff
	}
	if err := req.Diff.Validate(); err != nil {
		return fmt.Errorf("invalid diff: %w", err)
	}
	return nil
}

func sessionID(s *Session) string {
	if s == nil {
		return ""
	}
	return s.ID()
}
