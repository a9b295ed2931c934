package conflict

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/signal"
)

// State is the lifecycle state of a Session.
type State int

const (
	StateOpen       State = iota // StateOpen решение еще не принято
	StateResolved                // StateResolved decision surface выбрала исход
	StateSuperseded              // StateSuperseded вытеснена более новой сессией по тому же ключу
	StateTimedOut                // StateTimedOut истек таймаут сессии
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateOpen:
		return "OPEN"
	case StateResolved:
		return "RESOLVED"
	case StateSuperseded:
		return "SUPERSEDED"
	case StateTimedOut:
		return "TIMED_OUT"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s != StateOpen
}

// Options are presentation hints carried by a session.
type Options struct {
	Title      string
	LeftLabel  string
	RightLabel string
	// PickMode offers a two-way pick: ConcatenateBoth is not allowed.
	PickMode bool
}

func (o Options) withDefaults() Options {
	if o.PickMode {
		if o.Title == "" {
			o.Title = "Pick a version"
		}
		if o.LeftLabel == "" {
			o.LeftLabel = "Use Local"
		}
		if o.RightLabel == "" {
			o.RightLabel = "Use Remote"
		} else {
			o.RightLabel = "Use " + o.RightLabel
		}
		return o
	}
	if o.Title == "" {
		o.Title = "Conflicting changes"
	}
	if o.LeftLabel == "" {
		o.LeftLabel = "Keep A"
	}
	if o.RightLabel == "" {
		o.RightLabel = "Keep B"
	}
	return o
}

// Result is published on the result topic when a session terminates.
type Result struct {
	SessionID string
	Key       string
	Outcome   models.Outcome
	State     State
}

// Session owns one pending decision for one document.
type Session struct {
	createdAt time.Time
	left      models.RevisionRef
	right     models.RevisionRef
	coord     *Coordinator
	logger    *slog.Logger
	sub       *signal.Subscription[bool]
	done      chan struct{}
	id        string
	key       string
	outcome   models.Outcome
	diff      models.DiffScript
	opts      Options
	state     State
	mu        sync.Mutex
}

// ID returns the unique session id.
func (s *Session) ID() string { return s.id }

// Key returns the document identity the session arbitrates.
func (s *Session) Key() string { return s.key }

// Diff returns the edit script from left to right.
func (s *Session) Diff() models.DiffScript { return s.diff }

// Left returns the left revision reference.
func (s *Session) Left() models.RevisionRef { return s.left }

// Right returns the right revision reference.
func (s *Session) Right() models.RevisionRef { return s.right }

// Options returns the presentation options with defaults applied.
func (s *Session) Options() Options { return s.opts }

// CreatedAt returns when the session was opened.
func (s *Session) CreatedAt() time.Time { return s.createdAt }

// Done is closed once the session reaches a terminal state.
func (s *Session) Done() <-chan struct{} { return s.done }

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Outcome returns the terminal outcome and whether the session has terminated.
func (s *Session) Outcome() (models.Outcome, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome, s.state.Terminal()
}

// Allowed reports whether the decision surface may offer action.
func (s *Session) Allowed(action models.Action) bool {
	if !action.Valid() {
		return false
	}
	return !(s.opts.PickMode && action == models.ActionConcatenateBoth)
}

// Resolve applies a decision-surface action. The first terminal transition wins:
// resolving a session that already terminated is a no-op reported as applied=false.
func (s *Session) Resolve(action models.Action) (bool, error) {
	if !s.Allowed(action) {
		return false, fmt.Errorf("%w: %s", ErrInvalidAction, action)
	}

	var outcome models.Outcome
	switch action {
	case models.ActionKeepLeft:
		outcome = models.KeepLeft(s.left.RevisionID())
	case models.ActionKeepRight:
		outcome = models.KeepRight(s.right.RevisionID())
	case models.ActionConcatenateBoth:
		outcome = models.ConcatenateBoth()
	default:
		outcome = models.Cancelled(models.CauseUser)
	}

	applied := s.finish(StateResolved, outcome)
	if !applied {
		s.logger.Debug("Ignoring resolution of a closed session",
			"key", s.key,
			"session_id", s.id,
			"action", action.String(),
			"state", s.State().String())
	}

	return applied, nil
}

// Abandon times the session out on behalf of a waiter that gave up.
func (s *Session) Abandon() bool {
	return s.finish(StateTimedOut, models.Cancelled(models.CauseTimeout))
}

// Wait blocks until the session publishes its result on the result topic,
// timeout elapses or ctx is done. A deadline or a cancelled context yields
// Cancelled: a decision nobody made is never applied.
func (s *Session) Wait(ctx context.Context, timeout time.Duration) models.Outcome {
	if out, ok := s.Outcome(); ok {
		return out
	}

	// Удержанный результат мог уже истечь или быть перезаписан новой сессией,
	// поэтому завершение самой сессии тоже будит ожидающего
	waitCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-s.done:
			cancel()
		case <-waitCtx.Done():
		}
	}()

	res, err := s.coord.results.AwaitFunc(waitCtx, resultTopic(s.key), timeout, func(r Result) bool {
		return r.SessionID == s.id
	})
	if err != nil {
		// Результат мог быть опубликован между проверкой и регистрацией
		if out, ok := s.Outcome(); ok {
			return out
		}
		switch {
		case errors.Is(err, signal.ErrTimedOut):
			return models.Cancelled(models.CauseWaitTimeout)
		case errors.Is(err, signal.ErrInvalidTimeout):
			s.logger.Warn("Invalid wait timeout", "key", s.key, "timeout", timeout)
			return models.Cancelled(models.CauseWaitTimeout)
		default:
			return models.Cancelled(models.CauseContext)
		}
	}

	return res.Outcome
}

// run следит за сигналом вытеснения и собственным таймаутом
func (s *Session) run(timeout time.Duration) {
	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	for {
		select {
		case superseded := <-s.sub.C():
			// Переполненный буфер мог вытеснить true более поздними false,
			// поэтому false дополнительно сверяем с текущей сессией ключа
			if !superseded && s.coord.isCurrent(s) {
				continue
			}
			if s.finish(StateSuperseded, models.Cancelled(models.CauseSuperseded)) {
				s.logger.Info("Conflict session superseded", "key", s.key, "session_id", s.id)
			}
			return
		case <-expired:
			if s.finish(StateTimedOut, models.Cancelled(models.CauseTimeout)) {
				s.logger.Info("Conflict session timed out", "key", s.key, "session_id", s.id, "timeout", timeout)
			}
			return
		case <-s.done:
			return
		}
	}
}

// finish performs the single terminal transition. Only the winner publishes
// the result, clears the supersede flag and releases the key.
func (s *Session) finish(state State, outcome models.Outcome) bool {
	s.mu.Lock()
	if s.state.Terminal() {
		s.mu.Unlock()
		return false
	}
	s.state = state
	s.outcome = outcome
	close(s.done)
	s.mu.Unlock()

	s.sub.Close()
	s.coord.release(s)

	s.coord.results.Publish(resultTopic(s.key), Result{
		SessionID: s.id,
		Key:       s.key,
		State:     state,
		Outcome:   outcome,
	})
	s.coord.supersede.Publish(supersedeTopic(s.key), false)

	s.logger.Debug("Conflict session closed",
		"key", s.key,
		"session_id", s.id,
		"state", state.String(),
		"outcome", outcome.String(),
		"duration_ms", time.Since(s.createdAt).Milliseconds())

	return true
}

func supersedeTopic(key string) string { return "supersede:" + key }

func resultTopic(key string) string { return "result:" + key }
