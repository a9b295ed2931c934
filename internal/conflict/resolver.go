package conflict

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/signal"
)

//go:generate moq -out presenter_mock.go . Presenter

// Presenter is the decision surface: a human prompt or an automated chooser.
// ctx is cancelled as soon as the session terminates for any other reason, so
// a superseded prompt can tear itself down.
type Presenter interface {
	Present(ctx context.Context, s *Session) (models.Action, error)
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func(ctx context.Context, s *Session) (models.Action, error)

// Present calls f.
func (f PresenterFunc) Present(ctx context.Context, s *Session) (models.Action, error) {
	return f(ctx, s)
}

// Resolver races one decision surface against supersede signals and timeouts.
type Resolver struct {
	coord       *Coordinator
	presenter   Presenter
	logger      *slog.Logger
	waitTimeout time.Duration
}

// NewResolver creates a Resolver. waitTimeout bounds how long Resolve waits for
// the decision; zero waits until the session terminates by itself.
func NewResolver(coord *Coordinator, presenter Presenter, waitTimeout time.Duration, logger *slog.Logger) *Resolver {
	return &Resolver{
		coord:       coord,
		presenter:   presenter,
		waitTimeout: waitTimeout,
		logger:      logger,
	}
}

// Resolve opens a session for req, presents it and returns its outcome.
// Every failure collapses to Cancelled.
func (r *Resolver) Resolve(ctx context.Context, req Request) models.Outcome {
	s, err := r.coord.Open(ctx, req)
	if err != nil {
		r.logger.Warn("Failed to open conflict session", "key", req.Key, "error", err)
		switch {
		case ctx.Err() != nil:
			return models.Cancelled(models.CauseContext)
		case errors.Is(err, ErrEmptyKey), errors.Is(err, ErrEmptyDiff), errors.Is(err, models.ErrUnknownDiffOp):
			return models.Cancelled(models.CauseInvalidRequest)
		default:
			return models.Cancelled(models.CausePresenterFailed)
		}
	}

	surfaceCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		// Снимаем decision surface, как только сессия завершилась
		select {
		case <-s.Done():
			cancel()
		case <-surfaceCtx.Done():
		}
	}()

	go r.present(surfaceCtx, s)

	timeout := r.waitTimeout
	if timeout <= 0 {
		timeout = signal.Forever
	}

	out := s.Wait(ctx, timeout)
	if out.Cause == models.CauseWaitTimeout || out.Cause == models.CauseContext {
		// Ожидающий сдался: закрываем сессию, чтобы decision surface не висела
		s.Abandon()
	}

	r.logger.Info("Conflict session finished",
		"key", s.Key(),
		"session_id", s.ID(),
		"state", s.State().String(),
		"outcome", out.String())

	return out
}

func (r *Resolver) present(ctx context.Context, s *Session) {
	action, err := r.presenter.Present(ctx, s)
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, context.Canceled) {
			return
		}
		r.logger.Warn("Decision surface failed", "key", s.Key(), "session_id", s.ID(), "error", err)
		s.finish(StateResolved, models.Cancelled(models.CausePresenterFailed))
		return
	}

	if _, err := s.Resolve(action); err != nil {
		r.logger.Warn("Decision surface returned an invalid action",
			"key", s.Key(),
			"session_id", s.ID(),
			"action", action.String(),
			"error", err)
		s.finish(StateResolved, models.Cancelled(models.CausePresenterFailed))
	}
}
