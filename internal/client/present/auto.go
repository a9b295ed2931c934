package present

import (
	"context"
	"fmt"

	"github.com/iudanet/docsync/internal/conflict"
	"github.com/iudanet/docsync/internal/models"
)

// Strategy выбирает, как решаются конфликты
type Strategy string

const (
	StrategyPrompt Strategy = "prompt" // StrategyPrompt спросить пользователя в терминале
	StrategyNewer  Strategy = "newer"  // StrategyNewer оставить более позднюю ревизию
	StrategyLeft   Strategy = "left"   // StrategyLeft всегда оставлять локальную ревизию
	StrategyRight  Strategy = "right"  // StrategyRight всегда оставлять удаленную ревизию
	StrategyConcat Strategy = "concat" // StrategyConcat склеивать обе стороны
	StrategyDefer  Strategy = "defer"  // StrategyDefer откладывать конфликт
)

// Auto is an automated chooser for unattended syncs.
type Auto struct {
	strategy Strategy
}

// NewAuto creates an automated chooser. StrategyPrompt is not automated.
func NewAuto(strategy Strategy) (*Auto, error) {
	switch strategy {
	case StrategyNewer, StrategyLeft, StrategyRight, StrategyConcat, StrategyDefer:
		return &Auto{strategy: strategy}, nil
	default:
		return nil, fmt.Errorf("unsupported automatic strategy %q", strategy)
	}
}

// Present picks an action without user interaction.
func (a *Auto) Present(ctx context.Context, s *conflict.Session) (models.Action, error) {
	if err := ctx.Err(); err != nil {
		return models.ActionCancelled, err
	}

	switch a.strategy {
	case StrategyNewer:
		// При равном времени побеждает локальная ревизия
		if s.Right().ModifiedTime().After(s.Left().ModifiedTime()) {
			return models.ActionKeepRight, nil
		}
		return models.ActionKeepLeft, nil
	case StrategyLeft:
		return models.ActionKeepLeft, nil
	case StrategyRight:
		return models.ActionKeepRight, nil
	case StrategyConcat:
		if !s.Allowed(models.ActionConcatenateBoth) {
			return models.ActionCancelled, nil
		}
		return models.ActionConcatenateBoth, nil
	default:
		return models.ActionCancelled, nil
	}
}

// New returns the presenter for strategy: a Terminal for StrategyPrompt,
// an Auto otherwise.
func New(strategy Strategy, terminal *Terminal) (conflict.Presenter, error) {
	if strategy == StrategyPrompt {
		if terminal == nil {
			return nil, fmt.Errorf("strategy %q needs a terminal", strategy)
		}
		return terminal, nil
	}
	auto, err := NewAuto(strategy)
	if err != nil {
		return nil, err
	}
	return auto, nil
}
