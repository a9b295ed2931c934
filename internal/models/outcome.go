package models

import "fmt"

// Action is the closed set of choices a decision surface can make.
type Action int

const (
	ActionCancelled Action = iota // ActionCancelled решение отложено ("Not now")
	ActionKeepLeft                // ActionKeepLeft оставить левую (локальную) ревизию
	ActionKeepRight               // ActionKeepRight оставить правую (удаленную) ревизию
	ActionConcatenateBoth         // ActionConcatenateBoth склеить обе стороны, слияние откладывается
)

// String returns the action name used in logs and prompts.
func (a Action) String() string {
	switch a {
	case ActionCancelled:
		return "cancelled"
	case ActionKeepLeft:
		return "keep_left"
	case ActionKeepRight:
		return "keep_right"
	case ActionConcatenateBoth:
		return "concatenate_both"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Valid reports whether a belongs to the closed set.
func (a Action) Valid() bool {
	switch a {
	case ActionCancelled, ActionKeepLeft, ActionKeepRight, ActionConcatenateBoth:
		return true
	}
	return false
}

// Cause explains why an outcome was produced. It is diagnostic only: consumers
// decide on Action alone.
type Cause string

const (
	CauseUser            Cause = "user"             // выбор сделан decision surface
	CauseSuperseded      Cause = "superseded"       // вытеснена более новой сессией
	CauseTimeout         Cause = "timeout"          // сессия истекла сама
	CauseWaitTimeout     Cause = "wait_timeout"     // ожидающий не дождался результата
	CauseContext         Cause = "context"          // контекст ожидающего отменен
	CausePresenterFailed Cause = "presenter_failed" // decision surface вернула ошибку
	CauseInvalidRequest  Cause = "invalid_request"  // запрос на сессию не прошел проверку
)

// Outcome is the terminal result of a conflict session.
type Outcome struct {
	RevisionID string `json:"revision_id,omitempty"` // RevisionID выбранная ревизия для KeepLeft/KeepRight
	Cause      Cause  `json:"cause"`
	Action     Action `json:"action"`
}

// KeepLeft keeps the left revision.
func KeepLeft(revisionID string) Outcome {
	return Outcome{Action: ActionKeepLeft, RevisionID: revisionID, Cause: CauseUser}
}

// KeepRight keeps the right revision.
func KeepRight(revisionID string) Outcome {
	return Outcome{Action: ActionKeepRight, RevisionID: revisionID, Cause: CauseUser}
}

// ConcatenateBoth defers the merge to the applier.
func ConcatenateBoth() Outcome {
	return Outcome{Action: ActionConcatenateBoth, Cause: CauseUser}
}

// Cancelled is the fail-safe outcome: nothing is applied.
func Cancelled(cause Cause) Outcome {
	return Outcome{Action: ActionCancelled, Cause: cause}
}

// IsCancelled reports whether nothing should be applied.
func (o Outcome) IsCancelled() bool {
	return o.Action == ActionCancelled
}

// String formats the outcome for logs.
func (o Outcome) String() string {
	switch o.Action {
	case ActionKeepLeft, ActionKeepRight:
		return fmt.Sprintf("%s(%s)", o.Action, o.RevisionID)
	case ActionCancelled:
		return fmt.Sprintf("%s(%s)", o.Action, o.Cause)
	default:
		return o.Action.String()
	}
}
