package swapform

import (
	"errors"
	"time"

	"github.com/solarcodion/code-challenge/internal/domain"
)

// Lifecycle identifies where the form is in the submission state
// machine. A failed simulated exchange returns the form to
// LifecycleIdle with a general error rather than resting in a failed
// state.
type Lifecycle string

const (
	LifecycleIdle       Lifecycle = "idle"
	LifecycleSubmitting Lifecycle = "submitting"
	LifecycleSucceeded  Lifecycle = "succeeded"
)

// ErrSubmitting is returned by mutating operations while a submission
// is in flight; the form is frozen apart from its own lifecycle
// transitions.
var ErrSubmitting = errors.New("submission in progress")

// ErrReversing is returned by ReverseDirection and Submit while a
// direction reversal is in progress.
var ErrReversing = errors.New("direction reversal in progress")

// FieldErrors holds validation errors surfaced to the presentation
// layer as state.
type FieldErrors struct {
	SourceAmount string `json:"sourceAmount,omitempty"`
	General      string `json:"general,omitempty"`
}

// State is an immutable snapshot of the swap form. Tokens and the
// selected token pointers must not be mutated by consumers.
type State struct {
	Tokens         []domain.Token `json:"tokens"`
	Loading        bool           `json:"loading"`
	SourceToken    *domain.Token  `json:"sourceToken,omitempty"`
	TargetToken    *domain.Token  `json:"targetToken,omitempty"`
	SourceAmount   string         `json:"sourceAmount"`
	TargetAmount   string         `json:"targetAmount"`
	Rate           string         `json:"rate,omitempty"`
	Errors         FieldErrors    `json:"errors"`
	Lifecycle      Lifecycle      `json:"lifecycle"`
	Reversing      bool           `json:"reversing"`
	SuccessMessage string         `json:"successMessage,omitempty"`
}

// Config controls the timing of the form's asynchronous interactions.
// All waits honour context cancellation; correctness does not depend on
// the chosen durations beyond their ordering.
type Config struct {
	ReverseDelay  time.Duration // visual transition before the fields exchange
	ReverseSettle time.Duration // delay before the transition flag clears
}

// DefaultConfig returns the timings used by the interactive form.
func DefaultConfig() Config {
	return Config{
		ReverseDelay:  300 * time.Millisecond,
		ReverseSettle: 10 * time.Millisecond,
	}
}
