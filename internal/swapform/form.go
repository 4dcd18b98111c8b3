// Package swapform implements the swap form state machine: token
// selection, derived target amounts, direction reversal and the
// submission lifecycle. Presentation layers drive the form through its
// operations and render the State snapshot each one returns.
package swapform

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/solarcodion/code-challenge/internal/catalog"
	"github.com/solarcodion/code-challenge/internal/domain"
)

// User-facing messages.
const (
	msgSelectTokens  = "Please select tokens for the swap"
	msgInvalidAmount = "Please enter a valid amount"
	msgSwapFailed    = "Swap failed. Please try again."
)

// CatalogProvider supplies the priced token catalog for a session.
type CatalogProvider func(ctx context.Context) ([]domain.Token, error)

// Form is the single source of truth for one swap session. All
// operations are safe for concurrent use; mutations are rejected with
// ErrSubmitting while a submission is in flight and ReverseDirection is
// non-reentrant.
type Form struct {
	mu        sync.Mutex
	provider  CatalogProvider
	exchanger Exchanger
	cfg       Config
	state     State
}

// New creates a swap form. The catalog is not loaded until Load is
// called.
func New(provider CatalogProvider, exchanger Exchanger, cfg Config) *Form {
	return &Form{
		provider:  provider,
		exchanger: exchanger,
		cfg:       cfg,
		state: State{
			Loading:   true,
			Lifecycle: LifecycleIdle,
		},
	}
}

// State returns the current snapshot.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Load fetches the token catalog once and picks the default token pair.
// A failing or empty catalog is not an error from the form's point of
// view: the catalog stays empty, no defaults are selected, and the
// loading flag clears either way.
func (f *Form) Load(ctx context.Context) State {
	tokens, err := f.provider(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Loading = false
	if err != nil {
		slog.Warn("swapform: catalog load failed", "error", err)
		return f.state
	}

	f.state.Tokens = tokens
	f.state.SourceToken, f.state.TargetToken = catalog.DefaultPair(tokens)
	f.rederive()
	return f.state
}

// SetSourceAmount records user-entered amount text. Text that is not an
// unsigned decimal number (or empty) is rejected at the boundary and
// the state is left unchanged. A previously shown amount error clears.
func (f *Form) SetSourceAmount(text string) (State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state.Lifecycle == LifecycleSubmitting {
		return f.state, ErrSubmitting
	}
	if !domain.IsAmountText(text) {
		return f.state, nil
	}

	f.state.SourceAmount = text
	f.state.Errors.SourceAmount = ""
	f.rederive()
	return f.state, nil
}

// SelectSourceToken selects the source-side token. Picking the token
// currently selected on the target side exchanges the two slots instead
// of producing a duplicate selection.
func (f *Form) SelectSourceToken(tok domain.Token) (State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state.Lifecycle == LifecycleSubmitting {
		return f.state, ErrSubmitting
	}

	if f.state.TargetToken != nil && f.state.TargetToken.Symbol == tok.Symbol {
		f.state.TargetToken = f.state.SourceToken
	}
	f.state.SourceToken = &tok
	f.state.Errors.SourceAmount = ""
	f.rederive()
	return f.state, nil
}

// SelectTargetToken selects the target-side token, with the same
// slot-exchange rule as SelectSourceToken.
func (f *Form) SelectTargetToken(tok domain.Token) (State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state.Lifecycle == LifecycleSubmitting {
		return f.state, ErrSubmitting
	}

	if f.state.SourceToken != nil && f.state.SourceToken.Symbol == tok.Symbol {
		f.state.SourceToken = f.state.TargetToken
	}
	f.state.TargetToken = &tok
	f.state.Errors.SourceAmount = ""
	f.rederive()
	return f.state, nil
}

// ReverseDirection exchanges the source and target tokens together with
// both amount fields. The exchange runs in three phases: the Reversing
// flag raises, the fields exchange after ReverseDelay, and the flag
// clears after a further ReverseSettle. A second reversal requested
// while one is in progress returns ErrReversing with state unchanged.
func (f *Form) ReverseDirection(ctx context.Context) (State, error) {
	f.mu.Lock()
	if f.state.Lifecycle == LifecycleSubmitting {
		defer f.mu.Unlock()
		return f.state, ErrSubmitting
	}
	if f.state.Reversing {
		defer f.mu.Unlock()
		return f.state, ErrReversing
	}
	f.state.Reversing = true
	f.mu.Unlock()

	if err := sleep(ctx, f.cfg.ReverseDelay); err != nil {
		f.clearReversing()
		return f.State(), err
	}

	f.mu.Lock()
	f.state.SourceToken, f.state.TargetToken = f.state.TargetToken, f.state.SourceToken
	f.state.SourceAmount, f.state.TargetAmount = f.state.TargetAmount, f.state.SourceAmount
	f.state.Errors.SourceAmount = ""
	f.state.Rate = rateString(f.state.SourceToken, f.state.TargetToken)
	f.mu.Unlock()

	if err := sleep(ctx, f.cfg.ReverseSettle); err != nil {
		f.clearReversing()
		return f.State(), err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Reversing = false
	return f.state, nil
}

// Submit validates the form and runs the simulated exchange. Validation
// failures surface as state, not as a returned error: a missing token
// pair sets the general error and a non-positive or unparseable amount
// sets the field error, neither entering the submitting lifecycle. On
// settlement success the amounts clear and the confirmation message
// becomes visible until DismissResult; on settlement failure the form
// returns to idle with the amounts intact and a general retry error.
func (f *Form) Submit(ctx context.Context) (State, error) {
	f.mu.Lock()
	if f.state.Lifecycle == LifecycleSubmitting {
		defer f.mu.Unlock()
		return f.state, ErrSubmitting
	}
	if f.state.Reversing {
		defer f.mu.Unlock()
		return f.state, ErrReversing
	}

	f.state.Errors = FieldErrors{}

	if f.state.SourceToken == nil || f.state.TargetToken == nil {
		f.state.Errors.General = msgSelectTokens
		defer f.mu.Unlock()
		return f.state, nil
	}

	amount, ok := domain.ParseAmount(f.state.SourceAmount)
	if !ok || !amount.IsPositive() {
		f.state.Errors.SourceAmount = msgInvalidAmount
		defer f.mu.Unlock()
		return f.state, nil
	}

	// Capture the confirmation inputs before anything clears.
	order := Order{
		SourceSymbol: f.state.SourceToken.Symbol,
		TargetSymbol: f.state.TargetToken.Symbol,
		SourceAmount: f.state.SourceAmount,
		TargetAmount: f.state.TargetAmount,
	}
	f.state.Lifecycle = LifecycleSubmitting
	f.mu.Unlock()

	err := f.exchanger.Execute(ctx, order)

	f.mu.Lock()
	defer f.mu.Unlock()

	if ctx.Err() != nil {
		// Torn down mid-settlement: discard the result.
		f.state.Lifecycle = LifecycleIdle
		return f.state, ctx.Err()
	}
	if err != nil {
		slog.Warn("swapform: simulated exchange failed", "error", err)
		f.state.Lifecycle = LifecycleIdle
		f.state.Errors.General = msgSwapFailed
		return f.state, nil
	}

	f.state.SuccessMessage = fmt.Sprintf("Successfully swapped %s %s for %s %s",
		order.SourceAmount, order.SourceSymbol, order.TargetAmount, order.TargetSymbol)
	f.state.SourceAmount = ""
	f.state.TargetAmount = ""
	f.state.Lifecycle = LifecycleSucceeded
	return f.state, nil
}

// DismissResult acknowledges a visible success result and returns the
// form to idle.
func (f *Form) DismissResult() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state.Lifecycle == LifecycleSucceeded {
		f.state.Lifecycle = LifecycleIdle
		f.state.SuccessMessage = ""
	}
	return f.state
}

func (f *Form) clearReversing() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Reversing = false
}

// rederive recomputes the derived target amount and the rate display
// string from the current state. Callers hold f.mu.
func (f *Form) rederive() {
	f.state.TargetAmount = deriveTarget(f.state.SourceToken, f.state.TargetToken, f.state.SourceAmount)
	f.state.Rate = rateString(f.state.SourceToken, f.state.TargetToken)
}

func sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
