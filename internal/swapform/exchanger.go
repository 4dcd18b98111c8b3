package swapform

import (
	"context"
	"time"
)

// Order describes a submitted swap.
type Order struct {
	SourceSymbol string
	TargetSymbol string
	SourceAmount string
	TargetAmount string
}

// Exchanger settles a submitted order.
type Exchanger interface {
	Execute(ctx context.Context, order Order) error
}

// SimulatedExchanger stands in for network settlement with a fixed
// delay. No real transfer occurs.
type SimulatedExchanger struct {
	Delay time.Duration
}

// Execute waits out the settlement delay and reports success.
func (e SimulatedExchanger) Execute(ctx context.Context, _ Order) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(e.Delay):
		return nil
	}
}
