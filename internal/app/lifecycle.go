package app

import (
	"context"
	"os/signal"
	"syscall"
	"time"
)

// CancelFuncs holds the cleanup functions of SetupLifecycle.
type CancelFuncs struct {
	CancelTimeout context.CancelFunc
	StopSignals   context.CancelFunc
}

// Cleanup stops signal handling and releases the timeout.
func (c *CancelFuncs) Cleanup() {
	if c.StopSignals != nil {
		c.StopSignals()
	}
	if c.CancelTimeout != nil {
		c.CancelTimeout()
	}
}

// SetupLifecycle returns a context canceled when timeout expires or when the
// process receives SIGINT or SIGTERM, whichever happens first. A timeout of
// zero or less applies no deadline.
func SetupLifecycle(ctx context.Context, timeout time.Duration) (context.Context, *CancelFuncs) {
	funcs := &CancelFuncs{}
	if timeout > 0 {
		ctx, funcs.CancelTimeout = context.WithTimeout(ctx, timeout)
	}
	ctx, funcs.StopSignals = signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	return ctx, funcs
}
