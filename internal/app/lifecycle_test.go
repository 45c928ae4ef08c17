package app

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSetupLifecycle_Timeout(t *testing.T) {
	ctx, funcs := SetupLifecycle(context.Background(), 10*time.Millisecond)
	defer funcs.Cleanup()

	if _, ok := ctx.Deadline(); !ok {
		t.Fatal("expected a deadline")
	}
	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("context was not canceled by the timeout")
	}
	if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
		t.Errorf("ctx.Err() = %v, want DeadlineExceeded", ctx.Err())
	}
}

func TestSetupLifecycle_NoTimeout(t *testing.T) {
	ctx, funcs := SetupLifecycle(context.Background(), 0)
	if _, ok := ctx.Deadline(); ok {
		t.Error("a zero timeout should not set a deadline")
	}
	if funcs.CancelTimeout != nil {
		t.Error("CancelTimeout should be nil without a timeout")
	}

	funcs.Cleanup()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("Cleanup should release the signal context")
	}
}

func TestSetupLifecycle_ParentCanceled(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	ctx, funcs := SetupLifecycle(parent, time.Minute)
	defer funcs.Cleanup()

	cancel()
	<-ctx.Done()
	if !errors.Is(ctx.Err(), context.Canceled) {
		t.Errorf("ctx.Err() = %v, want Canceled", ctx.Err())
	}
}

func TestCancelFuncs_CleanupEmpty(t *testing.T) {
	(&CancelFuncs{}).Cleanup()
}
