package stats

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPollerRefreshesImmediatelyAndPeriodically(t *testing.T) {
	var calls atomic.Int64
	p := NewPoller(10*time.Millisecond, func(ctx context.Context) {
		calls.Add(1)
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	time.Sleep(55 * time.Millisecond)
	cancel()
	<-done

	got := calls.Load()
	// Первый вызов сразу + несколько тиков.
	assert.GreaterOrEqual(t, got, int64(3))
}

func TestPollerStopsOnCancel(t *testing.T) {
	var calls atomic.Int64
	p := NewPoller(5*time.Millisecond, func(ctx context.Context) {
		calls.Add(1)
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after cancel")
	}

	after := calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, calls.Load(), "no refreshes after cancel")
}
