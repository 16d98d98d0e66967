package engine

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"scoreboard/core"
)

func TestEventBusSync(t *testing.T) {
	bus := NewEventBus(DispatchSync)
	count := 0
	bus.Subscribe(core.EventScoreInserted, func(ctx context.Context, e core.Event) { count++ })
	bus.Publish(context.Background(), core.NewScoreInserted(core.NewRecord("u", 1), 1, 1))
	bus.Publish(context.Background(), core.NewScoreDeleted(core.NewRecord("u", 1), 1, 0))
	if count != 1 {
		t.Fatalf("want 1 got %d", count)
	}
}

func TestEventBusUnsubscribe(t *testing.T) {
	bus := NewEventBus(DispatchSync)
	count := 0
	unsub := bus.Subscribe(core.EventScoreDeleted, func(ctx context.Context, e core.Event) { count++ })
	unsub()
	bus.Publish(context.Background(), core.NewScoreDeleted(core.NewRecord("u", 1), 1, 0))
	if count != 0 {
		t.Fatalf("handler ran after unsubscribe: %d", count)
	}
}

func TestEventBusAsync(t *testing.T) {
	bus := NewEventBus(DispatchAsync)
	defer bus.Close()
	ch := make(chan struct{})
	bus.Subscribe(core.EventScoreInserted, func(ctx context.Context, e core.Event) { close(ch) })
	bus.Publish(context.Background(), core.NewScoreInserted(core.NewRecord("u", 1), 1, 1))
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("timeout")
	}
}

func TestParseDispatchMode(t *testing.T) {
	if m, ok := ParseDispatchMode("async"); !ok || m != DispatchAsync {
		t.Fatalf("got %v %v", m, ok)
	}
	if _, ok := ParseDispatchMode("later"); ok {
		t.Fatal("expected unknown mode")
	}
}

func TestEventBusAsyncCloseDeliversQueued(t *testing.T) {
	bus := NewEventBus(DispatchAsync)
	var delivered atomic.Int64
	bus.Subscribe(core.EventScoreInserted, func(ctx context.Context, e core.Event) {
		time.Sleep(time.Millisecond)
		delivered.Add(1)
	})

	const n = 200
	for i := 0; i < n; i++ {
		bus.Publish(context.Background(), core.NewScoreInserted(core.NewRecord("u", int64(i)), 1, i+1))
	}
	bus.Close()

	if got := delivered.Load(); got != n {
		t.Fatalf("published %d, delivered %d", n, got)
	}
}

func TestEventBusPublishAfterClose(t *testing.T) {
	for _, mode := range []DispatchMode{DispatchSync, DispatchAsync} {
		bus := NewEventBus(mode)
		count := 0
		bus.Subscribe(core.EventScoreDeleted, func(ctx context.Context, e core.Event) { count++ })
		bus.Close()
		bus.Close()
		bus.Publish(context.Background(), core.NewScoreDeleted(core.NewRecord("u", 1), 1, 0))
		if count != 0 {
			t.Fatalf("mode %d: handler ran after close", mode)
		}
	}
}
