package engine

import (
	"context"
	"sync"

	"scoreboard/core"
)

type DispatchMode int

const (
	DispatchSync DispatchMode = iota
	DispatchAsync
)

// ParseDispatchMode maps "sync" or "async" to a DispatchMode.
func ParseDispatchMode(s string) (DispatchMode, bool) {
	switch s {
	case "sync":
		return DispatchSync, true
	case "async":
		return DispatchAsync, true
	default:
		return DispatchSync, false
	}
}

type subscription struct {
	id int64
	fn func(context.Context, core.Event)
}

// EventBus provides thread-safe pub/sub with sync and async dispatch.
// After Close, Publish is a no-op.
type EventBus struct {
	mode   DispatchMode
	mu     sync.RWMutex
	subs   map[core.EventType]map[int64]subscription
	nextID int64

	// qmu orders Publish against Close so nothing is sent on a closed queue.
	qmu     sync.RWMutex
	closed  bool
	queue   chan core.Event
	workers sync.WaitGroup
}

func NewEventBus(mode DispatchMode) *EventBus {
	eb := &EventBus{
		mode: mode,
		subs: make(map[core.EventType]map[int64]subscription),
	}
	if mode == DispatchAsync {
		eb.queue = make(chan core.Event, asyncQueueSize)
		eb.startWorkers(asyncWorkers)
	}
	return eb
}

const (
	asyncQueueSize = 1024
	asyncWorkers   = 2
)

func (e *EventBus) startWorkers(n int) {
	e.workers.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer e.workers.Done()
			for ev := range e.queue {
				e.dispatchSync(context.Background(), ev)
			}
		}()
	}
}

// Close stops accepting events and, in async mode, blocks until every
// queued event has been delivered.
func (e *EventBus) Close() {
	e.qmu.Lock()
	if e.closed {
		e.qmu.Unlock()
		return
	}
	e.closed = true
	if e.queue != nil {
		close(e.queue)
	}
	e.qmu.Unlock()
	e.workers.Wait()
}

// Subscribe registers a handler for an event type. Returns unsubscribe func.
func (e *EventBus) Subscribe(typ core.EventType, handler func(context.Context, core.Event)) func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextID++
	id := e.nextID
	if e.subs[typ] == nil {
		e.subs[typ] = make(map[int64]subscription)
	}
	e.subs[typ][id] = subscription{id: id, fn: handler}
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if m := e.subs[typ]; m != nil {
			delete(m, id)
		}
	}
}

// Publish sends an event to subscribers. In async mode the event is
// dropped when the queue is full.
func (e *EventBus) Publish(ctx context.Context, ev core.Event) {
	e.qmu.RLock()
	if e.closed {
		e.qmu.RUnlock()
		return
	}
	if e.mode == DispatchAsync {
		select {
		case e.queue <- ev:
		default:
		}
		e.qmu.RUnlock()
		return
	}
	// handlers run unlocked so they may call Close
	e.qmu.RUnlock()
	e.dispatchSync(ctx, ev)
}

func (e *EventBus) dispatchSync(ctx context.Context, ev core.Event) {
	e.mu.RLock()
	subs := e.subs[ev.Type]
	// copy to avoid holding lock during callbacks
	handlers := make([]func(context.Context, core.Event), 0, len(subs))
	for _, s := range subs {
		handlers = append(handlers, s.fn)
	}
	e.mu.RUnlock()
	for _, h := range handlers {
		h(ctx, ev)
	}
}
