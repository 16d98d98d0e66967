package engine

import (
	"context"

	"scoreboard/core"
)

// Publisher delivers board events to subscribers.
type Publisher interface {
	Publish(ctx context.Context, ev core.Event)
	Subscribe(typ core.EventType, handler func(context.Context, core.Event)) func()
	Close()
}

var _ Publisher = (*EventBus)(nil)
