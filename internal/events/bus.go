package events

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/sitestudio/internal/logger"
)

// Bus delivers events to subscribers synchronously, in subscription order.
type Bus struct {
	logger *logger.Logger
	subs   map[string][]subscriptionEntry
	nextID int
	mu     sync.RWMutex
}

// NewBus creates a bus that records each event at debug level.
func NewBus(log *logger.Logger) *Bus {
	return &Bus{
		logger: log.Component("events"),
		subs:   make(map[string][]subscriptionEntry),
	}
}

// Publish delivers event to every handler subscribed to its type.
func (b *Bus) Publish(ctx context.Context, event Event) {
	if b == nil || event == nil {
		return
	}

	b.mu.RLock()
	handlers := append([]subscriptionEntry(nil), b.subs[event.EventType()]...)
	b.mu.RUnlock()

	fields := event.Payload()
	if fields == nil {
		fields = map[string]any{}
	}
	fields["event_type"] = event.EventType()
	fields["subscribers"] = len(handlers)
	b.logger.WithFields(fields).Debug("event published")

	for _, entry := range handlers {
		if err := entry.handler(ctx, event); err != nil {
			b.logger.Warnw("event handler failed", map[string]any{"event_type": event.EventType(), "error": err.Error()})
		}
	}
}

// Subscribe registers handler for eventType.
func (b *Bus) Subscribe(eventType string, handler Handler) Subscription {
	if b == nil || handler == nil {
		return noopSubscription{}
	}

	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs[eventType] = append(b.subs[eventType], subscriptionEntry{id: id, handler: handler})
	b.mu.Unlock()

	return subscription{
		cancel: func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			handlers := b.subs[eventType]
			for i, entry := range handlers {
				if entry.id == id {
					b.subs[eventType] = append(handlers[:i:i], handlers[i+1:]...)
					break
				}
			}
		},
	}
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	cancel func()
}

func (s subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}

type subscriptionEntry struct {
	id      int
	handler Handler
}
