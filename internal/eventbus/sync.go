package eventbus

import (
	"log/slog"
	"sync"
)

// syncBus delivers events inline on the publishing goroutine
type syncBus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   uint64
}

// NewSync creates an event bus that calls handlers before Publish returns.
// Short-lived commands use it so nothing is lost at exit.
func NewSync() EventBus {
	return &syncBus{handlers: make(map[EventType][]subscription)}
}

func (b *syncBus) Publish(event DomainEvent) {
	slog.Debug("eventbus: publish", "event", event.Type())

	b.mu.RLock()
	subs := append([]subscription(nil), b.handlers[event.Type()]...)
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(event)
	}
}

func (b *syncBus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

func (b *syncBus) Close() {}

// SubscribeAll registers handler for every domain event type
func SubscribeAll(b EventBus, handler EventHandler) func() {
	types := []EventType{
		EventProjectsListed, EventProjectDeleted,
		EventIndexStarted, EventIndexCompleted,
		EventSearchStarted, EventSearchCompleted,
		EventRequestFailed, EventInputRejected,
	}
	unsubs := make([]func(), 0, len(types))
	for _, t := range types {
		unsubs = append(unsubs, b.Subscribe(t, handler))
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}
