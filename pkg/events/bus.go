package events

import (
	"sync"

	"github.com/kcaldas/dbgconsole/pkg/logging"
)

// EventHandler is a function that handles an event
type EventHandler func(event interface{})

// Publisher allows publishing events
type Publisher interface {
	Publish(eventType string, event interface{})
}

// Subscriber allows subscribing to events. The returned function removes the
// subscription.
type Subscriber interface {
	Subscribe(eventType string, handler EventHandler) func()
}

// EventBus provides both publishing and subscribing
type EventBus interface {
	Publisher
	Subscriber
}

type subscriberInfo struct {
	id      int
	handler EventHandler
}

// SyncBus delivers events synchronously, in subscription order, on the
// publisher's goroutine. Publish returns once every handler has run.
type SyncBus struct {
	mu          sync.RWMutex
	subscribers map[string][]subscriberInfo
	nextID      int
	logger      logging.Logger
}

// NewEventBus creates a synchronous event bus.
func NewEventBus() *SyncBus {
	return &SyncBus{
		subscribers: make(map[string][]subscriberInfo),
		nextID:      1,
		logger:      logging.NewComponentLogger("events"),
	}
}

// Subscribe adds a handler for a specific event type.
func (b *SyncBus) Subscribe(eventType string, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.subscribers[eventType] = append(b.subscribers[eventType], subscriberInfo{id: id, handler: handler})

	return func() {
		b.unsubscribe(eventType, id)
	}
}

// Publish calls every handler subscribed to eventType. A panicking handler is
// logged and does not stop the others.
func (b *SyncBus) Publish(eventType string, event interface{}) {
	for _, sub := range b.handlersFor(eventType) {
		b.deliver(eventType, sub.handler, event)
	}
}

// SubscriberCount returns the number of handlers for eventType.
func (b *SyncBus) SubscriberCount(eventType string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers[eventType])
}

// Clear removes all subscribers
func (b *SyncBus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = make(map[string][]subscriberInfo)
}

func (b *SyncBus) deliver(eventType string, h EventHandler, event interface{}) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked", "topic", eventType, "panic", r)
		}
	}()
	h(event)
}

// handlersFor snapshots handlers for the topic so handlers may subscribe or
// unsubscribe while being called.
func (b *SyncBus) handlersFor(eventType string) []subscriberInfo {
	b.mu.RLock()
	defer b.mu.RUnlock()
	handlers := make([]subscriberInfo, len(b.subscribers[eventType]))
	copy(handlers, b.subscribers[eventType])
	return handlers
}

func (b *SyncBus) unsubscribe(eventType string, id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subscribers := b.subscribers[eventType]
	for i, sub := range subscribers {
		if sub.id == id {
			// keep delivery order stable
			b.subscribers[eventType] = append(subscribers[:i:i], subscribers[i+1:]...)
			if len(b.subscribers[eventType]) == 0 {
				delete(b.subscribers, eventType)
			}
			return
		}
	}
}
