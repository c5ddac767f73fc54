// Package events carries console traffic between the input field and the
// views: submitted commands and output lines. Delivery is synchronous and
// in subscription order, matching the console's single-threaded model.
package events

// EventHandler is a function that handles an event.
type EventHandler func(event interface{})

// Publisher allows publishing events.
type Publisher interface {
	Publish(eventType string, event interface{})
}

// Subscriber allows subscribing to events.
type Subscriber interface {
	Subscribe(eventType string, handler EventHandler)
}

// EventBus provides both publishing and subscribing.
type EventBus interface {
	Publisher
	Subscriber
}

// InMemoryBus implements EventBus with synchronous in-process delivery.
type InMemoryBus struct {
	subscribers map[string][]EventHandler
}

// NewEventBus creates a new event bus.
func NewEventBus() EventBus {
	return &InMemoryBus{
		subscribers: make(map[string][]EventHandler),
	}
}

// Subscribe adds a handler for a specific event type.
func (b *InMemoryBus) Subscribe(eventType string, handler EventHandler) {
	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

// Publish delivers the event to every subscriber of eventType before
// returning.
func (b *InMemoryBus) Publish(eventType string, event interface{}) {
	for _, handler := range b.subscribers[eventType] {
		handler(event)
	}
}
