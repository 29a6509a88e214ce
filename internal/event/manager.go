// internal/event/manager.go
package event

import (
	"sync"

	"github.com/bethropolis/tidecalc/internal/logger"
)

// Handler defines the function signature for event subscribers.
// It returns true if the event was consumed, which stops delivery to
// handlers subscribed after it.
type Handler func(e Event) bool

// Subscription identifies a registered handler so it can be removed later.
type Subscription struct {
	eventType Type
	id        uint64
}

type registeredHandler struct {
	id      uint64
	handler Handler
}

// Manager handles event subscriptions and dispatching.
type Manager struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[Type][]registeredHandler // Map event types to a list of handlers
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]registeredHandler),
	}
}

// Subscribe adds a handler function for a specific event type.
func (m *Manager) Subscribe(eventType Type, handler Handler) Subscription {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	m.handlers[eventType] = append(m.handlers[eventType], registeredHandler{id: m.nextID, handler: handler})
	logger.DebugTagf("event", "Event Manager: Handler %d subscribed to %v", m.nextID, eventType)
	return Subscription{eventType: eventType, id: m.nextID}
}

// Unsubscribe removes a handler added with Subscribe. Unknown subscriptions
// are ignored.
func (m *Manager) Unsubscribe(sub Subscription) {
	m.mu.Lock()
	defer m.mu.Unlock()

	handlers := m.handlers[sub.eventType]
	for i, h := range handlers {
		if h.id == sub.id {
			// Copy rather than splice in place; Dispatch may hold the old slice.
			remaining := make([]registeredHandler, 0, len(handlers)-1)
			remaining = append(remaining, handlers[:i]...)
			remaining = append(remaining, handlers[i+1:]...)
			m.handlers[sub.eventType] = remaining
			logger.DebugTagf("event", "Event Manager: Handler %d unsubscribed from %v", sub.id, sub.eventType)
			return
		}
	}
}

// Dispatch sends an event to all registered handlers for its type.
// Handlers run synchronously on the caller's goroutine, in subscription order.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	event := Event{
		Type: eventType,
		Data: data,
	}

	m.mu.RLock() // Use read lock while reading the handler list
	handlers := m.handlers[eventType]
	m.mu.RUnlock()

	if len(handlers) == 0 {
		return
	}

	logger.DebugTagf("event", "Event Manager: Dispatching %v to %d handler(s)", eventType, len(handlers))

	for _, h := range handlers {
		if h.handler(event) {
			break // Consumed
		}
	}
}

// HandlerCount returns the number of handlers subscribed to eventType.
func (m *Manager) HandlerCount(eventType Type) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.handlers[eventType])
}
