package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"snipman/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSnippetSaved   = domain.EventSnippetSaved
	EventSnippetDeleted = domain.EventSnippetDeleted
	EventConfigLoaded   = domain.EventConfigLoaded
	EventConfigSaved    = domain.EventConfigSaved
	EventError          = domain.EventError
)

// Re-export domain event types
type SnippetSavedEvent = domain.SnippetSavedEvent
type SnippetDeletedEvent = domain.SnippetDeletedEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]EventHandler
	closed   bool
}

// New creates a new event bus. Dispatch is synchronous: snipman publishes
// from a single goroutine and handlers must observe store mutations in order.
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]EventHandler),
	}
}

// Publish delivers an event to all subscribers of its type
func (b *bus) Publish(event DomainEvent) {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return
	}
	handlers := b.handlers[event.Type()]
	handlersCopy := make([]EventHandler, len(handlers))
	copy(handlersCopy, handlers)
	b.mu.RUnlock()

	for _, handler := range handlersCopy {
		func(h EventHandler) {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
				}
			}()
			h(event)
		}(handler)
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function.
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
	index := len(b.handlers[eventType]) - 1

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		handlers := b.handlers[eventType]
		if index < len(handlers) {
			b.handlers[eventType] = append(handlers[:index], handlers[index+1:]...)
		}
	}
}

// Close stops delivery of further events
func (b *bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.handlers = make(map[EventType][]EventHandler)
}
