package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSnippetSaved   EventType = "SnippetSaved"
	EventSnippetDeleted EventType = "SnippetDeleted"
	EventConfigLoaded   EventType = "ConfigLoaded"
	EventConfigSaved    EventType = "ConfigSaved"
	EventError          EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SnippetSavedEvent is emitted when a snippet is written to the store
type SnippetSavedEvent struct {
	Snippet Snippet
}

func (e SnippetSavedEvent) Type() EventType { return EventSnippetSaved }

// SnippetDeletedEvent is emitted when a snippet is removed from the store
type SnippetDeletedEvent struct {
	ID          string
	Description string
}

func (e SnippetDeletedEvent) Type() EventType { return EventSnippetDeleted }

// ConfigLoadedEvent is emitted when the configuration has been read
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when the configuration has been written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
