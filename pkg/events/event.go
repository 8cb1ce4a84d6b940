package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "NOTE_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the plain implementation used across services.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Entity lifecycle event codes emitted by the canvas services.
const (
	NoteCreated        = "NOTE_CREATED"
	NoteUpdated        = "NOTE_UPDATED"
	NoteDeleted        = "NOTE_DELETED"
	ConnectionCreated  = "CONNECTION_CREATED"
	ConnectionDeleted  = "CONNECTION_DELETED"
	ConceptLinkChanged = "CONCEPT_LINK_CHANGED"
)
