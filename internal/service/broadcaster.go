package service

import "study-canvas-be/pkg/events"

// CanvasBroadcaster pushes entity change events to connected canvas clients.
// Implemented by the websocket hub; nil when no hub is wired.
type CanvasBroadcaster interface {
	BroadcastEvent(evt events.Event)
}
