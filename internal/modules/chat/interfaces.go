package chat

import "context"

// Notifier receives conversation events for push delivery (websocket).
type Notifier interface {
	Publish(sessionID string, event Event)
}

// EventLogger records usage milestones.
type EventLogger interface {
	Log(ctx context.Context, name string, data map[string]any)
}

// Event is one push notification for a session.
type Event struct {
	Type    string   `json:"type"` // "typing" or "message"
	Typing  bool     `json:"typing,omitempty"`
	Message *Message `json:"message,omitempty"`
}
