package analytics

import (
	"context"
	"time"

	"luxestate/internal/store"
)

// Event is one usage milestone.
type Event struct {
	Name string         `json:"name"`
	Data map[string]any `json:"data"`
	At   string         `json:"at"`
}

// Service records and lists analytics events. It satisfies the
// EventLogger interfaces declared by the feature modules.
type Service struct {
	records *store.Records
}

func NewService(records *store.Records) *Service {
	return &Service{records: records}
}

// Log stores one event. Logging is best effort; a storage failure never
// propagates into the flow that produced the event.
func (s *Service) Log(ctx context.Context, name string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	_ = s.records.Append(ctx, store.KeyAnalyticsEvents, Event{
		Name: name,
		Data: data,
		At:   time.Now().UTC().Format(time.RFC3339),
	})
}

// List returns all recorded events, newest first.
func (s *Service) List(ctx context.Context) []Event {
	var out []Event
	s.records.ReadInto(ctx, store.KeyAnalyticsEvents, &out)
	if out == nil {
		out = []Event{}
	}
	return out
}
