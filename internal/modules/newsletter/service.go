package newsletter

import (
	"context"
	"errors"
	"strings"
	"time"

	"luxestate/internal/store"
)

var ErrInvalidEmail = errors.New("a valid email address is required")

// Subscriber is one newsletter signup.
type Subscriber struct {
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// EventLogger records usage milestones.
type EventLogger interface {
	Log(ctx context.Context, name string, data map[string]any)
}

type Service struct {
	records *store.Records
	events  EventLogger
}

func NewService(records *store.Records, events EventLogger) *Service {
	return &Service{records: records, events: events}
}

// Subscribe adds an email to the subscriber list. Re-subscribing an
// existing address is a no-op, not an error.
func (s *Service) Subscribe(ctx context.Context, email string) (Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return Subscriber{}, ErrInvalidEmail
	}

	for _, sub := range s.List(ctx) {
		if sub.Email == email {
			return sub, nil
		}
	}

	sub := Subscriber{Email: email, CreatedAt: time.Now().UTC().Format(time.RFC3339)}
	if err := s.records.Append(ctx, store.KeyNewsletterSubscribers, sub); err != nil {
		return Subscriber{}, err
	}

	if s.events != nil {
		s.events.Log(ctx, "newsletter_subscribed", map[string]any{"email": email})
	}
	return sub, nil
}

// List returns subscribers, newest first.
func (s *Service) List(ctx context.Context) []Subscriber {
	var out []Subscriber
	s.records.ReadInto(ctx, store.KeyNewsletterSubscribers, &out)
	if out == nil {
		out = []Subscriber{}
	}
	return out
}

// Export returns the full subscriber list and records the export as an
// analytics event.
func (s *Service) Export(ctx context.Context) []Subscriber {
	subs := s.List(ctx)
	if s.events != nil {
		s.events.Log(ctx, "export_subscriptions", map[string]any{"count": len(subs)})
	}
	return subs
}
