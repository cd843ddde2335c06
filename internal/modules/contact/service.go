package contact

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"luxestate/internal/store"
)

var ErrEmptyMessage = errors.New("message body is required")

// Message is one stored contact-form submission.
type Message struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}

// MailtoLink builds the fallback mailto URL offered to the visitor after
// their message is stored.
func (m Message) MailtoLink(supportAddr string) string {
	subject := m.Subject
	if subject == "" {
		subject = "Contact Request"
	}
	body := fmt.Sprintf("Name: %s %s\nEmail: %s\nPhone: %s\n\n%s",
		m.FirstName, m.LastName, m.Email, m.Phone, m.Message)
	return "mailto:" + supportAddr +
		"?subject=" + urlEncode(subject) +
		"&body=" + urlEncode(body)
}

// urlEncode percent-encodes for mailto URLs, where spaces must be %20.
func urlEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

type Service struct {
	records *store.Records
}

func NewService(records *store.Records) *Service {
	return &Service{records: records}
}

// Submit stores a contact message. IDs are msg-<unix millis>.
func (s *Service) Submit(ctx context.Context, msg Message) (Message, error) {
	if strings.TrimSpace(msg.Message) == "" {
		return Message{}, ErrEmptyMessage
	}

	now := time.Now()
	msg.ID = fmt.Sprintf("msg-%d", now.UnixMilli())
	msg.CreatedAt = now.UTC().Format(time.RFC3339)

	if err := s.records.Append(ctx, store.KeyContactMessages, msg); err != nil {
		return Message{}, err
	}
	return msg, nil
}

// List returns stored messages, newest first.
func (s *Service) List(ctx context.Context) []Message {
	var out []Message
	s.records.ReadInto(ctx, store.KeyContactMessages, &out)
	if out == nil {
		out = []Message{}
	}
	return out
}
