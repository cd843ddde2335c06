package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// botJob is one pending scripted reply for a session.
type botJob struct {
	delay   time.Duration
	text    string
	options []Option
}

// Session holds one visitor's conversation. All bot replies for a session
// are produced by a single worker goroutine consuming the jobs channel, so
// the transcript order always matches the order of user actions.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	transcript []Message
	typing     bool

	jobs   chan botJob
	ctx    context.Context
	cancel context.CancelFunc
}

func (s *Session) snapshot() ([]Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.transcript))
	copy(out, s.transcript)
	return out, s.typing
}

func (s *Session) append(m Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, m)
}

// Service is the scripted conversation engine.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	optionDelay time.Duration
	textDelay   time.Duration

	notifier Notifier
	events   EventLogger
}

func NewService(optionDelay, textDelay time.Duration, notifier Notifier, events EventLogger) *Service {
	return &Service{
		sessions:    make(map[string]*Session),
		optionDelay: optionDelay,
		textDelay:   textDelay,
		notifier:    notifier,
		events:      events,
	}
}

// StartSession creates a session pre-seeded with the welcome sequence and
// starts its reply worker.
func (s *Service) StartSession(ctx context.Context) *Session {
	now := time.Now()
	sctx, cancel := context.WithCancel(context.Background())
	sess := &Session{
		ID:         uuid.NewString(),
		CreatedAt:  now,
		transcript: WelcomeMessages(now),
		jobs:       make(chan botJob, 16),
		ctx:        sctx,
		cancel:     cancel,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	go s.runWorker(sess)

	s.logEvent(ctx, "chat_session_started", map[string]any{"session_id": sess.ID})
	return sess
}

// Transcript returns a copy of the session's messages and whether a bot
// reply is currently pending.
func (s *Service) Transcript(sessionID string) ([]Message, bool, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, false, err
	}
	msgs, typing := sess.snapshot()
	return msgs, typing, nil
}

// SelectOption records the visitor's choice and schedules the scripted
// reply. Unknown option ids get the fallback reply rather than an error.
func (s *Service) SelectOption(ctx context.Context, sessionID, optionID, label string) (Message, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return Message{}, err
	}

	userMsg := Message{
		ID:        fmt.Sprintf("user-%d", time.Now().UnixMilli()),
		Role:      RoleUser,
		Text:      label,
		Timestamp: time.Now(),
	}
	sess.append(userMsg)
	s.publish(sess.ID, Event{Type: "message", Message: &userMsg})

	job := botJob{delay: s.optionDelay, text: fallbackReply}
	if entry, ok := LookupOption(optionID); ok {
		job.text = entry.Reply
		job.options = entry.Options
	}
	if err := s.enqueue(sess, job); err != nil {
		return Message{}, err
	}

	s.logEvent(ctx, "chat_option_selected", map[string]any{
		"session_id": sessionID,
		"option_id":  optionID,
		"label":      label,
	})
	return userMsg, nil
}

// SendText records a free-form message and schedules the keyword-matched
// reply. Empty or whitespace-only text is a no-op and returns nil.
func (s *Service) SendText(ctx context.Context, sessionID, text string) (*Message, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	userMsg := Message{
		ID:        fmt.Sprintf("user-%d", time.Now().UnixMilli()),
		Role:      RoleUser,
		Text:      text,
		Timestamp: time.Now(),
	}
	sess.append(userMsg)
	s.publish(sess.ID, Event{Type: "message", Message: &userMsg})

	if err := s.enqueue(sess, botJob{delay: s.textDelay, text: classifyFreeText(text)}); err != nil {
		return nil, err
	}

	s.logEvent(ctx, "chat_free_text", map[string]any{"session_id": sessionID})
	return &userMsg, nil
}

// CloseSession cancels any pending bot replies and forgets the session.
func (s *Service) CloseSession(sessionID string) error {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if ok {
		delete(s.sessions, sessionID)
	}
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	sess.cancel()
	return nil
}

func (s *Service) session(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *Service) enqueue(sess *Session, job botJob) error {
	select {
	case sess.jobs <- job:
		return nil
	case <-sess.ctx.Done():
		return ErrSessionClosed
	}
}

// runWorker drains the session's job queue one reply at a time. The delay
// simulates the bot composing its answer; closing the session aborts any
// reply still waiting.
func (s *Service) runWorker(sess *Session) {
	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-sess.ctx.Done():
			return
		case job := <-sess.jobs:
			s.setTyping(sess, true)

			timer.Reset(job.delay)
			select {
			case <-sess.ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}

			botMsg := Message{
				ID:        fmt.Sprintf("bot-%d", time.Now().UnixMilli()),
				Role:      RoleBot,
				Text:      job.text,
				Options:   job.options,
				Timestamp: time.Now(),
			}
			sess.append(botMsg)
			s.setTyping(sess, false)
			s.publish(sess.ID, Event{Type: "message", Message: &botMsg})
		}
	}
}

func (s *Service) setTyping(sess *Session, typing bool) {
	sess.mu.Lock()
	sess.typing = typing
	sess.mu.Unlock()
	s.publish(sess.ID, Event{Type: "typing", Typing: typing})
}

func (s *Service) publish(sessionID string, e Event) {
	if s.notifier != nil {
		s.notifier.Publish(sessionID, e)
	}
}

func (s *Service) logEvent(ctx context.Context, name string, data map[string]any) {
	if s.events != nil {
		s.events.Log(ctx, name, data)
	}
}
