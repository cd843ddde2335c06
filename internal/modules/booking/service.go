package booking

import (
	"context"
	"encoding/base64"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"luxestate/internal/store"
)

const msPerDay = 24 * time.Hour

// EventLogger records usage milestones.
type EventLogger interface {
	Log(ctx context.Context, name string, data map[string]any)
}

// Session is one wizard instance, opened for a specific property listing.
type Session struct {
	ID        string `json:"id"`
	Property  string `json:"property"`
	Location  string `json:"location"`
	Price     string `json:"price"`
	State     State  `json:"state"`
	Draft     Draft  `json:"draft"`
	Reference string `json:"reference,omitempty"`

	listKey    string
	resetTimer *time.Timer
}

// DraftPatch is a partial draft update; nil sections are left untouched.
type DraftPatch struct {
	Contact  *Contact  `json:"contact"`
	Address  *Address  `json:"address"`
	Schedule *Schedule `json:"schedule"`
	Payment  *Payment  `json:"payment"`
}

// Service runs the five-step booking wizard and owns the confirmed
// booking records.
type Service struct {
	mu       sync.Mutex
	sessions map[string]*Session

	records     *store.Records
	events      EventLogger
	resetDelay  time.Duration
	maxDocBytes int64
}

func NewService(records *store.Records, events EventLogger, resetDelay time.Duration, maxDocBytes int64) *Service {
	return &Service{
		sessions:    make(map[string]*Session),
		records:     records,
		events:      events,
		resetDelay:  resetDelay,
		maxDocBytes: maxDocBytes,
	}
}

// StartWizard opens a fresh wizard session. Sessions opened for a property
// listing confirm into the viewing-requests list; sessions without a
// property (general inquiries from the contact page) confirm into the
// schedule-requests list.
func (s *Service) StartWizard(property, location, price string) *Session {
	listKey := store.KeyViewingRequests
	if property == "" {
		listKey = store.KeyScheduleRequests
	}
	sess := &Session{
		ID:       uuid.NewString(),
		Property: property,
		Location: location,
		Price:    price,
		State:    StateEmpty,
		Draft:    newDraft(),
		listKey:  listKey,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

// Get returns a copy of the session.
func (s *Service) Get(sessionID string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return copySession(sess), nil
}

// UpdateDraft applies a partial edit. Any edit moves an empty session to
// Editing; confirmed or in-flight sessions reject edits.
func (s *Service) UpdateDraft(sessionID string, patch DraftPatch) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if sess.State == StateConfirmed || sess.State == StateSubmitting {
		return Session{}, ErrNotEditable
	}

	if patch.Contact != nil {
		sess.Draft.Contact = *patch.Contact
	}
	if patch.Address != nil {
		sess.Draft.Address = *patch.Address
	}
	if patch.Schedule != nil {
		sched := *patch.Schedule
		if sched.Guests < 1 {
			sched.Guests = 1
		}
		sess.Draft.Schedule = sched
	}
	if patch.Payment != nil {
		sess.Draft.Payment = *patch.Payment
	}
	sess.State = StateEditing

	return copySession(sess), nil
}

// AddDocument attaches an identity document to the draft.
func (s *Service) AddDocument(sessionID string, doc Document) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if sess.State == StateConfirmed || sess.State == StateSubmitting {
		return Session{}, ErrNotEditable
	}

	if doc.DocNumber == "" || doc.FileData == "" {
		return Session{}, ErrIncompleteDocument
	}
	if decodedFileSize(doc.FileData) > s.maxDocBytes {
		return Session{}, ErrDocumentTooLarge
	}
	if doc.DocType == "" {
		doc.DocType = "Passport"
	}

	sess.Draft.Documents = append(sess.Draft.Documents, doc)
	sess.State = StateEditing
	return copySession(sess), nil
}

// RemoveDocument drops the document at index.
func (s *Service) RemoveDocument(sessionID string, index int) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if sess.State == StateConfirmed || sess.State == StateSubmitting {
		return Session{}, ErrNotEditable
	}
	if index < 0 || index >= len(sess.Draft.Documents) {
		return Session{}, ErrDocumentIndexOutOfRange
	}

	sess.Draft.Documents = append(sess.Draft.Documents[:index], sess.Draft.Documents[index+1:]...)
	return copySession(sess), nil
}

// Submit validates the draft, mints a reference, persists the record and
// confirms the session. A failed validation returns the session to
// Editing. Confirmation auto-resets to an empty draft after the
// configured delay, unless Cancel is called first.
func (s *Service) Submit(ctx context.Context, sessionID string) (Record, error) {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return Record{}, ErrSessionNotFound
	}
	if sess.State == StateConfirmed || sess.State == StateSubmitting {
		s.mu.Unlock()
		return Record{}, ErrNotEditable
	}
	sess.State = StateSubmitting
	draft := sess.Draft
	property, location, price := sess.Property, sess.Location, sess.Price
	listKey := sess.listKey
	s.mu.Unlock()

	rec, err := buildRecord(draft, property, location, price, time.Now())
	if err != nil {
		s.mu.Lock()
		if cur, ok := s.sessions[sessionID]; ok && cur.State == StateSubmitting {
			cur.State = StateEditing
		}
		s.mu.Unlock()
		return Record{}, err
	}

	if err := s.records.Append(ctx, listKey, rec); err != nil {
		s.mu.Lock()
		if cur, ok := s.sessions[sessionID]; ok && cur.State == StateSubmitting {
			cur.State = StateEditing
		}
		s.mu.Unlock()
		return Record{}, err
	}

	s.mu.Lock()
	if cur, ok := s.sessions[sessionID]; ok {
		cur.State = StateConfirmed
		cur.Reference = rec.ID
		ref := rec.ID
		cur.resetTimer = time.AfterFunc(s.resetDelay, func() {
			s.resetAfterConfirm(sessionID, ref)
		})
	}
	s.mu.Unlock()

	if s.events != nil {
		s.events.Log(ctx, "booking_confirmed", map[string]any{
			"reference":     rec.ID,
			"property":      rec.Property,
			"duration_days": rec.DurationDays,
		})
	}
	return rec, nil
}

// Cancel resets the wizard to an empty draft immediately and stops any
// pending auto-reset.
func (s *Service) Cancel(sessionID string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if sess.resetTimer != nil {
		sess.resetTimer.Stop()
		sess.resetTimer = nil
	}
	sess.State = StateEmpty
	sess.Draft = newDraft()
	sess.Reference = ""
	return copySession(sess), nil
}

// ListBookings returns all confirmed property bookings, newest first.
func (s *Service) ListBookings(ctx context.Context) []Record {
	return s.list(ctx, store.KeyViewingRequests)
}

// ListScheduleRequests returns confirmed general-inquiry bookings, newest
// first.
func (s *Service) ListScheduleRequests(ctx context.Context) []Record {
	return s.list(ctx, store.KeyScheduleRequests)
}

func (s *Service) list(ctx context.Context, key string) []Record {
	var out []Record
	s.records.ReadInto(ctx, key, &out)
	if out == nil {
		out = []Record{}
	}
	return out
}

// GetBooking finds a confirmed booking by its reference, in either list.
func (s *Service) GetBooking(ctx context.Context, reference string) (Record, error) {
	for _, key := range []string{store.KeyViewingRequests, store.KeyScheduleRequests} {
		for _, rec := range s.list(ctx, key) {
			if rec.ID == reference {
				return rec, nil
			}
		}
	}
	return Record{}, ErrBookingNotFound
}

// resetAfterConfirm is the confirmation timer callback. The reference
// guard keeps a stale timer from clobbering a session that was already
// cancelled and reused.
func (s *Service) resetAfterConfirm(sessionID, reference string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok || sess.State != StateConfirmed || sess.Reference != reference {
		return
	}
	sess.State = StateEmpty
	sess.Draft = newDraft()
	sess.Reference = ""
	sess.resetTimer = nil
}

// buildRecord runs the submit validation chain in its fixed order and
// assembles the persisted record.
func buildRecord(d Draft, property, location, price string, now time.Time) (Record, error) {
	c, sched := d.Contact, d.Schedule
	if c.Name == "" || c.Phone == "" || c.Email == "" ||
		sched.StartDate == "" || sched.StartTime == "" ||
		sched.EndDate == "" || sched.EndTime == "" {
		return Record{}, ErrIncompleteContactOrSchedule
	}

	start, err := combineDateTime(sched.StartDate, sched.StartTime)
	if err != nil {
		return Record{}, ErrIncompleteContactOrSchedule
	}
	end, err := combineDateTime(sched.EndDate, sched.EndTime)
	if err != nil {
		return Record{}, ErrIncompleteContactOrSchedule
	}
	if !end.After(start) {
		return Record{}, ErrInvalidDateRange
	}

	duration := int((end.Sub(start) + msPerDay - 1) / msPerDay)
	if duration < 1 {
		duration = 1
	}

	if len(d.Documents) == 0 {
		return Record{}, ErrMissingDocuments
	}
	if d.Address.City == "" || d.Address.State == "" || d.Address.Postal == "" {
		return Record{}, ErrIncompleteAddress
	}

	guests := sched.Guests
	if guests < 1 {
		guests = 1
	}

	return Record{
		ID:                 NewReference(now),
		Property:           property,
		Location:           location,
		Price:              price,
		Name:               c.Name,
		Phone:              c.Phone,
		Email:              c.Email,
		City:               d.Address.City,
		State:              d.Address.State,
		Postal:             d.Address.Postal,
		Country:            d.Address.Country,
		GovDocuments:       d.Documents,
		Start:              start.UTC().Format(time.RFC3339),
		End:                end.UTC().Format(time.RFC3339),
		DurationDays:       duration,
		Guests:             guests,
		Notes:              sched.Notes,
		SelectedProperty:   d.Payment.SelectedProperty,
		BookingDeposit:     d.Payment.Deposit,
		CancellationPolicy: d.Payment.CancellationPolicy,
		PaymentMethod:      d.Payment.Method,
		PaymentStatus:      "completed",
		CreatedAt:          now.UTC().Format(time.RFC3339),
	}, nil
}

func combineDateTime(date, clock string) (time.Time, error) {
	t, err := time.Parse("2006-01-02T15:04", date+"T"+clock)
	if err != nil {
		return time.Parse("2006-01-02T15:04:05", date+"T"+clock)
	}
	return t, nil
}

// decodedFileSize estimates the byte size of a data-URL payload.
func decodedFileSize(dataURL string) int64 {
	payload := dataURL
	if i := strings.IndexByte(dataURL, ','); i >= 0 {
		payload = dataURL[i+1:]
	}
	return int64(base64.StdEncoding.DecodedLen(len(payload)))
}

func copySession(s *Session) Session {
	out := *s
	out.resetTimer = nil
	out.Draft.Documents = append([]Document(nil), s.Draft.Documents...)
	return out
}
