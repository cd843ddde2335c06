package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luxestate/internal/store"
)

const testDocData = "data:application/pdf;base64,aGVsbG8gd29ybGQ="

func newTestService(resetDelay time.Duration) *Service {
	records := store.NewRecords(store.NewMemoryStore())
	return NewService(records, nil, resetDelay, 5*1024*1024)
}

func fillValidDraft(t *testing.T, s *Service, id string) {
	t.Helper()

	_, err := s.UpdateDraft(id, DraftPatch{
		Contact: &Contact{Name: "Asha Rao", Phone: "+91-9876543210", Email: "asha@example.com"},
		Address: &Address{City: "Mumbai", State: "Maharashtra", Postal: "400001", Country: "India"},
		Schedule: &Schedule{
			StartDate: "2026-09-01", StartTime: "10:00",
			EndDate: "2026-09-03", EndTime: "18:00",
			Guests: 2, Notes: "Sea view preferred",
		},
	})
	require.NoError(t, err)

	_, err = s.AddDocument(id, Document{
		DocType:   "Passport",
		DocNumber: "P1234567",
		FileName:  "passport.pdf",
		FileData:  testDocData,
	})
	require.NoError(t, err)
}

func TestStartWizard_Defaults(t *testing.T) {
	s := newTestService(time.Hour)
	sess := s.StartWizard("Oceanfront Estate", "Goa", "$22.8M")

	assert.Equal(t, StateEmpty, sess.State)
	assert.Equal(t, "India", sess.Draft.Address.Country)
	assert.Equal(t, 1, sess.Draft.Schedule.Guests)
	assert.Equal(t, int64(10000), sess.Draft.Payment.Deposit)
	assert.Equal(t, "standard", sess.Draft.Payment.CancellationPolicy)
	assert.Equal(t, "razorpay", sess.Draft.Payment.Method)
}

func TestUpdateDraft_MovesToEditing(t *testing.T) {
	s := newTestService(time.Hour)
	sess := s.StartWizard("Villa", "Delhi", "$8.5M")

	got, err := s.UpdateDraft(sess.ID, DraftPatch{Contact: &Contact{Name: "A", Phone: "1", Email: "a@b.c"}})
	require.NoError(t, err)
	assert.Equal(t, StateEditing, got.State)
	assert.Equal(t, "A", got.Draft.Contact.Name)
	// untouched sections keep their defaults
	assert.Equal(t, "India", got.Draft.Address.Country)
}

func TestSubmit_ValidationOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("contact and schedule first", func(t *testing.T) {
		s := newTestService(time.Hour)
		sess := s.StartWizard("Villa", "Delhi", "$8.5M")

		_, err := s.Submit(ctx, sess.ID)
		assert.ErrorIs(t, err, ErrIncompleteContactOrSchedule)

		got, _ := s.Get(sess.ID)
		assert.Equal(t, StateEditing, got.State)
	})

	t.Run("date range before documents", func(t *testing.T) {
		s := newTestService(time.Hour)
		sess := s.StartWizard("Villa", "Delhi", "$8.5M")
		_, err := s.UpdateDraft(sess.ID, DraftPatch{
			Contact: &Contact{Name: "A", Phone: "1", Email: "a@b.c"},
			Schedule: &Schedule{
				StartDate: "2026-09-03", StartTime: "10:00",
				EndDate: "2026-09-01", EndTime: "10:00",
			},
		})
		require.NoError(t, err)

		_, err = s.Submit(ctx, sess.ID)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("documents before address", func(t *testing.T) {
		s := newTestService(time.Hour)
		sess := s.StartWizard("Villa", "Delhi", "$8.5M")
		_, err := s.UpdateDraft(sess.ID, DraftPatch{
			Contact: &Contact{Name: "A", Phone: "1", Email: "a@b.c"},
			Address: &Address{}, // address also empty, documents must win
			Schedule: &Schedule{
				StartDate: "2026-09-01", StartTime: "10:00",
				EndDate: "2026-09-02", EndTime: "10:00",
			},
		})
		require.NoError(t, err)

		_, err = s.Submit(ctx, sess.ID)
		assert.ErrorIs(t, err, ErrMissingDocuments)
	})

	t.Run("address last", func(t *testing.T) {
		s := newTestService(time.Hour)
		sess := s.StartWizard("Villa", "Delhi", "$8.5M")
		_, err := s.UpdateDraft(sess.ID, DraftPatch{
			Contact: &Contact{Name: "A", Phone: "1", Email: "a@b.c"},
			Address: &Address{City: "Mumbai"}, // state and postal missing
			Schedule: &Schedule{
				StartDate: "2026-09-01", StartTime: "10:00",
				EndDate: "2026-09-02", EndTime: "10:00",
			},
		})
		require.NoError(t, err)
		_, err = s.AddDocument(sess.ID, Document{DocNumber: "D1", FileData: testDocData})
		require.NoError(t, err)

		_, err = s.Submit(ctx, sess.ID)
		assert.ErrorIs(t, err, ErrIncompleteAddress)
	})
}

func TestSubmit_ConfirmsAndPersists(t *testing.T) {
	ctx := context.Background()
	s := newTestService(time.Hour)
	sess := s.StartWizard("Oceanfront Estate", "Goa", "$22.8M")
	fillValidDraft(t, s, sess.ID)

	rec, err := s.Submit(ctx, sess.ID)
	require.NoError(t, err)

	assert.True(t, ValidReference(rec.ID), "reference %q", rec.ID)
	assert.Equal(t, "Oceanfront Estate", rec.Property)
	assert.Equal(t, 3, rec.DurationDays) // 2 days 8 hours rounds up
	assert.Equal(t, "completed", rec.PaymentStatus)
	assert.Equal(t, 2, rec.Guests)

	got, err := s.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, StateConfirmed, got.State)
	assert.Equal(t, rec.ID, got.Reference)

	// confirmed sessions are frozen
	_, err = s.UpdateDraft(sess.ID, DraftPatch{Contact: &Contact{Name: "X"}})
	assert.ErrorIs(t, err, ErrNotEditable)
	_, err = s.Submit(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotEditable)

	list := s.ListBookings(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, rec.ID, list[0].ID)
}

func TestSubmit_MinimumDurationIsOneDay(t *testing.T) {
	s := newTestService(time.Hour)
	sess := s.StartWizard("Villa", "Delhi", "$8.5M")
	_, err := s.UpdateDraft(sess.ID, DraftPatch{
		Contact: &Contact{Name: "A", Phone: "1", Email: "a@b.c"},
		Address: &Address{City: "Pune", State: "MH", Postal: "411001"},
		Schedule: &Schedule{
			StartDate: "2026-09-01", StartTime: "10:00",
			EndDate: "2026-09-01", EndTime: "14:00",
		},
	})
	require.NoError(t, err)
	_, err = s.AddDocument(sess.ID, Document{DocNumber: "D1", FileData: testDocData})
	require.NoError(t, err)

	rec, err := s.Submit(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, rec.DurationDays)
}

func TestAddDocument_Validation(t *testing.T) {
	s := newTestService(time.Hour)
	sess := s.StartWizard("Villa", "Delhi", "$8.5M")

	_, err := s.AddDocument(sess.ID, Document{DocNumber: "", FileData: testDocData})
	assert.ErrorIs(t, err, ErrIncompleteDocument)

	_, err = s.AddDocument(sess.ID, Document{DocNumber: "D1", FileData: ""})
	assert.ErrorIs(t, err, ErrIncompleteDocument)

	got, err := s.AddDocument(sess.ID, Document{DocNumber: "D1", FileData: testDocData})
	require.NoError(t, err)
	assert.Equal(t, "Passport", got.Draft.Documents[0].DocType) // default type
}

func TestAddDocument_SizeLimit(t *testing.T) {
	records := store.NewRecords(store.NewMemoryStore())
	s := NewService(records, nil, time.Hour, 8) // 8 byte cap
	sess := s.StartWizard("Villa", "Delhi", "$8.5M")

	_, err := s.AddDocument(sess.ID, Document{DocNumber: "D1", FileData: testDocData})
	assert.ErrorIs(t, err, ErrDocumentTooLarge)
}

func TestRemoveDocument(t *testing.T) {
	s := newTestService(time.Hour)
	sess := s.StartWizard("Villa", "Delhi", "$8.5M")
	_, err := s.AddDocument(sess.ID, Document{DocNumber: "D1", FileData: testDocData})
	require.NoError(t, err)

	_, err = s.RemoveDocument(sess.ID, 5)
	assert.ErrorIs(t, err, ErrDocumentIndexOutOfRange)

	got, err := s.RemoveDocument(sess.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, got.Draft.Documents)
}

func TestConfirmed_AutoResetsAfterDelay(t *testing.T) {
	s := newTestService(20 * time.Millisecond)
	sess := s.StartWizard("Villa", "Delhi", "$8.5M")
	fillValidDraft(t, s, sess.ID)

	_, err := s.Submit(context.Background(), sess.ID)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		got, err := s.Get(sess.ID)
		return err == nil && got.State == StateEmpty
	}, time.Second, 5*time.Millisecond)

	got, _ := s.Get(sess.ID)
	assert.Empty(t, got.Reference)
	assert.Empty(t, got.Draft.Contact.Name)
	assert.Empty(t, got.Draft.Documents)
}

func TestCancel_StopsAutoReset(t *testing.T) {
	s := newTestService(time.Hour)
	sess := s.StartWizard("Villa", "Delhi", "$8.5M")
	fillValidDraft(t, s, sess.ID)

	_, err := s.Submit(context.Background(), sess.ID)
	require.NoError(t, err)

	got, err := s.Cancel(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, StateEmpty, got.State)
	assert.Empty(t, got.Reference)
}

func TestListBookings_NewestFirst(t *testing.T) {
	ctx := context.Background()
	s := newTestService(time.Hour)

	first := s.StartWizard("Villa", "Delhi", "$8.5M")
	fillValidDraft(t, s, first.ID)
	recA, err := s.Submit(ctx, first.ID)
	require.NoError(t, err)

	second := s.StartWizard("Penthouse", "Mumbai", "$15.2M")
	fillValidDraft(t, s, second.ID)
	recB, err := s.Submit(ctx, second.ID)
	require.NoError(t, err)

	list := s.ListBookings(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, recB.ID, list[0].ID)
	assert.Equal(t, recA.ID, list[1].ID)

	found, err := s.GetBooking(ctx, recA.ID)
	require.NoError(t, err)
	assert.Equal(t, "Villa", found.Property)

	_, err = s.GetBooking(ctx, "BOOK-0-XXXXXXXXX")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGeneralInquiry_GoesToScheduleRequests(t *testing.T) {
	ctx := context.Background()
	s := newTestService(time.Hour)

	sess := s.StartWizard("", "", "")
	fillValidDraft(t, s, sess.ID)

	rec, err := s.Submit(ctx, sess.ID)
	require.NoError(t, err)

	assert.Empty(t, s.ListBookings(ctx))
	reqs := s.ListScheduleRequests(ctx)
	require.Len(t, reqs, 1)
	assert.Equal(t, rec.ID, reqs[0].ID)

	// lookup spans both lists
	found, err := s.GetBooking(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, found.ID)
}

func TestSessionNotFound(t *testing.T) {
	s := newTestService(time.Hour)

	_, err := s.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = s.UpdateDraft("missing", DraftPatch{})
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = s.Submit(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = s.Cancel("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
