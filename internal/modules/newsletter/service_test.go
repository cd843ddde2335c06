package newsletter

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luxestate/internal/store"
)

type recordingLogger struct {
	mu    sync.Mutex
	names []string
}

func (l *recordingLogger) Log(_ context.Context, name string, _ map[string]any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.names = append(l.names, name)
}

func TestSubscribe(t *testing.T) {
	logger := &recordingLogger{}
	s := NewService(store.NewRecords(store.NewMemoryStore()), logger)
	ctx := context.Background()

	sub, err := s.Subscribe(ctx, "Reader@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", sub.Email) // normalized
	assert.NotEmpty(t, sub.CreatedAt)
	assert.Contains(t, logger.names, "newsletter_subscribed")
}

func TestSubscribe_DuplicateIsIdempotent(t *testing.T) {
	s := NewService(store.NewRecords(store.NewMemoryStore()), nil)
	ctx := context.Background()

	first, err := s.Subscribe(ctx, "reader@example.com")
	require.NoError(t, err)
	again, err := s.Subscribe(ctx, "READER@example.com")
	require.NoError(t, err)

	assert.Equal(t, first, again)
	assert.Len(t, s.List(ctx), 1)
}

func TestSubscribe_RejectsInvalidEmail(t *testing.T) {
	s := NewService(store.NewRecords(store.NewMemoryStore()), nil)

	_, err := s.Subscribe(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidEmail)
	_, err = s.Subscribe(context.Background(), "not-an-email")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestExport_LogsEvent(t *testing.T) {
	logger := &recordingLogger{}
	s := NewService(store.NewRecords(store.NewMemoryStore()), logger)
	ctx := context.Background()

	_, err := s.Subscribe(ctx, "a@b.c")
	require.NoError(t, err)

	subs := s.Export(ctx)
	assert.Len(t, subs, 1)
	assert.Contains(t, logger.names, "export_subscriptions")
}
