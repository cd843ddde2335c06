package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luxestate/internal/store"
)

func TestLogAndList(t *testing.T) {
	s := NewService(store.NewRecords(store.NewMemoryStore()))
	ctx := context.Background()

	s.Log(ctx, "share_attempt", map[string]any{"title": "Market Trends 2026"})
	s.Log(ctx, "search", map[string]any{"q": "villa"})

	events := s.List(ctx)
	require.Len(t, events, 2)
	assert.Equal(t, "search", events[0].Name) // newest first
	assert.Equal(t, "villa", events[0].Data["q"])
	assert.NotEmpty(t, events[0].At)
}

func TestLog_NilDataBecomesEmptyObject(t *testing.T) {
	s := NewService(store.NewRecords(store.NewMemoryStore()))
	ctx := context.Background()

	s.Log(ctx, "page_view", nil)

	events := s.List(ctx)
	require.Len(t, events, 1)
	assert.NotNil(t, events[0].Data)
	assert.Empty(t, events[0].Data)
}

func TestList_EmptyWithoutEvents(t *testing.T) {
	s := NewService(store.NewRecords(store.NewMemoryStore()))
	assert.Empty(t, s.List(context.Background()))
}
