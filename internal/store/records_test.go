package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecords_AppendPrependsNewestFirst(t *testing.T) {
	r := NewRecords(NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, r.Append(ctx, "list", map[string]string{"id": "first"}))
	require.NoError(t, r.Append(ctx, "list", map[string]string{"id": "second"}))

	items := r.Read(ctx, "list")
	require.Len(t, items, 2)

	var head map[string]string
	require.NoError(t, json.Unmarshal(items[0], &head))
	assert.Equal(t, "second", head["id"])
}

func TestRecords_ReadMissingKeyIsEmpty(t *testing.T) {
	r := NewRecords(NewMemoryStore())

	items := r.Read(context.Background(), "nothing-here")
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestRecords_ReadMalformedValueIsEmpty(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "broken", "{not json"))

	r := NewRecords(s)
	assert.Empty(t, r.Read(ctx, "broken"))

	// A corrupted list is silently replaced on the next append
	require.NoError(t, r.Append(ctx, "broken", map[string]string{"id": "fresh"}))
	assert.Len(t, r.Read(ctx, "broken"), 1)
}

func TestRecords_ReadInto(t *testing.T) {
	r := NewRecords(NewMemoryStore())
	ctx := context.Background()

	type rec struct {
		Email string `json:"email"`
	}
	require.NoError(t, r.Append(ctx, "subs", rec{Email: "a@b.c"}))

	var out []rec
	r.ReadInto(ctx, "subs", &out)
	require.Len(t, out, 1)
	assert.Equal(t, "a@b.c", out[0].Email)
}

func TestMemoryStore_SetGetRemove(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "k", "v"))
	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	require.NoError(t, s.Remove(ctx, "k"))
	_, ok, _ = s.Get(ctx, "k")
	assert.False(t, ok)
}
