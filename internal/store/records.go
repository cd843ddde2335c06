package store

import (
	"context"
	"encoding/json"
	"sync"
)

// Records layers JSON list semantics over a Store. Every list is stored as
// a single JSON array under its key, newest record first. Appends are
// read-modify-write, serialized by a mutex so concurrent handlers don't
// drop each other's records.
type Records struct {
	mu    sync.Mutex
	store Store
}

func NewRecords(s Store) *Records {
	return &Records{store: s}
}

// Append prepends record to the list under key.
func (r *Records) Append(ctx context.Context, key string, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing := r.read(ctx, key)
	updated := make([]json.RawMessage, 0, len(existing)+1)
	updated = append(updated, data)
	updated = append(updated, existing...)

	out, err := json.Marshal(updated)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, key, string(out))
}

// Read returns the list under key, newest first. An absent key or a value
// that fails to parse both yield an empty list — corruption is recovered
// locally, never surfaced.
func (r *Records) Read(ctx context.Context, key string) []json.RawMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read(ctx, key)
}

// ReadInto unmarshals the list under key into out (a pointer to a slice).
func (r *Records) ReadInto(ctx context.Context, key string, out any) {
	items := r.Read(ctx, key)
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	_ = json.Unmarshal(data, out)
}

func (r *Records) read(ctx context.Context, key string) []json.RawMessage {
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil || !ok {
		return []json.RawMessage{}
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []json.RawMessage{}
	}
	return items
}
