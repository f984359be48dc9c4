package narrcache

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/opencamara/actadex/internal/db"
)

type mockStore struct {
	data    map[string][]byte
	getErr  error
	setErr  error
	setKeys []string
}

func newMockStore() *mockStore {
	return &mockStore{data: map[string][]byte{}}
}

func (m *mockStore) Get(_ context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (m *mockStore) SetWithTTL(_ context.Context, key string, value []byte, _ time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	m.setKeys = append(m.setKeys, key)
	return nil
}

type mockNarrator struct {
	text  string
	err   error
	calls int
}

func (m *mockNarrator) Narrate(_ context.Context, _ string, _ any) (string, error) {
	m.calls++
	return m.text, m.err
}

func TestNarrate_MissThenHit(t *testing.T) {
	s := newMockStore()
	inner := &mockNarrator{text: "resumen de la sesión"}
	c := New(inner, s, time.Hour, nil, zap.NewNop())

	payload := map[string]any{"found": true, "session": "67"}

	text, err := c.Narrate(context.Background(), "resume sesión 67", payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "resumen de la sesión" {
		t.Errorf("unexpected text: %q", text)
	}
	if inner.calls != 1 {
		t.Fatalf("expected 1 inner call, got %d", inner.calls)
	}

	// Second identical call is served from the cache.
	text, err = c.Narrate(context.Background(), "resume sesión 67", payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "resumen de la sesión" {
		t.Errorf("unexpected cached text: %q", text)
	}
	if inner.calls != 1 {
		t.Errorf("cache hit must not call inner, got %d calls", inner.calls)
	}
}

func TestNarrate_DifferentPayloadsDifferentKeys(t *testing.T) {
	s := newMockStore()
	inner := &mockNarrator{text: "x"}
	c := New(inner, s, time.Hour, nil, zap.NewNop())

	_, _ = c.Narrate(context.Background(), "misma pregunta", map[string]any{"session": "67"})
	_, _ = c.Narrate(context.Background(), "misma pregunta", map[string]any{"session": "70"})

	if len(s.setKeys) != 2 || s.setKeys[0] == s.setKeys[1] {
		t.Errorf("different payloads must produce different cache keys: %v", s.setKeys)
	}
}

func TestNarrate_InnerErrorNotCached(t *testing.T) {
	s := newMockStore()
	inner := &mockNarrator{err: errors.New("provider down")}
	c := New(inner, s, time.Hour, nil, zap.NewNop())

	if _, err := c.Narrate(context.Background(), "q", map[string]any{}); err == nil {
		t.Fatal("expected inner error to propagate")
	}
	if len(s.data) != 0 {
		t.Error("errors must not be cached")
	}
}

func TestNarrate_StoreFailuresDegradeToInner(t *testing.T) {
	s := newMockStore()
	s.getErr = errors.New("cache down")
	s.setErr = errors.New("cache down")
	inner := &mockNarrator{text: "directo"}
	c := New(inner, s, time.Hour, nil, zap.NewNop())

	text, err := c.Narrate(context.Background(), "q", map[string]any{})
	if err != nil {
		t.Fatalf("cache failures must not fail narration: %v", err)
	}
	if text != "directo" {
		t.Errorf("unexpected text: %q", text)
	}
}

func TestNarrate_UnmarshalablePayloadBypassesCache(t *testing.T) {
	s := newMockStore()
	inner := &mockNarrator{text: "sin cache"}
	c := New(inner, s, time.Hour, nil, zap.NewNop())

	// Channels cannot be marshaled; caching is skipped, narration still works.
	text, err := c.Narrate(context.Background(), "q", make(chan int))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "sin cache" || len(s.data) != 0 {
		t.Errorf("expected direct narration without caching, got %q, %d cached", text, len(s.data))
	}
}
