// Package corpus loads the static transcript corpus. The corpus is read
// from a JSON file on first access, validated, and shared read-only for
// the process lifetime; it is never created, updated or deleted at
// runtime. Any number of concurrent readers may share it.
package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/opencamara/actadex/internal/domain"
	"github.com/opencamara/actadex/internal/domain/chunk"
)

// Store is the lazy, immutable chunk store.
type Store struct {
	path string

	once   sync.Once
	chunks []chunk.Chunk
	err    error
}

// NewStore creates a store reading from the given JSON file. The file is
// not touched until the first Chunks call.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Chunks returns the full corpus, loading it on first call. A load failure
// is returned on every subsequent call; the corpus is never partially
// visible.
func (s *Store) Chunks() ([]chunk.Chunk, error) {
	s.once.Do(func() {
		s.chunks, s.err = load(s.path)
	})
	if s.err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCorpusUnavailable, s.err)
	}
	return s.chunks, nil
}

// Ping forces the lazy load, reporting corpus availability for health
// checks.
func (s *Store) Ping(_ context.Context) error {
	_, err := s.Chunks()
	return err
}

func load(path string) ([]chunk.Chunk, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}

	var chunks []chunk.Chunk
	if err := json.Unmarshal(data, &chunks); err != nil {
		return nil, fmt.Errorf("parse corpus %s: %w", path, err)
	}

	if err := validate(chunks); err != nil {
		return nil, fmt.Errorf("invalid corpus %s: %w", path, err)
	}
	return chunks, nil
}

// validate enforces the corpus invariants: every chunk carries a session
// and speaker, and index is unique within a session.
func validate(chunks []chunk.Chunk) error {
	type key struct {
		session string
		index   int
	}
	seen := make(map[key]string, len(chunks))
	for i, c := range chunks {
		if c.Session == "" {
			return fmt.Errorf("chunk %d (%s): missing session", i, c.ID)
		}
		if c.Speaker == "" {
			return fmt.Errorf("chunk %d (%s): missing speaker", i, c.ID)
		}
		k := key{c.Session, c.Index}
		if prev, ok := seen[k]; ok {
			return fmt.Errorf("chunk %s: duplicate index %d in session %s (already used by %s)",
				c.ID, c.Index, c.Session, prev)
		}
		seen[k] = c.ID
	}
	return nil
}
