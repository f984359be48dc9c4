package query

import (
	"context"

	"github.com/opencamara/actadex/internal/domain/chunk"
)

// CorpusReader provides the immutable transcript corpus.
type CorpusReader interface {
	Chunks() ([]chunk.Chunk, error)
}

// Narrator renders a structured answer into natural-language prose.
type Narrator interface {
	Narrate(ctx context.Context, question string, structured any) (string, error)
}
