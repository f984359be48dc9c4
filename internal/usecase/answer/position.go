package answer

import (
	"fmt"

	"github.com/opencamara/actadex/internal/domain/chunk"
	"github.com/opencamara/actadex/internal/domain/intent"
)

// maxMainArguments caps the argument fragments in a position answer.
const maxMainArguments = 3

// Position answers a position query over the matched chunk set. The deputy
// field in a found answer carries the corpus's own transcription of the
// name, not the canonicalized query spelling.
func (b *Builder) Position(it intent.Intent, matched []chunk.Chunk) Position {
	if len(matched) == 0 {
		return Position{
			Deputy:  it.Deputy,
			Topic:   it.Topic,
			Message: fmt.Sprintf("No se encontraron intervenciones de %s sobre %q.", it.Deputy, it.Topic),
		}
	}

	return Position{
		Found:              true,
		Deputy:             matched[0].Speaker,
		Topic:              it.Topic,
		Session:            matched[0].Session,
		Stance:             b.stance(matched, it.Topic),
		MainArguments:      ExtractArguments(matched, maxMainArguments),
		KeyQuote:           b.bestQuote(matched),
		InterventionsCount: len(matched),
		Chunks:             chunkRefs(matched),
	}
}
