package answer

import (
	"fmt"

	"github.com/opencamara/actadex/internal/domain/chunk"
	"github.com/opencamara/actadex/internal/domain/intent"
	"github.com/opencamara/actadex/internal/usecase/search"
)

// sampleQuoteRunes caps the per-speaker preview in a comparison.
// Deliberate presentation limit, same policy as the briefing truncation.
const sampleQuoteRunes = 200

// Comparison buckets speakers by their independently scored stance. Each
// speaker keeps their full matched chunk list plus a short preview of
// their first utterance; the raw chunk set is bundled for downstream
// narrative use.
func (b *Builder) Comparison(it intent.Intent, matched []chunk.Chunk) Comparison {
	if len(matched) == 0 {
		return Comparison{
			Topic:   it.Topic,
			Message: fmt.Sprintf("No se encontraron intervenciones sobre %q para comparar.", it.Topic),
		}
	}

	stances := make(map[Stance][]ComparisonEntry)
	for _, g := range search.GroupBySpeaker(matched) {
		st := b.stance(g.Chunks, it.Topic)
		stances[st] = append(stances[st], ComparisonEntry{
			Speaker:     g.Speaker,
			Chunks:      chunkRefs(g.Chunks),
			SampleQuote: truncateRunes(g.Chunks[0].Text, sampleQuoteRunes),
		})
	}

	return Comparison{
		Found:     true,
		Topic:     it.Topic,
		Stances:   stances,
		AllChunks: chunkRefs(matched),
	}
}
