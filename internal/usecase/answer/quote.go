package answer

import (
	"fmt"
	"unicode/utf8"

	"github.com/opencamara/actadex/internal/domain/chunk"
	"github.com/opencamara/actadex/internal/domain/intent"
)

// Quotes reshapes every matched chunk into a quote item. No ranking or
// trimming happens here; how many to show is the presentation layer's call.
func (b *Builder) Quotes(it intent.Intent, matched []chunk.Chunk) Quotes {
	if len(matched) == 0 {
		return Quotes{
			Deputy:  it.Deputy,
			Topic:   it.Topic,
			Message: fmt.Sprintf("No se encontraron citas de %s sobre %q.", it.Deputy, it.Topic),
		}
	}

	items := make([]QuoteItem, len(matched))
	for i, c := range matched {
		items[i] = QuoteItem{
			Text:      c.Text,
			Session:   c.Session,
			Speaker:   c.Speaker,
			CharCount: utf8.RuneCountInString(c.Text),
		}
	}

	return Quotes{
		Found:              true,
		Deputy:             matched[0].Speaker,
		Topic:              it.Topic,
		TotalInterventions: len(matched),
		Quotes:             items,
	}
}
