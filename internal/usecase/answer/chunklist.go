package answer

import (
	"fmt"

	"github.com/opencamara/actadex/internal/domain/chunk"
	"github.com/opencamara/actadex/internal/domain/intent"
)

// ChunkList answers session_search and generic search intents with the
// matched chunks themselves.
func (b *Builder) ChunkList(it intent.Intent, matched []chunk.Chunk) ChunkList {
	if len(matched) == 0 {
		msg := "No se encontraron intervenciones para la búsqueda."
		if it.Session != "" {
			msg = fmt.Sprintf("No se encontraron intervenciones en la sesión %s.", it.Session)
		}
		return ChunkList{Session: it.Session, Message: msg}
	}

	return ChunkList{
		Found:   true,
		Session: it.Session,
		Total:   len(matched),
		Chunks:  matched,
	}
}
