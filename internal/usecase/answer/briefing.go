package answer

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/opencamara/actadex/internal/domain/chunk"
	"github.com/opencamara/actadex/internal/domain/intent"
	"github.com/opencamara/actadex/internal/usecase/search"
)

const (
	// maxTopSpeakers caps the speaker ranking in a briefing.
	maxTopSpeakers = 5
	// briefingTextRunes caps intervention text in a briefing. A briefing
	// is a summary, not a full transcript — deliberate presentation limit.
	briefingTextRunes = 500
)

// Briefing summarizes one whole session. The input must be the full chunk
// set of the session (see search.SessionChunks), not a filtered subset:
// a briefing is about everyone who spoke.
func (b *Builder) Briefing(it intent.Intent, sessionChunks []chunk.Chunk) Briefing {
	if len(sessionChunks) == 0 {
		return Briefing{
			Session: it.Session,
			Message: fmt.Sprintf("No se encontraron intervenciones en la sesión %s.", it.Session),
		}
	}

	groups := search.GroupBySpeaker(sessionChunks)

	stats := make([]SpeakerStat, len(groups))
	for i, g := range groups {
		total := 0
		for _, c := range g.Chunks {
			total += utf8.RuneCountInString(c.Text)
		}
		stats[i] = SpeakerStat{Speaker: g.Speaker, Interventions: len(g.Chunks), CharCount: total}
	}
	// Stable sort: equal intervention counts keep first-appearance order,
	// the tie-break inherited from GroupBySpeaker.
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].Interventions > stats[j].Interventions })
	if len(stats) > maxTopSpeakers {
		stats = stats[:maxTopSpeakers]
	}

	interventions := make([]Intervention, len(sessionChunks))
	for i, c := range sessionChunks {
		interventions[i] = Intervention{
			Speaker: c.Speaker,
			Text:    truncateRunes(c.Text, briefingTextRunes),
			Index:   c.Index,
		}
	}

	return Briefing{
		Found:            true,
		Session:          it.Session,
		UniqueSpeakers:   len(groups),
		TopSpeakers:      stats,
		AllInterventions: interventions,
	}
}
