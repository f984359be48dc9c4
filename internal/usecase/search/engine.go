// Package search implements the deterministic retrieval engine over the
// transcript corpus: pure filter stages plus a stable chronological sort.
// No stage performs I/O and identical inputs always produce identical
// output.
package search

import (
	"sort"
	"strings"

	"github.com/opencamara/actadex/internal/domain/chunk"
	"github.com/opencamara/actadex/internal/domain/intent"
)

// Chunks selects and orders the subset of chunks matching the filters.
// Each filter dimension is optional: an absent field is a pass-through.
// Results are sorted ascending by (numeric session, index), i.e.
// chronological order across all matched sessions.
func Chunks(chunks []chunk.Chunk, f intent.Filters) []chunk.Chunk {
	out := make([]chunk.Chunk, 0, len(chunks))
	for _, c := range chunks {
		if f.Session != "" && c.Session != f.Session {
			continue
		}
		if f.Speaker != "" && !SpeakerMatches(c.Speaker, f.Speaker, f.SpeakerPartial) {
			continue
		}
		if len(f.Keywords) > 0 && !containsAnyKeyword(c.Text, f.Keywords) {
			continue
		}
		out = append(out, c)
	}
	sortChronological(out)
	return out
}

// SessionChunks returns all chunks of one session in utterance order.
// A session briefing is about everyone who spoke, so this bypasses the
// generic filter pipeline.
func SessionChunks(chunks []chunk.Chunk, session string) []chunk.Chunk {
	out := make([]chunk.Chunk, 0, len(chunks))
	for _, c := range chunks {
		if c.Session == session {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// Group holds one speaker's chunks in their original relative order.
type Group struct {
	Speaker string
	Chunks  []chunk.Chunk
}

// GroupBySpeaker groups chunks by speaker. Groups appear in order of each
// speaker's first utterance, which is the documented tie-break for every
// ranking built on top of the grouping.
func GroupBySpeaker(chunks []chunk.Chunk) []Group {
	idx := make(map[string]int)
	var groups []Group
	for _, c := range chunks {
		i, ok := idx[c.Speaker]
		if !ok {
			i = len(groups)
			idx[c.Speaker] = i
			groups = append(groups, Group{Speaker: c.Speaker})
		}
		groups[i].Chunks = append(groups[i].Chunks, c)
	}
	return groups
}

// containsAnyKeyword reports whether the lowercased text contains at least
// one keyword as a substring (OR semantics).
func containsAnyKeyword(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func sortChronological(chunks []chunk.Chunk) {
	sort.SliceStable(chunks, func(i, j int) bool { return chunks[i].Before(chunks[j]) })
}
