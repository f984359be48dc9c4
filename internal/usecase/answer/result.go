// Package answer builds response-shaped records from matched transcript
// chunks. Builders are deterministic: no clock, no randomness, no I/O —
// the same (intent, chunks) pair always yields identical output. Absence
// of results is represented as data (Found=false plus a message), never
// as an error.
package answer

import "github.com/opencamara/actadex/internal/domain/chunk"

// Stance labels a set of utterances as favorable, opposed, mixed or
// neutral toward a topic.
type Stance string

// Stance labels, kept in the corpus language.
const (
	AFavor   Stance = "A FAVOR"
	EnContra Stance = "EN CONTRA"
	Mixto    Stance = "MIXTO"
	Neutro   Stance = "NEUTRO"
)

// ChunkRef is the audit view of a matched chunk bundled into responses.
type ChunkRef struct {
	Session string `json:"session"`
	Text    string `json:"text"`
	Index   int    `json:"index"`
}

// Argument is one extracted argument fragment with its source location.
type Argument struct {
	Text    string `json:"text"`
	Session string `json:"session"`
	Speaker string `json:"speaker"`
}

// KeyQuote is the selected representative quote.
type KeyQuote struct {
	Text    string `json:"text"`
	Session string `json:"session"`
	Speaker string `json:"speaker"`
}

// Position is the answer to "what does X think about Y".
type Position struct {
	Found              bool       `json:"found"`
	Message            string     `json:"message,omitempty"`
	Deputy             string     `json:"deputy,omitempty"`
	Topic              string     `json:"topic,omitempty"`
	Session            string     `json:"session,omitempty"`
	Stance             Stance     `json:"position,omitempty"`
	MainArguments      []Argument `json:"main_arguments,omitempty"`
	KeyQuote           *KeyQuote  `json:"key_quote,omitempty"`
	InterventionsCount int        `json:"interventions_count,omitempty"`
	Chunks             []ChunkRef `json:"chunks,omitempty"`
}

// QuoteItem is one reshaped quote. Trimming is left to the presentation
// layer; every matched chunk is returned.
type QuoteItem struct {
	Text      string `json:"text"`
	Session   string `json:"session"`
	Speaker   string `json:"speaker"`
	CharCount int    `json:"char_count"`
}

// Quotes is the answer to "what did X say about Y".
type Quotes struct {
	Found              bool        `json:"found"`
	Message            string      `json:"message,omitempty"`
	Deputy             string      `json:"deputy,omitempty"`
	Topic              string      `json:"topic,omitempty"`
	TotalInterventions int         `json:"total_interventions,omitempty"`
	Quotes             []QuoteItem `json:"quotes,omitempty"`
}

// SpeakerStat ranks one speaker inside a briefing.
type SpeakerStat struct {
	Speaker       string `json:"speaker"`
	Interventions int    `json:"interventions"`
	CharCount     int    `json:"char_count"`
}

// Intervention is one truncated utterance inside a briefing.
type Intervention struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
	Index   int    `json:"index"`
}

// Briefing is the session-wide summary view.
type Briefing struct {
	Found            bool           `json:"found"`
	Message          string         `json:"message,omitempty"`
	Session          string         `json:"session,omitempty"`
	UniqueSpeakers   int            `json:"unique_speakers,omitempty"`
	TopSpeakers      []SpeakerStat  `json:"top_speakers,omitempty"`
	AllInterventions []Intervention `json:"all_interventions,omitempty"`
}

// ComparisonEntry is one speaker bucketed under a stance.
type ComparisonEntry struct {
	Speaker     string     `json:"speaker"`
	Chunks      []ChunkRef `json:"chunks"`
	SampleQuote string     `json:"sample_quote"`
}

// Comparison groups speakers by their independently scored stance.
type Comparison struct {
	Found     bool                       `json:"found"`
	Message   string                     `json:"message,omitempty"`
	Topic     string                     `json:"topic,omitempty"`
	Stances   map[Stance][]ComparisonEntry `json:"positions,omitempty"`
	AllChunks []ChunkRef                 `json:"all_chunks,omitempty"`
}

// ChunkList is the generic answer for session_search and keyword search
// intents: the matched chunks themselves, no further shaping.
type ChunkList struct {
	Found   bool          `json:"found"`
	Message string        `json:"message,omitempty"`
	Session string        `json:"session,omitempty"`
	Total   int           `json:"total,omitempty"`
	Chunks  []chunk.Chunk `json:"chunks,omitempty"`
}

func chunkRefs(chunks []chunk.Chunk) []ChunkRef {
	refs := make([]ChunkRef, len(chunks))
	for i, c := range chunks {
		refs[i] = ChunkRef{Session: c.Session, Text: c.Text, Index: c.Index}
	}
	return refs
}
