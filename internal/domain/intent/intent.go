// Package intent defines the structured interpretation of a free-text query.
package intent

// Type classifies what a query is asking for.
type Type string

// Intent type constants. Search is the fallback when no pattern matches.
const (
	Briefing      Type = "briefing"
	Position      Type = "position"
	Quote         Type = "quote"
	Comparison    Type = "comparison"
	SessionSearch Type = "session_search"
	Search        Type = "search"
)

// IsValid checks if the type is one of the supported values.
func (t Type) IsValid() bool {
	switch t {
	case Briefing, Position, Quote, Comparison, SessionSearch, Search:
		return true
	}
	return false
}

// Filters is the record consumed by the search engine. Absent fields mean
// no filtering on that dimension.
type Filters struct {
	// Session filters by exact session identifier.
	Session string `json:"session,omitempty"`
	// Speaker is the canonicalized deputy name.
	Speaker string `json:"speaker,omitempty"`
	// SpeakerPartial is the raw name fragment from the query, kept for
	// fuzzy fallback when canonicalization diverges from the transcript.
	SpeakerPartial string `json:"speaker_partial,omitempty"`
	// Keywords are lowercase tokens matched as substrings, OR semantics.
	Keywords []string `json:"keywords,omitempty"`
}

// IsEmpty reports whether no filter dimension is set.
func (f Filters) IsEmpty() bool {
	return f.Session == "" && f.Speaker == "" && f.SpeakerPartial == "" && len(f.Keywords) == 0
}

// Intent is the parsed meaning of one query. Created fresh per query,
// never persisted.
type Intent struct {
	Type    Type    `json:"type"`
	Session string  `json:"session,omitempty"`
	Deputy  string  `json:"deputy,omitempty"`
	Topic   string  `json:"topic,omitempty"`
	Filters Filters `json:"filters"`
}
