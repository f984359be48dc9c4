// Package intent classifies free-text queries about commission transcripts
// into structured intents. Parsing is pure and total: unmatched input falls
// through to the generic search intent, never to an error.
package intent

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/opencamara/actadex/internal/domain/intent"
)

// pattern pairs a matcher with its extractor. Patterns are evaluated in
// declaration order and the first match wins, so priority stays auditable:
// briefing > position > quote > comparison > session_search > search.
type pattern struct {
	re    *regexp.Regexp
	build func(m []string) intent.Intent
}

// Trigger words tolerate accented and unaccented spellings (sesión/sesion).
var patterns = []pattern{
	{
		re:    regexp.MustCompile(`(?:resume|resumen|briefing|sintetiza)\s+(?:de\s+)?(?:la\s+)?sesi[oó]n\s+(\d+)`),
		build: buildBriefing,
	},
	{
		re:    regexp.MustCompile(`posici[oó]n\s+de\s+(.+?)\s+(?:sobre|respecto\s+(?:a|de))\s+(.+)`),
		build: buildPosition,
	},
	{
		re:    regexp.MustCompile(`qu[eé]\s+(?:piensa|opina)\s+(.+?)\s+(?:sobre|de)\s+(.+)`),
		build: buildPosition,
	},
	{
		re:    regexp.MustCompile(`(?:citas?|frases?)\s+de\s+(.+?)\s+sobre\s+(.+)`),
		build: buildQuote,
	},
	{
		re:    regexp.MustCompile(`qu[eé]\s+(?:dijo|ha\s+dicho)\s+(.+?)\s+(?:sobre|acerca\s+de|de)\s+(.+)`),
		build: buildQuote,
	},
	{
		re:    regexp.MustCompile(`compara(?:r)?\b.*\bargumentos(?:\s+sobre\s+(.+))?`),
		build: buildComparison,
	},
	{
		re:    regexp.MustCompile(`(.+?)\s+(?:versus|vs\.?)\s+(.+)`),
		build: buildComparisonVersus,
	},
	{
		re:    regexp.MustCompile(`sesi[oó]n\s+(\d+)`),
		build: buildSessionSearch,
	},
}

// Parse classifies a query into an Intent. Matching is case-insensitive on
// a lowercased copy of the query.
func Parse(query string) intent.Intent {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, p := range patterns {
		if m := p.re.FindStringSubmatch(q); m != nil {
			return p.build(m)
		}
	}
	return buildSearch(q)
}

func buildBriefing(m []string) intent.Intent {
	return intent.Intent{
		Type:    intent.Briefing,
		Session: m[1],
		Filters: intent.Filters{Session: m[1]},
	}
}

func buildPosition(m []string) intent.Intent {
	return speakerTopicIntent(intent.Position, m[1], m[2])
}

func buildQuote(m []string) intent.Intent {
	return speakerTopicIntent(intent.Quote, m[1], m[2])
}

// speakerTopicIntent extracts deputy and topic for position/quote queries.
// The raw name fragment is kept in SpeakerPartial so the search engine can
// still match when canonicalization diverges from the transcript spelling.
func speakerTopicIntent(t intent.Type, rawName, rawTopic string) intent.Intent {
	raw := cleanCapture(rawName)
	topic := cleanCapture(rawTopic)
	canonical := NormalizeDeputy(raw)
	return intent.Intent{
		Type:   t,
		Deputy: canonical,
		Topic:  topic,
		Filters: intent.Filters{
			Speaker:        canonical,
			SpeakerPartial: raw,
			Keywords:       ExtractKeywords(topic),
		},
	}
}

func buildComparison(m []string) intent.Intent {
	topic := cleanCapture(m[1])
	return intent.Intent{
		Type:    intent.Comparison,
		Topic:   topic,
		Filters: intent.Filters{Keywords: ExtractKeywords(topic)},
	}
}

func buildComparisonVersus(m []string) intent.Intent {
	topic := cleanCapture(m[1]) + " " + cleanCapture(m[2])
	return intent.Intent{
		Type:    intent.Comparison,
		Topic:   topic,
		Filters: intent.Filters{Keywords: ExtractKeywords(topic)},
	}
}

func buildSessionSearch(m []string) intent.Intent {
	return intent.Intent{
		Type:    intent.SessionSearch,
		Session: m[1],
		Filters: intent.Filters{Session: m[1]},
	}
}

// buildSearch is the guaranteed default: every word longer than three runes
// that is not a stop word becomes a keyword.
func buildSearch(q string) intent.Intent {
	return intent.Intent{
		Type:    intent.Search,
		Filters: intent.Filters{Keywords: tokenize(q)},
	}
}

// cleanCapture strips surrounding whitespace and question/exclamation
// punctuation left over from interrogative phrasings.
func cleanCapture(s string) string {
	return strings.Trim(s, " \t?¿!¡.,;:\"")
}

func tokenize(s string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, w := range strings.Fields(s) {
		w = cleanCapture(w)
		if utf8.RuneCountInString(w) <= 3 || isStopWord(w) {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
