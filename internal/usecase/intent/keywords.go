package intent

import (
	"strings"
	"unicode/utf8"

	"github.com/opencamara/actadex/internal/domain/lexicon"
)

// stopWords are excluded from keyword extraction and default tokenization.
var stopWords = map[string]struct{}{
	"sobre": {},
	"para":  {},
	"como":  {},
	"esta":  {},
	"esto":  {},
}

func isStopWord(w string) bool {
	_, ok := stopWords[w]
	return ok
}

// ExtractKeywords expands a topic phrase into search keywords: every topic
// table entry whose label appears in the phrase contributes all its keyword
// variants, and every phrase word longer than three runes that is not a
// stop word is included as-is. Duplicates are dropped, insertion order is
// kept (set semantics — order is irrelevant to the search engine).
func ExtractKeywords(topic string) []string {
	phrase := strings.ToLower(strings.TrimSpace(topic))
	if phrase == "" {
		return nil
	}

	var out []string
	seen := make(map[string]struct{})
	add := func(w string) {
		if _, ok := seen[w]; ok {
			return
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}

	for _, t := range lexicon.Topics() {
		if strings.Contains(phrase, t.Label) {
			for _, kw := range t.Keywords {
				add(kw)
			}
		}
	}

	for _, w := range strings.Fields(phrase) {
		w = cleanCapture(w)
		if utf8.RuneCountInString(w) > 3 && !isStopWord(w) {
			add(w)
		}
	}

	return out
}
