package search

import "strings"

// SpeakerMatches implements the layered fuzzy speaker match. It exists
// because name canonicalization can produce a spelling that differs from
// the corpus transcription; the match must still succeed via the raw query
// fragment or the surname. True if any of:
//   - exact case-insensitive equality,
//   - substring containment in either direction,
//   - containment of the raw partial fragment in the chunk speaker,
//   - equal last whitespace-delimited token (surname) of both names.
func SpeakerMatches(chunkSpeaker, target, partial string) bool {
	cs := strings.ToLower(strings.TrimSpace(chunkSpeaker))
	tg := strings.ToLower(strings.TrimSpace(target))
	if cs == "" || tg == "" {
		return false
	}
	if cs == tg {
		return true
	}
	if strings.Contains(cs, tg) || strings.Contains(tg, cs) {
		return true
	}
	if p := strings.ToLower(strings.TrimSpace(partial)); p != "" && strings.Contains(cs, p) {
		return true
	}
	return surname(cs) == surname(tg)
}

func surname(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
