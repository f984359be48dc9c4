package intent

import (
	"strings"
	"unicode"

	"github.com/opencamara/actadex/internal/domain/lexicon"
)

// NormalizeDeputy resolves a raw name fragment to a canonical deputy name.
// Resolution order: exact alias lookup, then substring containment in
// either direction against the alias table in declaration order, then a
// best-effort title-cased copy of the input. Never fails.
func NormalizeDeputy(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := lexicon.ResolveAlias(name); ok {
		return canonical
	}
	for _, a := range lexicon.Aliases() {
		if strings.Contains(name, a.Fragment) || strings.Contains(a.Fragment, name) {
			return a.Canonical
		}
	}
	return titleCase(name)
}

// titleCase uppercases the first rune of each word and lowercases the rest.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
