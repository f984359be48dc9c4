package answer

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/opencamara/actadex/internal/domain/chunk"
)

// Fixed signal word lists for stance scoring. All lengths and counts in
// this file are rune-based: the corpus is accented Spanish text.
var (
	positiveSignals = []string{"favor", "apoyo", "importante", "beneficio", "proteger", "cuidar", "valorar"}
	negativeSignals = []string{"contra", "problema", "traba", "burocracia", "impedir", "frenar", "paralizar"}
)

// StanceFn scores a chunk set into a stance label. Pure, swappable: a real
// sentiment classifier can replace the keyword heuristic behind this type.
type StanceFn func(chunks []chunk.Chunk, topic string) Stance

// QuotePicker selects a representative quote, or nil for empty input.
type QuotePicker func(chunks []chunk.Chunk) *KeyQuote

// AnalyzeStance counts, per chunk, the distinct positive and negative
// signal words present in the lowercased text, accumulates both totals and
// applies the 1.5x dominance rule. The topic argument is accepted for
// strategy symmetry and is not consumed by this implementation.
func AnalyzeStance(chunks []chunk.Chunk, _ string) Stance {
	var positive, negative int
	for _, c := range chunks {
		lower := strings.ToLower(c.Text)
		for _, w := range positiveSignals {
			if strings.Contains(lower, w) {
				positive++
			}
		}
		for _, w := range negativeSignals {
			if strings.Contains(lower, w) {
				negative++
			}
		}
	}

	switch {
	case float64(positive) > 1.5*float64(negative):
		return AFavor
	case float64(negative) > 1.5*float64(positive):
		return EnContra
	case positive > 0 || negative > 0:
		return Mixto
	default:
		return Neutro
	}
}

// Quote band: substantive but not excessive.
const (
	quoteBandMin = 100
	quoteBandMax = 1000
)

// FindBestQuote scans chunks from longest to shortest and returns the
// first whose text length falls strictly inside the quote band. When no
// chunk fits the band it falls back to the single longest chunk.
func FindBestQuote(chunks []chunk.Chunk) *KeyQuote {
	if len(chunks) == 0 {
		return nil
	}

	byLength := make([]chunk.Chunk, len(chunks))
	copy(byLength, chunks)
	sort.SliceStable(byLength, func(i, j int) bool {
		return utf8.RuneCountInString(byLength[i].Text) > utf8.RuneCountInString(byLength[j].Text)
	})

	for _, c := range byLength {
		l := utf8.RuneCountInString(c.Text)
		if l > quoteBandMin && l < quoteBandMax {
			return &KeyQuote{Text: c.Text, Session: c.Session, Speaker: c.Speaker}
		}
	}

	longest := byLength[0]
	return &KeyQuote{Text: longest.Text, Session: longest.Session, Speaker: longest.Speaker}
}

var sentenceEnd = regexp.MustCompile(`[.!?]+\s+`)

// minArgumentRunes is the floor below which a sentence is too short to
// stand as an argument.
const minArgumentRunes = 50

// ExtractArguments splits each chunk into sentences and collects the first
// max sentences longer than the argument floor, tagged with their source.
// Order reflects chunk order, then in-chunk sentence order; collection
// stops as soon as the cap is reached.
func ExtractArguments(chunks []chunk.Chunk, max int) []Argument {
	var args []Argument
	for _, c := range chunks {
		for _, sentence := range sentenceEnd.Split(c.Text, -1) {
			if utf8.RuneCountInString(sentence) <= minArgumentRunes {
				continue
			}
			args = append(args, Argument{
				Text:    strings.TrimSpace(sentence),
				Session: c.Session,
				Speaker: c.Speaker,
			})
			if len(args) >= max {
				return args
			}
		}
	}
	return args
}

// truncateRunes caps s at n runes.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
