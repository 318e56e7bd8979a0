package segment

import (
	"github.com/ppiankov/duilens/internal/lexicon"
)

// Longest vocabulary entry, in runes (言听计从, 没有兴趣).
const maxEntryRunes = 4

// Greedy is a longest-match segmenter over the lexicon vocabulary.
// At each position it tries windows of four runes down to one and
// emits the first window that is a known predicate, degree adverb or
// negation word. Unknown runes come out as single-rune tokens.
type Greedy struct {
	entries map[string]struct{}
}

// NewGreedy builds a Greedy segmenter from the lexicon vocabulary.
func NewGreedy(lex *lexicon.Lexicon) *Greedy {
	g := &Greedy{entries: make(map[string]struct{})}
	for _, word := range lex.SegmentEntries() {
		g.entries[word] = struct{}{}
	}
	return g
}

// Name implements Segmenter.
func (g *Greedy) Name() string { return "lexicon" }

// Segment implements Segmenter.
func (g *Greedy) Segment(text string) []string {
	runes := []rune(text)
	var tokens []string

	i := 0
	for i < len(runes) {
		matched := false
		for length := maxEntryRunes; length >= 1; length-- {
			if i+length > len(runes) {
				continue
			}
			cand := string(runes[i : i+length])
			if _, ok := g.entries[cand]; ok {
				tokens = append(tokens, cand)
				i += length
				matched = true
				break
			}
		}
		if !matched {
			tokens = append(tokens, string(runes[i]))
			i++
		}
	}
	return tokens
}
