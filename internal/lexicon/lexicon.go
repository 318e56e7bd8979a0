// Package lexicon holds the word knowledge behind 对-construction
// analysis: category-tagged predicates, complements, common nouns,
// degree adverbs, negation words, and animacy markers.
package lexicon

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ppiankov/duilens/internal/model"
)

// Lexicon provides membership checks over the canonical word lists.
// It is immutable after New and safe for concurrent use.
type Lexicon struct {
	predicates    map[string][]model.Category
	complements   map[string]struct{}
	commonNouns   map[string]struct{}
	degreeAdverbs map[string]struct{}
	negations     map[string]struct{}

	// Predicates sorted by rune length descending so that a linear
	// prefix scan finds the longest match first.
	sortedPredicates []string
}

// New builds a Lexicon from the canonical word lists.
func New() *Lexicon {
	l := &Lexicon{
		predicates:    make(map[string][]model.Category),
		complements:   make(map[string]struct{}),
		commonNouns:   make(map[string]struct{}),
		degreeAdverbs: make(map[string]struct{}),
		negations:     make(map[string]struct{}),
	}

	byCategory := map[model.Category][]string{
		model.MentalState:        mentalStatePredicates,
		model.Aboutness:          aboutnessPredicates,
		model.ScopedIntervention: scopedInterventionPredicates,
		model.DirectedAction:     directedActionPredicates,
		model.Disposition:        dispositionPredicates,
		model.Evaluation:         evaluationPredicates,
	}
	for _, cat := range model.Categories() {
		for _, word := range byCategory[cat] {
			l.predicates[word] = append(l.predicates[word], cat)
		}
	}

	for _, word := range complements {
		l.complements[word] = struct{}{}
	}
	for _, word := range commonNouns {
		l.commonNouns[word] = struct{}{}
	}
	for _, word := range degreeAdverbs {
		l.degreeAdverbs[word] = struct{}{}
	}
	for _, word := range negationWords {
		l.negations[word] = struct{}{}
	}

	l.sortedPredicates = make([]string, 0, len(l.predicates))
	for word := range l.predicates {
		l.sortedPredicates = append(l.sortedPredicates, word)
	}
	sort.Slice(l.sortedPredicates, func(i, j int) bool {
		li := utf8.RuneCountInString(l.sortedPredicates[i])
		lj := utf8.RuneCountInString(l.sortedPredicates[j])
		if li != lj {
			return li > lj
		}
		return l.sortedPredicates[i] < l.sortedPredicates[j]
	})

	return l
}

// IsPredicate reports whether word is a known predicate.
func (l *Lexicon) IsPredicate(word string) bool {
	_, ok := l.predicates[word]
	return ok
}

// Categories returns the category tags of a predicate, in canonical
// display order, or nil for unknown words.
func (l *Lexicon) Categories(word string) []model.Category {
	cats, ok := l.predicates[word]
	if !ok {
		return nil
	}
	out := make([]model.Category, len(cats))
	copy(out, cats)
	return out
}

// IsComplement reports whether word follows a predicate rather than
// being part of one.
func (l *Lexicon) IsComplement(word string) bool {
	_, ok := l.complements[word]
	return ok
}

// IsCommonNoun reports whether word must never be mined for an
// embedded predicate.
func (l *Lexicon) IsCommonNoun(word string) bool {
	_, ok := l.commonNouns[word]
	return ok
}

// IsDegreeAdverb reports whether word is a degree adverb such as 很.
func (l *Lexicon) IsDegreeAdverb(word string) bool {
	_, ok := l.degreeAdverbs[word]
	return ok
}

// IsNegation reports whether word is a negation word such as 不 or 没有.
func (l *Lexicon) IsNegation(word string) bool {
	_, ok := l.negations[word]
	return ok
}

// PredicatesByLength returns all predicates sorted by rune length
// descending, ties broken lexicographically. Callers must not modify
// the returned slice.
func (l *Lexicon) PredicatesByLength() []string {
	return l.sortedPredicates
}

// SegmentEntries returns the words the greedy segmenter matches
// against: predicates, degree adverbs and negation words.
func (l *Lexicon) SegmentEntries() []string {
	out := make([]string, 0, len(l.predicates)+len(l.degreeAdverbs)+len(l.negations))
	out = append(out, l.sortedPredicates...)
	for word := range l.degreeAdverbs {
		out = append(out, word)
	}
	for word := range l.negations {
		out = append(out, word)
	}
	sort.Strings(out)
	return out
}

// Complements returns the complement list in a stable order.
func (l *Lexicon) Complements() []string {
	out := make([]string, 0, len(l.complements))
	for word := range l.complements {
		out = append(out, word)
	}
	sort.Strings(out)
	return out
}

// CommonNouns returns the common-noun list in a stable order.
func (l *Lexicon) CommonNouns() []string {
	out := make([]string, 0, len(l.commonNouns))
	for word := range l.commonNouns {
		out = append(out, word)
	}
	sort.Strings(out)
	return out
}

// GuessAnimacy guesses whether a Y-phrase refers to a person or a
// thing by scanning for marker substrings. Animate markers win when
// both kinds appear.
func (l *Lexicon) GuessAnimacy(yPhrase string) model.Animacy {
	for _, marker := range animateMarkers {
		if strings.Contains(yPhrase, marker) {
			return model.AnimacyAnimate
		}
	}
	for _, marker := range inanimateMarkers {
		if strings.Contains(yPhrase, marker) {
			return model.AnimacyInanimate
		}
	}
	return model.AnimacyUnknown
}
