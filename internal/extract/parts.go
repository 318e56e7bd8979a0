// Package extract locates the structural parts of 对-construction
// sentences and harvests such sentences from text or HTML.
package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/ppiankov/duilens/internal/lexicon"
	"github.com/ppiankov/duilens/internal/model"
	"github.com/ppiankov/duilens/internal/segment"
)

// Extractor splits a sentence around 对 and locates the Y-phrase and
// the predicate in the right-hand side.
type Extractor struct {
	lex *lexicon.Lexicon
	seg segment.Segmenter
}

// NewExtractor creates an Extractor using the given segmentation
// strategy.
func NewExtractor(lex *lexicon.Lexicon, seg segment.Segmenter) *Extractor {
	return &Extractor{lex: lex, seg: seg}
}

// Extract splits sentence on the first 对 and fills in the parts.
// Sentences without 对 yield all-empty parts.
func (e *Extractor) Extract(sentence string) model.SentenceParts {
	var parts model.SentenceParts

	if !strings.Contains(sentence, "对") {
		return parts
	}

	// Split before segmenting so no token can absorb 对 (对此 must
	// not come out as one token).
	split := strings.SplitN(sentence, "对", 2)
	parts.BeforeDui = split[0]
	parts.FullAfterDui = split[1]

	words := e.seg.Segment(parts.FullAfterDui)
	parts.YPhrase, parts.Predicate, parts.AfterPredicate = e.yAndPredicate(words)

	// Last resort: no predicate located anywhere, so read the first
	// couple of runes after 对 as the Y-phrase.
	if parts.Predicate == "" && parts.YPhrase == "" && parts.FullAfterDui != "" {
		runes := []rune(parts.FullAfterDui)
		if len(runes) > 2 {
			runes = runes[:2]
		}
		parts.YPhrase = string(runes)
	}

	return parts
}

// yAndPredicate scans the tokens after 对 for the first predicate
// trigger and splits the tokens around it.
func (e *Extractor) yAndPredicate(words []string) (yPhrase, predicate, afterPred string) {
	if len(words) == 0 {
		return "", "", ""
	}

	var yParts []string

	for i := 0; i < len(words); i++ {
		word := words[i]

		// A degree adverb ends the Y-phrase. The predicate is the
		// next predicate-bearing token, or failing that the next
		// token that is not itself an adverb or negation word. The
		// adverb belongs to no part.
		if e.lex.IsDegreeAdverb(word) {
			yParts = words[:i]
			for j := i + 1; j < len(words); j++ {
				candidate := words[j]
				if found := e.findPredicateInWord(candidate); found != "" {
					predicate = found
					afterPred = candidate[len(found):] + strings.Join(words[j+1:], "")
					break
				}
				if !e.lex.IsDegreeAdverb(candidate) && !e.lex.IsNegation(candidate) {
					predicate = candidate
					afterPred = strings.Join(words[j+1:], "")
					break
				}
			}
			break
		}

		if found := e.findPredicateInWord(word); found != "" {
			yParts = words[:i]
			predicate = found
			afterPred = word[len(found):] + strings.Join(words[i+1:], "")
			break
		}

		// Negation token directly before a predicate-bearing token:
		// the whole negation joins the predicate (没有 + 失望 →
		// 没有失望).
		if e.lex.IsNegation(word) && i+1 < len(words) {
			next := words[i+1]
			if found := e.findPredicateInWord(next); found != "" {
				yParts = words[:i]
				predicate = word + found
				afterPred = next[len(found):] + strings.Join(words[i+2:], "")
				break
			}
		}
	}

	// Fallback: the first token of two or more runes that is not an
	// adverb and does not look like a person noun.
	if predicate == "" {
		for idx, word := range words {
			if utf8.RuneCountInString(word) < 2 || e.lex.IsDegreeAdverb(word) {
				continue
			}
			if strings.HasSuffix(word, "人") || strings.HasSuffix(word, "者") || strings.HasSuffix(word, "们") {
				continue
			}
			yParts = words[:idx]
			predicate = word
			afterPred = strings.Join(words[idx+1:], "")
			break
		}
	}

	return strings.Join(yParts, ""), predicate, afterPred
}

// findPredicateInWord reports the predicate a token carries, or "".
// Common nouns never carry one (问题 must not yield 问). A leading
// 不, 没 or 未 stays attached to the predicate it negates. For merged
// tokens such as 发表意见 the longest predicate prefix wins, unless
// the next rune is an affix (的地得了着过) that would change the word.
func (e *Extractor) findPredicateInWord(word string) string {
	if e.lex.IsCommonNoun(word) {
		return ""
	}
	if e.lex.IsPredicate(word) {
		return word
	}

	if first, size := utf8.DecodeRuneInString(word); first == '不' || first == '没' || first == '未' {
		remainder := word[size:]
		if e.lex.IsPredicate(remainder) {
			return word
		}
		for _, pred := range e.lex.PredicatesByLength() {
			if strings.HasPrefix(remainder, pred) {
				return word[:size] + pred
			}
		}
	}

	for _, pred := range e.lex.PredicatesByLength() {
		if len(word) <= len(pred) || !strings.HasPrefix(word, pred) {
			continue
		}
		rest := word[len(pred):]
		if r, _ := utf8.DecodeRuneInString(rest); !strings.ContainsRune("的地得了着过", r) {
			return pred
		}
	}

	return ""
}
