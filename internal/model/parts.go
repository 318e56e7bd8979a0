package model

// SentenceParts is the split of a 对-sentence into its construction slots.
// BeforeDui and FullAfterDui are verbatim halves of the original sentence
// around the FIRST 对; the remaining fields are derived from FullAfterDui.
//
// Invariant: BeforeDui + "对" + FullAfterDui == original sentence.
// YPhrase, Predicate and AfterPredicate appear in that order inside
// FullAfterDui without overlap; a negation prefix on Predicate is counted
// once (inside Predicate, never duplicated into YPhrase/AfterPredicate).
// Degree adverbs consumed while locating the predicate belong to none of
// the three derived fields.
type SentenceParts struct {
	BeforeDui      string `json:"before_dui"`
	YPhrase        string `json:"y_phrase"`
	Predicate      string `json:"predicate"`
	AfterPredicate string `json:"after_predicate"`
	FullAfterDui   string `json:"full_after_dui"`
}

// IsEmpty reports whether extraction found no 对 in the sentence. Callers
// must check this before using the derived fields.
func (p SentenceParts) IsEmpty() bool {
	return p.BeforeDui == "" && p.YPhrase == "" && p.Predicate == "" &&
		p.AfterPredicate == "" && p.FullAfterDui == ""
}

// HasPredicate reports whether a predicate was located. A sentence can
// split cleanly on 对 and still yield no predicate (fallback exhausted).
func (p SentenceParts) HasPredicate() bool {
	return p.Predicate != ""
}
