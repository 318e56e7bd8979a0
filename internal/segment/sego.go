package segment

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/tuotoo/sego"

	"github.com/ppiankov/duilens/internal/lexicon"
)

// Sego wraps the sego statistical segmenter. Its dictionary is built
// in memory from the lexicon vocabulary so that predicates, degree
// adverbs and negation words always come out as single tokens, the
// same guarantee the lexicon strategy gives. A user dictionary file
// can be appended on top.
type Sego struct {
	seg sego.Segmenter
}

// NewSego builds a Sego segmenter. dictPath optionally names a
// supplementary dictionary file in sego format ("word freq pos" per
// line); its entries are loaded after the built-in vocabulary.
func NewSego(lex *lexicon.Lexicon, dictPath string) (*Sego, error) {
	var buf bytes.Buffer
	writeVocabulary(&buf, lex)

	if dictPath != "" {
		f, err := os.Open(dictPath)
		if err != nil {
			return nil, fmt.Errorf("open segmenter dictionary: %w", err)
		}
		defer f.Close()
		if _, err := io.Copy(&buf, f); err != nil {
			return nil, fmt.Errorf("read segmenter dictionary: %w", err)
		}
	}

	s := &Sego{}
	s.seg.LoadDictionaryFromReader(&buf)
	return s, nil
}

// Name implements Segmenter.
func (s *Sego) Name() string { return "sego" }

// Segment implements Segmenter.
func (s *Sego) Segment(text string) []string {
	if text == "" {
		return nil
	}
	segments := s.seg.Segment([]byte(text))
	return sego.SegmentsToSlice(segments, false)
}

// writeVocabulary emits the lexicon as sego dictionary lines:
// predicates, common nouns and structural words at frequency 100000,
// complements at 90000.
func writeVocabulary(w io.Writer, lex *lexicon.Lexicon) {
	for _, word := range lex.PredicatesByLength() {
		fmt.Fprintf(w, "%s 100000 v\n", word)
	}
	for _, word := range lex.CommonNouns() {
		fmt.Fprintf(w, "%s 100000 n\n", word)
	}
	for _, word := range lex.SegmentEntries() {
		if lex.IsPredicate(word) {
			continue
		}
		fmt.Fprintf(w, "%s 100000 d\n", word)
	}
	for _, word := range lex.Complements() {
		fmt.Fprintf(w, "%s 90000 n\n", word)
	}
}
