// Package segment provides Chinese word segmentation strategies for
// 对-construction sentences. The lexicon strategy is dependency-free
// and deterministic; the sego strategy delegates to a statistical
// segmenter seeded with the same vocabulary.
package segment

import (
	"fmt"

	"github.com/ppiankov/duilens/internal/lexicon"
	"github.com/ppiankov/duilens/internal/model"
)

// Segmenter splits Chinese text into words.
type Segmenter interface {
	// Name identifies the strategy ("lexicon" or "sego").
	Name() string

	// Segment splits text into tokens. Every rune of the input
	// appears in exactly one token, in order.
	Segment(text string) []string
}

// New creates a Segmenter for the configured strategy. An empty
// strategy selects the lexicon segmenter.
func New(cfg model.SegmenterConfig, lex *lexicon.Lexicon) (Segmenter, error) {
	switch cfg.Strategy {
	case "", "lexicon":
		return NewGreedy(lex), nil
	case "sego":
		return NewSego(lex, cfg.DictPath)
	default:
		return nil, fmt.Errorf("unknown segmenter strategy: %s (supported: lexicon, sego)", cfg.Strategy)
	}
}
