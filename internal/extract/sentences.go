package extract

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// SentenceExtractor harvests 对-construction sentences from raw text
// or HTML pages.
type SentenceExtractor struct {
	minRunes int
	maxRunes int
}

// NewSentenceExtractor creates a sentence extractor with the default
// length window.
func NewSentenceExtractor() *SentenceExtractor {
	return &SentenceExtractor{
		minRunes: 5,
		maxRunes: 200,
	}
}

// FromHTML extracts candidate sentences from HTML content.
func (e *SentenceExtractor) FromHTML(htmlContent string) ([]string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, err
	}

	text := extractVisibleText(doc)
	return e.FromText(text), nil
}

// FromText splits text into sentences and keeps the ones that contain
// 对 and fall inside the length window.
func (e *SentenceExtractor) FromText(text string) []string {
	var keep []string
	seen := make(map[string]bool)

	for _, sentence := range splitSentences(text) {
		if !strings.Contains(sentence, "对") {
			continue
		}
		n := utf8.RuneCountInString(sentence)
		if n < e.minRunes || n > e.maxRunes {
			continue
		}
		if seen[sentence] {
			continue
		}
		seen[sentence] = true
		keep = append(keep, sentence)
	}

	return keep
}

// extractVisibleText extracts text nodes from HTML, skipping
// scripts/styles
func extractVisibleText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString("\n")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return buf.String()
}

// splitSentences splits text on Chinese and Western sentence
// terminators. The terminator stays attached to its sentence.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		sentence := strings.TrimSpace(current.String())
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		current.Reset()
	}

	for _, r := range text {
		switch r {
		case '\n', '\r':
			flush()
		case '。', '！', '？', '；', '!', '?', ';':
			current.WriteRune(r)
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return sentences
}
