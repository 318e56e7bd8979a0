// Package classify resolves the construction category of an extracted
// predicate from contextual override rules and corpus statistics.
package classify

import (
	"fmt"
	"strings"

	"github.com/ppiankov/duilens/internal/corpus"
	"github.com/ppiankov/duilens/internal/model"
)

// Classifier applies the rule cascade over a corpus table. It is
// stateless after construction and safe for concurrent use.
type Classifier struct {
	table *corpus.Table
}

// NewClassifier creates a Classifier. A nil table degrades to
// override rules only.
func NewClassifier(table *corpus.Table) *Classifier {
	if table == nil {
		table = corpus.New()
	}
	return &Classifier{table: table}
}

// Classify resolves the category of predicate in its context. The
// cascade: override rule markers first (in the rule's declared group
// order), then the corpus-dominant category. When neither resolves,
// the result is marked unresolved and carries no category.
func (c *Classifier) Classify(predicate, complement, yPhrase, fullSentence string) model.ClassificationResult {
	result := model.ClassificationResult{Predicate: predicate}

	stat, found := c.table.Lookup(predicate)
	result.CorpusFound = found
	if found {
		result.Stat = &stat
	}

	// Order fixed; membership tests only, so duplicated text is
	// harmless.
	context := complement + yPhrase + fullSentence

	if rule, ok := rules[predicate]; ok {
		for _, group := range rule.Groups {
			marker := firstMarker(group.markers, context)
			if marker == "" {
				continue
			}
			result.Category = group.category
			result.Marker = marker
			result.Reason = fmt.Sprintf("Contains '%s' which indicates %s", marker, group.hint)
			result.LearningNotes = append(result.LearningNotes, rule.Explanation)
			break
		}
	}

	if result.Category == "" && found {
		result.Category = stat.DominantType
		result.Reason = fmt.Sprintf("Based on corpus: %.0f%% of '%s' instances are this type",
			stat.Confidence*100, predicate)
	}

	if result.Category == "" {
		result.Unresolved = true
		return result
	}

	if exp, ok := ExplanationFor(result.Category); ok {
		result.LearningNotes = append(result.LearningNotes, exp.Test)
	}

	return result
}

// firstMarker returns the first marker contained in context.
func firstMarker(markers []string, context string) string {
	for _, marker := range markers {
		if strings.Contains(context, marker) {
			return marker
		}
	}
	return ""
}
