package model

// ClassificationResult is the outcome of classifying one predicate in its
// sentence context. Constructed fresh per classification call; never
// persisted or mutated afterwards.
type ClassificationResult struct {
	Predicate   string `json:"predicate"`
	CorpusFound bool   `json:"corpus_found"`

	// Stat is the corpus record for Predicate, nil when not found.
	Stat *PredicateStat `json:"stat,omitempty"`

	// Category is the resolved construction type. When Unresolved is true
	// the field is empty and callers decide how to present the sentence;
	// the classifier itself never defaults.
	Category   Category `json:"category,omitempty"`
	Unresolved bool     `json:"unresolved,omitempty"`

	// Marker is the override marker that fired, if any.
	Marker string `json:"marker,omitempty"`

	// Reason explains the decision in one sentence: either the override
	// marker or the corpus confidence.
	Reason string `json:"reason,omitempty"`

	// LearningNotes are learner-facing hints: the override rule's
	// explanation (when one fired) and the diagnostic test question for
	// the resolved category.
	LearningNotes []string `json:"learning_notes,omitempty"`
}
