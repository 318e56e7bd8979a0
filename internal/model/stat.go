package model

// PredicateStat is one corpus table record: how a predicate distributes
// across the six categories in the reference corpus.
type PredicateStat struct {
	Predicate string `json:"predicate,omitempty"`

	// Total occurrence count across all categories.
	Total int `json:"total"`

	// Types maps category code to raw occurrence count.
	Types map[Category]int `json:"types"`

	// Distribution maps category code to percentage of Total. Percentages
	// over the present categories sum to ~100 allowing rounding.
	Distribution map[Category]float64 `json:"distribution"`

	// DominantType is the argmax of Distribution.
	DominantType Category `json:"dominant_type"`

	// Confidence is the dominant share of Total, in [0,1].
	Confidence float64 `json:"confidence"`
}

// SimilarPredicate is a corpus neighbour of a reference predicate: same
// dominant category, comparable confidence.
type SimilarPredicate struct {
	Predicate string   `json:"predicate"`
	Category  Category `json:"category"`
	Total     int      `json:"total"`
}
