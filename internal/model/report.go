package model

import "time"

// Animacy is the guessed animacy of a Y-phrase.
type Animacy string

const (
	AnimacyAnimate   Animacy = "animate"
	AnimacyInanimate Animacy = "inanimate"
	AnimacyUnknown   Animacy = "unknown"
)

// SentenceReport is the complete analysis of one 对-sentence.
type SentenceReport struct {
	Sentence   string    `json:"sentence"`
	AnalyzedAt time.Time `json:"analyzed_at"`

	// Segmenter names the strategy that tokenized the sentence.
	Segmenter string `json:"segmenter"`

	Parts  SentenceParts        `json:"parts"`
	Result ClassificationResult `json:"result"`

	// Animacy of the Y-phrase; display hint only.
	Animacy Animacy `json:"animacy"`

	// Similar predicates from the corpus (same dominant type, comparable
	// confidence), empty when the predicate is not in the corpus.
	Similar []SimilarPredicate `json:"similar,omitempty"`

	// DistributionMD is a Markdown rendering of the corpus distribution.
	DistributionMD string `json:"distribution_md,omitempty"`

	// Tutor is the optional LLM note. It is generated AFTER classification
	// from the resolved result only and never affects it.
	Tutor *TutorNote `json:"tutor,omitempty"`
}

// ScanReport is the analysis of every 对-sentence harvested from one page.
type ScanReport struct {
	SourceURL string    `json:"source_url"`
	FetchedAt time.Time `json:"fetched_at"`
	FetchMeta FetchMeta `json:"fetch_meta"`

	SentencesFound int              `json:"sentences_found"`
	Reports        []SentenceReport `json:"reports"`

	// Tally counts resolved categories across the page; sentences the
	// classifier could not resolve are counted in Unresolved instead.
	Tally      map[Category]int `json:"tally"`
	Unresolved int              `json:"unresolved"`
}

// FetchMeta contains HTTP metadata from fetching the source page.
type FetchMeta struct {
	StatusCode   int               `json:"status_code"`
	ContentType  string            `json:"content_type,omitempty"`
	LastModified string            `json:"last_modified,omitempty"`
	ETag         string            `json:"etag,omitempty"`
	Headers      map[string]string `json:"headers,omitempty"`
}

// TutorNote is an optional LLM-generated learner note.
// It never affects classification and is clearly separated in output.
type TutorNote struct {
	Enabled  bool   `json:"enabled"`
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`

	// StrictGrounding records whether numeric-grounding enforcement was on.
	StrictGrounding bool `json:"strict_grounding"`

	// NoteMD is the Markdown note text.
	NoteMD string `json:"note_md,omitempty"`

	// Warnings lists issues (provider unavailable, missing category
	// mention) that did not abort note generation.
	Warnings []string `json:"warnings,omitempty"`
}
