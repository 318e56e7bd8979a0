package llm

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/ppiankov/duilens/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Explain generates a learner note for an analyzed sentence with
	// strict grounding mode
	Explain(ctx context.Context, req ExplainRequest) (*ExplainResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// ExplainRequest contains the input for tutor note generation
type ExplainRequest struct {
	// Report is the resolved sentence analysis to explain
	Report model.SentenceReport

	// AllowedPercents is the STRICT allowlist of percentage figures the
	// note may quote. Anything else is a grounding leak.
	AllowedPercents []float64

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// ExplainResponse contains the tutor note output
type ExplainResponse struct {
	// Note is the generated note text
	Note string

	// CitedPercents are the percentage figures the note actually quoted
	// (for verification)
	CitedPercents []float64

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// StrictGrounding rejects notes quoting numbers the analysis never
	// produced (should always be true)
	StrictGrounding bool

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:        "", // Disabled by default
		Model:           "",
		Timeout:         30,
		StrictGrounding: true, // CRITICAL: Always enforce
		MaxTokens:       600,
	}
}

// BuildPrompt constructs the default tutor prompt. The resolved
// classification and its figures are embedded verbatim; the note has to
// stay inside them.
func BuildPrompt(report model.SentenceReport, allowedPercents []float64) string {
	category := "unresolved (no rule matched and the predicate is not in the corpus)"
	if !report.Result.Unresolved && report.Result.Category != "" {
		cat := report.Result.Category
		category = fmt.Sprintf("%s (%s, %s)", cat.Name(), string(cat), cat.ChineseName())
	}

	prompt := fmt.Sprintf(`You are a Chinese grammar tutor. A learner analyzed a sentence built on the preposition 对; the analysis below is FINAL - your note explains it, never overrides it.

CRITICAL RULES:
1. The resolved construction category is: %s. Treat it as final and name it in your note.
2. You may ONLY quote these percentage figures:
%s

3. DO NOT invent, derive or estimate any other statistics.
4. Explain what 对 marks in THIS sentence (what Y is to X) in 3-4 English sentences, quoting the Chinese words.

Analysis:
- Sentence: %s
- Before 对: %s
- Y-phrase (target of 对): %s
- Predicate: %s
- After predicate: %s
`, category, joinPercents(allowedPercents), report.Sentence,
		report.Parts.BeforeDui, report.Parts.YPhrase,
		report.Parts.Predicate, report.Parts.AfterPredicate)

	if report.Result.Reason != "" {
		prompt += fmt.Sprintf("- Reason: %s\n", report.Result.Reason)
	}
	for _, note := range report.Result.LearningNotes {
		prompt += fmt.Sprintf("- Note: %s\n", note)
	}

	prompt += "\nWrite the tutor note now."

	return prompt
}

// AllowedPercentsFor collects every percentage figure the analysis
// itself produced: the dominant confidence and the corpus distribution,
// each alongside the rounded form the classifier prints.
func AllowedPercentsFor(report model.SentenceReport) []float64 {
	stat := report.Result.Stat
	if stat == nil {
		return nil
	}

	var allowed []float64
	add := func(v float64) {
		for _, existing := range allowed {
			if math.Abs(existing-v) < 0.05 {
				return
			}
		}
		allowed = append(allowed, v)
	}

	add(stat.Confidence * 100)
	add(math.Round(stat.Confidence * 100))

	for _, cat := range model.Categories() {
		if pct, ok := stat.Distribution[cat]; ok && pct > 0 {
			add(pct)
			add(math.Round(pct*10) / 10)
		}
	}

	return allowed
}

// Helper functions

func joinPercents(percents []float64) string {
	if len(percents) == 0 {
		return "(No corpus percentages are available - quote none)"
	}
	result := ""
	for _, pct := range percents {
		result += fmt.Sprintf("\n- %.1f%%", pct)
	}
	return result
}

var percentPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)

// extractPercents extracts all percentage figures from text
func extractPercents(text string) []float64 {
	matches := percentPattern.FindAllStringSubmatch(text, -1)

	// Deduplicate on the textual form
	seen := make(map[string]bool)
	var percents []float64
	for _, m := range matches {
		if seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			percents = append(percents, v)
		}
	}

	return percents
}

// percentAllowed checks a quoted figure against the allowlist with a
// small tolerance for rounding in the note
func percentAllowed(allowed []float64, v float64) bool {
	for _, a := range allowed {
		if math.Abs(a-v) < 0.05 {
			return true
		}
	}
	return false
}

// verifyGrounding returns an error for the first quoted percentage that
// the analysis never produced
func verifyGrounding(cited []float64, allowed []float64) error {
	for _, pct := range cited {
		if !percentAllowed(allowed, pct) {
			return fmt.Errorf("GROUNDING LEAK: note quotes %.1f%% which the analysis never produced", pct)
		}
	}
	return nil
}
