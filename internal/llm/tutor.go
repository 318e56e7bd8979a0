package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/ppiankov/duilens/internal/model"
)

// Tutor orchestrates optional LLM tutor notes for finished analyses.
// A Tutor with a nil provider is valid and produces no notes.
type Tutor struct {
	provider Provider
	config   Config
}

// NewTutor creates a tutor from configuration. An empty provider name
// yields a disabled tutor, not an error.
func NewTutor(config Config) (*Tutor, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}

	return &Tutor{
		provider: provider,
		config:   config,
	}, nil
}

// IsEnabled returns true if a provider is configured
func (t *Tutor) IsEnabled() bool {
	return t.provider != nil
}

// ProviderName returns the name of the configured provider
func (t *Tutor) ProviderName() string {
	if t.provider == nil {
		return ""
	}
	return t.provider.Name()
}

// GenerateNote produces a tutor note for an already-classified sentence.
// The note explains the resolved result and never feeds back into it.
// Provider problems degrade to warnings on the note instead of errors,
// so a broken LLM setup cannot break analysis.
func (t *Tutor) GenerateNote(ctx context.Context, report model.SentenceReport) (*model.TutorNote, error) {
	// Disabled, skip silently
	if t.provider == nil {
		return nil, nil
	}

	note := &model.TutorNote{
		Enabled:         false,
		Provider:        t.provider.Name(),
		Model:           t.config.Model,
		StrictGrounding: t.config.StrictGrounding,
	}

	// Check provider availability
	if !t.provider.IsAvailable(ctx) {
		note.Warnings = append(note.Warnings,
			fmt.Sprintf("LLM provider '%s' is not available (check API key and endpoint)", t.provider.Name()))
		return note, nil
	}

	// The tutor ran for this analysis; failures below are recorded on the
	// note rather than reported as errors.
	note.Enabled = true

	resp, err := t.provider.Explain(ctx, ExplainRequest{
		Report:          report,
		AllowedPercents: AllowedPercentsFor(report),
		MaxTokens:       t.config.MaxTokens,
	})
	if err != nil {
		note.Warnings = append(note.Warnings, fmt.Sprintf("Note generation failed: %v", err))
		return note, nil
	}

	note.NoteMD = resp.Note
	if resp.Model != "" {
		note.Model = resp.Model
	}

	note.Warnings = append(note.Warnings, fmt.Sprintf("Tokens used: %d", resp.TokensUsed))
	note.Warnings = append(note.Warnings,
		fmt.Sprintf("Verified %d quoted percentages against the analysis", len(resp.CitedPercents)))

	if !report.Result.Unresolved && !mentionsCategory(resp.Note, report.Result.Category) {
		note.Warnings = append(note.Warnings,
			fmt.Sprintf("Note does not mention the resolved category %s", report.Result.Category.Name()))
	}

	return note, nil
}

// mentionsCategory reports whether the note names the category by code,
// English name, or Chinese name.
func mentionsCategory(note string, cat model.Category) bool {
	for _, needle := range []string{cat.Name(), cat.ChineseName(), string(cat)} {
		if needle != "" && strings.Contains(note, needle) {
			return true
		}
	}
	return false
}

// RenderNoteMarkdown renders a tutor note as a standalone Markdown
// document for the .tutor.md side file. Returns "" when there is no note
// to render.
func RenderNoteMarkdown(note *model.TutorNote) string {
	if note == nil || !note.Enabled {
		return ""
	}

	var md strings.Builder

	md.WriteString("# Tutor Note\n\n")
	md.WriteString("> ⚠️ **GENERATED CONTENT**: This note was written by an LLM. ")
	md.WriteString("The classification it explains was determined independently by rule and corpus analysis ")
	md.WriteString("and is never changed by this note.\n\n")

	md.WriteString(fmt.Sprintf("**Provider:** %s\n", note.Provider))
	if note.Model != "" {
		md.WriteString(fmt.Sprintf("**Model:** %s\n", note.Model))
	}
	md.WriteString(fmt.Sprintf("**Strict Grounding:** %t\n\n", note.StrictGrounding))

	md.WriteString("---\n\n")

	if note.NoteMD == "" {
		md.WriteString("*No note generated.*\n")
	} else {
		md.WriteString(note.NoteMD)
		md.WriteString("\n")
	}

	if len(note.Warnings) > 0 {
		md.WriteString("\n## Notes\n\n")
		for _, warning := range note.Warnings {
			md.WriteString(fmt.Sprintf("- %s\n", warning))
		}
	}

	return md.String()
}
