package llm

import (
	"context"
	"strings"
	"testing"

	"github.com/ppiankov/duilens/internal/model"
)

// MockProvider implements the Provider interface for testing
type MockProvider struct {
	name      string
	available bool
	response  *ExplainResponse
	err       error
}

func (m *MockProvider) Name() string {
	return m.name
}

func (m *MockProvider) Explain(ctx context.Context, req ExplainRequest) (*ExplainResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *MockProvider) IsAvailable(ctx context.Context) bool {
	return m.available
}

// sampleReport returns a resolved Mental-State analysis for tutor tests.
func sampleReport() model.SentenceReport {
	return model.SentenceReport{
		Sentence: "他对这个问题很感兴趣",
		Parts: model.SentenceParts{
			BeforeDui:    "他",
			YPhrase:      "这个问题",
			Predicate:    "感兴趣",
			FullAfterDui: "这个问题很感兴趣",
		},
		Result: model.ClassificationResult{
			Predicate:   "感兴趣",
			CorpusFound: true,
			Stat: &model.PredicateStat{
				Predicate: "感兴趣",
				Total:     100,
				Types: map[model.Category]int{
					model.MentalState: 75,
					model.Aboutness:   25,
				},
				Distribution: map[model.Category]float64{
					model.MentalState: 75,
					model.Aboutness:   25,
				},
				DominantType: model.MentalState,
				Confidence:   0.75,
			},
			Category: model.MentalState,
			Reason:   "corpus: 75.0% of 100 instances are Mental-State",
			LearningNotes: []string{
				"Ask: does 这个问题 trigger an internal state in the subject?",
			},
		},
	}
}

func TestNewTutor_DisabledProvider(t *testing.T) {
	config := Config{
		Provider: "", // Empty = disabled
	}

	tutor, err := NewTutor(config)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if tutor.provider != nil {
		t.Error("Expected provider to be nil when disabled")
	}

	if tutor.IsEnabled() {
		t.Error("Expected tutor to be disabled")
	}

	if tutor.ProviderName() != "" {
		t.Error("Expected empty provider name when disabled")
	}
}

func TestNewTutor_UnknownProvider(t *testing.T) {
	config := Config{
		Provider: "gemini",
	}

	_, err := NewTutor(config)
	if err == nil {
		t.Fatal("Expected error for unknown provider")
	}

	if !strings.Contains(err.Error(), "unknown LLM provider") {
		t.Errorf("Expected unknown provider error, got %v", err)
	}
}

func TestTutor_GenerateNote_Disabled(t *testing.T) {
	// Create tutor with nil provider (disabled)
	tutor := &Tutor{
		provider: nil,
		config:   Config{},
	}

	note, err := tutor.GenerateNote(context.Background(), sampleReport())

	if err != nil {
		t.Errorf("Expected no error when disabled, got %v", err)
	}

	if note != nil {
		t.Error("Expected nil note when provider disabled")
	}
}

func TestTutor_GenerateNote_ProviderUnavailable(t *testing.T) {
	mockProvider := &MockProvider{
		name:      "test-provider",
		available: false, // Provider not available
	}

	tutor := &Tutor{
		provider: mockProvider,
		config:   Config{StrictGrounding: true},
	}

	note, err := tutor.GenerateNote(context.Background(), sampleReport())

	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	if note == nil {
		t.Fatal("Expected note object with warnings")
	}

	if note.Enabled {
		t.Error("Expected note to be marked as disabled")
	}

	if len(note.Warnings) == 0 {
		t.Error("Expected warning about provider unavailability")
	}

	// Check warning message
	found := false
	for _, warning := range note.Warnings {
		if strings.Contains(warning, "not available") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected warning to mention provider unavailability")
	}
}

func TestTutor_GenerateNote_Success(t *testing.T) {
	mockProvider := &MockProvider{
		name:      "test-provider",
		available: true,
		response: &ExplainResponse{
			Note:          "This is Mental-State: 对 marks 这个问题 as the trigger of 感兴趣, true in 75.0% of corpus instances.",
			CitedPercents: []float64{75.0},
			Model:         "test-model",
			TokensUsed:    150,
		},
	}

	tutor := &Tutor{
		provider: mockProvider,
		config: Config{
			Model:           "test-model",
			StrictGrounding: true,
		},
	}

	note, err := tutor.GenerateNote(context.Background(), sampleReport())

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if note == nil {
		t.Fatal("Expected note to be generated")
	}

	if !note.Enabled {
		t.Error("Expected note to be enabled")
	}

	if note.Provider != "test-provider" {
		t.Errorf("Expected provider 'test-provider', got '%s'", note.Provider)
	}

	if note.Model != "test-model" {
		t.Errorf("Expected model 'test-model', got '%s'", note.Model)
	}

	if !note.StrictGrounding {
		t.Error("Expected strict grounding mode to be enabled")
	}

	if !strings.Contains(note.NoteMD, "Mental-State") {
		t.Errorf("Expected note text to survive, got '%s'", note.NoteMD)
	}

	// Check warnings include token usage and grounding verification
	foundTokens := false
	foundVerified := false
	for _, warning := range note.Warnings {
		if strings.Contains(warning, "Tokens used") {
			foundTokens = true
		}
		if strings.Contains(warning, "Verified") && strings.Contains(warning, "percentages") {
			foundVerified = true
		}
	}

	if !foundTokens {
		t.Error("Expected warning about tokens used")
	}

	if !foundVerified {
		t.Error("Expected warning about verified percentages")
	}

	// The note names the resolved category, so no mention warning
	for _, warning := range note.Warnings {
		if strings.Contains(warning, "does not mention") {
			t.Errorf("Unexpected category mention warning: %s", warning)
		}
	}
}

func TestTutor_GenerateNote_ProviderError(t *testing.T) {
	mockProvider := &MockProvider{
		name:      "test-provider",
		available: true,
		err:       &mockError{msg: "API rate limit exceeded"},
	}

	tutor := &Tutor{
		provider: mockProvider,
		config: Config{
			Model:           "test-model",
			StrictGrounding: true,
		},
	}

	note, err := tutor.GenerateNote(context.Background(), sampleReport())

	// Should not fail the analysis, just return a note with warnings
	if err != nil {
		t.Errorf("Expected no error (graceful degradation), got %v", err)
	}

	if note == nil {
		t.Fatal("Expected note with error warning")
	}

	if !note.Enabled {
		t.Error("Expected note to be marked as enabled (but failed)")
	}

	if len(note.Warnings) == 0 {
		t.Fatal("Expected warning about generation failure")
	}

	// Check warning mentions the error
	found := false
	for _, warning := range note.Warnings {
		if strings.Contains(warning, "failed") && strings.Contains(warning, "rate limit") {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Expected warning to mention error: %v", note.Warnings)
	}
}

func TestTutor_GenerateNote_CategoryNotMentioned(t *testing.T) {
	mockProvider := &MockProvider{
		name:      "test-provider",
		available: true,
		response: &ExplainResponse{
			Note:       "对 here introduces the thing the feeling is about.",
			Model:      "test-model",
			TokensUsed: 80,
		},
	}

	tutor := &Tutor{
		provider: mockProvider,
		config:   Config{StrictGrounding: true},
	}

	note, err := tutor.GenerateNote(context.Background(), sampleReport())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	found := false
	for _, warning := range note.Warnings {
		if strings.Contains(warning, "does not mention") && strings.Contains(warning, "Mental-State") {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Expected warning about missing category mention, got %v", note.Warnings)
	}
}

func TestMentionsCategory(t *testing.T) {
	tests := []struct {
		note string
		want bool
	}{
		{"This is a Mental-State construction.", true},
		{"In Chinese grammar this is 心理状态.", true},
		{"The resolved code is MS here.", true},
		{"对 introduces the target of the feeling.", false},
	}

	for _, tt := range tests {
		if got := mentionsCategory(tt.note, model.MentalState); got != tt.want {
			t.Errorf("mentionsCategory(%q) = %v, want %v", tt.note, got, tt.want)
		}
	}
}

func TestRenderNoteMarkdown_Disabled(t *testing.T) {
	note := &model.TutorNote{
		Enabled: false,
	}

	md := RenderNoteMarkdown(note)

	if md != "" {
		t.Error("Expected empty markdown when disabled")
	}
}

func TestRenderNoteMarkdown_Nil(t *testing.T) {
	md := RenderNoteMarkdown(nil)

	if md != "" {
		t.Error("Expected empty markdown when nil")
	}
}

func TestRenderNoteMarkdown_Success(t *testing.T) {
	note := &model.TutorNote{
		Enabled:         true,
		Provider:        "openai",
		Model:           "gpt-4o-mini",
		StrictGrounding: true,
		NoteMD:          "This is the generated tutor note content.",
		Warnings: []string{
			"Tokens used: 150",
			"Verified 2 quoted percentages against the analysis",
		},
	}

	md := RenderNoteMarkdown(note)

	if md == "" {
		t.Fatal("Expected markdown to be generated")
	}

	// Check required sections
	requiredSections := []string{
		"# Tutor Note",
		"GENERATED CONTENT",
		"Provider",
		"openai",
		"Model",
		"gpt-4o-mini",
		"Strict Grounding",
		"true",
		"This is the generated tutor note content.",
		"## Notes",
		"Tokens used: 150",
		"Verified 2 quoted percentages against the analysis",
	}

	for _, section := range requiredSections {
		if !strings.Contains(md, section) {
			t.Errorf("Expected markdown to contain '%s'", section)
		}
	}

	// Check disclaimer is present
	if !strings.Contains(md, "determined independently") {
		t.Error("Expected disclaimer about independence from LLM")
	}
}

func TestRenderNoteMarkdown_NoNote(t *testing.T) {
	note := &model.TutorNote{
		Enabled:         true,
		Provider:        "test-provider",
		StrictGrounding: true,
		NoteMD:          "", // Empty note
	}

	md := RenderNoteMarkdown(note)

	if !strings.Contains(md, "No note generated") {
		t.Error("Expected message about no note")
	}
}

func TestBuildPrompt_BasicStructure(t *testing.T) {
	report := sampleReport()
	allowed := AllowedPercentsFor(report)

	prompt := BuildPrompt(report, allowed)

	// Check required elements
	requiredElements := []string{
		"CRITICAL RULES",
		"ONLY quote these percentage figures",
		"- 75.0%",
		"- 25.0%",
		"Mental-State (MS, 心理状态)",
		"DO NOT invent",
		"Sentence: 他对这个问题很感兴趣",
		"Before 对: 他",
		"Y-phrase (target of 对): 这个问题",
		"Predicate: 感兴趣",
		"Reason: corpus: 75.0% of 100 instances are Mental-State",
		"Note: Ask: does 这个问题 trigger an internal state in the subject?",
		"Write the tutor note now.",
	}

	for _, element := range requiredElements {
		if !strings.Contains(prompt, element) {
			t.Errorf("Expected prompt to contain '%s'", element)
		}
	}
}

func TestBuildPrompt_Unresolved(t *testing.T) {
	report := model.SentenceReport{
		Sentence: "他对了一下答案",
		Parts: model.SentenceParts{
			BeforeDui:    "他",
			FullAfterDui: "了一下答案",
		},
		Result: model.ClassificationResult{
			Unresolved: true,
		},
	}

	prompt := BuildPrompt(report, nil)

	if !strings.Contains(prompt, "unresolved (no rule matched") {
		t.Error("Expected unresolved category line")
	}

	if !strings.Contains(prompt, "No corpus percentages are available") {
		t.Error("Expected message about missing percentages")
	}
}

func TestAllowedPercentsFor(t *testing.T) {
	allowed := AllowedPercentsFor(sampleReport())

	// Confidence 0.75 and the two distribution shares collapse to two
	// distinct figures
	if len(allowed) != 2 {
		t.Fatalf("Expected 2 allowed percents, got %d: %v", len(allowed), allowed)
	}

	if !percentAllowed(allowed, 75.0) {
		t.Error("Expected 75.0 to be allowed")
	}

	if !percentAllowed(allowed, 25.0) {
		t.Error("Expected 25.0 to be allowed")
	}

	if percentAllowed(allowed, 50.0) {
		t.Error("Expected 50.0 to be rejected")
	}
}

func TestAllowedPercentsFor_Rounding(t *testing.T) {
	report := sampleReport()
	report.Result.Stat = &model.PredicateStat{
		Total: 3,
		Distribution: map[model.Category]float64{
			model.MentalState: 66.66666666666667,
			model.Aboutness:   33.333333333333336,
		},
		DominantType: model.MentalState,
		Confidence:   0.6666666666666666,
	}

	allowed := AllowedPercentsFor(report)

	// A note that rounds 66.666...% to 66.7% must still pass
	if !percentAllowed(allowed, 66.7) {
		t.Errorf("Expected rounded 66.7 to be allowed, allowed set: %v", allowed)
	}

	// The integer rounding the classifier prints must pass too
	if !percentAllowed(allowed, 67) {
		t.Errorf("Expected rounded 67 to be allowed, allowed set: %v", allowed)
	}

	if !percentAllowed(allowed, 33.3) {
		t.Errorf("Expected rounded 33.3 to be allowed, allowed set: %v", allowed)
	}

	if percentAllowed(allowed, 66.0) {
		t.Error("Expected 66.0 to be rejected")
	}
}

func TestAllowedPercentsFor_NoStat(t *testing.T) {
	report := model.SentenceReport{
		Result: model.ClassificationResult{
			Unresolved: true,
		},
	}

	if allowed := AllowedPercentsFor(report); allowed != nil {
		t.Errorf("Expected nil allowed set without corpus stat, got %v", allowed)
	}
}

func TestExtractPercents(t *testing.T) {
	text := "The corpus shows 75.0% Mental-State and 25 % Aboutness; 75.0% again."

	percents := extractPercents(text)

	if len(percents) != 2 {
		t.Fatalf("Expected 2 distinct percents, got %d: %v", len(percents), percents)
	}

	if percents[0] != 75.0 || percents[1] != 25.0 {
		t.Errorf("Expected [75 25], got %v", percents)
	}
}

func TestExtractPercents_None(t *testing.T) {
	if percents := extractPercents("对 marks the target of the feeling."); len(percents) != 0 {
		t.Errorf("Expected no percents, got %v", percents)
	}
}

func TestPercentAllowed_Tolerance(t *testing.T) {
	allowed := []float64{66.7}

	if !percentAllowed(allowed, 66.72) {
		t.Error("Expected 66.72 to pass within tolerance")
	}

	if percentAllowed(allowed, 66.8) {
		t.Error("Expected 66.8 to fail outside tolerance")
	}
}

func TestVerifyGrounding(t *testing.T) {
	allowed := []float64{75.0, 25.0}

	if err := verifyGrounding([]float64{75.0, 25.0}, allowed); err != nil {
		t.Errorf("Expected grounded figures to pass, got %v", err)
	}

	err := verifyGrounding([]float64{50.0}, allowed)
	if err == nil {
		t.Fatal("Expected grounding leak error")
	}

	if !strings.Contains(err.Error(), "GROUNDING LEAK") {
		t.Errorf("Expected GROUNDING LEAK error, got %v", err)
	}

	if !strings.Contains(err.Error(), "50.0%") {
		t.Errorf("Expected leaked figure in error, got %v", err)
	}
}

func TestJoinPercents_Empty(t *testing.T) {
	result := joinPercents(nil)

	if !strings.Contains(result, "No corpus percentages are available") {
		t.Error("Expected message about no percentages")
	}
}

func TestJoinPercents_Few(t *testing.T) {
	result := joinPercents([]float64{75.0, 25.0})

	if !strings.Contains(result, "- 75.0%") || !strings.Contains(result, "- 25.0%") {
		t.Errorf("Expected formatted percents, got %q", result)
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Provider != "" {
		t.Errorf("Expected provider to be empty (disabled), got '%s'", config.Provider)
	}

	if !config.StrictGrounding {
		t.Error("Expected strict grounding to be enabled by default (CRITICAL)")
	}

	if config.Timeout <= 0 {
		t.Error("Expected positive timeout")
	}

	if config.MaxTokens <= 0 {
		t.Error("Expected positive max tokens")
	}
}

func TestTutor_IsEnabled(t *testing.T) {
	// Disabled tutor
	disabled := &Tutor{
		provider: nil,
	}

	if disabled.IsEnabled() {
		t.Error("Expected IsEnabled() to return false when provider is nil")
	}

	// Enabled tutor
	enabled := &Tutor{
		provider: &MockProvider{name: "test"},
	}

	if !enabled.IsEnabled() {
		t.Error("Expected IsEnabled() to return true when provider exists")
	}
}

func TestTutor_ProviderName(t *testing.T) {
	// Disabled tutor
	disabled := &Tutor{
		provider: nil,
	}

	if disabled.ProviderName() != "" {
		t.Error("Expected empty provider name when disabled")
	}

	// Enabled tutor
	enabled := &Tutor{
		provider: &MockProvider{name: "test-provider"},
	}

	if enabled.ProviderName() != "test-provider" {
		t.Errorf("Expected provider name 'test-provider', got '%s'", enabled.ProviderName())
	}
}

// Mock error type for testing
type mockError struct {
	msg string
}

func (e *mockError) Error() string {
	return e.msg
}
