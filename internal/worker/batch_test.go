package worker

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/ppiankov/duilens/internal/model"
)

// MockAnalyzer implements SentenceAnalyzer
type MockAnalyzer struct {
	ShouldError bool
}

func (m *MockAnalyzer) Analyze(ctx context.Context, sentence string) (*model.SentenceReport, error) {
	time.Sleep(10 * time.Millisecond) // Simulate work
	if m.ShouldError {
		return nil, errors.New("analyze error")
	}
	return &model.SentenceReport{
		Sentence:  sentence,
		Segmenter: "lexicon",
	}, nil
}

func TestBatchProcessor_ProcessSentences(t *testing.T) {
	analyzer := &MockAnalyzer{}
	processor := NewBatchProcessor(analyzer, 2)

	sentences := []string{"我对这件事很担心", "他对我说了几句话", "她对客人很热情"}
	ctx := context.Background()

	results := processor.ProcessSentences(ctx, sentences)

	if len(results) != 3 {
		t.Errorf("expected 3 results, got %d", len(results))
	}

	successCount := 0
	for _, res := range results {
		if res.Error == nil {
			successCount++
			if res.Report == nil {
				t.Error("expected report for successful analysis")
			}
		} else {
			t.Errorf("unexpected error for %s: %v", res.Sentence, res.Error)
		}
	}

	if successCount != 3 {
		t.Errorf("expected 3 successes, got %d", successCount)
	}
}

func TestBatchProcessor_ProcessSentences_Error(t *testing.T) {
	analyzer := &MockAnalyzer{ShouldError: true}
	processor := NewBatchProcessor(analyzer, 2)

	results := processor.ProcessSentences(context.Background(), []string{"我对这件事很担心"})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	if results[0].Error == nil {
		t.Error("expected error, got nil")
	}
	if results[0].Report != nil {
		t.Error("expected nil report on error")
	}
}

func TestBatchProcessor_ProcessSentences_Empty(t *testing.T) {
	analyzer := &MockAnalyzer{}
	processor := NewBatchProcessor(analyzer, 2)

	results := processor.ProcessSentences(context.Background(), []string{})
	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}

func TestReadSentencesFromFile(t *testing.T) {
	content := `我对这件事很担心
# comment
他对我说了几句话

她对客人很热情   `

	tmpfile, err := os.CreateTemp("", "sentences")
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = os.Remove(tmpfile.Name())
	}()

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	sentences, err := ReadSentencesFromFile(tmpfile.Name())
	if err != nil {
		t.Fatalf("ReadSentencesFromFile failed: %v", err)
	}

	expected := []string{"我对这件事很担心", "他对我说了几句话", "她对客人很热情"}
	if len(sentences) != len(expected) {
		t.Fatalf("expected %d sentences, got %d", len(expected), len(sentences))
	}

	for i, sentence := range sentences {
		if sentence != expected[i] {
			t.Errorf("expected sentence %s at index %d, got %s", expected[i], i, sentence)
		}
	}
}

func TestReadSentencesFromFile_NonExistent(t *testing.T) {
	_, err := ReadSentencesFromFile("non_existent_file.txt")
	if err == nil {
		t.Error("expected error for non-existent file, got nil")
	}
}

func TestReadSentencesFromFile_Deduplication(t *testing.T) {
	content := `我对这件事很担心
我对这件事很担心`

	tmpfile, err := os.CreateTemp("", "sentences_dedup")
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = os.Remove(tmpfile.Name())
	}()

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	sentences, err := ReadSentencesFromFile(tmpfile.Name())
	if err != nil {
		t.Fatalf("ReadSentencesFromFile failed: %v", err)
	}

	if len(sentences) != 1 {
		t.Errorf("expected 1 sentence after deduplication, got %d", len(sentences))
	}
}

func TestAnalyzeResult_GetError(t *testing.T) {
	r1 := &AnalyzeResult{Sentence: "我对他说", Error: nil}
	if r1.GetError() != nil {
		t.Errorf("expected nil error, got %v", r1.GetError())
	}

	expected := errors.New("analysis failed")
	r2 := &AnalyzeResult{Sentence: "我对他说", Error: expected}
	if r2.GetError() != expected {
		t.Errorf("expected %v, got %v", expected, r2.GetError())
	}
}

func TestBatchProcessor_ProcessFile(t *testing.T) {
	content := "我对这件事很担心\n他对我说了几句话\n# comment\n\n她对客人很热情\n"

	tmpfile, err := os.CreateTemp("", "batch_sentences")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Remove(tmpfile.Name()) }()

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	analyzer := &MockAnalyzer{}
	processor := NewBatchProcessor(analyzer, 2)

	results, err := processor.ProcessFile(context.Background(), tmpfile.Name())
	if err != nil {
		t.Fatalf("ProcessFile failed: %v", err)
	}

	if len(results) != 3 {
		t.Errorf("expected 3 results, got %d", len(results))
	}
}

func TestBatchProcessor_ProcessFile_NonExistent(t *testing.T) {
	analyzer := &MockAnalyzer{}
	processor := NewBatchProcessor(analyzer, 2)

	_, err := processor.ProcessFile(context.Background(), "no_such_file.txt")
	if err == nil {
		t.Error("expected error for non-existent file, got nil")
	}
}

func TestBatchProcessor_ProcessFile_Empty(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "empty_sentences")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Remove(tmpfile.Name()) }()
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	analyzer := &MockAnalyzer{}
	processor := NewBatchProcessor(analyzer, 2)

	results, err := processor.ProcessFile(context.Background(), tmpfile.Name())
	if err != nil {
		t.Fatalf("ProcessFile failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected 0 results for empty file, got %d", len(results))
	}
}
