package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/duilens/internal/model"
)

// SentenceAnalyzer is the slice of the analysis pipeline batch
// processing needs. Satisfied by pipeline.Analyzer.
type SentenceAnalyzer interface {
	Analyze(ctx context.Context, sentence string) (*model.SentenceReport, error)
}

// AnalyzeJob represents a single sentence analysis job
type AnalyzeJob struct {
	Sentence string
	Analyzer SentenceAnalyzer
}

// Execute executes the analysis job
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	report, err := j.Analyzer.Analyze(ctx, j.Sentence)
	if err != nil {
		return &AnalyzeResult{
			Sentence: j.Sentence,
			Report:   nil,
			Error:    err,
		}
	}
	return &AnalyzeResult{
		Sentence: j.Sentence,
		Report:   report,
		Error:    nil,
	}
}

// AnalyzeResult represents the result of an analysis job
type AnalyzeResult struct {
	Sentence string
	Report   *model.SentenceReport
	Error    error
}

// GetError returns the error from the analysis result
func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes multiple sentences concurrently
type BatchProcessor struct {
	analyzer    SentenceAnalyzer
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(analyzer SentenceAnalyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessSentences analyzes multiple sentences concurrently. Results
// arrive in completion order, not input order.
func (b *BatchProcessor) ProcessSentences(ctx context.Context, sentences []string) []*AnalyzeResult {
	if len(sentences) == 0 {
		return []*AnalyzeResult{}
	}

	// Create worker pool
	pool := NewPool(b.concurrency)
	pool.Start()

	// Submit jobs
	for _, sentence := range sentences {
		job := &AnalyzeJob{
			Sentence: sentence,
			Analyzer: b.analyzer,
		}
		pool.Submit(job)
	}

	// Wait for all jobs to complete
	results := pool.Wait()

	// Convert to AnalyzeResults
	analyzeResults := make([]*AnalyzeResult, len(results))
	for i, result := range results {
		analyzeResults[i] = result.(*AnalyzeResult)
	}

	return analyzeResults
}

// ProcessFile reads sentences from a file and analyzes them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*AnalyzeResult, error) {
	sentences, err := ReadSentencesFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read sentences: %w", err)
	}

	return b.ProcessSentences(ctx, sentences), nil
}

// ReadSentencesFromFile reads sentences from a file (one per line).
// Blank lines and # comments are skipped; duplicates are dropped.
func ReadSentencesFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var sentences []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Deduplicate sentences
		if !seen[line] {
			seen[line] = true
			sentences = append(sentences, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return sentences, nil
}
