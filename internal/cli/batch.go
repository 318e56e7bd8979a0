package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/duilens/internal/content"
	"github.com/ppiankov/duilens/internal/model"
	"github.com/ppiankov/duilens/internal/pipeline"
	"github.com/ppiankov/duilens/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze multiple sentences from a file in parallel",
	Long: `Batch analyzes many sentences concurrently:
- Read sentences from the input file (one per line)
- Skip blank lines and # comments, drop duplicates
- Analyze sentences in parallel with a configurable worker count
- Write an individual report pair for each sentence

Example:
  duilens batch sentences.txt
  duilens batch sentences.txt --concurrency 10 --output-dir ./reports
  duilens batch sentences.txt --llm --llm-provider ollama --llm-model qwen2.5:7b`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./duilens-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	// Pipeline flags shared with analyze
	batchCmd.Flags().StringVar(&corpusPath, "corpus", "", "corpus table path (default: search standard locations)")
	batchCmd.Flags().StringVar(&segStrategy, "segmenter", "", "segmenter strategy (lexicon, sego)")
	batchCmd.Flags().StringVar(&segDict, "dict", "", "sego user dictionary path")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result cache")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// LLM flags
	batchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM tutor note generation")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  DuiLens Batch Analysis\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	// Build configuration
	cfg := model.DefaultConfig()
	applyCommonFlags(cfg)
	cfg.Concurrency.Workers = concurrency

	if err := configureLLM(cfg); err != nil {
		return err
	}
	if llmEnabled {
		fmt.Fprintf(os.Stderr, "  LLM:          %s/%s\n\n", llmProvider, llmModel)
	}

	// Create output directory
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	a, err := pipeline.NewAnalyzer(cfg)
	if err != nil {
		return fmt.Errorf("create analyzer: %w", err)
	}

	fmt.Fprintf(os.Stderr, "⚙️  Reading sentences from file...\n")
	sentences, err := worker.ReadSentencesFromFile(file)
	if err != nil {
		return fmt.Errorf("read sentences: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ Loaded %d sentences\n", len(sentences))
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "⚙️  Analyzing with %d workers...\n", concurrency)
	fmt.Fprintf(os.Stderr, "\n")

	// Input position keyed by sentence; results arrive in completion order
	position := make(map[string]int, len(sentences))
	for i, s := range sentences {
		position[s] = i + 1
	}

	processor := worker.NewBatchProcessor(a, concurrency)
	results := processor.ProcessSentences(ctx, sentences)

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	tally := make(map[model.Category]int)
	successCount := 0
	failureCount := 0
	unresolvedCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Sentence, result.Error)
			continue
		}

		successCount++

		label := "unresolved"
		if result.Report.Result.Unresolved {
			unresolvedCount++
		} else {
			tally[result.Report.Result.Category]++
			label = content.FormatDisplay(result.Report.Result.Category, false)
		}

		slug := batchSlug(position[result.Sentence], result.Report)
		jsonPath := filepath.Join(outputDir, slug+".json")
		mdPath := filepath.Join(outputDir, slug+".md")

		if err := renderer.RenderJSON(result.Report, jsonPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write JSON: %v\n", result.Sentence, err)
			continue
		}
		if err := renderer.RenderMarkdown(result.Report, mdPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write Markdown: %v\n", result.Sentence, err)
			continue
		}

		fmt.Fprintf(os.Stderr, "✓ %s (%s)\n", result.Sentence, label)
	}

	// Summary
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:      %d sentences\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:    %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:   %d\n", failureCount)
	for _, cat := range model.Categories() {
		if count := tally[cat]; count > 0 {
			fmt.Fprintf(os.Stderr, "  %-40s %d\n", content.FormatDisplay(cat, true), count)
		}
	}
	if unresolvedCount > 0 {
		fmt.Fprintf(os.Stderr, "  %-40s %d\n", "unresolved", unresolvedCount)
	}
	fmt.Fprintf(os.Stderr, "  Output:     %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}

// batchSlug names a report pair by input position, with the predicate
// appended when one was extracted
func batchSlug(position int, report *model.SentenceReport) string {
	if report.Parts.Predicate != "" {
		return fmt.Sprintf("%03d-%s", position, report.Parts.Predicate)
	}
	return fmt.Sprintf("%03d", position)
}
