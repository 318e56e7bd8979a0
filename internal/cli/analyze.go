package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/duilens/internal/model"
	"github.com/ppiankov/duilens/internal/pipeline"
)

var (
	analyzeJSON string
	analyzeMD   string

	// Shared by analyze, scan and batch
	corpusPath  string
	segStrategy string
	segDict     string
	noCache     bool
	noFooter    bool
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <sentence>",
	Short: "Analyze a single Chinese sentence containing 对",
	Long: `Analyze splits a sentence around 对 and classifies the construction:
- Segment the sentence and locate 对
- Extract X (before 对), the Y-phrase (target) and the predicate
- Classify by override rule or corpus majority
- Report the corpus distribution and similar predicates

Example:
  duilens analyze 我对这件事很担心
  duilens analyze 他对我说了几句话 --json out.json --md out.md
  duilens analyze 我对他很满意 --llm --llm-provider openai`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&analyzeJSON, "json", "analysis.json", "output JSON path")
	analyzeCmd.Flags().StringVar(&analyzeMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// Pipeline flags
	analyzeCmd.Flags().StringVar(&corpusPath, "corpus", "", "corpus table path (default: search standard locations)")
	analyzeCmd.Flags().StringVar(&segStrategy, "segmenter", "", "segmenter strategy (lexicon, sego)")
	analyzeCmd.Flags().StringVar(&segDict, "dict", "", "sego user dictionary path")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result cache (force fresh analysis)")

	// LLM flags
	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM tutor note generation")
	analyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	sentence := args[0]

	cfg := model.DefaultConfig()
	applyCommonFlags(cfg)
	if err := configureLLM(cfg); err != nil {
		return err
	}

	a, err := pipeline.NewAnalyzer(cfg)
	if err != nil {
		return fmt.Errorf("create analyzer: %w", err)
	}

	report, err := a.Analyze(context.Background(), sentence)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Segmented with %s\n", report.Segmenter)
		fmt.Fprintf(os.Stderr, "✓ Extracted predicate: %s\n", report.Parts.Predicate)
		if report.Tutor != nil && report.Tutor.Enabled {
			fmt.Fprintf(os.Stderr, "✓ Generated tutor note using %s/%s\n", report.Tutor.Provider, report.Tutor.Model)
		}
		fmt.Fprintln(os.Stderr)
	}

	if err := a.RenderAnalysis(report, analyzeJSON, analyzeMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// applyCommonFlags folds the shared pipeline flags into a configuration
func applyCommonFlags(cfg *model.Config) {
	if corpusPath != "" {
		cfg.Corpus.Path = corpusPath
	}
	if segStrategy != "" {
		cfg.Segmenter.Strategy = segStrategy
	}
	if segDict != "" {
		cfg.Segmenter.DictPath = segDict
	}
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
}

// configureLLM enables the tutor and pulls the provider API key from the
// environment
func configureLLM(cfg *model.Config) error {
	if !llmEnabled {
		return nil
	}

	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel
	cfg.LLM.StrictGrounding = true // Always enforce

	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	return nil
}
