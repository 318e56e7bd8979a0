package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/duilens/internal/model"
	"github.com/ppiankov/duilens/internal/pipeline"
)

var (
	scanJSON    string
	scanMD      string
	timeout     time.Duration
	userAgent   string
	maxBytes    int64
	insecureTLS bool
	httpProxy   string
	httpsProxy  string
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <url>",
	Short: "Scan a web page for 对-constructions",
	Long: `Scan fetches a web page, extracts every sentence containing 对 and
classifies each one:
- Fetch the page (robots.txt and per-domain rate limits respected)
- Strip markup and split the visible text into sentences
- Keep sentences containing 对 (5 to 200 characters)
- Analyze each sentence and tally the categories

Example:
  duilens scan https://zh.wikipedia.org/wiki/汉语语法
  duilens scan https://example.com --json scan.json --md scan.md
  duilens scan https://example.com --no-cache --timeout 1m`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	// Output flags
	scanCmd.Flags().StringVar(&scanJSON, "json", "report.json", "output JSON path")
	scanCmd.Flags().StringVar(&scanMD, "md", "", "output Markdown path (optional)")
	scanCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// HTTP flags
	scanCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall scan timeout")
	scanCmd.Flags().StringVar(&userAgent, "ua", "DuiLens/0.1 (+https://github.com/ppiankov/duilens)", "HTTP User-Agent")
	scanCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	scanCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification (use for self-signed certs)")
	scanCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	scanCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")
	scanCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")

	// Pipeline flags
	scanCmd.Flags().StringVar(&corpusPath, "corpus", "", "corpus table path (default: search standard locations)")
	scanCmd.Flags().StringVar(&segStrategy, "segmenter", "", "segmenter strategy (lexicon, sego)")
	scanCmd.Flags().StringVar(&segDict, "dict", "", "sego user dictionary path")

	// LLM flags
	scanCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM tutor note generation")
	scanCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	scanCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runScan(cmd *cobra.Command, args []string) error {
	url := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Scanning: %s\n", url)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	// Build configuration from flags
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.InsecureTLS = insecureTLS
	cfg.HTTP.HTTPProxy = httpProxy
	cfg.HTTP.HTTPSProxy = httpsProxy
	applyCommonFlags(cfg)

	if err := configureLLM(cfg); err != nil {
		return err
	}

	a, err := pipeline.NewAnalyzer(cfg)
	if err != nil {
		return fmt.Errorf("create analyzer: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "⚙️  Fetching HTML...\n")
	}

	report, err := a.Scan(ctx, url)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Found %d sentences with 对\n", report.SentencesFound)
		fmt.Fprintf(os.Stderr, "✓ Analyzed %d sentences\n", len(report.Reports))
		if report.Unresolved > 0 {
			fmt.Fprintf(os.Stderr, "✓ %d sentences left unresolved\n", report.Unresolved)
		}
		fmt.Fprintln(os.Stderr)
	}

	if err := a.RenderScan(report, scanJSON, scanMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}
