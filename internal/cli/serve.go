package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/duilens/internal/model"
	"github.com/ppiankov/duilens/internal/pipeline"
	"github.com/ppiankov/duilens/internal/server"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analyzer as a JSON HTTP API",
	Long: `Serve starts a CORS-enabled JSON API over the analyzer:

  POST /api/analyze            body: {"sentence":"..."}
  GET  /api/lookup/{predicate} optional ?limit=N
  GET  /api/categories
  GET  /api/health

Example:
  duilens serve
  duilens serve --addr :9090 --corpus ./corpus.json`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&corpusPath, "corpus", "", "corpus table path (default: search standard locations)")
	serveCmd.Flags().StringVar(&segStrategy, "segmenter", "", "segmenter strategy (lexicon, sego)")
	serveCmd.Flags().StringVar(&segDict, "dict", "", "sego user dictionary path")
	serveCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result cache")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := model.DefaultConfig()
	applyCommonFlags(cfg)

	a, err := pipeline.NewAnalyzer(cfg)
	if err != nil {
		return fmt.Errorf("create analyzer: %w", err)
	}

	srv := server.New(a, serveAddr)

	fmt.Fprintf(os.Stderr, "DuiLens API listening on %s\n", serveAddr)
	fmt.Fprintf(os.Stderr, "  POST /api/analyze\n")
	fmt.Fprintf(os.Stderr, "  GET  /api/lookup/{predicate}\n")
	fmt.Fprintf(os.Stderr, "  GET  /api/categories\n")
	fmt.Fprintf(os.Stderr, "  GET  /api/health\n")

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
