package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/duilens/internal/content"
	"github.com/ppiankov/duilens/internal/model"
	"github.com/ppiankov/duilens/internal/pipeline"
	"github.com/ppiankov/duilens/internal/util"
)

var lookupLimit int

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup <predicate>",
	Short: "Look up a predicate in the corpus table",
	Long: `Lookup shows how a predicate distributes across the six 对-construction
categories in the reference corpus, together with predicates that behave
similarly (same dominant category, comparable confidence).

Example:
  duilens lookup 担心
  duilens lookup 说 --limit 3
  duilens lookup 满意 --corpus ./corpus.json`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)

	lookupCmd.Flags().IntVar(&lookupLimit, "limit", 8, "max similar predicates to show")
	lookupCmd.Flags().StringVar(&corpusPath, "corpus", "", "corpus table path (default: search standard locations)")
}

func runLookup(cmd *cobra.Command, args []string) error {
	predicate := args[0]

	cfg := model.DefaultConfig()
	if corpusPath != "" {
		cfg.Corpus.Path = corpusPath
	}
	// Lookup never touches the network or the result cache
	cfg.Cache.Enabled = false

	a, err := pipeline.NewAnalyzer(cfg)
	if err != nil {
		return fmt.Errorf("create analyzer: %w", err)
	}

	stat, ok := a.Table().Lookup(predicate)
	if !ok {
		return fmt.Errorf("predicate %q not found in corpus (%d predicates loaded)", predicate, a.Table().Len())
	}

	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println("  CORPUS LOOKUP")
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("Predicate:   %s\n", predicate)
	fmt.Printf("Instances:   %s\n", util.Commas(stat.Total))
	fmt.Printf("Dominant:    %s (%.1f%% of instances)\n",
		content.FormatDisplay(stat.DominantType, true), stat.Confidence*100)
	fmt.Println()

	fmt.Println(a.Table().DistributionText(predicate))
	fmt.Println()

	if similar := a.Table().Similar(predicate, lookupLimit); len(similar) > 0 {
		fmt.Println("Similar predicates:")
		for _, sim := range similar {
			fmt.Printf("  %s (%s, %s instances)\n", sim.Predicate, sim.Category.Name(), util.Commas(sim.Total))
		}
		fmt.Println()
	}

	return nil
}
