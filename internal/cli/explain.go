package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/duilens/internal/content"
	"github.com/ppiankov/duilens/internal/model"
)

// explainCmd represents the explain command
var explainCmd = &cobra.Command{
	Use:   "explain [category]",
	Short: "Explain the six 对-construction categories",
	Long: `Explain prints the learner reference for the 对-construction:
- Without arguments: all six category cards, the side-by-side comparison
  and the key distinctions learners confuse most
- With a category (code, name or 中文名): the full card for that category

Example:
  duilens explain
  duilens explain MS
  duilens explain mental-state
  duilens explain 心理状态`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		cat, err := parseCategoryArg(args[0])
		if err != nil {
			return err
		}
		printFullCard(cat)
		return nil
	}

	printOverview()
	return nil
}

// parseCategoryArg resolves a code, English name or Chinese name
func parseCategoryArg(arg string) (model.Category, error) {
	for _, cat := range model.Categories() {
		if strings.EqualFold(arg, string(cat)) || strings.EqualFold(arg, cat.Name()) || arg == cat.ChineseName() {
			return cat, nil
		}
	}
	return "", fmt.Errorf("unknown category %q (valid: DA, SI, MS, ABT, EVAL, DISP)", arg)
}

func printOverview() {
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println("  THE SIX FACES OF 对")
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println()

	for _, cat := range model.Categories() {
		card, ok := content.CardFor(cat)
		if !ok {
			continue
		}
		fmt.Printf("%s %s (%s) [%s]\n", card.Emoji, card.FullName, card.ChineseName, card.Code)
		fmt.Printf("   %s\n", card.ShortDescription)
		if len(card.Examples) > 0 {
			fmt.Printf("   e.g. %s (%s)\n", card.Examples[0].Chinese, card.Examples[0].English)
		}
		fmt.Println()
	}

	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println("  SIDE-BY-SIDE COMPARISON")
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println()

	for _, row := range content.ComparisonTable() {
		fmt.Printf("%s (%s)\n", row.Type, row.Chinese)
		fmt.Printf("  Key feature:  %s\n", row.KeyFeature)
		fmt.Printf("  Y role:       %s\n", row.YRole)
		fmt.Printf("  X role:       %s\n", row.XRole)
		fmt.Printf("  Y affected:   %s\n", row.YAffected)
		fmt.Println()
	}

	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println("  KEY DISTINCTIONS")
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println()

	for _, d := range content.Distinctions() {
		fmt.Printf("▸ %s\n\n", d.Title)
		fmt.Println(d.Description)
		fmt.Println()
	}

	fmt.Println("Use 'duilens explain <category>' for the full card.")
	fmt.Println()
}

func printFullCard(cat model.Category) {
	card, ok := content.CardFor(cat)
	if !ok {
		fmt.Printf("No reference card for %s\n", cat)
		return
	}

	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Printf("  %s %s (%s) [%s]\n", card.Emoji, card.FullName, card.ChineseName, card.Code)
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println(card.Description)
	fmt.Println()

	if len(card.Examples) > 0 {
		fmt.Println("Examples:")
		for _, ex := range card.Examples {
			fmt.Printf("  %s\n", ex.Chinese)
			fmt.Printf("    %s\n", ex.English)
		}
		fmt.Println()
	}

	if len(card.TypicalVerbs) > 0 {
		fmt.Printf("Typical predicates: %s\n", strings.Join(card.TypicalVerbs, "、"))
		fmt.Println()
	}
}
