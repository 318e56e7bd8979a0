package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/duilens/internal/content"
	"github.com/ppiankov/duilens/internal/model"
	"github.com/ppiankov/duilens/internal/util"
)

const banner = "═══════════════════════════════════════════════════════════"

// Renderer writes analysis results as JSON files, Markdown documents and
// terminal summaries.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes v as indented JSON to path
func (r *Renderer) RenderJSON(v any, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderMarkdown writes a sentence report as a Markdown document
func (r *Renderer) RenderMarkdown(report *model.SentenceReport, path string) error {
	md := r.SentenceMarkdown(report)
	if err := os.WriteFile(path, []byte(md), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderScanMarkdown writes a scan report as a Markdown document
func (r *Renderer) RenderScanMarkdown(report *model.ScanReport, path string) error {
	md := r.ScanMarkdown(report)
	if err := os.WriteFile(path, []byte(md), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderTutorMarkdown writes pre-rendered tutor note Markdown to its side
// file. The note never lives inside the analysis document.
func (r *Renderer) RenderTutorMarkdown(markdown string, path string) error {
	if err := os.WriteFile(path, []byte(markdown), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// SentenceMarkdown builds the Markdown document for one analyzed sentence.
func (r *Renderer) SentenceMarkdown(report *model.SentenceReport) string {
	var md strings.Builder

	md.WriteString("# 对-Construction Analysis\n\n")
	md.WriteString(fmt.Sprintf("**Sentence:** %s\n", report.Sentence))
	md.WriteString(fmt.Sprintf("**Analyzed:** %s\n", report.AnalyzedAt.Format("2006-01-02T15:04:05Z07:00")))
	md.WriteString(fmt.Sprintf("**Segmenter:** %s\n\n", report.Segmenter))

	md.WriteString("## Parts\n\n")
	md.WriteString(fmt.Sprintf("- **Before 对 (X):** %s\n", partOrNone(report.Parts.BeforeDui)))
	yPhrase := partOrNone(report.Parts.YPhrase)
	if report.Parts.YPhrase != "" && report.Animacy != "" {
		yPhrase = fmt.Sprintf("%s (animacy: %s)", report.Parts.YPhrase, report.Animacy)
	}
	md.WriteString(fmt.Sprintf("- **Y-phrase (target):** %s\n", yPhrase))
	md.WriteString(fmt.Sprintf("- **Predicate:** %s\n", partOrNone(report.Parts.Predicate)))
	md.WriteString(fmt.Sprintf("- **After predicate:** %s\n\n", partOrNone(report.Parts.AfterPredicate)))

	md.WriteString("## Classification\n\n")
	if report.Result.Unresolved {
		md.WriteString("**Category:** unresolved\n\n")
		md.WriteString("No override rule matched and the predicate is not in the corpus. ")
		md.WriteString("Use the diagnostic questions from `duilens explain` to decide from context.\n")
	} else {
		md.WriteString(fmt.Sprintf("**Category:** %s\n", content.FormatDisplay(report.Result.Category, true)))
		if report.Result.Reason != "" {
			md.WriteString(fmt.Sprintf("**Reason:** %s\n", report.Result.Reason))
		}
	}

	if len(report.Result.LearningNotes) > 0 {
		md.WriteString("\n**Learning notes:**\n\n")
		for _, note := range report.Result.LearningNotes {
			md.WriteString(fmt.Sprintf("- %s\n", note))
		}
	}

	if report.DistributionMD != "" || len(report.Similar) > 0 {
		md.WriteString("\n## Corpus\n\n")
		if report.DistributionMD != "" {
			md.WriteString(report.DistributionMD)
			md.WriteString("\n")
		}
		if len(report.Similar) > 0 {
			md.WriteString("\n**Similar predicates:**\n\n")
			for _, sim := range report.Similar {
				md.WriteString(fmt.Sprintf("- **%s** (%s, %s instances)\n",
					sim.Predicate, sim.Category.Name(), util.Commas(sim.Total)))
			}
		}
	}

	if r.includeFooter {
		md.WriteString("\n---\n*Generated by duilens*\n")
	}

	return md.String()
}

// ScanMarkdown builds the Markdown document for a page scan.
func (r *Renderer) ScanMarkdown(report *model.ScanReport) string {
	var md strings.Builder

	md.WriteString(fmt.Sprintf("# 对-Construction Scan: %s\n\n", extractSubject(report.SourceURL)))
	md.WriteString(fmt.Sprintf("**Source:** %s\n", report.SourceURL))
	md.WriteString(fmt.Sprintf("**Fetched:** %s\n", report.FetchedAt.Format("2006-01-02T15:04:05Z07:00")))
	md.WriteString(fmt.Sprintf("**Sentences with 对:** %d\n\n", report.SentencesFound))

	md.WriteString("## Category tally\n\n")
	md.WriteString("| Category | Count |\n")
	md.WriteString("| --- | --- |\n")
	for _, cat := range model.Categories() {
		if count := report.Tally[cat]; count > 0 {
			md.WriteString(fmt.Sprintf("| %s | %d |\n", content.FormatDisplay(cat, true), count))
		}
	}
	if report.Unresolved > 0 {
		md.WriteString(fmt.Sprintf("| unresolved | %d |\n", report.Unresolved))
	}

	if len(report.Reports) > 0 {
		md.WriteString("\n## Sentences\n\n")
		for i, sr := range report.Reports {
			md.WriteString(fmt.Sprintf("### %d. %s\n\n", i+1, sr.Sentence))
			md.WriteString(fmt.Sprintf("- **Parts:** X=%s | Y=%s | predicate=%s\n",
				partOrNone(sr.Parts.BeforeDui), partOrNone(sr.Parts.YPhrase), partOrNone(sr.Parts.Predicate)))
			if sr.Result.Unresolved {
				md.WriteString("- **Category:** unresolved\n")
			} else {
				md.WriteString(fmt.Sprintf("- **Category:** %s\n", content.FormatDisplay(sr.Result.Category, true)))
				if sr.Result.Reason != "" {
					md.WriteString(fmt.Sprintf("- **Reason:** %s\n", sr.Result.Reason))
				}
			}
			md.WriteString("\n")
		}
	}

	if r.includeFooter {
		md.WriteString("---\n*Generated by duilens*\n")
	}

	return md.String()
}

// RenderSummary prints a terminal summary of one sentence analysis
func (r *Renderer) RenderSummary(report *model.SentenceReport) {
	fmt.Println(banner)
	fmt.Println("  对-CONSTRUCTION ANALYSIS")
	fmt.Println(banner)
	fmt.Println()

	fmt.Printf("Sentence:   %s\n", report.Sentence)
	fmt.Printf("Parts:      X=%s | Y=%s | predicate=%s\n",
		partOrNone(report.Parts.BeforeDui), partOrNone(report.Parts.YPhrase), partOrNone(report.Parts.Predicate))

	if report.Result.Unresolved {
		fmt.Println("Category:   unresolved (no rule matched, predicate not in corpus)")
	} else {
		fmt.Printf("Category:   %s\n", content.FormatDisplay(report.Result.Category, true))
		if report.Result.Reason != "" {
			fmt.Printf("Reason:     %s\n", report.Result.Reason)
		}
	}

	if report.Tutor != nil && report.Tutor.Enabled {
		fmt.Printf("Tutor:      %s note attached\n", report.Tutor.Provider)
	}
	fmt.Println()
}

// RenderScanSummary prints a terminal summary of a page scan
func (r *Renderer) RenderScanSummary(report *model.ScanReport) {
	fmt.Println(banner)
	fmt.Println("  对-CONSTRUCTION SCAN")
	fmt.Println(banner)
	fmt.Println()

	fmt.Printf("Source:     %s\n", report.SourceURL)
	fmt.Printf("Sentences:  %d with 对\n", report.SentencesFound)
	fmt.Printf("Analyzed:   %d\n", len(report.Reports))

	for _, cat := range model.Categories() {
		if count := report.Tally[cat]; count > 0 {
			fmt.Printf("  %-40s %d\n", content.FormatDisplay(cat, true), count)
		}
	}
	if report.Unresolved > 0 {
		fmt.Printf("  %-40s %d\n", "unresolved", report.Unresolved)
	}
	fmt.Println()
}

func partOrNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
