// Package corpus provides lookups over aggregated BCC corpus counts
// of 对-construction predicates.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ppiankov/duilens/internal/model"
	"github.com/ppiankov/duilens/internal/util"
)

// Table is an immutable predicate statistics table. A table with no
// entries is valid; every lookup misses.
type Table struct {
	stats map[string]model.PredicateStat
}

// New returns an empty table.
func New() *Table {
	return &Table{stats: make(map[string]model.PredicateStat)}
}

// Load reads a corpus table from a JSON file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return LoadBytes(data)
}

// LoadBytes parses corpus JSON of the form
// {"predicate": {"total": N, "types": {...}, "distribution": {...},
// "dominant_type": "...", "confidence": C}, ...}.
func LoadBytes(data []byte) (*Table, error) {
	stats := make(map[string]model.PredicateStat)
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}

	for predicate, stat := range stats {
		stat.Predicate = predicate
		stats[predicate] = stat
	}

	return &Table{stats: stats}, nil
}

// Resolve picks the corpus file to load: the configured path when
// set, otherwise the first default location that exists. Returns ""
// when nothing is found.
func Resolve(configured string) string {
	return resolveFrom(configured, model.DefaultCorpusPaths())
}

func resolveFrom(configured string, candidates []string) string {
	if configured != "" {
		return configured
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Len returns the number of predicates in the table.
func (t *Table) Len() int {
	return len(t.stats)
}

// Lookup returns the statistics for a predicate.
func (t *Table) Lookup(predicate string) (model.PredicateStat, bool) {
	stat, ok := t.stats[predicate]
	return stat, ok
}

// Similar returns up to limit predicates sharing the dominant type of
// predicate at a comparable confidence level (within 0.2), most
// frequent first.
func (t *Table) Similar(predicate string, limit int) []model.SimilarPredicate {
	target, ok := t.stats[predicate]
	if !ok || limit <= 0 {
		return nil
	}

	var similar []model.SimilarPredicate
	for pred, stat := range t.stats {
		if pred == predicate {
			continue
		}
		if stat.DominantType != target.DominantType {
			continue
		}
		if diff := stat.Confidence - target.Confidence; diff < -0.2 || diff > 0.2 {
			continue
		}
		similar = append(similar, model.SimilarPredicate{
			Predicate: pred,
			Category:  stat.DominantType,
			Total:     stat.Total,
		})
	}

	sort.Slice(similar, func(i, j int) bool {
		if similar[i].Total != similar[j].Total {
			return similar[i].Total > similar[j].Total
		}
		return similar[i].Predicate < similar[j].Predicate
	})

	if len(similar) > limit {
		similar = similar[:limit]
	}
	return similar
}

// DistributionText renders the corpus distribution of a predicate as
// Markdown, categories sorted by share, zero shares skipped.
func (t *Table) DistributionText(predicate string) string {
	stat, ok := t.stats[predicate]
	if !ok {
		return fmt.Sprintf("'%s' was not found in the corpus.", predicate)
	}

	lines := []string{
		fmt.Sprintf("**%s** in the BCC corpus (%s instances):", predicate, util.Commas(stat.Total)),
	}

	categories := make([]model.Category, 0, len(stat.Distribution))
	for cat := range stat.Distribution {
		categories = append(categories, cat)
	}
	sort.SliceStable(categories, func(i, j int) bool {
		pi, pj := stat.Distribution[categories[i]], stat.Distribution[categories[j]]
		if pi != pj {
			return pi > pj
		}
		return canonicalIndex(categories[i]) < canonicalIndex(categories[j])
	})

	for _, cat := range categories {
		pct := stat.Distribution[cat]
		if pct <= 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("- **%s** (%s): %.1f%% (%s instances)",
			cat.Name(), cat.ChineseName(), pct, util.Commas(stat.Types[cat])))
	}

	return strings.Join(lines, "\n")
}

func canonicalIndex(c model.Category) int {
	for i, cat := range model.Categories() {
		if cat == c {
			return i
		}
	}
	return len(model.Categories())
}
