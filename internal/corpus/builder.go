package corpus

import (
	"encoding/json"

	"github.com/ppiankov/duilens/internal/model"
)

// Builder aggregates labelled 对-construction instances into a Table.
type Builder struct {
	counts map[string]map[model.Category]int
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{counts: make(map[string]map[model.Category]int)}
}

// Add records one instance of predicate under cat.
func (b *Builder) Add(predicate string, cat model.Category) {
	b.AddCount(predicate, cat, 1)
}

// AddCount records n instances of predicate under cat. Unknown
// categories and non-positive counts are ignored.
func (b *Builder) AddCount(predicate string, cat model.Category, n int) {
	if predicate == "" || n <= 0 || !cat.IsValid() {
		return
	}
	byCat := b.counts[predicate]
	if byCat == nil {
		byCat = make(map[model.Category]int)
		b.counts[predicate] = byCat
	}
	byCat[cat] += n
}

// Build computes per-predicate totals, percentage distributions,
// dominant types and confidence. Dominance ties go to the earlier
// category in canonical order.
func (b *Builder) Build() *Table {
	stats := make(map[string]model.PredicateStat, len(b.counts))

	for predicate, byCat := range b.counts {
		total := 0
		for _, n := range byCat {
			total += n
		}
		if total == 0 {
			continue
		}

		stat := model.PredicateStat{
			Predicate:    predicate,
			Total:        total,
			Types:        make(map[model.Category]int, len(byCat)),
			Distribution: make(map[model.Category]float64, len(byCat)),
		}

		dominantCount := -1
		for _, cat := range model.Categories() {
			n, ok := byCat[cat]
			if !ok {
				continue
			}
			stat.Types[cat] = n
			stat.Distribution[cat] = float64(n) / float64(total) * 100
			if n > dominantCount {
				dominantCount = n
				stat.DominantType = cat
			}
		}

		stat.Confidence = float64(dominantCount) / float64(total)
		stats[predicate] = stat
	}

	return &Table{stats: stats}
}

// JSON serializes the table in the corpus file format. The predicate
// appears only as the top-level key, as in the published corpus file.
func (t *Table) JSON() ([]byte, error) {
	out := make(map[string]model.PredicateStat, len(t.stats))
	for predicate, stat := range t.stats {
		stat.Predicate = ""
		out[predicate] = stat
	}
	return json.MarshalIndent(out, "", "  ")
}
