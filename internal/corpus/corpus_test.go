package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ppiankov/duilens/internal/model"
)

const testCorpus = `{
  "说": {
    "total": 1000,
    "types": {"DA": 900, "ABT": 100},
    "distribution": {"DA": 90.0, "ABT": 10.0},
    "dominant_type": "DA",
    "confidence": 0.9
  },
  "喊": {
    "total": 500,
    "types": {"DA": 450, "DISP": 50},
    "distribution": {"DA": 90.0, "DISP": 10.0},
    "dominant_type": "DA",
    "confidence": 0.85
  },
  "骂": {
    "total": 700,
    "types": {"DA": 616, "DISP": 84},
    "distribution": {"DA": 88.0, "DISP": 12.0},
    "dominant_type": "DA",
    "confidence": 0.88
  },
  "问": {
    "total": 800,
    "types": {"DA": 480, "ABT": 320},
    "distribution": {"DA": 60.0, "ABT": 40.0},
    "dominant_type": "DA",
    "confidence": 0.6
  },
  "担心": {
    "total": 2000,
    "types": {"MS": 2000, "DISP": 0},
    "distribution": {"MS": 100.0, "DISP": 0.0},
    "dominant_type": "MS",
    "confidence": 1.0
  }
}`

func testTable(t *testing.T) *Table {
	t.Helper()
	table, err := LoadBytes([]byte(testCorpus))
	if err != nil {
		t.Fatalf("Expected no error parsing test corpus, got %v", err)
	}
	return table
}

func TestLoadBytes_Lookup(t *testing.T) {
	table := testTable(t)

	if table.Len() != 5 {
		t.Errorf("Expected 5 predicates, got %d", table.Len())
	}

	stat, ok := table.Lookup("说")
	if !ok {
		t.Fatal("Expected 说 to be found")
	}
	if stat.Predicate != "说" {
		t.Errorf("Expected predicate 说, got %q", stat.Predicate)
	}
	if stat.Total != 1000 {
		t.Errorf("Expected total 1000, got %d", stat.Total)
	}
	if stat.DominantType != model.DirectedAction {
		t.Errorf("Expected dominant type DA, got %s", stat.DominantType)
	}
	if stat.Confidence != 0.9 {
		t.Errorf("Expected confidence 0.9, got %f", stat.Confidence)
	}
	if stat.Types[model.DirectedAction] != 900 {
		t.Errorf("Expected 900 DA instances, got %d", stat.Types[model.DirectedAction])
	}

	if _, ok := table.Lookup("飞"); ok {
		t.Error("Expected 飞 to miss")
	}
}

func TestLoadBytes_Invalid(t *testing.T) {
	if _, err := LoadBytes([]byte("{not json")); err == nil {
		t.Error("Expected error for malformed corpus")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.json")
	if err := os.WriteFile(path, []byte(testCorpus), 0o644); err != nil {
		t.Fatalf("Expected no error writing fixture, got %v", err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if table.Len() != 5 {
		t.Errorf("Expected 5 predicates, got %d", table.Len())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing corpus file")
	}
}

func TestResolve(t *testing.T) {
	tmp := t.TempDir()
	existing := filepath.Join(tmp, "corpus.json")
	if err := os.WriteFile(existing, []byte("{}"), 0o644); err != nil {
		t.Fatalf("Expected no error writing fixture, got %v", err)
	}
	missing := filepath.Join(tmp, "missing.json")

	if got := resolveFrom("/explicit/path.json", []string{existing}); got != "/explicit/path.json" {
		t.Errorf("Expected configured path to win, got %q", got)
	}
	if got := resolveFrom("", []string{missing, existing}); got != existing {
		t.Errorf("Expected first existing candidate, got %q", got)
	}
	if got := resolveFrom("", []string{missing}); got != "" {
		t.Errorf("Expected empty result, got %q", got)
	}
}

func TestTable_Similar(t *testing.T) {
	table := testTable(t)

	similar := table.Similar("说", 5)
	if len(similar) != 2 {
		t.Fatalf("Expected 2 similar predicates, got %d: %v", len(similar), similar)
	}
	// 骂 (700) outranks 喊 (500); 问 is outside the confidence
	// window and 担心 has a different dominant type.
	if similar[0].Predicate != "骂" || similar[1].Predicate != "喊" {
		t.Errorf("Expected 骂 then 喊, got %v", similar)
	}
	for _, s := range similar {
		if s.Category != model.DirectedAction {
			t.Errorf("Expected DA for %s, got %s", s.Predicate, s.Category)
		}
	}

	if got := table.Similar("说", 1); len(got) != 1 || got[0].Predicate != "骂" {
		t.Errorf("Expected limit to keep only 骂, got %v", got)
	}
	if got := table.Similar("飞", 5); got != nil {
		t.Errorf("Expected nil for unknown predicate, got %v", got)
	}
	if got := table.Similar("说", 0); got != nil {
		t.Errorf("Expected nil for zero limit, got %v", got)
	}
}

func TestTable_DistributionText(t *testing.T) {
	table := testTable(t)

	want := "**说** in the BCC corpus (1,000 instances):\n" +
		"- **Directed-Action** (指向动作): 90.0% (900 instances)\n" +
		"- **Aboutness** (论题关涉): 10.0% (100 instances)"
	if got := table.DistributionText("说"); got != want {
		t.Errorf("Expected:\n%s\ngot:\n%s", want, got)
	}

	// Zero shares are skipped.
	if got := table.DistributionText("担心"); strings.Contains(got, "Disposition") {
		t.Errorf("Expected zero share to be skipped, got:\n%s", got)
	}

	if got := table.DistributionText("飞"); got != "'飞' was not found in the corpus." {
		t.Errorf("Expected miss text, got %q", got)
	}
}

func TestBuilder_Build(t *testing.T) {
	b := NewBuilder()
	b.AddCount("说", model.DirectedAction, 90)
	b.AddCount("说", model.Aboutness, 10)
	b.Add("担心", model.MentalState)

	// Ignored inputs.
	b.AddCount("", model.DirectedAction, 1)
	b.AddCount("坏", "XX", 5)
	b.AddCount("坏", model.Disposition, 0)

	table := b.Build()
	if table.Len() != 2 {
		t.Fatalf("Expected 2 predicates, got %d", table.Len())
	}

	stat, ok := table.Lookup("说")
	if !ok {
		t.Fatal("Expected 说 to be found")
	}
	if stat.Total != 100 {
		t.Errorf("Expected total 100, got %d", stat.Total)
	}
	if stat.DominantType != model.DirectedAction {
		t.Errorf("Expected dominant DA, got %s", stat.DominantType)
	}
	if stat.Confidence != 0.9 {
		t.Errorf("Expected confidence 0.9, got %f", stat.Confidence)
	}
	if stat.Distribution[model.Aboutness] != 10.0 {
		t.Errorf("Expected 10%% ABT, got %f", stat.Distribution[model.Aboutness])
	}
}

func TestBuilder_DominanceTie(t *testing.T) {
	b := NewBuilder()
	b.AddCount("评论", model.Aboutness, 5)
	b.AddCount("评论", model.DirectedAction, 5)

	stat, ok := b.Build().Lookup("评论")
	if !ok {
		t.Fatal("Expected 评论 to be found")
	}
	// DA precedes ABT in canonical order.
	if stat.DominantType != model.DirectedAction {
		t.Errorf("Expected tie to resolve to DA, got %s", stat.DominantType)
	}
	if stat.Confidence != 0.5 {
		t.Errorf("Expected confidence 0.5, got %f", stat.Confidence)
	}
}

func TestBuilder_JSONRoundtrip(t *testing.T) {
	b := NewBuilder()
	b.AddCount("进行", model.ScopedIntervention, 1400)
	b.AddCount("进行", model.Aboutness, 600)

	data, err := b.Build().JSON()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if strings.Contains(string(data), `"predicate"`) {
		t.Error("Expected no inner predicate key in corpus JSON")
	}

	table, err := LoadBytes(data)
	if err != nil {
		t.Fatalf("Expected no error reloading, got %v", err)
	}
	stat, ok := table.Lookup("进行")
	if !ok {
		t.Fatal("Expected 进行 to be found after reload")
	}
	if stat.Total != 2000 || stat.DominantType != model.ScopedIntervention {
		t.Errorf("Expected total 2000 dominant SI, got %d %s", stat.Total, stat.DominantType)
	}
}

