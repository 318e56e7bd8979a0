package lexicon

import (
	"testing"
	"unicode/utf8"

	"github.com/ppiankov/duilens/internal/model"
)

func TestCategories(t *testing.T) {
	l := New()

	tests := []struct {
		word string
		want model.Category
	}{
		{"担心", model.MentalState},
		{"感兴趣", model.MentalState},
		{"发表", model.Aboutness},
		{"进行", model.ScopedIntervention},
		{"说", model.DirectedAction},
		{"热情", model.Disposition},
		{"言听计从", model.Disposition},
		{"有益", model.Evaluation},
	}

	for _, tt := range tests {
		cats := l.Categories(tt.word)
		if len(cats) != 1 {
			t.Errorf("Expected 1 category for %q, got %d", tt.word, len(cats))
			continue
		}
		if cats[0] != tt.want {
			t.Errorf("Expected %s for %q, got %s", tt.want, tt.word, cats[0])
		}
	}
}

func TestIsPredicate(t *testing.T) {
	l := New()

	if !l.IsPredicate("喜欢") {
		t.Error("Expected 喜欢 to be a predicate")
	}
	if l.IsPredicate("问题") {
		t.Error("Expected 问题 not to be a predicate")
	}
	if l.Categories("问题") != nil {
		t.Error("Expected nil categories for unknown word")
	}
}

func TestMembershipRoles(t *testing.T) {
	l := New()

	if !l.IsCommonNoun("问题") {
		t.Error("Expected 问题 to be a common noun")
	}
	if !l.IsCommonNoun("意见") || !l.IsComplement("意见") {
		t.Error("Expected 意见 to be both a common noun and a complement")
	}
	if !l.IsDegreeAdverb("很") || !l.IsDegreeAdverb("越来越") {
		t.Error("Expected 很 and 越来越 to be degree adverbs")
	}
	if !l.IsNegation("不") || !l.IsNegation("没有") {
		t.Error("Expected 不 and 没有 to be negation words")
	}

	// 好 plays two roles: degree adverb (好漂亮) and disposition
	// predicate (对他好).
	if !l.IsDegreeAdverb("好") || !l.IsPredicate("好") {
		t.Error("Expected 好 to be both a degree adverb and a predicate")
	}
}

func TestPredicatesByLength(t *testing.T) {
	l := New()

	sorted := l.PredicatesByLength()
	if len(sorted) == 0 {
		t.Fatal("Expected non-empty predicate list")
	}
	if got := utf8.RuneCountInString(sorted[0]); got != 4 {
		t.Errorf("Expected longest predicate to have 4 runes, got %d (%q)", got, sorted[0])
	}
	for i := 1; i < len(sorted); i++ {
		prev := utf8.RuneCountInString(sorted[i-1])
		cur := utf8.RuneCountInString(sorted[i])
		if cur > prev {
			t.Fatalf("Expected non-increasing rune lengths, got %q (%d) after %q (%d)",
				sorted[i], cur, sorted[i-1], prev)
		}
	}
}

func TestSegmentEntries(t *testing.T) {
	l := New()

	entries := make(map[string]bool)
	for _, word := range l.SegmentEntries() {
		entries[word] = true
	}

	for _, want := range []string{"担心", "很", "没有", "越来越"} {
		if !entries[want] {
			t.Errorf("Expected segment entries to contain %q", want)
		}
	}
	// 观点 is a complement only and must not drive segmentation.
	if entries["观点"] {
		t.Error("Expected segment entries not to contain 观点")
	}
}

func TestGuessAnimacy(t *testing.T) {
	l := New()

	tests := []struct {
		yPhrase string
		want    model.Animacy
	}{
		{"他", model.AnimacyAnimate},
		{"老师", model.AnimacyAnimate},
		{"这件事", model.AnimacyInanimate},
		{"经济", model.AnimacyInanimate},
		{"全球化", model.AnimacyUnknown},
		// Animate markers win when both kinds appear.
		{"病人的情况", model.AnimacyAnimate},
	}

	for _, tt := range tests {
		if got := l.GuessAnimacy(tt.yPhrase); got != tt.want {
			t.Errorf("Expected %s for %q, got %s", tt.want, tt.yPhrase, got)
		}
	}
}
