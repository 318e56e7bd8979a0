package classify

import (
	"sort"

	"github.com/ppiankov/duilens/internal/model"
)

// markerGroup binds a category to the context markers that signal it
// and the phrasing used in the classification reason.
type markerGroup struct {
	category model.Category
	hint     string
	markers  []string
}

// Rule is a contextual override for one predicate. Groups are checked
// in declared order; the first marker found in the context wins.
type Rule struct {
	Predicate   string
	Groups      []markerGroup
	Explanation string

	// DAMarkers document the directed-action contrast for display.
	// They never fire in classification.
	DAMarkers []string
}

const (
	hintAboutness   = "discourse/commentary"
	hintMentalState = "psychological state"
	hintEvaluation  = "evaluation/effect"
)

var rules = map[string]Rule{
	"发表": {
		Predicate: "发表",
		Groups: []markerGroup{
			{model.Aboutness, hintAboutness, []string{"意见", "看法", "观点", "声明", "讲话", "评论"}},
		},
		DAMarkers:   []string{"微笑", "笑容", "善意"},
		Explanation: "发表 is ABT when producing discourse (意见/看法), but DA when directing expressions TO someone.",
	},
	"表示": {
		Predicate: "表示",
		Groups: []markerGroup{
			{model.Aboutness, hintAboutness, []string{"关切", "遗憾", "不满", "欢迎", "支持", "反对"}},
		},
		Explanation: "表示 is typically ABT when expressing stance ABOUT something.",
	},
	"有": {
		Predicate: "有",
		Groups: []markerGroup{
			{model.Aboutness, hintAboutness, []string{"意见", "看法", "研究"}},
			{model.MentalState, hintMentalState, []string{"兴趣", "信心", "把握", "好感", "印象", "了解", "感情"}},
			{model.Evaluation, hintEvaluation, []string{"益", "害", "利", "用", "效", "帮助", "作用", "影响"}},
		},
		Explanation: "有 varies by complement: 有+psychological→MS, 有+effect→EVAL, 有+opinion→ABT.",
	},
}

// RuleFor returns the override rule registered for a predicate.
func RuleFor(predicate string) (Rule, bool) {
	rule, ok := rules[predicate]
	return rule, ok
}

// RulePredicates returns the predicates with override rules, sorted.
func RulePredicates() []string {
	out := make([]string, 0, len(rules))
	for predicate := range rules {
		out = append(out, predicate)
	}
	sort.Strings(out)
	return out
}
