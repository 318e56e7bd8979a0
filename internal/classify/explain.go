package classify

import (
	"github.com/ppiankov/duilens/internal/model"
)

// Explanation is the learner-facing account of a category: what the
// construction does, the role Y plays, the diagnostic question to ask,
// and glossed examples.
type Explanation struct {
	Description string   `json:"description"`
	YRole       string   `json:"y_role"`
	Test        string   `json:"test"`
	Examples    []string `json:"examples"`
}

var explanations = map[model.Category]Explanation{
	model.DirectedAction: {
		Description: "The speaker/actor directs an action TO a person or recipient.",
		YRole:       "Y is the recipient who receives the action.",
		Test:        "Ask: Is X doing something TO/AT Y?",
		Examples:    []string{"对他说 (speak TO him)", "对观众鞠躬 (bow TO the audience)"},
	},
	model.ScopedIntervention: {
		Description: "X performs a bounded intervention ON Y. Y is affected or changed.",
		YRole:       "Y is the scope or patient that undergoes change.",
		Test:        "Ask: Is X intervening ON Y? Is Y affected?",
		Examples:    []string{"对企业进行检查 (conduct inspection ON enterprises)", "对他进行治疗 (provide treatment TO him)"},
	},
	model.MentalState: {
		Description: "Y triggers an internal psychological state IN X.",
		YRole:       "Y is the stimulus that causes X's mental/emotional state.",
		Test:        "Ask: Does Y trigger a feeling/thought IN X?",
		Examples:    []string{"对此担心 (worried ABOUT this)", "对她有好感 (have good feelings TOWARD her)"},
	},
	model.Aboutness: {
		Description: "X produces discourse (speech, writing, analysis) ABOUT Y.",
		YRole:       "Y is the topic of X's discourse. Y is not affected.",
		Test:        "Ask: Does X produce observable output ABOUT Y?",
		Examples:    []string{"对此发表意见 (express opinions ABOUT this)", "对问题进行分析 (analyse the problem)"},
	},
	model.Evaluation: {
		Description: "X is evaluated as good/bad/useful/harmful FOR Y.",
		YRole:       "Y is the beneficiary or perspective from which X is judged.",
		Test:        "Ask: Is X good/bad/useful FOR Y?",
		Examples:    []string{"对健康有益 (beneficial FOR health)", "对学生重要 (important FOR students)"},
	},
	model.Disposition: {
		Description: "X exhibits a behavioural manner or social attitude TOWARD Y.",
		YRole:       "Y experiences X's manner of treatment.",
		Test:        "Ask: How is X treating/behaving toward Y?",
		Examples:    []string{"对他热情 (warm TOWARD him)", "对客人客气 (polite TOWARD guests)"},
	},
}

// ExplanationFor returns the explanation for a category.
func ExplanationFor(cat model.Category) (Explanation, bool) {
	exp, ok := explanations[cat]
	return exp, ok
}
