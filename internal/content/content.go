// Package content carries the learner-facing reference material for
// the six 对-construction categories: display cards, the comparison
// table and the key distinctions. The analysis core never reads any
// of this.
package content

import (
	"github.com/ppiankov/duilens/internal/model"
)

// Example pairs a Chinese sentence with its English gloss.
type Example struct {
	Chinese string `json:"chinese"`
	English string `json:"english"`
}

// Card is the full display card for one category.
type Card struct {
	Code             model.Category `json:"code"`
	FullName         string         `json:"full_name"`
	ChineseName      string         `json:"chinese_name"`
	ShortDescription string         `json:"short_description"`
	Description      string         `json:"description"`
	Examples         []Example      `json:"examples"`
	TypicalVerbs     []string       `json:"typical_verbs"`
	Colour           string         `json:"colour"`
	Emoji            string         `json:"emoji"`
}

var cards = map[model.Category]Card{
	model.DirectedAction: {
		Code:             model.DirectedAction,
		FullName:         "Directed-Action",
		ChineseName:      "指向动作",
		ShortDescription: "Action directed TO someone",
		Description: `**Directed-Action** constructions describe an action that is intentionally
directed **toward** a person or recipient. The action flows TO or AT the
target, who receives it but is not necessarily transformed by it.

**Key characteristics:**
- The action has inherent direction toward Y
- Y is typically a person or animate being
- Common with speech acts and gestures
- X is doing something TO Y

**Diagnostic question:** Is X doing something TO/AT Y?`,
		Examples: []Example{
			{"他对我说了几句话", "He said a few words TO me"},
			{"她对观众鞠躬", "She bowed TO the audience"},
			{"老师对学生点头", "The teacher nodded TO the student"},
			{"他对她微笑", "He smiled AT her"},
			{"妈妈对孩子喊", "Mother called TO the child"},
		},
		TypicalVerbs: []string{"说", "讲", "喊", "叫", "问", "答", "笑", "点头", "挥手", "鞠躬"},
		Colour:       "#FF6B6B",
		Emoji:        "➡️",
	},
	model.ScopedIntervention: {
		Code:             model.ScopedIntervention,
		FullName:         "Scoped-Intervention",
		ChineseName:      "范围干预",
		ShortDescription: "Intervention ON a scope or domain",
		Description: `**Scoped-Intervention** constructions describe a bounded, procedural
intervention **upon** Y. Y is treated as a domain, scope, or patient
under X's operational control and undergoes some change or effect.

**Key characteristics:**
- Y is a bounded operational domain
- Y undergoes change or is affected
- Often involves institutional or formal actions
- X intervenes UPON Y

**Diagnostic question:** Is X intervening ON/UPON Y's scope?`,
		Examples: []Example{
			{"政府对企业进行检查", "The government conducts inspections ON enterprises"},
			{"警方对嫌疑人采取行动", "Police take action ON the suspect"},
			{"医生对病人进行治疗", "The doctor provides treatment TO the patient"},
			{"学校对学生进行培训", "The school provides training TO students"},
			{"法院对案件进行审理", "The court conducts trial ON the case"},
		},
		TypicalVerbs: []string{"进行", "实行", "实施", "执行", "采取", "检查", "监督", "管理", "帮助", "保护"},
		Colour:       "#4ECDC4",
		Emoji:        "🔧",
	},
	model.MentalState: {
		Code:             model.MentalState,
		FullName:         "Mental-State",
		ChineseName:      "心理状态",
		ShortDescription: "Internal psychological state triggered by Y",
		Description: `**Mental-State** constructions describe an internal psychological, emotional,
or cognitive state where Y serves as the **stimulus** that triggers the state
in X. Y causes or elicits the psychological response.

**Key characteristics:**
- Describes internal states (not directly observable)
- Y triggers the psychological response in X
- Includes emotions, cognition, and attitudes
- Y is not affected by X's state

**Diagnostic question:** Does Y trigger X's internal psychological state?`,
		Examples: []Example{
			{"我对这件事很担心", "I am very worried ABOUT this matter"},
			{"他对音乐很感兴趣", "He is very interested IN music"},
			{"她对他很尊重", "She respects him greatly"},
			{"我对结果很满意", "I am satisfied WITH the result"},
			{"他们对未来充满信心", "They are confident ABOUT the future"},
		},
		TypicalVerbs: []string{"喜欢", "担心", "害怕", "满意", "了解", "理解", "尊重", "关心", "信任", "怀疑"},
		Colour:       "#95E1D3",
		Emoji:        "💭",
	},
	model.Aboutness: {
		Code:             model.Aboutness,
		FullName:         "Aboutness",
		ChineseName:      "论题关涉",
		ShortDescription: "Discourse or commentary ABOUT Y",
		Description: `**Aboutness** constructions describe external cognitive or discursive
activity **about** Y. Y is the topic, subject matter, or content of X's
discourse. X produces speech, writing, or commentary about Y.

**Key characteristics:**
- External activity (observable)
- Y is the topic of discourse
- Y is not affected by the discourse
- X produces output about Y

**Diagnostic question:** Does X produce discourse ABOUT Y?`,
		Examples: []Example{
			{"专家对此发表意见", "Experts express opinions ABOUT this"},
			{"记者对事件进行报道", "Journalists report ON the event"},
			{"学者对问题进行分析", "Scholars analyse the problem"},
			{"委员会对提案进行讨论", "The committee discusses the proposal"},
			{"他对此不予置评", "He declined to comment ON this"},
		},
		TypicalVerbs: []string{"发表", "评价", "评论", "分析", "研究", "讨论", "报道", "调查", "表态", "置评"},
		Colour:       "#F38181",
		Emoji:        "💬",
	},
	model.Evaluation: {
		Code:             model.Evaluation,
		FullName:         "Evaluation",
		ChineseName:      "评价效果",
		ShortDescription: "Good/bad/useful FOR Y",
		Description: `**Evaluation** constructions describe X being evaluated as good, bad, useful,
or harmful **for** Y. 对 introduces the perspective, beneficiary, or frame
of reference from which X is judged.

**Key characteristics:**
- X has a property relative to Y
- Y is the perspective or beneficiary
- X is what is being evaluated (not agent)
- Often involves benefit or harm to Y

**Diagnostic question:** Is X good/bad/useful FOR Y?`,
		Examples: []Example{
			{"运动对健康有益", "Exercise is beneficial FOR health"},
			{"这对学生很重要", "This is important FOR students"},
			{"吸烟对身体有害", "Smoking is harmful FOR the body"},
			{"这个方法对初学者很有效", "This method is effective FOR beginners"},
			{"新政策对经济有利", "The new policy is beneficial FOR the economy"},
		},
		TypicalVerbs: []string{"有用", "有益", "有害", "重要", "必要", "有效", "公平", "有利", "不利"},
		Colour:       "#FCBAD3",
		Emoji:        "⚖️",
	},
	model.Disposition: {
		Code:             model.Disposition,
		FullName:         "Disposition",
		ChineseName:      "态度行为",
		ShortDescription: "Behavioural manner TOWARD someone",
		Description: `**Disposition** constructions describe a characteristic behavioural manner
or social attitude **toward** Y in interpersonal interaction. This describes
HOW X behaves or treats Y in observable social ways.

**Key characteristics:**
- Observable behavioural manner
- Describes how X treats/relates to Y
- Focus on style or manner of interaction
- Y typically experiences X's manner

**Diagnostic question:** Is X treating Y in a particular manner?`,
		Examples: []Example{
			{"她对客人很热情", "She is very warm TOWARD the guests"},
			{"他对同事很冷淡", "He is cold TOWARD his colleagues"},
			{"父母对孩子像朋友一样", "Parents treat children LIKE friends"},
			{"老板对员工很客气", "The boss is polite TOWARD employees"},
			{"他对人总是很友好", "He is always friendly TOWARD people"},
		},
		TypicalVerbs: []string{"热情", "冷淡", "友好", "客气", "礼貌", "粗暴", "好", "像"},
		Colour:       "#AA96DA",
		Emoji:        "🤝",
	},
}

// CardFor returns the display card for a category.
func CardFor(cat model.Category) (Card, bool) {
	card, ok := cards[cat]
	return card, ok
}

// Cards returns all cards in canonical display order.
func Cards() []Card {
	out := make([]Card, 0, len(cards))
	for _, cat := range model.Categories() {
		if card, ok := cards[cat]; ok {
			out = append(out, card)
		}
	}
	return out
}

// FormatDisplay renders a category as "emoji Full-Name (中文名)".
func FormatDisplay(cat model.Category, includeEmoji bool) string {
	card, ok := cards[cat]
	if !ok {
		return string(cat)
	}
	if includeEmoji && card.Emoji != "" {
		return card.Emoji + " " + card.FullName + " (" + card.ChineseName + ")"
	}
	return card.FullName + " (" + card.ChineseName + ")"
}
