package content

// ComparisonRow is one line of the side-by-side category comparison.
type ComparisonRow struct {
	Type       string `json:"type"`
	Chinese    string `json:"chinese"`
	KeyFeature string `json:"key_feature"`
	YRole      string `json:"y_role"`
	XRole      string `json:"x_role"`
	YAffected  string `json:"y_affected"`
}

var comparisonTable = []ComparisonRow{
	{
		Type:       "Directed-Action",
		Chinese:    "指向动作",
		KeyFeature: "Action directed TO Y",
		YRole:      "Recipient (receives action)",
		XRole:      "Agent/Speaker",
		YAffected:  "Mildly (receives)",
	},
	{
		Type:       "Scoped-Intervention",
		Chinese:    "范围干预",
		KeyFeature: "Intervention ON Y",
		YRole:      "Scope/Patient (affected)",
		XRole:      "Agent/Authority",
		YAffected:  "Yes (changes)",
	},
	{
		Type:       "Mental-State",
		Chinese:    "心理状态",
		KeyFeature: "Y triggers state in X",
		YRole:      "Stimulus (triggers state)",
		XRole:      "Experiencer",
		YAffected:  "No",
	},
	{
		Type:       "Aboutness",
		Chinese:    "论题关涉",
		KeyFeature: "Discourse ABOUT Y",
		YRole:      "Topic (discussed)",
		XRole:      "Communicator",
		YAffected:  "No",
	},
	{
		Type:       "Disposition",
		Chinese:    "态度行为",
		KeyFeature: "Manner TOWARD Y",
		YRole:      "Target (of manner)",
		XRole:      "Actor",
		YAffected:  "No (experiences)",
	},
	{
		Type:       "Evaluation",
		Chinese:    "评价效果",
		KeyFeature: "Good/bad FOR Y",
		YRole:      "Beneficiary/Perspective",
		XRole:      "Theme (evaluated)",
		YAffected:  "Benefits/suffers",
	},
}

// ComparisonTable returns the six-way comparison rows.
func ComparisonTable() []ComparisonRow {
	out := make([]ComparisonRow, len(comparisonTable))
	copy(out, comparisonTable)
	return out
}

// Distinction is a help-page entry contrasting two categories that
// learners commonly confuse.
type Distinction struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

var distinctions = []Distinction{
	{
		Title: "Mental-State vs Aboutness",
		Description: `This is often the trickiest distinction:

**Mental-State**: Y triggers an internal state IN X
- Example: 对他很了解 (understand him: internal knowledge)
- The verb describes what happens inside X's mind

**Aboutness**: X produces discourse ABOUT Y
- Example: 对此发表意见 (express opinions about this: external speech)
- X creates observable output (speech, writing, analysis)

**Quick test:** Does X produce observable output? If yes → Aboutness`,
	},
	{
		Title: "Directed-Action vs Scoped-Intervention",
		Description: `Both involve action toward Y, but:

**Directed-Action**: Y receives action, unchanged
- Example: 对他说话 (speak TO him)
- The verb cannot take Y as direct object: 说他 ✗

**Scoped-Intervention**: Y is affected/changed
- Example: 对他进行治疗 (provide treatment TO him)
- The verb can take Y as direct object: 帮助他 ✓

**Quick test:** Is Y affected or changed? If yes → Scoped-Intervention`,
	},
	{
		Title: "Disposition vs Mental-State",
		Description: `**Disposition**: Observable behavioural manner
- Example: 对他很热情 (warm toward him: you can see the behaviour)
- Describes HOW X acts

**Mental-State**: Internal psychological state
- Example: 对他很尊重 (respect him: internal feeling)
- Describes what X feels/thinks inside

**Quick test:** Can you observe it directly? If yes → Disposition`,
	},
}

// Distinctions returns the learner help entries in display order.
func Distinctions() []Distinction {
	out := make([]Distinction, len(distinctions))
	copy(out, distinctions)
	return out
}
