package model

import (
	"fmt"
	"strings"
)

// Category is one of the six 对-construction types. The two-to-four letter
// codes are the public vocabulary on every boundary: the corpus table file,
// classifier output, the HTTP API, and CLI rendering all use them.
type Category string

const (
	DirectedAction     Category = "DA"   // action directed TO a recipient
	ScopedIntervention Category = "SI"   // bounded intervention ON a scope
	MentalState        Category = "MS"   // Y triggers an internal state in X
	Aboutness          Category = "ABT"  // discourse ABOUT a topic
	Evaluation         Category = "EVAL" // X is good/bad/useful FOR Y
	Disposition        Category = "DISP" // behavioural manner TOWARD Y
)

// Categories returns all six categories in canonical display order.
func Categories() []Category {
	return []Category{DirectedAction, ScopedIntervention, MentalState, Aboutness, Evaluation, Disposition}
}

var categoryNames = map[Category][2]string{
	DirectedAction:     {"Directed-Action", "指向动作"},
	ScopedIntervention: {"Scoped-Intervention", "范围干预"},
	MentalState:        {"Mental-State", "心理状态"},
	Aboutness:          {"Aboutness", "论题关涉"},
	Evaluation:         {"Evaluation", "评价效果"},
	Disposition:        {"Disposition", "态度行为"},
}

// Name returns the full English name (e.g. "Directed-Action").
func (c Category) Name() string {
	if names, ok := categoryNames[c]; ok {
		return names[0]
	}
	return string(c)
}

// ChineseName returns the Chinese name (e.g. "指向动作").
func (c Category) ChineseName() string {
	if names, ok := categoryNames[c]; ok {
		return names[1]
	}
	return ""
}

// IsValid reports whether c is one of the six known categories.
func (c Category) IsValid() bool {
	_, ok := categoryNames[c]
	return ok
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory accepts a category code (case-insensitive) or a full English
// name and returns the corresponding Category.
func ParseCategory(s string) (Category, error) {
	upper := Category(strings.ToUpper(strings.TrimSpace(s)))
	if upper.IsValid() {
		return upper, nil
	}
	for cat, names := range categoryNames {
		if strings.EqualFold(s, names[0]) {
			return cat, nil
		}
	}
	return "", fmt.Errorf("unknown category: %q (expected one of DA, SI, MS, ABT, EVAL, DISP)", s)
}
