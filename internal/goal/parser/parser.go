package parser

import (
	"pdca-planner/internal/goal"
)

// Extract builds a goal proposal from the user's message and the
// assistant's reply. Every rule runs on both texts joined by a newline.
// ok is false when no title can be found; every other field falls back to
// a default instead of failing.
func (p *Parser) Extract(userInput, assistantReply string) (goal.StructuredGoal, bool) {
	combined := userInput + "\n" + assistantReply

	title, ok := extractTitle(combined)
	if !ok {
		return goal.StructuredGoal{}, false
	}

	description, _ := extractDescription(combined)
	level := extractLevel(combined)
	start, end := p.extractDates(combined, level)

	return goal.StructuredGoal{
		Title:       title,
		Description: description,
		Level:       level,
		Status:      goal.StatusActive,
		StartDate:   start,
		EndDate:     end,
		Metrics:     extractMetrics(combined),
		Resources:   []any{},
		Priority:    extractPriority(combined),
		Weight:      goal.DefaultWeight,
	}, true
}
