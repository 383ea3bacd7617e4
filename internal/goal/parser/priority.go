package parser

import (
	"strconv"
	"strings"

	"pdca-planner/internal/goal"
)

var priorityRules = []captureRule{
	rule("priority_number_zh", `优先级[:：]?[ \t]*(\d+)`),
	rule("priority_word_zh", `优先级[:：]?[ \t]*(高|中|低)`),
	rule("importance_number_zh", `重要[性度][:：]?[ \t]*(\d+)`),
	rule("importance_word_zh", `重要[性度][:：]?[ \t]*(高|中|低)`),
	rule("priority_number_en", `(?i)\bpriority[ \t]*[:：]?[ \t]*(\d+)`),
	rule("priority_word_en", `(?i)\bpriority[ \t]*[:：]?[ \t]*(high|medium|low)\b`),
	rule("importance_number_en", `(?i)\bimportance[ \t]*[:：]?[ \t]*(\d+)`),
	rule("importance_word_en", `(?i)\bimportance[ \t]*[:：]?[ \t]*(high|medium|low)\b`),
}

var priorityWords = map[string]int{
	"高":      8,
	"中":      5,
	"低":      2,
	"high":   8,
	"medium": 5,
	"low":    2,
}

func extractPriority(text string) int {
	for _, r := range priorityRules {
		v, ok := r.find(text)
		if !ok {
			continue
		}
		if p, ok := priorityWords[strings.ToLower(v)]; ok {
			return p
		}
		return clampPriority(v)
	}
	return goal.DefaultPriority
}

// clampPriority parses a run of digits and clamps it to [1, 10]. Values too
// large for an int clamp to the maximum.
func clampPriority(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return goal.MaxPriority
	}
	return min(max(n, goal.MinPriority), goal.MaxPriority)
}
