package parser

import (
	"regexp"

	"pdca-planner/internal/goal"
)

type levelRule struct {
	level goal.Level
	re    *regexp.Regexp
}

// levelRules are tested from the longest horizon to the shortest; the
// first class with a cue anywhere in the text wins.
var levelRules = []levelRule{
	{goal.LevelVision, regexp.MustCompile(`(?i)愿景|远景|长期|3-5年|3到5年|五年|\bvision\b|\blong[- ]term\b|\b(?:3-5|five|5) years\b`)},
	{goal.LevelYearly, regexp.MustCompile(`(?i)年度|一年|1年|今年|明年|年目标|\bannual(?:ly)?\b|\byearly\b|\b(?:this|next|one|a) year\b`)},
	{goal.LevelQuarterly, regexp.MustCompile(`(?i)季度|三个月|3个月|一季度|本季度|下季度|\bquarter(?:ly)?\b|\b(?:three|3) months\b`)},
	{goal.LevelMonthly, regexp.MustCompile(`(?i)月度|一个月|1个月|本月|下月|\bmonths?\b|\bmonthly\b`)},
	{goal.LevelWeekly, regexp.MustCompile(`(?i)周|一周|1周|本周|下周|七天|7天|\bweek(?:ly|s)?\b|\b(?:seven|7) days\b`)},
}

func extractLevel(text string) goal.Level {
	for _, r := range levelRules {
		if r.re.MatchString(text) {
			return r.level
		}
	}
	return goal.LevelMonthly
}
