package parser

import (
	"regexp"

	"pdca-planner/internal/goal"
	"pdca-planner/pkg/datemath"
)

// dateToken matches 2025-03-01, 2025/3/1 and 2025年3月1日.
const dateToken = `(\d{4}[-/年]\d{1,2}[-/月]\d{1,2}日?)`

var anyDate = regexp.MustCompile(dateToken)

var startDateRules = []captureRule{
	rule("start_zh", `开始(?:时间|日期)[:：]?\s*`+dateToken),
	rule("start_en", `(?i)\bstart(?:\s+date)?\s*[:：]\s*`+dateToken),
}

var endDateRules = []captureRule{
	rule("end_zh", `结束(?:时间|日期)[:：]?\s*`+dateToken),
	rule("deadline_zh", `截止(?:时间|日期)[:：]?\s*`+dateToken),
	rule("end_en", `(?i)\b(?:end(?:\s+date)?|deadline|due(?:\s+date)?)\s*[:：]\s*`+dateToken),
}

// extractDates resolves the goal's date range. Both results are always
// set; values that could not be normalized are passed through raw.
//
// Precedence: labeled start and end; otherwise the bare date tokens (one
// token is the end date, two or more give first=start and last=end);
// otherwise today plus the level's horizon.
func (p *Parser) extractDates(text string, level goal.Level) (string, string) {
	var start, end string
	if v, ok := firstMatch(startDateRules, text); ok {
		start = datemath.Normalize(v)
	}
	if v, ok := firstMatch(endDateRules, text); ok {
		end = datemath.Normalize(v)
	}

	if start == "" || end == "" {
		tokens := anyDate.FindAllString(text, -1)
		switch {
		case len(tokens) == 1:
			end = datemath.Normalize(tokens[0])
		case len(tokens) >= 2:
			start = datemath.Normalize(tokens[0])
			end = datemath.Normalize(tokens[len(tokens)-1])
		}
	}

	return p.fillRange(start, end, level)
}

// fillRange fills whichever side of the range is missing.
func (p *Parser) fillRange(start, end string, level goal.Level) (string, string) {
	today := p.dates.Today(p.now())

	switch {
	case start == "" && end == "":
		start = p.dates.FormatISO(today)
		end = p.dates.FormatISO(p.dates.AddDays(today, level.HorizonDays()))
	case end == "":
		base := today
		if t, err := p.dates.ParseISO(start); err == nil {
			base = t
		}
		end = p.dates.FormatISO(p.dates.AddDays(base, level.HorizonDays()))
	case start == "":
		start = p.dates.FormatISO(today)
	}
	return start, end
}
