package parser

import (
	"strings"
	"unicode/utf8"
)

var descriptionRules = []captureRule{
	labeled("description_zh", `描述`, longValue),
	labeled("details_zh", `详情`, longValue),
	labeled("specifics_zh", `具体内容`, longValue),
	labeledEN("description_en", `(?:description|details|specifically)`, longValue),
}

// titleMarkers keep the paragraph fallback from picking the title line.
var titleMarkers = []string{"目标:", "目标：", "标题:", "标题：", "title:", "title：", "goal:", "goal："}

const (
	minParagraphLen = 30
	maxParagraphLen = 500
)

func extractDescription(text string) (string, bool) {
	if v, ok := firstMatch(descriptionRules, text); ok {
		return v, true
	}

	for _, para := range strings.Split(text, "\n") {
		n := utf8.RuneCountInString(para)
		if n <= minParagraphLen || n >= maxParagraphLen {
			continue
		}
		if hasTitleMarker(para) {
			continue
		}
		if v := strings.TrimSpace(para); v != "" {
			return v, true
		}
	}
	return "", false
}

func hasTitleMarker(para string) bool {
	lower := strings.ToLower(para)
	for _, m := range titleMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
