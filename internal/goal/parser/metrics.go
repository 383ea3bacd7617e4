package parser

import (
	"regexp"
	"strings"

	"pdca-planner/internal/goal"
)

var metricRules = []captureRule{
	labeled("indicator_zh", `指标`, shortValue),
	labeled("measure_zh", `衡量标准`, shortValue),
	labeled("success_criteria_zh", `成功标准`, shortValue),
	labeledEN("indicator_en", `(?:metrics?|indicators?|kpis?)`, shortValue),
	labeledEN("measure_en", `measures? of success`, shortValue),
	labeledEN("success_criteria_en", `success criteri(?:on|a)`, shortValue),
}

// listItem matches a bullet followed by a 5-100 character body.
var listItem = regexp.MustCompile(`[•·\-*]\s*([^•·\-*\n]{5,100})`)

// metricKeywords mark a bullet as a metric.
var metricKeywords = []string{
	"指标", "衡量", "标准", "达到", "完成",
	"metric", "measure", "standard", "achieve", "complete",
}

// extractMetrics runs the labeled pass and then the bullet pass. A line
// caught by both is reported twice.
func extractMetrics(text string) []goal.Metric {
	metrics := []goal.Metric{}

	for _, r := range metricRules {
		for _, v := range r.findAll(text) {
			metrics = append(metrics, goal.Metric{Description: v})
		}
	}

	for _, m := range listItem.FindAllStringSubmatch(text, -1) {
		if len(m) < 2 || !hasMetricKeyword(m[1]) {
			continue
		}
		if v := strings.TrimSpace(m[1]); v != "" {
			metrics = append(metrics, goal.Metric{Description: v})
		}
	}

	return metrics
}

func hasMetricKeyword(s string) bool {
	lower := strings.ToLower(s)
	for _, k := range metricKeywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
