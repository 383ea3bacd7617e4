package parser

import (
	"regexp"
	"strings"
)

// captureRule is one extraction rule: a named pattern whose first capture
// group is the extracted value.
type captureRule struct {
	name string
	re   *regexp.Regexp
}

func rule(name, pattern string) captureRule {
	return captureRule{name: name, re: regexp.MustCompile(pattern)}
}

// find returns the trimmed first capture of the leftmost match.
// Matches that trim to nothing do not count.
func (r captureRule) find(text string) (string, bool) {
	m := r.re.FindStringSubmatch(text)
	if len(m) < 2 {
		return "", false
	}
	v := strings.TrimSpace(m[1])
	return v, v != ""
}

// findAll returns the trimmed first capture of every non-overlapping match.
func (r captureRule) findAll(text string) []string {
	var out []string
	for _, m := range r.re.FindAllStringSubmatch(text, -1) {
		if len(m) < 2 {
			continue
		}
		if v := strings.TrimSpace(m[1]); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// firstMatch tries rules in order and returns the first hit.
func firstMatch(rules []captureRule, text string) (string, bool) {
	for _, r := range rules {
		if v, ok := r.find(text); ok {
			return v, true
		}
	}
	return "", false
}

// Label pattern fragments. A label may be followed by a colon (ASCII or
// full width), spaces or tabs and an opening quote. The value always
// starts on the label's line.
const (
	labelTail      = `[:：]?[ \t]*["']?`
	labelTailColon = `[:：][ \t]*["']?`
	labelTailEN    = `[ \t]*[:：][ \t]*["']?`
	shortValue   = `([^"'\n.。]+)`
	longValue    = `([^"'\n]{10,500})`
	closingQuote = `["']?`
)

// labeled builds a rule for a Chinese label with an optional colon.
func labeled(name, label, value string) captureRule {
	return rule(name, `(?i)`+label+labelTail+value+closingQuote)
}

// labeledColon builds a rule for a Chinese label that must carry a colon.
func labeledColon(name, label, value string) captureRule {
	return rule(name, `(?i)`+label+labelTailColon+value+closingQuote)
}

// labeledEN builds a rule for an English label. The colon is required so
// ordinary prose ("my plan was...") does not trigger it.
func labeledEN(name, label, value string) captureRule {
	return rule(name, `(?i)\b`+label+labelTailEN+value+closingQuote)
}
