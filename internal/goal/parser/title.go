package parser

// Title rules, first match wins. Labels written with a colon, in either
// language, outrank everything else so an explicit "标题：X" or "Title: X"
// is never lost to a bare label mentioned earlier in prose. Within each
// group the title label comes first and "my goal is" is tried before the
// bare "goal" label it contains.
var titleRules = []captureRule{
	labeledColon("title_zh", `标题`, shortValue),
	labeledEN("title_en", `title`, shortValue),
	labeledColon("my_goal_is_zh", `我的目标是`, shortValue),
	labeledColon("goal_zh", `目标`, shortValue),
	labeledEN("goal_en", `goals?`, shortValue),
	labeledColon("i_want_zh", `我想要`, shortValue),
	labeledColon("plan_zh", `计划`, shortValue),
	labeledEN("plan_en", `plan`, shortValue),

	labeled("title_bare_zh", `标题`, shortValue),
	labeled("my_goal_is_bare_zh", `我的目标是`, shortValue),
	rule("my_goal_is_en", `(?i)\bmy goal is(?:[ \t]+to)?`+labelTail+shortValue+closingQuote),
	labeled("goal_bare_zh", `目标`, shortValue),
	labeled("i_want_bare_zh", `我想要`, shortValue),
	rule("i_want_en", `(?i)\bI want(?:[ \t]+to)?`+labelTail+shortValue+closingQuote),
	labeled("plan_bare_zh", `计划`, shortValue),
}

// firstSentence is the fallback: a 5-50 character sentence at the very
// start of the text.
var firstSentence = rule("first_sentence", `^([^.。!！?？\n]{5,50})[.。!！?？]`)

func extractTitle(text string) (string, bool) {
	if v, ok := firstMatch(titleRules, text); ok {
		return v, true
	}
	return firstSentence.find(text)
}
