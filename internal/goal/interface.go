package goal

// Extractor turns one conversational turn into a goal proposal.
// ok is false when the turn contains no recognizable goal; that is an
// expected outcome, not an error.
type Extractor interface {
	Extract(userInput, assistantReply string) (g StructuredGoal, ok bool)
}
