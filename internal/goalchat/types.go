package goalchat

import "pdca-planner/internal/goal"

// Message roles accepted from clients.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is one turn of the conversation.
type Message struct {
	ID      string
	Role    string
	Content string
}

// ChatInput is the input for Chat. Messages are oldest first and the last
// one must come from the user.
type ChatInput struct {
	UserID   string
	Messages []Message
}

// ChatOutput carries the assistant reply and the goal extracted from the
// exchange. Goal is nil when nothing could be extracted.
type ChatOutput struct {
	Reply Message
	Goal  *goal.StructuredGoal
}

// ExtractInput is the input for Extract.
type ExtractInput struct {
	UserInput      string
	AssistantReply string
}

// ExtractOutput is the result of Extract.
type ExtractOutput struct {
	Found bool
	Goal  *goal.StructuredGoal
}
