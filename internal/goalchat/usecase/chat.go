package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pdca-planner/internal/goalchat"
	"pdca-planner/pkg/llmprovider"
)

// Chat answers the last user message and extracts a goal from the exchange.
func (uc *implUseCase) Chat(ctx context.Context, input goalchat.ChatInput) (goalchat.ChatOutput, error) {
	last, err := validateChatInput(input)
	if err != nil {
		uc.metrics.observeChat(outcomeInvalid)
		return goalchat.ChatOutput{}, err
	}

	uc.l.Infof(ctx, "Chat: user=%s messages=%d", input.UserID, len(input.Messages))

	start := time.Now()
	resp, err := uc.llm.GenerateContent(ctx, uc.buildRequest(input.Messages))
	uc.metrics.observeLLM(err, time.Since(start))
	if err != nil {
		uc.l.Errorf(ctx, "Chat: llm.GenerateContent: %v", err)
		uc.metrics.observeChat(outcomeFailed)
		return goalchat.ChatOutput{}, fmt.Errorf("%w: %v", goalchat.ErrGenerationFailed, err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		uc.l.Errorf(ctx, "Chat: empty reply from provider %s", resp.ProviderName)
		uc.metrics.observeChat(outcomeFailed)
		return goalchat.ChatOutput{}, fmt.Errorf("%w: empty reply", goalchat.ErrGenerationFailed)
	}

	out := goalchat.ChatOutput{
		Reply: goalchat.Message{
			ID:      uc.newID(),
			Role:    goalchat.RoleAssistant,
			Content: text,
		},
	}

	if g, ok := uc.extractor.Extract(last.Content, text); ok {
		out.Goal = &g
		uc.l.Infof(ctx, "Chat: extracted goal %q level=%s", g.Title, g.Level)
	}
	uc.metrics.observeExtraction(sourceChat, out.Goal != nil)
	uc.metrics.observeChat(outcomeOK)

	return out, nil
}

// validateChatInput checks the request shape and returns the last message.
func validateChatInput(input goalchat.ChatInput) (goalchat.Message, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return goalchat.Message{}, goalchat.ErrUserIDRequired
	}
	if len(input.Messages) == 0 {
		return goalchat.Message{}, goalchat.ErrEmptyMessages
	}
	for _, m := range input.Messages {
		switch m.Role {
		case goalchat.RoleUser, goalchat.RoleAssistant, goalchat.RoleSystem:
		default:
			return goalchat.Message{}, fmt.Errorf("%w: %q", goalchat.ErrInvalidRole, m.Role)
		}
	}

	last := input.Messages[len(input.Messages)-1]
	if last.Role != goalchat.RoleUser {
		return goalchat.Message{}, goalchat.ErrLastMessageNotUser
	}
	return last, nil
}

// buildRequest keeps the most recent user and assistant turns. Client
// supplied system messages are dropped in favor of the configured prompt.
func (uc *implUseCase) buildRequest(messages []goalchat.Message) *llmprovider.Request {
	history := make([]llmprovider.Message, 0, len(messages))
	for _, m := range messages {
		if m.Role == goalchat.RoleSystem {
			continue
		}
		history = append(history, llmprovider.Message{Role: m.Role, Content: m.Content})
	}
	if len(history) > uc.cfg.HistoryWindow {
		history = history[len(history)-uc.cfg.HistoryWindow:]
	}

	return &llmprovider.Request{
		SystemInstruction: uc.cfg.SystemPrompt,
		Messages:          history,
		Temperature:       uc.cfg.Temperature,
		MaxTokens:         uc.cfg.MaxTokens,
	}
}
