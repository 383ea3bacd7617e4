package goalchat

import "context"

// UseCase defines the business logic interface for goal planning chat.
type UseCase interface {
	// Chat answers the last user message with the planning assistant and
	// tries to extract a structured goal from the exchange.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)

	// Extract runs goal extraction on an exchange the caller already has.
	Extract(ctx context.Context, input ExtractInput) (ExtractOutput, error)
}
