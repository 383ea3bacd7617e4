package goalchat

import "errors"

// Domain-specific errors for the goalchat package.
var (
	ErrUserIDRequired     = errors.New("user ID is required")
	ErrEmptyMessages      = errors.New("messages are empty")
	ErrLastMessageNotUser = errors.New("last message must be from user")
	ErrInvalidRole        = errors.New("invalid message role")
	ErrGenerationFailed   = errors.New("failed to generate reply")
)
