package glm

import "context"

// IGLM defines the interface for the Zhipu AI GLM client.
// Implementations are safe for concurrent use.
type IGLM interface {
	// GenerateContent sends a chat completion request
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a new GLM client with the given configuration
func New(cfg Config) (IGLM, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGLMImpl(cfg), nil
}
