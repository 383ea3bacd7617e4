package qwen

import "context"

// IQwen is a chat completion client for DashScope compatible mode, or any
// other OpenAI-compatible endpoint. Safe for concurrent use.
type IQwen interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New creates a new Qwen client with the given configuration.
func New(cfg Config) (IQwen, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &qwenImpl{
		apiKey:       cfg.APIKey,
		endpoint:     cfg.BaseURL + chatCompletionsPath,
		model:        cfg.Model,
		enableSearch: cfg.EnableSearch,
		httpClient:   cfg.HTTPClient,
	}, nil
}
