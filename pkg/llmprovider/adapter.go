package llmprovider

import (
	"context"

	"pdca-planner/pkg/deepseek"
	"pdca-planner/pkg/glm"
	"pdca-planner/pkg/qwen"
)

// DeepSeekAdapter adapts pkg/deepseek to llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	dsReq := &deepseek.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]deepseek.Message, 0, len(req.Messages)+1),
	}
	if req.SystemInstruction != "" {
		dsReq.Messages = append(dsReq.Messages, deepseek.Message{Role: RoleSystem, Content: req.SystemInstruction})
	}
	for _, m := range req.Messages {
		dsReq.Messages = append(dsReq.Messages, deepseek.Message{Role: m.Role, Content: m.Content})
	}

	resp, err := a.client.GenerateContent(ctx, dsReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      Message{Role: RoleAssistant, Content: resp.Text()},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *DeepSeekAdapter) Name() string {
	return "deepseek"
}

// Model returns model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}

// QwenAdapter adapts pkg/qwen to llmprovider.Provider interface.
// It also serves any OpenAI-compatible endpoint under a different name.
type QwenAdapter struct {
	client qwen.IQwen
	name   string
}

// NewQwenAdapter creates a new Qwen adapter
func NewQwenAdapter(client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{client: client, name: "qwen"}
}

// NewOpenAICompatibleAdapter wraps a qwen client pointed at another
// OpenAI-compatible endpoint.
func NewOpenAICompatibleAdapter(name string, client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{client: client, name: name}
}

// GenerateContent implements Provider interface
func (a *QwenAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	qwenReq := &qwen.Request{
		SystemPrompt: req.SystemInstruction,
		Messages:     make([]qwen.Message, len(req.Messages)),
		Temperature:  req.Temperature,
		MaxTokens:    req.MaxTokens,
	}
	for i, m := range req.Messages {
		qwenReq.Messages[i] = qwen.Message{Role: m.Role, Content: m.Content}
	}

	resp, err := a.client.GenerateContent(ctx, qwenReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      Message{Role: RoleAssistant, Content: resp.Content.Content},
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage:        convertQwenUsage(resp.Usage),
	}, nil
}

// Name returns provider name
func (a *QwenAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *QwenAdapter) Model() string {
	return a.client.Model()
}

// GLMAdapter adapts pkg/glm to llmprovider.Provider interface
type GLMAdapter struct {
	client glm.IGLM
}

// NewGLMAdapter creates a new GLM adapter
func NewGLMAdapter(client glm.IGLM) *GLMAdapter {
	return &GLMAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GLMAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	glmReq := &glm.Request{
		SystemPrompt: req.SystemInstruction,
		Messages:     make([]glm.Message, len(req.Messages)),
		Temperature:  req.Temperature,
		MaxTokens:    req.MaxTokens,
	}
	for i, m := range req.Messages {
		glmReq.Messages[i] = glm.Message{Role: m.Role, Content: m.Content}
	}

	resp, err := a.client.GenerateContent(ctx, glmReq)
	if err != nil {
		return nil, err
	}

	usage := &Usage{}
	if resp.Usage != nil {
		usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}

	return &Response{
		Content:      Message{Role: RoleAssistant, Content: resp.Content.Content},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *GLMAdapter) Name() string {
	return "glm"
}

// Model returns model name
func (a *GLMAdapter) Model() string {
	return a.client.Model()
}

func convertQwenUsage(u *qwen.Usage) *Usage {
	if u == nil {
		return &Usage{}
	}
	return &Usage{
		InputTokens:  u.InputTokens,
		OutputTokens: u.OutputTokens,
		TotalTokens:  u.TotalTokens,
	}
}
