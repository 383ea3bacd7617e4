package glm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrEmptyResponse is returned when the API answers without any choice content.
var ErrEmptyResponse = errors.New("glm: no text in response")

func newGLMImpl(cfg Config) *glmImpl {
	return &glmImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		topP:       cfg.TopP,
		headers:    cfg.Headers,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a chat completion request to the GLM API.
// The API key is sent as-is in the Authorization header, without a
// Bearer prefix.
func (g *glmImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("glm: request is nil")
	}

	body, err := json.Marshal(g.transformRequest(req))
	if err != nil {
		return nil, fmt.Errorf("glm: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+ChatCompletionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("glm: failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", g.apiKey)
	for k, v := range g.headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("glm: API call failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("glm: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error.Message != "" {
			return nil, fmt.Errorf("glm: API error %d: %s", resp.StatusCode, errResp.Error.Message)
		}
		return nil, fmt.Errorf("glm: API error %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return nil, fmt.Errorf("glm: failed to decode response: %w", err)
	}

	return g.transformResponse(&chatResp)
}

// Model returns the model being used
func (g *glmImpl) Model() string {
	return g.model
}

func (g *glmImpl) transformRequest(req *Request) *chatRequest {
	chatReq := &chatRequest{
		Model:       g.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		TopP:        g.topP,
		Stop:        req.Stop,
		Messages:    make([]chatMessage, 0, len(req.Messages)+1),
	}

	if req.SystemPrompt != "" {
		chatReq.Messages = append(chatReq.Messages, chatMessage{Role: "system", Content: req.SystemPrompt})
	}
	for _, msg := range req.Messages {
		chatReq.Messages = append(chatReq.Messages, chatMessage{Role: msg.Role, Content: msg.Content})
	}

	return chatReq
}

func (g *glmImpl) transformResponse(resp *chatResponse) (*Response, error) {
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, ErrEmptyResponse
	}

	choice := resp.Choices[0]
	role := choice.Message.Role
	if role == "" {
		role = "assistant"
	}

	return &Response{
		Content: Message{Role: role, Content: choice.Message.Content},
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}
