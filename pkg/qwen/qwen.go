package qwen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const maxErrorBody = 4 << 10

func (q *qwenImpl) Model() string {
	return q.model
}

func (q *qwenImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("qwen: request is nil")
	}

	body, err := json.Marshal(q.buildRequest(req))
	if err != nil {
		return nil, fmt.Errorf("qwen: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, q.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("qwen: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+q.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := q.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("qwen: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("qwen: failed to decode response: %w", err)
	}
	return toResponse(&out), nil
}

func (q *qwenImpl) buildRequest(req *Request) *chatRequest {
	msgs := make([]chatMessage, 0, len(req.Messages)+1)
	if req.SystemPrompt != "" {
		msgs = append(msgs, chatMessage{Role: "system", Content: req.SystemPrompt})
	}
	for _, m := range req.Messages {
		msgs = append(msgs, chatMessage{Role: m.Role, Content: m.Content})
	}
	return &chatRequest{
		Model:        q.model,
		Messages:     msgs,
		Temperature:  req.Temperature,
		MaxTokens:    req.MaxTokens,
		EnableSearch: q.enableSearch,
	}
}

// apiError prefers the structured error message and falls back to the raw
// body, truncated.
func apiError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var e errorResponse
	if json.Unmarshal(raw, &e) == nil && e.Error.Message != "" {
		if e.Error.Code != "" {
			return fmt.Errorf("qwen: API error %d (%s): %s", resp.StatusCode, e.Error.Code, e.Error.Message)
		}
		return fmt.Errorf("qwen: API error %d: %s", resp.StatusCode, e.Error.Message)
	}
	return fmt.Errorf("qwen: API error %d: %s", resp.StatusCode, string(raw))
}

func toResponse(r *chatResponse) *Response {
	out := &Response{
		Usage: &Usage{
			InputTokens:  r.Usage.PromptTokens,
			OutputTokens: r.Usage.CompletionTokens,
			TotalTokens:  r.Usage.TotalTokens,
		},
	}
	if len(r.Choices) > 0 {
		c := r.Choices[0]
		out.Content = Message{Role: c.Message.Role, Content: c.Message.Content}
		out.FinishReason = c.FinishReason
	}
	return out
}
