package qwen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	cfg := Config{}
	require.Error(t, cfg.Validate())

	cfg = Config{APIKey: "k", BaseURL: "http://example.com/v1/"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, "http://example.com/v1", cfg.BaseURL)
	assert.NotNil(t, cfg.HTTPClient)
}

func TestGenerateContent(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"目标：学习编程"},"finish_reason":"stop"}],"usage":{"prompt_tokens":10,"completion_tokens":5,"total_tokens":15}}`))
	}))
	defer srv.Close()

	client, err := New(Config{APIKey: "key", Model: "qwen-max", BaseURL: srv.URL})
	require.NoError(t, err)

	resp, err := client.GenerateContent(context.Background(), &Request{
		SystemPrompt: "be helpful",
		Messages: []Message{
			{Role: "user", Content: "hi"},
			{Role: "assistant", Content: "hello"},
			{Role: "user", Content: "plan"},
		},
		Temperature: 0.7,
	})
	require.NoError(t, err)

	assert.Equal(t, "qwen-max", got.Model)
	require.Len(t, got.Messages, 4)
	assert.Equal(t, chatMessage{Role: "system", Content: "be helpful"}, got.Messages[0])
	assert.Equal(t, "plan", got.Messages[3].Content)
	assert.Equal(t, 0.7, got.Temperature)
	assert.False(t, got.EnableSearch)

	assert.Equal(t, "assistant", resp.Content.Role)
	assert.Equal(t, "目标：学习编程", resp.Content.Content)
	assert.Equal(t, "stop", resp.FinishReason)
	assert.Equal(t, 15, resp.Usage.TotalTokens)
}

func TestGenerateContent_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("slow down"))
	}))
	defer srv.Close()

	client, err := New(Config{APIKey: "key", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.GenerateContent(context.Background(), &Request{})
	require.Error(t, err)
	assert.Equal(t, "qwen: API error 429: slow down", err.Error())
}

func TestGenerateContent_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client, err := New(Config{APIKey: "key", BaseURL: srv.URL})
	require.NoError(t, err)

	resp, err := client.GenerateContent(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Empty(t, resp.Content.Content)
	assert.NotNil(t, resp.Usage)
}

func TestConfigValidate_Region(t *testing.T) {
	cfg := Config{APIKey: "k", Region: RegionChina}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "https://dashscope.aliyuncs.com/compatible-mode/v1", cfg.BaseURL)

	cfg = Config{APIKey: "k", Region: RegionChina, BaseURL: "http://proxy/v1"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "http://proxy/v1", cfg.BaseURL)

	cfg = Config{APIKey: "k", Region: "mars"}
	assert.Error(t, cfg.Validate())
}

func TestGenerateContent_EnableSearch(t *testing.T) {
	var raw map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`))
	}))
	defer srv.Close()

	client, err := New(Config{APIKey: "key", BaseURL: srv.URL, EnableSearch: true})
	require.NoError(t, err)

	_, err = client.GenerateContent(context.Background(), &Request{Messages: []Message{{Role: "user", Content: "hi"}}})
	require.NoError(t, err)
	assert.Equal(t, true, raw["enable_search"])
	assert.NotContains(t, raw, "max_tokens")
}

func TestGenerateContent_StructuredAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"model not found","code":"model_not_found"}}`))
	}))
	defer srv.Close()

	client, err := New(Config{APIKey: "key", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.GenerateContent(context.Background(), &Request{})
	require.Error(t, err)
	assert.Equal(t, "qwen: API error 400 (model_not_found): model not found", err.Error())
}

func TestGenerateContent_NilRequest(t *testing.T) {
	client, err := New(Config{APIKey: "key"})
	require.NoError(t, err)

	_, err = client.GenerateContent(context.Background(), nil)
	assert.Error(t, err)
}
