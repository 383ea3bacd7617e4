package glm

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
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"Missing key", Config{}, true},
		{"TopP out of range", Config{APIKey: "k", TopP: 1.5}, true},
		{"Defaults", Config{APIKey: "k"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, DefaultModel, tt.cfg.Model)
			assert.Equal(t, DefaultBaseURL, tt.cfg.BaseURL)
			assert.NotNil(t, tt.cfg.HTTPClient)
		})
	}
}

func TestGenerateContent(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, ChatCompletionsPath, r.URL.Path)
		assert.Equal(t, "raw-key", r.Header.Get("Authorization"))
		assert.Equal(t, "trace-1", r.Header.Get("X-Trace"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_, _ = w.Write([]byte(`{"id":"x","choices":[{"index":0,"message":{"role":"assistant","content":"好的"},"finish_reason":"stop"}],"usage":{"prompt_tokens":2,"completion_tokens":1,"total_tokens":3}}`))
	}))
	defer srv.Close()

	client, err := New(Config{
		APIKey:  "raw-key",
		BaseURL: srv.URL + "/",
		TopP:    0.9,
		Headers: map[string]string{"X-Trace": "trace-1"},
	})
	require.NoError(t, err)

	resp, err := client.GenerateContent(context.Background(), &Request{
		SystemPrompt: "sys",
		Messages:     []Message{{Role: "user", Content: "我的目标是:学习编程"}},
		Temperature:  0.7,
		MaxTokens:    512,
	})
	require.NoError(t, err)

	assert.Equal(t, DefaultModel, got.Model)
	assert.Equal(t, 0.9, got.TopP)
	assert.Equal(t, 512, got.MaxTokens)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)

	assert.Equal(t, "好的", resp.Content.Content)
	assert.Equal(t, "assistant", resp.Content.Role)
	assert.Equal(t, 3, resp.Usage.TotalTokens)
	assert.Equal(t, DefaultModel, client.Model())
}

func TestGenerateContent_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"API error message", http.StatusBadRequest, `{"error":{"code":"1214","message":"bad messages"}}`, "glm: API error 400: bad messages"},
		{"API error without body", http.StatusBadGateway, `<html>`, "glm: API error 502: Bad Gateway"},
		{"Empty choices", http.StatusOK, `{"choices":[]}`, ErrEmptyResponse.Error()},
		{"Invalid JSON", http.StatusOK, `{`, "glm: failed to decode response: unexpected end of JSON input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client, err := New(Config{APIKey: "k", BaseURL: srv.URL})
			require.NoError(t, err)

			_, err = client.GenerateContent(context.Background(), &Request{})
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}
