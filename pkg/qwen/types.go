package qwen

import (
	"fmt"
	"net/http"
	"strings"
)

// Config holds client configuration. BaseURL wins over Region; with neither
// set the international endpoint is used.
type Config struct {
	APIKey     string
	Model      string
	Region     Region
	BaseURL    string
	HTTPClient *http.Client

	// EnableSearch turns on DashScope web search. Omitted from the request
	// when false.
	EnableSearch bool
}

// Validate fills defaults and checks required fields.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("qwen: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		region := c.Region
		if region == "" {
			region = RegionInternational
		}
		url, ok := regionBaseURLs[region]
		if !ok {
			return fmt.Errorf("qwen: unknown region %q", c.Region)
		}
		c.BaseURL = url
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

type qwenImpl struct {
	apiKey       string
	endpoint     string
	model        string
	enableSearch bool
	httpClient   *http.Client
}

// Request is a chat request. SystemPrompt is sent as the leading system
// message.
type Request struct {
	SystemPrompt string
	Messages     []Message
	Temperature  float64
	MaxTokens    int
}

type Message struct {
	Role    string
	Content string
}

// Response carries the first choice of the completion.
type Response struct {
	Content      Message
	FinishReason string
	Usage        *Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Wire format.

type chatRequest struct {
	Model        string        `json:"model"`
	Messages     []chatMessage `json:"messages"`
	Temperature  float64       `json:"temperature,omitempty"`
	MaxTokens    int           `json:"max_tokens,omitempty"`
	EnableSearch bool          `json:"enable_search,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}
