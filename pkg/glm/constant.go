package glm

import "time"

const (
	// DefaultModel is the default GLM model
	DefaultModel = "glm-4"

	// DefaultBaseURL is the default Zhipu AI endpoint
	DefaultBaseURL = "https://open.bigmodel.cn"

	// ChatCompletionsPath is appended to the base URL for every request
	ChatCompletionsPath = "/api/paas/v4/chat/completions"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)
