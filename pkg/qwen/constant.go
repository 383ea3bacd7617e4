package qwen

import "time"

const (
	DefaultModel   = "qwen-plus"
	DefaultTimeout = 30 * time.Second

	chatCompletionsPath = "/chat/completions"
)

// Region selects the DashScope endpoint.
type Region string

const (
	RegionInternational Region = "intl"
	RegionChina         Region = "cn"
)

var regionBaseURLs = map[Region]string{
	RegionInternational: "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
	RegionChina:         "https://dashscope.aliyuncs.com/compatible-mode/v1",
}

// DefaultBaseURL is the international compatible-mode endpoint.
var DefaultBaseURL = regionBaseURLs[RegionInternational]
