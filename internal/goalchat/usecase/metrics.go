package usecase

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK      = "ok"
	outcomeInvalid = "invalid"
	outcomeFailed  = "llm_error"

	sourceChat    = "chat"
	sourceExtract = "extract"
)

// Metrics exposes Prometheus collectors for goal planning chat.
// A nil *Metrics records nothing.
type Metrics struct {
	chatRequests *prometheus.CounterVec
	extractions  *prometheus.CounterVec
	llmLatency   *prometheus.HistogramVec
}

// MustNewMetrics constructs a Metrics instance using the provided registerer.
// Registration errors panic.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	chatRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pdca",
			Subsystem: "goalchat",
			Name:      "chat_requests_total",
			Help:      "Goal chat requests by outcome.",
		},
		[]string{"outcome"},
	)
	extractions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pdca",
			Subsystem: "goalchat",
			Name:      "extractions_total",
			Help:      "Goal extraction attempts by source and result.",
		},
		[]string{"source", "result"},
	)
	llmLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pdca",
			Subsystem: "goalchat",
			Name:      "llm_duration_seconds",
			Help:      "Time spent waiting for the model reply.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 60},
		},
		[]string{"status"},
	)

	reg.MustRegister(chatRequests, extractions, llmLatency)

	return &Metrics{
		chatRequests: chatRequests,
		extractions:  extractions,
		llmLatency:   llmLatency,
	}
}

func (m *Metrics) observeChat(outcome string) {
	if m == nil {
		return
	}
	m.chatRequests.WithLabelValues(outcome).Inc()
}

func (m *Metrics) observeExtraction(source string, found bool) {
	if m == nil {
		return
	}
	result := "none"
	if found {
		result = "found"
	}
	m.extractions.WithLabelValues(source, result).Inc()
}

func (m *Metrics) observeLLM(err error, took time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.llmLatency.WithLabelValues(status).Observe(took.Seconds())
}
