package usecase

import (
	"context"
	"sync"

	"pdca-planner/internal/goal"
	"pdca-planner/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// createManager wraps a single provider in a Provider Manager for testing
func createManager(provider llmprovider.Provider, logger *mockLogger) *llmprovider.Manager {
	config := &llmprovider.Config{
		FallbackEnabled: false,
		RetryAttempts:   1,
	}
	return llmprovider.NewManager([]llmprovider.Provider{provider}, config, logger)
}

// Mock provider for testing. It records the last request it received.
type mockProvider struct {
	mu      sync.Mutex
	reply   string
	err     error
	lastReq *llmprovider.Request
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.mu.Lock()
	m.lastReq = req
	m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{
		Content:      llmprovider.Message{Role: llmprovider.RoleAssistant, Content: m.reply},
		ProviderName: "mock",
		ModelName:    "mock-model",
		Usage:        &llmprovider.Usage{},
	}, nil
}

func (m *mockProvider) Name() string  { return "mock" }
func (m *mockProvider) Model() string { return "mock-model" }

func (m *mockProvider) request() *llmprovider.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastReq
}

// Stub extractor for testing
type stubExtractor struct {
	goal    goal.StructuredGoal
	ok      bool
	gotUser string
	gotText string
}

func (s *stubExtractor) Extract(userInput, assistantReply string) (goal.StructuredGoal, bool) {
	s.gotUser = userInput
	s.gotText = assistantReply
	return s.goal, s.ok
}
