package usecase

import (
	"context"

	"github.com/google/uuid"

	"pdca-planner/internal/goal"
	"pdca-planner/internal/goalchat"
	"pdca-planner/pkg/llmprovider"
	pkgLog "pdca-planner/pkg/log"
)

// Generator produces assistant replies. *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Config tunes the requests sent to the model.
type Config struct {
	Temperature   float64
	MaxTokens     int
	HistoryWindow int
	SystemPrompt  string
}

type implUseCase struct {
	l         pkgLog.Logger
	llm       Generator
	extractor goal.Extractor
	metrics   *Metrics
	cfg       Config
	newID     func() string
}

var _ goalchat.UseCase = (*implUseCase)(nil)

// New creates a new goalchat UseCase instance. metrics may be nil.
func New(
	l pkgLog.Logger,
	llm Generator,
	extractor goal.Extractor,
	metrics *Metrics,
	cfg Config,
) *implUseCase {
	if cfg.SystemPrompt == "" {
		cfg.SystemPrompt = DefaultSystemPrompt
	}
	if cfg.HistoryWindow < 1 {
		cfg.HistoryWindow = 1
	}
	return &implUseCase{
		l:         l,
		llm:       llm,
		extractor: extractor,
		metrics:   metrics,
		cfg:       cfg,
		newID:     uuid.NewString,
	}
}
