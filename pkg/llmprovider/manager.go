package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pdca-planner/pkg/log"
)

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // Global timeout for entire fallback chain
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	cfg := Config{}
	if config != nil {
		cfg = *config
	}
	if cfg.RetryAttempts < 1 {
		cfg.RetryAttempts = 1
	}
	return &Manager{
		providers: providers,
		config:    &cfg,
		logger:    logger,
	}
}

// Providers returns the names of the managed providers in priority order.
func (m *Manager) Providers() []string {
	names := make([]string, len(m.providers))
	for i, p := range m.providers {
		names[i] = p.Name()
	}
	return names
}

// GenerateContent walks the providers in priority order. Each provider gets
// RetryAttempts tries; the next provider is only tried when FallbackEnabled.
// The whole walk is bounded by MaxTotalTimeout.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is nil", ErrInvalidRequest)
	}
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	parent := ctx
	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var errs []error
	for i, provider := range m.providers {
		if err := ctx.Err(); err != nil {
			return nil, m.stopped(parent, i, err)
		}

		resp, attempts, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp, attempts)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		errs = append(errs, &ProviderError{Provider: provider.Name(), Attempts: attempts, Err: err})

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, errors.Join(errs...))
}

// stopped builds the error for a walk interrupted before provider i.
// Cancellation by the caller is reported as is; our own deadline becomes
// ErrChainTimeout.
func (m *Manager) stopped(parent context.Context, i int, err error) error {
	if parent.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w after %s, %d of %d provider(s) tried", ErrChainTimeout, m.config.MaxTotalTimeout, i, len(m.providers))
	}
	return fmt.Errorf("llmprovider: stopped after %d of %d provider(s): %w", i, len(m.providers), err)
}

// generateWithRetry retries a single provider with linear backoff and
// reports how many attempts were made.
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, int, error) {
	var lastErr error

	attempt := 0
	for attempt < m.config.RetryAttempts {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(attempt) * m.config.RetryDelay):
			case <-ctx.Done():
				return nil, attempt, errors.Join(lastErr, ctx.Err())
			}
		}
		attempt++

		resp, err := provider.GenerateContent(ctx, req)
		if err == nil {
			return resp, attempt, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			break
		}
	}

	return nil, attempt, lastErr
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response, attempts int) {
	usage := resp.Usage
	if usage == nil {
		usage = &Usage{}
	}
	m.logger.Info(ctx, "LLM generation successful",
		"provider", provider.Name(),
		"model", provider.Model(),
		"attempts", attempts,
		"input_tokens", usage.InputTokens,
		"output_tokens", usage.OutputTokens,
	)
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warn(ctx, "LLM generation failed",
		"provider", provider.Name(),
		"model", provider.Model(),
		"error", err.Error(),
	)
}
