package parser

import (
	"time"

	"pdca-planner/internal/goal"
	"pdca-planner/pkg/datemath"
)

var _ goal.Extractor = (*Parser)(nil)

// Parser is the rule based goal extractor. It keeps no state between calls
// and is safe for concurrent use.
type Parser struct {
	now   func() time.Time
	dates *datemath.Parser
}

// Option configures a Parser.
type Option func(*Parser)

// WithClock overrides the clock used to resolve "today".
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		if now != nil {
			p.now = now
		}
	}
}

// New creates a Parser. Dates are resolved in UTC and pinned to midnight.
func New(opts ...Option) *Parser {
	p := &Parser{
		now:   time.Now,
		dates: datemath.UTC(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
