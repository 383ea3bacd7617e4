package datemath

import (
	"fmt"
	"strings"
	"time"
)

// ISOLayout is the millisecond ISO-8601 layout used for every date the
// service hands out, e.g. 2025-03-01T00:00:00.000Z.
const ISOLayout = "2006-01-02T15:04:05.000Z07:00"

// Parser does date-only arithmetic in a fixed timezone.
type Parser struct {
	location *time.Location
}

// UTC returns a parser pinned to UTC.
func UTC() *Parser {
	return &Parser{location: time.UTC}
}

// Today returns midnight at the start of now's day in the parser's timezone.
func (p *Parser) Today(now time.Time) time.Time {
	return p.startOfDay(now)
}

// AddDays moves t by the given number of calendar days and truncates to midnight.
func (p *Parser) AddDays(t time.Time, days int) time.Time {
	return p.startOfDay(t.AddDate(0, 0, days))
}

// FormatISO formats t in the parser's timezone using ISOLayout.
func (p *Parser) FormatISO(t time.Time) string {
	return t.In(p.location).Format(ISOLayout)
}

// ParseISO parses a string produced by FormatISO or Normalize.
func (p *Parser) ParseISO(s string) (time.Time, error) {
	t, err := time.Parse(ISOLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ISO date %q: %w", s, err)
	}
	return t.In(p.location), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
