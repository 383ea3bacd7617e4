package datemath

import "time"

// Range is a resolved start/end pair.
type Range struct {
	Start time.Time
	End   time.Time
}

// Days returns the number of whole days between Start and End.
func (r Range) Days() int {
	return int(r.End.Sub(r.Start).Hours() / 24)
}
