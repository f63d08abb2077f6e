package clock

import "time"

// Clock abstracts wall-clock time so invoice numbering and timestamps
// are testable.
type Clock interface {
	Now() time.Time
}

// SystemClock returns real time in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// Fixed is a Clock pinned to a single instant, for tests.
type Fixed struct {
	At time.Time
}

func (f Fixed) Now() time.Time { return f.At }
