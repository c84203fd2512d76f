package tasks

import (
	"errors"
	"time"
)

// MaxID is the largest id a Manager issues or accepts from the store.
// It is the largest integer a float64 holds exactly, far above any
// millisecond timestamp.
const MaxID int64 = 1<<53 - 1

// ErrIDsExhausted is returned by Next once MaxID has been issued.
var ErrIDsExhausted = errors.New("task ids exhausted")

// IDGenerator issues strictly increasing ids derived from wall-clock
// milliseconds. When the clock stalls or goes backwards the previous id plus
// one is used instead.
type IDGenerator struct {
	now  func() time.Time
	last int64
}

// NewIDGenerator returns a generator reading time from now.
// A nil now uses time.Now.
func NewIDGenerator(now func() time.Time) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{now: now}
}

// Next returns a new id greater than every id previously returned or observed.
func (g *IDGenerator) Next() (int64, error) {
	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	if id > MaxID {
		return 0, ErrIDsExhausted
	}
	g.last = id
	return id, nil
}

// Observe records an id issued elsewhere so Next stays above it.
// Ids above MaxID are clamped.
func (g *IDGenerator) Observe(id int64) {
	id = min(id, MaxID)
	if id > g.last {
		g.last = id
	}
}
