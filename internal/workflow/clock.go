package workflow

import (
	"sync"
	"time"
)

// Clock hands out strictly increasing timestamps so audit records stamped by the
// engine always sort in execution order, even when the wall clock stalls or steps back.
//
// Safe for concurrent use.
type Clock struct {
	mu   sync.Mutex
	now  func() time.Time
	loc  *time.Location
	last time.Time
}

// NewClock returns a wall clock reporting times in loc (UTC when nil).
func NewClock(loc *time.Location) *Clock {
	return NewClockFunc(time.Now, loc)
}

// NewClockFunc builds a Clock over an arbitrary time source; used by tests.
func NewClockFunc(now func() time.Time, loc *time.Location) *Clock {
	if loc == nil {
		loc = time.UTC
	}
	return &Clock{now: now, loc: loc}
}

// Now returns a time strictly after every value previously returned.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now().In(c.loc).Round(0)
	if !t.After(c.last) {
		t = c.last.Add(time.Microsecond)
	}
	c.last = t
	return t
}

// Location is the zone used for "today" comparisons.
func (c *Clock) Location() *time.Location {
	return c.loc
}
