package testutil

// LogicalClock hands out sequence numbers for trace events.
//
// The harness stamps every trace event with Tick so golden snapshots never
// depend on wall-clock time. Runs are single goroutine; LogicalClock is not
// safe for concurrent use.
type LogicalClock struct {
	seq int64
}

// NewLogicalClock returns a clock whose first Tick is 1.
func NewLogicalClock() *LogicalClock {
	return &LogicalClock{}
}

// Tick advances the clock and returns the new value.
func (c *LogicalClock) Tick() int64 {
	c.seq++
	return c.seq
}

// Now returns the last value handed out, 0 before the first Tick.
func (c *LogicalClock) Now() int64 {
	return c.seq
}

// Reset rewinds the clock so the next Tick returns 1 again.
func (c *LogicalClock) Reset() {
	c.seq = 0
}
