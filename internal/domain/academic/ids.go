package academic

import "time"

// IDGenerator hands out millisecond timestamps that never repeat within one
// record's lifetime. When two ids are requested within the same clock tick,
// or the clock goes backwards, the previous id plus one is used instead.
type IDGenerator struct {
	now  func() time.Time
	last int64
}

// NewIDGenerator creates a generator reading time from now. A nil now uses time.Now.
func NewIDGenerator(now func() time.Time) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{now: now}
}

// Next returns the next unique id
func (g *IDGenerator) Next() int64 {
	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// Observe makes sure future ids are greater than id
func (g *IDGenerator) Observe(id int64) {
	if id > g.last {
		g.last = id
	}
}
