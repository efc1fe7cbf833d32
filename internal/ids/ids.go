// Package ids generates record ids compatible with the ones already stored:
// decimal unix milliseconds.
package ids

import (
	"strconv"
	"sync"
	"time"
)

// Generator hands out millisecond timestamps as strings, bumping by one
// whenever the clock has not moved since the last call so ids in a batch
// stay unique.
type Generator struct {
	mu   sync.Mutex
	last int64
}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now().UnixMilli()
	if now <= g.last {
		now = g.last + 1
	}
	g.last = now
	return strconv.FormatInt(now, 10)
}
