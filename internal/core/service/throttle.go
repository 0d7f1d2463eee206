package service

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Throttle limits how often a single author can run commands. A zero interval disables it.
type Throttle struct {
	authors map[string]*rate.Limiter
	every   time.Duration
	burst   int
	mutex   sync.Mutex
}

func NewThrottle(every time.Duration, burst int) *Throttle {
	if burst < 1 {
		burst = 1
	}

	return &Throttle{
		authors: make(map[string]*rate.Limiter),
		every:   every,
		burst:   burst,
	}
}

func (t *Throttle) Allow(authorID string) bool {
	if t.every <= 0 {
		return true
	}

	t.mutex.Lock()
	limiter, ok := t.authors[authorID]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(t.every), t.burst)
		t.authors[authorID] = limiter
	}
	t.mutex.Unlock()

	return limiter.Allow()
}

// Prune drops limiters that are full again, so the map only holds recently active authors.
func (t *Throttle) Prune() int {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	pruned := 0
	for id, limiter := range t.authors {
		if limiter.Tokens() >= float64(t.burst) {
			delete(t.authors, id)
			pruned++
		}
	}

	return pruned
}
