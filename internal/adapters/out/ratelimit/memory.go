// Package ratelimit provides the token-bucket limiter behind the API rate
// limiting middleware.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/zerowrap"
	"golang.org/x/time/rate"

	"github.com/bnema/forcedeck/internal/boundaries/out"
)

var _ out.RateLimiter = (*MemoryStore)(nil)

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryStore keeps one token bucket per key in process memory.
// Buckets idle for longer than the configured TTL are dropped by Prune.
type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	rps     float64
	burst   int
	now     func() time.Time
	log     zerowrap.Logger
}

// NewMemoryStore creates a store allowing rps requests per second per key
// with the given burst.
func NewMemoryStore(rps float64, burst int, log zerowrap.Logger) *MemoryStore {
	return &MemoryStore{
		buckets: make(map[string]*bucket),
		rps:     rps,
		burst:   burst,
		now:     time.Now,
		log:     log,
	}
}

// Allow reports whether one request for key may proceed now.
func (s *MemoryStore) Allow(_ context.Context, key string) bool {
	return s.limiter(key).AllowN(s.now(), 1)
}

// AllowN reports whether n requests for key may proceed now.
func (s *MemoryStore) AllowN(_ context.Context, key string, n int) bool {
	return s.limiter(key).AllowN(s.now(), n)
}

func (s *MemoryStore) limiter(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(rate.Limit(s.rps), s.burst)}
		s.buckets[key] = b
	}
	b.lastSeen = s.now()
	return b.limiter
}

// Len returns the number of tracked keys.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buckets)
}

// Prune drops buckets not used within idle and returns how many were removed.
func (s *MemoryStore) Prune(idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-idle)
	removed := 0
	for key, b := range s.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(s.buckets, key)
			removed++
		}
	}
	return removed
}

// RunJanitor prunes idle buckets every interval until ctx is done.
func (s *MemoryStore) RunJanitor(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Prune(idle); n > 0 {
				s.log.Debug().Int("removed", n).Int("remaining", s.Len()).Msg("pruned idle rate limit buckets")
			}
		}
	}
}
