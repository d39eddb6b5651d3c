package ratelimit

import (
	"emperror.dev/errors"
	"github.com/bnema/zerowrap"
)

// NewStore creates the limiter for the configured backend. Only "memory"
// exists; an empty backend selects it.
func NewStore(backend string, rps float64, burst int, log zerowrap.Logger) (*MemoryStore, error) {
	switch backend {
	case "memory", "":
		if rps <= 0 || burst <= 0 {
			return nil, errors.Errorf("rate limit needs positive rps and burst, got rps=%v burst=%d", rps, burst)
		}
		return NewMemoryStore(rps, burst, log), nil
	default:
		return nil, errors.Errorf("unknown rate limit backend: %s", backend)
	}
}
