package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		rps     float64
		burst   int
		wantErr string
	}{
		{name: "memory", backend: "memory", rps: 10, burst: 5},
		{name: "empty defaults to memory", backend: "", rps: 10, burst: 5},
		{name: "unknown backend", backend: "redis", rps: 10, burst: 5, wantErr: "unknown rate limit backend"},
		{name: "zero rps", backend: "memory", rps: 0, burst: 5, wantErr: "positive rps and burst"},
		{name: "zero burst", backend: "memory", rps: 1, burst: 0, wantErr: "positive rps and burst"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewStore(tt.backend, tt.rps, tt.burst, testLogger())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Nil(t, store)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, store)
		})
	}
}
