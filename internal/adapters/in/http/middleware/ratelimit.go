package middleware

import (
	"net/http"
	"net/netip"

	"github.com/bnema/zerowrap"

	"github.com/bnema/forcedeck/internal/adapters/dto"
	"github.com/bnema/forcedeck/internal/boundaries/out"
)

// RateLimit rejects requests with 429 once a client IP runs out of tokens.
// A nil limiter disables the check.
func RateLimit(limiter out.RateLimiter, trusted []netip.Prefix, log zerowrap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := GetClientIP(r, trusted)
			if limiter.Allow(r.Context(), "ip:"+ip) {
				next.ServeHTTP(w, r)
				return
			}

			log.Warn().
				Str(zerowrap.FieldLayer, "adapter").
				Str(zerowrap.FieldAdapter, "http").
				Str(zerowrap.FieldMethod, r.Method).
				Str(zerowrap.FieldPath, r.URL.Path).
				Str(zerowrap.FieldClientIP, ip).
				Msg("rate limit exceeded")

			w.Header().Set("Retry-After", "1")
			writeJSON(w, http.StatusTooManyRequests, dto.ErrorResponse{Error: "Too many requests"})
		})
	}
}
