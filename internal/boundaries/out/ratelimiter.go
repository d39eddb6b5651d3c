package out

import "context"

// RateLimiter throttles API callers per client. The HTTP middleware keys
// buckets as "ip:<address>", where the address comes from forwarding headers
// only when the peer is one of server.trusted_proxies.
type RateLimiter interface {
	// Allow spends one token from the bucket of key and reports whether the
	// request may proceed.
	Allow(ctx context.Context, key string) bool
	// AllowN spends n tokens at once. A false result spends nothing.
	AllowN(ctx context.Context, key string, n int) bool
}
