package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetClientIP(t *testing.T) {
	trusted := ParseTrustedProxies([]string{"127.0.0.1", "10.0.0.0/8"})

	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		trusted    bool
		want       string
	}{
		{name: "remote addr with port", remoteAddr: "192.168.1.100:12345", want: "192.168.1.100"},
		{name: "remote addr without port", remoteAddr: "192.168.1.100", want: "192.168.1.100"},
		{name: "ipv6 remote addr", remoteAddr: "[::1]:12345", want: "::1"},
		{
			name:       "forwarded header ignored without trusted proxies",
			remoteAddr: "127.0.0.1:12345",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.50"},
			want:       "127.0.0.1",
		},
		{
			name:       "forwarded header ignored from untrusted peer",
			remoteAddr: "192.168.1.100:12345",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.50"},
			trusted:    true,
			want:       "192.168.1.100",
		},
		{
			name:       "first forwarded hop from trusted peer",
			remoteAddr: "10.1.2.3:12345",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.50, 10.0.0.1"},
			trusted:    true,
			want:       "203.0.113.50",
		},
		{
			name:       "real ip from trusted peer",
			remoteAddr: "127.0.0.1:12345",
			headers:    map[string]string{"X-Real-IP": "203.0.113.60"},
			trusted:    true,
			want:       "203.0.113.60",
		},
		{
			name:       "forwarded-for wins over real ip",
			remoteAddr: "127.0.0.1:12345",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.50", "X-Real-IP": "203.0.113.60"},
			trusted:    true,
			want:       "203.0.113.50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/users", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			prefixes := trusted
			if !tt.trusted {
				prefixes = nil
			}
			assert.Equal(t, tt.want, GetClientIP(req, prefixes))
		})
	}
}

func TestIsTrusted(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		ip      string
		want    bool
	}{
		{"no entries", nil, "192.168.1.1", false},
		{"single ip", []string{"192.168.1.1"}, "192.168.1.1", true},
		{"single ip miss", []string{"192.168.1.1"}, "192.168.1.2", false},
		{"cidr", []string{"10.0.0.0/8"}, "10.1.2.3", true},
		{"unmasked cidr", []string{"10.1.2.3/8"}, "10.200.0.1", true},
		{"invalid entries skipped", []string{"not-an-ip", "10.0.0.0/8"}, "10.1.2.3", true},
		{"ipv6", []string{"fd00::/8"}, "fd12:3456::1", true},
		{"ipv4-mapped ipv6", []string{"10.0.0.0/8"}, "::ffff:10.0.0.1", true},
		{"invalid ip", []string{"10.0.0.0/8"}, "nope", false},
		{"empty ip", []string{"10.0.0.0/8"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTrusted(tt.ip, ParseTrustedProxies(tt.entries)))
		})
	}
}
