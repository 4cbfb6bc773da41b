package middleware

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// ClientIP returns the address from X-Real-IP, falling back to the remote
// address of the connection.
func ClientIP(r *http.Request) (netip.Addr, bool) {
	raw := strings.TrimSpace(r.Header.Get("X-Real-IP"))
	if raw == "" {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		raw = host
	}

	addr, err := netip.ParseAddr(raw)
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}

// WithSubnet lets through only clients inside the trusted CIDR. An empty or
// unparsable subnet forbids every request.
func WithSubnet(subnet string) func(next http.Handler) http.Handler {
	prefix, err := netip.ParsePrefix(strings.TrimSpace(subnet))
	trusted := err == nil

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			addr, ok := ClientIP(r)
			if !trusted || !ok || !prefix.Contains(addr) {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
