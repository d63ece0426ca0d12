package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// Common proxy headers, in the order most deployments should trust them.
const (
	HeaderCloudflare   = "CF-Connecting-IP"
	HeaderForwardedFor = "X-Forwarded-For"
	HeaderRealIP       = "X-Real-IP"
)

// ProxyHeaders is a reasonable trust list for a server behind Cloudflare or
// an Nginx-style reverse proxy.
var ProxyHeaders = []string{HeaderCloudflare, HeaderForwardedFor, HeaderRealIP}

// Resolver finds the originating client address of a request.
// The zero value trusts no headers and uses RemoteAddr.
type Resolver struct {
	headers []string
}

// NewResolver trusts headers in the given order. Only list headers your
// proxy overwrites; anything else can be forged by the client.
func NewResolver(trustedHeaders ...string) Resolver {
	return Resolver{headers: trustedHeaders}
}

// Resolve returns the first valid address from the trusted headers, falling
// back to the TCP peer. It returns "" when nothing parses.
func (res Resolver) Resolve(r *http.Request) string {
	for _, h := range res.headers {
		v := r.Header.Get(h)
		if v == "" {
			continue
		}
		if strings.EqualFold(h, HeaderForwardedFor) {
			// The left-most entry is the client.
			for ip := range strings.SplitSeq(v, ",") {
				if parsed := parseIP(ip); parsed != "" {
					return parsed
				}
			}
			continue
		}
		if parsed := parseIP(v); parsed != "" {
			return parsed
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// GetIP resolves r trusting ProxyHeaders.
func GetIP(r *http.Request) string {
	return NewResolver(ProxyHeaders...).Resolve(r)
}

// parseIP returns the canonical form of s, unmapping IPv4-in-IPv6 and
// dropping any zone.
func parseIP(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
