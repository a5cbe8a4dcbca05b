package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// Headers lists proxy headers in the order they are trusted. The first header
// holding a parseable address wins; RemoteAddr is the fallback.
var Headers = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// GetIP returns the normalized client address of r, or an empty string
// when neither the proxy headers nor RemoteAddr hold a valid IP.
func GetIP(r *http.Request) string {
	for _, h := range Headers {
		value := r.Header.Get(h)
		if value == "" {
			continue
		}
		// X-Forwarded-For is a comma separated chain; take the first valid hop.
		for candidate := range strings.SplitSeq(value, ",") {
			if ip := parseIP(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
