package ratelimiter

import (
	"hash/fnv"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrymomot/uakit/pkg/clientip"
	"github.com/dmitrymomot/uakit/pkg/useragent"
)

// maxKeyLength bounds the stored key size; longer keys are hashed.
const maxKeyLength = 64

// KeyFunc derives the bucket key for a request. An empty key skips limiting.
type KeyFunc func(r *http.Request) string

// ByClientIP keys buckets by the resolved client address.
func ByClientIP() KeyFunc {
	return func(r *http.Request) string {
		if ip := clientip.FromContext(r.Context()); ip != "" {
			return "ip:" + ip
		}
		if ip := clientip.GetIP(r); ip != "" {
			return "ip:" + ip
		}
		return ""
	}
}

// ByDeviceType keys buckets by the coarse device class, so crawlers can be
// given their own budget.
func ByDeviceType() KeyFunc {
	return func(r *http.Request) string {
		ua, ok := useragent.FromContext(r.Context())
		if !ok {
			ua = useragent.Parse(r.UserAgent())
		}
		return "device:" + ua.DeviceType()
	}
}

// ByHeader keys buckets by a request header value.
func ByHeader(name string) KeyFunc {
	return func(r *http.Request) string {
		if v := r.Header.Get(name); v != "" {
			return strings.ToLower(name) + ":" + v
		}
		return ""
	}
}

// Composite joins the non-empty keys of fns with ":". Keys longer than
// maxKeyLength are replaced by their base36 FNV-1a hash.
func Composite(fns ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(fns))
		for _, fn := range fns {
			if key := fn(r); key != "" {
				parts = append(parts, key)
			}
		}
		if len(parts) == 0 {
			return ""
		}

		key := strings.Join(parts, ":")
		if len(key) <= maxKeyLength {
			return key
		}
		h := fnv.New64a()
		_, _ = h.Write([]byte(key))
		return strconv.FormatUint(h.Sum64(), 36)
	}
}
