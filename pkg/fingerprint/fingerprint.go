package fingerprint

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"slices"
	"strings"

	"github.com/dmitrymomot/uakit/pkg/clientip"
	"github.com/dmitrymomot/uakit/pkg/useragent"
)

// stableHeaders are the headers whose presence contributes to the fingerprint.
var stableHeaders = map[string]struct{}{
	"user-agent":                {},
	"accept":                    {},
	"accept-language":           {},
	"accept-encoding":           {},
	"connection":                {},
	"upgrade-insecure-requests": {},
	"sec-fetch-dest":            {},
	"sec-fetch-mode":            {},
	"sec-fetch-site":            {},
	"cache-control":             {},
}

// Generate returns a 32 character hex fingerprint of the client behind r.
//
// The user agent contributes its classification (browser name and major
// version, OS name, device model and type) instead of the raw string, so a
// browser patch update keeps the fingerprint stable.
func Generate(r *http.Request) string {
	return generate(r, useragent.Parse(r.UserAgent()))
}

// GenerateWith is Generate for callers that already parsed the user agent.
func GenerateWith(r *http.Request, ua useragent.UserAgent) string {
	return generate(r, ua)
}

func generate(r *http.Request, ua useragent.UserAgent) string {
	components := []string{
		string(ua.Browser.Name),
		ua.Browser.Major,
		string(ua.OS.Name),
		ua.Device.Model,
		ua.DeviceType(),
		r.Header.Get("Accept-Language"),
		r.Header.Get("Accept-Encoding"),
		r.Header.Get("Accept"),
		clientip.GetIP(r),
		headerSet(r),
	}

	hash := sha256.Sum256([]byte(strings.Join(components, "|")))
	return hex.EncodeToString(hash[:16])
}

// Match reports whether r produces the stored fingerprint.
func Match(r *http.Request, stored string) bool {
	if stored == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(Generate(r)), []byte(stored)) == 1
}

func headerSet(r *http.Request) string {
	names := make([]string, 0, len(stableHeaders))
	for name := range r.Header {
		name = strings.ToLower(name)
		if _, ok := stableHeaders[name]; ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return strings.Join(names, ",")
}
