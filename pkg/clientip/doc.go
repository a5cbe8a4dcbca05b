// Package clientip resolves the originating client address of an HTTP request.
//
// Proxy headers are consulted in the order of Headers (Cloudflare,
// DigitalOcean, X-Forwarded-For, X-Real-IP) before falling back to
// RemoteAddr. Values are validated and normalized: IPv4-mapped IPv6 addresses
// are unmapped and zones are dropped. Invalid values are skipped, never
// returned.
//
// The headers are client controlled unless a trusted proxy overwrites them;
// deploy behind one before using the result for access decisions.
package clientip
