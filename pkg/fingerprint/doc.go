// Package fingerprint derives a stable identifier for an HTTP client.
//
// The fingerprint hashes the parsed user agent, the Accept family of
// headers, the client IP and the set of common browser headers present on
// the request. It is meant for spotting session hijacking, not for tracking:
// two browsers behind the same NAT with identical settings collide.
package fingerprint
