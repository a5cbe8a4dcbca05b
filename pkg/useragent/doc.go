// Package useragent classifies HTTP User-Agent strings into browser, operating
// system and device information, a set of boolean facets, and a short
// human-readable label such as "Chrome on Samsung Galaxy (Android 15)".
//
// Parsing is plain substring matching against ordered rule tables plus a few
// pre-compiled regular expressions. Tables are checked in declaration order
// and the first hit wins, so the order of entries is part of the behavior.
// The device model table is sorted longest-literal-first once at package
// initialization.
//
// # Pipeline
//
// Parse runs the device and OS matchers on the system-info segment (the text
// inside the first parentheses) and falls back to the whole string when the
// segment yields nothing. The browser matcher always sees the whole string.
// Facets are then derived from the matched fields:
//
//   - a tablet is never mobile
//   - a TV is neither a tablet nor mobile
//   - a desktop is none of mobile, tablet, TV or bot
//
// # Usage
//
//	ua := useragent.Parse(r.UserAgent())
//	if ua.IsBot {
//	    // skip session tracking
//	}
//	log.Printf("client=%s type=%s", ua.Display, ua.DeviceType())
//
// Middleware parses the header once per request and stores the result in the
// request context, retrievable with FromContext. LoggerExtractor plugs the
// parsed label into slog records.
//
// # Error Handling
//
// Parse never fails. Require returns ErrEmptyUserAgent for empty input and
// MustFromContext returns ErrNoUserAgent when the middleware did not run.
package useragent
