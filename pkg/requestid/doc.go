// Package requestid assigns every HTTP request a correlation ID.
//
// Middleware reuses a well-formed X-Request-ID header (up to 128 characters
// of letters, digits, '-' and '_') and otherwise generates a UUIDv7. The ID
// is written back to the response header and stored in the request context,
// where FromContext and LoggerExtractor pick it up.
package requestid
