// Package handler provides typed HTTP handlers with a JSON envelope.
//
// A HandlerFunc receives the request and a value of type R decoded by the
// binders given to Wrap, and returns a Response. JSON wraps data as
// {"data": ...}; JSONError maps errors to a status code and
// {"error": {"code", "message", "details"}}:
//
//   - HTTPError uses its own code and key
//   - ValidationError becomes 422 with per-field details
//   - binder errors become 400, 413 or 415
//   - anything else becomes 500 with a generic message
package handler
