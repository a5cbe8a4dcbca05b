// Package binder decodes HTTP requests into typed structs.
//
// Each binder has the signature func(*http.Request, any) error and is meant
// to be chained by handler.Wrap:
//
//	type ParseRequest struct {
//		UserAgent string `json:"user_agent"`
//	}
//
//	type ListSessionsRequest struct {
//		UserID string `path:"userID"`
//		Limit  int    `query:"limit"`
//	}
//
// JSON enforces the application/json content type, a body size limit and
// strict decoding. Query and Path bind by struct tag; Path reads chi route
// parameters. Fields implementing encoding.TextUnmarshaler, such as
// uuid.UUID, decode themselves.
//
// All failures wrap one of the package sentinel errors.
package binder
