// Package sessionlog records where and on what device each user session is
// signed in.
//
// Every session keeps the raw User-Agent, the client IP and a client
// fingerprint captured from the request with MetadataFromRequest. Listing
// sessions through Service parses the stored User-Agent with package
// useragent, so each View carries a display label such as
// "Chrome on Samsung Galaxy S21 (Android 11)".
//
// Three stores are provided:
//
//   - MemoryStore for development and tests
//   - RedisStore, a JSON value per session and a per-user sorted set
//   - PostgresStore, whose schema ships as embedded goose migrations
//
// Usage:
//
//	svc := sessionlog.NewService(sessionlog.NewMemoryStore(), sessionlog.WithLogger(log))
//	sess, err := svc.Start(ctx, userID, sessionlog.MetadataFromRequest(r))
//	views, err := svc.List(sessionlog.WithCurrent(ctx, sess.ID), userID)
package sessionlog
