// Package api exposes the user agent parser and the device session log over
// HTTP.
//
// Routes:
//
//	GET    /health/live
//	GET    /health/ready
//	GET    /v1/useragent                        parse the caller's User-Agent
//	POST   /v1/useragent                        {"user_agent": "..."}
//	POST   /v1/useragent/batch                  {"user_agents": ["...", ...]}
//	GET    /v1/users/{userID}/sessions          list sessions, newest first
//	POST   /v1/users/{userID}/sessions          start a session for the caller
//	DELETE /v1/users/{userID}/sessions          end all but the X-Session-ID session
//	GET    /v1/sessions/{sessionID}
//	POST   /v1/sessions/{sessionID}/touch
//	DELETE /v1/sessions/{sessionID}
//
// Every JSON body uses the envelope {"data", "meta", "error"}. The session
// routes are mounted only when the router is built WithSessions.
package api
