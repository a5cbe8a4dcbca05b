// Package app wires configuration, logging, the session store and the HTTP
// API into a runnable service.
//
// SESSION_STORE selects the backend: "memory" (default), "redis" (REDIS_*
// variables) or "postgres" (PG_* variables, migrations applied on start).
package app
