// Package httpserver runs an http.Handler with graceful shutdown.
//
// Server listens on the configured address and blocks in Run until the
// context is cancelled or the process receives SIGINT or SIGTERM, then shuts
// down within the configured timeout. Construction uses functional options;
// invalid option values panic at construction time.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// LivenessHandler and ReadinessHandler serve Kubernetes-style probes.
// Readiness runs each Probe with the request context and answers 503 on the
// first failure.
//
// Errors returned by Run and Shutdown wrap ErrStart or ErrShutdown.
package httpserver
