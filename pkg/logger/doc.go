// Package logger builds log/slog loggers with environment presets and
// context extractors.
//
// Extractors pull request-scoped values out of the context at log time, so
// handlers only need to call the *Context logging methods:
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "uakit"),
//		logger.WithContextExtractors(
//			requestid.LoggerExtractor(),
//			useragent.LoggerExtractor(),
//		),
//	)
//	log.InfoContext(r.Context(), "session started", logger.SessionID(id))
//
// The attribute helpers in attr.go keep keys consistent across packages.
package logger
