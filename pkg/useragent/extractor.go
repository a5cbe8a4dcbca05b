package useragent

import (
	"context"
	"log/slog"
)

// LoggerExtractor returns a ContextExtractor for the logger
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		ua, ok := FromContext(ctx)
		if !ok || ua.Display == "" {
			return slog.Attr{}, false
		}
		return slog.Group("client",
			slog.String("device", ua.Display),
			slog.String("device_type", ua.DeviceType()),
		), true
	}
}
