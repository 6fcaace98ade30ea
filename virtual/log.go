package virtual

import (
	"log/slog"
	"os"
)

// logLevel controls the engine's default logger.
// SetVerbose(true) sets it to LevelDebug.
var logLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging for engines that were not
// given their own logger.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

func loggerOr(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return defaultLogger
}
