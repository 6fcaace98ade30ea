package vgui

import (
	"log/slog"
	"os"

	"github.com/go-theft-auto/vgui/virtual"
)

// guiLogLevel controls the log level for widget debug logging.
var guiLogLevel = new(slog.LevelVar)

// SetVerbose enables debug logging for widgets and for the engine.
func SetVerbose(v bool) {
	if v {
		guiLogLevel.Set(slog.LevelDebug)
	} else {
		guiLogLevel.Set(slog.LevelInfo)
	}
	virtual.SetVerbose(v)
}

func guiVerbose() bool {
	return guiLogLevel.Level() <= slog.LevelDebug
}

var guiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: guiLogLevel}))
