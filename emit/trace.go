package emit

import (
	"context"
	"log/slog"
)

// LevelTrace is the level of per-block generator events.
const LevelTrace slog.Level = slog.LevelInfo + 1

// Trace logs a generator event at LevelTrace on the default logger.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}
