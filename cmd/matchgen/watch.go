package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is how long the watcher waits for a burst of events to end before
// regenerating. Editors often write a file in several steps.
const settle = 10 * time.Millisecond

// watch calls regen every time path changes, until ctx is done. Failed
// regenerations are logged and the previous output is kept.
func watch(ctx context.Context, path string, regen func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	slog.Info("watching", "input", path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "input", path, "error", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			slog.Debug("watch event", "input", path, "op", event.Op.String())
			drain(watcher)

			if err := regen(); err != nil {
				slog.Error("generation failed", "input", path, "error", err)
			}

			// Editors save by renaming over the file, which drops the watch.
			if err := watcher.Add(path); err != nil {
				slog.Warn("failed to re-watch", "input", path, "error", err)
			}
		}
	}
}

func drain(watcher *fsnotify.Watcher) {
	for {
		time.Sleep(settle)

		select {
		case <-watcher.Events:
		default:
			return
		}
	}
}
