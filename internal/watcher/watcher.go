package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WaitReady watches the parent directory of path so that creation, writes
// and renames of the file itself are all seen.
func (w *implWatcher) WaitReady(ctx context.Context, path string) error {
	target := filepath.Clean(path)

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	// Watch before the first stat so a create in between is not missed.
	if err := fw.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("add watch path: %w", err)
	}

	exists := isRegularFile(target)
	timer := time.NewTimer(w.settle)
	defer timer.Stop()
	if exists {
		w.logger.Debug(ctx, "Waiting for %s to settle", target)
	} else {
		timer.Stop()
		w.logger.Info(ctx, "Waiting for upload: %s", target)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if filepath.Clean(event.Name) != target {
				continue
			}

			switch {
			case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
				exists = false
				timer.Stop()
				w.logger.Debug(ctx, "Upload moved away: %s", target)
			case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
				exists = isRegularFile(target)
				timer.Reset(w.settle)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Warn(ctx, "Watcher error: %v", err)

		case <-timer.C:
			if exists && isRegularFile(target) {
				w.logger.Info(ctx, "Upload ready: %s", target)
				return nil
			}
		}
	}
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
