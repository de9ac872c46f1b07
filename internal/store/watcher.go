package store

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ReloadCallback is called after a watcher-driven seed reload.
type ReloadCallback func(path string)

// Watch observes the seed file and replaces the store contents whenever it
// changes, until ctx is cancelled. Intended for dev mode, where the seed
// YAML doubles as a quick way to reshape the demo dataset.
//
// The parent directory is watched rather than the file itself: editors
// typically replace files via rename, which would silently drop a watch on
// the file path. Bursts of events are debounced before reloading.
func Watch(ctx context.Context, s *Store, seedPath string, logger *slog.Logger, cb ReloadCallback) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	dir := filepath.Dir(seedPath)
	if err := w.Add(dir); err != nil {
		return err
	}

	logger.Info("seed watcher: started", slog.String("file", seedPath))

	var reloadTimer *time.Timer
	var reloadCh <-chan time.Time

	scheduleReload := func() {
		if reloadTimer == nil {
			reloadTimer = time.NewTimer(200 * time.Millisecond)
			reloadCh = reloadTimer.C
		} else {
			reloadTimer.Reset(200 * time.Millisecond)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if reloadTimer != nil {
				reloadTimer.Stop()
			}
			logger.Info("seed watcher: stopped")
			return nil

		case <-reloadCh:
			seed, loadErr := LoadSeedFile(seedPath)
			if loadErr != nil {
				logger.Warn("seed watcher: reload failed", slog.String("error", loadErr.Error()))
				continue
			}
			s.Replace(seed)
			logger.Info("seed watcher: store reloaded", slog.String("file", seedPath))
			if cb != nil {
				cb(seedPath)
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(seedPath) {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
				scheduleReload()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("seed watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}
