// Package draftwatch re-reads a draft file whenever an editor saves it.
package draftwatch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch calls onChange with the file's contents once at start and again
// after every write or create of path. It blocks until ctx is cancelled.
//
// The parent directory is watched rather than the file so atomic saves
// (write temp, rename over) are still seen.
func Watch(ctx context.Context, path string, logger *zap.Logger, onChange func(text string)) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	if text, err := os.ReadFile(abs); err == nil {
		onChange(string(text))
	} else {
		logger.Debug("initial read failed", zap.String("path", abs), zap.Error(err))
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			text, err := os.ReadFile(abs)
			if err != nil {
				logger.Warn("re-read failed", zap.String("path", abs), zap.Error(err))
				continue
			}
			logger.Debug("draft changed", zap.String("path", abs), zap.Int("bytes", len(text)))
			onChange(string(text))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))
		}
	}
}
