package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ytget/optionkit/internal/apperrors"
	"github.com/ytget/optionkit/internal/debounce"
	"github.com/ytget/optionkit/internal/logger"
)

// ReloadQuiet collapses the burst of events an editor produces on save.
const ReloadQuiet = 250 * time.Millisecond

// ManifestWatcher reloads a manifest file whenever it changes on disk.
type ManifestWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	reload   *debounce.Channel[struct{}]
	onChange func(*Manifest, error)
	done     chan struct{}
}

// WatchManifest calls onChange with the freshly parsed manifest, or the parse
// error, after each save of path. The parent directory is watched so editors
// that replace the file by rename are still seen. Watching stops when ctx is
// cancelled; Done is closed once the watcher has shut down.
func WatchManifest(ctx context.Context, path string, onChange func(*Manifest, error)) (*ManifestWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, apperrors.Config(fmt.Errorf("manifest path: %w", err))
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, apperrors.Config(fmt.Errorf("create watcher: %w", err))
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, apperrors.Config(fmt.Errorf("watch %s: %w", filepath.Dir(abs), err))
	}

	log := logger.With("manifest")
	w := &ManifestWatcher{
		path:     filepath.Clean(abs),
		watcher:  fw,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	w.reload = debounce.New(ReloadQuiet, func(struct{}) { w.load() }, debounce.WithLogger(log))

	log.Info("watching manifest", "manifest", w.path)
	go w.run(ctx)
	return w, nil
}

// Done is closed after the watcher stops.
func (w *ManifestWatcher) Done() <-chan struct{} { return w.done }

func (w *ManifestWatcher) run(ctx context.Context) {
	defer close(w.done)
	defer w.reload.Close()
	defer func() {
		if err := w.watcher.Close(); err != nil {
			logger.Error("closing manifest watcher", "error", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("manifest changed", "manifest", w.path, "op", event.Op.String())
			w.reload.Update(struct{}{})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("manifest watcher error", "error", err)
		}
	}
}

func (w *ManifestWatcher) load() {
	m, err := LoadManifest(w.path)
	if err != nil {
		logger.Warn("manifest reload failed", "manifest", w.path, "error", err)
	}
	w.onChange(m, err)
}
