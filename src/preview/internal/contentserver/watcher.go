package contentserver

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Editors replace files with rename-and-create sequences, so the watch is on
// the payload's directory and filtered back down to the payload file.
const _debounceTimeout = 100 * time.Millisecond

type payloadWatcher struct {
	watcher     *fsnotify.Watcher
	payloadPath string
	logger      *zap.SugaredLogger
	onChange    func()

	mu    sync.Mutex
	timer *time.Timer
}

func watchPayload(payloadPath string, logger *zap.SugaredLogger, onChange func()) (*payloadWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &payloadWatcher{
		watcher:     watcher,
		payloadPath: filepath.Clean(payloadPath),
		logger:      logger,
		onChange:    onChange,
	}

	if err := watcher.Add(filepath.Dir(payloadPath)); err != nil {
		watcher.Close()
		return nil, err
	}

	go w.handleChanges()
	return w, nil
}

func (w *payloadWatcher) handleChanges() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if filepath.Clean(event.Name) != w.payloadPath {
				continue
			}
			w.handleDebounce()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warnw("payload watcher error", zap.Error(err))
		}
	}
}

// handleDebounce coalesces bursts of file events into a single onChange call.
func (w *payloadWatcher) handleDebounce() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(_debounceTimeout, w.onChange)
}

func (w *payloadWatcher) close() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()

	return w.watcher.Close()
}
