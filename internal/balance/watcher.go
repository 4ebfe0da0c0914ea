package balance

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/commons/logger_config"
)

// Watcher reloads a provider's overrides whenever the balance file changes
// on disk, so tuning passes don't need a restart.
type Watcher struct {
	fw   *fsnotify.Watcher
	quit chan struct{}
}

func Watch(p *Provider, path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create balance watcher: %w", err)
	}
	// Watch the directory: editors often replace the file wholesale, which
	// drops a watch placed on the file itself.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch balance dir: %w", err)
	}

	w := &Watcher{fw: fw, quit: make(chan struct{})}
	go w.loop(p, filepath.Clean(path))
	return w, nil
}

func (w *Watcher) Close() {
	close(w.quit)
	w.fw.Close()
}

func (w *Watcher) loop(p *Provider, path string) {
	for {
		select {
		case <-w.quit:
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if err := p.LoadFile(path); err != nil {
				logger_config.Warnf("balance: reload failed: %v", err)
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			logger_config.Warnf("balance: watcher error: %v", err)
		}
	}
}
