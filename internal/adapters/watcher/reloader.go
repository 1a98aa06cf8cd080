package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/postpub/internal/core/ports"
)

// Resetter drops cached state derived from watched files.
type Resetter interface {
	Reset()
}

// Reloader resets a cache after each burst of source changes under a project root.
type Reloader struct {
	watcher  ports.Watcher
	target   Resetter
	logger   ports.Logger
	clock    clockwork.Clock
	window   time.Duration
	root     string
	onReload func(paths []string)
}

// NewReloader creates a Reloader resetting target when files change.
func NewReloader(w ports.Watcher, target Resetter, logger ports.Logger) *Reloader {
	return &Reloader{
		watcher: w,
		target:  target,
		logger:  logger,
		clock:   clockwork.NewRealClock(),
		window:  DefaultDebounceWindow,
	}
}

// WithClock replaces the clock driving the debounce window.
func (r *Reloader) WithClock(c clockwork.Clock) *Reloader {
	r.clock = c
	return r
}

// OnReload registers a function called after each reset with the changed paths.
func (r *Reloader) OnReload(fn func(paths []string)) *Reloader {
	r.onReload = fn
	return r
}

// Run watches root until ctx is done. Pending changes are applied before it returns.
func (r *Reloader) Run(ctx context.Context, root string) error {
	r.root = root
	if err := r.watcher.Start(ctx, root); err != nil {
		return err
	}
	defer func() { _ = r.watcher.Stop() }()

	debouncer := NewDebouncerWithClock(r.clock, r.window, r.reload)
	defer debouncer.Flush()

	for event := range r.watcher.Events() {
		r.logger.Debug(fmt.Sprintf("%s %s", event.Operation, r.relative(event.Path)))
		debouncer.Add(event.Path)
	}
	return nil
}

func (r *Reloader) reload(paths []string) {
	r.target.Reset()

	shown := r.relative(paths[0])
	if len(paths) == 1 {
		r.logger.Info(fmt.Sprintf("%s changed, bundles will recompile", shown))
	} else {
		r.logger.Info(fmt.Sprintf("%s and %d more changed, bundles will recompile", shown, len(paths)-1))
	}

	if r.onReload != nil {
		r.onReload(paths)
	}
}

func (r *Reloader) relative(path string) string {
	if rel, err := filepath.Rel(r.root, path); err == nil {
		return filepath.ToSlash(rel)
	}
	return path
}
