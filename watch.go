// FILE: lixenwraith/classkit/watch.go
package classkit

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

const DefaultMaxWatchers = 100 // Prevent resource exhaustion

// Watch event names sent to subscribers besides changed "section.entry" paths.
const (
	EventFileDeleted = "file_deleted"
	EventReloadError = "reload_error"
	EventTimeout     = "reload_timeout"
)

// WatchOptions configures theme file watching
type WatchOptions struct {
	// PollInterval for file stat checks (minimum 100ms)
	PollInterval time.Duration

	// Debounce duration to avoid rapid reloads
	Debounce time.Duration

	// MaxWatchers limits concurrent subscriber channels
	MaxWatchers int

	// ReloadTimeout for file reload operations
	ReloadTimeout time.Duration
}

// DefaultWatchOptions returns sensible defaults for file watching
func DefaultWatchOptions() WatchOptions {
	return WatchOptions{
		PollInterval:  DefaultPollInterval,
		Debounce:      DefaultDebounce,
		MaxWatchers:   DefaultMaxWatchers,
		ReloadTimeout: DefaultReloadTimeout,
	}
}

// watcher manages file watching state
type watcher struct {
	mu               sync.RWMutex
	ctx              context.Context
	cancel           context.CancelFunc
	opts             WatchOptions
	filePath         string
	lastModTime      time.Time
	lastSize         int64
	watching         atomic.Bool
	reloadInProgress atomic.Bool
	subscribers      map[int64]chan string
	subscriberID     atomic.Int64
	debounceTimer    *time.Timer
}

// WatchFile extends the theme from path and keeps polling it; every change
// is applied through ExtendFile, so the cache is invalidated on each reload.
// A running watcher on another file is stopped first.
func (e *Engine) WatchFile(path string) error {
	return e.WatchFileWithOptions(path, DefaultWatchOptions())
}

// WatchFileWithOptions is WatchFile with custom options.
func (e *Engine) WatchFileWithOptions(path string, opts WatchOptions) error {
	if opts.PollInterval < MinPollInterval {
		opts.PollInterval = MinPollInterval
	}
	if opts.MaxWatchers <= 0 {
		opts.MaxWatchers = DefaultMaxWatchers
	}
	if opts.ReloadTimeout <= 0 {
		opts.ReloadTimeout = DefaultReloadTimeout
	}

	e.StopWatch()

	if _, err := e.ExtendFile(path); err != nil {
		return fmt.Errorf("failed to load theme file for watching: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &watcher{
		ctx:         ctx,
		cancel:      cancel,
		opts:        opts,
		filePath:    path,
		subscribers: make(map[int64]chan string),
	}
	if info, err := os.Stat(path); err == nil {
		w.lastModTime = info.ModTime()
		w.lastSize = info.Size()
	}

	e.watchMu.Lock()
	e.watcher = w
	e.watchMu.Unlock()

	w.watching.Store(true)
	go w.watchLoop(e)
	return nil
}

// StopWatch stops the theme file watcher and closes subscriber channels.
func (e *Engine) StopWatch() {
	e.watchMu.Lock()
	w := e.watcher
	e.watcher = nil
	e.watchMu.Unlock()

	if w != nil {
		w.stop()
	}
}

// IsWatching returns true while a theme file watcher is running
func (e *Engine) IsWatching() bool {
	e.watchMu.Lock()
	defer e.watchMu.Unlock()
	return e.watcher != nil && e.watcher.watching.Load()
}

// Subscribe returns a channel receiving changed "section.entry" paths and
// watch events. Without a running watcher the channel is already closed.
func (e *Engine) Subscribe() <-chan string {
	e.watchMu.Lock()
	w := e.watcher
	e.watchMu.Unlock()

	if w == nil {
		ch := make(chan string)
		close(ch)
		return ch
	}
	return w.subscribe()
}

// watchLoop is the main file watching loop
func (w *watcher) watchLoop(e *Engine) {
	defer w.watching.Store(false)

	ticker := time.NewTicker(w.opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			w.checkAndReload(e)
		}
	}
}

// checkAndReload checks if file changed and schedules a debounced reload
func (w *watcher) checkAndReload(e *Engine) {
	info, err := os.Stat(w.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			w.notify(EventFileDeleted)
		}
		return
	}

	if info.ModTime().Equal(w.lastModTime) && info.Size() == w.lastSize {
		return
	}
	w.lastModTime = info.ModTime()
	w.lastSize = info.Size()

	w.mu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.opts.Debounce, func() {
		w.performReload(e)
	})
	w.mu.Unlock()
}

// performReload re-extends the theme from the watched file
func (w *watcher) performReload(e *Engine) {
	if !w.reloadInProgress.CompareAndSwap(false, true) {
		return
	}
	defer w.reloadInProgress.Store(false)

	ctx, cancel := context.WithTimeout(w.ctx, w.opts.ReloadTimeout)
	defer cancel()

	type result struct {
		changed []string
		err     error
	}
	done := make(chan result, 1)
	go func() {
		changed, err := e.ExtendFile(w.filePath)
		done <- result{changed, err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			w.notify(fmt.Sprintf("%s:%v", EventReloadError, r.err))
			return
		}
		for _, path := range r.changed {
			w.notify(path)
		}
	case <-ctx.Done():
		if w.ctx.Err() == nil {
			w.notify(EventTimeout)
		}
	}
}

// subscribe creates a new subscriber channel
func (w *watcher) subscribe() <-chan string {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.subscribers) >= w.opts.MaxWatchers || w.ctx.Err() != nil {
		ch := make(chan string)
		close(ch)
		return ch
	}

	ch := make(chan string, 10)
	id := w.subscriberID.Add(1)
	w.subscribers[id] = ch

	go func() {
		<-w.ctx.Done()
		w.mu.Lock()
		delete(w.subscribers, id)
		close(ch)
		w.mu.Unlock()
	}()

	return ch
}

// notify sends an event to all subscribers without blocking
func (w *watcher) notify(event string) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, ch := range w.subscribers {
		select {
		case ch <- event:
		default:
			// Subscriber is full, drop the event
		}
	}
}

// stop terminates the watcher
func (w *watcher) stop() {
	if w.cancel != nil {
		w.cancel()
	}

	w.mu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
		w.debounceTimer = nil
	}
	w.mu.Unlock()

	deadline := time.Now().Add(ShutdownTimeout)
	for w.watching.Load() && time.Now().Before(deadline) {
		time.Sleep(SpinWaitInterval)
	}
}
