package backend

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"sync"
	"time"
)

// Kind identifies the file an event refers to.
type Kind int

const (
	KindDocument Kind = iota
	KindSchema
)

func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "document"
	case KindSchema:
		return "schema"
	}
	return "unknown"
}

// Event reports that a watched file changed on disk or could not be read.
type Event struct {
	Kind    Kind
	Path    string
	ModTime time.Time
	Err     error
}

// Watcher polls files at a fixed interval and publishes an event whenever a
// modification time moves away from the last one seen.
type Watcher struct {
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	baseline map[Kind]time.Time

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts one poller per entry of files. Empty paths are skipped.
func NewWatcher(interval time.Duration, files map[Kind]string) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		baseline: map[Kind]time.Time{},
		events:   make(chan Event, 16),
	}
	for kind, path := range files {
		if path == "" {
			continue
		}
		w.baseline[kind] = modTime(path)
		w.startPoller(kind, path)
	}

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of file events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Pollers exit after their current stat completes;
// use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all poller goroutines have exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

// Sync records the current modification time of path as seen, so a write
// made by this process is not reported back as an external change.
func (w *Watcher) Sync(kind Kind, path string) {
	if w == nil {
		return
	}
	w.mu.Lock()
	w.baseline[kind] = modTime(path)
	w.mu.Unlock()
}

func (w *Watcher) startPoller(kind Kind, path string) {
	throttle := newThrottle(250 * time.Millisecond)
	w.wg.Add(1)
	go w.poll(kind, func(ctx context.Context) (Event, bool) {
		if !throttle.wait(ctx) {
			return Event{}, false
		}
		return w.check(kind, path)
	})
}

// check compares the file against its baseline. A missing file is not an
// error; it only counts as a change once it appears.
func (w *Watcher) check(kind Kind, path string) (Event, bool) {
	info, err := os.Stat(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Event{Kind: kind, Path: path, Err: err}, true
	}
	var current time.Time
	if err == nil {
		current = info.ModTime()
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if current.Equal(w.baseline[kind]) {
		return Event{}, false
	}
	w.baseline[kind] = current
	return Event{Kind: kind, Path: path, ModTime: current}, true
}

func (w *Watcher) poll(kind Kind, fetch func(context.Context) (Event, bool)) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			evt, changed := fetch(w.ctx)
			if !changed {
				continue
			}
			select {
			case <-w.ctx.Done():
				return
			case w.events <- evt:
			}
		}
	}
}

func modTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
