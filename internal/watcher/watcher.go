// Package watcher reports debounced changes to layout and resource files so
// that an open view tree can be re-applied while the files are edited.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	verrors "github.com/conneroisu/viewforge/internal/errors"
	"github.com/conneroisu/viewforge/internal/logging"
)

// FileWatcher watches files for changes and hands batches of events to its
// handlers once the files have been quiet for the debounce delay.
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	debouncer *Debouncer
	filters   []FileFilter
	handlers  []ChangeHandler
	logger    logging.Logger
	mutex     sync.RWMutex
}

// ChangeEvent represents a file change event
type ChangeEvent struct {
	Type    EventType
	Path    string
	ModTime time.Time
	Size    int64
}

// EventType represents the type of file change
type EventType int

const (
	EventTypeCreated EventType = iota
	EventTypeModified
	EventTypeDeleted
	EventTypeRenamed
)

// String returns the string representation of the EventType
func (e EventType) String() string {
	switch e {
	case EventTypeCreated:
		return "created"
	case EventTypeModified:
		return "modified"
	case EventTypeDeleted:
		return "deleted"
	case EventTypeRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// FileFilter determines if a file should be watched
type FileFilter func(path string) bool

// ChangeHandler handles a debounced batch of events.
type ChangeHandler func(ctx context.Context, events []ChangeEvent) error

// Debouncer groups rapid file changes together
type Debouncer struct {
	delay   time.Duration
	events  chan ChangeEvent
	output  chan []ChangeEvent
	timer   *time.Timer
	pending []ChangeEvent
	mutex   sync.Mutex
}

// Option configures a FileWatcher.
type Option func(*FileWatcher)

// WithLogger sets the logger used for watcher and handler errors.
func WithLogger(logger logging.Logger) Option {
	return func(fw *FileWatcher) {
		fw.logger = logger.WithComponent("watcher")
	}
}

// New creates a file watcher that waits debounceDelay after the last change
// before reporting.
func New(debounceDelay time.Duration, opts ...Option) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, verrors.NewIOError(verrors.ErrCodeInternalFailure, "cannot create file watcher", err)
	}

	fw := &FileWatcher{
		watcher:   watcher,
		debouncer: newDebouncer(debounceDelay),
		logger:    logging.Nop(),
	}
	for _, opt := range opts {
		opt(fw)
	}
	return fw, nil
}

func newDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{
		delay:   delay,
		events:  make(chan ChangeEvent, 100),
		output:  make(chan []ChangeEvent, 10),
		pending: make([]ChangeEvent, 0),
	}
}

// AddFilter adds a file filter. An event is reported only when every filter
// accepts its path.
func (fw *FileWatcher) AddFilter(filter FileFilter) {
	fw.mutex.Lock()
	defer fw.mutex.Unlock()
	fw.filters = append(fw.filters, filter)
}

// AddHandler adds a change handler
func (fw *FileWatcher) AddHandler(handler ChangeHandler) {
	fw.mutex.Lock()
	defer fw.mutex.Unlock()
	fw.handlers = append(fw.handlers, handler)
}

// AddPath adds a file or directory to watch.
func (fw *FileWatcher) AddPath(path string) error {
	cleanPath, err := cleanPath(path)
	if err != nil {
		return err
	}
	if err := fw.watcher.Add(cleanPath); err != nil {
		return verrors.NewIOError(verrors.ErrCodeFileNotFound, "cannot watch "+path, err)
	}
	return nil
}

// WatchFiles watches the directories holding paths and restricts reports to
// exactly those files. Watching the directory keeps the watch alive across
// editors that save by renaming a temporary file over the original.
func (fw *FileWatcher) WatchFiles(paths ...string) error {
	wanted := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		clean, err := cleanPath(p)
		if err != nil {
			return err
		}
		wanted[clean] = true
		dirs[filepath.Dir(clean)] = true
	}
	for dir := range dirs {
		if err := fw.AddPath(dir); err != nil {
			return err
		}
	}
	fw.AddFilter(func(path string) bool {
		clean, err := cleanPath(path)
		return err == nil && wanted[clean]
	})
	return nil
}

// cleanPath resolves path to a clean absolute form.
func cleanPath(path string) (string, error) {
	if path == "" || strings.Contains(path, "\x00") {
		return "", verrors.NewValidationError(verrors.ErrCodeValidation, fmt.Sprintf("invalid path %q", path))
	}
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", verrors.NewIOError(verrors.ErrCodeFileNotFound, "cannot resolve "+path, err)
	}
	return abs, nil
}

// Start runs the watcher until ctx is cancelled.
func (fw *FileWatcher) Start(ctx context.Context) error {
	go fw.debouncer.start(ctx)
	go fw.processEvents(ctx)
	go fw.watchLoop(ctx)
	return nil
}

// Stop stops the file watcher and cleans up resources
func (fw *FileWatcher) Stop() error {
	fw.debouncer.stop()
	return fw.watcher.Close()
}

func (fw *FileWatcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			fw.handleFsnotifyEvent(event)
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Warn(ctx, err, "file watcher error")
		}
	}
}

func (fw *FileWatcher) handleFsnotifyEvent(event fsnotify.Event) {
	if event.Op == fsnotify.Chmod {
		return
	}

	fw.mutex.RLock()
	filters := fw.filters
	fw.mutex.RUnlock()

	for _, filter := range filters {
		if !filter(event.Name) {
			return
		}
	}

	var modTime time.Time
	var size int64
	if info, err := os.Stat(event.Name); err == nil {
		modTime = info.ModTime()
		size = info.Size()
	}

	var eventType EventType
	switch {
	case event.Op.Has(fsnotify.Create):
		eventType = EventTypeCreated
	case event.Op.Has(fsnotify.Write):
		eventType = EventTypeModified
	case event.Op.Has(fsnotify.Remove):
		eventType = EventTypeDeleted
	case event.Op.Has(fsnotify.Rename):
		eventType = EventTypeRenamed
	default:
		eventType = EventTypeModified
	}

	select {
	case fw.debouncer.events <- ChangeEvent{Type: eventType, Path: event.Name, ModTime: modTime, Size: size}:
	default:
		// Channel full, skip this event
	}
}

func (fw *FileWatcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case events := <-fw.debouncer.output:
			fw.mutex.RLock()
			handlers := fw.handlers
			fw.mutex.RUnlock()

			for _, handler := range handlers {
				if err := handler(ctx, events); err != nil {
					fw.logger.Error(ctx, err, "change handler failed", "events", len(events))
				}
			}
		}
	}
}

func (d *Debouncer) start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			d.stop()
			return
		case event := <-d.events:
			d.addEvent(event)
		}
	}
}

func (d *Debouncer) stop() {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
}

func (d *Debouncer) addEvent(event ChangeEvent) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.pending = append(d.pending, event)

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.flush)
}

// flush sends the pending events, keeping the last event per path, sorted
// by path.
func (d *Debouncer) flush() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if len(d.pending) == 0 {
		return
	}

	latest := make(map[string]ChangeEvent, len(d.pending))
	for _, event := range d.pending {
		latest[event.Path] = event
	}
	events := make([]ChangeEvent, 0, len(latest))
	for _, event := range latest {
		events = append(events, event)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Path < events[j].Path })

	select {
	case d.output <- events:
	default:
		// Channel full, skip
	}

	d.pending = d.pending[:0]
}

// YAMLFilter accepts layout and resource documents.
func YAMLFilter(path string) bool {
	switch filepath.Ext(path) {
	case ".yml", ".yaml":
		return true
	}
	return false
}

// NoEditorFilter rejects hidden files and the swap and backup files editors
// write next to the real one.
func NoEditorFilter(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") || strings.HasPrefix(base, "#") {
		return false
	}
	return !strings.HasSuffix(base, "~") && !strings.HasSuffix(base, ".swp")
}
