package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	verrors "github.com/conneroisu/viewforge/internal/errors"
	"github.com/conneroisu/viewforge/internal/logging"
)

// ErrSealed is returned by Register and Unregister after Seal.
var ErrSealed = verrors.NewChainError(verrors.ErrCodeRegistrySealed, "registry is sealed")

// Registry manages the builders known to a construction engine. Mutations
// are expected during start-up; after Seal the registry is read-only and
// safe for any number of concurrent readers.
type Registry struct {
	builders map[string]Builder
	mutex    sync.RWMutex
	watchers []chan Event
	sealed   bool
	logger   logging.Logger
}

// Event represents a change in the registry.
type Event struct {
	Type      EventType
	Tag       string
	Builder   Builder
	Timestamp time.Time
}

// EventType represents the type of registry event.
type EventType int

const (
	EventTypeAdded EventType = iota
	EventTypeUpdated
	EventTypeRemoved
)

func (t EventType) String() string {
	switch t {
	case EventTypeAdded:
		return "added"
	case EventTypeUpdated:
		return "updated"
	case EventTypeRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registration warnings.
func WithLogger(l logging.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l.WithComponent("registry")
		}
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		builders: make(map[string]Builder),
		watchers: make([]chan Event, 0),
		logger:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a builder. A second builder for the same tag replaces the
// first and a warning is logged.
func (r *Registry) Register(b Builder) error {
	if b == nil || b.TypeTag() == "" {
		return verrors.NewChainError(verrors.ErrCodeInvalidBuilder, "builder must have a non-empty type tag")
	}
	if b.TypeTag() == b.BaseTag() {
		return verrors.NewChainError(verrors.ErrCodeChainCycle, "builder names itself as base").WithClass(b.TypeTag())
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.sealed {
		return ErrSealed
	}

	tag := b.TypeTag()
	eventType := EventTypeAdded
	if _, exists := r.builders[tag]; exists {
		eventType = EventTypeUpdated
		r.logger.Warn(context.Background(), nil, "replacing builder for duplicate type tag", "tag", tag)
	}
	r.builders[tag] = b
	r.notify(Event{Type: eventType, Tag: tag, Builder: b, Timestamp: time.Now()})
	return nil
}

// Unregister removes the builder for tag. It reports whether one existed.
func (r *Registry) Unregister(tag string) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.sealed {
		return false, ErrSealed
	}
	b, exists := r.builders[tag]
	if !exists {
		return false, nil
	}
	delete(r.builders, tag)
	r.notify(Event{Type: EventTypeRemoved, Tag: tag, Builder: b, Timestamp: time.Now()})
	return true, nil
}

func (r *Registry) notify(event Event) {
	for _, watcher := range r.watchers {
		select {
		case watcher <- event:
		default:
			// Skip if channel is full
		}
	}
}

// Seal makes the registry read-only.
func (r *Registry) Seal() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.sealed = true
}

// Sealed reports whether Seal was called.
func (r *Registry) Sealed() bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.sealed
}

// Lookup returns the builder registered for tag.
func (r *Registry) Lookup(tag string) (Builder, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	b, exists := r.builders[tag]
	return b, exists
}

// Chain returns the builders for tag ordered root first, leaf last.
func (r *Registry) Chain(tag string) ([]Builder, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.chainLocked(tag)
}

func (r *Registry) chainLocked(tag string) ([]Builder, error) {
	leaf, exists := r.builders[tag]
	if !exists {
		return nil, verrors.NewUnknownTypeError(tag)
	}

	chain := []Builder{leaf}
	visited := map[string]bool{tag: true}
	for base := leaf.BaseTag(); base != ""; {
		if visited[base] {
			path := make([]string, 0, len(chain)+1)
			for _, b := range chain {
				path = append(path, b.TypeTag())
			}
			path = append(path, base)
			return nil, verrors.NewChainError(verrors.ErrCodeChainCycle,
				"inheritance cycle: "+strings.Join(path, " -> ")).WithClass(tag)
		}
		b, exists := r.builders[base]
		if !exists {
			return nil, verrors.NewChainError(verrors.ErrCodeMissingBase,
				fmt.Sprintf("base type %q is not registered", base)).WithClass(tag)
		}
		visited[base] = true
		chain = append(chain, b)
		base = b.BaseTag()
	}

	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}

// IsA reports whether tag is ancestor or derives from it.
func (r *Registry) IsA(tag, ancestor string) bool {
	chain, err := r.Chain(tag)
	if err != nil {
		return false
	}
	for _, b := range chain {
		if b.TypeTag() == ancestor {
			return true
		}
	}
	return false
}

// Tags returns the registered tags in lexicographic order. A non-empty
// baseFilter keeps only tags whose resolvable chain contains it.
func (r *Registry) Tags(baseFilter string) []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	tags := make([]string, 0, len(r.builders))
	for tag := range r.builders {
		if baseFilter != "" {
			chain, err := r.chainLocked(tag)
			if err != nil || !containsTag(chain, baseFilter) {
				continue
			}
		}
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func containsTag(chain []Builder, tag string) bool {
	for _, b := range chain {
		if b.TypeTag() == tag {
			return true
		}
	}
	return false
}

// DisplayName returns the display name of tag's builder.
func (r *Registry) DisplayName(tag string) (string, bool) {
	b, exists := r.Lookup(tag)
	if !exists {
		return "", false
	}
	return b.DisplayName(), true
}

// Validate resolves every registered chain and returns the first error.
func (r *Registry) Validate() error {
	for _, tag := range r.Tags("") {
		if _, err := r.Chain(tag); err != nil {
			return err
		}
	}
	return nil
}

// Watch returns a channel that receives registry events.
func (r *Registry) Watch() <-chan Event {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	ch := make(chan Event, 100)
	r.watchers = append(r.watchers, ch)
	return ch
}

// UnWatch removes a watcher channel and closes it.
func (r *Registry) UnWatch(ch <-chan Event) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, watcher := range r.watchers {
		if watcher == ch {
			close(watcher)
			r.watchers = append(r.watchers[:i], r.watchers[i+1:]...)
			break
		}
	}
}

// Count returns the number of registered builders.
func (r *Registry) Count() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.builders)
}
