package asset

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrNotFound is returned when a loader cannot produce the requested resource
var ErrNotFound = errors.New("resource not found")

// Loader produces a resource for key, opts carries loader-specific arguments
type Loader[O, T any] func(key string, opts O) (T, error)

// Cache maps asset keys to shared handles with load-or-fetch semantics
// Entries live for the lifetime of the cache and are never evicted
// Not safe for concurrent use
type Cache[O, T any] struct {
	name    string
	entries map[string]*Ref[T]
	load    Loader[O, T]
	release func(T)
	log     *zap.Logger
}

// NewCache creates an empty cache, release is invoked when a resource's last reference drops
func NewCache[O, T any](name string, load Loader[O, T], release func(T), log *zap.Logger) *Cache[O, T] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache[O, T]{
		name:    name,
		entries: make(map[string]*Ref[T]),
		load:    load,
		release: release,
		log:     log.Named(name),
	}
}

// Load returns a retained handle for key, invoking the loader on a miss
// A failed load inserts nothing so a later call may retry
func (c *Cache[O, T]) Load(key string, opts O) (*Ref[T], bool) {
	ref, err := c.fetch(key, opts)
	if err != nil {
		c.log.Debug("load failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return ref, true
}

// Preload loads key into the cache without keeping a caller reference
func (c *Cache[O, T]) Preload(key string, opts O) error {
	ref, err := c.fetch(key, opts)
	if err != nil {
		return fmt.Errorf("%s %q: %w", c.name, key, err)
	}
	ref.Release()
	return nil
}

// Get returns a retained handle for an already loaded key
func (c *Cache[O, T]) Get(key string) (*Ref[T], bool) {
	ref, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return ref.Retain(), true
}

// Len returns the number of cached resources
func (c *Cache[O, T]) Len() int {
	return len(c.entries)
}

// Close drops the cache's own references, resources still held elsewhere stay alive
func (c *Cache[O, T]) Close() {
	for key, ref := range c.entries {
		ref.Release()
		delete(c.entries, key)
	}
}

func (c *Cache[O, T]) fetch(key string, opts O) (*Ref[T], error) {
	if ref, ok := c.entries[key]; ok {
		return ref.Retain(), nil
	}

	value, err := c.load(key, opts)
	if err != nil {
		return nil, err
	}

	ref := NewRef(value, c.release)
	c.entries[key] = ref
	c.log.Debug("loaded", zap.String("key", key))
	return ref.Retain(), nil
}
