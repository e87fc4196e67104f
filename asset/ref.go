package asset

// Ref is a reference-counted handle to a shared resource
// The release function runs once, when the last reference is dropped
// Handles are owned by the simulation thread and are not synchronized
type Ref[T any] struct {
	value   T
	refs    int
	release func(T)
}

// NewRef wraps value with a single reference owned by the caller
func NewRef[T any](value T, release func(T)) *Ref[T] {
	return &Ref[T]{value: value, refs: 1, release: release}
}

// Get returns the underlying resource
func (r *Ref[T]) Get() T {
	return r.value
}

// Retain adds a reference and returns the same handle, nil-safe
func (r *Ref[T]) Retain() *Ref[T] {
	if r == nil {
		return nil
	}
	r.refs++
	return r
}

// Release drops a reference, nil-safe and idempotent once dead
func (r *Ref[T]) Release() {
	if r == nil || r.refs == 0 {
		return
	}
	r.refs--
	if r.refs == 0 && r.release != nil {
		r.release(r.value)
	}
}

// Refs returns the live reference count
func (r *Ref[T]) Refs() int {
	if r == nil {
		return 0
	}
	return r.refs
}

// Alive reports whether any reference is still held
func (r *Ref[T]) Alive() bool {
	return r.Refs() > 0
}
