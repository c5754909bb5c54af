package sapling

// Handle is a lazy, load-once reference to an external resource.
//
// The load function runs on the first Get. A successful result is cached
// until Clear; a failed load is returned to the caller and retried on the
// next Get. Handles are not safe for concurrent use; like the rest of
// sapling they are driven from the game loop goroutine.
type Handle[T any] struct {
	load   func() (T, error)
	value  T
	loaded bool
}

// NewHandle creates a Handle backed by load.
func NewHandle[T any](load func() (T, error)) *Handle[T] {
	return &Handle[T]{load: load}
}

// Get returns the cached value, loading it first if needed.
func (h *Handle[T]) Get() (T, error) {
	if h.loaded {
		return h.value, nil
	}
	v, err := h.load()
	if err != nil {
		var zero T
		return zero, err
	}
	h.value = v
	h.loaded = true
	return v, nil
}

// MustGet is like Get but panics on error. Intended for setup code
// where a missing resource is a programming error.
func (h *Handle[T]) MustGet() T {
	v, err := h.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// Loaded reports whether the handle currently caches a value.
func (h *Handle[T]) Loaded() bool {
	return h.loaded
}

// Clear drops the cached value. The next Get loads again.
func (h *Handle[T]) Clear() {
	var zero T
	h.value = zero
	h.loaded = false
}
