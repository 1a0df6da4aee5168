package typekey

import "sync"

// Registry interns TypeKeys for a single type-resolution context. Each
// distinct canonical form is computed once per observed type; every later
// observation of an equivalent type yields the identical TypeKey. The
// registry is thread-safe so independent descriptor constructions in a
// batch can share it without synchronization of their own.
type Registry[T any] struct {
	mu       sync.RWMutex
	identity Identity[T]
	items    map[string]TypeKey
	order    []TypeKey
}

// NewRegistry creates an interning registry backed by the given identity provider
func NewRegistry[T any](identity Identity[T]) *Registry[T] {
	return &Registry[T]{
		identity: identity,
		items:    make(map[string]TypeKey),
	}
}

// KeyOf returns the TypeKey for t, interning it on first observation
func (r *Registry[T]) KeyOf(t T) TypeKey {
	canonical := r.identity.Canonical(t)

	r.mu.RLock()
	key, exists := r.items[canonical]
	r.mu.RUnlock()
	if exists {
		return key
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another goroutine may have interned it between the two locks
	if key, exists := r.items[canonical]; exists {
		return key
	}

	key = Make(canonical)
	r.items[canonical] = key
	r.order = append(r.order, key)
	return key
}

// Has reports whether a type with the given canonical form has been observed
func (r *Registry[T]) Has(canonical string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.items[canonical]
	return exists
}

// Size returns the number of distinct types observed
func (r *Registry[T]) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// Keys returns all interned keys in first-observation order
func (r *Registry[T]) Keys() []TypeKey {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]TypeKey, len(r.order))
	copy(keys, r.order)
	return keys
}
