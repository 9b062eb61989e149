package syncmap

import "sync"

// Map is a thread-safe generic map structure. Dispatch paths read it
// concurrently while a listing refresh is the only writer, so all accessors
// take the read lock unless they mutate.
type Map[T any] struct {
	mux sync.RWMutex
	m   map[string]T
}

// NewRegistry creates a new instance of Map
func NewRegistry[T any]() *Map[T] {
	return &Map[T]{
		m: make(map[string]T),
	}
}

// Get retrieves an item by name
func (r *Map[T]) Get(name string) (T, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	v, ok := r.m[name]
	return v, ok
}

// Set adds or updates an item by name
func (r *Map[T]) Set(name string, value T) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.m[name] = value
}

// SetIfAbsent stores value under name unless the key already exists. It
// returns the value that ended up in the map and whether the store happened.
// Collision detection in the wire-name registry relies on the check and the
// store being one atomic step.
func (r *Map[T]) SetIfAbsent(name string, value T) (T, bool) {
	r.mux.Lock()
	defer r.mux.Unlock()
	if existing, ok := r.m[name]; ok {
		return existing, false
	}
	r.m[name] = value
	return value, true
}

// Delete removes an item by name
func (r *Map[T]) Delete(name string) {
	r.mux.Lock()
	defer r.mux.Unlock()
	delete(r.m, name)
}

// Len returns the number of stored items.
func (r *Map[T]) Len() int {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return len(r.m)
}

// List returns a slice of all items
func (r *Map[T]) List() []T {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]T, 0, len(r.m))
	for _, v := range r.m {
		ret = append(ret, v)
	}
	return ret
}
