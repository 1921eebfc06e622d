package hashmap

import "sync"

// Locked is a HashMap guarded by a single mutex, so it is safe for concurrent
// use.
//
// One lock covers the whole table rather than one per bucket: growth rehashes
// every bucket and swaps the bucket array, so a per-bucket lock would not
// protect a concurrent Set.
type Locked[V any] struct {
	mu *sync.Mutex
	m  *HashMap[V]
}

func NewLocked[V any]() *Locked[V] {
	return &Locked[V]{mu: new(sync.Mutex), m: New[V]()}
}

func (l *Locked[V]) Set(key string, value V) {
	l.mu.Lock()
	l.m.Set(key, value)
	l.mu.Unlock()
}

func (l *Locked[V]) Get(key string) (V, bool) {
	l.mu.Lock()
	v, ok := l.m.Get(key)
	l.mu.Unlock()
	return v, ok
}

func (l *Locked[V]) Has(key string) bool {
	l.mu.Lock()
	ok := l.m.Has(key)
	l.mu.Unlock()
	return ok
}

func (l *Locked[V]) Remove(key string) bool {
	l.mu.Lock()
	ok := l.m.Remove(key)
	l.mu.Unlock()
	return ok
}

// Update atomically replaces the value for key with f(old, ok), where ok
// reports whether key was present.
func (l *Locked[V]) Update(key string, f func(old V, ok bool) V) {
	l.mu.Lock()
	defer l.mu.Unlock()
	old, ok := l.m.Get(key)
	l.m.Set(key, f(old, ok))
}

func (l *Locked[V]) Len() uint64 {
	l.mu.Lock()
	n := l.m.Len()
	l.mu.Unlock()
	return n
}

func (l *Locked[V]) Cap() uint64 {
	l.mu.Lock()
	n := l.m.Cap()
	l.mu.Unlock()
	return n
}

func (l *Locked[V]) Clear() {
	l.mu.Lock()
	l.m.Clear()
	l.mu.Unlock()
}

// Keys, Values and Entries return snapshots taken under the lock.

func (l *Locked[V]) Keys() []string {
	l.mu.Lock()
	keys := l.m.Keys()
	l.mu.Unlock()
	return keys
}

func (l *Locked[V]) Values() []V {
	l.mu.Lock()
	values := l.m.Values()
	l.mu.Unlock()
	return values
}

func (l *Locked[V]) Entries() []Entry[V] {
	l.mu.Lock()
	entries := l.m.Entries()
	l.mu.Unlock()
	return entries
}
