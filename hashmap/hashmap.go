package hashmap

import (
	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
)

const defaultCapacity = uint64(16)

// Entry is a key-value pair stored in a HashMap.
type Entry[V any] struct {
	Key   string
	Value V
}

// A HashMap maps string keys to values of type V using separate chaining.
//
// The table starts with 16 buckets and doubles whenever, at the start of a Set,
// it holds more than 3/4 as many keys as buckets; every existing entry is then
// rehashed into the new bucket array. Capacity never shrinks, except that Clear
// returns to the initial 16 buckets.
//
// The zero value is an empty map ready to use. A HashMap is not safe for
// concurrent use; see Locked.
type HashMap[V any] struct {
	buckets []*chain[V]
	count   uint64
}

// hash computes a polynomial hash of key's code points (h = 31*h + c) with
// 32-bit wraparound.
func hash(key string) int32 {
	var h = int32(0)
	for _, c := range key {
		h = h*31 + int32(c)
	}
	return h
}

// bucketIdx reduces the hash of key to an index in [0, numBuckets).
func bucketIdx(key string, numBuckets uint64) uint64 {
	idx := int64(hash(key)) % int64(numBuckets)
	if idx < 0 {
		idx += int64(numBuckets)
	}
	return uint64(idx)
}

func createNewBuckets[V any](newSize uint64) []*chain[V] {
	var newBuckets = make([]*chain[V], 0, newSize)
	for i := uint64(0); i < newSize; i++ {
		newBuckets = append(newBuckets, newChain[V]())
	}
	return newBuckets
}

// New returns an empty HashMap with the default capacity of 16.
func New[V any]() *HashMap[V] {
	return &HashMap[V]{
		buckets: createNewBuckets[V](defaultCapacity),
	}
}

func (m *HashMap[V]) bucket(idx uint64) *chain[V] {
	// the hash is always reduced modulo the current capacity
	primitive.Assert(idx < uint64(len(m.buckets)))
	return m.buckets[idx]
}

// lookup returns the chain key belongs to, or nil if no buckets have been
// allocated yet.
func (m *HashMap[V]) lookup(key string) *chain[V] {
	numBuckets := uint64(len(m.buckets))
	if numBuckets == 0 {
		return nil
	}
	return m.bucket(bucketIdx(key, numBuckets))
}

// place puts key in its bucket under the current capacity without touching
// the key count. It reports whether a new entry was created.
func (m *HashMap[V]) place(key string, value V) bool {
	return m.bucket(bucketIdx(key, uint64(len(m.buckets)))).insertOrUpdate(key, value)
}

// checkLoad allocates the initial buckets or grows the table, based on the
// key count before the pending Set.
func (m *HashMap[V]) checkLoad() {
	numBuckets := uint64(len(m.buckets))
	if numBuckets == 0 {
		m.buckets = createNewBuckets[V](defaultCapacity)
		return
	}
	if numBuckets*3/4 < m.count {
		m.grow(numBuckets * 2)
	}
}

func (m *HashMap[V]) grow(newSize uint64) {
	entries := m.Entries()
	m.buckets = createNewBuckets[V](newSize)
	for _, e := range entries {
		m.place(e.Key, e.Value)
	}
}

// Set associates value with key, overwriting any previous value.
func (m *HashMap[V]) Set(key string, value V) {
	m.checkLoad()
	if m.place(key, value) {
		m.count = std.SumAssumeNoOverflow(m.count, 1)
	}
}

// Get returns the value for key. The boolean is false if key is not present.
func (m *HashMap[V]) Get(key string) (V, bool) {
	c := m.lookup(key)
	if c == nil {
		var zero V
		return zero, false
	}
	n := c.find(key)
	if n == nil {
		var zero V
		return zero, false
	}
	return n.value, true
}

func (m *HashMap[V]) Has(key string) bool {
	c := m.lookup(key)
	return c != nil && c.find(key) != nil
}

// Remove deletes key and reports whether it was present.
func (m *HashMap[V]) Remove(key string) bool {
	c := m.lookup(key)
	if c == nil || c.find(key) == nil {
		return false
	}
	c.remove(key)
	m.count--
	return true
}

// Len returns the number of keys in the map.
func (m *HashMap[V]) Len() uint64 {
	return m.count
}

// Cap returns the number of buckets.
func (m *HashMap[V]) Cap() uint64 {
	return uint64(len(m.buckets))
}

// Clear removes every entry and resets the capacity to 16.
func (m *HashMap[V]) Clear() {
	m.buckets = createNewBuckets[V](defaultCapacity)
	m.count = 0
}

// Keys returns all keys, ordered by bucket and then by insertion within a
// bucket. Keys, Values and Entries use the same order.
func (m *HashMap[V]) Keys() []string {
	var keys = make([]string, 0, m.count)
	for _, c := range m.buckets {
		keys = append(keys, c.keys()...)
	}
	return keys
}

func (m *HashMap[V]) Values() []V {
	var values = make([]V, 0, m.count)
	for _, c := range m.buckets {
		values = append(values, c.values()...)
	}
	return values
}

// Entries returns all key-value pairs in a single pass over the buckets. Prefer
// it over separate calls to Keys and Values when both are needed.
func (m *HashMap[V]) Entries() []Entry[V] {
	var entries = make([]Entry[V], 0, m.count)
	for _, c := range m.buckets {
		entries = c.entries(entries)
	}
	return entries
}
