package hashmap

// A chain holds the entries that hash to one bucket, as a singly linked list
// in insertion order. It is not safe for concurrent use.

type node[V any] struct {
	key   string
	value V
	next  *node[V]
}

type chain[V any] struct {
	head   *node[V]
	tail   *node[V]
	length uint64
}

func newChain[V any]() *chain[V] {
	return &chain[V]{}
}

// insertOrUpdate overwrites the value for key if it is already in the chain,
// and otherwise appends a new entry at the tail. It returns true only if a new
// entry was added.
func (c *chain[V]) insertOrUpdate(key string, value V) bool {
	n := c.find(key)
	if n != nil {
		n.value = value
		return false
	}
	n = &node[V]{key: key, value: value}
	if c.tail == nil {
		c.head = n
	} else {
		c.tail.next = n
	}
	c.tail = n
	c.length++
	return true
}

// find returns the first node with key, or nil if there is none.
func (c *chain[V]) find(key string) *node[V] {
	var n = c.head
	for n != nil {
		if n.key == key {
			break
		}
		n = n.next
	}
	return n
}

func (c *chain[V]) remove(key string) bool {
	var prev *node[V]
	var n = c.head
	for n != nil {
		if n.key == key {
			break
		}
		prev = n
		n = n.next
	}
	if n == nil {
		return false
	}
	if prev == nil {
		c.head = n.next
	} else {
		prev.next = n.next
	}
	if c.tail == n {
		c.tail = prev
	}
	c.length--
	return true
}

func (c *chain[V]) keys() []string {
	var keys = make([]string, 0, c.length)
	for n := c.head; n != nil; n = n.next {
		keys = append(keys, n.key)
	}
	return keys
}

func (c *chain[V]) values() []V {
	var values = make([]V, 0, c.length)
	for n := c.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

// entries appends the chain's entries to dst and returns the extended slice.
func (c *chain[V]) entries(dst []Entry[V]) []Entry[V] {
	for n := c.head; n != nil; n = n.next {
		dst = append(dst, Entry[V]{Key: n.key, Value: n.value})
	}
	return dst
}
