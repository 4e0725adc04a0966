// Package lru implements a fixed-capacity cache with least-recently-used
// eviction. It is not safe for concurrent use; callers that share a cache
// across goroutines must provide their own locking.
package lru

import "container/list"

// Cache maps keys to values, keeping at most a fixed number of entries.
// When the cache is full, adding a new key evicts the entry that was
// accessed least recently.
type Cache[K comparable, V any] struct {
	capacity int
	order    *list.List // front = most recently used
	items    map[K]*list.Element
	evicted  uint64
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// New creates a cache holding at most capacity entries.
// Capacity must be at least 1.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity < 1 {
		panic("lru: capacity must be at least 1")
	}
	return &Cache[K, V]{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[K]*list.Element, capacity),
	}
}

// Get returns the value stored under key and marks it as most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	if el, ok := c.items[key]; ok {
		c.order.MoveToFront(el)
		return el.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Add stores value under key, marking it as most recently used.
// If the key already exists its value is replaced. If the cache is full,
// the least recently used entry is evicted first.
func (c *Cache[K, V]) Add(key K, value V) {
	if el, ok := c.items[key]; ok {
		el.Value.(*entry[K, V]).value = value
		c.order.MoveToFront(el)
		return
	}
	if c.order.Len() >= c.capacity {
		c.evictOldest()
	}
	c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})
}

// Remove deletes the entry stored under key, reporting whether it was present.
func (c *Cache[K, V]) Remove(key K) bool {
	el, ok := c.items[key]
	if !ok {
		return false
	}
	c.order.Remove(el)
	delete(c.items, key)
	return true
}

// Clear drops every entry. The eviction counter is preserved.
func (c *Cache[K, V]) Clear() {
	c.order.Init()
	clear(c.items)
}

// Len returns the number of entries currently stored.
func (c *Cache[K, V]) Len() int { return c.order.Len() }

// Capacity returns the maximum number of entries the cache can hold.
func (c *Cache[K, V]) Capacity() int { return c.capacity }

// Evictions returns the number of entries dropped due to capacity pressure
// since the cache was created.
func (c *Cache[K, V]) Evictions() uint64 { return c.evicted }

func (c *Cache[K, V]) evictOldest() {
	el := c.order.Back()
	if el == nil {
		return
	}
	c.order.Remove(el)
	delete(c.items, el.Value.(*entry[K, V]).key)
	c.evicted++
}
