package depot

var _ Cache[int, any] = &SimpleCache[int, any]{}

func (c *SimpleCache[K, V]) Get(key K) (V, bool) {
	item, ok := c.items[key]
	return item, ok
}

// Register stores item under key, replacing any previous item. It fails when a new key would
// exceed the cache's capacity; a capacity of zero is unbounded.
func (c *SimpleCache[K, V]) Register(key K, item V) error {
	if _, exists := c.items[key]; !exists && c.maxCapacity > 0 && len(c.items) >= c.maxCapacity {
		return CacheCapacityError{Capacity: c.maxCapacity}
	}
	c.items[key] = item
	return nil
}

// Evict removes every entry for which stale returns true and reports how many were removed.
func (c *SimpleCache[K, V]) Evict(stale func(K, V) bool) int {
	evicted := 0
	for key, item := range c.items {
		if stale(key, item) {
			delete(c.items, key)
			evicted++
		}
	}
	return evicted
}

func (c *SimpleCache[K, V]) Len() int {
	return len(c.items)
}

func (c *SimpleCache[K, V]) Clear() {
	clear(c.items)
}
