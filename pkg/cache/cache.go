package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// Cache read-through кэш с инвалидацией по времени.
// Устаревшие записи не удаляются: Get возвращает их с isFresh=false,
// чтобы вызывающий код мог отдать их при недоступности источника
type Cache[K comparable, V any] struct {
	mu        sync.RWMutex
	items     map[K]entry[V]
	freshness time.Duration
	now       func() time.Time
}

// New создает кэш с окном свежести freshness
func New[K comparable, V any](freshness time.Duration) *Cache[K, V] {
	return &Cache[K, V]{
		items:     make(map[K]entry[V]),
		freshness: freshness,
		now:       time.Now,
	}
}

// WithClock подменяет источник времени (для тестов)
func (c *Cache[K, V]) WithClock(now func() time.Time) *Cache[K, V] {
	c.now = now
	return c
}

// Get возвращает значение, признак свежести и признак наличия записи
func (c *Cache[K, V]) Get(key K) (value V, isFresh bool, found bool) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		return value, false, false
	}

	return e.value, c.now().Sub(e.storedAt) < c.freshness, true
}

// Put сохраняет значение с моментом получения storedAt
func (c *Cache[K, V]) Put(key K, value V, storedAt time.Time) {
	c.mu.Lock()
	c.items[key] = entry[V]{value: value, storedAt: storedAt}
	c.mu.Unlock()
}

// Invalidate удаляет запись
func (c *Cache[K, V]) Invalidate(key K) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

// Purge очищает кэш полностью
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	c.items = make(map[K]entry[V])
	c.mu.Unlock()
}
