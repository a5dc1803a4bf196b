package pattern

import (
	"sync"
	"time"

	"golang.org/x/text/language"

	"datefield/internal/locale"
)

// FormatFunc formats a date with options already bound.
type FormatFunc func(time.Time) string

type cacheKey struct {
	locale string
	fields locale.Fields
}

// Cache memoizes formatters by locale and requested fields. Entries are
// derived idempotently, so concurrent misses only cost a recomputation.
type Cache struct {
	mu sync.RWMutex
	m  map[cacheKey]FormatFunc
}

func NewCache() *Cache {
	return &Cache{m: map[cacheKey]FormatFunc{}}
}

// Get returns the cached formatter for tag and fields, building it with src
// on a miss.
func (c *Cache) Get(tag language.Tag, fields locale.Fields, src func(language.Tag) locale.Formatter) FormatFunc {
	key := cacheKey{locale: tag.String(), fields: fields}

	c.mu.RLock()
	fn, ok := c.m[key]
	c.mu.RUnlock()
	if ok {
		return fn
	}

	f := src(tag)
	fn = func(t time.Time) string { return f.Format(t, fields) }

	c.mu.Lock()
	if existing, ok := c.m[key]; ok {
		fn = existing
	} else {
		c.m[key] = fn
	}
	c.mu.Unlock()
	return fn
}

// Len reports the number of cached formatters.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
