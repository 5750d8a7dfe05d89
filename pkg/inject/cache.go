package inject

import (
	"reflect"
	"sync"

	"golang.org/x/sync/singleflight"
)

// TypeCache stores one instance per type. It backs the cached receiver
// strategy but is an ordinary injectable service: populate once via
// GetOrCreate, clear explicitly.
//
// Racing first constructions for the same type are coalesced so the
// factory runs at most once per populated entry.
type TypeCache struct {
	mu        sync.RWMutex
	instances map[reflect.Type]any
	group     singleflight.Group
}

// NewTypeCache creates an empty cache.
func NewTypeCache() *TypeCache {
	return &TypeCache{instances: make(map[reflect.Type]any)}
}

// processCache is the process-wide cache used by cached methods unless a
// custom cache is injected.
var processCache = NewTypeCache()

// DefaultTypeCache returns the process-wide cache.
func DefaultTypeCache() *TypeCache {
	return processCache
}

// GetOrCreate returns the instance stored for t, constructing and storing
// it with factory on first access. Factory errors are not cached.
func (c *TypeCache) GetOrCreate(t reflect.Type, factory func() (any, error)) (any, error) {
	c.mu.RLock()
	v, ok := c.instances[t]
	c.mu.RUnlock()
	if ok {
		return v, nil
	}

	v, err, _ := c.group.Do(cacheKey(t), func() (any, error) {
		c.mu.RLock()
		v, ok := c.instances[t]
		c.mu.RUnlock()
		if ok {
			return v, nil
		}

		v, err := factory()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.instances[t] = v
		c.mu.Unlock()

		return v, nil
	})

	return v, err
}

// Peek returns the stored instance without constructing one.
func (c *TypeCache) Peek(t reflect.Type) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.instances[t]
	return v, ok
}

// Delete removes the instance stored for t, if any.
func (c *TypeCache) Delete(t reflect.Type) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.instances, t)
}

// Clear removes every stored instance.
func (c *TypeCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.instances = make(map[reflect.Type]any)
}

// Len returns the number of stored instances.
func (c *TypeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.instances)
}

// cacheKey qualifies the type with its package path; Type.String alone can
// collide across packages sharing a short name.
func cacheKey(t reflect.Type) string {
	return t.PkgPath() + "." + t.String()
}
