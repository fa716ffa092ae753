// Package cache provides the bounded LRU used to keep rasterized glyphs
// between draw calls.
//
//	c := cache.New[string, int](128)
//	c.Set("key", 42)
//	v, ok := c.Get("key")
//
// GetOrCreate runs the constructor at most once per resident key, which is
// how the glyph cache memoizes both hits and "no image" results.
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
