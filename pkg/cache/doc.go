// Package cache provides a generic in-memory LRU cache.
//
// It backs the memoized user agent parser: the same few hundred User-Agent
// strings account for most traffic, so parse results are kept by raw string.
//
//	c := cache.NewLRU[string, int](1024)
//	c.Add("a", 1)
//	if v, ok := c.Get("a"); ok {
//		fmt.Println(v)
//	}
//	fmt.Println(c.Stats().Hits)
package cache
