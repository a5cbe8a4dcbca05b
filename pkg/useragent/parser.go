package useragent

import "github.com/dmitrymomot/uakit/pkg/cache"

// DefaultCacheSize is the number of distinct User-Agent strings kept by
// NewParser when no size is given.
const DefaultCacheSize = 1024

// maxCachedLength keeps oversized headers out of the cache.
const maxCachedLength = 1024

// Parser memoizes Parse by raw string. It is safe for concurrent use.
type Parser struct {
	lru *cache.LRU[string, UserAgent]
}

// NewParser returns a Parser caching up to size results. A non-positive size
// selects DefaultCacheSize.
func NewParser(size int) *Parser {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Parser{lru: cache.NewLRU[string, UserAgent](size)}
}

// Parse returns the same result as the package-level Parse.
func (p *Parser) Parse(ua string) UserAgent {
	if len(ua) > maxCachedLength {
		return Parse(ua)
	}
	if v, ok := p.lru.Get(ua); ok {
		return v
	}
	v := Parse(ua)
	p.lru.Add(ua, v)
	return v
}

// Stats reports cache usage.
func (p *Parser) Stats() cache.Stats {
	return p.lru.Stats()
}
