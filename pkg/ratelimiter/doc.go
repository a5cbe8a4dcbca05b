// Package ratelimiter implements token bucket rate limiting for the parse API.
//
// A Bucket consumes tokens from a Store. MemoryStore keeps buckets in process
// and sweeps idle ones; RedisStore runs the same algorithm in a Lua script so
// several API instances share one budget.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       60,
//		RefillRate:     1,
//		RefillInterval: time.Second,
//	})
//	if err != nil {
//		return err
//	}
//
//	r.Use(ratelimiter.Middleware(limiter, ratelimiter.Composite(
//		ratelimiter.ByClientIP(),
//		ratelimiter.ByDeviceType(),
//	)))
//
// The middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset on every limited response and Retry-After on denials.
// Requests whose key is empty are not limited.
package ratelimiter
