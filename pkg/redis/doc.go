// Package redis connects to Redis with github.com/redis/go-redis/v9.
//
// Connect accepts a redis:// URL and waits for the server to answer PING,
// retrying at a constant interval. Healthcheck turns any
// redis.UniversalClient into a readiness probe.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
package redis
