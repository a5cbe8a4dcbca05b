// Package config loads typed configuration from environment variables.
//
// Struct fields are bound with `env` tags understood by
// github.com/caarlos0/env/v11. A .env file in the working directory is read
// once through github.com/joho/godotenv before the first parse.
//
// Load caches the parsed value per type, so packages can each call
// config.Load(&cfg) for their own section without re-reading the environment.
// Parse skips the cache.
package config
