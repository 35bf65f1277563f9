package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var Rdb *redis.Client

func InitRedis(redisAddress string, redisUsername string, redisPassword string) {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     redisAddress,
		Username: redisUsername,
		Password: redisPassword,
		DB:       0,
	})
}

// Set stores a value with the given expiration (0 means no expiry).
func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if err := Rdb.Set(ctx, key, value, expiration).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("redis set failed")
		return err
	}
	return nil
}

// Get returns the value at key. Missing keys return redis.Nil.
func Get(ctx context.Context, key string) (string, error) {
	return Rdb.Get(ctx, key).Result()
}

// Del removes a key; deleting a missing key is not an error.
func Del(ctx context.Context, key string) error {
	return Rdb.Del(ctx, key).Err()
}

// IsMissing reports whether err means "key not found".
func IsMissing(err error) bool {
	return err == redis.Nil
}
