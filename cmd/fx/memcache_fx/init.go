package memcache_fx

import (
	"context"
	"log"
	"time"

	"go.uber.org/fx"
	mem "wanderly/pkg/memcache"
	"wanderly/pkg/utils"
)

var Module = fx.Provide(provideGenerationCache, mem.NewKeyedLocker)

// provideGenerationCache uses Redis when REDIS_URL is set so several API
// instances share results, and an in-process TTL map otherwise.
func provideGenerationCache(lc fx.Lifecycle) mem.GenerationCache {
	url := utils.GetEnvWithDefault("REDIS_URL", "")
	if url == "" {
		return mem.NewTTLCache()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cache, err := mem.NewRedisCacheFromURL(ctx, url)
	if err != nil {
		log.Printf("Redis unavailable, falling back to in-memory cache: %v", err)
		return mem.NewTTLCache()
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return cache.Close()
		},
	})
	log.Println("Generation cache backed by Redis")
	return cache
}
