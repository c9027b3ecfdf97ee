package cache

import (
	"log/slog"
	"os"

	"github.com/l3montree-dev/gapguard/shared"
	"go.uber.org/fx"
)

// Factory picks the cache backend from the environment: redis if REDIS_ADDR
// is set, otherwise the in-process LRU.
func Factory() shared.Cache {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		slog.Info("using redis cache", "addr", addr)
		return NewRedis(addr, os.Getenv("REDIS_PASSWORD"))
	}
	slog.Info("using in-memory cache")
	return NewMemory()
}

var Module = fx.Options(
	fx.Provide(Factory),
)
