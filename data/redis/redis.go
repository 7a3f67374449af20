package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"catalog_tgbot/config"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// MustInitRedis connects to the page and session store and panics when it is
// not reachable.
func MustInitRedis(cfg *config.Config) *redis.Client {
	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		DialTimeout: pingTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	pong, err := rdb.Ping(ctx).Result()
	if err != nil {
		slog.Error("Error while connecting Redis", slog.String("addr", addr), slog.String("error", err.Error()))
		panic(err)
	}
	slog.Info("Redis connected", slog.String("addr", addr), slog.String("pong", pong))

	return rdb
}
