package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"catalog_tgbot/config"
	"catalog_tgbot/internal/model"
	"catalog_tgbot/utils"

	"github.com/redis/go-redis/v9"
)

// RedisCache shares decoded catalog pages between bot instances.
type RedisCache struct {
	redis *redis.Client
	cfg   *config.Config
}

func NewRedisCache(cfg *config.Config, redisClient *redis.Client) *RedisCache {
	return &RedisCache{redis: redisClient, cfg: cfg}
}

func PageKey(n int) string {
	return fmt.Sprintf("catalog:page:%d", n)
}

func (r *RedisCache) GetPage(ctx context.Context, n int) (page model.Page, found bool, err error) {
	op := "RedisCache.GetPage"
	rqID := utils.GetRequestIDFromCtx(ctx)
	key := PageKey(n)

	res, err := r.redis.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.Page{}, false, nil
		}
		slog.Error("failed on redis.Get", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("key", key))
		return model.Page{}, false, err
	}

	if err = json.Unmarshal(res, &page); err != nil {
		slog.Error("error while unmarshalling", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("key", key))
		return model.Page{}, false, errors.New("unmarshalling error")
	}

	return page, true, nil
}

// SetPage stores page; a zero CATALOG_PAGE_CACHE_TTL keeps it forever.
func (r *RedisCache) SetPage(ctx context.Context, page model.Page) error {
	op := "RedisCache.SetPage"
	rqID := utils.GetRequestIDFromCtx(ctx)
	key := PageKey(page.Number)

	jsonData, err := json.Marshal(page)
	if err != nil {
		slog.Error("error while marshalling", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.Int("page", page.Number))
		return errors.New("marshalling error")
	}

	err = r.redis.Set(ctx, key, jsonData, r.cfg.Catalog.PageCacheTTL).Err()
	if err != nil {
		slog.Error("failed on redis.Set", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("key", key))
		return err
	}

	return nil
}
