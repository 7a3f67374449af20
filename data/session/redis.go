package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"catalog_tgbot/config"
	"catalog_tgbot/internal/lib/navstate"
	"catalog_tgbot/internal/model"
	"catalog_tgbot/utils"

	"github.com/redis/go-redis/v9"
)

type RedisSession struct {
	redis *redis.Client
	cfg   *config.Config
}

func NewRedisSession(cfg *config.Config, redisClient *redis.Client) *RedisSession {
	return &RedisSession{redis: redisClient, cfg: cfg}
}

func createSessionKey(chatID int64) string {
	return fmt.Sprintf("chatID:%d:session", chatID)
}

func createNavStateKey(chatID int64, msgID int) string {
	return fmt.Sprintf("chatID:%d:msgID:%d:nav", chatID, msgID)
}

func (r *RedisSession) SetSession(ctx context.Context, chatID int64, session model.Session) error {
	rqID := utils.GetRequestIDFromCtx(ctx)
	slog.Debug("start SetSession", slog.String("rqID", rqID), slog.Any("session", session))

	sessionJson, err := json.Marshal(session)
	if err != nil {
		slog.Error("can't marshall session", slog.String("rqID", rqID), slog.String("err", err.Error()), slog.Any("session", session))
		return errors.New("can't marshall session")
	}

	_, err = r.redis.Set(ctx, createSessionKey(chatID), sessionJson, r.cfg.SessionExpiration).Result()
	if err != nil {
		slog.Error("failed on redis.Set", slog.String("rqID", rqID), slog.String("err", err.Error()), slog.Any("session", session))
		return err
	}

	slog.Debug("SetSession completed", slog.String("rqID", rqID))

	return nil
}

func (r *RedisSession) GetSession(ctx context.Context, chatID int64) (model.Session, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	key := createSessionKey(chatID)

	res, err := r.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.Session{}, ErrNotFound
		}

		slog.Error("failed on redis.Get", slog.String("rqID", rqID), slog.String("err", err.Error()), slog.String("key", key))
		return model.Session{}, err
	}

	session := model.Session{}

	err = json.Unmarshal([]byte(res), &session)
	if err != nil {
		slog.Error("can't unmarshall session", slog.String("rqID", rqID), slog.String("err", err.Error()), slog.String("resultFromRedis", res))
		return model.Session{}, errors.New("can't unmarshall session")
	}

	return session, nil
}

// GetNavState returns the fragment a browse message was last rendered with.
func (r *RedisSession) GetNavState(ctx context.Context, chatID int64, msgID int) (model.NavState, error) {
	op := "RedisSession.GetNavState"
	rqID := utils.GetRequestIDFromCtx(ctx)
	key := createNavStateKey(chatID, msgID)

	res, err := r.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			slog.Warn("redis key not found", slog.String("rqID", rqID), slog.String("op", op), slog.String("key", key))
			return model.NavState{}, ErrNotFound
		}
		slog.Error("failed on redis.Get", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("key", key))
		return model.NavState{}, err
	}

	return navstate.Parse(res), nil
}

// SetNavState overwrites the fragment of a browse message.
func (r *RedisSession) SetNavState(ctx context.Context, chatID int64, msgID int, state model.NavState) error {
	op := "RedisSession.SetNavState"
	rqID := utils.GetRequestIDFromCtx(ctx)
	key := createNavStateKey(chatID, msgID)

	err := r.redis.Set(ctx, key, navstate.Encode(state), r.cfg.SessionExpiration).Err()
	if err != nil {
		slog.Error("failed on redis.Set", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("key", key))
		return err
	}

	return nil
}
