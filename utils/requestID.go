package utils

import (
	"context"

	"github.com/google/uuid"
	tele "gopkg.in/telebot.v4"
)

type ctxKey string

const requestIDKey ctxKey = "rqID"

// CreateCtxWithRqID starts a context for one telegram update. The id is kept
// on the tele.Context as well so middleware can log it.
func CreateCtxWithRqID(c tele.Context) context.Context {
	if rqID, ok := c.Get(string(requestIDKey)).(string); ok && rqID != "" {
		return context.WithValue(context.Background(), requestIDKey, rqID)
	}

	rqID := uuid.NewString()
	c.Set(string(requestIDKey), rqID)
	return context.WithValue(context.Background(), requestIDKey, rqID)
}

func WithRqID(ctx context.Context) context.Context {
	return context.WithValue(ctx, requestIDKey, uuid.NewString())
}

func GetRequestIDFromCtx(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	rqID, _ := ctx.Value(requestIDKey).(string)
	return rqID
}
