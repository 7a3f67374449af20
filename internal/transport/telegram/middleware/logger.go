package middleware

import (
	"log/slog"
	"time"

	"catalog_tgbot/utils"

	tele "gopkg.in/telebot.v4"
)

// Logger assigns a request id to every update and logs its outcome.
func Logger() tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			ctx := utils.CreateCtxWithRqID(c)
			rqID := utils.GetRequestIDFromCtx(ctx)
			start := time.Now()

			attrs := []any{slog.String("rqID", rqID), slog.Int("updateID", c.Update().ID)}
			if chat := c.Chat(); chat != nil {
				attrs = append(attrs, slog.Int64("chatID", chat.ID))
			}
			if cb := c.Callback(); cb != nil {
				attrs = append(attrs, slog.String("callback", cb.Data))
			} else if msg := c.Message(); msg != nil {
				attrs = append(attrs, slog.String("text", msg.Text))
			}

			slog.Info("update received", attrs...)

			err := next(c)

			attrs = append(attrs, slog.Duration("elapsed", time.Since(start)))
			if err != nil {
				slog.Error("update handling failed", append(attrs, slog.String("err", err.Error()))...)
				return err
			}
			slog.Debug("update handled", attrs...)

			return nil
		}
	}
}
