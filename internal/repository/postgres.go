package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"catalog_tgbot/internal/model"
	"catalog_tgbot/utils"

	"github.com/jmoiron/sqlx"
)

type Postgres struct {
	db *sqlx.DB
}

func NewPostgresRepo(db *sqlx.DB) *Postgres {
	return &Postgres{db}
}

func (r *Postgres) GetTheme(ctx context.Context, chatID int64) (theme model.Theme, err error) {
	op := "Postgres.GetTheme"
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `SELECT theme FROM chat_preferences WHERE chat_id = $1`

	err = r.db.QueryRowxContext(ctx, query, chatID).Scan(&theme)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			slog.Debug(
				"No theme stored for chatID",
				slog.String("op", op),
				slog.String("rqID", rqID),
				slog.Int64("chatID", chatID),
			)
			return "", ErrNoRows
		}
		slog.Error(
			"Failed to get theme by chatID",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("err", err.Error()),
			slog.Int64("chatID", chatID),
		)
		return "", err
	}

	return theme, nil
}

func (r *Postgres) UpsertTheme(ctx context.Context, chatID int64, theme model.Theme) error {
	op := "Postgres.UpsertTheme"
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `INSERT INTO chat_preferences (chat_id, theme) VALUES ($1, $2)
		ON CONFLICT(chat_id) DO UPDATE SET theme = EXCLUDED.theme, updated_at = now();`

	_, err := r.db.ExecContext(ctx, query, chatID, string(theme))
	if err != nil {
		slog.Error(
			"Failed to upsert theme for chatID",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("err", err.Error()),
			slog.Int64("chatID", chatID),
			slog.String("theme", string(theme)),
		)
		return err
	}

	slog.Info(
		"Theme upserted",
		slog.String("op", op),
		slog.String("rqID", rqID),
		slog.String("theme", string(theme)),
		slog.Int64("chatID", chatID),
	)
	return nil
}

func (r *Postgres) InsertContactRequest(ctx context.Context, chatID int64, item model.Item) error {
	op := "Postgres.InsertContactRequest"
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `INSERT INTO contact_requests (chat_id, item_id, title) VALUES ($1, $2, $3)`

	_, err := r.db.ExecContext(ctx, query, chatID, item.ID.String(), item.Title.String())
	if err != nil {
		slog.Error(
			"Failed to insert contact request",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("err", err.Error()),
			slog.Int64("chatID", chatID),
			slog.String("itemID", item.ID.String()),
		)
		return err
	}

	return nil
}
