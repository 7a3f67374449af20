package themeService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"catalog_tgbot/internal/model"
	"catalog_tgbot/internal/repository"
	"catalog_tgbot/utils"
)

type Repository interface {
	GetTheme(ctx context.Context, chatID int64) (model.Theme, error)
	UpsertTheme(ctx context.Context, chatID int64, theme model.Theme) error
}

type ThemeService struct {
	repo Repository
}

func New(repo Repository) *ThemeService {
	return &ThemeService{repo: repo}
}

// GetTheme returns the chat's stored theme, light when none is stored or the
// stored value is unknown.
func (s *ThemeService) GetTheme(ctx context.Context, chatID int64) (model.Theme, error) {
	theme, err := s.repo.GetTheme(ctx, chatID)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return model.ThemeLight, nil
		}
		return model.ThemeLight, fmt.Errorf("get theme: %w", err)
	}

	if !theme.Valid() {
		return model.ThemeLight, nil
	}

	return theme, nil
}

// Toggle flips the chat's theme and persists it.
func (s *ThemeService) Toggle(ctx context.Context, chatID int64) (model.Theme, error) {
	op := "ThemeService.Toggle"
	rqID := utils.GetRequestIDFromCtx(ctx)

	current, err := s.GetTheme(ctx, chatID)
	if err != nil {
		slog.Warn("can't read theme, toggling from default", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()))
	}

	next := current.Toggle()
	if err = s.repo.UpsertTheme(ctx, chatID, next); err != nil {
		return current, fmt.Errorf("save theme: %w", err)
	}

	return next, nil
}
