package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"catalog_tgbot/config"
	"catalog_tgbot/data/cache"
	"catalog_tgbot/data/db/postgres"
	redisClient "catalog_tgbot/data/redis"
	"catalog_tgbot/data/session"
	"catalog_tgbot/internal/lib/indicator"
	"catalog_tgbot/internal/mailer"
	"catalog_tgbot/internal/parser"
	"catalog_tgbot/internal/repository"
	"catalog_tgbot/internal/service/browserService"
	"catalog_tgbot/internal/service/catalogService"
	"catalog_tgbot/internal/service/contactService"
	"catalog_tgbot/internal/service/themeService"
	"catalog_tgbot/internal/tgbot"
	"catalog_tgbot/internal/transport/telegram"
	"catalog_tgbot/utils"

	"github.com/spf13/cobra"
)

func newBotCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Probe the catalog and serve Telegram updates until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runBot(cmd.Context(), cfg)
			return nil
		},
	}
}

func runBot(ctx context.Context, cfg *config.Config) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = utils.WithRqID(ctx)

	postgresDb := postgres.NewPostgresClient(cfg)
	defer postgresDb.Close()

	postgresRepo := repository.NewPostgresRepo(postgresDb)

	redisClient := redisClient.MustInitRedis(cfg)
	defer redisClient.Close()

	redisSession := session.NewRedisSession(cfg, redisClient)

	redisCache := cache.NewRedisCache(cfg, redisClient)

	catalogParser := parser.NewCatalogParser(cfg)

	catalog := catalogService.New(cfg, catalogParser, redisCache, nil)
	catalog.Detect(ctx, indicator.NewLog())

	var relay contactService.Mailer
	if m := mailer.NewMailer(cfg); m != nil {
		relay = m
	}

	themes := themeService.New(postgresRepo)
	contacts := contactService.New(cfg, postgresRepo, relay)
	browser := browserService.New(cfg, catalog, themes)

	tgController := telegram.NewController(cfg, browser, contacts, redisSession)

	tgBot := tgbot.New(cfg, tgController)

	tgBot.Start()
	defer tgBot.Stop()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	<-interrupt
	slog.Info("shutting down")
}
