package tgbot

import (
	"log/slog"
	"strings"

	"catalog_tgbot/config"
	"catalog_tgbot/internal/model/tg/tgCallback"
	"catalog_tgbot/internal/transport/telegram"
	customMW "catalog_tgbot/internal/transport/telegram/middleware"

	tele "gopkg.in/telebot.v4"
	"gopkg.in/telebot.v4/middleware"
)

const unknownCallback = "this button is no longer supported"

type TGBot struct {
	bot  *tele.Bot
	ctrl *telegram.Controller
}

func New(cfg *config.Config, ctrl *telegram.Controller) *TGBot {
	settings := tele.Settings{
		Token:  cfg.Telegram.Token,
		Poller: &tele.LongPoller{Timeout: cfg.Telegram.UpdTimeout},
	}

	b, err := tele.NewBot(settings)
	if err != nil {
		slog.Error("error while tele.NewBot", slog.String("err", err.Error()))
		panic(err)
	}

	return &TGBot{bot: b, ctrl: ctrl}
}

func (b *TGBot) Start() {
	b.bot.Use(middleware.Recover(), customMW.Logger())

	b.setupRoutes()

	go b.bot.Start()
	slog.Info("tgbot started!", slog.String("username", b.bot.Me.Username))
}

func (b *TGBot) Stop() {
	slog.Info("start stopping tgbot")
	b.bot.Stop()
	slog.Info("tgbot stopped")
}

func (b *TGBot) setupRoutes() {
	// commands
	b.bot.Handle("/start", b.ctrl.Start)
	b.bot.Handle("/help", b.ctrl.Help)
	b.bot.Handle("/open", b.ctrl.Open)
	b.bot.Handle("/theme", b.ctrl.ToggleTheme)
	b.bot.Handle("/width", b.ctrl.Width)
	b.bot.Handle("/request", b.ctrl.Request)

	// text
	b.bot.Handle(tele.OnText, b.ctrl.Search)

	// callbacks
	b.bot.Handle(tele.OnCallback, func(c tele.Context) error {
		callbackBtnText := strings.TrimPrefix(c.Callback().Data, "\f")

		switch {
		case callbackBtnText == tgCallback.PageNumber, callbackBtnText == tgCallback.Ellipsis:
			return b.ctrl.Noop(c)
		case callbackBtnText == tgCallback.ToggleTheme:
			return b.ctrl.ToggleTheme(c)
		case strings.HasPrefix(callbackBtnText, tgCallback.ToPage):
			return b.ctrl.ToPage(c)
		default:
			return c.Respond(&tele.CallbackResponse{Text: unknownCallback})
		}
	})
}
