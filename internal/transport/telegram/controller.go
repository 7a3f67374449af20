package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"catalog_tgbot/config"
	"catalog_tgbot/data/session"
	"catalog_tgbot/internal/converter/telebotConverter"
	"catalog_tgbot/internal/lib/navstate"
	"catalog_tgbot/internal/model"
	"catalog_tgbot/internal/model/tg/tgCallback"
	"catalog_tgbot/internal/service"
	"catalog_tgbot/utils"

	tele "gopkg.in/telebot.v4"
)

type Browser interface {
	Open(ctx context.Context, chatID int64, nav model.NavState) (model.View, error)
	GoTo(ctx context.Context, chatID int64, page int) (model.View, error)
	Search(ctx context.Context, chatID int64, query string, onReady func(model.View))
	SetWidth(ctx context.Context, chatID int64, widthPx int, onReady func(model.View))
	UseWidth(chatID int64, widthPx int)
	View(ctx context.Context, chatID int64) (model.View, error)
	ToggleTheme(ctx context.Context, chatID int64) (model.View, error)
	FindItem(chatID int64, id string) (model.Item, error)
}

type ContactService interface {
	Request(ctx context.Context, chatID int64, item model.Item) (link string, err error)
}

type Session interface {
	GetSession(ctx context.Context, chatID int64) (model.Session, error)
	SetSession(ctx context.Context, chatID int64, session model.Session) error
	GetNavState(ctx context.Context, chatID int64, msgID int) (model.NavState, error)
	SetNavState(ctx context.Context, chatID int64, msgID int, state model.NavState) error
}

type Controller struct {
	cfg     *config.Config
	session Session
	browser Browser
	contact ContactService
}

func NewController(cfg *config.Config, browser Browser, contact ContactService, session Session) *Controller {
	return &Controller{
		cfg:     cfg,
		browser: browser,
		contact: contact,
		session: session,
	}
}

func (ctrl *Controller) sendAutoDeleteMsg(c tele.Context, text string) error {
	msg, err := c.Bot().Send(c.Chat(), text)
	if err != nil {
		return err
	}

	time.AfterFunc(5*time.Second, func() {
		c.Bot().Delete(msg)
	})
	return nil
}

func (ctrl *Controller) getSession(ctx context.Context, chatID int64) model.Session {
	op := "Controller.getSession"
	chatSession, err := ctrl.session.GetSession(ctx, chatID)
	if err != nil && !errors.Is(err, session.ErrNotFound) {
		slog.Error("got error from session.GetSession", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("op", op), slog.String("err", err.Error()))
	}
	return chatSession
}

func isNotModified(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}

// render paints view into the chat's browse message msgID, or into a new
// message when msgID is 0 or can no longer be edited. The message's nav state
// is overwritten and it becomes the chat's browse message.
func (ctrl *Controller) render(ctx context.Context, bot tele.API, chat *tele.Chat, msgID int, view model.View) error {
	op := "Controller.render"
	rqID := utils.GetRequestIDFromCtx(ctx)
	text, markup := telebotConverter.BrowsePage(ctrl.cfg, view)

	if msgID != 0 {
		stored := tele.StoredMessage{MessageID: strconv.Itoa(msgID), ChatID: chat.ID}
		_, err := bot.Edit(stored, text, markup, tele.ModeHTML, tele.NoPreview)
		if err != nil && !isNotModified(err) {
			slog.Warn("can't edit browse message, sending a new one", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
			msgID = 0
		}
	}

	if msgID == 0 {
		msg, err := bot.Send(chat, text, markup, tele.ModeHTML, tele.NoPreview)
		if err != nil {
			slog.Error("can't send browse message", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
			return err
		}
		msgID = msg.ID
	}

	ctrl.remember(ctx, chat.ID, msgID, view.Nav)
	return nil
}

func (ctrl *Controller) remember(ctx context.Context, chatID int64, msgID int, nav model.NavState) {
	op := "Controller.remember"
	rqID := utils.GetRequestIDFromCtx(ctx)
	ctx = context.WithoutCancel(ctx)

	if err := ctrl.session.SetNavState(ctx, chatID, msgID, nav); err != nil {
		slog.Error("got error from session.SetNavState", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
	}

	chatSession := ctrl.getSession(ctx, chatID)
	if chatSession.BrowseMsgID == msgID {
		return
	}
	chatSession.BrowseMsgID = msgID
	if err := ctrl.session.SetSession(ctx, chatID, chatSession); err != nil {
		slog.Error("got error from session.SetSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
	}
}

// open runs the full load-and-render path for nav into msgID, or into a new
// message when msgID is 0.
func (ctrl *Controller) open(ctx context.Context, c tele.Context, msgID int, nav model.NavState) error {
	op := "Controller.open"
	rqID := utils.GetRequestIDFromCtx(ctx)
	chatID := c.Chat().ID

	ctrl.browser.UseWidth(chatID, ctrl.getSession(ctx, chatID).Width)

	_ = c.Notify(tele.Typing)

	view, err := ctrl.browser.Open(ctx, chatID, nav)
	if err != nil {
		if errors.Is(err, service.ErrStaleLoad) {
			return nil
		}
		slog.Error("got error from browser.Open", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.Int("page", nav.Page))
		if view.Error == "" {
			return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
		}
	}

	return ctrl.render(ctx, c.Bot(), c.Chat(), msgID, view)
}

// Start opens the catalog, at the position carried by a deep-link payload
// when there is one.
func (ctrl *Controller) Start(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)
	nav := navstate.ParseStartPayload(c.Message().Payload)

	if err := c.Send(greeting); err != nil {
		return err
	}

	return ctrl.open(ctx, c, 0, nav)
}

func (ctrl *Controller) Help(c tele.Context) error {
	return c.Reply(helpText)
}

// Open restores a position given as `p=<page>&q=<query>` into the chat's
// browse message.
func (ctrl *Controller) Open(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)
	nav := navstate.Parse(c.Message().Payload)

	return ctrl.open(ctx, c, ctrl.getSession(ctx, c.Chat().ID).BrowseMsgID, nav)
}

// Search filters the current page by the message text once typing settles.
// Unknown commands get the help text.
func (ctrl *Controller) Search(c tele.Context) error {
	op := "Controller.Search"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)
	chatID := c.Chat().ID
	query := c.Message().Text

	if strings.HasPrefix(query, "/") {
		return c.Reply(helpText)
	}

	_, err := ctrl.browser.View(ctx, chatID)
	if errors.Is(err, service.ErrNoBrowse) {
		nav := model.NavState{Page: 1, Query: query}
		msgID := ctrl.getSession(ctx, chatID).BrowseMsgID
		if msgID != 0 {
			if saved, err := ctrl.session.GetNavState(ctx, chatID, msgID); err == nil {
				nav.Page = saved.Page
			}
		}
		return ctrl.open(ctx, c, msgID, nav)
	}

	bot, chat := c.Bot(), c.Chat()
	ctrl.browser.Search(ctx, chatID, query, func(view model.View) {
		msgID := ctrl.getSession(ctx, chatID).BrowseMsgID
		if err := ctrl.render(ctx, bot, chat, msgID, view); err != nil {
			slog.Error("can't render search results", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		}
	})

	return nil
}

// ToPage handles a tap on a page button. Taps on an older browse message
// re-open that message's own position.
func (ctrl *Controller) ToPage(c tele.Context) error {
	op := "Controller.ToPage"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)
	chatID := c.Chat().ID
	msgID := c.Message().ID

	pageStr := strings.TrimPrefix(c.Callback().Data, fmt.Sprintf("\f%s", tgCallback.ToPage))
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		slog.Error(
			"error while converting page from callback",
			slog.String("rqID", rqID),
			slog.String("op", op),
			slog.String("err", err.Error()),
			slog.String("pageStr", pageStr),
		)
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	_ = c.Respond()

	chatSession := ctrl.getSession(ctx, chatID)
	_, viewErr := ctrl.browser.View(ctx, chatID)

	if chatSession.BrowseMsgID != msgID || errors.Is(viewErr, service.ErrNoBrowse) {
		nav, err := ctrl.session.GetNavState(ctx, chatID, msgID)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				return ctrl.sendAutoDeleteMsg(c, requestTooOld)
			}
			slog.Error("got error from session.GetNavState", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
			return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
		}
		nav.Page = page
		return ctrl.open(ctx, c, msgID, nav)
	}

	_ = c.Notify(tele.Typing)

	view, err := ctrl.browser.GoTo(ctx, chatID, page)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSamePage), errors.Is(err, service.ErrStaleLoad):
			return nil
		case view.Error == "":
			slog.Error("got error from browser.GoTo", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
			return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
		}
		slog.Warn("page load failed", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.Int("page", page))
	}

	return ctrl.render(ctx, c.Bot(), c.Chat(), msgID, view)
}

// Noop acknowledges taps on the current page and on gaps.
func (ctrl *Controller) Noop(c tele.Context) error {
	return c.Respond()
}

// ToggleTheme flips the theme and repaints the browse message.
func (ctrl *Controller) ToggleTheme(c tele.Context) error {
	op := "Controller.ToggleTheme"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)
	chatID := c.Chat().ID

	msgID := ctrl.getSession(ctx, chatID).BrowseMsgID
	if c.Callback() != nil {
		msgID = c.Message().ID
	}

	view, err := ctrl.browser.ToggleTheme(ctx, chatID)
	if err != nil && !errors.Is(err, service.ErrNoBrowse) {
		slog.Error("got error from browser.ToggleTheme", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	if c.Callback() != nil {
		_ = c.Respond(&tele.CallbackResponse{Text: fmt.Sprintf(themeChanged, view.Theme)})
	} else {
		_ = ctrl.sendAutoDeleteMsg(c, fmt.Sprintf(themeChanged, view.Theme))
	}

	if errors.Is(err, service.ErrNoBrowse) {
		nav := model.NavState{Page: 1}
		if msgID != 0 {
			if saved, err := ctrl.session.GetNavState(ctx, chatID, msgID); err == nil {
				nav = saved
			}
		}
		return ctrl.open(ctx, c, msgID, nav)
	}

	return ctrl.render(ctx, c.Bot(), c.Chat(), msgID, view)
}

// Width stores the chat's keyboard width and re-lays the page strip.
func (ctrl *Controller) Width(c tele.Context) error {
	op := "Controller.Width"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)
	chatID := c.Chat().ID

	px, err := strconv.Atoi(strings.TrimSpace(c.Message().Payload))
	if err != nil || px <= 0 {
		return c.Reply(widthUsage)
	}

	chatSession := ctrl.getSession(ctx, chatID)
	chatSession.Width = px
	if err = ctrl.session.SetSession(ctx, chatID, chatSession); err != nil {
		slog.Error("got error from session.SetSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	if _, err = ctrl.browser.View(ctx, chatID); errors.Is(err, service.ErrNoBrowse) {
		ctrl.browser.UseWidth(chatID, px)
		return c.Reply(fmt.Sprintf(widthSet, px))
	}

	bot, chat := c.Bot(), c.Chat()
	ctrl.browser.SetWidth(ctx, chatID, px, func(view model.View) {
		if err := ctrl.render(ctx, bot, chat, chatSession.BrowseMsgID, view); err != nil {
			slog.Error("can't render relayout", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		}
	})

	return ctrl.sendAutoDeleteMsg(c, fmt.Sprintf(widthSet, px))
}

// Request relays interest in a template of the current page.
func (ctrl *Controller) Request(c tele.Context) error {
	op := "Controller.Request"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)
	chatID := c.Chat().ID

	id := strings.TrimSpace(c.Message().Payload)
	if id == "" {
		return c.Reply(requestUsage)
	}

	item, err := ctrl.browser.FindItem(chatID, id)
	if err != nil {
		return c.Reply(fmt.Sprintf(itemNotFound, id))
	}

	link, err := ctrl.contact.Request(ctx, chatID, item)
	relayed := err == nil
	if err != nil && !errors.Is(err, service.ErrRelayDisabled) {
		slog.Error("got error from contact.Request", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
	}

	text, markup := telebotConverter.ContactResponse(item, link, relayed)
	return c.Reply(text, markup, tele.ModeHTML)
}
