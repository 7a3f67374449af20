package contactService

import (
	"context"
	"fmt"
	"log/slog"

	"catalog_tgbot/config"
	"catalog_tgbot/internal/lib/contact"
	"catalog_tgbot/internal/model"
	"catalog_tgbot/internal/service"
	"catalog_tgbot/utils"
)

type Repository interface {
	InsertContactRequest(ctx context.Context, chatID int64, item model.Item) error
}

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type ContactService struct {
	cfg    *config.Config
	repo   Repository
	mailer Mailer
}

// New builds the service. mailer may be nil, which disables the email relay.
func New(cfg *config.Config, repo Repository, mailer Mailer) *ContactService {
	return &ContactService{cfg: cfg, repo: repo, mailer: mailer}
}

// Request records interest in item and relays the contact message to the
// catalog owner by email. The contact link is returned even when the relay is
// unavailable, together with service.ErrRelayDisabled.
func (s *ContactService) Request(ctx context.Context, chatID int64, item model.Item) (link string, err error) {
	op := "ContactService.Request"
	rqID := utils.GetRequestIDFromCtx(ctx)
	link = contact.Link(s.cfg, item)

	if err = s.repo.InsertContactRequest(ctx, chatID, item); err != nil {
		slog.Warn("contact request not recorded", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()))
	}

	if s.mailer == nil || s.cfg.Contact.Email == "" {
		return link, service.ErrRelayDisabled
	}

	subject := fmt.Sprintf("Template request: %s", item.ID)
	body := fmt.Sprintf("%s\n\nTelegram chat: %d", contact.Message(s.cfg, item), chatID)

	if err = s.mailer.Send(ctx, s.cfg.Contact.Email, subject, body); err != nil {
		return link, fmt.Errorf("relay contact request: %w", err)
	}

	return link, nil
}
