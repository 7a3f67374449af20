package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"catalog_tgbot/config"
	"catalog_tgbot/utils"

	"github.com/wneessen/go-mail"
)

type Mailer struct {
	cfg *config.Config
}

// NewMailer returns nil when no SMTP host is configured.
func NewMailer(cfg *config.Config) *Mailer {
	if cfg.Mail.Host == "" {
		return nil
	}
	return &Mailer{cfg: cfg}
}

func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "Mailer.Send"
	slog.Info("Send start", slog.String("rqID", rqID), slog.String("op", op), slog.String("to", to), slog.String("subject", subject))

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.Mail.Address); err != nil {
		return fmt.Errorf("set From address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set To address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	client, err := mail.NewClient(
		m.cfg.Mail.Host,
		mail.WithPort(m.cfg.Mail.Port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(m.cfg.Mail.Address),
		mail.WithPassword(m.cfg.Mail.Password),
		mail.WithTimeout(30*time.Second),
	)
	if err != nil {
		return fmt.Errorf("create mail client: %w", err)
	}

	if err = client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("error while dialing smtp: %w", err)
	}

	slog.Info("Send finished", slog.String("rqID", rqID), slog.String("op", op), slog.String("to", to))

	return nil
}
