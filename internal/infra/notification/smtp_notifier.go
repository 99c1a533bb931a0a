package notification

import (
	"context"
	"fmt"

	"rentauth/config"
	"rentauth/internal/domain/entity"
	"rentauth/internal/domain/service"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

// mailSender is the part of gomail.Dialer the notifier uses.
type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpNotifier struct {
	sender   mailSender
	from     string
	fromName string
	renderer *Renderer
}

// NewSMTPNotifier creates a Notifier that renders HTML email and sends it over SMTP.
func NewSMTPNotifier(cfg *config.Config) (service.Notifier, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		return nil, errors.New("smtp host is required for smtp notifier")
	}
	if cfg.SMTP.FromEmail == "" {
		return nil, errors.New("smtp fromEmail is required for smtp notifier")
	}

	port := cfg.SMTP.Port
	if port == 0 {
		port = 587
	}
	dialer := gomail.NewDialer(cfg.SMTP.Host, port, cfg.SMTP.UserName, cfg.SMTP.Password)

	return newSMTPNotifier(dialer, cfg.SMTP.FromEmail, notifierConfig(cfg)), nil
}

func newSMTPNotifier(sender mailSender, from string, nc config.NotifierConfig) *smtpNotifier {
	renderer := NewRenderer(nc.FrontendURL, nc.FromName, nc.SupportEmail)

	return &smtpNotifier{
		sender:   sender,
		from:     from,
		fromName: renderer.appName,
		renderer: renderer,
	}
}

// Notify sends one email. The context is not consulted by gomail.
func (n *smtpNotifier) Notify(ctx context.Context, account *entity.Account, kind entity.NotificationKind, notificationCtx entity.NotificationContext) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	email, err := n.renderer.Render(account, kind, notificationCtx)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.from, n.fromName)
	m.SetHeader("To", email.To)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/html", email.HTMLBody)

	if err := n.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send %s email: %w", kind, err)
	}

	return nil
}

func notifierConfig(cfg *config.Config) config.NotifierConfig {
	if cfg.Notifier == nil {
		return config.NotifierConfig{}
	}

	return *cfg.Notifier
}
