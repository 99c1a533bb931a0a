package notification

import (
	"context"
	"log/slog"

	deliverycontext "rentauth/internal/delivery/context"
	"rentauth/internal/domain/entity"
	"rentauth/internal/domain/service"
	"rentauth/internal/util"
)

// logNotifier writes notifications to the log instead of sending them.
// Used in development, where the links are read from the console.
type logNotifier struct {
	renderer *Renderer
	logger   *slog.Logger
}

// NewLogNotifier creates a Notifier that only logs.
func NewLogNotifier(renderer *Renderer, logger *slog.Logger) service.Notifier {
	return &logNotifier{renderer: renderer, logger: logger}
}

func (n *logNotifier) Notify(ctx context.Context, account *entity.Account, kind entity.NotificationKind, notificationCtx entity.NotificationContext) error {
	email, err := n.renderer.Render(account, kind, notificationCtx)
	if err != nil {
		return err
	}

	attrs := []any{
		slog.String("kind", string(kind)),
		slog.String("to", util.MaskEmail(email.To)),
		slog.String("subject", email.Subject),
	}
	if notificationCtx.Token != "" {
		attrs = append(attrs, slog.String("token", util.MaskToken(notificationCtx.Token)))
	}
	if notificationCtx.LockoutMinutes > 0 {
		attrs = append(attrs, slog.Int("lockoutMinutes", notificationCtx.LockoutMinutes))
	}

	deliverycontext.GetLoggerOrDefault(ctx, n.logger).Info("[LogNotifier] Notification", attrs...)

	return nil
}
