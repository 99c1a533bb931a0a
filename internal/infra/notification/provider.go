package notification

import (
	"log/slog"

	"rentauth/config"
	"rentauth/internal/domain/constants"
	"rentauth/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// NotifierParams holds dependencies for Notifier, injected by Fx
type NotifierParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Publisher service.EventPublisher `optional:"true"`
}

// NewNotifier selects the notifier the API uses from configuration.
// An unset provider logs notifications.
func NewNotifier(params NotifierParams) (service.Notifier, error) {
	nc := notifierConfig(params.Config)
	logger := params.Logger

	switch nc.Provider {
	case "", constants.NotifierProviderLog:
		logger.Info("Notifications are logged, not sent")

		return NewLogNotifier(NewRenderer(nc.FrontendURL, nc.FromName, nc.SupportEmail), logger), nil

	case constants.NotifierProviderSMTP:
		logger.Info("Sending notifications over SMTP")

		return NewSMTPNotifier(params.Config)

	case constants.NotifierProviderPubSub:
		if params.Publisher == nil {
			return nil, errors.New("event publisher is required for pubsub notifier")
		}
		logger.Info("Publishing notifications to the mailer worker")

		return NewEventNotifier(params.Publisher), nil

	default:
		return nil, errors.Errorf("unknown notifier provider: %s", nc.Provider)
	}
}

// NewDeliveryNotifier selects the notifier that finally delivers mail. It is
// used by the mailer worker, so it never publishes: SMTP when configured,
// otherwise the log notifier.
func NewDeliveryNotifier(params NotifierParams) (service.Notifier, error) {
	cfg := params.Config
	if cfg.SMTP != nil && cfg.SMTP.Host != "" {
		return NewSMTPNotifier(cfg)
	}

	nc := notifierConfig(cfg)
	params.Logger.Warn("SMTP not configured, mailer worker will only log notifications")

	return NewLogNotifier(NewRenderer(nc.FrontendURL, nc.FromName, nc.SupportEmail), params.Logger), nil
}

// Module provides the notifier used by the API
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotifier),
)

// DeliveryModule provides the notifier used by the mailer worker
//
//nolint:gochecknoglobals
var DeliveryModule = fx.Options(
	fx.Provide(NewDeliveryNotifier),
)
