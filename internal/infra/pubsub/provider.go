package pubsub

import (
	"context"
	"log/slog"

	"rentauth/config"
	"rentauth/internal/domain/constants"
	"rentauth/internal/domain/service"
	"rentauth/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops account events when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishAccountEvent(ctx context.Context, event *service.AccountNotificationEvent) error {
	p.logger.DebugContext(ctx, "[AccountEvents] Publishing disabled, event dropped",
		slog.String("account_id", event.AccountID),
		slog.String("kind", string(event.Kind)),
		slog.String("email", util.MaskEmail(event.Email)),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects where account notification events are sent.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("[AccountEvents] No Pub/Sub provider, events are dropped")

		return &noopPublisher{logger: logger}, nil
	}
	if err := checkPubSubConfig(cfg); err != nil {
		return nil, err
	}

	var (
		publisher service.EventPublisher
		err       error
	)
	if cfg.Provider == constants.PubSubProviderLocal {
		logger.Info("[AccountEvents] Pushing events to local mailer", slog.String("endpoint", cfg.LocalEndpoint))
		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)
	} else {
		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("[AccountEvents] Closing publisher", slog.String("provider", cfg.Provider))

			return publisher.Close()
		},
	})

	return publisher, nil
}

// checkPubSubConfig reports the first setting the chosen provider is missing.
func checkPubSubConfig(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("pubsub.localEndpoint is required for the local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return errors.New("pubsub.projectId is required for the google provider")
		}
		if cfg.TopicID == "" {
			return errors.New("pubsub.topicId is required for the google provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	return nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
