package notification

import (
	"context"

	deliverycontext "rentauth/internal/delivery/context"
	"rentauth/internal/domain/entity"
	"rentauth/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// eventNotifier hands notifications to the mailer worker through the event publisher.
type eventNotifier struct {
	publisher service.EventPublisher
}

// NewEventNotifier creates a Notifier backed by an EventPublisher.
func NewEventNotifier(publisher service.EventPublisher) service.Notifier {
	return &eventNotifier{publisher: publisher}
}

func (n *eventNotifier) Notify(ctx context.Context, account *entity.Account, kind entity.NotificationKind, notificationCtx entity.NotificationContext) error {
	if !kind.IsValid() {
		return errors.Errorf("unknown notification kind %q", kind)
	}

	event := &service.AccountNotificationEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		AccountID:      account.ID.String(),
		Email:          account.Email,
		FirstName:      account.FirstName,
		Role:           account.Role,
		Kind:           kind,
		Token:          notificationCtx.Token,
		LockoutMinutes: notificationCtx.LockoutMinutes,
	}

	return errors.Wrap(n.publisher.PublishAccountEvent(ctx, event), "publish account event")
}

// EventAccount rebuilds the account fields a notification needs from an event.
func EventAccount(event *service.AccountNotificationEvent) *entity.Account {
	id, _ := uuid.Parse(event.AccountID)

	return &entity.Account{
		ID:        id,
		Email:     event.Email,
		FirstName: event.FirstName,
		Role:      event.Role,
	}
}

// EventContext extracts the notification payload from an event.
func EventContext(event *service.AccountNotificationEvent) entity.NotificationContext {
	return entity.NotificationContext{Token: event.Token, LockoutMinutes: event.LockoutMinutes}
}
