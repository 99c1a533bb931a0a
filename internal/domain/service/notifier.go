package service

import (
	"context"

	"rentauth/internal/domain/entity"
)

// Notifier delivers account notifications. Callers treat every failure as
// best-effort: it is logged and never changes the outcome of the operation.
type Notifier interface {
	Notify(ctx context.Context, account *entity.Account, kind entity.NotificationKind, notificationCtx entity.NotificationContext) error
}
