package service

import (
	"context"

	"rentauth/internal/domain/entity"
)

// AccountNotificationEvent is a notification handed to the mailer worker.
type AccountNotificationEvent struct {
	RequestID      string                  `json:"request_id,omitempty"` // For distributed tracing
	AccountID      string                  `json:"account_id"`
	Email          string                  `json:"email"`
	FirstName      string                  `json:"first_name"`
	Role           entity.Role             `json:"role"`
	Kind           entity.NotificationKind `json:"kind"`
	Token          string                  `json:"token,omitempty"`
	LockoutMinutes int                     `json:"lockout_minutes,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAccountEvent publishes a notification event for async delivery
	PublishAccountEvent(ctx context.Context, event *AccountNotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
