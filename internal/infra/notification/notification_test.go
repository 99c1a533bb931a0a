package notification

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"rentauth/config"
	deliverycontext "rentauth/internal/delivery/context"
	"rentauth/internal/domain/entity"
	"rentauth/internal/domain/service"
	mockSvc "rentauth/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testAccount() *entity.Account {
	return &entity.Account{
		ID:        uuid.New(),
		Email:     "ana@example.com",
		FirstName: "Ana",
		Role:      entity.RoleOwner,
	}
}

type recordingSender struct {
	messages []*gomail.Message
	err      error
}

func (s *recordingSender) DialAndSend(m ...*gomail.Message) error {
	s.messages = append(s.messages, m...)

	return s.err
}

func TestRenderer_Links(t *testing.T) {
	t.Parallel()

	renderer := NewRenderer("https://rent.example.com/", "RentHub", "help@rent.example.com")

	tests := []struct {
		name     string
		kind     entity.NotificationKind
		ctx      entity.NotificationContext
		contains []string
	}{
		{
			name:     "verification",
			kind:     entity.NotificationVerification,
			ctx:      entity.NotificationContext{Token: "abc123"},
			contains: []string{"https://rent.example.com/verify-email?token=abc123", "Hello Ana!"},
		},
		{
			name:     "password reset",
			kind:     entity.NotificationPasswordReset,
			ctx:      entity.NotificationContext{Token: "def456"},
			contains: []string{"https://rent.example.com/reset-password?token=def456"},
		},
		{
			name:     "welcome",
			kind:     entity.NotificationWelcome,
			contains: []string{"https://rent.example.com/login", "help@rent.example.com"},
		},
		{
			name:     "account locked",
			kind:     entity.NotificationAccountLocked,
			ctx:      entity.NotificationContext{LockoutMinutes: 15},
			contains: []string{"try again in 15 minutes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			email, err := renderer.Render(testAccount(), tt.kind, tt.ctx)
			require.NoError(t, err)
			assert.Equal(t, "ana@example.com", email.To)
			assert.Contains(t, email.Subject, "RentHub")
			for _, want := range tt.contains {
				assert.Contains(t, email.HTMLBody, want)
			}
		})
	}
}

func TestRenderer_DefaultsAndEscaping(t *testing.T) {
	t.Parallel()

	renderer := NewRenderer("", "", "")
	account := testAccount()
	account.FirstName = "<script>"

	email, err := renderer.Render(account, entity.NotificationVerification, entity.NotificationContext{Token: "a b"})
	require.NoError(t, err)
	assert.Contains(t, email.HTMLBody, "http://localhost:5173/verify-email?token=a&#43;b")
	assert.NotContains(t, email.HTMLBody, "<script>")
	assert.Equal(t, "Verify your Rentals account", email.Subject)

	_, err = renderer.Render(account, "SMS", entity.NotificationContext{})
	assert.Error(t, err)
}

func TestSMTPNotifier_Notify(t *testing.T) {
	t.Parallel()

	sender := &recordingSender{}
	notifier := newSMTPNotifier(sender, "no-reply@rent.example.com", config.NotifierConfig{FromName: "RentHub"})

	err := notifier.Notify(context.Background(), testAccount(), entity.NotificationWelcome, entity.NotificationContext{})
	require.NoError(t, err)
	require.Len(t, sender.messages, 1)

	msg := sender.messages[0]
	assert.Equal(t, []string{"ana@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{`"RentHub" <no-reply@rent.example.com>`}, msg.GetHeader("From"))

	var raw bytes.Buffer
	_, err = msg.WriteTo(&raw)
	require.NoError(t, err)
	assert.Contains(t, raw.String(), "text/html")
}

func TestSMTPNotifier_SendFailure(t *testing.T) {
	t.Parallel()

	sender := &recordingSender{err: errors.New("connection refused")}
	notifier := newSMTPNotifier(sender, "no-reply@rent.example.com", config.NotifierConfig{})

	err := notifier.Notify(context.Background(), testAccount(), entity.NotificationWelcome, entity.NotificationContext{})
	assert.ErrorContains(t, err, "connection refused")
}

func TestSMTPNotifier_CanceledContext(t *testing.T) {
	t.Parallel()

	sender := &recordingSender{}
	notifier := newSMTPNotifier(sender, "no-reply@rent.example.com", config.NotifierConfig{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := notifier.Notify(ctx, testAccount(), entity.NotificationWelcome, entity.NotificationContext{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, sender.messages)
}

func TestEventNotifier_Notify(t *testing.T) {
	t.Parallel()

	publisher := mockSvc.NewMockEventPublisher(t)
	notifier := NewEventNotifier(publisher)
	account := testAccount()
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")

	publisher.EXPECT().
		PublishAccountEvent(ctx, mock.MatchedBy(func(event *service.AccountNotificationEvent) bool {
			return event.RequestID == "req-1" &&
				event.AccountID == account.ID.String() &&
				event.Kind == entity.NotificationPasswordReset &&
				event.Token == "tok"
		})).
		Return(nil)

	err := notifier.Notify(ctx, account, entity.NotificationPasswordReset, entity.NotificationContext{Token: "tok"})
	assert.NoError(t, err)
}

func TestEventNotifier_PublishFailure(t *testing.T) {
	t.Parallel()

	publisher := mockSvc.NewMockEventPublisher(t)
	notifier := NewEventNotifier(publisher)

	publisher.EXPECT().PublishAccountEvent(mock.Anything, mock.Anything).Return(errors.New("topic gone"))

	err := notifier.Notify(context.Background(), testAccount(), entity.NotificationWelcome, entity.NotificationContext{})
	assert.ErrorContains(t, err, "topic gone")
}

func TestEventAccount_RoundTrip(t *testing.T) {
	t.Parallel()

	account := testAccount()
	event := &service.AccountNotificationEvent{
		AccountID:      account.ID.String(),
		Email:          account.Email,
		FirstName:      account.FirstName,
		Role:           account.Role,
		LockoutMinutes: 15,
	}

	rebuilt := EventAccount(event)
	assert.Equal(t, account.ID, rebuilt.ID)
	assert.Equal(t, account.Email, rebuilt.Email)
	assert.Equal(t, 15, EventContext(event).LockoutMinutes)
}

func TestNewNotifier_Providers(t *testing.T) {
	t.Parallel()

	logger := newDiscardLogger()

	tests := []struct {
		name    string
		cfg     *config.Config
		pub     service.EventPublisher
		wantErr bool
		check   func(t *testing.T, n service.Notifier)
	}{
		{
			name:  "unset provider logs",
			cfg:   &config.Config{},
			check: func(t *testing.T, n service.Notifier) { assert.IsType(t, &logNotifier{}, n) },
		},
		{
			name: "smtp",
			cfg: &config.Config{
				Notifier: &config.NotifierConfig{Provider: "smtp"},
				SMTP:     &config.SMTPConfig{Host: "smtp.example.com", FromEmail: "no-reply@example.com"},
			},
			check: func(t *testing.T, n service.Notifier) { assert.IsType(t, &smtpNotifier{}, n) },
		},
		{
			name:    "smtp without host",
			cfg:     &config.Config{Notifier: &config.NotifierConfig{Provider: "smtp"}},
			wantErr: true,
		},
		{
			name:  "pubsub",
			cfg:   &config.Config{Notifier: &config.NotifierConfig{Provider: "pubsub"}},
			pub:   mockSvc.NewMockEventPublisher(t),
			check: func(t *testing.T, n service.Notifier) { assert.IsType(t, &eventNotifier{}, n) },
		},
		{
			name:    "pubsub without publisher",
			cfg:     &config.Config{Notifier: &config.NotifierConfig{Provider: "pubsub"}},
			wantErr: true,
		},
		{
			name:    "unknown",
			cfg:     &config.Config{Notifier: &config.NotifierConfig{Provider: "carrier-pigeon"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n, err := NewNotifier(NotifierParams{Config: tt.cfg, Logger: logger, Publisher: tt.pub})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			tt.check(t, n)
		})
	}
}

func TestNewDeliveryNotifier_FallsBackToLog(t *testing.T) {
	t.Parallel()

	n, err := NewDeliveryNotifier(NotifierParams{
		Config: &config.Config{Notifier: &config.NotifierConfig{Provider: "pubsub"}},
		Logger: newDiscardLogger(),
	})
	require.NoError(t, err)
	assert.IsType(t, &logNotifier{}, n)
}
