package entity

// NotificationKind identifies which message an account should receive.
type NotificationKind string

const (
	NotificationVerification  NotificationKind = "VERIFICATION"
	NotificationWelcome       NotificationKind = "WELCOME"
	NotificationPasswordReset NotificationKind = "PASSWORD_RESET"
	NotificationAccountLocked NotificationKind = "ACCOUNT_LOCKED"
)

// IsValid checks if the kind is one the notifier knows how to render.
func (k NotificationKind) IsValid() bool {
	switch k {
	case NotificationVerification, NotificationWelcome, NotificationPasswordReset, NotificationAccountLocked:
		return true
	default:
		return false
	}
}

// NotificationContext carries the per-kind payload of a notification.
type NotificationContext struct {
	Token          string `json:"token,omitempty"`          // Verification and PasswordReset
	LockoutMinutes int    `json:"lockoutMinutes,omitempty"` // AccountLocked
}
