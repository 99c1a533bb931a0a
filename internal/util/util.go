package util

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const maskedTokenPrefix = 8

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// MaskToken keeps the first characters of a token for log correlation.
func MaskToken(token string) string {
	if len(token) <= maskedTokenPrefix {
		return strings.Repeat("*", len(token))
	}

	return token[:maskedTokenPrefix] + "..."
}

// MaskEmail hides the local part of an address except its first character.
func MaskEmail(email string) string {
	at := strings.LastIndexByte(email, '@')
	if at <= 0 {
		return MaskToken(email)
	}

	return email[:1] + "***" + email[at:]
}

// CeilMinutes rounds a duration up to whole minutes; non-positive durations give 0.
func CeilMinutes(d time.Duration) int {
	if d <= 0 {
		return 0
	}

	return int(math.Ceil(d.Minutes()))
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
