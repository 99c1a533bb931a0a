package util

import (
	"testing"
	"time"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    string
		expected string
	}{
		{name: "already normal", email: "a@b.com", expected: "a@b.com"},
		{name: "mixed case", email: "Alice@Example.COM", expected: "alice@example.com"},
		{name: "surrounding spaces", email: "  bob@example.com ", expected: "bob@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NormalizeEmail(tt.email); got != tt.expected {
				t.Fatalf("NormalizeEmail(%q) = %q, want %q", tt.email, got, tt.expected)
			}
		})
	}
}

func TestMaskToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{name: "long token", token: "0123456789abcdef0123456789abcdef", expected: "01234567..."},
		{name: "short token", token: "abc", expected: "***"},
		{name: "empty", token: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := MaskToken(tt.token); got != tt.expected {
				t.Fatalf("MaskToken(%q) = %q, want %q", tt.token, got, tt.expected)
			}
		})
	}
}

func TestMaskEmail(t *testing.T) {
	t.Parallel()

	if got := MaskEmail("alice@example.com"); got != "a***@example.com" {
		t.Fatalf("MaskEmail = %q", got)
	}
}

func TestCeilMinutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected int
	}{
		{name: "negative", duration: -time.Minute, expected: 0},
		{name: "zero", duration: 0, expected: 0},
		{name: "one second", duration: time.Second, expected: 1},
		{name: "exact minutes", duration: 15 * time.Minute, expected: 15},
		{name: "partial minute", duration: 14*time.Minute + time.Second, expected: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := CeilMinutes(tt.duration); got != tt.expected {
				t.Fatalf("CeilMinutes(%s) = %d, want %d", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
