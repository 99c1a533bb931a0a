package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"auth": map[string]any{
			"maxLoginAttempts": 5,
		},
		"smtp": map[string]any{
			"fromEmail": "",
		},
		"secretKey": map[string]any{
			"admin": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "AUTH_MAXLOGINATTEMPTS", want: "auth.maxLoginAttempts"},
		{envKey: "SMTP_FROMEMAIL", want: "smtp.fromEmail"},
		{envKey: "SECRETKEY_ADMIN", want: "secretKey.admin"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestWithAuthDefaults(t *testing.T) {
	auth := withAuthDefaults(nil)
	assert.Equal(t, DefaultBcryptCost, auth.BcryptCost)
	assert.Equal(t, DefaultVerificationTokenTTL, auth.VerificationTokenTTL)
	assert.Equal(t, DefaultPasswordResetTokenTTL, auth.PasswordResetTokenTTL)
	assert.Equal(t, DefaultMaxLoginAttempts, auth.MaxLoginAttempts)
	assert.Equal(t, DefaultLockoutDuration, auth.LockoutDuration)
	assert.Equal(t, DefaultMinResetPasswordLength, auth.MinResetPasswordLength)

	custom := withAuthDefaults(&AuthConfig{MaxLoginAttempts: 3, LockoutDuration: time.Minute})
	assert.Equal(t, 3, custom.MaxLoginAttempts)
	assert.Equal(t, time.Minute, custom.LockoutDuration)
	assert.Equal(t, DefaultBcryptCost, custom.BcryptCost)
}

func TestWithCleanupDefaults(t *testing.T) {
	cleanup := withCleanupDefaults(nil)
	assert.True(t, cleanup.Enabled)
	assert.Equal(t, DefaultCleanupInterval, cleanup.Interval)

	cleanup = withCleanupDefaults(&CleanupConfig{Enabled: false})
	assert.False(t, cleanup.Enabled)
	assert.Equal(t, DefaultCleanupInterval, cleanup.Interval)
}

type sampleConfig struct {
	Auth AuthConfig `json:"auth" yaml:"auth"`
	SMTP SMTPConfig `json:"smtp" yaml:"smtp"`
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "auth:\n  maxLoginAttempts: 5\n  lockoutDuration: 15m\nsmtp:\n  host: mail.local\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sample.yaml"), []byte(yaml), 0o600))

	t.Chdir(dir)
	t.Setenv("AUTH_MAXLOGINATTEMPTS", "7")

	cfg, err := LoadWithEnv[sampleConfig]("sample")
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Auth.MaxLoginAttempts)
	assert.Equal(t, 15*time.Minute, cfg.Auth.LockoutDuration)
	assert.Equal(t, "mail.local", cfg.SMTP.Host)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[sampleConfig]("absent")
	assert.ErrorContains(t, err, "absent.yaml not found")
}
