package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	DefaultBcryptCost             = 12
	DefaultVerificationTokenTTL   = 24 * time.Hour
	DefaultPasswordResetTokenTTL  = 2 * time.Hour
	DefaultMaxLoginAttempts       = 5
	DefaultLockoutDuration        = 15 * time.Minute
	DefaultMinResetPasswordLength = 8
	DefaultCleanupInterval        = time.Hour
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// AllowedOrigins lists browser origins for CORS; empty means the notifier frontend.
		AllowedOrigins     []string `json:"allowedOrigins" yaml:"allowedOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// SecretKey.Admin verifies bearer tokens presented to the admin routes.
	SecretKey struct {
		Admin string `json:"admin" yaml:"admin"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Notifier *NotifierConfig `json:"notifier" yaml:"notifier"`

	SMTP *SMTPConfig `json:"smtp" yaml:"smtp"`

	// PubSub configuration for asynchronous notification delivery
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Cleanup *CleanupConfig `json:"cleanup" yaml:"cleanup"`

	// Worker is the push endpoint that turns account events into email.
	Worker struct {
		Port int `json:"port" yaml:"port"`
	} `json:"worker" yaml:"worker"`
}

// AuthConfig defines the account security policy.
type AuthConfig struct {
	BcryptCost             int           `json:"bcryptCost" yaml:"bcryptCost"`
	VerificationTokenTTL   time.Duration `json:"verificationTokenTtl" yaml:"verificationTokenTtl"`
	PasswordResetTokenTTL  time.Duration `json:"passwordResetTokenTtl" yaml:"passwordResetTokenTtl"`
	MaxLoginAttempts       int           `json:"maxLoginAttempts" yaml:"maxLoginAttempts"`
	LockoutDuration        time.Duration `json:"lockoutDuration" yaml:"lockoutDuration"`
	MinResetPasswordLength int           `json:"minResetPasswordLength" yaml:"minResetPasswordLength"`
}

// NotifierConfig selects how account notifications leave the service.
type NotifierConfig struct {
	// Provider is one of "smtp", "pubsub" or "log"
	Provider     string `json:"provider" yaml:"provider"`
	FrontendURL  string `json:"frontendUrl" yaml:"frontendUrl"`
	FromName     string `json:"fromName" yaml:"fromName"`
	SupportEmail string `json:"supportEmail" yaml:"supportEmail"`
}

// SMTPConfig defines the outgoing mail server.
type SMTPConfig struct {
	Host      string `json:"host" yaml:"host"`
	Port      int    `json:"port" yaml:"port"`
	UserName  string `json:"userName" yaml:"userName"`
	Password  string `json:"password" yaml:"password"`
	FromEmail string `json:"fromEmail" yaml:"fromEmail"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// CleanupConfig controls the expired token sweep.
type CleanupConfig struct {
	Enabled  bool          `json:"enabled" yaml:"enabled"`
	Interval time.Duration `json:"interval" yaml:"interval"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	cfg.Auth = withAuthDefaults(cfg.Auth)
	cfg.Cleanup = withCleanupDefaults(cfg.Cleanup)
	if cfg.Postgres == nil {
		return nil, errors.New("postgres configuration is required")
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}

// withAuthDefaults fills every unset policy value with its default.
func withAuthDefaults(auth *AuthConfig) *AuthConfig {
	if auth == nil {
		auth = &AuthConfig{}
	}
	if auth.BcryptCost <= 0 {
		auth.BcryptCost = DefaultBcryptCost
	}
	if auth.VerificationTokenTTL <= 0 {
		auth.VerificationTokenTTL = DefaultVerificationTokenTTL
	}
	if auth.PasswordResetTokenTTL <= 0 {
		auth.PasswordResetTokenTTL = DefaultPasswordResetTokenTTL
	}
	if auth.MaxLoginAttempts <= 0 {
		auth.MaxLoginAttempts = DefaultMaxLoginAttempts
	}
	if auth.LockoutDuration <= 0 {
		auth.LockoutDuration = DefaultLockoutDuration
	}
	if auth.MinResetPasswordLength <= 0 {
		auth.MinResetPasswordLength = DefaultMinResetPasswordLength
	}

	return auth
}

func withCleanupDefaults(cleanup *CleanupConfig) *CleanupConfig {
	if cleanup == nil {
		return &CleanupConfig{Enabled: true, Interval: DefaultCleanupInterval}
	}
	if cleanup.Interval <= 0 {
		cleanup.Interval = DefaultCleanupInterval
	}

	return cleanup
}
