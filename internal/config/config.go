package config

import (
	"fmt"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from environment variable names before lookup.
const EnvPrefix = "TIPTIME_"

// Config holds application configuration loaded from the environment.
type Config struct {
	// Locale overrides the host locale for currency formatting; empty = host.
	Locale   string `validate:"omitempty,bcp47_language_tag"`
	LogLevel string `validate:"oneof=debug info warn error"`
	// AppID is the fyne application ID used for the GUI.
	AppID string `validate:"required"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LogLevel: "info",
		AppID:    "com.example.tiptime",
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads TIPTIME_* variables from the environment and an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	cb := func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", cb), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	cfg.Locale = normalizeLocale(k.String("locale"))
	cfg.LogLevel = valueOrDefault(strings.ToLower(k.String("log_level")), cfg.LogLevel)
	cfg.AppID = valueOrDefault(k.String("app_id"), cfg.AppID)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// normalizeLocale turns POSIX names such as en_US.UTF-8 into BCP 47 tags.
// The C and POSIX locales carry no language and map to "" (host default).
func normalizeLocale(value string) string {
	s := strings.TrimSpace(value)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "C" || s == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(s, "_", "-")
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}
