// internal/infra/config/config.go

// Package config loads the runtime configuration: backend base URL, local
// state location, cart slot backend and checkout behavior. Sources, in
// precedence order: explicit --config file, SHOPFRONT_* environment
// variables, ~/.shopfront/config.yaml, built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Supported cart slot backends.
const (
	BackendBadger    = "badger"
	BackendFirestore = "firestore"
)

// Supported checkout modes.
const (
	CheckoutSubmit   = "submit"
	CheckoutRedirect = "redirect"
)

// Config validation errors.
var (
	ErrBaseURLEmpty            = errors.New("base_url must not be empty")
	ErrBackendUnknown          = errors.New("unknown store_backend")
	ErrCheckoutModeUnknown     = errors.New("unknown checkout_mode")
	ErrFirestoreProjectMissing = errors.New("firestore backend requires firestore_project_id")
)

// Config holds the whole runtime configuration.
type Config struct {
	// BaseURL is the storefront backend root (catalog and order
	// endpoints live under it).
	BaseURL string `mapstructure:"base_url"`

	// StateDir is the directory for the local durable slots.
	StateDir string `mapstructure:"state_dir"`

	// StoreBackend selects where the cart slot lives: "badger" (local,
	// default) or "firestore" (synced across machines).
	StoreBackend string `mapstructure:"store_backend"`

	FirestoreProjectID       string `mapstructure:"firestore_project_id"`
	FirestoreCredentialsFile string `mapstructure:"firestore_credentials_file"`

	// CheckoutMode is "submit" (post the cart to the order endpoint) or
	// "redirect" (hand off to the summary flow).
	CheckoutMode string `mapstructure:"checkout_mode"`

	// RequestTimeout bounds backend calls. Zero means no timeout; a hung
	// request then degrades to a permanently loading view, matching the
	// historic storefront behavior.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`

	LogLevel string `mapstructure:"log_level"`
}

var knownBackends = map[string]bool{
	BackendBadger:    true,
	BackendFirestore: true,
}

var knownCheckoutModes = map[string]bool{
	CheckoutSubmit:   true,
	CheckoutRedirect: true,
}

// Load reads configuration from file (explicit path, or the default
// search locations when path is empty), environment, and defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("base_url", "http://localhost:8080")
	v.SetDefault("state_dir", defaultStateDir())
	v.SetDefault("store_backend", BackendBadger)
	v.SetDefault("checkout_mode", CheckoutSubmit)
	v.SetDefault("request_timeout", time.Duration(0))
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("SHOPFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %q: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".shopfront"))
		}
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: read: %w", err)
			}
			// no config file is fine; defaults and env apply
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the Config is well-formed, returning a sentinel
// error from this package on failure.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return ErrBaseURLEmpty
	}
	if !knownBackends[c.StoreBackend] {
		return fmt.Errorf("%w: %q", ErrBackendUnknown, c.StoreBackend)
	}
	if !knownCheckoutModes[c.CheckoutMode] {
		return fmt.Errorf("%w: %q", ErrCheckoutModeUnknown, c.CheckoutMode)
	}
	if c.StoreBackend == BackendFirestore && strings.TrimSpace(c.FirestoreProjectID) == "" {
		return ErrFirestoreProjectMissing
	}
	return nil
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".shopfront/state"
	}
	return filepath.Join(home, ".shopfront", "state")
}
