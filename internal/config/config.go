// internal/config/config.go
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

// Config holds application settings loaded from config.json.
type Config struct {
	APIBaseURL       string        `mapstructure:"api_base_url"`
	RequestTimeout   time.Duration `mapstructure:"-"`
	RequestTimeoutMS int           `mapstructure:"request_timeout"`
	SessionPath      string        `mapstructure:"session_path"`
	LogPath          string        `mapstructure:"log_path"`
	DebugLogging     bool          `mapstructure:"debug_logging"`
}

const (
	DefaultAPIBaseURL       = "https://investment-calculator-backend.dev.quantumos.ai/api"
	DefaultRequestTimeoutMS = 10000
	DefaultSessionPath      = "session.json"
	DefaultLogPath          = "turnkey-tui.log"
)

// LoadConfig reads configuration from the specified file path and performs
// validation.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("api_base_url", DefaultAPIBaseURL)
	v.SetDefault("request_timeout", DefaultRequestTimeoutMS)
	v.SetDefault("session_path", DefaultSessionPath)
	v.SetDefault("log_path", DefaultLogPath)
	v.SetDefault("debug_logging", false)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config error: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	cfg.RequestTimeout = time.Duration(cfg.RequestTimeoutMS) * time.Millisecond

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("api_base_url is required")
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("invalid api_base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api_base_url must be http or https, got %q", u.Scheme)
	}
	if c.SessionPath == "" {
		return fmt.Errorf("session_path is required")
	}
	if c.RequestTimeoutMS <= 0 {
		c.RequestTimeoutMS = DefaultRequestTimeoutMS
		c.RequestTimeout = time.Duration(c.RequestTimeoutMS) * time.Millisecond
	}
	return nil
}
