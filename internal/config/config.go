package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/Veraticus/pantry-genius/internal/common"
	"github.com/Veraticus/pantry-genius/internal/recipeapi"
	"github.com/spf13/viper"
)

// Viper keys.
const (
	KeyAPIBaseURL    = "api.base_url"
	KeyAPITimeout    = "api.timeout"
	KeyAPICAFile     = "api.ca_file"
	KeyServerAddr    = "server.addr"
	KeyServerDBPath  = "server.db_path"
	KeyServerTLS     = "server.tls"
	KeyServerCertDir = "server.cert_dir"
	KeyLoggingLevel  = "logging.level"
	KeyLoggingFormat = "logging.format"
)

// Config is the resolved application configuration.
type Config struct {
	API     APIConfig
	Server  ServerConfig
	Logging LoggingConfig
}

// APIConfig points the client at a recipe backend.
type APIConfig struct {
	BaseURL string
	CAFile  string
	Timeout time.Duration
}

// ServerConfig configures `pantry serve`.
type ServerConfig struct {
	Addr    string
	DBPath  string
	CertDir string
	TLS     bool
}

// LoggingConfig selects the slog level and handler.
type LoggingConfig struct {
	Level  string
	Format string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyAPIBaseURL, recipeapi.DefaultBaseURL)
	v.SetDefault(KeyAPITimeout, 30*time.Second)
	v.SetDefault(KeyServerAddr, ":8080")
	v.SetDefault(KeyServerDBPath, "~/.local/share/pantry/recipes.db")
	v.SetDefault(KeyServerTLS, false)
	v.SetDefault(KeyServerCertDir, "~/.local/share/pantry/certs")
	v.SetDefault(KeyLoggingLevel, "info")
	v.SetDefault(KeyLoggingFormat, "console")
}

// Load reads the configuration from v, applying defaults for unset keys.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	cfg := &Config{
		API: APIConfig{
			BaseURL: v.GetString(KeyAPIBaseURL),
			CAFile:  ExpandPath(v.GetString(KeyAPICAFile)),
			Timeout: v.GetDuration(KeyAPITimeout),
		},
		Server: ServerConfig{
			Addr:    v.GetString(KeyServerAddr),
			DBPath:  ExpandPath(v.GetString(KeyServerDBPath)),
			CertDir: ExpandPath(v.GetString(KeyServerCertDir)),
			TLS:     v.GetBool(KeyServerTLS),
		},
		Logging: LoggingConfig{
			Level:  v.GetString(KeyLoggingLevel),
			Format: v.GetString(KeyLoggingFormat),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("%w: %s", common.ErrMissingConfig, KeyAPIBaseURL)
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %s must be an http(s) URL, got %q", common.ErrInvalidConfig, KeyAPIBaseURL, c.API.BaseURL)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("%w: %s must be positive", common.ErrInvalidConfig, KeyAPITimeout)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: %s", common.ErrMissingConfig, KeyServerAddr)
	}
	if c.Server.DBPath == "" {
		return fmt.Errorf("%w: %s", common.ErrMissingConfig, KeyServerDBPath)
	}
	if c.Server.TLS && c.Server.CertDir == "" {
		return fmt.Errorf("%w: %s is required when %s is set", common.ErrMissingConfig, KeyServerCertDir, KeyServerTLS)
	}
	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: %s must be console or json", common.ErrInvalidConfig, KeyLoggingFormat)
	}
	return nil
}
