// Package config loads client and server settings with viper: defaults, an
// optional YAML file and DOCSYNC_* environment overrides.
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

// EnvPrefix is the prefix of environment overrides, e.g. DOCSYNC_CONFLICT_WAIT_TIMEOUT.
const EnvPrefix = "DOCSYNC"

// Client is the configuration of the docsync client.
type Client struct {
	ServerURL string         `mapstructure:"server_url"`
	DBPath    string         `mapstructure:"db_path"`
	NodeID    string         `mapstructure:"node_id"`
	Token     string         `mapstructure:"token"`
	Log       LogConfig      `mapstructure:"log"`
	Conflict  ConflictConfig `mapstructure:"conflict"`
	Signal    SignalConfig   `mapstructure:"signal"`
}

// ConflictConfig controls how conflicts are resolved.
type ConflictConfig struct {
	// Strategy: "prompt" asks on the terminal, the others decide automatically.
	// Options: "prompt", "newer", "left", "right", "concat", "defer"
	Strategy string `mapstructure:"strategy"`
	// SessionTimeout closes an unanswered session by itself (0 = disabled)
	SessionTimeout time.Duration `mapstructure:"session_timeout"`
	// WaitTimeout bounds how long sync waits for one decision (0 = no limit)
	WaitTimeout time.Duration `mapstructure:"wait_timeout"`
	// PickMode offers only "use local" / "use remote"
	PickMode bool `mapstructure:"pick_mode"`
}

// SignalConfig controls the in-process signal channels.
type SignalConfig struct {
	// Retention is how long an unconsumed signal stays visible to late waiters
	Retention time.Duration `mapstructure:"retention"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Server is the configuration of the replication server.
type Server struct {
	Listen    string        `mapstructure:"listen"`
	DBPath    string        `mapstructure:"db_path"`
	JWTSecret string        `mapstructure:"jwt_secret"`
	Log       LogConfig     `mapstructure:"log"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
	// RateLimit is the number of requests per minute allowed per client IP
	RateLimit int `mapstructure:"rate_limit"`
}

// DefaultClient returns the client configuration with default values.
func DefaultClient() *Client {
	return &Client{
		ServerURL: "http://localhost:8080",
		DBPath:    "docsync.db",
		Conflict: ConflictConfig{
			Strategy:       "prompt",
			SessionTimeout: 0,
			WaitTimeout:    5 * time.Minute,
		},
		Signal: SignalConfig{Retention: 250 * time.Millisecond},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// DefaultServer returns the server configuration with default values.
func DefaultServer() *Server {
	return &Server{
		Listen:    ":8080",
		DBPath:    "docsync-server.db",
		TokenTTL:  30 * 24 * time.Hour,
		RateLimit: 120,
		Log:       LogConfig{Level: "info", Format: "text"},
	}
}

// SetClientDefaults registers client defaults on v.
func SetClientDefaults(v *viper.Viper) {
	d := DefaultClient()

	v.SetDefault("server_url", d.ServerURL)
	v.SetDefault("db_path", d.DBPath)
	v.SetDefault("node_id", d.NodeID)
	v.SetDefault("token", d.Token)

	v.SetDefault("conflict.strategy", d.Conflict.Strategy)
	v.SetDefault("conflict.session_timeout", d.Conflict.SessionTimeout)
	v.SetDefault("conflict.wait_timeout", d.Conflict.WaitTimeout)
	v.SetDefault("conflict.pick_mode", d.Conflict.PickMode)

	v.SetDefault("signal.retention", d.Signal.Retention)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// SetServerDefaults registers server defaults on v.
func SetServerDefaults(v *viper.Viper) {
	d := DefaultServer()

	v.SetDefault("listen", d.Listen)
	v.SetDefault("db_path", d.DBPath)
	v.SetDefault("jwt_secret", d.JWTSecret)
	v.SetDefault("token_ttl", d.TokenTTL)
	v.SetDefault("rate_limit", d.RateLimit)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// Init wires env overrides and reads cfgFile, or the default config file
// when cfgFile is empty. A missing default file is not an error.
func Init(v *viper.Viper, cfgFile, name string) error {
	v.SetEnvPrefix(EnvPrefix)
	// DOCSYNC_CONFLICT_WAIT_TIMEOUT для conflict.wait_timeout
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(name)
		v.SetConfigType("yaml")
		v.AddConfigPath(Dir())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// LoadClient unmarshals and validates the client configuration.
func LoadClient(v *viper.Viper) (*Client, error) {
	var cfg Client
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errs
	}
	return &cfg, nil
}

// LoadServer unmarshals and validates the server configuration.
func LoadServer(v *viper.Viper) (*Server, error) {
	var cfg Server
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errs
	}
	return &cfg, nil
}

// Dir returns the directory of the default config files.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "docsync")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "docsync")
}
