package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	envAddr        = "BLOG_ADDR"
	envPort        = "PORT"
	envGinMode     = "GIN_MODE"
	envLogLevel    = "LOG_LEVEL"
	envLogFormat   = "LOG_FORMAT"
	envDocsEnabled = "BLOG_DOCS_ENABLED"
	envDocsPath    = "BLOG_DOCS_PATH"

	DefaultAddr            = ":8080"
	DefaultMode            = "release"
	DefaultShutdownTimeout = 5 * time.Second
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "json"
	DefaultDocsPath        = "/swagger"
)

// Config は API サーバーの設定。
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
	Docs    DocsConfig    `yaml:"docs"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	Mode            string        `yaml:"mode"` // debug | release | test
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // json | console
}

type DocsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Default は設定ファイルも環境変数もない場合の値を返す。
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            DefaultAddr,
			Mode:            DefaultMode,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Docs: DocsConfig{
			Enabled: true,
			Path:    DefaultDocsPath,
		},
	}
}

/**
 * path の YAML を既定値に重ね、さらに環境変数で上書きして検証済みの設定を返す。
 * path が空なら既定値と環境変数のみ。
 */
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	// BLOG_ADDR が PORT より優先
	if port := strings.TrimSpace(os.Getenv(envPort)); port != "" {
		c.Server.Addr = ":" + port
	}
	if addr := strings.TrimSpace(os.Getenv(envAddr)); addr != "" {
		c.Server.Addr = addr
	}
	if mode := strings.TrimSpace(os.Getenv(envGinMode)); mode != "" {
		c.Server.Mode = mode
	}
	if level := strings.TrimSpace(os.Getenv(envLogLevel)); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}
	if format := strings.TrimSpace(os.Getenv(envLogFormat)); format != "" {
		c.Logging.Format = strings.ToLower(format)
	}
	if v := strings.TrimSpace(os.Getenv(envDocsEnabled)); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", envDocsEnabled, err)
		}
		c.Docs.Enabled = enabled
	}
	if p := strings.TrimSpace(os.Getenv(envDocsPath)); p != "" {
		c.Docs.Path = p
	}
	return nil
}

// Validate は設定値の整合性を検証する。
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server addr is required")
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unknown server mode %q", c.Server.Mode)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive: %s", c.Server.ShutdownTimeout)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
	if c.Docs.Enabled && !strings.HasPrefix(c.Docs.Path, "/") {
		return fmt.Errorf("docs path must start with '/': %q", c.Docs.Path)
	}
	return nil
}
