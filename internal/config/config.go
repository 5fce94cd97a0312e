// Package config provides application configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix, e.g. AOC_INPUT_DIR.
const Prefix = "AOC"

// Default configuration values.
const (
	DefaultInputDir  = "data"
	DefaultLogLevel  = "info"
	DefaultLogFormat = LogFormatConsole
	DefaultWorkers   = 0
)

// LogFormat is the log output encoding.
type LogFormat string

// Log formats.
const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

// Config holds all environment-based configuration.
type Config struct {
	// InputDir is where puzzle inputs are looked up as <id>.txt.
	// Env: AOC_INPUT_DIR (default: data)
	InputDir string `envconfig:"INPUT_DIR" default:"data"`

	// LogLevel is the log verbosity: debug, info, warn, error.
	// Env: AOC_LOG_LEVEL (default: info)
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogFormat is the log encoding: console or json.
	// Env: AOC_LOG_FORMAT (default: console)
	LogFormat LogFormat `envconfig:"LOG_FORMAT" default:"console"`

	// Workers bounds concurrent evaluation inside solvers; 0 means GOMAXPROCS.
	// Env: AOC_WORKERS (default: 0)
	Workers int `envconfig:"WORKERS" default:"0"`
}

// LoadFromEnv reads configuration from AOC_* environment variables.
func LoadFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}

	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load loads configuration from a .env file (optional) and environment
// variables. Variables already set in the environment win over the file.
func Load(envPath string) (Config, error) {
	if err := LoadDotEnv(envPath); err != nil {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	return LoadFromEnv()
}

// Normalize lower-cases enumerated values.
func (c Config) Normalize() Config {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = LogFormat(strings.ToLower(strings.TrimSpace(string(c.LogFormat))))

	return c
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: want debug, info, warn or error", c.LogLevel)
	}

	switch c.LogFormat {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("invalid log format %q: want console or json", c.LogFormat)
	}

	if c.Workers < 0 {
		return fmt.Errorf("invalid workers %d: must not be negative", c.Workers)
	}

	return nil
}
